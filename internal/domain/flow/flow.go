// Package flow describes the conversational flows as data: ordered named steps,
// each either a finite option set or a validated free-text answer.
package flow

import (
	"fmt"
	"regexp"
	"strings"

	"blip/internal/domain/entity"
	domainerrors "blip/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// SubmitValue is the option value of the confirm step.
const SubmitValue = "submit"

var validate = validator.New(validator.WithRequiredStructEnabled())

// Option is one choice of an option step. Next overrides the step's successor.
type Option struct {
	Value string
	Label string
	Next  string
}

// Step is a single question of a flow.
type Step struct {
	Name    string
	Prompt  string
	Label   string
	Options []Option

	// Free-text steps validate with a validator tag, a pattern, or both.
	Rule    string
	Pattern *regexp.Regexp
	Hint    string

	Next    string
	Confirm bool
}

// AcceptsText reports whether the step expects a typed answer.
func (s *Step) AcceptsText() bool {
	return len(s.Options) == 0 && !s.Confirm
}

// Option looks up a choice by value.
func (s *Step) Option(value string) (Option, bool) {
	for _, opt := range s.Options {
		if opt.Value == value {
			return opt, true
		}
	}

	return Option{}, false
}

// OptionLabel returns the label of value, or value itself when unknown.
func (s *Step) OptionLabel(value string) string {
	if opt, ok := s.Option(value); ok {
		return opt.Label
	}

	return value
}

// CheckText validates a free-text answer and returns its normalized form.
func (s *Step) CheckText(text string) (string, error) {
	value := strings.TrimSpace(text)
	if !s.AcceptsText() {
		return "", domainerrors.ErrInvalidInput.WithDetails("please use the buttons")
	}
	if value == "" {
		return "", domainerrors.ErrInvalidInput.WithDetails(s.hint())
	}

	if s.Rule != "" {
		if err := validate.Var(value, s.Rule); err != nil {
			return "", domainerrors.ErrInvalidInput.WithDetails(s.hint())
		}
	}
	if s.Pattern != nil && !s.Pattern.MatchString(value) {
		return "", domainerrors.ErrInvalidInput.WithDetails(s.hint())
	}

	return value, nil
}

func (s *Step) hint() string {
	if s.Hint != "" {
		return s.Hint
	}

	return "that answer is not valid"
}

// Flow is an ordered set of steps ending with a confirm step.
type Flow struct {
	Kind  entity.FlowKind
	Title string
	Done  string

	steps []*Step
	index map[string]int
}

// New validates the step graph: unique names, resolvable successors, and a
// single confirm step at the end.
func New(kind entity.FlowKind, title, done string, steps ...*Step) (*Flow, error) {
	if len(steps) == 0 {
		return nil, errors.Errorf("flow %s has no steps", kind)
	}

	f := &Flow{Kind: kind, Title: title, Done: done, steps: steps, index: make(map[string]int, len(steps))}
	for i, step := range steps {
		if _, dup := f.index[step.Name]; dup {
			return nil, errors.Errorf("flow %s: duplicate step %q", kind, step.Name)
		}
		f.index[step.Name] = i
		if step.Confirm != (i == len(steps)-1) {
			return nil, errors.Errorf("flow %s: confirm step must be last, got %q", kind, step.Name)
		}
		if step.Label == "" {
			step.Label = step.Name
		}
	}

	for _, step := range steps {
		targets := []string{step.Next}
		for _, opt := range step.Options {
			targets = append(targets, opt.Next)
		}
		for _, target := range targets {
			if _, ok := f.index[target]; target != "" && !ok {
				return nil, errors.Errorf("flow %s: step %q points to unknown step %q", kind, step.Name, target)
			}
		}
		if step.Confirm {
			if _, ok := step.Option(SubmitValue); !ok {
				return nil, errors.Errorf("flow %s: confirm step has no %q option", kind, SubmitValue)
			}
		}
	}

	return f, nil
}

// MustNew is New for package-level definitions.
func MustNew(kind entity.FlowKind, title, done string, steps ...*Step) *Flow {
	f, err := New(kind, title, done, steps...)
	if err != nil {
		panic(err)
	}

	return f
}

// First returns the entry step.
func (f *Flow) First() *Step {
	return f.steps[0]
}

// Step looks up a step by name.
func (f *Flow) Step(name string) (*Step, bool) {
	i, ok := f.index[name]
	if !ok {
		return nil, false
	}

	return f.steps[i], true
}

// Len is the number of steps including confirm.
func (f *Flow) Len() int {
	return len(f.steps)
}

// Position returns the 1-based position of a step.
func (f *Flow) Position(step *Step) int {
	return f.index[step.Name] + 1
}

// NextAfter resolves the successor of step, honoring an option's branch.
func (f *Flow) NextAfter(step *Step, opt *Option) *Step {
	switch {
	case opt != nil && opt.Next != "":
		next, _ := f.Step(opt.Next)

		return next
	case step.Next != "":
		next, _ := f.Step(step.Next)

		return next
	default:
		i := f.index[step.Name]
		if i+1 >= len(f.steps) {
			return nil
		}

		return f.steps[i+1]
	}
}

// Summary lists the given answers in step order.
func (f *Flow) Summary(answers map[string]string) string {
	var b strings.Builder
	for _, step := range f.steps {
		value, ok := answers[step.Name]
		if !ok || step.Confirm {
			continue
		}
		fmt.Fprintf(&b, "%s: %s\n", step.Label, step.OptionLabel(value))
	}

	return strings.TrimRight(b.String(), "\n")
}

// Registry maps each flow kind to its definition.
type Registry map[entity.FlowKind]*Flow

// Get returns the flow of kind.
func (r Registry) Get(kind entity.FlowKind) (*Flow, bool) {
	f, ok := r[kind]

	return f, ok
}
