package entity

import (
	"strings"

	"github.com/pkg/errors"
)

// ErrMalformedAction is returned when callback data cannot be decoded.
var ErrMalformedAction = errors.New("malformed action")

const actionSeparator = "|"

// ActionKind is the closed set of interactive button classes.
type ActionKind string

const (
	ActionOption   ActionKind = "o"
	ActionRestart  ActionKind = "r"
	ActionModerate ActionKind = "m"
	ActionDecided  ActionKind = "d"
)

// Decision is a reviewer's choice on a merchant application.
type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
	DecisionFlag    Decision = "flag"
)

// IsValid checks if the decision is a known value.
func (d Decision) IsValid() bool {
	switch d {
	case DecisionApprove, DecisionReject, DecisionFlag:
		return true
	default:
		return false
	}
}

// Action is the decoded form of a button press.
//
//	option:   Step, Value
//	moderate: Decision, TargetID
//	decided:  TargetID
type Action struct {
	Kind     ActionKind
	Step     string
	Value    string
	Decision Decision
	TargetID string
}

// OptionAction builds the action for choosing value at step.
func OptionAction(step, value string) Action {
	return Action{Kind: ActionOption, Step: step, Value: value}
}

// RestartAction builds the action that restarts the current flow.
func RestartAction() Action {
	return Action{Kind: ActionRestart}
}

// ModerateAction builds a reviewer decision button for an identity.
func ModerateAction(decision Decision, identityID string) Action {
	return Action{Kind: ActionModerate, Decision: decision, TargetID: identityID}
}

// DecidedAction builds the inert button left on a decided prompt.
func DecidedAction(identityID string) Action {
	return Action{Kind: ActionDecided, TargetID: identityID}
}

// Encode serialises the action into callback data.
func (a Action) Encode() string {
	switch a.Kind {
	case ActionOption:
		return strings.Join([]string{string(a.Kind), a.Step, a.Value}, actionSeparator)
	case ActionModerate:
		return strings.Join([]string{string(a.Kind), string(a.Decision), a.TargetID}, actionSeparator)
	case ActionDecided:
		return strings.Join([]string{string(a.Kind), a.TargetID}, actionSeparator)
	default:
		return string(a.Kind)
	}
}

// ParseAction decodes callback data. Unknown or incomplete data is rejected.
func ParseAction(data string) (Action, error) {
	parts := strings.Split(data, actionSeparator)
	kind := ActionKind(parts[0])

	switch kind {
	case ActionOption:
		if len(parts) != 3 || parts[1] == "" || parts[2] == "" {
			return Action{}, errors.Wrapf(ErrMalformedAction, "option %q", data)
		}

		return OptionAction(parts[1], parts[2]), nil
	case ActionRestart:
		if len(parts) != 1 {
			return Action{}, errors.Wrapf(ErrMalformedAction, "restart %q", data)
		}

		return RestartAction(), nil
	case ActionModerate:
		if len(parts) != 3 || !Decision(parts[1]).IsValid() || parts[2] == "" {
			return Action{}, errors.Wrapf(ErrMalformedAction, "moderate %q", data)
		}

		return ModerateAction(Decision(parts[1]), parts[2]), nil
	case ActionDecided:
		if len(parts) != 2 || parts[1] == "" {
			return Action{}, errors.Wrapf(ErrMalformedAction, "decided %q", data)
		}

		return DecidedAction(parts[1]), nil
	default:
		return Action{}, errors.Wrapf(ErrMalformedAction, "unknown kind %q", data)
	}
}
