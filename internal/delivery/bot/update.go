// Package bot routes abstract chat updates to the usecases.
package bot

import (
	"strings"

	"blip/internal/domain/entity"
)

// Update is one chat update as posted by the transport gateway.
type Update struct {
	ActorID      string `json:"actor_id" validate:"required"`
	Handle       string `json:"handle"`
	ChatID       string `json:"chat_id" validate:"required"`
	MessageID    string `json:"message_id"`
	Text         string `json:"text"`
	CallbackData string `json:"callback_data"`
}

// Outcome classifies how an update was handled.
type Outcome string

const (
	OutcomeCommand Outcome = "command"
	OutcomeAck     Outcome = "ack"
	OutcomeIgnored Outcome = "ignored"
)

// Reply is returned to the gateway. Ack, when set, answers the button press.
type Reply struct {
	Outcome Outcome `json:"outcome"`
	Ack     string  `json:"ack,omitempty"`
}

// command is a parsed "/name arg..." message.
type command struct {
	name string
	args []string
	// rest is everything after the first argument, spacing preserved.
	rest string
}

// parseCommand splits a slash command. A "@botname" suffix on the name is dropped.
func parseCommand(text string) (command, bool) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return command{}, false
	}

	fields := strings.Fields(text)
	name := strings.TrimPrefix(fields[0], "/")
	if at := strings.IndexByte(name, '@'); at >= 0 {
		name = name[:at]
	}
	if name == "" {
		return command{}, false
	}

	cmd := command{name: strings.ToLower(name), args: fields[1:]}
	if len(cmd.args) > 0 {
		after := strings.TrimSpace(strings.TrimPrefix(text, fields[0]))
		cmd.rest = strings.TrimSpace(strings.TrimPrefix(after, cmd.args[0]))
	}

	return cmd, true
}

func (u Update) chat(flow entity.FlowKind) entity.ChatRef {
	return entity.ChatRef{Bot: flow, ChatID: u.ChatID}
}

// message addresses the message a button was pressed on, if the gateway sent it.
func (u Update) message(flow entity.FlowKind) *entity.MessageRef {
	if u.MessageID == "" {
		return nil
	}

	return &entity.MessageRef{ChatRef: u.chat(flow), MessageID: u.MessageID}
}
