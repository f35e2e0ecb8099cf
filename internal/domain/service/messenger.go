package service

import (
	"context"

	"blip/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrRecipientUnreachable is returned when the recipient blocked the bot or no longer exists.
var ErrRecipientUnreachable = errors.New("recipient unreachable")

// Button is one interactive control of a rendered message.
type Button struct {
	Label  string
	Action entity.Action
}

// View is a transport-independent message: text plus rows of buttons.
type View struct {
	Text    string
	Buttons [][]Button
}

// Messenger renders views through a chat transport.
type Messenger interface {
	Send(ctx context.Context, to entity.ChatRef, view View) (entity.MessageRef, error)

	// Edit replaces a previously sent message in place.
	Edit(ctx context.Context, ref entity.MessageRef, view View) error

	SendPhoto(ctx context.Context, to entity.ChatRef, png []byte, caption string) error
}
