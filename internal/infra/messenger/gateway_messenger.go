// Package messenger renders views through the chat transport gateway.
package messenger

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"

	"blip/config"
	deliverycontext "blip/internal/delivery/context"
	"blip/internal/domain/constants"
	"blip/internal/domain/entity"
	"blip/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	opSend  = "send"
	opEdit  = "edit"
	opPhoto = "photo"
)

type renderButton struct {
	Label string `json:"label"`
	Data  string `json:"data"`
}

// renderCommand is the JSON body posted to the gateway.
type renderCommand struct {
	Op        string           `json:"op"`
	Bot       entity.FlowKind  `json:"bot"`
	ChatID    string           `json:"chat_id"`
	MessageID string           `json:"message_id,omitempty"`
	Text      string           `json:"text,omitempty"`
	Buttons   [][]renderButton `json:"buttons,omitempty"`
	Photo     string           `json:"photo,omitempty"`
}

type renderResponse struct {
	MessageID string `json:"message_id"`
}

type gatewayMessenger struct {
	endpoint   string
	secret     string
	httpClient *http.Client
	logger     *slog.Logger
}

// Params holds dependencies for the Messenger, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewMessenger posts renders to the configured gateway, or only logs them when none is set.
func NewMessenger(params Params) service.Messenger {
	cfg := params.Config.Bot
	if cfg == nil || cfg.GatewayURL == "" {
		params.Logger.Info("Bot gateway not configured, renders will be logged only")

		return NewLogMessenger(params.Logger)
	}

	return &gatewayMessenger{
		endpoint:   cfg.GatewayURL,
		secret:     cfg.Secret,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     params.Logger,
	}
}

func (m *gatewayMessenger) Send(ctx context.Context, to entity.ChatRef, view service.View) (entity.MessageRef, error) {
	resp, err := m.post(ctx, renderCommand{
		Op:      opSend,
		Bot:     to.Bot,
		ChatID:  to.ChatID,
		Text:    view.Text,
		Buttons: encodeButtons(view.Buttons),
	})
	if err != nil {
		return entity.MessageRef{}, err
	}

	return entity.MessageRef{ChatRef: to, MessageID: resp.MessageID}, nil
}

func (m *gatewayMessenger) Edit(ctx context.Context, ref entity.MessageRef, view service.View) error {
	_, err := m.post(ctx, renderCommand{
		Op:        opEdit,
		Bot:       ref.Bot,
		ChatID:    ref.ChatID,
		MessageID: ref.MessageID,
		Text:      view.Text,
		Buttons:   encodeButtons(view.Buttons),
	})

	return err
}

func (m *gatewayMessenger) SendPhoto(ctx context.Context, to entity.ChatRef, png []byte, caption string) error {
	_, err := m.post(ctx, renderCommand{
		Op:     opPhoto,
		Bot:    to.Bot,
		ChatID: to.ChatID,
		Text:   caption,
		Photo:  base64.StdEncoding.EncodeToString(png),
	})

	return err
}

func (m *gatewayMessenger) post(ctx context.Context, cmd renderCommand) (*renderResponse, error) {
	body, err := json.Marshal(cmd)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(constants.HeaderBotSecret, m.secret)
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "gateway %s failed", cmd.Op)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusForbidden, resp.StatusCode == http.StatusGone, resp.StatusCode == http.StatusNotFound:
		return nil, errors.Wrapf(service.ErrRecipientUnreachable, "chat %s via %s", cmd.ChatID, cmd.Bot)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, errors.Errorf("gateway returned non-success status: %d", resp.StatusCode)
	}

	out := &renderResponse{}
	if cmd.Op == opSend {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return nil, errors.Wrap(err, "decode gateway response")
		}
	}

	deliverycontext.GetLoggerOrDefault(ctx, m.logger).Debug("Render delivered",
		slog.String("op", cmd.Op),
		slog.String("bot", string(cmd.Bot)),
		slog.String("chat_id", cmd.ChatID),
	)

	return out, nil
}

func encodeButtons(rows [][]service.Button) [][]renderButton {
	if len(rows) == 0 {
		return nil
	}

	encoded := make([][]renderButton, 0, len(rows))
	for _, row := range rows {
		out := make([]renderButton, 0, len(row))
		for _, button := range row {
			out = append(out, renderButton{Label: button.Label, Data: button.Action.Encode()})
		}
		encoded = append(encoded, out)
	}

	return encoded
}

// logMessenger is used in development when no gateway is configured.
type logMessenger struct {
	logger *slog.Logger
}

// NewLogMessenger returns a Messenger that writes renders to the log.
func NewLogMessenger(logger *slog.Logger) service.Messenger {
	return &logMessenger{logger: logger}
}

func (m *logMessenger) Send(ctx context.Context, to entity.ChatRef, view service.View) (entity.MessageRef, error) {
	ref := entity.MessageRef{ChatRef: to, MessageID: uuid.NewString()}
	deliverycontext.GetLoggerOrDefault(ctx, m.logger).Info("[LogMessenger] send",
		slog.String("bot", string(to.Bot)),
		slog.String("chat_id", to.ChatID),
		slog.String("message_id", ref.MessageID),
		slog.String("text", view.Text),
		slog.Int("button_rows", len(view.Buttons)),
	)

	return ref, nil
}

func (m *logMessenger) Edit(ctx context.Context, ref entity.MessageRef, view service.View) error {
	deliverycontext.GetLoggerOrDefault(ctx, m.logger).Info("[LogMessenger] edit",
		slog.String("bot", string(ref.Bot)),
		slog.String("chat_id", ref.ChatID),
		slog.String("message_id", ref.MessageID),
		slog.String("text", view.Text),
	)

	return nil
}

func (m *logMessenger) SendPhoto(ctx context.Context, to entity.ChatRef, png []byte, caption string) error {
	deliverycontext.GetLoggerOrDefault(ctx, m.logger).Info("[LogMessenger] photo",
		slog.String("bot", string(to.Bot)),
		slog.String("chat_id", to.ChatID),
		slog.Int("bytes", len(png)),
		slog.String("caption", caption),
	)

	return nil
}
