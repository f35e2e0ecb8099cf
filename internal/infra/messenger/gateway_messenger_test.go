package messenger

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"blip/config"
	"blip/internal/domain/entity"
	"blip/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMessenger(t *testing.T, handler http.HandlerFunc) service.Messenger {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewMessenger(Params{
		Config: &config.Config{Bot: &config.BotConfig{GatewayURL: server.URL, Secret: "s3cret", Timeout: time.Second}},
		Logger: slog.New(slog.DiscardHandler),
	})
}

func TestGatewayMessenger_Send(t *testing.T) {
	var got renderCommand
	var secret string

	m := newTestMessenger(t, func(w http.ResponseWriter, r *http.Request) {
		secret = r.Header.Get("X-Bot-Secret")
		_ = json.NewDecoder(r.Body).Decode(&got)
		_ = json.NewEncoder(w).Encode(renderResponse{MessageID: "m-9"})
	})

	to := entity.ChatRef{Bot: entity.FlowMerchant, ChatID: "c-1"}
	ref, err := m.Send(context.Background(), to, service.View{
		Text:    "Pick one",
		Buttons: [][]service.Button{{{Label: "Retail", Action: entity.OptionAction("business_type", "retail")}}},
	})
	require.NoError(t, err)

	assert.Equal(t, "s3cret", secret)
	assert.Equal(t, entity.MessageRef{ChatRef: to, MessageID: "m-9"}, ref)
	assert.Equal(t, opSend, got.Op)
	require.Len(t, got.Buttons, 1)
	assert.Equal(t, "o|business_type|retail", got.Buttons[0][0].Data)
}

func TestGatewayMessenger_EditUnreachable(t *testing.T) {
	m := newTestMessenger(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	err := m.Edit(context.Background(), entity.MessageRef{ChatRef: entity.ChatRef{Bot: entity.FlowAirdrop, ChatID: "c"}, MessageID: "1"}, service.View{Text: "x"})
	assert.ErrorIs(t, err, service.ErrRecipientUnreachable)
}

func TestGatewayMessenger_ServerError(t *testing.T) {
	m := newTestMessenger(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	err := m.SendPhoto(context.Background(), entity.ChatRef{Bot: entity.FlowAirdrop, ChatID: "c"}, []byte{1}, "qr")
	require.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrRecipientUnreachable)
}

func TestNewMessenger_FallsBackToLog(t *testing.T) {
	m := NewMessenger(Params{Config: &config.Config{}, Logger: slog.New(slog.DiscardHandler)})

	ref, err := m.Send(context.Background(), entity.ChatRef{Bot: entity.FlowAirdrop, ChatID: "c"}, service.View{Text: "hi"})
	require.NoError(t, err)
	assert.NotEmpty(t, ref.MessageID)
}
