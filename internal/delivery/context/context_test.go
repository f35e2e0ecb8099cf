package context

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRequestID(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest("GET", "/", nil), httptest.NewRecorder())

	generated := GetRequestID(c)
	assert.Len(t, generated, 36)

	SetRequestID(c, "req-1")
	assert.Equal(t, "req-1", GetRequestID(c))

	assert.Empty(t, GetRequestIDFromContext(context.Background()))
	assert.Equal(t, "req-1", GetRequestIDFromContext(WithRequestID(context.Background(), "req-1")))
}

func TestLoggerOrDefault(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	scoped := fallback.With(slog.String("request_id", "req-1"))

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
}

func TestCarry(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	from, cancel := context.WithCancel(WithLogger(WithRequestID(context.Background(), "req-1"), logger))
	cancel()

	carried := Carry(context.Background(), from)
	assert.NoError(t, carried.Err())
	assert.Equal(t, "req-1", GetRequestIDFromContext(carried))
	assert.Same(t, logger, GetLogger(carried))

	bare := Carry(context.Background(), context.Background())
	assert.Nil(t, GetLogger(bare))
	assert.Empty(t, GetRequestIDFromContext(bare))
}
