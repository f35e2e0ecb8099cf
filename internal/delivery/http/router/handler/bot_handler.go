package handler

import (
	"log/slog"
	"net/http"

	"blip/internal/delivery/bot"
	"blip/internal/delivery/http/response"
	"blip/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BotHandlerParams holds dependencies for BotHandler, injected by Fx.
type BotHandlerParams struct {
	fx.In

	Router bot.Router
	Logger *slog.Logger
}

// BotHandler receives chat updates from the transport gateway
type BotHandler struct {
	router bot.Router
	logger *slog.Logger
}

// NewBotHandler is the constructor for BotHandler
func NewBotHandler(params BotHandlerParams) *BotHandler {
	return &BotHandler{
		router: params.Router,
		logger: params.Logger,
	}
}

// HandleUpdate routes one update of the bot named in the path
func (h *BotHandler) HandleUpdate(c echo.Context) error {
	var update bot.Update
	if err := c.Bind(&update); err != nil {
		return response.BindingError(c, "Invalid update payload")
	}

	if err := c.Validate(&update); err != nil {
		return response.ValidationError(c, err)
	}

	reply, err := h.router.Handle(c.Request().Context(), entity.FlowKind(c.Param("flow")), update)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reply)
}
