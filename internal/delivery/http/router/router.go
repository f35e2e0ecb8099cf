// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"blip/internal/delivery/http/middleware"
	"blip/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	BotHandler     *handler.BotHandler
	LinkHandler    *handler.LinkHandler
	AccountHandler *handler.AccountHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	botHandler     *handler.BotHandler
	linkHandler    *handler.LinkHandler
	accountHandler *handler.AccountHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		botHandler:     params.BotHandler,
		linkHandler:    params.LinkHandler,
		accountHandler: params.AccountHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up the gateway webhook and the web account API.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Chat transport gateway
	botGroup := e.Group("/bots")
	botGroup.Use(r.authMiddleware.VerifyBotSecret)
	{
		botGroup.POST("/:flow/updates", r.botHandler.HandleUpdate)
	}

	// Web account routes, all authenticated
	apiGroup := e.Group("/api")
	apiGroup.Use(r.authMiddleware.Authenticate)
	{
		apiGroup.POST("/link/redeem", r.linkHandler.Redeem)
		apiGroup.GET("/me/progress", r.accountHandler.GetProgress)
		apiGroup.POST("/tasks/:taskID/complete", r.accountHandler.CompleteTask)
	}
}
