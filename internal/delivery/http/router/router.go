// Package router contains routing for the HTTP delivery.
package router

import (
	"authgate/internal/delivery/http/middleware"
	"authgate/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	CallbackHandler   *handler.CallbackHandler
	RelayHandler      *handler.RelayHandler
	SessionMiddleware *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	callbackHandler   *handler.CallbackHandler
	relayHandler      *handler.RelayHandler
	sessionMiddleware *middleware.SessionMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		callbackHandler:   params.CallbackHandler,
		relayHandler:      params.RelayHandler,
		sessionMiddleware: params.SessionMiddleware,
	}
}

// RegisterRoutes sets up all the routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.GET("/session", r.authHandler.Session)

		authGroup.GET("/profile", r.authHandler.GetProfile, r.sessionMiddleware.RequireSession)
		authGroup.POST("/profile", r.authHandler.UpdateProfile, r.sessionMiddleware.RequireSession)
	}

	providerGroup := authGroup.Group("/:provider")
	{
		providerGroup.GET("/login", r.callbackHandler.BeginLogin)
		providerGroup.GET("/callback", r.callbackHandler.Callback)
		providerGroup.POST("/callback", r.callbackHandler.Callback)
		providerGroup.POST("/token", r.callbackHandler.SignInWithCredential)
		providerGroup.GET("/pending", r.callbackHandler.PendingForm)
		providerGroup.POST("/complete", r.callbackHandler.CompleteAdditionalInfo)
		providerGroup.POST("/cancel", r.callbackHandler.CancelAdditionalInfo)
	}

	relayGroup := e.Group("/api/auth/:provider")
	{
		relayGroup.POST("", r.relayHandler.ProviderLogin)
		relayGroup.POST("/callback", r.relayHandler.ExchangeCode)
	}
}
