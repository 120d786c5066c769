// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"capsule/config"
	"capsule/internal/delivery/http/middleware"
	"capsule/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config         *config.Config
	CapsuleHandler *handler.CapsuleHandler
	TestHandler    *handler.TestHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg            *config.Config
	capsuleHandler *handler.CapsuleHandler
	testHandler    *handler.TestHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:            params.Config,
		capsuleHandler: params.CapsuleHandler,
		testHandler:    params.TestHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Capsule routes that require authentication
	capsuleGroup := e.Group("/capsules")
	capsuleGroup.Use(r.authMiddleware.Authenticate) // Apply JWT authentication middleware
	{
		capsuleGroup.POST("", r.capsuleHandler.CreateCapsule)
		capsuleGroup.GET("", r.capsuleHandler.ListCapsules)
		capsuleGroup.POST("/resolve", r.capsuleHandler.ResolveCapsuleQR)
		capsuleGroup.GET("/:id", r.capsuleHandler.GetCapsule)
		capsuleGroup.GET("/:id/check", r.capsuleHandler.CheckCapsule)
		capsuleGroup.POST("/:id/open", r.capsuleHandler.OpenCapsule)
		capsuleGroup.GET("/:id/qrcode", r.capsuleHandler.GetCapsuleQR)
	}

	// Test routes, enabled only outside production
	if r.cfg.TestRoutes != nil && r.cfg.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		{
			testGroup.GET("/public", r.testHandler.TestPublicEndpoint)
			testGroup.GET("/auth", r.testHandler.TestAuthMiddleware, r.authMiddleware.Authenticate)
		}
	}
}
