// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	ProductHandler *handler.ProductHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	productHandler *handler.ProductHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		productHandler: params.ProductHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// User routes: registration and login are public, the listing requires
	// authentication and only ever exposes the public projection.
	userGroup := e.Group("/user")
	{
		userGroup.POST("", r.userHandler.Register)
		userGroup.POST("/login", r.userHandler.Login)
		userGroup.GET("", r.userHandler.ListUsers, r.authMiddleware.Authenticate)
	}

	// Product routes: creation requires authentication, listing is public.
	productGroup := e.Group("/product")
	{
		productGroup.POST("", r.productHandler.Create, r.authMiddleware.Authenticate)
		productGroup.GET("", r.productHandler.List)
	}
}
