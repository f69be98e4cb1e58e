// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers and middleware injected by Fx.
type RouterParams struct {
	fx.In

	UserHandler     *handler.UserHandler
	OrderHandler    *handler.OrderHandler
	BusinessHandler *handler.BusinessHandler
	ServiceHandler  *handler.ServiceHandler
	CatalogHandler  *handler.CatalogHandler
	AuthMiddleware  *middleware.AuthMiddleware
	RateLimit       *middleware.RateLimitMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	v1 := e.Group("/v1")

	// Public auth route
	v1.POST("/login", r.params.UserHandler.Login)

	// Public order lookup; throttled since it is unauthenticated.
	v1.GET("/user-orders/:id", r.params.OrderHandler.PublicShow, r.params.RateLimit.Limit)

	// Public catalog routes, throttled likewise.
	v1.GET("/import-products", r.params.CatalogHandler.Import, r.params.RateLimit.Limit)
	v1.GET("/products", r.params.CatalogHandler.Products, r.params.RateLimit.Limit)

	// Authenticated routes
	authed := v1.Group("", r.params.AuthMiddleware.Authenticate)
	authed.POST("/register", r.params.UserHandler.Register)
	authed.GET("/user", r.params.UserHandler.Current)
	authed.GET("/users", r.params.UserHandler.List, r.params.AuthMiddleware.RequireRole(entity.RoleAdmin))

	authed.GET("/orders/show", r.params.OrderHandler.Show)
	authed.POST("/orders/store", r.params.OrderHandler.Store)
	authed.POST("/orders/:id", r.params.OrderHandler.Update)
	authed.DELETE("/orders/:id", r.params.OrderHandler.Delete)

	authed.GET("/businesses/show", r.params.BusinessHandler.Show)
	authed.POST("/businesses/store", r.params.BusinessHandler.Store)
	authed.POST("/businesses/:id", r.params.BusinessHandler.Update)
	authed.DELETE("/businesses/:id", r.params.BusinessHandler.Delete)

	authed.GET("/services/show", r.params.ServiceHandler.Show)
	authed.POST("/services/store", r.params.ServiceHandler.Store)
	authed.POST("/services/:id", r.params.ServiceHandler.Update)
	authed.DELETE("/services/:id", r.params.ServiceHandler.Delete)
}
