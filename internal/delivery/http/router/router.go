// Package router sets up the API routes.
package router

import (
	"boutique/internal/delivery/http/middleware"
	"boutique/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// Router holds the handlers and middleware needed to register routes.
type Router struct {
	authHandler         *handler.AuthHandler
	companyHandler      *handler.CompanyHandler
	categoryHandler     *handler.CategoryHandler
	productHandler      *handler.ProductHandler
	availabilityHandler *handler.AvailabilityHandler
	authMiddleware      *middleware.AuthMiddleware
}

// RouterParams defines the dependencies for the router, injected by Fx.
type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	CompanyHandler      *handler.CompanyHandler
	CategoryHandler     *handler.CategoryHandler
	ProductHandler      *handler.ProductHandler
	AvailabilityHandler *handler.AvailabilityHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for Router.
func NewRouter(params RouterParams) *Router {
	return &Router{
		authHandler:         params.AuthHandler,
		companyHandler:      params.CompanyHandler,
		categoryHandler:     params.CategoryHandler,
		productHandler:      params.ProductHandler,
		availabilityHandler: params.AvailabilityHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes wires every route onto the Echo instance. Reads are
// anonymous; every mutation runs behind the token middleware.
func (r *Router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	auth := r.authMiddleware.Authenticate

	api.POST("/auth/login", r.authHandler.Login)

	api.GET("/company", r.companyHandler.Get)
	api.PUT("/company", r.companyHandler.Update, auth)
	api.POST("/company/logo", r.companyHandler.SetLogo, auth)

	api.GET("/categories", r.categoryHandler.List)
	api.POST("/categories", r.categoryHandler.Create, auth)
	api.PUT("/categories/:id", r.categoryHandler.Update, auth)
	api.DELETE("/categories/:id", r.categoryHandler.Delete, auth)

	api.GET("/products", r.productHandler.List)
	api.POST("/products", r.productHandler.Create, auth)
	api.PUT("/products/:id", r.productHandler.Update, auth)
	api.DELETE("/products/:id", r.productHandler.Delete, auth)
	api.POST("/products/:id/photos", r.productHandler.AppendPhotos, auth)

	api.GET("/categories/:id/availability", r.availabilityHandler.Get)
	api.PUT("/categories/:id/availability", r.availabilityHandler.Set, auth)
}
