// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/rentaldesk/backend/internal/integration/entrypoint/controller"
	"github.com/rentaldesk/backend/internal/integration/entrypoint/middleware"
)

// Controllers groups the HTTP handlers mounted by the router.
type Controllers struct {
	Health       *controller.HealthController
	Auth         *controller.AuthController
	Property     *controller.PropertyController
	Channel      *controller.ChannelController
	Reservation  *controller.ReservationController
	Payment      *controller.PaymentController
	Availability *controller.AvailabilityController
	Expense      *controller.ExpenseController
	Dashboard    *controller.DashboardController
}

// Router holds the Gin engine and its dependencies.
type Router struct {
	engine           *gin.Engine
	controllers      Controllers
	loginRateLimiter *middleware.RateLimiter
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	controllers Controllers,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		controllers:      controllers,
		loginRateLimiter: loginRateLimiter,
		authMiddleware:   authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	switch environment {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()
	r.engine.GET("/health", r.controllers.Health.Check)
	r.setupAPIRoutes()

	return r.engine
}

// Engine returns the configured engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func (r *Router) setupAPIRoutes() {
	c := r.controllers
	v1 := r.engine.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.Auth.Register)
		auth.POST("/login", r.loginRateLimiter.Middleware(), c.Auth.Login)
		auth.POST("/refresh", c.Auth.RefreshToken)
		auth.POST("/logout", c.Auth.Logout)
	}

	api := v1.Group("")
	api.Use(r.authMiddleware.Authenticate())

	properties := api.Group("/properties")
	{
		properties.GET("", c.Property.List)
		properties.POST("", c.Property.Create)
		properties.PATCH("/:id", c.Property.Update)
		properties.DELETE("/:id", c.Property.Delete)

		properties.GET("/:id/channels", c.Channel.ListOverrides)
		properties.PUT("/:id/channels/:channel_id", c.Channel.SetOverride)

		properties.GET("/:id/availability", c.Availability.Check)
		properties.GET("/:id/availability/periods", c.Availability.Periods)
		properties.GET("/:id/calendar", c.Availability.Calendar)
	}

	channels := api.Group("/channels")
	{
		channels.GET("", c.Channel.List)
		channels.POST("", c.Channel.Create)
		channels.DELETE("/:id", c.Channel.Delete)
	}

	reservations := api.Group("/reservations")
	{
		reservations.GET("", c.Reservation.List)
		reservations.POST("", c.Reservation.Create)
		reservations.GET("/:id", c.Reservation.Get)
		reservations.PATCH("/:id", c.Reservation.Update)
		reservations.DELETE("/:id", c.Reservation.Delete)
		reservations.GET("/:id/financials", c.Reservation.Financials)
		reservations.GET("/:id/payments", c.Payment.ListForReservation)
		reservations.POST("/:id/payments", c.Payment.Create)
	}

	payments := api.Group("/payments")
	{
		payments.GET("", c.Payment.List)
		payments.PATCH("/:id", c.Payment.Update)
		payments.DELETE("/:id", c.Payment.Delete)
	}

	expenses := api.Group("/expenses")
	{
		expenses.GET("", c.Expense.List)
		expenses.POST("", c.Expense.Create)
		expenses.DELETE("/:id", c.Expense.Delete)
	}

	api.GET("/dashboard", c.Dashboard.Get)
}
