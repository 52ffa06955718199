// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/cashcoach/backend/internal/integration/entrypoint/controller"
	"github.com/cashcoach/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                      *gin.Engine
	healthController            *controller.HealthController
	authController              *controller.AuthController
	transactionController       *controller.TransactionController
	budgetController            *controller.BudgetController
	scheduledPurchaseController *controller.ScheduledPurchaseController
	goalController              *controller.GoalController
	coachingController          *controller.CoachingController
	reportsController           *controller.ReportsController
	loginRateLimiter            *middleware.RateLimiter
	authMiddleware              *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	transactionController *controller.TransactionController,
	budgetController *controller.BudgetController,
	scheduledPurchaseController *controller.ScheduledPurchaseController,
	goalController *controller.GoalController,
	coachingController *controller.CoachingController,
	reportsController *controller.ReportsController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:            healthController,
		authController:              authController,
		transactionController:       transactionController,
		budgetController:            budgetController,
		scheduledPurchaseController: scheduledPurchaseController,
		goalController:              goalController,
		coachingController:          coachingController,
		reportsController:           reportsController,
		loginRateLimiter:            loginRateLimiter,
		authMiddleware:              authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.RefreshToken)
				auth.POST("/logout", r.authController.Logout)
			}
		}

		// Transaction routes (require authentication)
		if r.transactionController != nil && r.authMiddleware != nil {
			transactions := v1.Group("/transactions")
			transactions.Use(r.authMiddleware.Authenticate())
			{
				transactions.GET("", r.transactionController.List)
				transactions.POST("", r.transactionController.Create)
				transactions.PATCH("/:id", r.transactionController.Update)
				transactions.DELETE("/:id", r.transactionController.Delete)
			}
		}

		// Budget routes (require authentication)
		if r.budgetController != nil && r.authMiddleware != nil {
			budgets := v1.Group("/budgets")
			budgets.Use(r.authMiddleware.Authenticate())
			{
				budgets.GET("", r.budgetController.List)
				budgets.POST("", r.budgetController.Create)
				budgets.PATCH("/:id", r.budgetController.Update)
				budgets.DELETE("/:id", r.budgetController.Delete)
			}
		}

		// Scheduled purchase routes (require authentication)
		if r.scheduledPurchaseController != nil && r.authMiddleware != nil {
			scheduled := v1.Group("/scheduled-purchases")
			scheduled.Use(r.authMiddleware.Authenticate())
			{
				scheduled.GET("", r.scheduledPurchaseController.List)
				scheduled.POST("", r.scheduledPurchaseController.Create)
				scheduled.PATCH("/:id", r.scheduledPurchaseController.Update)
				scheduled.POST("/:id/toggle", r.scheduledPurchaseController.Toggle)
				scheduled.DELETE("/:id", r.scheduledPurchaseController.Delete)
			}
		}

		// Goal routes (require authentication)
		if r.goalController != nil && r.authMiddleware != nil {
			goals := v1.Group("/goals")
			goals.Use(r.authMiddleware.Authenticate())
			{
				goals.GET("", r.goalController.List)
				goals.POST("", r.goalController.Create)
				goals.PATCH("/:id", r.goalController.Update)
				goals.DELETE("/:id", r.goalController.Delete)
			}
		}

		// Coaching routes (require authentication)
		if r.coachingController != nil && r.authMiddleware != nil {
			coaching := v1.Group("/coaching")
			coaching.Use(r.authMiddleware.Authenticate())
			{
				coaching.GET("/report", r.coachingController.GetReport)
				coaching.GET("/narrative", r.coachingController.GetNarrative)
				coaching.POST("/digest", r.coachingController.QueueDigest)
			}
		}

		// Report routes (require authentication)
		if r.reportsController != nil && r.authMiddleware != nil {
			reports := v1.Group("/reports")
			reports.Use(r.authMiddleware.Authenticate())
			{
				reports.GET("/spending", r.reportsController.GetSpending)
				reports.GET("/trends", r.reportsController.GetTrends)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
