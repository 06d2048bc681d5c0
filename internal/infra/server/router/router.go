// Package router sets up the HTTP routing for the application.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/madrasah-erp/finance/internal/integration/entrypoint/controller"
	"github.com/madrasah-erp/finance/internal/integration/entrypoint/dto"
	"github.com/madrasah-erp/finance/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	reportController      *controller.ReportController
	categoryController    *controller.CategoryController
	accountController     *controller.AccountController
	transactionController *controller.TransactionController
	budgetController      *controller.BudgetController
	reportRateLimiter     *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
	metricsHandler        http.Handler
}

// NewRouter creates a new router instance with all dependencies.
// A nil metricsHandler leaves /metrics unregistered.
func NewRouter(
	healthController *controller.HealthController,
	reportController *controller.ReportController,
	categoryController *controller.CategoryController,
	accountController *controller.AccountController,
	transactionController *controller.TransactionController,
	budgetController *controller.BudgetController,
	reportRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
	metricsHandler http.Handler,
) *Router {
	return &Router{
		healthController:      healthController,
		reportController:      reportController,
		categoryController:    categoryController,
		accountController:     accountController,
		transactionController: transactionController,
		budgetController:      budgetController,
		reportRateLimiter:     reportRateLimiter,
		authMiddleware:        authMiddleware,
		metricsHandler:        metricsHandler,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	dto.RegisterFieldNames()

	r.engine = gin.New()
	r.engine.Use(gin.Recovery(), middleware.RequestLogger())

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check and metrics endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
	if r.metricsHandler != nil {
		r.engine.GET("/metrics", gin.WrapH(r.metricsHandler))
	}
}

// setupAPIRoutes configures the finance API routes. Every route requires authentication.
func (r *Router) setupAPIRoutes() {
	finance := r.engine.Group("/api/finance")
	finance.Use(r.authMiddleware.Authenticate())

	reports := finance.Group("/reports")
	{
		reports.GET("", r.reportController.List)
		reports.POST("", r.reportRateLimiter.Middleware(), r.reportController.Generate)
		reports.GET("/:id", r.reportController.Get)
	}

	categories := finance.Group("/categories")
	{
		categories.GET("", r.categoryController.List)
		categories.POST("", r.categoryController.Create)
		categories.PATCH("/:id", r.categoryController.Update)
	}

	accounts := finance.Group("/accounts")
	{
		accounts.GET("", r.accountController.List)
		accounts.POST("", r.accountController.Create)
	}

	transactions := finance.Group("/transactions")
	{
		transactions.GET("", r.transactionController.List)
		transactions.POST("", r.transactionController.Create)
		transactions.POST("/:id/post", r.transactionController.Post)
		transactions.POST("/:id/void", r.transactionController.Void)
	}

	budgets := finance.Group("/budgets")
	{
		budgets.GET("", r.budgetController.List)
		budgets.POST("", r.budgetController.Create)
		budgets.GET("/:id", r.budgetController.Get)
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
