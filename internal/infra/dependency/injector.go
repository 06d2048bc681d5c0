// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/madrasah-erp/finance/config"
	"github.com/madrasah-erp/finance/internal/application/adapter"
	"github.com/madrasah-erp/finance/internal/application/usecase/account"
	"github.com/madrasah-erp/finance/internal/application/usecase/budget"
	"github.com/madrasah-erp/finance/internal/application/usecase/category"
	"github.com/madrasah-erp/finance/internal/application/usecase/report"
	"github.com/madrasah-erp/finance/internal/application/usecase/transaction"
	"github.com/madrasah-erp/finance/internal/domain/valueobject"
	"github.com/madrasah-erp/finance/internal/infra/server/router"
	"github.com/madrasah-erp/finance/internal/integration/adapters"
	"github.com/madrasah-erp/finance/internal/integration/cache"
	"github.com/madrasah-erp/finance/internal/integration/entrypoint/controller"
	"github.com/madrasah-erp/finance/internal/integration/entrypoint/middleware"
	"github.com/madrasah-erp/finance/internal/integration/messaging"
	"github.com/madrasah-erp/finance/internal/integration/metrics"
	"github.com/madrasah-erp/finance/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config         *config.Config
	DB             *gorm.DB
	Router         *router.Router
	MetricsHandler http.Handler
	RateLimiter    *middleware.RateLimiter

	redisClient *redis.Client
	publisher   *messaging.Publisher
}

// NewInjector creates a new dependency injector with all dependencies wired.
// Redis and RabbitMQ are optional; when disabled or unreachable the no-op implementations are used.
func NewInjector(ctx context.Context, cfg *config.Config, db *gorm.DB, dbHealth controller.HealthChecker) (*Injector, error) {
	inj := &Injector{
		Config: cfg,
		DB:     db,
	}

	// Create repositories
	accountRepo := persistence.NewAccountRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	budgetRepo := persistence.NewBudgetRepository(db)
	reportRepo := persistence.NewReportRepository(db)
	reportReader := persistence.NewReportReader(db, cfg.Reports.SnapshotReads)

	// Create adapters/services
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.AccessTokenExpiry)
	listCache, cacheHealth := inj.newReportListCache(ctx, cfg)
	publisher := inj.newPublisher(cfg)

	var reportMetrics adapter.ReportMetrics = metrics.NoOpCollector{}
	if cfg.Metrics.Enabled {
		collector, err := metrics.NewPrometheusCollector()
		if err != nil {
			return nil, fmt.Errorf("failed to create metrics collector: %w", err)
		}
		reportMetrics = collector
		inj.MetricsHandler = collector.Handler()
	}

	policy := valueobject.NewVariancePolicy(cfg.Reports.SignificanceThreshold)

	// Create report use cases
	generateReportUseCase := report.NewGenerateReportUseCase(reportReader, reportRepo, listCache, publisher, reportMetrics, policy)
	listReportsUseCase := report.NewListReportsUseCase(reportRepo, listCache, reportMetrics, cfg.Reports.MaxPageSize)
	getReportUseCase := report.NewGetReportUseCase(reportRepo)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo, accountRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo, accountRepo)

	// Create account use cases
	listAccountsUseCase := account.NewListAccountsUseCase(accountRepo)
	createAccountUseCase := account.NewCreateAccountUseCase(accountRepo)

	// Create transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, categoryRepo)
	changeStatusUseCase := transaction.NewChangeStatusUseCase(transactionRepo)

	// Create budget use cases
	listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo)
	createBudgetUseCase := budget.NewCreateBudgetUseCase(budgetRepo, categoryRepo)
	getBudgetUseCase := budget.NewGetBudgetUseCase(budgetRepo)

	// Create controllers
	healthController := controller.NewHealthController(dbHealth, cacheHealth)
	reportController := controller.NewReportController(generateReportUseCase, listReportsUseCase, getReportUseCase)
	categoryController := controller.NewCategoryController(listCategoriesUseCase, createCategoryUseCase, updateCategoryUseCase)
	accountController := controller.NewAccountController(listAccountsUseCase, createAccountUseCase)
	transactionController := controller.NewTransactionController(listTransactionsUseCase, createTransactionUseCase, changeStatusUseCase)
	budgetController := controller.NewBudgetController(listBudgetsUseCase, createBudgetUseCase, getBudgetUseCase)

	// Create middleware
	reportRateLimiter := middleware.NewRateLimiterWithConfig(cfg.Reports.GenerationLimit, cfg.Reports.GenerationWindow)
	inj.RateLimiter = reportRateLimiter
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Metrics share the API port unless a dedicated address is configured
	var routedMetrics http.Handler
	if cfg.Metrics.Addr == "" {
		routedMetrics = inj.MetricsHandler
	}

	inj.Router = router.NewRouter(
		healthController,
		reportController,
		categoryController,
		accountController,
		transactionController,
		budgetController,
		reportRateLimiter,
		authMiddleware,
		routedMetrics,
	)

	return inj, nil
}

func (inj *Injector) newReportListCache(ctx context.Context, cfg *config.Config) (adapter.ReportListCache, controller.HealthChecker) {
	if !cfg.Redis.Enabled {
		slog.Info("Report list cache disabled")
		return cache.NewNoopReportListCache(), nil
	}

	client, err := cache.NewRedisClient(ctx, &cfg.Redis)
	if err != nil {
		slog.Warn("Redis unavailable, report list cache disabled", "error", err)
		return cache.NewNoopReportListCache(), nil
	}

	inj.redisClient = client
	health := func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	}
	return cache.NewReportListCache(client, cfg.Redis.CacheTTL, cfg.Redis.Timeout, cache.DefaultBreakerSettings()), health
}

func (inj *Injector) newPublisher(cfg *config.Config) adapter.ReportEventPublisher {
	if cfg.AMQP.URL == "" {
		slog.Info("Report events disabled")
		return messaging.NewNoopPublisher()
	}

	publisher, err := messaging.NewPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange, cfg.AMQP.RoutingKey)
	if err != nil {
		slog.Warn("RabbitMQ unavailable, report events disabled", "error", err)
		return messaging.NewNoopPublisher()
	}

	inj.publisher = publisher
	return publisher
}

// Close releases the connections opened by the injector.
func (inj *Injector) Close() error {
	var errs []error
	if inj.publisher != nil {
		if err := inj.publisher.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close publisher: %w", err))
		}
	}
	if inj.redisClient != nil {
		if err := inj.redisClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close redis client: %w", err))
		}
	}
	return errors.Join(errs...)
}
