// Package dependency provides dependency injection for the application.
package dependency

import (
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/cashcoach/backend/config"
	"github.com/cashcoach/backend/internal/application/adapter"
	"github.com/cashcoach/backend/internal/application/usecase/auth"
	"github.com/cashcoach/backend/internal/application/usecase/budget"
	"github.com/cashcoach/backend/internal/application/usecase/coaching"
	"github.com/cashcoach/backend/internal/application/usecase/goal"
	"github.com/cashcoach/backend/internal/application/usecase/reports"
	"github.com/cashcoach/backend/internal/application/usecase/scheduledpurchase"
	"github.com/cashcoach/backend/internal/application/usecase/transaction"
	"github.com/cashcoach/backend/internal/infra/server/router"
	"github.com/cashcoach/backend/internal/integration/adapters"
	"github.com/cashcoach/backend/internal/integration/email"
	"github.com/cashcoach/backend/internal/integration/email/templates"
	"github.com/cashcoach/backend/internal/integration/entrypoint/controller"
	"github.com/cashcoach/backend/internal/integration/entrypoint/middleware"
	"github.com/cashcoach/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Router      *router.Router
	RedisClient *redis.Client
	EmailWorker *email.Worker
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	budgetRepo := persistence.NewBudgetRepository(db)
	scheduledRepo := persistence.NewScheduledPurchaseRepository(db)
	goalRepo := persistence.NewGoalRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)
	reportsRepo := persistence.NewReportsRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	narrativeService := adapters.NewGeminiService(cfg.Gemini.APIKey, cfg.Gemini.Model)

	// Redis is optional: without it every coaching report is recomputed.
	var redisClient *redis.Client
	var reportCache adapter.ReportCache
	if opts, err := redis.ParseURL(cfg.Redis.URL); err != nil {
		slog.Warn("Invalid Redis URL, report caching disabled", "error", err)
	} else {
		if cfg.Redis.Password != "" {
			opts.Password = cfg.Redis.Password
		}
		redisClient = redis.NewClient(opts)
		reportCache = adapters.NewReportCache(redisClient, cfg.Redis.ReportTTL)
	}

	// Email stack
	emailService := email.NewService(emailQueueRepo)

	var emailWorker *email.Worker
	if renderer, err := templates.NewRenderer(); err != nil {
		slog.Error("Failed to load email templates, worker disabled", "error", err)
	} else {
		var sender adapter.EmailSender
		if cfg.Email.ResendAPIKey != "" {
			sender = email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
		} else {
			slog.Warn("RESEND_API_KEY not set, using mock email sender")
			sender = email.NewMockEmailSender()
		}
		emailWorker = email.NewWorker(emailQueueRepo, sender, renderer, email.WorkerConfig{
			PollInterval: cfg.Email.PollInterval,
			BatchSize:    cfg.Email.BatchSize,
		})
	}

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

	// Create transaction use cases
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, budgetRepo, reportCache)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, budgetRepo, reportCache)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo, budgetRepo, reportCache)

	// Create budget use cases
	createBudgetUseCase := budget.NewCreateBudgetUseCase(budgetRepo, reportCache)
	listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo)
	updateBudgetUseCase := budget.NewUpdateBudgetUseCase(budgetRepo, reportCache)
	deleteBudgetUseCase := budget.NewDeleteBudgetUseCase(budgetRepo, reportCache)

	// Create scheduled purchase use cases
	createPurchaseUseCase := scheduledpurchase.NewCreateScheduledPurchaseUseCase(scheduledRepo, reportCache)
	listPurchasesUseCase := scheduledpurchase.NewListScheduledPurchasesUseCase(scheduledRepo)
	updatePurchaseUseCase := scheduledpurchase.NewUpdateScheduledPurchaseUseCase(scheduledRepo, reportCache)
	togglePurchaseUseCase := scheduledpurchase.NewToggleScheduledPurchaseUseCase(scheduledRepo, reportCache)
	deletePurchaseUseCase := scheduledpurchase.NewDeleteScheduledPurchaseUseCase(scheduledRepo, reportCache)

	// Create goal use cases
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo, reportCache)
	listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo)
	updateGoalUseCase := goal.NewUpdateGoalUseCase(goalRepo, reportCache)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo, reportCache)

	// Create coaching use cases
	getReportUseCase := coaching.NewGetReportUseCase(transactionRepo, budgetRepo, scheduledRepo, goalRepo, reportCache)
	getNarrativeUseCase := coaching.NewGetNarrativeUseCase(getReportUseCase, userRepo, narrativeService)
	queueDigestUseCase := coaching.NewQueueDigestUseCase(getReportUseCase, userRepo, emailService)

	// Create report use cases
	getSpendingReportUseCase := reports.NewGetSpendingReportUseCase(reportsRepo)
	getMonthlyTrendsUseCase := reports.NewGetMonthlyTrendsUseCase(reportsRepo)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
	)

	transactionController := controller.NewTransactionController(
		createTransactionUseCase,
		listTransactionsUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
	)

	budgetController := controller.NewBudgetController(
		createBudgetUseCase,
		listBudgetsUseCase,
		updateBudgetUseCase,
		deleteBudgetUseCase,
	)

	scheduledPurchaseController := controller.NewScheduledPurchaseController(
		createPurchaseUseCase,
		listPurchasesUseCase,
		updatePurchaseUseCase,
		togglePurchaseUseCase,
		deletePurchaseUseCase,
	)

	goalController := controller.NewGoalController(
		createGoalUseCase,
		listGoalsUseCase,
		updateGoalUseCase,
		deleteGoalUseCase,
	)

	coachingController := controller.NewCoachingController(
		getReportUseCase,
		getNarrativeUseCase,
		queueDigestUseCase,
	)

	reportsController := controller.NewReportsController(
		getSpendingReportUseCase,
		getMonthlyTrendsUseCase,
	)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		transactionController,
		budgetController,
		scheduledPurchaseController,
		goalController,
		coachingController,
		reportsController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:      cfg,
		DB:          db,
		Router:      r,
		RedisClient: redisClient,
		EmailWorker: emailWorker,
	}
}
