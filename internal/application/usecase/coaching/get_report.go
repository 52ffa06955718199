package coaching

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cashcoach/backend/internal/application/adapter"
	"github.com/cashcoach/backend/internal/domain/entity"
)

// GetReportInput represents the input for computing a coaching report.
type GetReportInput struct {
	UserID       uuid.UUID
	ForceRefresh bool
}

// GetReportOutput represents the output of computing a coaching report.
type GetReportOutput struct {
	Report    *entity.CoachingReport
	FromCache bool
}

// GetReportUseCase fetches the user's input collections, runs the analysis
// engine over the snapshot and caches the result.
type GetReportUseCase struct {
	transactionRepo adapter.TransactionRepository
	budgetRepo      adapter.BudgetRepository
	scheduledRepo   adapter.ScheduledPurchaseRepository
	goalRepo        adapter.GoalRepository
	cache           adapter.ReportCache

	// now is the reference time source; replaced in tests.
	now func() time.Time
}

// NewGetReportUseCase creates a new GetReportUseCase instance. The cache may
// be nil, in which case every call recomputes.
func NewGetReportUseCase(
	transactionRepo adapter.TransactionRepository,
	budgetRepo adapter.BudgetRepository,
	scheduledRepo adapter.ScheduledPurchaseRepository,
	goalRepo adapter.GoalRepository,
	cache adapter.ReportCache,
) *GetReportUseCase {
	return &GetReportUseCase{
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
		scheduledRepo:   scheduledRepo,
		goalRepo:        goalRepo,
		cache:           cache,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

// Execute computes (or returns a cached) coaching report for the user.
//
// The four input collections are fetched concurrently; a failed fetch is
// logged and replaced with an empty collection so the engine always runs
// over a complete snapshot. The engine itself cannot fail.
func (uc *GetReportUseCase) Execute(ctx context.Context, input GetReportInput) (*GetReportOutput, error) {
	if uc.cache != nil && !input.ForceRefresh {
		cached, err := uc.cache.Get(ctx, input.UserID)
		if err != nil {
			slog.Warn("Report cache read failed", "user_id", input.UserID, "error", err)
		} else if cached != nil {
			return &GetReportOutput{Report: cached, FromCache: true}, nil
		}
	}

	snapshot := uc.fetchSnapshot(ctx, input.UserID)
	now := uc.now()

	patterns := AnalyzePatterns(snapshot.transactions, now)
	report := &entity.CoachingReport{
		GeneratedAt: now,
		Patterns:    patterns,
		Recommendations: DeriveRecommendations(
			snapshot.transactions, snapshot.budgets, patterns, snapshot.scheduled, now,
		),
		Insights: DeriveInsights(snapshot.transactions, snapshot.budgets, snapshot.scheduled),
		Goals: DeriveGoals(
			snapshot.transactions, snapshot.budgets, snapshot.scheduled, snapshot.goals, now,
		),
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, input.UserID, report); err != nil {
			slog.Warn("Report cache write failed", "user_id", input.UserID, "error", err)
		}
	}

	return &GetReportOutput{Report: report}, nil
}

// inputSnapshot is one consistent view of the user's data. All four
// collections are resolved before analysis begins; partial results are
// never analyzed.
type inputSnapshot struct {
	transactions []*entity.Transaction
	budgets      []*entity.Budget
	scheduled    []*entity.ScheduledPurchase
	goals        []*entity.FinancialGoal
}

// fetchSnapshot loads the four collections in parallel. Each failed fetch
// degrades to an empty collection.
func (uc *GetReportUseCase) fetchSnapshot(ctx context.Context, userID uuid.UUID) *inputSnapshot {
	snapshot := &inputSnapshot{}

	var wg sync.WaitGroup
	wg.Add(4)

	go func() {
		defer wg.Done()
		transactions, err := uc.transactionRepo.FindByUser(ctx, userID)
		if err != nil {
			slog.Warn("Failed to load transactions for coaching report", "user_id", userID, "error", err)
			return
		}
		snapshot.transactions = transactions
	}()

	go func() {
		defer wg.Done()
		budgets, err := uc.budgetRepo.FindByUserID(ctx, userID)
		if err != nil {
			slog.Warn("Failed to load budgets for coaching report", "user_id", userID, "error", err)
			return
		}
		snapshot.budgets = budgets
	}()

	go func() {
		defer wg.Done()
		scheduled, err := uc.scheduledRepo.FindByUserID(ctx, userID)
		if err != nil {
			slog.Warn("Failed to load scheduled purchases for coaching report", "user_id", userID, "error", err)
			return
		}
		snapshot.scheduled = scheduled
	}()

	go func() {
		defer wg.Done()
		goals, err := uc.goalRepo.FindByUserID(ctx, userID)
		if err != nil {
			slog.Warn("Failed to load goals for coaching report", "user_id", userID, "error", err)
			return
		}
		snapshot.goals = goals
	}()

	wg.Wait()
	return snapshot
}
