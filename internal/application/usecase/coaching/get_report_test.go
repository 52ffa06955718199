package coaching

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashcoach/backend/internal/application/adapter"
	"github.com/cashcoach/backend/internal/domain/entity"
)

// fakeTransactionRepo serves a fixed slice; only FindByUser is exercised by
// the report use case.
type fakeTransactionRepo struct {
	transactions []*entity.Transaction
	err          error
}

func (r *fakeTransactionRepo) Create(ctx context.Context, tx *entity.Transaction) error { return nil }
func (r *fakeTransactionRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	return nil, nil
}
func (r *fakeTransactionRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, error) {
	return r.transactions, r.err
}
func (r *fakeTransactionRepo) List(ctx context.Context, filter adapter.TransactionFilter, pagination adapter.TransactionPagination) (*entity.TransactionListResult, error) {
	return nil, nil
}
func (r *fakeTransactionRepo) FindByDateRange(ctx context.Context, userID uuid.UUID, startDate, endDate time.Time) ([]*entity.Transaction, error) {
	return nil, nil
}
func (r *fakeTransactionRepo) GetTotals(ctx context.Context, userID uuid.UUID) (*entity.TransactionTotals, error) {
	return nil, nil
}
func (r *fakeTransactionRepo) Update(ctx context.Context, tx *entity.Transaction) error { return nil }
func (r *fakeTransactionRepo) Delete(ctx context.Context, id uuid.UUID) error           { return nil }

type fakeBudgetRepo struct {
	budgets []*entity.Budget
	err     error
}

func (r *fakeBudgetRepo) Create(ctx context.Context, b *entity.Budget) error { return nil }
func (r *fakeBudgetRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Budget, error) {
	return nil, nil
}
func (r *fakeBudgetRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Budget, error) {
	return r.budgets, r.err
}
func (r *fakeBudgetRepo) Update(ctx context.Context, b *entity.Budget) error { return nil }
func (r *fakeBudgetRepo) AddSpending(ctx context.Context, userID uuid.UUID, category string, amount decimal.Decimal) error {
	return nil
}
func (r *fakeBudgetRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

type fakeScheduledRepo struct {
	purchases []*entity.ScheduledPurchase
	err       error
}

func (r *fakeScheduledRepo) Create(ctx context.Context, p *entity.ScheduledPurchase) error {
	return nil
}
func (r *fakeScheduledRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.ScheduledPurchase, error) {
	return nil, nil
}
func (r *fakeScheduledRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.ScheduledPurchase, error) {
	return r.purchases, r.err
}
func (r *fakeScheduledRepo) Update(ctx context.Context, p *entity.ScheduledPurchase) error {
	return nil
}
func (r *fakeScheduledRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

type fakeGoalRepo struct {
	goals []*entity.FinancialGoal
	err   error
}

func (r *fakeGoalRepo) Create(ctx context.Context, g *entity.FinancialGoal) error { return nil }
func (r *fakeGoalRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.FinancialGoal, error) {
	return nil, nil
}
func (r *fakeGoalRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.FinancialGoal, error) {
	return r.goals, r.err
}
func (r *fakeGoalRepo) Update(ctx context.Context, g *entity.FinancialGoal) error { return nil }
func (r *fakeGoalRepo) Delete(ctx context.Context, id uuid.UUID) error            { return nil }

// fakeReportCache stores at most one report in memory.
type fakeReportCache struct {
	report  *entity.CoachingReport
	getErr  error
	setErr  error
	gets    int
	sets    int
}

func (c *fakeReportCache) Get(ctx context.Context, userID uuid.UUID) (*entity.CoachingReport, error) {
	c.gets++
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.report, nil
}

func (c *fakeReportCache) Set(ctx context.Context, userID uuid.UUID, report *entity.CoachingReport) error {
	c.sets++
	if c.setErr != nil {
		return c.setErr
	}
	c.report = report
	return nil
}

func (c *fakeReportCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	c.report = nil
	return nil
}

func reportUseCase(
	txRepo *fakeTransactionRepo,
	budgetRepo *fakeBudgetRepo,
	scheduledRepo *fakeScheduledRepo,
	goalRepo *fakeGoalRepo,
	cache adapter.ReportCache,
) *GetReportUseCase {
	uc := NewGetReportUseCase(txRepo, budgetRepo, scheduledRepo, goalRepo, cache)
	uc.now = func() time.Time { return analysisNow }
	return uc
}

func TestGetReportUseCase_ComputesReport(t *testing.T) {
	uc := reportUseCase(
		&fakeTransactionRepo{transactions: []*entity.Transaction{
			income(3000, thisMonth(1)),
			expense("Food", 600, thisMonth(5)),
		}},
		&fakeBudgetRepo{budgets: []*entity.Budget{budget("Food", 1000, 600)}},
		&fakeScheduledRepo{},
		&fakeGoalRepo{},
		nil,
	)

	output, err := uc.Execute(context.Background(), GetReportInput{UserID: uuid.New()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.FromCache {
		t.Error("expected a freshly computed report")
	}

	report := output.Report
	if !report.GeneratedAt.Equal(analysisNow) {
		t.Errorf("expected generation time %s, got %s", analysisNow, report.GeneratedAt)
	}
	if len(report.Patterns) != 1 {
		t.Errorf("expected 1 pattern, got %d", len(report.Patterns))
	}
	if len(report.Recommendations) == 0 {
		t.Error("expected recommendations for this snapshot")
	}
	if len(report.Insights) == 0 {
		t.Error("expected insights for this snapshot")
	}
	if _, ok := findGoal(report.Goals, "emergency_fund"); !ok {
		t.Error("expected the emergency fund goal in the report")
	}
}

func TestGetReportUseCase_CacheRoundTrip(t *testing.T) {
	cache := &fakeReportCache{}
	uc := reportUseCase(
		&fakeTransactionRepo{transactions: []*entity.Transaction{expense("Food", 600, thisMonth(5))}},
		&fakeBudgetRepo{},
		&fakeScheduledRepo{},
		&fakeGoalRepo{},
		cache,
	)

	first, err := uc.Execute(context.Background(), GetReportInput{UserID: uuid.New()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.FromCache {
		t.Error("first call should compute")
	}
	if cache.sets != 1 {
		t.Errorf("expected one cache write, got %d", cache.sets)
	}

	second, err := uc.Execute(context.Background(), GetReportInput{UserID: uuid.New()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !second.FromCache {
		t.Error("second call should hit the cache")
	}
	if second.Report != first.Report {
		t.Error("expected the cached report instance")
	}
}

func TestGetReportUseCase_ForceRefreshSkipsCache(t *testing.T) {
	cache := &fakeReportCache{report: &entity.CoachingReport{GeneratedAt: analysisNow.Add(-time.Hour)}}
	uc := reportUseCase(
		&fakeTransactionRepo{transactions: []*entity.Transaction{expense("Food", 600, thisMonth(5))}},
		&fakeBudgetRepo{},
		&fakeScheduledRepo{},
		&fakeGoalRepo{},
		cache,
	)

	output, err := uc.Execute(context.Background(), GetReportInput{UserID: uuid.New(), ForceRefresh: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.FromCache {
		t.Error("force refresh must recompute")
	}
	if cache.gets != 0 {
		t.Errorf("expected no cache reads on force refresh, got %d", cache.gets)
	}
	if cache.sets != 1 {
		t.Errorf("expected the fresh report to be cached, got %d writes", cache.sets)
	}
}

func TestGetReportUseCase_CacheFailuresDegrade(t *testing.T) {
	cache := &fakeReportCache{
		getErr: errors.New("redis down"),
		setErr: errors.New("redis down"),
	}
	uc := reportUseCase(
		&fakeTransactionRepo{transactions: []*entity.Transaction{expense("Food", 600, thisMonth(5))}},
		&fakeBudgetRepo{},
		&fakeScheduledRepo{},
		&fakeGoalRepo{},
		cache,
	)

	output, err := uc.Execute(context.Background(), GetReportInput{UserID: uuid.New()})
	if err != nil {
		t.Fatalf("expected cache failures to degrade, got error: %v", err)
	}
	if output.Report == nil || output.FromCache {
		t.Error("expected a fresh report despite cache failures")
	}
}

func TestGetReportUseCase_RepositoryFailuresDegrade(t *testing.T) {
	// A failed budget fetch leaves budgets empty; the rest of the report is
	// still computed from what loaded.
	uc := reportUseCase(
		&fakeTransactionRepo{transactions: []*entity.Transaction{
			income(3000, thisMonth(1)),
			expense("Food", 600, thisMonth(5)),
		}},
		&fakeBudgetRepo{err: errors.New("connection reset")},
		&fakeScheduledRepo{err: errors.New("connection reset")},
		&fakeGoalRepo{},
		nil,
	)

	output, err := uc.Execute(context.Background(), GetReportInput{UserID: uuid.New()})
	if err != nil {
		t.Fatalf("expected repository failures to degrade, got error: %v", err)
	}
	if len(output.Report.Patterns) != 1 {
		t.Errorf("expected patterns from the loaded transactions, got %d", len(output.Report.Patterns))
	}
	for _, in := range output.Report.Insights {
		if in.Title == "Budget Discipline Success" {
			t.Error("expected no budget insight when budgets failed to load")
		}
	}
}

func TestGetReportUseCase_EmptyAccount(t *testing.T) {
	uc := reportUseCase(
		&fakeTransactionRepo{}, &fakeBudgetRepo{}, &fakeScheduledRepo{}, &fakeGoalRepo{}, nil,
	)

	output, err := uc.Execute(context.Background(), GetReportInput{UserID: uuid.New()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	report := output.Report
	if report.Patterns == nil || report.Recommendations == nil || report.Insights == nil || report.Goals == nil {
		t.Error("expected empty, non-nil collections for an empty account")
	}
	if len(report.Patterns)+len(report.Recommendations)+len(report.Insights)+len(report.Goals) != 0 {
		t.Error("expected a fully empty report for an empty account")
	}
}
