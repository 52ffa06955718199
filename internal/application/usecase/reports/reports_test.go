package reports

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/cashcoach/backend/internal/domain/error"
)

var reportNow = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

type fakeReportsRepo struct {
	spending      []RawCategorySpending
	totalExpenses decimal.Decimal
	monthly       []RawMonthlyTotals
	err           error

	lastStart time.Time
	lastEnd   time.Time
}

func (f *fakeReportsRepo) GetCategorySpending(_ context.Context, _ uuid.UUID, startDate, endDate time.Time) ([]RawCategorySpending, decimal.Decimal, error) {
	f.lastStart, f.lastEnd = startDate, endDate
	if f.err != nil {
		return nil, decimal.Zero, f.err
	}
	return f.spending, f.totalExpenses, nil
}

func (f *fakeReportsRepo) GetMonthlyTotals(_ context.Context, _ uuid.UUID, startDate, endDate time.Time) ([]RawMonthlyTotals, error) {
	f.lastStart, f.lastEnd = startDate, endDate
	if f.err != nil {
		return nil, f.err
	}
	return f.monthly, nil
}

func spendingUseCase(repo *fakeReportsRepo) *GetSpendingReportUseCase {
	uc := NewGetSpendingReportUseCase(repo)
	uc.now = func() time.Time { return reportNow }
	return uc
}

func trendsUseCase(repo *fakeReportsRepo) *GetMonthlyTrendsUseCase {
	uc := NewGetMonthlyTrendsUseCase(repo)
	uc.now = func() time.Time { return reportNow }
	return uc
}

func TestGetSpendingReport(t *testing.T) {
	userID := uuid.New()

	t.Run("computes percentages against total expenses", func(t *testing.T) {
		repo := &fakeReportsRepo{
			spending: []RawCategorySpending{
				{Category: "Food", Amount: decimal.NewFromInt(600), TransactionCount: 12},
				{Category: "Transport", Amount: decimal.NewFromInt(400), TransactionCount: 5},
			},
			totalExpenses: decimal.NewFromInt(1000),
		}

		out, err := spendingUseCase(repo).Execute(context.Background(), GetSpendingReportInput{
			UserID: userID,
			Months: 3,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(out.Categories) != 2 {
			t.Fatalf("expected 2 categories, got %d", len(out.Categories))
		}
		if out.Categories[0].Percentage != 60 {
			t.Errorf("expected Food at 60%%, got %v", out.Categories[0].Percentage)
		}
		if out.Categories[1].Percentage != 40 {
			t.Errorf("expected Transport at 40%%, got %v", out.Categories[1].Percentage)
		}
		if !out.TotalExpenses.Equal(decimal.NewFromInt(1000)) {
			t.Errorf("expected total 1000, got %s", out.TotalExpenses)
		}
	})

	t.Run("covers calendar months back from now", func(t *testing.T) {
		repo := &fakeReportsRepo{totalExpenses: decimal.Zero}

		out, err := spendingUseCase(repo).Execute(context.Background(), GetSpendingReportInput{
			UserID: userID,
			Months: 3,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		wantStart := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)
		if !repo.lastStart.Equal(wantStart) {
			t.Errorf("expected range start %s, got %s", wantStart, repo.lastStart)
		}
		if !repo.lastEnd.Equal(reportNow) {
			t.Errorf("expected range end %s, got %s", reportNow, repo.lastEnd)
		}
		if out.Period.Months != 3 {
			t.Errorf("expected period months 3, got %d", out.Period.Months)
		}
	})

	t.Run("defaults to six months when unset", func(t *testing.T) {
		repo := &fakeReportsRepo{totalExpenses: decimal.Zero}

		out, err := spendingUseCase(repo).Execute(context.Background(), GetSpendingReportInput{
			UserID: userID,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Period.Months != DefaultRangeMonths {
			t.Errorf("expected default range, got %d", out.Period.Months)
		}

		wantStart := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
		if !repo.lastStart.Equal(wantStart) {
			t.Errorf("expected range start %s, got %s", wantStart, repo.lastStart)
		}
	})

	t.Run("rejects unsupported range", func(t *testing.T) {
		repo := &fakeReportsRepo{}

		_, err := spendingUseCase(repo).Execute(context.Background(), GetSpendingReportInput{
			UserID: userID,
			Months: 5,
		})
		if err == nil {
			t.Fatal("expected error for months=5")
		}

		var reportsErr *domainerror.ReportsError
		if !errors.As(err, &reportsErr) {
			t.Fatalf("expected ReportsError, got %T", err)
		}
		if reportsErr.Code != domainerror.ErrCodeInvalidReportRange {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidReportRange, reportsErr.Code)
		}
	})

	t.Run("zero total yields zero percentages", func(t *testing.T) {
		repo := &fakeReportsRepo{
			spending: []RawCategorySpending{
				{Category: "Food", Amount: decimal.Zero, TransactionCount: 0},
			},
			totalExpenses: decimal.Zero,
		}

		out, err := spendingUseCase(repo).Execute(context.Background(), GetSpendingReportInput{
			UserID: userID,
			Months: 1,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Categories[0].Percentage != 0 {
			t.Errorf("expected 0%%, got %v", out.Categories[0].Percentage)
		}
	})

	t.Run("propagates repository errors", func(t *testing.T) {
		repo := &fakeReportsRepo{err: errors.New("db down")}

		_, err := spendingUseCase(repo).Execute(context.Background(), GetSpendingReportInput{
			UserID: userID,
			Months: 1,
		})
		if err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestGetMonthlyTrends(t *testing.T) {
	userID := uuid.New()

	t.Run("fills gaps with zero months", func(t *testing.T) {
		repo := &fakeReportsRepo{
			monthly: []RawMonthlyTotals{
				{
					MonthStart:       time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
					Income:           decimal.NewFromInt(2000),
					Expenses:         decimal.NewFromInt(1500),
					TransactionCount: 20,
				},
				{
					MonthStart:       time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
					Income:           decimal.NewFromInt(2000),
					Expenses:         decimal.NewFromInt(900),
					TransactionCount: 8,
				},
			},
		}

		out, err := trendsUseCase(repo).Execute(context.Background(), GetMonthlyTrendsInput{
			UserID: userID,
			Months: 3,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(out.Trends) != 3 {
			t.Fatalf("expected 3 trend points, got %d", len(out.Trends))
		}

		april := out.Trends[0]
		if april.Label != "Apr 2025" {
			t.Errorf("expected label Apr 2025, got %s", april.Label)
		}
		if !april.Net.Equal(decimal.NewFromInt(500)) {
			t.Errorf("expected April net 500, got %s", april.Net)
		}

		may := out.Trends[1]
		if may.Label != "May 2025" {
			t.Errorf("expected label May 2025, got %s", may.Label)
		}
		if !may.Income.IsZero() || !may.Expenses.IsZero() || may.TransactionCount != 0 {
			t.Errorf("expected empty May, got income=%s expenses=%s count=%d",
				may.Income, may.Expenses, may.TransactionCount)
		}

		june := out.Trends[2]
		if !june.Net.Equal(decimal.NewFromInt(1100)) {
			t.Errorf("expected June net 1100, got %s", june.Net)
		}
	})

	t.Run("single month range has one point", func(t *testing.T) {
		repo := &fakeReportsRepo{}

		out, err := trendsUseCase(repo).Execute(context.Background(), GetMonthlyTrendsInput{
			UserID: userID,
			Months: 1,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Trends) != 1 {
			t.Fatalf("expected 1 trend point, got %d", len(out.Trends))
		}
		if out.Trends[0].Label != "Jun 2025" {
			t.Errorf("expected Jun 2025, got %s", out.Trends[0].Label)
		}
	})

	t.Run("rejects unsupported range", func(t *testing.T) {
		repo := &fakeReportsRepo{}

		_, err := trendsUseCase(repo).Execute(context.Background(), GetMonthlyTrendsInput{
			UserID: userID,
			Months: 7,
		})
		if !errors.Is(err, domainerror.ErrInvalidReportRange) {
			t.Fatalf("expected ErrInvalidReportRange, got %v", err)
		}
	})

	t.Run("propagates repository errors", func(t *testing.T) {
		repo := &fakeReportsRepo{err: errors.New("db down")}

		_, err := trendsUseCase(repo).Execute(context.Background(), GetMonthlyTrendsInput{
			UserID: userID,
			Months: 12,
		})
		if err == nil {
			t.Fatal("expected error")
		}
	})
}
