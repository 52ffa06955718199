// Package reports contains reporting use cases over transaction history.
package reports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/cashcoach/backend/internal/domain/error"
)

// ReportsRepository defines the interface for report data operations.
type ReportsRepository interface {
	// GetCategorySpending returns spending totals by category for a period,
	// along with the total expenses for the same period.
	GetCategorySpending(
		ctx context.Context,
		userID uuid.UUID,
		startDate, endDate time.Time,
	) ([]RawCategorySpending, decimal.Decimal, error)

	// GetMonthlyTotals returns income/expense totals aggregated by month.
	GetMonthlyTotals(
		ctx context.Context,
		userID uuid.UUID,
		startDate, endDate time.Time,
	) ([]RawMonthlyTotals, error)
}

// RawCategorySpending represents raw category spending data from the database.
type RawCategorySpending struct {
	Category         string
	Amount           decimal.Decimal
	TransactionCount int
}

// RawMonthlyTotals represents raw per-month totals from the database.
type RawMonthlyTotals struct {
	MonthStart       time.Time
	Income           decimal.Decimal
	Expenses         decimal.Decimal
	TransactionCount int
}

// Supported report ranges, in months.
const (
	RangeOneMonth     = 1
	RangeThreeMonths  = 3
	RangeSixMonths    = 6
	RangeTwelveMonths = 12
)

// DefaultRangeMonths is used when no range is requested.
const DefaultRangeMonths = RangeSixMonths

// validateMonths checks that the requested range is one of the supported values.
func validateMonths(months int) error {
	switch months {
	case RangeOneMonth, RangeThreeMonths, RangeSixMonths, RangeTwelveMonths:
		return nil
	default:
		return domainerror.NewReportsError(
			domainerror.ErrCodeInvalidReportRange,
			"months must be one of: 1, 3, 6, 12",
			domainerror.ErrInvalidReportRange,
		)
	}
}

// reportRange returns the period covered by a report: from the first day of
// the month months-1 months back through the current instant, so a 1-month
// report covers the current calendar month to date.
func reportRange(now time.Time, months int) (start, end time.Time) {
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return firstOfMonth.AddDate(0, 1-months, 0), now
}
