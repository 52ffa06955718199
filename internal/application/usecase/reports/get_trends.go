// Package reports contains reporting use cases over transaction history.
package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GetMonthlyTrendsInput represents the input for getting monthly trends.
type GetMonthlyTrendsInput struct {
	UserID uuid.UUID
	Months int
}

// MonthlyTrendPoint represents a single month in the trend series.
type MonthlyTrendPoint struct {
	Month            time.Time       `json:"month"`
	Label            string          `json:"label"`
	Income           decimal.Decimal `json:"income"`
	Expenses         decimal.Decimal `json:"expenses"`
	Net              decimal.Decimal `json:"net"`
	TransactionCount int             `json:"transaction_count"`
}

// GetMonthlyTrendsOutput represents the output of getting monthly trends.
type GetMonthlyTrendsOutput struct {
	Period ReportPeriod        `json:"period"`
	Trends []MonthlyTrendPoint `json:"trends"`
}

// GetMonthlyTrendsUseCase handles getting per-month income/expense trends.
type GetMonthlyTrendsUseCase struct {
	reportsRepo ReportsRepository
	now         func() time.Time
}

// NewGetMonthlyTrendsUseCase creates a new GetMonthlyTrendsUseCase instance.
func NewGetMonthlyTrendsUseCase(reportsRepo ReportsRepository) *GetMonthlyTrendsUseCase {
	return &GetMonthlyTrendsUseCase{
		reportsRepo: reportsRepo,
		now:         time.Now,
	}
}

// Execute retrieves the per-month income/expense/net series over the
// requested range. Months with no transactions are included with zero values
// so the series has no gaps.
func (uc *GetMonthlyTrendsUseCase) Execute(
	ctx context.Context,
	input GetMonthlyTrendsInput,
) (*GetMonthlyTrendsOutput, error) {
	if input.Months == 0 {
		input.Months = DefaultRangeMonths
	}
	if err := validateMonths(input.Months); err != nil {
		return nil, err
	}

	startDate, endDate := reportRange(uc.now(), input.Months)

	rawTotals, err := uc.reportsRepo.GetMonthlyTotals(
		ctx,
		input.UserID,
		startDate,
		endDate,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get monthly totals: %w", err)
	}

	// Index raw data by month start for gap filling.
	totalsByMonth := make(map[string]RawMonthlyTotals, len(rawTotals))
	for _, raw := range rawTotals {
		key := monthKey(raw.MonthStart)
		totalsByMonth[key] = raw
	}

	trends := make([]MonthlyTrendPoint, 0, input.Months)
	for month := startDate; !month.After(endDate); month = month.AddDate(0, 1, 0) {
		point := MonthlyTrendPoint{
			Month:    month,
			Label:    month.Format("Jan 2006"),
			Income:   decimal.Zero,
			Expenses: decimal.Zero,
			Net:      decimal.Zero,
		}

		if raw, ok := totalsByMonth[monthKey(month)]; ok {
			point.Income = raw.Income
			point.Expenses = raw.Expenses
			point.Net = raw.Income.Sub(raw.Expenses)
			point.TransactionCount = raw.TransactionCount
		}

		trends = append(trends, point)
	}

	return &GetMonthlyTrendsOutput{
		Period: ReportPeriod{
			StartDate: startDate,
			EndDate:   endDate,
			Months:    input.Months,
		},
		Trends: trends,
	}, nil
}

// monthKey returns a unique key for the month containing the given date.
func monthKey(date time.Time) string {
	return date.Format("2006-01")
}
