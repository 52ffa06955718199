// Package reports contains reporting use cases over transaction history.
package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GetSpendingReportInput represents the input for getting a spending report.
type GetSpendingReportInput struct {
	UserID uuid.UUID
	Months int
}

// CategorySpendingItem represents a single category in the spending report.
type CategorySpendingItem struct {
	Category         string          `json:"category"`
	Amount           decimal.Decimal `json:"amount"`
	Percentage       float64         `json:"percentage"`
	TransactionCount int             `json:"transaction_count"`
}

// GetSpendingReportOutput represents the output of getting a spending report.
type GetSpendingReportOutput struct {
	Period        ReportPeriod           `json:"period"`
	TotalExpenses decimal.Decimal        `json:"total_expenses"`
	Categories    []CategorySpendingItem `json:"categories"`
}

// ReportPeriod represents the period information for a report.
type ReportPeriod struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Months    int       `json:"months"`
}

// GetSpendingReportUseCase handles getting spending breakdown by category.
type GetSpendingReportUseCase struct {
	reportsRepo ReportsRepository
	now         func() time.Time
}

// NewGetSpendingReportUseCase creates a new GetSpendingReportUseCase instance.
func NewGetSpendingReportUseCase(reportsRepo ReportsRepository) *GetSpendingReportUseCase {
	return &GetSpendingReportUseCase{
		reportsRepo: reportsRepo,
		now:         time.Now,
	}
}

// Execute retrieves spending breakdown by category over the requested range.
func (uc *GetSpendingReportUseCase) Execute(
	ctx context.Context,
	input GetSpendingReportInput,
) (*GetSpendingReportOutput, error) {
	if input.Months == 0 {
		input.Months = DefaultRangeMonths
	}
	if err := validateMonths(input.Months); err != nil {
		return nil, err
	}

	startDate, endDate := reportRange(uc.now(), input.Months)

	rawSpending, totalExpenses, err := uc.reportsRepo.GetCategorySpending(
		ctx,
		input.UserID,
		startDate,
		endDate,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get category spending: %w", err)
	}

	categories := make([]CategorySpendingItem, 0, len(rawSpending))
	for _, raw := range rawSpending {
		var percentage float64
		if !totalExpenses.IsZero() {
			pct := raw.Amount.Mul(decimal.NewFromInt(100)).Div(totalExpenses)
			percentage, _ = pct.Round(2).Float64()
		}

		categories = append(categories, CategorySpendingItem{
			Category:         raw.Category,
			Amount:           raw.Amount,
			Percentage:       percentage,
			TransactionCount: raw.TransactionCount,
		})
	}

	return &GetSpendingReportOutput{
		Period: ReportPeriod{
			StartDate: startDate,
			EndDate:   endDate,
			Months:    input.Months,
		},
		TotalExpenses: totalExpenses,
		Categories:    categories,
	}, nil
}
