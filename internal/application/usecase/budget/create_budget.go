// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashcoach/backend/internal/application/adapter"
	"github.com/cashcoach/backend/internal/domain/entity"
	domainerror "github.com/cashcoach/backend/internal/domain/error"
)

// CreateBudgetInput represents the input for budget creation.
type CreateBudgetInput struct {
	UserID    uuid.UUID
	Name      string
	Category  string
	Amount    decimal.Decimal
	Period    entity.BudgetPeriod
	StartDate time.Time
	EndDate   time.Time
}

// CreateBudgetOutput represents the output of budget creation.
type CreateBudgetOutput struct {
	Budget *entity.Budget
}

// CreateBudgetUseCase handles budget creation logic.
type CreateBudgetUseCase struct {
	budgetRepo  adapter.BudgetRepository
	reportCache adapter.ReportCache
}

// NewCreateBudgetUseCase creates a new CreateBudgetUseCase instance.
func NewCreateBudgetUseCase(budgetRepo adapter.BudgetRepository, reportCache adapter.ReportCache) *CreateBudgetUseCase {
	return &CreateBudgetUseCase{
		budgetRepo:  budgetRepo,
		reportCache: reportCache,
	}
}

// Execute performs the budget creation.
func (uc *CreateBudgetUseCase) Execute(ctx context.Context, input CreateBudgetInput) (*CreateBudgetOutput, error) {
	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidBudgetAmount,
		)
	}

	if !isValidBudgetPeriod(input.Period) {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetPeriod,
			"period must be 'weekly', 'monthly', or 'yearly'",
			domainerror.ErrInvalidBudgetPeriod,
		)
	}

	if !input.EndDate.IsZero() && input.EndDate.Before(input.StartDate) {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetDateRange,
			"end date must be after start date",
			domainerror.ErrInvalidBudgetDateRange,
		)
	}

	budget := entity.NewBudget(
		input.UserID,
		input.Name,
		input.Category,
		input.Amount,
		input.Period,
		input.StartDate,
		input.EndDate,
	)

	if err := uc.budgetRepo.Create(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	invalidateReportCache(ctx, uc.reportCache, input.UserID)

	return &CreateBudgetOutput{
		Budget: budget,
	}, nil
}

// isValidBudgetPeriod validates the budget period.
func isValidBudgetPeriod(period entity.BudgetPeriod) bool {
	return period == entity.BudgetPeriodWeekly ||
		period == entity.BudgetPeriodMonthly ||
		period == entity.BudgetPeriodYearly
}
