// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashcoach/backend/internal/application/adapter"
	"github.com/cashcoach/backend/internal/domain/entity"
	domainerror "github.com/cashcoach/backend/internal/domain/error"
)

// UpdateBudgetInput represents the input for budget update.
// Nil fields are left unchanged.
type UpdateBudgetInput struct {
	BudgetID  uuid.UUID
	UserID    uuid.UUID
	Name      *string
	Category  *string
	Amount    *decimal.Decimal
	Period    *entity.BudgetPeriod
	StartDate *time.Time
	EndDate   *time.Time
}

// UpdateBudgetOutput represents the output of budget update.
type UpdateBudgetOutput struct {
	Budget *entity.Budget
}

// UpdateBudgetUseCase handles budget update logic.
type UpdateBudgetUseCase struct {
	budgetRepo  adapter.BudgetRepository
	reportCache adapter.ReportCache
}

// NewUpdateBudgetUseCase creates a new UpdateBudgetUseCase instance.
func NewUpdateBudgetUseCase(budgetRepo adapter.BudgetRepository, reportCache adapter.ReportCache) *UpdateBudgetUseCase {
	return &UpdateBudgetUseCase{
		budgetRepo:  budgetRepo,
		reportCache: reportCache,
	}
}

// Execute performs the budget update.
func (uc *UpdateBudgetUseCase) Execute(ctx context.Context, input UpdateBudgetInput) (*UpdateBudgetOutput, error) {
	budget, err := uc.budgetRepo.FindByID(ctx, input.BudgetID)
	if err != nil {
		if errors.Is(err, domainerror.ErrBudgetNotFound) {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeBudgetNotFound,
				"budget not found",
				domainerror.ErrBudgetNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find budget: %w", err)
	}

	if budget.UserID != input.UserID {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeNotAuthorizedBudget,
			"not authorized to modify budget",
			domainerror.ErrNotAuthorizedToModifyBudget,
		)
	}

	if input.Name != nil {
		budget.Name = *input.Name
	}
	if input.Category != nil {
		budget.Category = *input.Category
		if budget.Category == "" {
			budget.Category = entity.DefaultCategory
		}
	}
	if input.Amount != nil {
		if input.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeInvalidBudgetAmount,
				"amount must be greater than zero",
				domainerror.ErrInvalidBudgetAmount,
			)
		}
		budget.Amount = *input.Amount
	}
	if input.Period != nil {
		if !isValidBudgetPeriod(*input.Period) {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeInvalidBudgetPeriod,
				"period must be 'weekly', 'monthly', or 'yearly'",
				domainerror.ErrInvalidBudgetPeriod,
			)
		}
		budget.Period = *input.Period
	}
	if input.StartDate != nil {
		budget.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		budget.EndDate = *input.EndDate
	}

	if !budget.EndDate.IsZero() && budget.EndDate.Before(budget.StartDate) {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetDateRange,
			"end date must be after start date",
			domainerror.ErrInvalidBudgetDateRange,
		)
	}

	budget.UpdatedAt = time.Now().UTC()

	if err := uc.budgetRepo.Update(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}

	invalidateReportCache(ctx, uc.reportCache, input.UserID)

	return &UpdateBudgetOutput{
		Budget: budget,
	}, nil
}
