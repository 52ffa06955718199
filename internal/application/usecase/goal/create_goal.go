// Package goal contains financial goal use cases.
package goal

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

// CreateGoalInput represents the input for goal creation.
type CreateGoalInput struct {
	UserID       uuid.UUID
	Title        string
	Description  string
	TargetAmount decimal.Decimal
	TargetDate   time.Time
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal *entity.FinancialGoal
}

// CreateGoalUseCase handles goal creation logic.
type CreateGoalUseCase struct {
	goalRepo    adapter.GoalRepository
	reportCache adapter.ReportCache
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.GoalRepository, reportCache adapter.ReportCache) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		goalRepo:    goalRepo,
		reportCache: reportCache,
	}
}

// Execute performs the goal creation.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	if input.TargetAmount.LessThanOrEqual(decimal.Zero) {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidTargetAmount,
			"target amount must be greater than zero",
			domainerror.ErrInvalidTargetAmount,
		)
	}

	if !input.TargetDate.IsZero() && input.TargetDate.Before(time.Now()) {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidTargetDate,
			"target date must be in the future",
			domainerror.ErrInvalidTargetDate,
		)
	}

	goal := entity.NewFinancialGoal(
		input.UserID,
		input.Title,
		input.Description,
		input.TargetAmount,
		input.TargetDate,
	)

	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	invalidateReportCache(ctx, uc.reportCache, input.UserID)

	return &CreateGoalOutput{
		Goal: goal,
	}, nil
}
