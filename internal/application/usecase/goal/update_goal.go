// Package goal contains financial goal use cases.
package goal

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

// UpdateGoalInput represents the input for goal update.
// Nil fields are left unchanged.
type UpdateGoalInput struct {
	GoalID        uuid.UUID
	UserID        uuid.UUID
	Title         *string
	Description   *string
	TargetAmount  *decimal.Decimal
	CurrentAmount *decimal.Decimal
	TargetDate    *time.Time
	IsCompleted   *bool
}

// UpdateGoalOutput represents the output of goal update.
type UpdateGoalOutput struct {
	Goal *entity.FinancialGoal
}

// UpdateGoalUseCase handles goal update logic.
type UpdateGoalUseCase struct {
	goalRepo    adapter.GoalRepository
	reportCache adapter.ReportCache
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(goalRepo adapter.GoalRepository, reportCache adapter.ReportCache) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{
		goalRepo:    goalRepo,
		reportCache: reportCache,
	}
}

// Execute performs the goal update. A goal whose saved amount reaches its
// target is marked completed automatically.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*UpdateGoalOutput, error) {
	goal, err := findOwnedGoal(ctx, uc.goalRepo, input.GoalID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		goal.Title = *input.Title
	}
	if input.Description != nil {
		goal.Description = *input.Description
	}
	if input.TargetAmount != nil {
		if input.TargetAmount.LessThanOrEqual(decimal.Zero) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidTargetAmount,
				"target amount must be greater than zero",
				domainerror.ErrInvalidTargetAmount,
			)
		}
		goal.TargetAmount = *input.TargetAmount
	}
	if input.CurrentAmount != nil {
		goal.CurrentAmount = *input.CurrentAmount
	}
	if input.TargetDate != nil {
		goal.TargetDate = *input.TargetDate
	}
	if input.IsCompleted != nil {
		goal.IsCompleted = *input.IsCompleted
	}

	if !goal.IsCompleted && goal.CurrentAmount.GreaterThanOrEqual(goal.TargetAmount) {
		goal.IsCompleted = true
	}

	goal.UpdatedAt = time.Now().UTC()

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	invalidateReportCache(ctx, uc.reportCache, input.UserID)

	return &UpdateGoalOutput{
		Goal: goal,
	}, nil
}

// findOwnedGoal loads a goal and verifies it belongs to the user.
func findOwnedGoal(
	ctx context.Context,
	repo adapter.GoalRepository,
	goalID, userID uuid.UUID,
) (*entity.FinancialGoal, error) {
	goal, err := repo.FindByID(ctx, goalID)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeGoalNotFound,
				"goal not found",
				domainerror.ErrGoalNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}

	if goal.UserID != userID {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeUnauthorizedGoalAccess,
			"unauthorized access to goal",
			domainerror.ErrUnauthorizedGoalAccess,
		)
	}

	return goal, nil
}
