// Package scheduledpurchase contains scheduled purchase use cases.
package scheduledpurchase

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

// UpdateScheduledPurchaseInput represents the input for scheduled purchase update.
// Nil fields are left unchanged.
type UpdateScheduledPurchaseInput struct {
	PurchaseID uuid.UUID
	UserID     uuid.UUID
	Name       *string
	Category   *string
	Amount     *decimal.Decimal
	Frequency  *entity.PurchaseFrequency
	NextDue    *time.Time
	IsActive   *bool
}

// UpdateScheduledPurchaseOutput represents the output of scheduled purchase update.
type UpdateScheduledPurchaseOutput struct {
	Purchase *entity.ScheduledPurchase
}

// UpdateScheduledPurchaseUseCase handles scheduled purchase update logic.
type UpdateScheduledPurchaseUseCase struct {
	purchaseRepo adapter.ScheduledPurchaseRepository
	reportCache  adapter.ReportCache
}

// NewUpdateScheduledPurchaseUseCase creates a new UpdateScheduledPurchaseUseCase instance.
func NewUpdateScheduledPurchaseUseCase(
	purchaseRepo adapter.ScheduledPurchaseRepository,
	reportCache adapter.ReportCache,
) *UpdateScheduledPurchaseUseCase {
	return &UpdateScheduledPurchaseUseCase{
		purchaseRepo: purchaseRepo,
		reportCache:  reportCache,
	}
}

// Execute performs the scheduled purchase update.
func (uc *UpdateScheduledPurchaseUseCase) Execute(ctx context.Context, input UpdateScheduledPurchaseInput) (*UpdateScheduledPurchaseOutput, error) {
	purchase, err := findOwnedPurchase(ctx, uc.purchaseRepo, input.PurchaseID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		purchase.Name = *input.Name
	}
	if input.Category != nil {
		purchase.Category = *input.Category
		if purchase.Category == "" {
			purchase.Category = entity.DefaultCategory
		}
	}
	if input.Amount != nil {
		if input.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, domainerror.NewScheduledPurchaseError(
				domainerror.ErrCodeInvalidPurchaseAmount,
				"amount must be greater than zero",
				domainerror.ErrInvalidPurchaseAmount,
			)
		}
		purchase.Amount = *input.Amount
	}
	if input.Frequency != nil {
		if !isValidPurchaseFrequency(*input.Frequency) {
			return nil, domainerror.NewScheduledPurchaseError(
				domainerror.ErrCodeInvalidPurchaseFrequency,
				"frequency must be 'daily', 'weekly', 'monthly', or 'yearly'",
				domainerror.ErrInvalidPurchaseFrequency,
			)
		}
		purchase.Frequency = *input.Frequency
	}
	if input.NextDue != nil {
		if input.NextDue.IsZero() {
			return nil, domainerror.NewScheduledPurchaseError(
				domainerror.ErrCodeInvalidNextDueDate,
				"next due date is required",
				domainerror.ErrInvalidNextDueDate,
			)
		}
		purchase.NextDue = *input.NextDue
	}
	if input.IsActive != nil {
		purchase.IsActive = *input.IsActive
	}

	purchase.UpdatedAt = time.Now().UTC()

	if err := uc.purchaseRepo.Update(ctx, purchase); err != nil {
		return nil, fmt.Errorf("failed to update scheduled purchase: %w", err)
	}

	invalidateReportCache(ctx, uc.reportCache, input.UserID)

	return &UpdateScheduledPurchaseOutput{
		Purchase: purchase,
	}, nil
}

// findOwnedPurchase loads a purchase and verifies it belongs to the user.
func findOwnedPurchase(
	ctx context.Context,
	repo adapter.ScheduledPurchaseRepository,
	purchaseID, userID uuid.UUID,
) (*entity.ScheduledPurchase, error) {
	purchase, err := repo.FindByID(ctx, purchaseID)
	if err != nil {
		if errors.Is(err, domainerror.ErrScheduledPurchaseNotFound) {
			return nil, domainerror.NewScheduledPurchaseError(
				domainerror.ErrCodeScheduledPurchaseNotFound,
				"scheduled purchase not found",
				domainerror.ErrScheduledPurchaseNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find scheduled purchase: %w", err)
	}

	if purchase.UserID != userID {
		return nil, domainerror.NewScheduledPurchaseError(
			domainerror.ErrCodeNotAuthorizedPurchase,
			"not authorized to modify scheduled purchase",
			domainerror.ErrNotAuthorizedToModifyPurchase,
		)
	}

	return purchase, nil
}
