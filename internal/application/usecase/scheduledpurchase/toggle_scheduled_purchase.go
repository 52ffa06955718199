// Package scheduledpurchase contains scheduled purchase use cases.
package scheduledpurchase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cashcoach/backend/internal/application/adapter"
	"github.com/cashcoach/backend/internal/domain/entity"
)

// ToggleScheduledPurchaseInput represents the input for toggling a scheduled purchase.
type ToggleScheduledPurchaseInput struct {
	PurchaseID uuid.UUID
	UserID     uuid.UUID
}

// ToggleScheduledPurchaseOutput represents the output of toggling a scheduled purchase.
type ToggleScheduledPurchaseOutput struct {
	Purchase *entity.ScheduledPurchase
}

// ToggleScheduledPurchaseUseCase flips a scheduled purchase between active
// and paused. Paused purchases drop out of coaching projections.
type ToggleScheduledPurchaseUseCase struct {
	purchaseRepo adapter.ScheduledPurchaseRepository
	reportCache  adapter.ReportCache
}

// NewToggleScheduledPurchaseUseCase creates a new ToggleScheduledPurchaseUseCase instance.
func NewToggleScheduledPurchaseUseCase(
	purchaseRepo adapter.ScheduledPurchaseRepository,
	reportCache adapter.ReportCache,
) *ToggleScheduledPurchaseUseCase {
	return &ToggleScheduledPurchaseUseCase{
		purchaseRepo: purchaseRepo,
		reportCache:  reportCache,
	}
}

// Execute flips the active flag.
func (uc *ToggleScheduledPurchaseUseCase) Execute(ctx context.Context, input ToggleScheduledPurchaseInput) (*ToggleScheduledPurchaseOutput, error) {
	purchase, err := findOwnedPurchase(ctx, uc.purchaseRepo, input.PurchaseID, input.UserID)
	if err != nil {
		return nil, err
	}

	purchase.IsActive = !purchase.IsActive
	purchase.UpdatedAt = time.Now().UTC()

	if err := uc.purchaseRepo.Update(ctx, purchase); err != nil {
		return nil, fmt.Errorf("failed to toggle scheduled purchase: %w", err)
	}

	invalidateReportCache(ctx, uc.reportCache, input.UserID)

	return &ToggleScheduledPurchaseOutput{
		Purchase: purchase,
	}, nil
}
