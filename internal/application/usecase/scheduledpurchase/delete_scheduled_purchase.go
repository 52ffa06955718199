// Package scheduledpurchase contains scheduled purchase use cases.
package scheduledpurchase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cashcoach/backend/internal/application/adapter"
)

// DeleteScheduledPurchaseInput represents the input for scheduled purchase deletion.
type DeleteScheduledPurchaseInput struct {
	PurchaseID uuid.UUID
	UserID     uuid.UUID
}

// DeleteScheduledPurchaseUseCase handles scheduled purchase deletion logic.
type DeleteScheduledPurchaseUseCase struct {
	purchaseRepo adapter.ScheduledPurchaseRepository
	reportCache  adapter.ReportCache
}

// NewDeleteScheduledPurchaseUseCase creates a new DeleteScheduledPurchaseUseCase instance.
func NewDeleteScheduledPurchaseUseCase(
	purchaseRepo adapter.ScheduledPurchaseRepository,
	reportCache adapter.ReportCache,
) *DeleteScheduledPurchaseUseCase {
	return &DeleteScheduledPurchaseUseCase{
		purchaseRepo: purchaseRepo,
		reportCache:  reportCache,
	}
}

// Execute performs the scheduled purchase deletion.
func (uc *DeleteScheduledPurchaseUseCase) Execute(ctx context.Context, input DeleteScheduledPurchaseInput) error {
	if _, err := findOwnedPurchase(ctx, uc.purchaseRepo, input.PurchaseID, input.UserID); err != nil {
		return err
	}

	if err := uc.purchaseRepo.Delete(ctx, input.PurchaseID); err != nil {
		return fmt.Errorf("failed to delete scheduled purchase: %w", err)
	}

	invalidateReportCache(ctx, uc.reportCache, input.UserID)

	return nil
}
