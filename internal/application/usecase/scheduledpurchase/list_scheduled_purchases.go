// Package scheduledpurchase contains scheduled purchase use cases.
package scheduledpurchase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cashcoach/backend/internal/application/adapter"
	"github.com/cashcoach/backend/internal/domain/entity"
)

// ListScheduledPurchasesInput represents the input for listing scheduled purchases.
type ListScheduledPurchasesInput struct {
	UserID uuid.UUID
}

// ListScheduledPurchasesOutput represents the output of listing scheduled purchases.
type ListScheduledPurchasesOutput struct {
	Purchases []*entity.ScheduledPurchase
}

// ListScheduledPurchasesUseCase handles listing scheduled purchases logic.
type ListScheduledPurchasesUseCase struct {
	purchaseRepo adapter.ScheduledPurchaseRepository
}

// NewListScheduledPurchasesUseCase creates a new ListScheduledPurchasesUseCase instance.
func NewListScheduledPurchasesUseCase(purchaseRepo adapter.ScheduledPurchaseRepository) *ListScheduledPurchasesUseCase {
	return &ListScheduledPurchasesUseCase{
		purchaseRepo: purchaseRepo,
	}
}

// Execute performs the scheduled purchase listing, soonest due first.
func (uc *ListScheduledPurchasesUseCase) Execute(ctx context.Context, input ListScheduledPurchasesInput) (*ListScheduledPurchasesOutput, error) {
	purchases, err := uc.purchaseRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list scheduled purchases: %w", err)
	}

	return &ListScheduledPurchasesOutput{
		Purchases: purchases,
	}, nil
}
