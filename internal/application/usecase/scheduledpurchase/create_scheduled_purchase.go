// Package scheduledpurchase contains scheduled purchase use cases.
package scheduledpurchase

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

// CreateScheduledPurchaseInput represents the input for scheduled purchase creation.
type CreateScheduledPurchaseInput struct {
	UserID    uuid.UUID
	Name      string
	Category  string
	Amount    decimal.Decimal
	Frequency entity.PurchaseFrequency
	NextDue   time.Time
}

// CreateScheduledPurchaseOutput represents the output of scheduled purchase creation.
type CreateScheduledPurchaseOutput struct {
	Purchase *entity.ScheduledPurchase
}

// CreateScheduledPurchaseUseCase handles scheduled purchase creation logic.
type CreateScheduledPurchaseUseCase struct {
	purchaseRepo adapter.ScheduledPurchaseRepository
	reportCache  adapter.ReportCache
}

// NewCreateScheduledPurchaseUseCase creates a new CreateScheduledPurchaseUseCase instance.
func NewCreateScheduledPurchaseUseCase(
	purchaseRepo adapter.ScheduledPurchaseRepository,
	reportCache adapter.ReportCache,
) *CreateScheduledPurchaseUseCase {
	return &CreateScheduledPurchaseUseCase{
		purchaseRepo: purchaseRepo,
		reportCache:  reportCache,
	}
}

// Execute performs the scheduled purchase creation.
func (uc *CreateScheduledPurchaseUseCase) Execute(ctx context.Context, input CreateScheduledPurchaseInput) (*CreateScheduledPurchaseOutput, error) {
	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domainerror.NewScheduledPurchaseError(
			domainerror.ErrCodeInvalidPurchaseAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidPurchaseAmount,
		)
	}

	if !isValidPurchaseFrequency(input.Frequency) {
		return nil, domainerror.NewScheduledPurchaseError(
			domainerror.ErrCodeInvalidPurchaseFrequency,
			"frequency must be 'daily', 'weekly', 'monthly', or 'yearly'",
			domainerror.ErrInvalidPurchaseFrequency,
		)
	}

	if input.NextDue.IsZero() {
		return nil, domainerror.NewScheduledPurchaseError(
			domainerror.ErrCodeInvalidNextDueDate,
			"next due date is required",
			domainerror.ErrInvalidNextDueDate,
		)
	}

	purchase := entity.NewScheduledPurchase(
		input.UserID,
		input.Name,
		input.Category,
		input.Amount,
		input.Frequency,
		input.NextDue,
	)

	if err := uc.purchaseRepo.Create(ctx, purchase); err != nil {
		return nil, fmt.Errorf("failed to create scheduled purchase: %w", err)
	}

	invalidateReportCache(ctx, uc.reportCache, input.UserID)

	return &CreateScheduledPurchaseOutput{
		Purchase: purchase,
	}, nil
}

// isValidPurchaseFrequency validates the purchase frequency.
func isValidPurchaseFrequency(frequency entity.PurchaseFrequency) bool {
	switch frequency {
	case entity.FrequencyDaily, entity.FrequencyWeekly, entity.FrequencyMonthly, entity.FrequencyYearly:
		return true
	default:
		return false
	}
}
