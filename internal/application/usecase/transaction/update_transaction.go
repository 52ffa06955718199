// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashcoach/backend/internal/application/adapter"
	"github.com/cashcoach/backend/internal/domain/entity"
	domainerror "github.com/cashcoach/backend/internal/domain/error"
)

// UpdateTransactionInput represents the input for transaction update.
// Nil fields are left unchanged.
type UpdateTransactionInput struct {
	TransactionID uuid.UUID
	UserID        uuid.UUID
	Date          *time.Time
	Description   *string
	Amount        *decimal.Decimal
	Type          *entity.TransactionType
	Category      *string
	Merchant      *string
	Notes         *string
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	budgetRepo      adapter.BudgetRepository
	reportCache     adapter.ReportCache
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	budgetRepo adapter.BudgetRepository,
	reportCache adapter.ReportCache,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
		reportCache:     reportCache,
	}
}

// Execute performs the transaction update. Budget accruals are rebalanced
// when the expense amount or category changes.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	transaction, err := uc.transactionRepo.FindByID(ctx, input.TransactionID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionNotFound,
				"transaction not found",
				domainerror.ErrTransactionNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}

	if transaction.UserID != input.UserID {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeNotAuthorizedTransaction,
			"not authorized to modify transaction",
			domainerror.ErrNotAuthorizedToModifyTransaction,
		)
	}

	// Remember the pre-update expense accrual so it can be reversed.
	wasExpense := transaction.Type == entity.TransactionTypeExpense
	previousCategory := transaction.Category
	previousAmount := transaction.Amount

	if input.Date != nil {
		transaction.Date = *input.Date
	}
	if input.Description != nil {
		transaction.Description = *input.Description
	}
	if input.Amount != nil {
		transaction.Amount = input.Amount.Abs()
	}
	if input.Type != nil {
		transaction.Type = *input.Type
	}
	if input.Category != nil {
		transaction.Category = *input.Category
		if transaction.Category == "" {
			transaction.Category = entity.DefaultCategory
		}
	}
	if input.Merchant != nil {
		transaction.Merchant = *input.Merchant
	}
	if input.Notes != nil {
		transaction.Notes = *input.Notes
	}

	if err := validateTransactionFields(transaction.Description, transaction.Amount, transaction.Type, transaction.Date); err != nil {
		return nil, err
	}

	transaction.UpdatedAt = time.Now().UTC()

	if err := uc.transactionRepo.Update(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	uc.rebalanceBudgets(ctx, input.UserID, wasExpense, previousCategory, previousAmount, transaction)
	invalidateReportCache(ctx, uc.reportCache, input.UserID)

	return &UpdateTransactionOutput{
		Transaction: transaction,
	}, nil
}

// rebalanceBudgets reverses the old expense accrual and applies the new one.
// Best-effort: failures are logged, not returned.
func (uc *UpdateTransactionUseCase) rebalanceBudgets(
	ctx context.Context,
	userID uuid.UUID,
	wasExpense bool,
	previousCategory string,
	previousAmount decimal.Decimal,
	updated *entity.Transaction,
) {
	if wasExpense {
		if err := uc.budgetRepo.AddSpending(ctx, userID, previousCategory, previousAmount.Neg()); err != nil {
			slog.Warn("Failed to reverse budget accrual",
				"transactionID", updated.ID,
				"category", previousCategory,
				"error", err,
			)
		}
	}

	if updated.Type == entity.TransactionTypeExpense {
		if err := uc.budgetRepo.AddSpending(ctx, userID, updated.Category, updated.Amount); err != nil {
			slog.Warn("Failed to accrue transaction against budget",
				"transactionID", updated.ID,
				"category", updated.Category,
				"error", err,
			)
		}
	}
}
