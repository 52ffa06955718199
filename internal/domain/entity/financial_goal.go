// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FinancialGoal represents a user-defined savings target in the Cash Coach
// system. Derived coaching goals are built from these plus spending data.
type FinancialGoal struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Title         string
	Description   string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	TargetDate    time.Time
	IsCompleted   bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time // Soft-delete support
}

// NewFinancialGoal creates a new FinancialGoal entity with zero progress.
func NewFinancialGoal(
	userID uuid.UUID,
	title string,
	description string,
	targetAmount decimal.Decimal,
	targetDate time.Time,
) *FinancialGoal {
	now := time.Now().UTC()

	return &FinancialGoal{
		ID:            uuid.New(),
		UserID:        userID,
		Title:         title,
		Description:   description,
		TargetAmount:  targetAmount,
		CurrentAmount: decimal.Zero,
		TargetDate:    targetDate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
