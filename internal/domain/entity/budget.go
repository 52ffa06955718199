// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetPeriod represents the period a budget covers.
type BudgetPeriod string

const (
	BudgetPeriodWeekly  BudgetPeriod = "weekly"
	BudgetPeriodMonthly BudgetPeriod = "monthly"
	BudgetPeriodYearly  BudgetPeriod = "yearly"
)

// Budget represents a spending ceiling for a category over a period.
// Spent may exceed Amount; an exceeded budget is a valid, detectable state.
type Budget struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Category  string
	Amount    decimal.Decimal
	Spent     decimal.Decimal
	Period    BudgetPeriod
	StartDate time.Time
	EndDate   time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // Soft-delete support
}

// NewBudget creates a new Budget entity with zero spending.
func NewBudget(
	userID uuid.UUID,
	name string,
	category string,
	amount decimal.Decimal,
	period BudgetPeriod,
	startDate, endDate time.Time,
) *Budget {
	now := time.Now().UTC()

	if category == "" {
		category = DefaultCategory
	}

	return &Budget{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Category:  category,
		Amount:    amount,
		Spent:     decimal.Zero,
		Period:    period,
		StartDate: startDate,
		EndDate:   endDate,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsExceeded returns true when spending has passed the budgeted ceiling.
func (b *Budget) IsExceeded() bool {
	return b.Spent.GreaterThan(b.Amount)
}

// UsageRatio returns spent/amount, or zero when the ceiling is zero.
func (b *Budget) UsageRatio() decimal.Decimal {
	if b.Amount.IsZero() {
		return decimal.Zero
	}
	return b.Spent.Div(b.Amount)
}
