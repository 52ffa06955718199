// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PurchaseFrequency represents how often a scheduled purchase recurs.
type PurchaseFrequency string

const (
	FrequencyDaily   PurchaseFrequency = "daily"
	FrequencyWeekly  PurchaseFrequency = "weekly"
	FrequencyMonthly PurchaseFrequency = "monthly"
	FrequencyYearly  PurchaseFrequency = "yearly"
)

// Scheduled purchase amounts are normalized to a monthly equivalent when
// estimating their recurring impact. Weeks per month uses the 4.33 average.
var (
	monthlyFactorDaily  = decimal.NewFromInt(30)
	monthlyFactorWeekly = decimal.NewFromFloat(4.33)
	monthlyFactorYearly = decimal.NewFromInt(12)
)

// ScheduledPurchase represents a recurring planned expense. Only active
// purchases participate in projections and coaching.
type ScheduledPurchase struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Category  string
	Amount    decimal.Decimal
	Frequency PurchaseFrequency
	NextDue   time.Time
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // Soft-delete support
}

// NewScheduledPurchase creates a new active ScheduledPurchase entity.
func NewScheduledPurchase(
	userID uuid.UUID,
	name string,
	category string,
	amount decimal.Decimal,
	frequency PurchaseFrequency,
	nextDue time.Time,
) *ScheduledPurchase {
	now := time.Now().UTC()

	if category == "" {
		category = DefaultCategory
	}

	return &ScheduledPurchase{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Category:  category,
		Amount:    amount,
		Frequency: frequency,
		NextDue:   nextDue,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// MonthlyEquivalent returns the purchase amount normalized to one month.
func (p *ScheduledPurchase) MonthlyEquivalent() decimal.Decimal {
	switch p.Frequency {
	case FrequencyDaily:
		return p.Amount.Mul(monthlyFactorDaily)
	case FrequencyWeekly:
		return p.Amount.Mul(monthlyFactorWeekly)
	case FrequencyMonthly:
		return p.Amount
	case FrequencyYearly:
		return p.Amount.Div(monthlyFactorYearly)
	}
	return decimal.Zero
}
