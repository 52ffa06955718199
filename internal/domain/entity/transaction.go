// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// DefaultCategory is assigned when a transaction arrives without a category.
const DefaultCategory = "Other"

// Transaction represents a financial transaction in the Cash Coach system.
// Amount is always a non-negative magnitude; direction comes from Type.
type Transaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Type        TransactionType
	Category    string
	Merchant    string
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time // Soft-delete support
}

// NewTransaction creates a new Transaction entity. An empty category is
// resolved to DefaultCategory and the amount is normalized to its magnitude,
// so downstream consumers never deal with either case.
func NewTransaction(
	userID uuid.UUID,
	date time.Time,
	description string,
	amount decimal.Decimal,
	transactionType TransactionType,
	category string,
	merchant string,
	notes string,
) *Transaction {
	now := time.Now().UTC()

	if category == "" {
		category = DefaultCategory
	}

	return &Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Date:        date,
		Description: description,
		Amount:      amount.Abs(),
		Type:        transactionType,
		Category:    category,
		Merchant:    merchant,
		Notes:       notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// TransactionListResult represents the result of listing transactions.
type TransactionListResult struct {
	Transactions []*Transaction
	Total        int64
	Page         int
	Limit        int
	TotalPages   int
}

// TransactionTotals represents aggregated totals for transactions.
type TransactionTotals struct {
	IncomeTotal  decimal.Decimal
	ExpenseTotal decimal.Decimal
	NetTotal     decimal.Decimal
}
