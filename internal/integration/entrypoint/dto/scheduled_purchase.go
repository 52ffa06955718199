// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cashcoach/backend/internal/domain/entity"
)

// CreateScheduledPurchaseRequest represents the request body for scheduled purchase creation.
type CreateScheduledPurchaseRequest struct {
	Name      string          `json:"name" binding:"required,max=100"`
	Category  string          `json:"category"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	Frequency string          `json:"frequency" binding:"required,oneof=daily weekly monthly yearly"`
	NextDue   time.Time       `json:"next_due" binding:"required"`
}

// UpdateScheduledPurchaseRequest represents the request body for scheduled purchase update.
// All fields are optional; only provided fields are changed.
type UpdateScheduledPurchaseRequest struct {
	Name      *string          `json:"name"`
	Category  *string          `json:"category"`
	Amount    *decimal.Decimal `json:"amount"`
	Frequency *string          `json:"frequency" binding:"omitempty,oneof=daily weekly monthly yearly"`
	NextDue   *time.Time       `json:"next_due"`
	IsActive  *bool            `json:"is_active"`
}

// ScheduledPurchaseResponse represents a scheduled purchase in API responses.
type ScheduledPurchaseResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Amount    decimal.Decimal `json:"amount"`
	Frequency string          `json:"frequency"`
	NextDue   time.Time       `json:"next_due"`
	IsActive  bool            `json:"is_active"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ListScheduledPurchasesResponse represents the response for listing scheduled purchases.
type ListScheduledPurchasesResponse struct {
	Purchases []ScheduledPurchaseResponse `json:"purchases"`
}

// ToScheduledPurchaseResponse converts a domain ScheduledPurchase entity to a response DTO.
func ToScheduledPurchaseResponse(purchase *entity.ScheduledPurchase) ScheduledPurchaseResponse {
	return ScheduledPurchaseResponse{
		ID:        purchase.ID.String(),
		Name:      purchase.Name,
		Category:  purchase.Category,
		Amount:    purchase.Amount,
		Frequency: string(purchase.Frequency),
		NextDue:   purchase.NextDue,
		IsActive:  purchase.IsActive,
		CreatedAt: purchase.CreatedAt,
		UpdatedAt: purchase.UpdatedAt,
	}
}
