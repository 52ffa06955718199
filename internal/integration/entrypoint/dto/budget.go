// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cashcoach/backend/internal/domain/entity"
)

// CreateBudgetRequest represents the request body for budget creation.
type CreateBudgetRequest struct {
	Name      string          `json:"name" binding:"required,max=100"`
	Category  string          `json:"category"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	Period    string          `json:"period" binding:"required,oneof=weekly monthly yearly"`
	StartDate time.Time       `json:"start_date"`
	EndDate   time.Time       `json:"end_date"`
}

// UpdateBudgetRequest represents the request body for budget update.
// All fields are optional; only provided fields are changed.
type UpdateBudgetRequest struct {
	Name      *string          `json:"name"`
	Category  *string          `json:"category"`
	Amount    *decimal.Decimal `json:"amount"`
	Period    *string          `json:"period" binding:"omitempty,oneof=weekly monthly yearly"`
	StartDate *time.Time       `json:"start_date"`
	EndDate   *time.Time       `json:"end_date"`
}

// BudgetResponse represents a budget in API responses.
type BudgetResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Amount    decimal.Decimal `json:"amount"`
	Spent     decimal.Decimal `json:"spent"`
	Period    string          `json:"period"`
	StartDate time.Time       `json:"start_date"`
	EndDate   time.Time       `json:"end_date"`
	Exceeded  bool            `json:"exceeded"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ListBudgetsResponse represents the response for listing budgets.
type ListBudgetsResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

// ToBudgetResponse converts a domain Budget entity to a response DTO.
func ToBudgetResponse(budget *entity.Budget) BudgetResponse {
	return BudgetResponse{
		ID:        budget.ID.String(),
		Name:      budget.Name,
		Category:  budget.Category,
		Amount:    budget.Amount,
		Spent:     budget.Spent,
		Period:    string(budget.Period),
		StartDate: budget.StartDate,
		EndDate:   budget.EndDate,
		Exceeded:  budget.IsExceeded(),
		CreatedAt: budget.CreatedAt,
		UpdatedAt: budget.UpdatedAt,
	}
}
