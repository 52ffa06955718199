// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cashcoach/backend/internal/domain/entity"
)

// CreateGoalRequest represents the request body for goal creation.
type CreateGoalRequest struct {
	Title        string          `json:"title" binding:"required,max=100"`
	Description  string          `json:"description"`
	TargetAmount decimal.Decimal `json:"target_amount" binding:"required"`
	TargetDate   time.Time       `json:"target_date"`
}

// UpdateGoalRequest represents the request body for goal update.
// All fields are optional; only provided fields are changed.
type UpdateGoalRequest struct {
	Title         *string          `json:"title"`
	Description   *string          `json:"description"`
	TargetAmount  *decimal.Decimal `json:"target_amount"`
	CurrentAmount *decimal.Decimal `json:"current_amount"`
	TargetDate    *time.Time       `json:"target_date"`
	IsCompleted   *bool            `json:"is_completed"`
}

// GoalResponse represents a financial goal in API responses.
type GoalResponse struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Description   string          `json:"description,omitempty"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	TargetDate    time.Time       `json:"target_date"`
	IsCompleted   bool            `json:"is_completed"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ListGoalsResponse represents the response for listing goals.
type ListGoalsResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// ToGoalResponse converts a domain FinancialGoal entity to a response DTO.
func ToGoalResponse(goal *entity.FinancialGoal) GoalResponse {
	return GoalResponse{
		ID:            goal.ID.String(),
		Title:         goal.Title,
		Description:   goal.Description,
		TargetAmount:  goal.TargetAmount,
		CurrentAmount: goal.CurrentAmount,
		TargetDate:    goal.TargetDate,
		IsCompleted:   goal.IsCompleted,
		CreatedAt:     goal.CreatedAt,
		UpdatedAt:     goal.UpdatedAt,
	}
}
