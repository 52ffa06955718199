// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/cashcoach/backend/internal/domain/entity"
)

// BudgetModel represents the budgets table in the database.
type BudgetModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name      string          `gorm:"type:varchar(100);not null"`
	Category  string          `gorm:"type:varchar(100);not null;index"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Spent     decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	Period    string          `gorm:"type:varchar(10);not null;default:'monthly'"`
	StartDate time.Time       `gorm:"type:date;not null"`
	EndDate   time.Time       `gorm:"type:date;not null"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
	DeletedAt gorm.DeletedAt  `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the BudgetModel.
func (BudgetModel) TableName() string {
	return "budgets"
}

// ToEntity converts a BudgetModel to a domain Budget entity.
func (m *BudgetModel) ToEntity() *entity.Budget {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Budget{
		ID:        m.ID,
		UserID:    m.UserID,
		Name:      m.Name,
		Category:  m.Category,
		Amount:    m.Amount,
		Spent:     m.Spent,
		Period:    entity.BudgetPeriod(m.Period),
		StartDate: m.StartDate,
		EndDate:   m.EndDate,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		DeletedAt: deletedAt,
	}
}

// BudgetFromEntity creates a BudgetModel from a domain Budget entity.
func BudgetFromEntity(budget *entity.Budget) *BudgetModel {
	var deletedAt gorm.DeletedAt
	if budget.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *budget.DeletedAt, Valid: true}
	}

	return &BudgetModel{
		ID:        budget.ID,
		UserID:    budget.UserID,
		Name:      budget.Name,
		Category:  budget.Category,
		Amount:    budget.Amount,
		Spent:     budget.Spent,
		Period:    string(budget.Period),
		StartDate: budget.StartDate,
		EndDate:   budget.EndDate,
		CreatedAt: budget.CreatedAt,
		UpdatedAt: budget.UpdatedAt,
		DeletedAt: deletedAt,
	}
}
