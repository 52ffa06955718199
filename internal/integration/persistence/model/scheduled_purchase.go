// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/cashcoach/backend/internal/domain/entity"
)

// ScheduledPurchaseModel represents the scheduled_purchases table in the database.
type ScheduledPurchaseModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name      string          `gorm:"type:varchar(100);not null"`
	Category  string          `gorm:"type:varchar(100);not null;index"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Frequency string          `gorm:"type:varchar(10);not null"`
	NextDue   time.Time       `gorm:"type:date;not null;index"`
	IsActive  bool            `gorm:"not null;default:true"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
	DeletedAt gorm.DeletedAt  `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the ScheduledPurchaseModel.
func (ScheduledPurchaseModel) TableName() string {
	return "scheduled_purchases"
}

// ToEntity converts a ScheduledPurchaseModel to a domain ScheduledPurchase entity.
func (m *ScheduledPurchaseModel) ToEntity() *entity.ScheduledPurchase {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.ScheduledPurchase{
		ID:        m.ID,
		UserID:    m.UserID,
		Name:      m.Name,
		Category:  m.Category,
		Amount:    m.Amount,
		Frequency: entity.PurchaseFrequency(m.Frequency),
		NextDue:   m.NextDue,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		DeletedAt: deletedAt,
	}
}

// ScheduledPurchaseFromEntity creates a ScheduledPurchaseModel from a domain entity.
func ScheduledPurchaseFromEntity(purchase *entity.ScheduledPurchase) *ScheduledPurchaseModel {
	var deletedAt gorm.DeletedAt
	if purchase.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *purchase.DeletedAt, Valid: true}
	}

	return &ScheduledPurchaseModel{
		ID:        purchase.ID,
		UserID:    purchase.UserID,
		Name:      purchase.Name,
		Category:  purchase.Category,
		Amount:    purchase.Amount,
		Frequency: string(purchase.Frequency),
		NextDue:   purchase.NextDue,
		IsActive:  purchase.IsActive,
		CreatedAt: purchase.CreatedAt,
		UpdatedAt: purchase.UpdatedAt,
		DeletedAt: deletedAt,
	}
}
