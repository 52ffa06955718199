// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cashcoach/backend/internal/application/adapter"
	"github.com/cashcoach/backend/internal/domain/entity"
	domainerror "github.com/cashcoach/backend/internal/domain/error"
	"github.com/cashcoach/backend/internal/integration/persistence/model"
)

// scheduledPurchaseRepository implements the adapter.ScheduledPurchaseRepository interface.
type scheduledPurchaseRepository struct {
	db *gorm.DB
}

// NewScheduledPurchaseRepository creates a new scheduled purchase repository instance.
func NewScheduledPurchaseRepository(db *gorm.DB) adapter.ScheduledPurchaseRepository {
	return &scheduledPurchaseRepository{
		db: db,
	}
}

// Create creates a new scheduled purchase in the database.
func (r *scheduledPurchaseRepository) Create(ctx context.Context, purchase *entity.ScheduledPurchase) error {
	purchaseModel := model.ScheduledPurchaseFromEntity(purchase)
	result := r.db.WithContext(ctx).Create(purchaseModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a scheduled purchase by its ID.
func (r *scheduledPurchaseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ScheduledPurchase, error) {
	var purchaseModel model.ScheduledPurchaseModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&purchaseModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrScheduledPurchaseNotFound
		}
		return nil, result.Error
	}
	return purchaseModel.ToEntity(), nil
}

// FindByUserID retrieves all scheduled purchases for a given user, soonest due first.
func (r *scheduledPurchaseRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.ScheduledPurchase, error) {
	var purchaseModels []model.ScheduledPurchaseModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("next_due ASC, created_at ASC").
		Find(&purchaseModels)
	if result.Error != nil {
		return nil, result.Error
	}

	purchases := make([]*entity.ScheduledPurchase, len(purchaseModels))
	for i, pm := range purchaseModels {
		purchases[i] = pm.ToEntity()
	}
	return purchases, nil
}

// Update updates an existing scheduled purchase in the database.
func (r *scheduledPurchaseRepository) Update(ctx context.Context, purchase *entity.ScheduledPurchase) error {
	purchaseModel := model.ScheduledPurchaseFromEntity(purchase)
	result := r.db.WithContext(ctx).Save(purchaseModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete soft-deletes a scheduled purchase from the database.
func (r *scheduledPurchaseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.ScheduledPurchaseModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
