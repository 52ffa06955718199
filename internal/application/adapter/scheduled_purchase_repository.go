// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/cashcoach/backend/internal/domain/entity"
)

// ScheduledPurchaseRepository defines the interface for scheduled purchase persistence operations.
type ScheduledPurchaseRepository interface {
	// Create creates a new scheduled purchase in the database.
	Create(ctx context.Context, purchase *entity.ScheduledPurchase) error

	// FindByID retrieves a scheduled purchase by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ScheduledPurchase, error)

	// FindByUserID retrieves all scheduled purchases for a given user.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.ScheduledPurchase, error)

	// Update updates an existing scheduled purchase in the database.
	Update(ctx context.Context, purchase *entity.ScheduledPurchase) error

	// Delete removes a scheduled purchase from the database (soft delete).
	Delete(ctx context.Context, id uuid.UUID) error
}
