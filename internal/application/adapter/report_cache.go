// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/cashcoach/backend/internal/domain/entity"
)

// ReportCache defines the interface for caching computed coaching reports.
// A miss is not an error: Get returns (nil, nil) when no entry exists.
type ReportCache interface {
	// Get retrieves a cached report for the user, or nil on a miss.
	Get(ctx context.Context, userID uuid.UUID) (*entity.CoachingReport, error)

	// Set stores a report for the user with the cache's configured TTL.
	Set(ctx context.Context, userID uuid.UUID, report *entity.CoachingReport) error

	// Invalidate removes any cached report for the user.
	Invalidate(ctx context.Context, userID uuid.UUID) error
}
