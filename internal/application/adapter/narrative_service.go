// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/cashcoach/backend/internal/domain/entity"
)

// NarrativeService defines the interface for turning a computed coaching
// report into a short natural-language summary. The engine's numbers are
// never influenced by this service; it only writes prose about them.
type NarrativeService interface {
	// IsAvailable reports whether the service is configured and usable.
	IsAvailable() bool

	// Summarize generates a narrative summary of the report.
	Summarize(ctx context.Context, userName string, report *entity.CoachingReport) (string, error)
}
