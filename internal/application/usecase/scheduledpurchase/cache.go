// Package scheduledpurchase contains scheduled purchase use cases.
package scheduledpurchase

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/cashcoach/backend/internal/application/adapter"
)

// invalidateReportCache drops the user's cached coaching report after a data
// mutation. Failures are logged and swallowed.
func invalidateReportCache(ctx context.Context, cache adapter.ReportCache, userID uuid.UUID) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx, userID); err != nil {
		slog.Warn("Failed to invalidate coaching report cache",
			"userID", userID,
			"error", err,
		)
	}
}
