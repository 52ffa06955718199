// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/cashcoach/backend/internal/application/adapter"
	"github.com/cashcoach/backend/internal/domain/entity"
)

// reportCache implements adapter.ReportCache on Redis. Reports are stored
// as JSON under one key per user and expire after the configured TTL.
type reportCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewReportCache creates a new Redis-backed report cache.
func NewReportCache(client *redis.Client, ttl time.Duration) adapter.ReportCache {
	return &reportCache{
		client: client,
		ttl:    ttl,
	}
}

func reportKey(userID uuid.UUID) string {
	return fmt.Sprintf("coaching:report:%s", userID)
}

// Get retrieves a cached report for the user, or nil on a miss.
func (c *reportCache) Get(ctx context.Context, userID uuid.UUID) (*entity.CoachingReport, error) {
	payload, err := c.client.Get(ctx, reportKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var report entity.CoachingReport
	if err := json.Unmarshal(payload, &report); err != nil {
		// A payload from an older build is treated as a miss and will be
		// overwritten by the next Set.
		return nil, nil
	}
	return &report, nil
}

// Set stores a report for the user with the cache's configured TTL.
func (c *reportCache) Set(ctx context.Context, userID uuid.UUID, report *entity.CoachingReport) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, reportKey(userID), payload, c.ttl).Err()
}

// Invalidate removes any cached report for the user.
func (c *reportCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	return c.client.Del(ctx, reportKey(userID)).Err()
}
