package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/cashcoach/backend/internal/domain/entity"
)

func newTestCache(t *testing.T, ttl time.Duration) (*miniredis.Miniredis, *reportCache) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return server, &reportCache{client: client, ttl: ttl}
}

func sampleReport() *entity.CoachingReport {
	return &entity.CoachingReport{
		GeneratedAt: time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC),
		Patterns: []entity.SpendingPattern{{
			Category:   "Food",
			Amount:     decimal.NewFromInt(600),
			Percentage: 100,
			Trend:      entity.TrendStable,
			LastMonth:  decimal.Zero,
			Color:      "#FF6B6B",
			Icon:       "food",
		}},
		Recommendations: []entity.Recommendation{{
			ID:               1,
			Type:             entity.RecommendationOptimize,
			Title:            "Optimize Food Spending",
			Impact:           entity.ImpactHigh,
			PotentialSavings: decimal.NewFromInt(120),
			Category:         "Food",
			Confidence:       85,
			Priority:         1,
		}},
		Insights: []entity.Insight{},
		Goals:    []entity.CoachingGoal{},
	}
}

func TestReportCache_MissReturnsNil(t *testing.T) {
	_, cache := newTestCache(t, time.Hour)

	report, err := cache.Get(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report != nil {
		t.Errorf("expected nil on a miss, got %+v", report)
	}
}

func TestReportCache_RoundTrip(t *testing.T) {
	_, cache := newTestCache(t, time.Hour)
	userID := uuid.New()
	stored := sampleReport()

	if err := cache.Set(context.Background(), userID, stored); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	loaded, err := cache.Get(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loaded == nil {
		t.Fatal("expected a cached report")
	}
	if !loaded.GeneratedAt.Equal(stored.GeneratedAt) {
		t.Errorf("expected generation time %s, got %s", stored.GeneratedAt, loaded.GeneratedAt)
	}
	if len(loaded.Patterns) != 1 || loaded.Patterns[0].Category != "Food" {
		t.Errorf("expected the Food pattern back, got %+v", loaded.Patterns)
	}
	if !loaded.Patterns[0].Amount.Equal(decimal.NewFromInt(600)) {
		t.Errorf("expected amount 600, got %s", loaded.Patterns[0].Amount)
	}
	if len(loaded.Recommendations) != 1 || loaded.Recommendations[0].Title != "Optimize Food Spending" {
		t.Errorf("expected the optimize recommendation back, got %+v", loaded.Recommendations)
	}
}

func TestReportCache_KeysAreScopedPerUser(t *testing.T) {
	_, cache := newTestCache(t, time.Hour)
	userA := uuid.New()
	userB := uuid.New()

	if err := cache.Set(context.Background(), userA, sampleReport()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	report, err := cache.Get(context.Background(), userB)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report != nil {
		t.Error("expected a miss for a different user")
	}
}

func TestReportCache_EntryExpires(t *testing.T) {
	server, cache := newTestCache(t, time.Minute)
	userID := uuid.New()

	if err := cache.Set(context.Background(), userID, sampleReport()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	server.FastForward(2 * time.Minute)

	report, err := cache.Get(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report != nil {
		t.Error("expected the entry to expire after the TTL")
	}
}

func TestReportCache_Invalidate(t *testing.T) {
	_, cache := newTestCache(t, time.Hour)
	userID := uuid.New()

	if err := cache.Set(context.Background(), userID, sampleReport()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := cache.Invalidate(context.Background(), userID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	report, err := cache.Get(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report != nil {
		t.Error("expected no report after invalidation")
	}
}

func TestReportCache_CorruptPayloadIsAMiss(t *testing.T) {
	server, cache := newTestCache(t, time.Hour)
	userID := uuid.New()

	server.Set(reportKey(userID), "not json")

	report, err := cache.Get(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report != nil {
		t.Error("expected a corrupt payload to read as a miss")
	}
}
