// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SpendingTrend classifies how a category's spending moved month over month.
type SpendingTrend string

const (
	TrendUp     SpendingTrend = "up"
	TrendDown   SpendingTrend = "down"
	TrendStable SpendingTrend = "stable"
)

// RecommendationType represents the kind of coaching recommendation.
type RecommendationType string

const (
	RecommendationSave     RecommendationType = "save"
	RecommendationInvest   RecommendationType = "invest"
	RecommendationOptimize RecommendationType = "optimize"
	RecommendationAlert    RecommendationType = "alert"
)

// ImpactLevel represents the estimated financial impact of a recommendation.
type ImpactLevel string

const (
	ImpactHigh   ImpactLevel = "high"
	ImpactMedium ImpactLevel = "medium"
	ImpactLow    ImpactLevel = "low"
)

// InsightType represents the kind of qualitative insight.
type InsightType string

const (
	InsightPattern     InsightType = "pattern"
	InsightOpportunity InsightType = "opportunity"
	InsightWarning     InsightType = "warning"
	InsightAchievement InsightType = "achievement"
)

// CoachingGoalStatus represents progress status of a coaching goal.
type CoachingGoalStatus string

const (
	GoalStatusOnTrack   CoachingGoalStatus = "on-track"
	GoalStatusBehind    CoachingGoalStatus = "behind"
	GoalStatusAhead     CoachingGoalStatus = "ahead"
	GoalStatusCompleted CoachingGoalStatus = "completed"
)

// SpendingPattern is an aggregated per-category spending summary for the
// current calendar month, with a trend against the previous month.
// Recomputed fresh on every analysis; nothing persists across calls.
type SpendingPattern struct {
	Category   string
	Amount     decimal.Decimal // current-month total
	Percentage int             // share of current-month expense spending, 0-100
	Trend      SpendingTrend
	LastMonth  decimal.Decimal // previous-month total
	Color      string
	Icon       string
}

// Recommendation is a prioritized, actionable coaching suggestion.
// IDs are assigned sequentially per analysis call and are not stable
// across calls.
type Recommendation struct {
	ID               int
	Type             RecommendationType
	Title            string
	Description      string
	Impact           ImpactLevel
	PotentialSavings decimal.Decimal
	Category         string
	Action           string
	Confidence       int // 0-100
	Priority         int // lower is more urgent
}

// Insight is a qualitative observation about spending behavior. The Data
// payload carries the numbers the observation was derived from.
type Insight struct {
	ID          int
	Type        InsightType
	Title       string
	Description string
	Data        map[string]interface{}
	Confidence  int // 0-100
}

// CoachingGoal is a target/progress pair with a deadline and suggested
// actions, either mapped from a user-defined FinancialGoal or derived from
// spending data.
type CoachingGoal struct {
	ID          string
	Title       string
	Target      decimal.Decimal
	Current     decimal.Decimal
	Deadline    time.Time
	Status      CoachingGoalStatus
	Suggestions []string
}

// CoachingReport bundles the four engine outputs computed from one input
// snapshot at one point in time.
type CoachingReport struct {
	GeneratedAt     time.Time
	Patterns        []SpendingPattern
	Recommendations []Recommendation
	Insights        []Insight
	Goals           []CoachingGoal
}
