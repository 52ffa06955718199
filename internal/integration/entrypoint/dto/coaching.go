// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cashcoach/backend/internal/domain/entity"
)

// SpendingPatternResponse represents a spending pattern in API responses.
type SpendingPatternResponse struct {
	Category   string          `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage int             `json:"percentage"`
	Trend      string          `json:"trend"`
	LastMonth  decimal.Decimal `json:"last_month"`
	Color      string          `json:"color"`
	Icon       string          `json:"icon"`
}

// RecommendationResponse represents a coaching recommendation in API responses.
type RecommendationResponse struct {
	ID               int             `json:"id"`
	Type             string          `json:"type"`
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	Impact           string          `json:"impact"`
	PotentialSavings decimal.Decimal `json:"potential_savings"`
	Category         string          `json:"category"`
	Action           string          `json:"action"`
	Confidence       int             `json:"confidence"`
	Priority         int             `json:"priority"`
}

// InsightResponse represents a coaching insight in API responses.
type InsightResponse struct {
	ID          int                    `json:"id"`
	Type        string                 `json:"type"`
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Data        map[string]interface{} `json:"data,omitempty"`
	Confidence  int                    `json:"confidence"`
}

// CoachingGoalResponse represents a coaching goal in API responses.
type CoachingGoalResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Target      decimal.Decimal `json:"target"`
	Current     decimal.Decimal `json:"current"`
	Deadline    time.Time       `json:"deadline"`
	Status      string          `json:"status"`
	Suggestions []string        `json:"suggestions"`
}

// CoachingReportResponse represents the full coaching report in API responses.
type CoachingReportResponse struct {
	GeneratedAt     time.Time                 `json:"generated_at"`
	FromCache       bool                      `json:"from_cache"`
	Patterns        []SpendingPatternResponse `json:"patterns"`
	Recommendations []RecommendationResponse  `json:"recommendations"`
	Insights        []InsightResponse         `json:"insights"`
	Goals           []CoachingGoalResponse    `json:"goals"`
}

// NarrativeResponse represents the coach narrative in API responses.
type NarrativeResponse struct {
	Narrative string `json:"narrative"`
}

// ToCoachingReportResponse converts a domain CoachingReport to a response DTO.
func ToCoachingReportResponse(report *entity.CoachingReport, fromCache bool) CoachingReportResponse {
	response := CoachingReportResponse{
		GeneratedAt:     report.GeneratedAt,
		FromCache:       fromCache,
		Patterns:        make([]SpendingPatternResponse, len(report.Patterns)),
		Recommendations: make([]RecommendationResponse, len(report.Recommendations)),
		Insights:        make([]InsightResponse, len(report.Insights)),
		Goals:           make([]CoachingGoalResponse, len(report.Goals)),
	}

	for i, p := range report.Patterns {
		response.Patterns[i] = SpendingPatternResponse{
			Category:   p.Category,
			Amount:     p.Amount,
			Percentage: p.Percentage,
			Trend:      string(p.Trend),
			LastMonth:  p.LastMonth,
			Color:      p.Color,
			Icon:       p.Icon,
		}
	}

	for i, r := range report.Recommendations {
		response.Recommendations[i] = RecommendationResponse{
			ID:               r.ID,
			Type:             string(r.Type),
			Title:            r.Title,
			Description:      r.Description,
			Impact:           string(r.Impact),
			PotentialSavings: r.PotentialSavings,
			Category:         r.Category,
			Action:           r.Action,
			Confidence:       r.Confidence,
			Priority:         r.Priority,
		}
	}

	for i, in := range report.Insights {
		response.Insights[i] = InsightResponse{
			ID:          in.ID,
			Type:        string(in.Type),
			Title:       in.Title,
			Description: in.Description,
			Data:        in.Data,
			Confidence:  in.Confidence,
		}
	}

	for i, g := range report.Goals {
		response.Goals[i] = CoachingGoalResponse{
			ID:          g.ID,
			Title:       g.Title,
			Target:      g.Target,
			Current:     g.Current,
			Deadline:    g.Deadline,
			Status:      string(g.Status),
			Suggestions: g.Suggestions,
		}
	}

	return response
}
