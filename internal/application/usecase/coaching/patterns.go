package coaching

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cashcoach/backend/internal/domain/entity"
)

// patternColors is the palette cycled through when assigning display colors.
// Colors are assigned by first appearance of a category, before sorting, so a
// category keeps its color as amounts shift between analyses.
var patternColors = []string{
	"#ff6b6b", "#4ecdc4", "#45b7d1", "#96ceb4", "#feca57", "#ff9ff3", "#54a0ff",
}

// trendThreshold is the percent change beyond which a category is classified
// as trending up or down rather than stable.
var trendThreshold = decimal.NewFromInt(5)

var oneHundred = decimal.NewFromInt(100)

// AnalyzePatterns aggregates expense transactions into per-category spending
// patterns for the calendar month containing now, with a month-over-month
// trend against the immediately preceding calendar month.
//
// Categories with no spending in the current month are excluded, even when
// they had spending last month. A category with no spending last month is
// always classified stable, regardless of its current amount.
func AnalyzePatterns(transactions []*entity.Transaction, now time.Time) []entity.SpendingPattern {
	if len(transactions) == 0 {
		return []entity.SpendingPattern{}
	}

	currentYear, currentMonth := monthOf(now)
	previousYear, previousMonth := previousMonthOf(now)

	type totals struct {
		current  decimal.Decimal
		previous decimal.Decimal
	}

	// Keyed totals plus an ordered key list: output ordering must not depend
	// on map iteration.
	byCategory := make(map[string]*totals)
	var order []string

	for _, tx := range transactions {
		if tx.Type != entity.TransactionTypeExpense {
			continue
		}

		category := tx.Category
		if category == "" {
			category = entity.DefaultCategory
		}

		t, ok := byCategory[category]
		if !ok {
			t = &totals{current: decimal.Zero, previous: decimal.Zero}
			byCategory[category] = t
			order = append(order, category)
		}

		switch {
		case inMonth(tx.Date, currentYear, currentMonth):
			t.current = t.current.Add(tx.Amount.Abs())
		case inMonth(tx.Date, previousYear, previousMonth):
			t.previous = t.previous.Add(tx.Amount.Abs())
		}
	}

	totalCurrent := decimal.Zero
	for _, t := range byCategory {
		totalCurrent = totalCurrent.Add(t.current)
	}

	patterns := make([]entity.SpendingPattern, 0, len(order))
	colorIndex := 0
	for _, category := range order {
		t := byCategory[category]
		if !t.current.IsPositive() {
			continue
		}

		percentage := 0
		if totalCurrent.IsPositive() {
			percentage = int(t.current.Div(totalCurrent).Mul(oneHundred).Round(0).IntPart())
		}

		patterns = append(patterns, entity.SpendingPattern{
			Category:   category,
			Amount:     t.current,
			Percentage: percentage,
			Trend:      classifyTrend(t.current, t.previous),
			LastMonth:  t.previous,
			Color:      patternColors[colorIndex%len(patternColors)],
			Icon:       categoryIcon(category),
		})
		colorIndex++
	}

	sort.SliceStable(patterns, func(i, j int) bool {
		return patterns[i].Amount.GreaterThan(patterns[j].Amount)
	})

	return patterns
}

// classifyTrend compares current against previous month spending. With no
// previous spending there is no baseline, so the trend is stable by
// definition rather than signaling a new category.
func classifyTrend(current, previous decimal.Decimal) entity.SpendingTrend {
	if !previous.IsPositive() {
		return entity.TrendStable
	}

	change := current.Sub(previous).Div(previous).Mul(oneHundred)
	switch {
	case change.GreaterThan(trendThreshold):
		return entity.TrendUp
	case change.LessThan(trendThreshold.Neg()):
		return entity.TrendDown
	default:
		return entity.TrendStable
	}
}

// categoryIcon maps a category name to a display icon identifier.
func categoryIcon(category string) string {
	switch strings.ToLower(category) {
	case "food", "food & dining", "groceries", "restaurants":
		return "food"
	case "transportation", "gas", "car":
		return "transport"
	case "housing", "rent", "utilities":
		return "housing"
	case "entertainment", "movies", "games":
		return "entertainment"
	case "healthcare", "medical", "health":
		return "health"
	case "education", "learning":
		return "education"
	case "shopping", "retail":
		return "shopping"
	default:
		return "money"
	}
}
