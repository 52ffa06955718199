package coaching

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashcoach/backend/internal/domain/entity"
)

// analysisNow is the fixed reference time used across engine tests:
// a Sunday in the middle of June 2025.
var analysisNow = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

func expense(category string, amount float64, date time.Time) *entity.Transaction {
	return &entity.Transaction{
		ID:       uuid.New(),
		Date:     date,
		Amount:   decimal.NewFromFloat(amount),
		Type:     entity.TransactionTypeExpense,
		Category: category,
	}
}

func income(amount float64, date time.Time) *entity.Transaction {
	return &entity.Transaction{
		ID:     uuid.New(),
		Date:   date,
		Amount: decimal.NewFromFloat(amount),
		Type:   entity.TransactionTypeIncome,
	}
}

func thisMonth(day int) time.Time {
	return time.Date(2025, time.June, day, 10, 0, 0, 0, time.UTC)
}

func lastMonth(day int) time.Time {
	return time.Date(2025, time.May, day, 10, 0, 0, 0, time.UTC)
}

func TestAnalyzePatterns_EmptyInput(t *testing.T) {
	patterns := AnalyzePatterns(nil, analysisNow)
	if len(patterns) != 0 {
		t.Errorf("expected empty output for empty input, got %d patterns", len(patterns))
	}
}

func TestAnalyzePatterns_SingleCategory(t *testing.T) {
	// Scenario: one Food expense of 600 this month.
	patterns := AnalyzePatterns([]*entity.Transaction{
		expense("Food", 600, thisMonth(5)),
	}, analysisNow)

	if len(patterns) != 1 {
		t.Fatalf("expected 1 pattern, got %d", len(patterns))
	}

	p := patterns[0]
	if p.Category != "Food" {
		t.Errorf("expected category Food, got %s", p.Category)
	}
	if !p.Amount.Equal(decimal.NewFromInt(600)) {
		t.Errorf("expected amount 600, got %s", p.Amount)
	}
	if p.Percentage != 100 {
		t.Errorf("expected percentage 100, got %d", p.Percentage)
	}
	if p.Trend != entity.TrendStable {
		t.Errorf("expected stable trend, got %s", p.Trend)
	}
	if !p.LastMonth.IsZero() {
		t.Errorf("expected zero last-month total, got %s", p.LastMonth)
	}
	if p.Icon != "food" {
		t.Errorf("expected food icon, got %s", p.Icon)
	}
}

func TestAnalyzePatterns_TotalsInvariant(t *testing.T) {
	// Sum of pattern amounts must equal the sum of current-month expenses.
	transactions := []*entity.Transaction{
		expense("Food", 120.50, thisMonth(1)),
		expense("Transportation", 80.25, thisMonth(3)),
		expense("Food", 30, thisMonth(10)),
		expense("Entertainment", 45.99, thisMonth(12)),
		expense("Food", 500, lastMonth(20)), // previous month, not counted
		income(2000, thisMonth(1)),          // income, not counted
	}

	patterns := AnalyzePatterns(transactions, analysisNow)

	sum := decimal.Zero
	for _, p := range patterns {
		sum = sum.Add(p.Amount)
	}

	expected := decimal.NewFromFloat(120.50 + 80.25 + 30 + 45.99)
	if !sum.Equal(expected) {
		t.Errorf("expected pattern amounts to sum to %s, got %s", expected, sum)
	}
}

func TestAnalyzePatterns_PercentageBounds(t *testing.T) {
	transactions := []*entity.Transaction{
		expense("Food", 333, thisMonth(1)),
		expense("Transportation", 333, thisMonth(2)),
		expense("Entertainment", 334, thisMonth(3)),
	}

	patterns := AnalyzePatterns(transactions, analysisNow)

	total := 0
	for _, p := range patterns {
		if p.Percentage < 0 || p.Percentage > 100 {
			t.Errorf("percentage out of bounds for %s: %d", p.Category, p.Percentage)
		}
		total += p.Percentage
	}
	// Rounding may miss 100 by a point per category but never exceed it
	// beyond rounding error.
	if total > 100+len(patterns) {
		t.Errorf("percentages sum too high: %d", total)
	}
}

func TestAnalyzePatterns_TrendClassification(t *testing.T) {
	cases := []struct {
		name     string
		previous float64
		current  float64
		want     entity.SpendingTrend
	}{
		{"no baseline is always stable", 0, 500, entity.TrendStable},
		{"six percent increase is up", 100, 106, entity.TrendUp},
		{"six percent decrease is down", 100, 94, entity.TrendDown},
		{"unchanged is stable", 100, 100, entity.TrendStable},
		{"five percent increase is stable", 100, 105, entity.TrendStable},
		{"five percent decrease is stable", 100, 95, entity.TrendStable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var transactions []*entity.Transaction
			if tc.previous > 0 {
				transactions = append(transactions, expense("Food", tc.previous, lastMonth(10)))
			}
			transactions = append(transactions, expense("Food", tc.current, thisMonth(10)))

			patterns := AnalyzePatterns(transactions, analysisNow)
			if len(patterns) != 1 {
				t.Fatalf("expected 1 pattern, got %d", len(patterns))
			}
			if patterns[0].Trend != tc.want {
				t.Errorf("expected trend %s, got %s", tc.want, patterns[0].Trend)
			}
		})
	}
}

func TestAnalyzePatterns_ExcludesZeroCurrentCategories(t *testing.T) {
	// A category with only previous-month spending produces no pattern.
	transactions := []*entity.Transaction{
		expense("Food", 100, thisMonth(5)),
		expense("Travel", 900, lastMonth(5)),
	}

	patterns := AnalyzePatterns(transactions, analysisNow)
	if len(patterns) != 1 {
		t.Fatalf("expected 1 pattern, got %d", len(patterns))
	}
	if patterns[0].Category != "Food" {
		t.Errorf("expected Food only, got %s", patterns[0].Category)
	}
}

func TestAnalyzePatterns_MissingCategoryDefaultsToOther(t *testing.T) {
	patterns := AnalyzePatterns([]*entity.Transaction{
		expense("", 50, thisMonth(5)),
	}, analysisNow)

	if len(patterns) != 1 {
		t.Fatalf("expected 1 pattern, got %d", len(patterns))
	}
	if patterns[0].Category != entity.DefaultCategory {
		t.Errorf("expected category %q, got %q", entity.DefaultCategory, patterns[0].Category)
	}
}

func TestAnalyzePatterns_SortedByAmountDescending(t *testing.T) {
	transactions := []*entity.Transaction{
		expense("Entertainment", 100, thisMonth(1)),
		expense("Food", 900, thisMonth(2)),
		expense("Transportation", 400, thisMonth(3)),
	}

	patterns := AnalyzePatterns(transactions, analysisNow)
	if len(patterns) != 3 {
		t.Fatalf("expected 3 patterns, got %d", len(patterns))
	}

	want := []string{"Food", "Transportation", "Entertainment"}
	for i, category := range want {
		if patterns[i].Category != category {
			t.Errorf("position %d: expected %s, got %s", i, category, patterns[i].Category)
		}
	}
}

func TestAnalyzePatterns_TieKeepsFirstAppearanceOrder(t *testing.T) {
	transactions := []*entity.Transaction{
		expense("Transportation", 200, thisMonth(1)),
		expense("Food", 200, thisMonth(2)),
	}

	patterns := AnalyzePatterns(transactions, analysisNow)
	if len(patterns) != 2 {
		t.Fatalf("expected 2 patterns, got %d", len(patterns))
	}
	if patterns[0].Category != "Transportation" || patterns[1].Category != "Food" {
		t.Errorf("expected first-appearance order on ties, got %s then %s",
			patterns[0].Category, patterns[1].Category)
	}
}

func TestAnalyzePatterns_YearRollover(t *testing.T) {
	// In January the previous period is December of the prior year.
	january := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)
	transactions := []*entity.Transaction{
		expense("Food", 200, time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC)),
		expense("Food", 100, time.Date(2024, time.December, 20, 0, 0, 0, 0, time.UTC)),
	}

	patterns := AnalyzePatterns(transactions, january)
	if len(patterns) != 1 {
		t.Fatalf("expected 1 pattern, got %d", len(patterns))
	}
	if !patterns[0].LastMonth.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected last-month total 100, got %s", patterns[0].LastMonth)
	}
	if patterns[0].Trend != entity.TrendUp {
		t.Errorf("expected up trend across year boundary, got %s", patterns[0].Trend)
	}
}

func TestAnalyzePatterns_Idempotent(t *testing.T) {
	transactions := []*entity.Transaction{
		expense("Food", 120, thisMonth(1)),
		expense("Transportation", 80, thisMonth(3)),
		expense("Food", 90, lastMonth(10)),
	}

	first := AnalyzePatterns(transactions, analysisNow)
	second := AnalyzePatterns(transactions, analysisNow)

	if len(first) != len(second) {
		t.Fatalf("expected identical lengths, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Category != second[i].Category ||
			!first[i].Amount.Equal(second[i].Amount) ||
			first[i].Percentage != second[i].Percentage ||
			first[i].Trend != second[i].Trend ||
			first[i].Color != second[i].Color {
			t.Errorf("position %d differs between identical invocations", i)
		}
	}
}
