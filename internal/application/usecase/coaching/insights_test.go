package coaching

import (
	"strings"
	"testing"

	"github.com/cashcoach/backend/internal/domain/entity"
)

func findInsight(insights []entity.Insight, title string) (entity.Insight, bool) {
	for _, in := range insights {
		if in.Title == title {
			return in, true
		}
	}
	return entity.Insight{}, false
}

func TestDeriveInsights_EmptyTransactions(t *testing.T) {
	insights := DeriveInsights(nil,
		[]*entity.Budget{budget("Food", 1000, 100)},
		[]*entity.ScheduledPurchase{scheduledPurchase("Laptop", 1500, 10, true)},
	)
	if len(insights) != 0 {
		t.Errorf("expected no insights without transactions, got %d", len(insights))
	}
}

func TestDeriveInsights_ScheduledImpact(t *testing.T) {
	// Monthly 100 + weekly 10 (x4.33) = 143.30 per month. The inactive
	// purchase contributes nothing.
	weekly := scheduledPurchase("Coffee Subscription", 10, 7, true)
	weekly.Frequency = entity.FrequencyWeekly
	inactive := scheduledPurchase("Paused Gym", 50, 14, false)

	insights := DeriveInsights(
		[]*entity.Transaction{expense("Food", 50, thisMonth(5))},
		nil,
		[]*entity.ScheduledPurchase{
			scheduledPurchase("Streaming", 100, 20, true),
			weekly,
			inactive,
		},
	)

	in, ok := findInsight(insights, "Scheduled Purchase Impact")
	if !ok {
		t.Fatalf("expected a scheduled impact insight, got %v", insights)
	}
	if !strings.Contains(in.Description, "$143.30") {
		t.Errorf("expected monthly impact 143.30 in description, got %q", in.Description)
	}
	if in.Data["count"] != 2 {
		t.Errorf("expected 2 active purchases counted, got %v", in.Data["count"])
	}
}

func TestDeriveInsights_DuplicateCategories(t *testing.T) {
	purchases := []*entity.ScheduledPurchase{
		scheduledPurchase("A", 10, 5, true),
		scheduledPurchase("B", 10, 5, true),
		scheduledPurchase("C", 10, 5, true),
	}
	// All three land in Shopping; three in one category crosses the limit.
	insights := DeriveInsights(
		[]*entity.Transaction{expense("Food", 50, thisMonth(5))},
		nil, purchases,
	)

	in, ok := findInsight(insights, "Multiple Scheduled Purchases in Same Category")
	if !ok {
		t.Fatalf("expected a duplicate category insight, got %v", insights)
	}
	if !strings.Contains(in.Description, "Shopping") {
		t.Errorf("expected Shopping named, got %q", in.Description)
	}

	// Exactly two in a category stays quiet.
	insights = DeriveInsights(
		[]*entity.Transaction{expense("Food", 50, thisMonth(5))},
		nil, purchases[:2],
	)
	if _, ok := findInsight(insights, "Multiple Scheduled Purchases in Same Category"); ok {
		t.Error("expected no insight for only two purchases in a category")
	}
}

func TestDeriveInsights_WeekendSpending(t *testing.T) {
	saturday := thisMonth(14) // 2025-06-14
	monday := thisMonth(9)    // 2025-06-09

	t.Run("above threshold", func(t *testing.T) {
		insights := DeriveInsights([]*entity.Transaction{
			expense("Entertainment", 400, saturday),
			expense("Food", 600, monday),
		}, nil, nil)

		in, ok := findInsight(insights, "Weekend Spending Pattern")
		if !ok {
			t.Fatalf("expected a weekend insight at 40%%, got %v", insights)
		}
		if !strings.Contains(in.Description, "40%") {
			t.Errorf("expected 40%% share in description, got %q", in.Description)
		}
	})

	t.Run("at threshold", func(t *testing.T) {
		insights := DeriveInsights([]*entity.Transaction{
			expense("Entertainment", 350, saturday),
			expense("Food", 650, monday),
		}, nil, nil)

		if _, ok := findInsight(insights, "Weekend Spending Pattern"); ok {
			t.Error("expected no insight at exactly 35%")
		}
	})

	t.Run("weekend only has no contrast", func(t *testing.T) {
		insights := DeriveInsights([]*entity.Transaction{
			expense("Entertainment", 500, saturday),
		}, nil, nil)

		if _, ok := findInsight(insights, "Weekend Spending Pattern"); ok {
			t.Error("expected no insight without weekday spending")
		}
	})
}

func TestDeriveInsights_BudgetDiscipline(t *testing.T) {
	onTrack := []*entity.Budget{
		budget("Food", 1000, 500),
		budget("Transport", 500, 300),
		budget("Utilities", 200, 100),
	}

	t.Run("all budgets on track", func(t *testing.T) {
		insights := DeriveInsights(
			[]*entity.Transaction{expense("Food", 50, thisMonth(5))},
			onTrack, nil)

		in, ok := findInsight(insights, "Budget Discipline Success")
		if !ok {
			t.Fatalf("expected a discipline insight, got %v", insights)
		}
		if !strings.Contains(in.Description, "100%") {
			t.Errorf("expected 100%% success rate, got %q", in.Description)
		}
		if in.Confidence != 100 {
			t.Errorf("expected confidence 100, got %d", in.Confidence)
		}
	})

	t.Run("two of three on track misses the bar", func(t *testing.T) {
		mixed := append([]*entity.Budget{}, onTrack[:2]...)
		mixed = append(mixed, budget("Dining", 400, 390))

		insights := DeriveInsights(
			[]*entity.Transaction{expense("Food", 50, thisMonth(5))},
			mixed, nil)

		if _, ok := findInsight(insights, "Budget Discipline Success"); ok {
			t.Error("expected no insight at a 67% success rate")
		}
	})

	t.Run("no budgets", func(t *testing.T) {
		insights := DeriveInsights(
			[]*entity.Transaction{expense("Food", 50, thisMonth(5))},
			nil, nil)

		if _, ok := findInsight(insights, "Budget Discipline Success"); ok {
			t.Error("expected no discipline insight without budgets")
		}
	})
}

func TestDeriveInsights_CashFlow(t *testing.T) {
	t.Run("positive", func(t *testing.T) {
		insights := DeriveInsights([]*entity.Transaction{
			income(2000, thisMonth(1)),
			expense("Food", 500, thisMonth(5)),
		}, nil, nil)

		in, ok := findInsight(insights, "Positive Cash Flow")
		if !ok {
			t.Fatalf("expected a cash flow insight, got %v", insights)
		}
		if !strings.Contains(in.Description, "75%") {
			t.Errorf("expected a 75%% savings rate, got %q", in.Description)
		}
		if in.Data["surplus"] != "1500.00" {
			t.Errorf("expected surplus 1500.00, got %v", in.Data["surplus"])
		}
	})

	t.Run("break even", func(t *testing.T) {
		insights := DeriveInsights([]*entity.Transaction{
			income(500, thisMonth(1)),
			expense("Food", 500, thisMonth(5)),
		}, nil, nil)

		if _, ok := findInsight(insights, "Positive Cash Flow"); ok {
			t.Error("expected no cash flow insight at break even")
		}
	})
}

func TestDeriveInsights_SequentialIDs(t *testing.T) {
	insights := DeriveInsights([]*entity.Transaction{
		income(2000, thisMonth(1)),
		expense("Food", 500, thisMonth(5)),
	}, []*entity.Budget{budget("Food", 1000, 500)},
		[]*entity.ScheduledPurchase{scheduledPurchase("Streaming", 20, 10, true)},
	)

	if len(insights) < 3 {
		t.Fatalf("expected at least 3 insights, got %d", len(insights))
	}
	for i, in := range insights {
		if in.ID != i+1 {
			t.Errorf("position %d: expected id %d, got %d", i, i+1, in.ID)
		}
	}
}
