package coaching

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashcoach/backend/internal/domain/entity"
)

func financialGoal(title string, target, current float64, completed bool) *entity.FinancialGoal {
	return &entity.FinancialGoal{
		ID:            uuid.New(),
		Title:         title,
		Description:   "Save up for " + title,
		TargetAmount:  decimal.NewFromFloat(target),
		CurrentAmount: decimal.NewFromFloat(current),
		TargetDate:    analysisNow.AddDate(0, 6, 0),
		IsCompleted:   completed,
	}
}

func findGoal(goals []entity.CoachingGoal, id string) (entity.CoachingGoal, bool) {
	for _, g := range goals {
		if g.ID == id {
			return g, true
		}
	}
	return entity.CoachingGoal{}, false
}

func TestDeriveGoals_UserGoalsMapped(t *testing.T) {
	open := financialGoal("Vacation", 3000, 1200, false)
	done := financialGoal("New Phone", 800, 800, true)

	goals := DeriveGoals(nil, nil, nil, []*entity.FinancialGoal{open, done}, analysisNow)

	g, ok := findGoal(goals, "usergoal_"+open.ID.String())
	if !ok {
		t.Fatal("expected the open user goal to be mapped")
	}
	if g.Status != entity.GoalStatusOnTrack {
		t.Errorf("expected on-track status, got %s", g.Status)
	}
	if !g.Target.Equal(open.TargetAmount) || !g.Current.Equal(open.CurrentAmount) {
		t.Errorf("expected amounts carried over, got target %s current %s", g.Target, g.Current)
	}
	if len(g.Suggestions) != 1 || g.Suggestions[0] != open.Description {
		t.Errorf("expected the goal description as the only suggestion, got %v", g.Suggestions)
	}

	g, ok = findGoal(goals, "usergoal_"+done.ID.String())
	if !ok {
		t.Fatal("expected the completed user goal to be mapped")
	}
	if g.Status != entity.GoalStatusCompleted {
		t.Errorf("expected completed status, got %s", g.Status)
	}
}

func TestDeriveGoals_PurchaseSavingsStatuses(t *testing.T) {
	cases := []struct {
		name  string
		dueIn int
		want  entity.CoachingGoalStatus
	}{
		{"due within a month is behind", 20, entity.GoalStatusBehind},
		{"due within two months is on track", 45, entity.GoalStatusOnTrack},
		{"due later is ahead", 90, entity.GoalStatusAhead},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := scheduledPurchase("Laptop", 1500, tc.dueIn, true)
			goals := DeriveGoals(nil, nil, []*entity.ScheduledPurchase{p}, nil, analysisNow)

			g, ok := findGoal(goals, "scheduled_"+p.ID.String())
			if !ok {
				t.Fatalf("expected a savings goal, got %v", goals)
			}
			if g.Status != tc.want {
				t.Errorf("expected status %s, got %s", tc.want, g.Status)
			}
			if !g.Deadline.Equal(p.NextDue) {
				t.Errorf("expected deadline %s, got %s", p.NextDue, g.Deadline)
			}
		})
	}
}

func TestDeriveGoals_PurchaseSavingsMonthlySuggestion(t *testing.T) {
	// 1500 due in 90 days spreads over three 30-day months.
	p := scheduledPurchase("Laptop", 1500, 90, true)
	goals := DeriveGoals(nil, nil, []*entity.ScheduledPurchase{p}, nil, analysisNow)

	g, ok := findGoal(goals, "scheduled_"+p.ID.String())
	if !ok {
		t.Fatal("expected a savings goal")
	}
	if len(g.Suggestions) == 0 || !strings.Contains(g.Suggestions[0], "$500.00 per month") {
		t.Errorf("expected a $500.00 monthly suggestion, got %v", g.Suggestions)
	}
}

func TestDeriveGoals_PurchaseSavingsLimitAndOrder(t *testing.T) {
	// Five qualifying purchases: only the three soonest get goals, and small
	// or inactive ones never qualify.
	purchases := []*entity.ScheduledPurchase{
		scheduledPurchase("Fourth", 900, 120, true),
		scheduledPurchase("First", 900, 10, true),
		scheduledPurchase("Third", 900, 70, true),
		scheduledPurchase("Second", 900, 40, true),
		scheduledPurchase("Fifth", 900, 150, true),
		scheduledPurchase("Cheap", 200, 5, true),
		scheduledPurchase("Inactive", 2000, 5, false),
	}

	goals := DeriveGoals(nil, nil, purchases, nil, analysisNow)

	var titles []string
	for _, g := range goals {
		if strings.HasPrefix(g.ID, "scheduled_") {
			titles = append(titles, g.Title)
		}
	}

	want := []string{"Save for First", "Save for Second", "Save for Third"}
	if len(titles) != len(want) {
		t.Fatalf("expected %d savings goals, got %d (%v)", len(want), len(titles), titles)
	}
	for i := range want {
		if titles[i] != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], titles[i])
		}
	}
}

func TestDeriveGoals_ManageScheduledMetaGoal(t *testing.T) {
	// Six schedules, four of them active.
	purchases := []*entity.ScheduledPurchase{
		scheduledPurchase("A", 50, 10, true),
		scheduledPurchase("B", 50, 20, true),
		scheduledPurchase("C", 50, 30, false),
		scheduledPurchase("D", 50, 40, true),
		scheduledPurchase("E", 50, 50, false),
		scheduledPurchase("F", 50, 60, true),
	}

	goals := DeriveGoals(nil, nil, purchases, nil, analysisNow)

	g, ok := findGoal(goals, "manage_scheduled")
	if !ok {
		t.Fatalf("expected the consolidation goal with six schedules, got %v", goals)
	}
	if !g.Target.Equal(decimal.NewFromInt(6)) {
		t.Errorf("expected target 6, got %s", g.Target)
	}
	if !g.Current.Equal(decimal.NewFromInt(4)) {
		t.Errorf("expected current 4, got %s", g.Current)
	}
	if !g.Deadline.Equal(analysisNow.AddDate(0, 0, 30)) {
		t.Errorf("expected a 30-day deadline, got %s", g.Deadline)
	}

	// Exactly five schedules stays below the limit.
	goals = DeriveGoals(nil, nil, purchases[:5], nil, analysisNow)
	if _, ok := findGoal(goals, "manage_scheduled"); ok {
		t.Error("expected no consolidation goal with five schedules")
	}
}

func TestDeriveGoals_EmptyTransactionsSkipsDerivedGoals(t *testing.T) {
	goals := DeriveGoals(nil, nil, nil, nil, analysisNow)
	if len(goals) != 0 {
		t.Errorf("expected no goals from empty input, got %d", len(goals))
	}

	goals = DeriveGoals(nil, nil, nil,
		[]*entity.FinancialGoal{financialGoal("Vacation", 3000, 0, false)},
		analysisNow)
	if len(goals) != 1 {
		t.Errorf("expected only the user goal without transactions, got %d", len(goals))
	}
	if _, ok := findGoal(goals, "emergency_fund"); ok {
		t.Error("expected no emergency fund goal without transactions")
	}
}

func TestDeriveGoals_EmergencyFund(t *testing.T) {
	transactions := []*entity.Transaction{
		expense("Food", 600, thisMonth(5)),
		expense("Transport", 400, lastMonth(5)), // all history counts, not just this month
		income(5000, thisMonth(1)),
	}

	goals := DeriveGoals(transactions, nil, nil, nil, analysisNow)

	g, ok := findGoal(goals, "emergency_fund")
	if !ok {
		t.Fatalf("expected an emergency fund goal, got %v", goals)
	}
	if !g.Target.Equal(decimal.NewFromInt(3000)) {
		t.Errorf("expected target 3000 (3x expenses), got %s", g.Target)
	}
	if !g.Current.IsZero() {
		t.Errorf("expected zero progress, got %s", g.Current)
	}
	if g.Status != entity.GoalStatusBehind {
		t.Errorf("expected behind status, got %s", g.Status)
	}
	if !g.Deadline.Equal(analysisNow.AddDate(0, 0, 365)) {
		t.Errorf("expected a one-year deadline, got %s", g.Deadline)
	}
}

func TestDeriveGoals_CategoryReduction(t *testing.T) {
	transactions := []*entity.Transaction{
		expense("Food", 1000, thisMonth(5)),
		expense("Transport", 400, thisMonth(8)),
	}

	goals := DeriveGoals(transactions, nil, nil, nil, analysisNow)

	g, ok := findGoal(goals, "category_reduction")
	if !ok {
		t.Fatalf("expected a reduction goal, got %v", goals)
	}
	if g.Title != "Reduce Food Spending" {
		t.Errorf("expected the heaviest category targeted, got %q", g.Title)
	}
	if !g.Target.Equal(decimal.NewFromInt(800)) {
		t.Errorf("expected target 800 (80%% of 1000), got %s", g.Target)
	}
	if !g.Current.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("expected current 1000, got %s", g.Current)
	}
	if g.Status != entity.GoalStatusBehind {
		t.Errorf("expected behind status while over target, got %s", g.Status)
	}
	if !g.Deadline.Equal(analysisNow.AddDate(0, 0, 60)) {
		t.Errorf("expected a 60-day deadline, got %s", g.Deadline)
	}
}

func TestDeriveGoals_Idempotent(t *testing.T) {
	transactions := []*entity.Transaction{
		expense("Food", 1000, thisMonth(5)),
		income(3000, thisMonth(1)),
	}
	purchases := []*entity.ScheduledPurchase{
		scheduledPurchase("Laptop", 1500, 45, true),
	}
	userGoals := []*entity.FinancialGoal{financialGoal("Vacation", 3000, 500, false)}

	first := DeriveGoals(transactions, nil, purchases, userGoals, analysisNow)
	second := DeriveGoals(transactions, nil, purchases, userGoals, analysisNow)

	if len(first) != len(second) {
		t.Fatalf("expected identical lengths, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID ||
			first[i].Status != second[i].Status ||
			!first[i].Target.Equal(second[i].Target) ||
			!first[i].Current.Equal(second[i].Current) {
			t.Errorf("position %d differs between identical invocations", i)
		}
	}
}
