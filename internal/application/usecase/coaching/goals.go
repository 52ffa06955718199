package coaching

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cashcoach/backend/internal/domain/entity"
)

// Goal derivation thresholds.
var (
	savingsGoalFloor    = decimal.NewFromInt(500) // purchase amount that earns a dedicated savings goal
	emergencyFundMonths = decimal.NewFromInt(3)
	reductionFactor     = decimal.NewFromFloat(0.8)
)

const (
	maxPurchaseGoals = 3
	// purchaseCountLimit is the number of scheduled purchases beyond which a
	// consolidation meta-goal is added.
	purchaseCountLimit = 5
)

// DeriveGoals builds the coaching goal list: user-defined goals mapped
// one-to-one, savings goals for the soonest large scheduled purchases, a
// consolidation meta-goal when schedules pile up, and (only when transaction
// history exists) an emergency-fund goal plus a reduction goal for the
// heaviest spending category.
func DeriveGoals(
	transactions []*entity.Transaction,
	budgets []*entity.Budget,
	scheduled []*entity.ScheduledPurchase,
	userGoals []*entity.FinancialGoal,
	now time.Time,
) []entity.CoachingGoal {
	goals := []entity.CoachingGoal{}

	for _, g := range userGoals {
		status := entity.GoalStatusOnTrack
		if g.IsCompleted {
			status = entity.GoalStatusCompleted
		}
		goals = append(goals, entity.CoachingGoal{
			ID:          "usergoal_" + g.ID.String(),
			Title:       g.Title,
			Target:      g.TargetAmount,
			Current:     g.CurrentAmount,
			Deadline:    g.TargetDate,
			Status:      status,
			Suggestions: []string{g.Description},
		})
	}

	goals = append(goals, purchaseSavingsGoals(scheduled, now)...)

	if len(scheduled) > purchaseCountLimit {
		activeCount := 0
		for _, p := range scheduled {
			if p.IsActive {
				activeCount++
			}
		}
		goals = append(goals, entity.CoachingGoal{
			ID:       "manage_scheduled",
			Title:    "Optimize Scheduled Purchases",
			Target:   decimal.NewFromInt(int64(len(scheduled))),
			Current:  decimal.NewFromInt(int64(activeCount)),
			Deadline: now.AddDate(0, 0, 30),
			Status:   entity.GoalStatusOnTrack,
			Suggestions: []string{
				"Review all scheduled purchases monthly",
				"Cancel or postpone non-essential items",
				"Consolidate similar purchases",
				"Adjust frequencies to match your cash flow",
			},
		})
	}

	if len(transactions) == 0 {
		return goals
	}

	totalExpenses := decimal.Zero
	categoryTotals := make(map[string]decimal.Decimal)
	var categoryOrder []string
	for _, tx := range transactions {
		if tx.Type != entity.TransactionTypeExpense {
			continue
		}
		amount := tx.Amount.Abs()
		totalExpenses = totalExpenses.Add(amount)

		category := tx.Category
		if category == "" {
			category = entity.DefaultCategory
		}
		if _, ok := categoryTotals[category]; !ok {
			categoryOrder = append(categoryOrder, category)
		}
		categoryTotals[category] = categoryTotals[category].Add(amount)
	}

	goals = append(goals, entity.CoachingGoal{
		ID:       "emergency_fund",
		Title:    "Emergency Fund",
		Target:   totalExpenses.Mul(emergencyFundMonths),
		Current:  decimal.Zero,
		Deadline: now.AddDate(0, 0, 365),
		Status:   entity.GoalStatusBehind,
		Suggestions: []string{
			"Save 10% of income automatically",
			"Reduce dining out by 25%",
			"Set up a separate high-yield savings account",
		},
	})

	if topCategory, topTotal, ok := heaviestCategory(categoryOrder, categoryTotals); ok {
		reduced := topTotal.Mul(reductionFactor)
		status := entity.GoalStatusOnTrack
		if topTotal.GreaterThan(reduced) {
			status = entity.GoalStatusBehind
		}
		goals = append(goals, entity.CoachingGoal{
			ID:       "category_reduction",
			Title:    fmt.Sprintf("Reduce %s Spending", topCategory),
			Target:   reduced,
			Current:  topTotal,
			Deadline: now.AddDate(0, 0, 60),
			Status:   status,
			Suggestions: []string{
				fmt.Sprintf("Set a monthly budget for %s", strings.ToLower(topCategory)),
				"Track all expenses in this category",
				"Look for cheaper alternatives",
				"Review and cancel unnecessary subscriptions",
			},
		})
	}

	return goals
}

// purchaseSavingsGoals turns the three soonest large active purchases into
// savings goals with a monthly contribution suggestion.
func purchaseSavingsGoals(scheduled []*entity.ScheduledPurchase, now time.Time) []entity.CoachingGoal {
	var large []*entity.ScheduledPurchase
	for _, p := range scheduled {
		if p.IsActive && p.Amount.GreaterThan(savingsGoalFloor) {
			large = append(large, p)
		}
	}
	sort.SliceStable(large, func(i, j int) bool {
		return large[i].NextDue.Before(large[j].NextDue)
	})
	if len(large) > maxPurchaseGoals {
		large = large[:maxPurchaseGoals]
	}

	goals := make([]entity.CoachingGoal, 0, len(large))
	for _, p := range large {
		days := daysUntil(now, p.NextDue)

		status := entity.GoalStatusAhead
		switch {
		case days < 30:
			status = entity.GoalStatusBehind
		case days < 60:
			status = entity.GoalStatusOnTrack
		}

		monthlySavings := p.Amount.Div(decimal.NewFromFloat(monthsUntil(days)))

		goals = append(goals, entity.CoachingGoal{
			ID:       "scheduled_" + p.ID.String(),
			Title:    fmt.Sprintf("Save for %s", p.Name),
			Target:   p.Amount,
			Current:  decimal.Zero,
			Deadline: p.NextDue,
			Status:   status,
			Suggestions: []string{
				fmt.Sprintf("Save $%s per month", monthlySavings.StringFixed(2)),
				"Set up automatic transfer to dedicated savings account",
				"Consider reducing discretionary spending in other categories",
				"Look for additional income opportunities if needed",
			},
		})
	}
	return goals
}

// heaviestCategory returns the expense category with the highest total,
// preferring first appearance on ties.
func heaviestCategory(order []string, totals map[string]decimal.Decimal) (string, decimal.Decimal, bool) {
	if len(order) == 0 {
		return "", decimal.Zero, false
	}

	top := order[0]
	for _, category := range order[1:] {
		if totals[category].GreaterThan(totals[top]) {
			top = category
		}
	}
	return top, totals[top], true
}
