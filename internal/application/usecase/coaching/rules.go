package coaching

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cashcoach/backend/internal/domain/entity"
)

// Recommendation rule thresholds.
var (
	largePurchaseFloor  = decimal.NewFromInt(1000) // per-purchase amount that warrants a savings plan
	highImpactTotal     = decimal.NewFromInt(1000)
	mediumImpactTotal   = decimal.NewFromInt(500)
	optimizeFloor       = decimal.NewFromInt(500) // top category spending that warrants optimizing
	optimizeCut         = decimal.NewFromFloat(0.20)
	trendSavingsShare   = decimal.NewFromFloat(0.5)
	budgetWarningFactor = decimal.NewFromFloat(0.9)
)

// upcomingWindowDays is the look-ahead window for scheduled purchase alerts.
const upcomingWindowDays = 30

// ruleContext is the shared read-only input snapshot every recommendation
// rule evaluates against.
type ruleContext struct {
	transactions []*entity.Transaction
	budgets      []*entity.Budget
	patterns     []entity.SpendingPattern
	scheduled    []*entity.ScheduledPurchase
	now          time.Time
}

// recommendationRule produces zero or more recommendations from the context.
// Rules never see each other's output; the evaluation order below is the
// only ordering contract.
type recommendationRule func(*ruleContext) []entity.Recommendation

// recommendationRules is the fixed evaluation order. IDs are assigned in
// fire order across the whole list, then the result is stably sorted by
// priority, so two recommendations with equal priority keep rule order.
var recommendationRules = []recommendationRule{
	upcomingPurchasesRule,
	largePurchasePlanRule,
	topCategoryOptimizeRule,
	trendingUpAlertRule,
	budgetVarianceRule,
	emergencyFundRule,
}

// upcomingPurchasesRule alerts on active scheduled purchases due within the
// next 30 days, aggregated into a single recommendation.
func upcomingPurchasesRule(rc *ruleContext) []entity.Recommendation {
	var count int
	total := decimal.Zero
	for _, p := range rc.scheduled {
		if !p.IsActive {
			continue
		}
		days := daysUntil(rc.now, p.NextDue)
		if days < 0 || days > upcomingWindowDays {
			continue
		}
		count++
		total = total.Add(p.Amount)
	}

	if count == 0 {
		return nil
	}

	impact := entity.ImpactLow
	priority := 2
	if total.GreaterThan(highImpactTotal) {
		impact = entity.ImpactHigh
		priority = 1
	} else if total.GreaterThan(mediumImpactTotal) {
		impact = entity.ImpactMedium
	}

	return []entity.Recommendation{{
		Type:  entity.RecommendationAlert,
		Title: "Upcoming Scheduled Purchases",
		Description: fmt.Sprintf(
			"You have %d scheduled purchases totaling $%s in the next 30 days. Consider adjusting your budget accordingly.",
			count, total.StringFixed(2),
		),
		Impact:           impact,
		PotentialSavings: decimal.Zero,
		Category:         "planning",
		Action:           "Review and adjust monthly budget to accommodate upcoming purchases",
		Confidence:       95,
		Priority:         priority,
	}}
}

// largePurchasePlanRule proposes a monthly savings plan for the soonest
// active purchase above the large-purchase floor.
func largePurchasePlanRule(rc *ruleContext) []entity.Recommendation {
	var next *entity.ScheduledPurchase
	for _, p := range rc.scheduled {
		if !p.IsActive || !p.Amount.GreaterThan(largePurchaseFloor) {
			continue
		}
		if next == nil || p.NextDue.Before(next.NextDue) {
			next = p
		}
	}

	if next == nil {
		return nil
	}

	days := daysUntil(rc.now, next.NextDue)
	needed := next.Amount.Div(decimal.NewFromFloat(monthsUntil(days))).Ceil()

	return []entity.Recommendation{{
		Type:  entity.RecommendationSave,
		Title: "Prepare for Large Purchase",
		Description: fmt.Sprintf(
			"You have %q scheduled for $%s. Start saving $%s per month to be ready.",
			next.Name, next.Amount.StringFixed(2), needed.StringFixed(0),
		),
		Impact:           entity.ImpactHigh,
		PotentialSavings: next.Amount,
		Category:         "saving",
		Action: fmt.Sprintf(
			"Set up automatic transfer of $%s monthly to a dedicated savings account",
			needed.StringFixed(0),
		),
		Confidence: 90,
		Priority:   1,
	}}
}

// topCategoryOptimizeRule suggests trimming the highest-spending category
// when it is large enough to matter.
func topCategoryOptimizeRule(rc *ruleContext) []entity.Recommendation {
	if len(rc.patterns) == 0 {
		return nil
	}

	top := rc.patterns[0]
	if !top.Amount.GreaterThan(optimizeFloor) {
		return nil
	}

	return []entity.Recommendation{{
		Type:  entity.RecommendationOptimize,
		Title: fmt.Sprintf("Optimize %s Spending", top.Category),
		Description: fmt.Sprintf(
			"You've spent $%s on %s this month. Consider ways to reduce this expense category.",
			top.Amount.StringFixed(0), strings.ToLower(top.Category),
		),
		Impact:           entity.ImpactHigh,
		PotentialSavings: top.Amount.Mul(optimizeCut).Round(0),
		Category:         top.Category,
		Action:           fmt.Sprintf("Review and reduce %s expenses", strings.ToLower(top.Category)),
		Confidence:       85,
		Priority:         1,
	}}
}

// trendingUpAlertRule flags the first category (in pattern order) whose
// spending rose more than the trend threshold over a non-zero baseline.
func trendingUpAlertRule(rc *ruleContext) []entity.Recommendation {
	for _, p := range rc.patterns {
		if p.Trend != entity.TrendUp || !p.LastMonth.IsPositive() {
			continue
		}

		increase := p.Amount.Sub(p.LastMonth).Div(p.LastMonth).Mul(oneHundred)
		return []entity.Recommendation{{
			Type:  entity.RecommendationAlert,
			Title: fmt.Sprintf("%s Spending Increased", p.Category),
			Description: fmt.Sprintf(
				"Your %s spending increased by %s%% from last month. Monitor this category closely.",
				strings.ToLower(p.Category), increase.StringFixed(0),
			),
			Impact:           entity.ImpactMedium,
			PotentialSavings: p.Amount.Sub(p.LastMonth).Mul(trendSavingsShare).Round(0),
			Category:         p.Category,
			Action:           fmt.Sprintf("Monitor and reduce %s spending", strings.ToLower(p.Category)),
			Confidence:       78,
			Priority:         2,
		}}
	}
	return nil
}

// budgetVarianceRule emits one alert per budget past 90% of its ceiling.
// PotentialSavings is spent minus amount and stays negative while the budget
// is merely near its limit; clamping it would hide how much headroom is left.
func budgetVarianceRule(rc *ruleContext) []entity.Recommendation {
	var recs []entity.Recommendation
	for _, b := range rc.budgets {
		if !b.Spent.GreaterThan(b.Amount.Mul(budgetWarningFactor)) {
			continue
		}

		impact := entity.ImpactMedium
		priority := 2
		if b.Spent.GreaterThan(b.Amount) {
			impact = entity.ImpactHigh
			priority = 1
		}

		usage := oneHundred
		if b.Amount.IsPositive() {
			usage = b.Spent.Div(b.Amount).Mul(oneHundred)
		}

		recs = append(recs, entity.Recommendation{
			Type:  entity.RecommendationAlert,
			Title: fmt.Sprintf("%s Budget Almost Exceeded", b.Category),
			Description: fmt.Sprintf(
				"You've used %s%% of your %s budget. Consider reducing spending in this category.",
				usage.StringFixed(0), b.Category,
			),
			Impact:           impact,
			PotentialSavings: b.Spent.Sub(b.Amount).Round(0),
			Category:         b.Category,
			Action:           fmt.Sprintf("Reduce %s spending", strings.ToLower(b.Category)),
			Confidence:       92,
			Priority:         priority,
		})
	}
	return recs
}

// emergencyFundRule is a standing advisory whenever any income has been
// recorded. It duplicates the derived emergency-fund goal on purpose: the
// recommendation is advice, the goal tracks a target.
func emergencyFundRule(rc *ruleContext) []entity.Recommendation {
	totalIncome := decimal.Zero
	for _, tx := range rc.transactions {
		if tx.Type == entity.TransactionTypeIncome {
			totalIncome = totalIncome.Add(tx.Amount)
		}
	}

	if !totalIncome.IsPositive() {
		return nil
	}

	return []entity.Recommendation{{
		Type:             entity.RecommendationSave,
		Title:            "Build Emergency Fund",
		Description:      "Start building an emergency fund that covers 3-6 months of expenses for financial security.",
		Impact:           entity.ImpactHigh,
		PotentialSavings: decimal.Zero,
		Category:         "Savings",
		Action:           "Set up automatic savings transfer",
		Confidence:       95,
		Priority:         3,
	}}
}

// DeriveRecommendations evaluates the recommendation rules in their fixed
// order over one input snapshot and returns the results sorted by ascending
// priority (stable, so equal priorities keep rule order). IDs restart at 1
// on every call.
//
// Without transaction history no recommendations are produced at all, even
// when budgets or schedules alone could trigger rules.
func DeriveRecommendations(
	transactions []*entity.Transaction,
	budgets []*entity.Budget,
	patterns []entity.SpendingPattern,
	scheduled []*entity.ScheduledPurchase,
	now time.Time,
) []entity.Recommendation {
	recommendations := []entity.Recommendation{}
	if len(transactions) == 0 {
		return recommendations
	}

	rc := &ruleContext{
		transactions: transactions,
		budgets:      budgets,
		patterns:     patterns,
		scheduled:    scheduled,
		now:          now,
	}

	id := 1
	for _, rule := range recommendationRules {
		for _, rec := range rule(rc) {
			rec.ID = id
			id++
			recommendations = append(recommendations, rec)
		}
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].Priority < recommendations[j].Priority
	})

	return recommendations
}
