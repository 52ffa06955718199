package coaching

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cashcoach/backend/internal/domain/entity"
)

// Insight rule thresholds.
var (
	weekendShareLimit    = decimal.NewFromFloat(0.35)
	disciplineFactor     = decimal.NewFromFloat(0.8)
	disciplineMinPercent = decimal.NewFromInt(70)
)

// duplicateCategoryLimit is the number of active scheduled purchases in one
// category beyond which consolidation is suggested.
const duplicateCategoryLimit = 2

// DeriveInsights derives qualitative observations from the input snapshot.
// The five rules below are independent and always evaluated in this order;
// IDs restart at 1 on every call. Without transaction history no insights
// are produced.
func DeriveInsights(
	transactions []*entity.Transaction,
	budgets []*entity.Budget,
	scheduled []*entity.ScheduledPurchase,
) []entity.Insight {
	insights := []entity.Insight{}
	if len(transactions) == 0 {
		return insights
	}

	id := 1
	appendInsight := func(in entity.Insight) {
		in.ID = id
		id++
		insights = append(insights, in)
	}

	if in, ok := scheduledImpactInsight(scheduled); ok {
		appendInsight(in)
	}
	if in, ok := duplicateCategoryInsight(scheduled); ok {
		appendInsight(in)
	}
	if in, ok := weekendSpendingInsight(transactions); ok {
		appendInsight(in)
	}
	if in, ok := budgetDisciplineInsight(budgets); ok {
		appendInsight(in)
	}
	if in, ok := cashFlowInsight(transactions); ok {
		appendInsight(in)
	}

	return insights
}

// scheduledImpactInsight totals the monthly-equivalent cost of active
// scheduled purchases.
func scheduledImpactInsight(scheduled []*entity.ScheduledPurchase) (entity.Insight, bool) {
	var activeCount int
	monthlyTotal := decimal.Zero
	for _, p := range scheduled {
		if !p.IsActive {
			continue
		}
		activeCount++
		monthlyTotal = monthlyTotal.Add(p.MonthlyEquivalent())
	}

	if !monthlyTotal.IsPositive() {
		return entity.Insight{}, false
	}

	return entity.Insight{
		Type:  entity.InsightPattern,
		Title: "Scheduled Purchase Impact",
		Description: fmt.Sprintf(
			"Your scheduled purchases add $%s to your monthly expenses. Consider this when setting budgets.",
			monthlyTotal.StringFixed(2),
		),
		Data: map[string]interface{}{
			"monthly_amount": monthlyTotal.StringFixed(2),
			"count":          activeCount,
		},
		Confidence: 90,
	}, true
}

// duplicateCategoryInsight flags categories carrying more than two active
// scheduled purchases. Category order follows first appearance in the input.
func duplicateCategoryInsight(scheduled []*entity.ScheduledPurchase) (entity.Insight, bool) {
	counts := make(map[string]int)
	var order []string
	for _, p := range scheduled {
		if !p.IsActive {
			continue
		}
		if _, ok := counts[p.Category]; !ok {
			order = append(order, p.Category)
		}
		counts[p.Category]++
	}

	var duplicates []string
	for _, category := range order {
		if counts[category] > duplicateCategoryLimit {
			duplicates = append(duplicates, category)
		}
	}

	if len(duplicates) == 0 {
		return entity.Insight{}, false
	}

	return entity.Insight{
		Type:  entity.InsightOpportunity,
		Title: "Multiple Scheduled Purchases in Same Category",
		Description: fmt.Sprintf(
			"You have multiple scheduled purchases in %s. Consider consolidating to reduce complexity.",
			strings.Join(duplicates, ", "),
		),
		Data: map[string]interface{}{
			"duplicate_categories": duplicates,
		},
		Confidence: 75,
	}, true
}

// weekendSpendingInsight reports when more than 35% of expense spending
// lands on Saturdays and Sundays. Both sides must be non-zero; a dataset
// with only weekend (or only weekday) expenses carries no contrast.
func weekendSpendingInsight(transactions []*entity.Transaction) (entity.Insight, bool) {
	weekend := decimal.Zero
	weekday := decimal.Zero
	for _, tx := range transactions {
		if tx.Type != entity.TransactionTypeExpense {
			continue
		}
		if isWeekend(tx.Date) {
			weekend = weekend.Add(tx.Amount.Abs())
		} else {
			weekday = weekday.Add(tx.Amount.Abs())
		}
	}

	if !weekend.IsPositive() || !weekday.IsPositive() {
		return entity.Insight{}, false
	}

	share := weekend.Div(weekend.Add(weekday))
	if !share.GreaterThan(weekendShareLimit) {
		return entity.Insight{}, false
	}

	return entity.Insight{
		Type:  entity.InsightPattern,
		Title: "Weekend Spending Pattern",
		Description: fmt.Sprintf(
			"You spend %s%% of your money on weekends. Consider budgeting specifically for weekend activities.",
			share.Mul(oneHundred).StringFixed(0),
		),
		Data: map[string]interface{}{
			"weekend_spending": weekend.StringFixed(2),
			"weekday_spending": weekday.StringFixed(2),
		},
		Confidence: 87,
	}, true
}

// budgetDisciplineInsight celebrates staying under 80% of the ceiling on at
// least 70% of budgets.
func budgetDisciplineInsight(budgets []*entity.Budget) (entity.Insight, bool) {
	if len(budgets) == 0 {
		return entity.Insight{}, false
	}

	onTrack := 0
	for _, b := range budgets {
		if !b.Spent.GreaterThan(b.Amount.Mul(disciplineFactor)) {
			onTrack++
		}
	}

	successRate := decimal.NewFromInt(int64(onTrack)).
		Div(decimal.NewFromInt(int64(len(budgets)))).
		Mul(oneHundred)
	if successRate.LessThan(disciplineMinPercent) {
		return entity.Insight{}, false
	}

	return entity.Insight{
		Type:  entity.InsightAchievement,
		Title: "Budget Discipline Success",
		Description: fmt.Sprintf(
			"Great job! You're staying within budget on %s%% of your categories. Keep up the excellent work!",
			successRate.StringFixed(0),
		),
		Data: map[string]interface{}{
			"success_rate":  successRate.StringFixed(0),
			"total_budgets": len(budgets),
		},
		Confidence: 100,
	}, true
}

// cashFlowInsight celebrates income exceeding expenses across the whole
// transaction history.
func cashFlowInsight(transactions []*entity.Transaction) (entity.Insight, bool) {
	income := decimal.Zero
	expenses := decimal.Zero
	for _, tx := range transactions {
		switch tx.Type {
		case entity.TransactionTypeIncome:
			income = income.Add(tx.Amount)
		case entity.TransactionTypeExpense:
			expenses = expenses.Add(tx.Amount.Abs())
		}
	}

	if !income.IsPositive() || !income.GreaterThan(expenses) {
		return entity.Insight{}, false
	}

	savingsRate := income.Sub(expenses).Div(income).Mul(oneHundred)

	return entity.Insight{
		Type:  entity.InsightAchievement,
		Title: "Positive Cash Flow",
		Description: fmt.Sprintf(
			"Excellent! You're saving %s%% of your income. You're on track for financial success.",
			savingsRate.StringFixed(0),
		),
		Data: map[string]interface{}{
			"savings_rate": savingsRate.StringFixed(0),
			"surplus":      income.Sub(expenses).StringFixed(2),
		},
		Confidence: 100,
	}, true
}
