// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/cashcoach/backend/internal/application/usecase/reports"
	"github.com/cashcoach/backend/internal/domain/entity"
)

// reportsRepository implements the reports.ReportsRepository interface.
type reportsRepository struct {
	db *gorm.DB
}

// NewReportsRepository creates a new reports repository instance.
func NewReportsRepository(db *gorm.DB) reports.ReportsRepository {
	return &reportsRepository{
		db: db,
	}
}

// GetCategorySpending returns spending totals by category for a period,
// along with the total expenses for the same period.
func (r *reportsRepository) GetCategorySpending(
	ctx context.Context,
	userID uuid.UUID,
	startDate, endDate time.Time,
) ([]reports.RawCategorySpending, decimal.Decimal, error) {
	var results []struct {
		Category         string          `gorm:"column:category"`
		Amount           decimal.Decimal `gorm:"column:amount"`
		TransactionCount int             `gorm:"column:transaction_count"`
	}

	err := r.db.WithContext(ctx).
		Table("transactions").
		Select("category, COALESCE(SUM(amount), 0) as amount, COUNT(*) as transaction_count").
		Where("user_id = ?", userID).
		Where("type = ?", entity.TransactionTypeExpense).
		Where("date >= ? AND date <= ?", startDate, endDate).
		Where("deleted_at IS NULL").
		Group("category").
		Order("amount DESC").
		Scan(&results).Error

	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("failed to get category spending: %w", err)
	}

	totalExpenses := decimal.Zero
	spending := make([]reports.RawCategorySpending, len(results))
	for i, res := range results {
		spending[i] = reports.RawCategorySpending{
			Category:         res.Category,
			Amount:           res.Amount,
			TransactionCount: res.TransactionCount,
		}
		totalExpenses = totalExpenses.Add(res.Amount)
	}

	return spending, totalExpenses, nil
}

// GetMonthlyTotals returns income/expense totals aggregated by month.
func (r *reportsRepository) GetMonthlyTotals(
	ctx context.Context,
	userID uuid.UUID,
	startDate, endDate time.Time,
) ([]reports.RawMonthlyTotals, error) {
	var results []struct {
		MonthStart       time.Time       `gorm:"column:month_start"`
		Income           decimal.Decimal `gorm:"column:income"`
		Expenses         decimal.Decimal `gorm:"column:expenses"`
		TransactionCount int             `gorm:"column:transaction_count"`
	}

	query := `
		SELECT
			date_trunc('month', date)::date as month_start,
			SUM(CASE WHEN type = 'income' THEN amount ELSE 0 END) as income,
			SUM(CASE WHEN type = 'expense' THEN amount ELSE 0 END) as expenses,
			COUNT(*) as transaction_count
		FROM transactions
		WHERE user_id = ?
			AND date >= ?
			AND date <= ?
			AND deleted_at IS NULL
		GROUP BY date_trunc('month', date)
		ORDER BY month_start
	`

	err := r.db.WithContext(ctx).
		Raw(query, userID, startDate, endDate).
		Scan(&results).Error

	if err != nil {
		return nil, fmt.Errorf("failed to get monthly totals: %w", err)
	}

	totals := make([]reports.RawMonthlyTotals, len(results))
	for i, res := range results {
		totals[i] = reports.RawMonthlyTotals{
			MonthStart:       res.MonthStart,
			Income:           res.Income,
			Expenses:         res.Expenses,
			TransactionCount: res.TransactionCount,
		}
	}

	return totals, nil
}
