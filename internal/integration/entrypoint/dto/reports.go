// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cashcoach/backend/internal/application/usecase/reports"
)

// ReportPeriodResponse represents the report period in API responses.
type ReportPeriodResponse struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Months    int       `json:"months"`
}

// CategorySpendingResponse represents one category in the spending report.
type CategorySpendingResponse struct {
	Category         string          `json:"category"`
	Amount           decimal.Decimal `json:"amount"`
	Percentage       float64         `json:"percentage"`
	TransactionCount int             `json:"transaction_count"`
}

// SpendingReportResponse represents the response for GET /reports/spending.
type SpendingReportResponse struct {
	Period        ReportPeriodResponse       `json:"period"`
	TotalExpenses decimal.Decimal            `json:"total_expenses"`
	Categories    []CategorySpendingResponse `json:"categories"`
}

// MonthlyTrendResponse represents one month in the trends report.
type MonthlyTrendResponse struct {
	Month            time.Time       `json:"month"`
	Label            string          `json:"label"`
	Income           decimal.Decimal `json:"income"`
	Expenses         decimal.Decimal `json:"expenses"`
	Net              decimal.Decimal `json:"net"`
	TransactionCount int             `json:"transaction_count"`
}

// TrendsReportResponse represents the response for GET /reports/trends.
type TrendsReportResponse struct {
	Period ReportPeriodResponse   `json:"period"`
	Trends []MonthlyTrendResponse `json:"trends"`
}

// ToSpendingReportResponse converts a spending report output to a response DTO.
func ToSpendingReportResponse(output *reports.GetSpendingReportOutput) SpendingReportResponse {
	response := SpendingReportResponse{
		Period: ReportPeriodResponse{
			StartDate: output.Period.StartDate,
			EndDate:   output.Period.EndDate,
			Months:    output.Period.Months,
		},
		TotalExpenses: output.TotalExpenses,
		Categories:    make([]CategorySpendingResponse, len(output.Categories)),
	}

	for i, c := range output.Categories {
		response.Categories[i] = CategorySpendingResponse{
			Category:         c.Category,
			Amount:           c.Amount,
			Percentage:       c.Percentage,
			TransactionCount: c.TransactionCount,
		}
	}

	return response
}

// ToTrendsReportResponse converts a monthly trends output to a response DTO.
func ToTrendsReportResponse(output *reports.GetMonthlyTrendsOutput) TrendsReportResponse {
	response := TrendsReportResponse{
		Period: ReportPeriodResponse{
			StartDate: output.Period.StartDate,
			EndDate:   output.Period.EndDate,
			Months:    output.Period.Months,
		},
		Trends: make([]MonthlyTrendResponse, len(output.Trends)),
	}

	for i, t := range output.Trends {
		response.Trends[i] = MonthlyTrendResponse{
			Month:            t.Month,
			Label:            t.Label,
			Income:           t.Income,
			Expenses:         t.Expenses,
			Net:              t.Net,
			TransactionCount: t.TransactionCount,
		}
	}

	return response
}
