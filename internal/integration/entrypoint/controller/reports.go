// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cashcoach/backend/internal/application/usecase/reports"
	domainerror "github.com/cashcoach/backend/internal/domain/error"
	"github.com/cashcoach/backend/internal/integration/entrypoint/dto"
	"github.com/cashcoach/backend/internal/integration/entrypoint/middleware"
)

// ReportsController handles spending and trend report endpoints.
type ReportsController struct {
	spendingUseCase *reports.GetSpendingReportUseCase
	trendsUseCase   *reports.GetMonthlyTrendsUseCase
}

// NewReportsController creates a new reports controller instance.
func NewReportsController(
	spendingUseCase *reports.GetSpendingReportUseCase,
	trendsUseCase *reports.GetMonthlyTrendsUseCase,
) *ReportsController {
	return &ReportsController{
		spendingUseCase: spendingUseCase,
		trendsUseCase:   trendsUseCase,
	}
}

// GetSpending handles GET /reports/spending requests.
func (c *ReportsController) GetSpending(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	months, valid := parseMonthsParam(ctx)
	if !valid {
		return
	}

	output, err := c.spendingUseCase.Execute(ctx.Request.Context(), reports.GetSpendingReportInput{
		UserID: userID,
		Months: months,
	})
	if err != nil {
		c.handleReportsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSpendingReportResponse(output))
}

// GetTrends handles GET /reports/trends requests.
func (c *ReportsController) GetTrends(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	months, valid := parseMonthsParam(ctx)
	if !valid {
		return
	}

	output, err := c.trendsUseCase.Execute(ctx.Request.Context(), reports.GetMonthlyTrendsInput{
		UserID: userID,
		Months: months,
	})
	if err != nil {
		c.handleReportsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTrendsReportResponse(output))
}

// parseMonthsParam reads the optional ?months= query parameter. A missing
// parameter means the use case default; a non-numeric value is a 400. Range
// validation happens in the use case.
func parseMonthsParam(ctx *gin.Context) (int, bool) {
	raw := ctx.Query("months")
	if raw == "" {
		return 0, true
	}

	months, err := strconv.Atoi(raw)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "months must be a number",
			Code:  string(domainerror.ErrCodeInvalidReportRange),
		})
		return 0, false
	}

	return months, true
}

// handleReportsError maps report errors to HTTP responses.
func (c *ReportsController) handleReportsError(ctx *gin.Context, err error) {
	var reportsErr *domainerror.ReportsError
	if errors.As(err, &reportsErr) {
		statusCode := http.StatusInternalServerError
		if reportsErr.Code == domainerror.ErrCodeInvalidReportRange {
			statusCode = http.StatusBadRequest
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: reportsErr.Message,
			Code:  string(reportsErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
