// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cashcoach/backend/internal/application/usecase/coaching"
	domainerror "github.com/cashcoach/backend/internal/domain/error"
	"github.com/cashcoach/backend/internal/integration/entrypoint/dto"
	"github.com/cashcoach/backend/internal/integration/entrypoint/middleware"
)

// CoachingController handles coaching report, narrative and digest endpoints.
type CoachingController struct {
	getReportUseCase    *coaching.GetReportUseCase
	getNarrativeUseCase *coaching.GetNarrativeUseCase
	queueDigestUseCase  *coaching.QueueDigestUseCase
}

// NewCoachingController creates a new coaching controller instance.
func NewCoachingController(
	getReportUseCase *coaching.GetReportUseCase,
	getNarrativeUseCase *coaching.GetNarrativeUseCase,
	queueDigestUseCase *coaching.QueueDigestUseCase,
) *CoachingController {
	return &CoachingController{
		getReportUseCase:    getReportUseCase,
		getNarrativeUseCase: getNarrativeUseCase,
		queueDigestUseCase:  queueDigestUseCase,
	}
}

// GetReport handles GET /coaching/report requests. Passing ?refresh=true
// bypasses the cache and recomputes the report.
func (c *CoachingController) GetReport(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	forceRefresh := ctx.Query("refresh") == "true"

	output, err := c.getReportUseCase.Execute(ctx.Request.Context(), coaching.GetReportInput{
		UserID:       userID,
		ForceRefresh: forceRefresh,
	})
	if err != nil {
		c.handleCoachingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCoachingReportResponse(output.Report, output.FromCache))
}

// GetNarrative handles GET /coaching/narrative requests.
func (c *CoachingController) GetNarrative(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	output, err := c.getNarrativeUseCase.Execute(ctx.Request.Context(), coaching.GetNarrativeInput{
		UserID: userID,
	})
	if err != nil {
		c.handleCoachingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NarrativeResponse{
		Narrative: output.Narrative,
	})
}

// QueueDigest handles POST /coaching/digest requests. The email is sent
// asynchronously; a successful response only means the job was queued.
func (c *CoachingController) QueueDigest(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	if err := c.queueDigestUseCase.Execute(ctx.Request.Context(), coaching.QueueDigestInput{
		UserID: userID,
	}); err != nil {
		c.handleCoachingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusAccepted, dto.MessageResponse{
		Message: "Digest email queued",
	})
}

// handleCoachingError maps coaching errors to HTTP responses.
func (c *CoachingController) handleCoachingError(ctx *gin.Context, err error) {
	var coachingErr *domainerror.CoachingError
	if errors.As(err, &coachingErr) {
		statusCode := http.StatusInternalServerError
		switch coachingErr.Code {
		case domainerror.ErrCodeNarrativeUnavailable:
			statusCode = http.StatusServiceUnavailable
		case domainerror.ErrCodeNarrativeGenerationFailed:
			statusCode = http.StatusBadGateway
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: coachingErr.Message,
			Code:  string(coachingErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
