// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cashcoach/backend/internal/application/usecase/scheduledpurchase"
	"github.com/cashcoach/backend/internal/domain/entity"
	domainerror "github.com/cashcoach/backend/internal/domain/error"
	"github.com/cashcoach/backend/internal/integration/entrypoint/dto"
	"github.com/cashcoach/backend/internal/integration/entrypoint/middleware"
)

// ScheduledPurchaseController handles scheduled purchase endpoints.
type ScheduledPurchaseController struct {
	createUseCase *scheduledpurchase.CreateScheduledPurchaseUseCase
	listUseCase   *scheduledpurchase.ListScheduledPurchasesUseCase
	updateUseCase *scheduledpurchase.UpdateScheduledPurchaseUseCase
	toggleUseCase *scheduledpurchase.ToggleScheduledPurchaseUseCase
	deleteUseCase *scheduledpurchase.DeleteScheduledPurchaseUseCase
}

// NewScheduledPurchaseController creates a new scheduled purchase controller instance.
func NewScheduledPurchaseController(
	createUseCase *scheduledpurchase.CreateScheduledPurchaseUseCase,
	listUseCase *scheduledpurchase.ListScheduledPurchasesUseCase,
	updateUseCase *scheduledpurchase.UpdateScheduledPurchaseUseCase,
	toggleUseCase *scheduledpurchase.ToggleScheduledPurchaseUseCase,
	deleteUseCase *scheduledpurchase.DeleteScheduledPurchaseUseCase,
) *ScheduledPurchaseController {
	return &ScheduledPurchaseController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		toggleUseCase: toggleUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /scheduled-purchases requests.
func (c *ScheduledPurchaseController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	var req dto.CreateScheduledPurchaseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingPurchaseFields),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), scheduledpurchase.CreateScheduledPurchaseInput{
		UserID:    userID,
		Name:      req.Name,
		Category:  req.Category,
		Amount:    req.Amount,
		Frequency: entity.PurchaseFrequency(req.Frequency),
		NextDue:   req.NextDue,
	})
	if err != nil {
		c.handlePurchaseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToScheduledPurchaseResponse(output.Purchase))
}

// List handles GET /scheduled-purchases requests.
func (c *ScheduledPurchaseController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), scheduledpurchase.ListScheduledPurchasesInput{
		UserID: userID,
	})
	if err != nil {
		c.handlePurchaseError(ctx, err)
		return
	}

	response := dto.ListScheduledPurchasesResponse{
		Purchases: make([]dto.ScheduledPurchaseResponse, len(output.Purchases)),
	}
	for i, p := range output.Purchases {
		response.Purchases[i] = dto.ToScheduledPurchaseResponse(p)
	}

	ctx.JSON(http.StatusOK, response)
}

// Update handles PATCH /scheduled-purchases/:id requests.
func (c *ScheduledPurchaseController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	purchaseID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid scheduled purchase ID",
		})
		return
	}

	var req dto.UpdateScheduledPurchaseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingPurchaseFields),
		})
		return
	}

	input := scheduledpurchase.UpdateScheduledPurchaseInput{
		PurchaseID: purchaseID,
		UserID:     userID,
		Name:       req.Name,
		Category:   req.Category,
		Amount:     req.Amount,
		NextDue:    req.NextDue,
		IsActive:   req.IsActive,
	}
	if req.Frequency != nil {
		f := entity.PurchaseFrequency(*req.Frequency)
		input.Frequency = &f
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handlePurchaseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToScheduledPurchaseResponse(output.Purchase))
}

// Toggle handles PATCH /scheduled-purchases/:id/toggle requests.
func (c *ScheduledPurchaseController) Toggle(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	purchaseID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid scheduled purchase ID",
		})
		return
	}

	output, err := c.toggleUseCase.Execute(ctx.Request.Context(), scheduledpurchase.ToggleScheduledPurchaseInput{
		PurchaseID: purchaseID,
		UserID:     userID,
	})
	if err != nil {
		c.handlePurchaseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToScheduledPurchaseResponse(output.Purchase))
}

// Delete handles DELETE /scheduled-purchases/:id requests.
func (c *ScheduledPurchaseController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	purchaseID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid scheduled purchase ID",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), scheduledpurchase.DeleteScheduledPurchaseInput{
		PurchaseID: purchaseID,
		UserID:     userID,
	}); err != nil {
		c.handlePurchaseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Scheduled purchase deleted",
	})
}

// handlePurchaseError maps scheduled purchase errors to HTTP responses.
func (c *ScheduledPurchaseController) handlePurchaseError(ctx *gin.Context, err error) {
	var purchaseErr *domainerror.ScheduledPurchaseError
	if errors.As(err, &purchaseErr) {
		statusCode := http.StatusBadRequest
		switch purchaseErr.Code {
		case domainerror.ErrCodeScheduledPurchaseNotFound:
			statusCode = http.StatusNotFound
		case domainerror.ErrCodeNotAuthorizedPurchase:
			statusCode = http.StatusForbidden
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: purchaseErr.Message,
			Code:  string(purchaseErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
