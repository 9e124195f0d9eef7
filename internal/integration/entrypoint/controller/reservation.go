package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rentaldesk/backend/internal/application/usecase/reconciliation"
	"github.com/rentaldesk/backend/internal/application/usecase/reservation"
	domainerror "github.com/rentaldesk/backend/internal/domain/error"
	"github.com/rentaldesk/backend/internal/integration/entrypoint/dto"
)

// ReservationController handles reservation endpoints.
type ReservationController struct {
	createUseCase     *reservation.CreateReservationUseCase
	updateUseCase     *reservation.UpdateReservationUseCase
	deleteUseCase     *reservation.DeleteReservationUseCase
	getUseCase        *reservation.GetReservationUseCase
	listUseCase       *reservation.ListReservationsUseCase
	financialsUseCase *reconciliation.GetFinancialsUseCase
}

// NewReservationController creates a new reservation controller instance.
func NewReservationController(
	createUseCase *reservation.CreateReservationUseCase,
	updateUseCase *reservation.UpdateReservationUseCase,
	deleteUseCase *reservation.DeleteReservationUseCase,
	getUseCase *reservation.GetReservationUseCase,
	listUseCase *reservation.ListReservationsUseCase,
	financialsUseCase *reconciliation.GetFinancialsUseCase,
) *ReservationController {
	return &ReservationController{
		createUseCase:     createUseCase,
		updateUseCase:     updateUseCase,
		deleteUseCase:     deleteUseCase,
		getUseCase:        getUseCase,
		listUseCase:       listUseCase,
		financialsUseCase: financialsUseCase,
	}
}

// List handles GET /reservations.
func (c *ReservationController) List(ctx *gin.Context) {
	owner, ok := ownerID(ctx)
	if !ok {
		return
	}

	var query dto.ListReservationsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		badRequest(ctx, "Invalid query parameters", string(domainerror.ErrCodeMissingReservationFields), err)
		return
	}
	input, err := query.ToInput(owner)
	if err != nil {
		badRequest(ctx, "Invalid query parameters", string(domainerror.ErrCodeMissingReservationFields), err)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToReservationListResponse(output))
}

// Create handles POST /reservations.
func (c *ReservationController) Create(ctx *gin.Context) {
	owner, ok := ownerID(ctx)
	if !ok {
		return
	}

	var req dto.CreateReservationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", string(domainerror.ErrCodeMissingReservationFields), err)
		return
	}
	input, err := req.ToInput(owner)
	if err != nil {
		badRequest(ctx, "Invalid request body", string(domainerror.ErrCodeMissingReservationFields), err)
		return
	}

	financials, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToFinancialsResponse(financials))
}

// Get handles GET /reservations/:id.
func (c *ReservationController) Get(ctx *gin.Context) {
	owner, ok := ownerID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id", string(domainerror.ErrCodeReservationNotFound))
	if !ok {
		return
	}

	financials, err := c.getUseCase.Execute(ctx.Request.Context(), reservation.GetReservationInput{OwnerID: owner, ReservationID: id})
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToFinancialsResponse(financials))
}

// Financials handles GET /reservations/:id/financials.
func (c *ReservationController) Financials(ctx *gin.Context) {
	owner, ok := ownerID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id", string(domainerror.ErrCodeReservationNotFound))
	if !ok {
		return
	}

	financials, err := c.financialsUseCase.Execute(ctx.Request.Context(), reconciliation.GetFinancialsInput{OwnerID: owner, ReservationID: id})
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"breakdown": dto.ToBreakdownResponse(financials.Breakdown),
		"summary":   dto.ToSummaryResponse(financials.Summary),
	})
}

// Update handles PATCH /reservations/:id.
func (c *ReservationController) Update(ctx *gin.Context) {
	owner, ok := ownerID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id", string(domainerror.ErrCodeReservationNotFound))
	if !ok {
		return
	}

	var req dto.UpdateReservationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", string(domainerror.ErrCodeMissingReservationFields), err)
		return
	}
	input, err := req.ToInput(owner, id)
	if err != nil {
		badRequest(ctx, "Invalid request body", string(domainerror.ErrCodeMissingReservationFields), err)
		return
	}

	financials, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToFinancialsResponse(financials))
}

// Delete handles DELETE /reservations/:id.
func (c *ReservationController) Delete(ctx *gin.Context) {
	owner, ok := ownerID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id", string(domainerror.ErrCodeReservationNotFound))
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), reservation.DeleteReservationInput{OwnerID: owner, ReservationID: id}); err != nil {
		handleError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
