package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rentaldesk/backend/internal/application/usecase/payment"
	domainerror "github.com/rentaldesk/backend/internal/domain/error"
	"github.com/rentaldesk/backend/internal/domain/valueobject"
	"github.com/rentaldesk/backend/internal/integration/entrypoint/dto"
)

// PaymentController handles payment endpoints.
type PaymentController struct {
	createUseCase *payment.CreatePaymentUseCase
	updateUseCase *payment.UpdatePaymentUseCase
	deleteUseCase *payment.DeletePaymentUseCase
	listUseCase   *payment.ListPaymentsUseCase
}

// NewPaymentController creates a new payment controller instance.
func NewPaymentController(
	createUseCase *payment.CreatePaymentUseCase,
	updateUseCase *payment.UpdatePaymentUseCase,
	deleteUseCase *payment.DeletePaymentUseCase,
	listUseCase *payment.ListPaymentsUseCase,
) *PaymentController {
	return &PaymentController{
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		listUseCase:   listUseCase,
	}
}

// ListForReservation handles GET /reservations/:id/payments.
func (c *PaymentController) ListForReservation(ctx *gin.Context) {
	owner, ok := ownerID(ctx)
	if !ok {
		return
	}
	reservationID, ok := pathID(ctx, "id", string(domainerror.ErrCodePaymentReservationNotFound))
	if !ok {
		return
	}

	payments, err := c.listUseCase.Execute(ctx.Request.Context(), payment.ListPaymentsInput{
		OwnerID:       owner,
		ReservationID: &reservationID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToPaymentListResponse(payments))
}

// List handles GET /payments.
func (c *PaymentController) List(ctx *gin.Context) {
	owner, ok := ownerID(ctx)
	if !ok {
		return
	}

	var query dto.ListPaymentsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		badRequest(ctx, "Invalid query parameters", string(domainerror.ErrCodeInvalidPaymentStatus), err)
		return
	}

	input := payment.ListPaymentsInput{OwnerID: owner}
	if query.Status != "" {
		status := valueobject.PaymentStatus(query.Status)
		input.Status = &status
	}

	payments, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToPaymentListResponse(payments))
}

// Create handles POST /reservations/:id/payments.
func (c *PaymentController) Create(ctx *gin.Context) {
	owner, ok := ownerID(ctx)
	if !ok {
		return
	}
	reservationID, ok := pathID(ctx, "id", string(domainerror.ErrCodePaymentReservationNotFound))
	if !ok {
		return
	}

	var req dto.CreatePaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", string(domainerror.ErrCodeInvalidPaymentAmount), err)
		return
	}
	input, err := req.ToInput(owner, reservationID)
	if err != nil {
		badRequest(ctx, "Invalid request body", string(domainerror.ErrCodeInvalidPaymentAmount), err)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToPaymentMutationResponse(output))
}

// Update handles PATCH /payments/:id.
func (c *PaymentController) Update(ctx *gin.Context) {
	owner, ok := ownerID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id", string(domainerror.ErrCodePaymentNotFound))
	if !ok {
		return
	}

	var req dto.UpdatePaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", string(domainerror.ErrCodeInvalidPaymentAmount), err)
		return
	}
	input, err := req.ToInput(owner, id)
	if err != nil {
		badRequest(ctx, "Invalid request body", string(domainerror.ErrCodeInvalidPaymentAmount), err)
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToPaymentMutationResponse(output))
}

// Delete handles DELETE /payments/:id and returns the recomputed settlement.
func (c *PaymentController) Delete(ctx *gin.Context) {
	owner, ok := ownerID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id", string(domainerror.ErrCodePaymentNotFound))
	if !ok {
		return
	}

	financials, err := c.deleteUseCase.Execute(ctx.Request.Context(), payment.DeletePaymentInput{OwnerID: owner, PaymentID: id})
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToFinancialsResponse(financials))
}
