package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rentaldesk/backend/internal/application/usecase/expense"
	domainerror "github.com/rentaldesk/backend/internal/domain/error"
	"github.com/rentaldesk/backend/internal/integration/entrypoint/dto"
)

// ExpenseController handles expense endpoints.
type ExpenseController struct {
	createUseCase *expense.CreateExpenseUseCase
	listUseCase   *expense.ListExpensesUseCase
	deleteUseCase *expense.DeleteExpenseUseCase
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	createUseCase *expense.CreateExpenseUseCase,
	listUseCase *expense.ListExpensesUseCase,
	deleteUseCase *expense.DeleteExpenseUseCase,
) *ExpenseController {
	return &ExpenseController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /expenses.
func (c *ExpenseController) List(ctx *gin.Context) {
	owner, ok := ownerID(ctx)
	if !ok {
		return
	}

	var query dto.ListExpensesQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		badRequest(ctx, "Invalid query parameters", string(domainerror.ErrCodeInvalidExpenseAmount), err)
		return
	}
	input, err := query.ToInput(owner)
	if err != nil {
		badRequest(ctx, "Invalid query parameters", string(domainerror.ErrCodeInvalidExpenseAmount), err)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToExpenseListResponse(output))
}

// Create handles POST /expenses.
func (c *ExpenseController) Create(ctx *gin.Context) {
	owner, ok := ownerID(ctx)
	if !ok {
		return
	}

	var req dto.CreateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", string(domainerror.ErrCodeExpenseDescriptionRequired), err)
		return
	}
	input, err := req.ToInput(owner)
	if err != nil {
		badRequest(ctx, "Invalid request body", string(domainerror.ErrCodeExpenseDescriptionRequired), err)
		return
	}

	created, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToExpenseResponse(created))
}

// Delete handles DELETE /expenses/:id.
func (c *ExpenseController) Delete(ctx *gin.Context) {
	owner, ok := ownerID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id", string(domainerror.ErrCodeExpenseNotFound))
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), expense.DeleteExpenseInput{OwnerID: owner, ExpenseID: id}); err != nil {
		handleError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
