package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rentaldesk/backend/internal/application/usecase/property"
	domainerror "github.com/rentaldesk/backend/internal/domain/error"
	"github.com/rentaldesk/backend/internal/integration/entrypoint/dto"
)

// PropertyController handles property endpoints.
type PropertyController struct {
	createUseCase *property.CreatePropertyUseCase
	listUseCase   *property.ListPropertiesUseCase
	updateUseCase *property.UpdatePropertyUseCase
	deleteUseCase *property.DeletePropertyUseCase
}

// NewPropertyController creates a new property controller instance.
func NewPropertyController(
	createUseCase *property.CreatePropertyUseCase,
	listUseCase *property.ListPropertiesUseCase,
	updateUseCase *property.UpdatePropertyUseCase,
	deleteUseCase *property.DeletePropertyUseCase,
) *PropertyController {
	return &PropertyController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /properties.
func (c *PropertyController) List(ctx *gin.Context) {
	owner, ok := ownerID(ctx)
	if !ok {
		return
	}

	properties, err := c.listUseCase.Execute(ctx.Request.Context(), owner)
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToPropertyListResponse(properties))
}

// Create handles POST /properties.
func (c *PropertyController) Create(ctx *gin.Context) {
	owner, ok := ownerID(ctx)
	if !ok {
		return
	}

	var req dto.CreatePropertyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", string(domainerror.ErrCodePropertyNameRequired), err)
		return
	}

	created, err := c.createUseCase.Execute(ctx.Request.Context(), property.CreatePropertyInput{
		OwnerID:   owner,
		Name:      req.Name,
		Address:   req.Address,
		MaxGuests: req.MaxGuests,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToPropertyResponse(created))
}

// Update handles PATCH /properties/:id.
func (c *PropertyController) Update(ctx *gin.Context) {
	owner, ok := ownerID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id", string(domainerror.ErrCodePropertyNotFound))
	if !ok {
		return
	}

	var req dto.UpdatePropertyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", string(domainerror.ErrCodeInvalidMaxGuests), err)
		return
	}

	updated, err := c.updateUseCase.Execute(ctx.Request.Context(), property.UpdatePropertyInput{
		OwnerID:    owner,
		PropertyID: id,
		Name:       req.Name,
		Address:    req.Address,
		MaxGuests:  req.MaxGuests,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToPropertyResponse(updated))
}

// Delete handles DELETE /properties/:id.
func (c *PropertyController) Delete(ctx *gin.Context) {
	owner, ok := ownerID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id", string(domainerror.ErrCodePropertyNotFound))
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), property.DeletePropertyInput{OwnerID: owner, PropertyID: id}); err != nil {
		handleError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
