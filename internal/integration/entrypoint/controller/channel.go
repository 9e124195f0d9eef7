package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rentaldesk/backend/internal/application/usecase/channel"
	domainerror "github.com/rentaldesk/backend/internal/domain/error"
	"github.com/rentaldesk/backend/internal/integration/entrypoint/dto"
)

// ChannelController handles sales channels and their per-property terms.
type ChannelController struct {
	createUseCase        *channel.CreateChannelUseCase
	listUseCase          *channel.ListChannelsUseCase
	deleteUseCase        *channel.DeleteChannelUseCase
	setOverrideUseCase   *channel.SetOverrideUseCase
	listOverridesUseCase *channel.ListOverridesUseCase
}

// NewChannelController creates a new channel controller instance.
func NewChannelController(
	createUseCase *channel.CreateChannelUseCase,
	listUseCase *channel.ListChannelsUseCase,
	deleteUseCase *channel.DeleteChannelUseCase,
	setOverrideUseCase *channel.SetOverrideUseCase,
	listOverridesUseCase *channel.ListOverridesUseCase,
) *ChannelController {
	return &ChannelController{
		createUseCase:        createUseCase,
		listUseCase:          listUseCase,
		deleteUseCase:        deleteUseCase,
		setOverrideUseCase:   setOverrideUseCase,
		listOverridesUseCase: listOverridesUseCase,
	}
}

// List handles GET /channels.
func (c *ChannelController) List(ctx *gin.Context) {
	owner, ok := ownerID(ctx)
	if !ok {
		return
	}

	channels, err := c.listUseCase.Execute(ctx.Request.Context(), owner)
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToChannelListResponse(channels))
}

// Create handles POST /channels.
func (c *ChannelController) Create(ctx *gin.Context) {
	owner, ok := ownerID(ctx)
	if !ok {
		return
	}

	var req dto.CreateChannelRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", string(domainerror.ErrCodeChannelNameRequired), err)
		return
	}

	created, err := c.createUseCase.Execute(ctx.Request.Context(), channel.CreateChannelInput{
		OwnerID:    owner,
		Name:       req.Name,
		VATPercent: req.VATPercent,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToChannelResponse(created))
}

// Delete handles DELETE /channels/:id.
func (c *ChannelController) Delete(ctx *gin.Context) {
	owner, ok := ownerID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id", string(domainerror.ErrCodeChannelNotFound))
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), channel.DeleteChannelInput{OwnerID: owner, ChannelID: id}); err != nil {
		handleError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// ListOverrides handles GET /properties/:id/channels.
func (c *ChannelController) ListOverrides(ctx *gin.Context) {
	owner, ok := ownerID(ctx)
	if !ok {
		return
	}
	propertyID, ok := pathID(ctx, "id", string(domainerror.ErrCodePropertyNotFound))
	if !ok {
		return
	}

	overrides, err := c.listOverridesUseCase.Execute(ctx.Request.Context(), channel.ListOverridesInput{
		OwnerID:    owner,
		PropertyID: propertyID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToOverrideListResponse(overrides))
}

// SetOverride handles PUT /properties/:id/channels/:channel_id.
func (c *ChannelController) SetOverride(ctx *gin.Context) {
	owner, ok := ownerID(ctx)
	if !ok {
		return
	}
	propertyID, ok := pathID(ctx, "id", string(domainerror.ErrCodePropertyNotFound))
	if !ok {
		return
	}
	channelID, ok := pathID(ctx, "channel_id", string(domainerror.ErrCodeChannelNotFound))
	if !ok {
		return
	}

	var req dto.SetOverrideRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", string(domainerror.ErrCodeInvalidCommissionPercent), err)
		return
	}

	override, err := c.setOverrideUseCase.Execute(ctx.Request.Context(), channel.SetOverrideInput{
		OwnerID:                     owner,
		PropertyID:                  propertyID,
		ChannelID:                   channelID,
		ChannelCommissionPercent:    req.ChannelCommissionPercent,
		CollectionCommissionPercent: req.CollectionCommissionPercent,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToOverrideResponse(override))
}
