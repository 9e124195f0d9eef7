package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rentaldesk/backend/internal/application/usecase/dashboard"
	domainerror "github.com/rentaldesk/backend/internal/domain/error"
	"github.com/rentaldesk/backend/internal/integration/entrypoint/dto"
)

// DashboardController handles the property dashboard.
type DashboardController struct {
	getDashboardUseCase *dashboard.GetPropertyDashboardUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(getDashboardUseCase *dashboard.GetPropertyDashboardUseCase) *DashboardController {
	return &DashboardController{getDashboardUseCase: getDashboardUseCase}
}

// Get handles GET /dashboard?start&end[&property_id].
func (c *DashboardController) Get(ctx *gin.Context) {
	owner, ok := ownerID(ctx)
	if !ok {
		return
	}

	var query dto.DashboardQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		badRequest(ctx, "Invalid query parameters", string(domainerror.ErrCodeInvalidDateFormat), err)
		return
	}
	if query.Start == "" {
		badRequest(ctx, "start is required", string(domainerror.ErrCodeMissingStartDate), nil)
		return
	}
	if query.End == "" {
		badRequest(ctx, "end is required", string(domainerror.ErrCodeMissingEndDate), nil)
		return
	}

	start, err := dto.ParseDate(query.Start)
	if err != nil {
		badRequest(ctx, "start must be YYYY-MM-DD", string(domainerror.ErrCodeInvalidDateFormat), err)
		return
	}
	end, err := dto.ParseDate(query.End)
	if err != nil {
		badRequest(ctx, "end must be YYYY-MM-DD", string(domainerror.ErrCodeInvalidDateFormat), err)
		return
	}

	input := dashboard.GetPropertyDashboardInput{OwnerID: owner, Start: start, End: end}
	if query.PropertyID != "" {
		id := uuid.MustParse(query.PropertyID)
		input.PropertyID = &id
	}

	output, err := c.getDashboardUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToDashboardResponse(output))
}
