package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rentaldesk/backend/internal/application/usecase/availability"
	domainerror "github.com/rentaldesk/backend/internal/domain/error"
	"github.com/rentaldesk/backend/internal/integration/entrypoint/dto"
)

// AvailabilityController answers calendar questions for a property.
type AvailabilityController struct {
	checkUseCase    *availability.CheckAvailabilityUseCase
	periodsUseCase  *availability.ListAvailablePeriodsUseCase
	calendarUseCase *availability.GetCalendarUseCase
}

// NewAvailabilityController creates a new availability controller instance.
func NewAvailabilityController(
	checkUseCase *availability.CheckAvailabilityUseCase,
	periodsUseCase *availability.ListAvailablePeriodsUseCase,
	calendarUseCase *availability.GetCalendarUseCase,
) *AvailabilityController {
	return &AvailabilityController{
		checkUseCase:    checkUseCase,
		periodsUseCase:  periodsUseCase,
		calendarUseCase: calendarUseCase,
	}
}

// Check handles GET /properties/:id/availability.
func (c *AvailabilityController) Check(ctx *gin.Context) {
	owner, ok := ownerID(ctx)
	if !ok {
		return
	}
	propertyID, ok := pathID(ctx, "id", string(domainerror.ErrCodeAvailabilityPropertyNotFound))
	if !ok {
		return
	}

	var query dto.CheckAvailabilityQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		badRequest(ctx, "check_in and check_out are required as YYYY-MM-DD", string(domainerror.ErrCodeAvailabilityDateFormat), err)
		return
	}
	// Formats were validated by binding.
	checkIn, _ := dto.ParseDate(query.CheckIn)
	checkOut, _ := dto.ParseDate(query.CheckOut)

	output, err := c.checkUseCase.Execute(ctx.Request.Context(), availability.CheckAvailabilityInput{
		OwnerID:    owner,
		PropertyID: propertyID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToAvailabilityResponse(output))
}

// Periods handles GET /properties/:id/availability/periods.
func (c *AvailabilityController) Periods(ctx *gin.Context) {
	owner, propertyID, query, ok := c.window(ctx)
	if !ok {
		return
	}
	start, _ := dto.ParseDate(query.Start)
	end, _ := dto.ParseDate(query.End)

	periods, err := c.periodsUseCase.Execute(ctx.Request.Context(), availability.ListAvailablePeriodsInput{
		OwnerID:    owner,
		PropertyID: propertyID,
		Start:      start,
		End:        end,
		MinNights:  query.MinNights,
		Limit:      query.Limit,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToPeriodListResponse(periods))
}

// Calendar handles GET /properties/:id/calendar.
func (c *AvailabilityController) Calendar(ctx *gin.Context) {
	owner, propertyID, query, ok := c.window(ctx)
	if !ok {
		return
	}
	start, _ := dto.ParseDate(query.Start)
	end, _ := dto.ParseDate(query.End)

	days, err := c.calendarUseCase.Execute(ctx.Request.Context(), availability.GetCalendarInput{
		OwnerID:    owner,
		PropertyID: propertyID,
		Start:      start,
		End:        end,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToCalendarResponse(days))
}

func (c *AvailabilityController) window(ctx *gin.Context) (owner, propertyID uuid.UUID, query dto.WindowQuery, ok bool) {
	owner, ok = ownerID(ctx)
	if !ok {
		return
	}
	propertyID, ok = pathID(ctx, "id", string(domainerror.ErrCodeAvailabilityPropertyNotFound))
	if !ok {
		return
	}
	if err := ctx.ShouldBindQuery(&query); err != nil {
		badRequest(ctx, "start and end are required as YYYY-MM-DD", string(domainerror.ErrCodeAvailabilityDateFormat), err)
		return owner, propertyID, query, false
	}
	return owner, propertyID, query, true
}
