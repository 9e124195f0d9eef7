// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/rentaldesk/backend/internal/domain/error"
	"github.com/rentaldesk/backend/internal/integration/entrypoint/dto"
	"github.com/rentaldesk/backend/internal/integration/entrypoint/middleware"
)

// handleError writes a coded domain error with the status its category maps
// to. Anything else is logged and reported as an internal error.
func handleError(ctx *gin.Context, err error) {
	var (
		authErr         *domainerror.AuthError
		propertyErr     *domainerror.PropertyError
		channelErr      *domainerror.ChannelError
		reservationErr  *domainerror.ReservationError
		paymentErr      *domainerror.PaymentError
		expenseErr      *domainerror.ExpenseError
		availabilityErr *domainerror.AvailabilityError
		dashboardErr    *domainerror.DashboardError
	)

	switch {
	case errors.As(err, &authErr):
		writeError(ctx, authStatus(authErr.Code), authErr.Message, string(authErr.Code))
	case errors.As(err, &propertyErr):
		writeError(ctx, statusForCode(string(propertyErr.Code)), propertyErr.Message, string(propertyErr.Code))
	case errors.As(err, &channelErr):
		writeError(ctx, statusForCode(string(channelErr.Code)), channelErr.Message, string(channelErr.Code))
	case errors.As(err, &reservationErr):
		writeError(ctx, statusForCode(string(reservationErr.Code)), reservationErr.Message, string(reservationErr.Code))
	case errors.As(err, &paymentErr):
		writeError(ctx, statusForCode(string(paymentErr.Code)), paymentErr.Message, string(paymentErr.Code))
	case errors.As(err, &expenseErr):
		writeError(ctx, statusForCode(string(expenseErr.Code)), expenseErr.Message, string(expenseErr.Code))
	case errors.As(err, &availabilityErr):
		writeError(ctx, statusForCode(string(availabilityErr.Code)), availabilityErr.Message, string(availabilityErr.Code))
	case errors.As(err, &dashboardErr):
		writeError(ctx, statusForCode(string(dashboardErr.Code)), dashboardErr.Message, string(dashboardErr.Code))
	default:
		slog.Error("Request failed", "method", ctx.Request.Method, "path", ctx.FullPath(), "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
	}
}

// statusForCode maps the category of an XXX-CCNNNN code: 01 is invalid
// input, 02 a missing resource, 03 a conflict with existing state.
func statusForCode(code string) int {
	_, rest, ok := strings.Cut(code, "-")
	if !ok || len(rest) < 2 {
		return http.StatusInternalServerError
	}
	switch rest[:2] {
	case "01":
		return http.StatusBadRequest
	case "02":
		return http.StatusNotFound
	case "03":
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func authStatus(code domainerror.AuthErrorCode) int {
	switch code {
	case domainerror.ErrCodeEmailExists:
		return http.StatusConflict
	case domainerror.ErrCodeTermsNotAccepted,
		domainerror.ErrCodeWeakPassword,
		domainerror.ErrCodeInvalidEmail,
		domainerror.ErrCodeMissingFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeInvalidCredentials,
		domainerror.ErrCodeUserNotFound,
		domainerror.ErrCodeInvalidToken,
		domainerror.ErrCodeExpiredToken,
		domainerror.ErrCodeMissingToken:
		return http.StatusUnauthorized
	case domainerror.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

func writeError(ctx *gin.Context, status int, message, code string) {
	ctx.JSON(status, dto.ErrorResponse{Error: message, Code: code})
}

func badRequest(ctx *gin.Context, message, code string, err error) {
	resp := dto.ErrorResponse{Error: message, Code: code}
	if err != nil {
		resp.Details = err.Error()
	}
	ctx.JSON(http.StatusBadRequest, resp)
}

// ownerID returns the authenticated operator or writes 401.
func ownerID(ctx *gin.Context) (uuid.UUID, bool) {
	id, ok := middleware.OwnerID(ctx)
	if !ok {
		writeError(ctx, http.StatusUnauthorized, "User not authenticated", string(domainerror.ErrCodeMissingToken))
		return uuid.Nil, false
	}
	return id, true
}

// pathID parses a UUID route parameter or writes 400 with code.
func pathID(ctx *gin.Context, name, code string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		badRequest(ctx, "Invalid "+name, code, err)
		return uuid.Nil, false
	}
	return id, true
}
