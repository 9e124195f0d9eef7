package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerror "github.com/rentaldesk/backend/internal/domain/error"
	"github.com/rentaldesk/backend/internal/integration/entrypoint/dto"
)

func TestHandleError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "validation",
			err:      domainerror.NewReservationError(domainerror.ErrCodeInvalidStayDates, "bad dates", domainerror.ErrInvalidStayDates),
			wantCode: http.StatusBadRequest,
			wantBody: string(domainerror.ErrCodeInvalidStayDates),
		},
		{
			name:     "not found",
			err:      domainerror.NewPaymentError(domainerror.ErrCodePaymentNotFound, "payment not found", nil),
			wantCode: http.StatusNotFound,
			wantBody: string(domainerror.ErrCodePaymentNotFound),
		},
		{
			name:     "conflict",
			err:      fmt.Errorf("wrapped: %w", domainerror.NewReservationError(domainerror.ErrCodeDatesUnavailable, "taken", nil)),
			wantCode: http.StatusConflict,
			wantBody: string(domainerror.ErrCodeDatesUnavailable),
		},
		{
			name:     "auth",
			err:      domainerror.NewAuthError(domainerror.ErrCodeInvalidCredentials, "invalid", nil),
			wantCode: http.StatusUnauthorized,
			wantBody: string(domainerror.ErrCodeInvalidCredentials),
		},
		{
			name:     "dashboard internal",
			err:      domainerror.NewDashboardError(domainerror.ErrCodeDashboardInternalError, "boom", nil),
			wantCode: http.StatusInternalServerError,
			wantBody: string(domainerror.ErrCodeDashboardInternalError),
		},
		{
			name:     "unknown",
			err:      errors.New("db down"),
			wantCode: http.StatusInternalServerError,
			wantBody: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(w)
			ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			handleError(ctx, tt.err)

			assert.Equal(t, tt.wantCode, w.Code)
			var body dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantBody, body.Code)
		})
	}
}
