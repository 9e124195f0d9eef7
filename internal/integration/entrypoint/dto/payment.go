package dto

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rentaldesk/backend/internal/application/usecase/payment"
	"github.com/rentaldesk/backend/internal/domain/entity"
	"github.com/rentaldesk/backend/internal/domain/valueobject"
)

// CreatePaymentRequest is the body of POST /reservations/:id/payments.
type CreatePaymentRequest struct {
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method" binding:"required,oneof=cash card transfer channel"`
	Status    string          `json:"status" binding:"omitempty,oneof=pending completed failed refunded"`
	PaidAt    *string         `json:"paid_at" binding:"omitempty,datetime=2006-01-02"`
	Reference string          `json:"reference"`
	Notes     string          `json:"notes"`
}

// ToInput converts the request for the create use case.
func (r CreatePaymentRequest) ToInput(ownerID, reservationID uuid.UUID) (payment.CreatePaymentInput, error) {
	paidAt, err := ParseOptionalDate(r.PaidAt)
	if err != nil {
		return payment.CreatePaymentInput{}, fmt.Errorf("paid_at: %w", err)
	}
	return payment.CreatePaymentInput{
		OwnerID:       ownerID,
		ReservationID: reservationID,
		Amount:        r.Amount,
		Method:        entity.PaymentMethod(r.Method),
		Status:        valueobject.PaymentStatus(r.Status),
		PaidAt:        paidAt,
		Reference:     r.Reference,
		Notes:         r.Notes,
	}, nil
}

// UpdatePaymentRequest is the body of PATCH /payments/:id.
type UpdatePaymentRequest struct {
	Amount    *decimal.Decimal `json:"amount"`
	Method    *string          `json:"method" binding:"omitempty,oneof=cash card transfer channel"`
	Status    *string          `json:"status" binding:"omitempty,oneof=pending completed failed refunded"`
	PaidAt    *string          `json:"paid_at" binding:"omitempty,datetime=2006-01-02"`
	Reference *string          `json:"reference"`
	Notes     *string          `json:"notes"`
}

// ToInput converts the request for the update use case.
func (r UpdatePaymentRequest) ToInput(ownerID, paymentID uuid.UUID) (payment.UpdatePaymentInput, error) {
	paidAt, err := ParseOptionalDate(r.PaidAt)
	if err != nil {
		return payment.UpdatePaymentInput{}, fmt.Errorf("paid_at: %w", err)
	}
	input := payment.UpdatePaymentInput{
		OwnerID:   ownerID,
		PaymentID: paymentID,
		Amount:    r.Amount,
		PaidAt:    paidAt,
		Reference: r.Reference,
		Notes:     r.Notes,
	}
	if r.Method != nil {
		method := entity.PaymentMethod(*r.Method)
		input.Method = &method
	}
	if r.Status != nil {
		status := valueobject.PaymentStatus(*r.Status)
		input.Status = &status
	}
	return input, nil
}

// ListPaymentsQuery holds the query parameters of GET /payments.
type ListPaymentsQuery struct {
	Status string `form:"status" binding:"omitempty,oneof=pending completed failed refunded"`
}

// PaymentResponse represents a payment.
type PaymentResponse struct {
	ID            string    `json:"id"`
	ReservationID string    `json:"reservation_id"`
	Amount        string    `json:"amount"`
	Method        string    `json:"method"`
	Status        string    `json:"status"`
	PaidAt        string    `json:"paid_at"`
	Reference     string    `json:"reference,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// PaymentMutationResponse is a payment together with the reservation
// settlement it produced.
type PaymentMutationResponse struct {
	Payment    PaymentResponse    `json:"payment"`
	Financials FinancialsResponse `json:"financials"`
}

// ToPaymentResponse converts a Payment entity to its response.
func ToPaymentResponse(p *entity.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID.String(),
		ReservationID: p.ReservationID.String(),
		Amount:        Money(p.Amount),
		Method:        string(p.Method),
		Status:        string(p.Status),
		PaidAt:        FormatDate(p.PaidAt),
		Reference:     p.Reference,
		Notes:         p.Notes,
		CreatedAt:     p.CreatedAt,
	}
}

// ToPaymentListResponse converts a slice of payments.
func ToPaymentListResponse(payments []*entity.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, ToPaymentResponse(p))
	}
	return out
}

// ToPaymentMutationResponse converts the output of create and update.
func ToPaymentMutationResponse(output *payment.PaymentOutput) PaymentMutationResponse {
	return PaymentMutationResponse{
		Payment:    ToPaymentResponse(output.Payment),
		Financials: ToFinancialsResponse(output.Financials),
	}
}
