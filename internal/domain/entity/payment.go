// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rentaldesk/backend/internal/domain/valueobject"
)

// PaymentMethod is how a payment was collected.
type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "cash"
	PaymentMethodCard     PaymentMethod = "card"
	PaymentMethodTransfer PaymentMethod = "transfer"
	PaymentMethodChannel  PaymentMethod = "channel" // paid out by the OTA
)

// IsValid reports whether m is a known payment method.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodTransfer, PaymentMethodChannel:
		return true
	}
	return false
}

// Payment is money received (or expected) against a reservation.
type Payment struct {
	ID            uuid.UUID
	OwnerID       uuid.UUID
	ReservationID uuid.UUID
	Amount        decimal.Decimal
	Method        PaymentMethod
	Status        valueobject.PaymentStatus
	PaidAt        time.Time
	Reference     string
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time
}

// NewPayment creates a new Payment entity.
func NewPayment(
	ownerID uuid.UUID,
	reservationID uuid.UUID,
	amount decimal.Decimal,
	method PaymentMethod,
	status valueobject.PaymentStatus,
	paidAt time.Time,
) *Payment {
	now := time.Now().UTC()
	return &Payment{
		ID:            uuid.New(),
		OwnerID:       ownerID,
		ReservationID: reservationID,
		Amount:        amount,
		Method:        method,
		Status:        status,
		PaidAt:        paidAt,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// ToReconciled returns the view of the payment used by the reconciler.
func (p *Payment) ToReconciled() valueobject.ReconciledPayment {
	return valueobject.ReconciledPayment{
		ReservationID: p.ReservationID.String(),
		Amount:        p.Amount,
		Status:        p.Status,
	}
}

// ReconciledPayments converts payment rows for the reconciler.
func ReconciledPayments(payments []*Payment) []valueobject.ReconciledPayment {
	out := make([]valueobject.ReconciledPayment, len(payments))
	for i, p := range payments {
		out[i] = p.ToReconciled()
	}
	return out
}
