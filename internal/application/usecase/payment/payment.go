// Package payment contains payment-related use cases. Every mutation
// recomputes the settlement of the affected reservation.
package payment

import (
	"github.com/rentaldesk/backend/internal/application/usecase/reconciliation"
	"github.com/rentaldesk/backend/internal/domain/entity"
	domainerror "github.com/rentaldesk/backend/internal/domain/error"
	"github.com/rentaldesk/backend/internal/domain/valueobject"
)

// MaxReferenceLength is the longest accepted payment reference.
const MaxReferenceLength = 200

// PaymentOutput is a payment together with the reservation settlement it
// produced.
type PaymentOutput struct {
	Payment    *entity.Payment
	Financials *reconciliation.Financials
}

func validateFields(p *entity.Payment) error {
	if !p.Amount.IsPositive() {
		return domainerror.NewPaymentError(
			domainerror.ErrCodeInvalidPaymentAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidPaymentAmount,
		)
	}
	if !p.Method.IsValid() {
		return domainerror.NewPaymentError(
			domainerror.ErrCodeInvalidPaymentMethod,
			"method must be one of cash, card, transfer, channel",
			domainerror.ErrInvalidPaymentMethod,
		)
	}
	if !p.Status.IsValid() {
		return domainerror.NewPaymentError(
			domainerror.ErrCodeInvalidPaymentStatus,
			"status must be one of pending, completed, failed, refunded",
			domainerror.ErrInvalidPaymentStatus,
		)
	}
	p.Reference = valueobject.TruncateText(p.Reference, MaxReferenceLength)
	return nil
}

func defaultStatus(s valueobject.PaymentStatus) valueobject.PaymentStatus {
	if s == "" {
		return valueobject.PaymentStatusCompleted
	}
	return s
}

func notFound() error {
	return domainerror.NewPaymentError(
		domainerror.ErrCodePaymentNotFound,
		"payment not found",
		domainerror.ErrPaymentNotFound,
	)
}
