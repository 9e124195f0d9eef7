// Package reconciliation turns stored reservations and payments into charge
// breakdowns and settlement summaries, and keeps the denormalised payment
// status of each reservation in step with its payments.
package reconciliation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rentaldesk/backend/internal/application/adapter"
	"github.com/rentaldesk/backend/internal/domain/entity"
	domainerror "github.com/rentaldesk/backend/internal/domain/error"
	"github.com/rentaldesk/backend/internal/domain/valueobject"
)

// Financials is the money view of one reservation.
type Financials struct {
	Reservation *entity.Reservation
	ChannelName string
	Breakdown   valueobject.ChargeBreakdown
	Summary     valueobject.PaymentSummary
	Payments    []*entity.Payment
}

// Reconciler recomputes and reads reservation financials.
type Reconciler interface {
	// Reconcile recomputes the settlement of a reservation and writes the
	// derived payment status back when it changed.
	Reconcile(ctx context.Context, ownerID, reservationID uuid.UUID) (*Financials, error)

	// Financials computes the breakdown and summary without writing anything.
	Financials(ctx context.Context, ownerID, reservationID uuid.UUID) (*Financials, error)
}

// Service implements Reconciler.
type Service struct {
	reservationRepo   adapter.ReservationRepository
	paymentRepo       adapter.PaymentRepository
	propertyRepo      adapter.PropertyRepository
	emailService      adapter.GuestEmailService
	defaultVATPercent decimal.Decimal
}

// NewService creates a new reconciliation Service. defaultVATPercent applies
// to reservations whose channel is only known by name.
func NewService(
	reservationRepo adapter.ReservationRepository,
	paymentRepo adapter.PaymentRepository,
	propertyRepo adapter.PropertyRepository,
	emailService adapter.GuestEmailService,
	defaultVATPercent decimal.Decimal,
) *Service {
	return &Service{
		reservationRepo:   reservationRepo,
		paymentRepo:       paymentRepo,
		propertyRepo:      propertyRepo,
		emailService:      emailService,
		defaultVATPercent: defaultVATPercent,
	}
}

// Financials computes the breakdown and summary of a reservation.
func (s *Service) Financials(ctx context.Context, ownerID, reservationID uuid.UUID) (*Financials, error) {
	rwc, err := s.reservationRepo.FindByIDWithChannel(ctx, ownerID, reservationID)
	if err != nil {
		return nil, err
	}

	payments, err := s.paymentRepo.FindByReservation(ctx, reservationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load payments: %w", err)
	}

	breakdown := valueobject.ComputeChargeBreakdown(s.Charge(rwc))
	return &Financials{
		Reservation: rwc.Reservation,
		ChannelName: rwc.ChannelName(),
		Breakdown:   breakdown,
		Summary:     valueobject.ComputePaymentSummary(breakdown.RequiredAmount, entity.ReconciledPayments(payments)),
		Payments:    payments,
	}, nil
}

// Reconcile recomputes the settlement of a reservation. The status write-back
// is last-write-wins: concurrent payment edits may race, and the next
// reconciliation repairs the stored value.
func (s *Service) Reconcile(ctx context.Context, ownerID, reservationID uuid.UUID) (*Financials, error) {
	financials, err := s.Financials(ctx, ownerID, reservationID)
	if err != nil {
		return nil, err
	}

	reservation := financials.Reservation
	previous := reservation.PaymentStatus
	current := financials.Summary.Status
	if previous == current {
		return financials, nil
	}

	if err := s.reservationRepo.UpdatePaymentStatus(ctx, reservation.ID, current); err != nil {
		return nil, domainerror.NewPaymentError(
			domainerror.ErrCodeReconciliationFailed,
			"failed to update reservation payment status",
			err,
		)
	}
	reservation.PaymentStatus = current
	reservation.UpdatedAt = time.Now().UTC()

	slog.Debug("Reservation payment status changed",
		"reservation_id", reservation.ID,
		"from", previous,
		"to", current,
	)

	if current == valueobject.SettlementPaid && financials.Summary.CompletedCount > 0 {
		s.queueReceipt(ctx, financials)
	}
	return financials, nil
}

// Charge builds the calculator input for a reservation. Commission
// percentages come from the property-channel override; a missing override
// means no commission.
func (s *Service) Charge(rwc *entity.ReservationWithChannel) valueobject.ReservationCharge {
	r := rwc.Reservation
	charge := valueobject.ReservationCharge{
		BaseAmount:  r.BaseAmount,
		CleaningFee: r.CleaningFee,
		Taxes:       r.Taxes,
		ChannelName: rwc.ChannelName(),
		VATPercent:  s.defaultVATPercent,
	}
	if rwc.Channel != nil {
		charge.VATPercent = rwc.Channel.VATPercent
	}
	if rwc.Override != nil {
		charge.ChannelCommissionPercent = rwc.Override.ChannelCommissionPercent
		charge.CollectionCommissionPercent = rwc.Override.CollectionCommissionPercent
	}
	return charge
}

// queueReceipt is best effort: a failure is logged and never fails the
// payment operation that triggered it.
func (s *Service) queueReceipt(ctx context.Context, f *Financials) {
	r := f.Reservation
	if s.emailService == nil || r.GuestEmail == "" {
		return
	}

	propertyName := ""
	if property, err := s.propertyRepo.FindByID(ctx, r.OwnerID, r.PropertyID); err == nil {
		propertyName = property.Name
	}

	err := s.emailService.QueuePaymentReceipt(ctx, adapter.PaymentReceiptInput{
		OwnerID:       r.OwnerID,
		ReservationID: r.ID,
		GuestEmail:    r.GuestEmail,
		GuestName:     r.GuestName,
		PropertyName:  propertyName,
		CheckIn:       r.CheckIn.Format(time.DateOnly),
		CheckOut:      r.CheckOut.Format(time.DateOnly),
		TotalPaid:     valueobject.FormatMoney(f.Summary.TotalPaid),
		PaymentCount:  f.Summary.CompletedCount,
	})
	if err != nil {
		slog.Debug("Failed to queue payment receipt", "reservation_id", r.ID, "error", err)
	}
}

var _ Reconciler = (*Service)(nil)
