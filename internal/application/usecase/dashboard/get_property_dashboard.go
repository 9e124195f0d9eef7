// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rentaldesk/backend/internal/application/adapter"
	"github.com/rentaldesk/backend/internal/domain/entity"
	domainerror "github.com/rentaldesk/backend/internal/domain/error"
	"github.com/rentaldesk/backend/internal/domain/valueobject"
)

// MaxWindowDays is the longest reporting window.
const MaxWindowDays = 731

// ChargeBuilder turns a reservation and its channel into calculator input.
type ChargeBuilder interface {
	Charge(rwc *entity.ReservationWithChannel) valueobject.ReservationCharge
}

// GetPropertyDashboardInput represents the input for the dashboard.
type GetPropertyDashboardInput struct {
	OwnerID    uuid.UUID
	PropertyID *uuid.UUID // nil reports every property
	Start      time.Time
	End        time.Time // inclusive
}

// Figures are the money and occupancy figures of a window.
type Figures struct {
	Reservations   int
	BookedNights   int
	WindowNights   int
	OccupancyRate  decimal.Decimal // percentage, two decimals
	GrossTotal     decimal.Decimal
	RequiredTotal  decimal.Decimal
	Collected      decimal.Decimal
	Pending        decimal.Decimal
	Expenses       decimal.Decimal
	NetIncome      decimal.Decimal
	StatusCounts   map[valueobject.SettlementStatus]int
	AnomalousCount int // reservations whose commissions exceed their total
}

// PropertyDashboard is the figures of one property.
type PropertyDashboard struct {
	PropertyID   uuid.UUID
	PropertyName string
	Figures
}

// GetPropertyDashboardOutput represents the output of the dashboard.
type GetPropertyDashboardOutput struct {
	Start      time.Time
	End        time.Time
	Properties []PropertyDashboard
	Totals     Figures
}

// GetPropertyDashboardUseCase aggregates reservations, payments and expenses
// per property over a date window. A reservation counts when its stay
// overlaps the window, and its money is attributed to the window in full.
type GetPropertyDashboardUseCase struct {
	propertyRepo    adapter.PropertyRepository
	reservationRepo adapter.ReservationRepository
	channelRepo     adapter.ChannelRepository
	paymentRepo     adapter.PaymentRepository
	expenseRepo     adapter.ExpenseRepository
	charges         ChargeBuilder
}

// NewGetPropertyDashboardUseCase creates a new GetPropertyDashboardUseCase instance.
func NewGetPropertyDashboardUseCase(
	propertyRepo adapter.PropertyRepository,
	reservationRepo adapter.ReservationRepository,
	channelRepo adapter.ChannelRepository,
	paymentRepo adapter.PaymentRepository,
	expenseRepo adapter.ExpenseRepository,
	charges ChargeBuilder,
) *GetPropertyDashboardUseCase {
	return &GetPropertyDashboardUseCase{
		propertyRepo:    propertyRepo,
		reservationRepo: reservationRepo,
		channelRepo:     channelRepo,
		paymentRepo:     paymentRepo,
		expenseRepo:     expenseRepo,
		charges:         charges,
	}
}

// Execute builds the dashboard.
func (uc *GetPropertyDashboardUseCase) Execute(ctx context.Context, input GetPropertyDashboardInput) (*GetPropertyDashboardOutput, error) {
	start, end := valueobject.Day(input.Start), valueobject.Day(input.End)
	if end.Before(start) {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidDateRange,
			"end must not be before start",
			domainerror.ErrInvalidDateRange,
		)
	}
	if valueobject.Nights(start, end) >= MaxWindowDays {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeWindowTooLong,
			fmt.Sprintf("window cannot span more than %d days", MaxWindowDays),
			domainerror.ErrWindowTooLong,
		)
	}

	properties, err := uc.properties(ctx, input)
	if err != nil {
		return nil, err
	}

	channels, err := uc.channelRepo.FindByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load channels: %w", err)
	}
	channelsByID := make(map[uuid.UUID]*entity.Channel, len(channels))
	for _, c := range channels {
		channelsByID[c.ID] = c
	}

	output := &GetPropertyDashboardOutput{
		Start:      start,
		End:        end,
		Properties: make([]PropertyDashboard, 0, len(properties)),
		Totals:     newFigures(),
	}

	for _, p := range properties {
		figures, err := uc.propertyFigures(ctx, input.OwnerID, p, channelsByID, start, end)
		if err != nil {
			return nil, err
		}
		output.Properties = append(output.Properties, PropertyDashboard{
			PropertyID:   p.ID,
			PropertyName: p.Name,
			Figures:      figures,
		})
		output.Totals.add(figures)
	}
	output.Totals.finish()

	return output, nil
}

func (uc *GetPropertyDashboardUseCase) properties(ctx context.Context, input GetPropertyDashboardInput) ([]*entity.Property, error) {
	if input.PropertyID == nil {
		properties, err := uc.propertyRepo.FindByOwner(ctx, input.OwnerID)
		if err != nil {
			return nil, fmt.Errorf("failed to load properties: %w", err)
		}
		return properties, nil
	}

	p, err := uc.propertyRepo.FindByID(ctx, input.OwnerID, *input.PropertyID)
	if err != nil {
		if errors.Is(err, domainerror.ErrPropertyNotFound) {
			return nil, domainerror.NewDashboardError(
				domainerror.ErrCodeDashboardPropertyNotFound,
				"property not found",
				domainerror.ErrPropertyNotFound,
			)
		}
		return nil, fmt.Errorf("failed to load property: %w", err)
	}
	return []*entity.Property{p}, nil
}

func (uc *GetPropertyDashboardUseCase) propertyFigures(
	ctx context.Context,
	ownerID uuid.UUID,
	property *entity.Property,
	channels map[uuid.UUID]*entity.Channel,
	start, end time.Time,
) (Figures, error) {
	figures := newFigures()
	// The window covers the nights of [start, end], so stays are matched
	// against the half-open range ending the day after.
	windowOut := end.AddDate(0, 0, 1)

	loaded, err := uc.reservationRepo.FindOverlapping(ctx, ownerID, property.ID, start, windowOut)
	if err != nil {
		return figures, fmt.Errorf("failed to load reservations: %w", err)
	}
	reservations := make([]*entity.Reservation, 0, len(loaded))
	ids := make([]uuid.UUID, 0, len(loaded))
	for _, r := range loaded {
		if r.Status.BlocksCalendar() && r.CheckIn.Before(windowOut) && start.Before(r.CheckOut) {
			reservations = append(reservations, r)
			ids = append(ids, r.ID)
		}
	}

	overrides, err := uc.channelRepo.FindOverridesByProperty(ctx, property.ID)
	if err != nil {
		return figures, fmt.Errorf("failed to load overrides: %w", err)
	}
	overridesByChannel := make(map[uuid.UUID]*entity.PropertyChannel, len(overrides))
	for _, o := range overrides {
		overridesByChannel[o.ChannelID] = o
	}

	payments := map[uuid.UUID][]*entity.Payment{}
	if len(ids) > 0 {
		payments, err = uc.paymentRepo.FindByReservations(ctx, ids)
		if err != nil {
			return figures, fmt.Errorf("failed to load payments: %w", err)
		}
	}

	for _, r := range reservations {
		rwc := &entity.ReservationWithChannel{Reservation: r}
		if r.ChannelID != nil {
			rwc.Channel = channels[*r.ChannelID]
			rwc.Override = overridesByChannel[*r.ChannelID]
		}

		breakdown := valueobject.ComputeChargeBreakdown(uc.charges.Charge(rwc))
		summary := valueobject.ComputePaymentSummary(breakdown.RequiredAmount, entity.ReconciledPayments(payments[r.ID]))

		figures.Reservations++
		figures.GrossTotal = figures.GrossTotal.Add(breakdown.TotalAmount)
		figures.RequiredTotal = figures.RequiredTotal.Add(breakdown.RequiredAmount)
		figures.Collected = figures.Collected.Add(summary.TotalPaid)
		figures.Pending = figures.Pending.Add(summary.PendingAmount)
		figures.StatusCounts[summary.Status]++
		if breakdown.IsAnomalous() {
			figures.AnomalousCount++
		}
	}

	for _, day := range valueobject.BuildCalendar(entity.BlockingRanges(reservations, nil), start, end) {
		if day.Booked {
			figures.BookedNights++
		}
	}
	figures.WindowNights = valueobject.Nights(start, windowOut)

	figures.Expenses, err = uc.expenseRepo.SumByFilter(ctx, adapter.ExpenseFilter{
		OwnerID:    ownerID,
		PropertyID: &property.ID,
		StartDate:  &start,
		EndDate:    &end,
	})
	if err != nil {
		return figures, fmt.Errorf("failed to sum expenses: %w", err)
	}

	figures.finish()
	return figures, nil
}

func newFigures() Figures {
	return Figures{
		OccupancyRate: decimal.Zero,
		GrossTotal:    decimal.Zero,
		RequiredTotal: decimal.Zero,
		Collected:     decimal.Zero,
		Pending:       decimal.Zero,
		Expenses:      decimal.Zero,
		NetIncome:     decimal.Zero,
		StatusCounts: map[valueobject.SettlementStatus]int{
			valueobject.SettlementPending: 0,
			valueobject.SettlementPartial: 0,
			valueobject.SettlementPaid:    0,
		},
	}
}

func (f *Figures) add(o Figures) {
	f.Reservations += o.Reservations
	f.BookedNights += o.BookedNights
	f.WindowNights += o.WindowNights
	f.GrossTotal = f.GrossTotal.Add(o.GrossTotal)
	f.RequiredTotal = f.RequiredTotal.Add(o.RequiredTotal)
	f.Collected = f.Collected.Add(o.Collected)
	f.Pending = f.Pending.Add(o.Pending)
	f.Expenses = f.Expenses.Add(o.Expenses)
	f.AnomalousCount += o.AnomalousCount
	for status, n := range o.StatusCounts {
		f.StatusCounts[status] += n
	}
}

// finish derives the occupancy rate and net income.
func (f *Figures) finish() {
	f.NetIncome = f.Collected.Sub(f.Expenses)
	if f.WindowNights > 0 {
		f.OccupancyRate = decimal.NewFromInt(int64(f.BookedNights)).
			Mul(decimal.NewFromInt(100)).
			Div(decimal.NewFromInt(int64(f.WindowNights))).
			Round(2)
	}
}
