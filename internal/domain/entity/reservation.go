// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rentaldesk/backend/internal/domain/valueobject"
)

// ReservationStatus is the booking lifecycle status.
type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "pending"
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusCancelled ReservationStatus = "cancelled"
	ReservationStatusCompleted ReservationStatus = "completed"
)

// IsValid reports whether s is a known reservation status.
func (s ReservationStatus) IsValid() bool {
	switch s {
	case ReservationStatusPending, ReservationStatusConfirmed, ReservationStatusCancelled, ReservationStatusCompleted:
		return true
	}
	return false
}

// BlocksCalendar reports whether a reservation in this status occupies its dates.
func (s ReservationStatus) BlocksCalendar() bool {
	return s == ReservationStatusConfirmed || s == ReservationStatusCompleted
}

// Reservation is a guest stay at a property.
type Reservation struct {
	ID             uuid.UUID
	OwnerID        uuid.UUID
	PropertyID     uuid.UUID
	ChannelID      *uuid.UUID
	ExternalSource string // channel name when the booking is not linked to a channel record
	GuestName      string
	GuestEmail     string
	Guests         int
	CheckIn        time.Time
	CheckOut       time.Time
	BaseAmount     decimal.Decimal
	CleaningFee    decimal.Decimal
	Taxes          decimal.Decimal
	Status         ReservationStatus
	PaymentStatus  valueobject.SettlementStatus // denormalised, written back after each recomputation
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time
}

// NewReservation creates a new Reservation entity with a pending payment status.
func NewReservation(ownerID, propertyID uuid.UUID, checkIn, checkOut time.Time) *Reservation {
	now := time.Now().UTC()
	return &Reservation{
		ID:            uuid.New(),
		OwnerID:       ownerID,
		PropertyID:    propertyID,
		CheckIn:       valueobject.Day(checkIn),
		CheckOut:      valueobject.Day(checkOut),
		Status:        ReservationStatusConfirmed,
		PaymentStatus: valueobject.SettlementPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Range returns the stay as an availability range.
func (r *Reservation) Range() valueobject.ReservationRange {
	return valueobject.ReservationRange{
		ID:       r.ID.String(),
		CheckIn:  r.CheckIn,
		CheckOut: r.CheckOut,
	}
}

// Nights returns the number of nights of the stay.
func (r *Reservation) Nights() int {
	return valueobject.Nights(r.CheckIn, r.CheckOut)
}

// ReservationWithChannel is a reservation joined with its channel and the
// property-channel commission override, when they exist.
type ReservationWithChannel struct {
	Reservation *Reservation
	Channel     *Channel
	Override    *PropertyChannel
}

// ChannelName resolves the channel name: the linked channel first, then the
// external source string.
func (r *ReservationWithChannel) ChannelName() string {
	if r.Channel != nil {
		return r.Channel.Name
	}
	return r.Reservation.ExternalSource
}

// BlockingRanges converts the reservations that occupy the calendar into
// availability ranges, skipping the one identified by exclude.
func BlockingRanges(reservations []*Reservation, exclude *uuid.UUID) []valueobject.ReservationRange {
	ranges := make([]valueobject.ReservationRange, 0, len(reservations))
	for _, r := range reservations {
		if !r.Status.BlocksCalendar() {
			continue
		}
		if exclude != nil && r.ID == *exclude {
			continue
		}
		ranges = append(ranges, r.Range())
	}
	return ranges
}
