package dto

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rentaldesk/backend/internal/application/usecase/reconciliation"
	"github.com/rentaldesk/backend/internal/application/usecase/reservation"
	"github.com/rentaldesk/backend/internal/domain/entity"
	"github.com/rentaldesk/backend/internal/domain/valueobject"
)

// CreateReservationRequest is the body of POST /reservations.
type CreateReservationRequest struct {
	PropertyID     string          `json:"property_id" binding:"required,uuid"`
	ChannelID      *string         `json:"channel_id" binding:"omitempty,uuid"`
	ExternalSource string          `json:"external_source" binding:"max=100"`
	GuestName      string          `json:"guest_name" binding:"required"`
	GuestEmail     string          `json:"guest_email" binding:"omitempty,email"`
	Guests         int             `json:"guests" binding:"gte=0"`
	CheckIn        string          `json:"check_in" binding:"required,datetime=2006-01-02"`
	CheckOut       string          `json:"check_out" binding:"required,datetime=2006-01-02"`
	BaseAmount     decimal.Decimal `json:"base_amount"`
	CleaningFee    decimal.Decimal `json:"cleaning_fee"`
	Taxes          decimal.Decimal `json:"taxes"`
	Status         string          `json:"status" binding:"omitempty,oneof=pending confirmed cancelled completed"`
	Notes          string          `json:"notes"`
}

// ToInput converts the request for the create use case.
func (r CreateReservationRequest) ToInput(ownerID uuid.UUID) (reservation.CreateReservationInput, error) {
	checkIn, err := ParseDate(r.CheckIn)
	if err != nil {
		return reservation.CreateReservationInput{}, fmt.Errorf("check_in: %w", err)
	}
	checkOut, err := ParseDate(r.CheckOut)
	if err != nil {
		return reservation.CreateReservationInput{}, fmt.Errorf("check_out: %w", err)
	}
	propertyID, err := uuid.Parse(r.PropertyID)
	if err != nil {
		return reservation.CreateReservationInput{}, fmt.Errorf("property_id: %w", err)
	}
	channelID, err := parseOptionalUUID(r.ChannelID)
	if err != nil {
		return reservation.CreateReservationInput{}, fmt.Errorf("channel_id: %w", err)
	}

	return reservation.CreateReservationInput{
		OwnerID:        ownerID,
		PropertyID:     propertyID,
		ChannelID:      channelID,
		ExternalSource: r.ExternalSource,
		GuestName:      r.GuestName,
		GuestEmail:     r.GuestEmail,
		Guests:         r.Guests,
		CheckIn:        checkIn,
		CheckOut:       checkOut,
		BaseAmount:     r.BaseAmount,
		CleaningFee:    r.CleaningFee,
		Taxes:          r.Taxes,
		Status:         entity.ReservationStatus(r.Status),
		Notes:          r.Notes,
	}, nil
}

// UpdateReservationRequest is the body of PATCH /reservations/:id. Absent
// fields are left unchanged; clear_channel unlinks the channel.
type UpdateReservationRequest struct {
	ChannelID      *string          `json:"channel_id" binding:"omitempty,uuid"`
	ClearChannel   bool             `json:"clear_channel"`
	ExternalSource *string          `json:"external_source" binding:"omitempty,max=100"`
	GuestName      *string          `json:"guest_name"`
	GuestEmail     *string          `json:"guest_email" binding:"omitempty,email"`
	Guests         *int             `json:"guests"`
	CheckIn        *string          `json:"check_in" binding:"omitempty,datetime=2006-01-02"`
	CheckOut       *string          `json:"check_out" binding:"omitempty,datetime=2006-01-02"`
	BaseAmount     *decimal.Decimal `json:"base_amount"`
	CleaningFee    *decimal.Decimal `json:"cleaning_fee"`
	Taxes          *decimal.Decimal `json:"taxes"`
	Status         *string          `json:"status" binding:"omitempty,oneof=pending confirmed cancelled completed"`
	Notes          *string          `json:"notes"`
}

// ToInput converts the request for the update use case.
func (r UpdateReservationRequest) ToInput(ownerID, reservationID uuid.UUID) (reservation.UpdateReservationInput, error) {
	checkIn, err := ParseOptionalDate(r.CheckIn)
	if err != nil {
		return reservation.UpdateReservationInput{}, fmt.Errorf("check_in: %w", err)
	}
	checkOut, err := ParseOptionalDate(r.CheckOut)
	if err != nil {
		return reservation.UpdateReservationInput{}, fmt.Errorf("check_out: %w", err)
	}
	channelID, err := parseOptionalUUID(r.ChannelID)
	if err != nil {
		return reservation.UpdateReservationInput{}, fmt.Errorf("channel_id: %w", err)
	}

	input := reservation.UpdateReservationInput{
		OwnerID:        ownerID,
		ReservationID:  reservationID,
		ChannelID:      channelID,
		ClearChannel:   r.ClearChannel,
		ExternalSource: r.ExternalSource,
		GuestName:      r.GuestName,
		GuestEmail:     r.GuestEmail,
		Guests:         r.Guests,
		CheckIn:        checkIn,
		CheckOut:       checkOut,
		BaseAmount:     r.BaseAmount,
		CleaningFee:    r.CleaningFee,
		Taxes:          r.Taxes,
		Notes:          r.Notes,
	}
	if r.Status != nil {
		status := entity.ReservationStatus(*r.Status)
		input.Status = &status
	}
	return input, nil
}

// ListReservationsQuery holds the query parameters of GET /reservations.
type ListReservationsQuery struct {
	PropertyID    string `form:"property_id" binding:"omitempty,uuid"`
	Status        string `form:"status" binding:"omitempty,oneof=pending confirmed cancelled completed"`
	PaymentStatus string `form:"payment_status" binding:"omitempty,oneof=pending partial paid"`
	From          string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To            string `form:"to" binding:"omitempty,datetime=2006-01-02"`
	Search        string `form:"search"`
	Page          int    `form:"page"`
	Limit         int    `form:"limit"`
}

// ToInput converts the query for the list use case.
func (q ListReservationsQuery) ToInput(ownerID uuid.UUID) (reservation.ListReservationsInput, error) {
	from, err := ParseOptionalDate(&q.From)
	if err != nil {
		return reservation.ListReservationsInput{}, fmt.Errorf("from: %w", err)
	}
	to, err := ParseOptionalDate(&q.To)
	if err != nil {
		return reservation.ListReservationsInput{}, fmt.Errorf("to: %w", err)
	}
	propertyID, err := parseOptionalUUID(&q.PropertyID)
	if err != nil {
		return reservation.ListReservationsInput{}, fmt.Errorf("property_id: %w", err)
	}

	input := reservation.ListReservationsInput{
		OwnerID:    ownerID,
		PropertyID: propertyID,
		From:       from,
		To:         to,
		Search:     q.Search,
		Page:       q.Page,
		Limit:      q.Limit,
	}
	if q.Status != "" {
		status := entity.ReservationStatus(q.Status)
		input.Status = &status
	}
	if q.PaymentStatus != "" {
		status := valueobject.SettlementStatus(q.PaymentStatus)
		input.PaymentStatus = &status
	}
	return input, nil
}

// ReservationResponse represents a reservation.
type ReservationResponse struct {
	ID             string    `json:"id"`
	PropertyID     string    `json:"property_id"`
	ChannelID      *string   `json:"channel_id"`
	ExternalSource string    `json:"external_source,omitempty"`
	GuestName      string    `json:"guest_name"`
	GuestEmail     string    `json:"guest_email,omitempty"`
	Guests         int       `json:"guests"`
	CheckIn        string    `json:"check_in"`
	CheckOut       string    `json:"check_out"`
	Nights         int       `json:"nights"`
	BaseAmount     string    `json:"base_amount"`
	CleaningFee    string    `json:"cleaning_fee"`
	Taxes          string    `json:"taxes"`
	Status         string    `json:"status"`
	PaymentStatus  string    `json:"payment_status"`
	Notes          string    `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// BreakdownResponse is the commission breakdown of a reservation.
type BreakdownResponse struct {
	TotalAmount          string `json:"total_amount"`
	ChannelCommission    string `json:"channel_commission"`
	CollectionCommission string `json:"collection_commission"`
	VATAmount            string `json:"vat_amount"`
	RequiredAmount       string `json:"required_amount"`
	DirectChannel        bool   `json:"direct_channel"`
	Anomalous            bool   `json:"anomalous"`
}

// SummaryResponse is the settlement of a reservation.
type SummaryResponse struct {
	RequiredAmount string `json:"required_amount"`
	TotalPaid      string `json:"total_paid"`
	PendingAmount  string `json:"pending_amount"`
	Status         string `json:"status"`
	CompletedCount int    `json:"completed_count"`
}

// FinancialsResponse is a reservation with its breakdown, settlement and payments.
type FinancialsResponse struct {
	Reservation ReservationResponse `json:"reservation"`
	ChannelName string              `json:"channel_name"`
	Breakdown   BreakdownResponse   `json:"breakdown"`
	Summary     SummaryResponse     `json:"summary"`
	Payments    []PaymentResponse   `json:"payments"`
}

// PaginationResponse describes a page of results.
type PaginationResponse struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// ReservationListResponse is a page of reservations.
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	Pagination   PaginationResponse    `json:"pagination"`
}

// ToReservationResponse converts a Reservation entity to its response.
func ToReservationResponse(r *entity.Reservation) ReservationResponse {
	var channelID *string
	if r.ChannelID != nil {
		id := r.ChannelID.String()
		channelID = &id
	}
	return ReservationResponse{
		ID:             r.ID.String(),
		PropertyID:     r.PropertyID.String(),
		ChannelID:      channelID,
		ExternalSource: r.ExternalSource,
		GuestName:      r.GuestName,
		GuestEmail:     r.GuestEmail,
		Guests:         r.Guests,
		CheckIn:        FormatDate(r.CheckIn),
		CheckOut:       FormatDate(r.CheckOut),
		Nights:         r.Nights(),
		BaseAmount:     Money(r.BaseAmount),
		CleaningFee:    Money(r.CleaningFee),
		Taxes:          Money(r.Taxes),
		Status:         string(r.Status),
		PaymentStatus:  string(r.PaymentStatus),
		Notes:          r.Notes,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

// ToBreakdownResponse converts a charge breakdown.
func ToBreakdownResponse(b valueobject.ChargeBreakdown) BreakdownResponse {
	return BreakdownResponse{
		TotalAmount:          Money(b.TotalAmount),
		ChannelCommission:    Money(b.ChannelCommission),
		CollectionCommission: Money(b.CollectionCommission),
		VATAmount:            Money(b.VATAmount),
		RequiredAmount:       Money(b.RequiredAmount),
		DirectChannel:        b.DirectChannel,
		Anomalous:            b.IsAnomalous(),
	}
}

// ToSummaryResponse converts a payment summary.
func ToSummaryResponse(s valueobject.PaymentSummary) SummaryResponse {
	return SummaryResponse{
		RequiredAmount: Money(s.RequiredAmount),
		TotalPaid:      Money(s.TotalPaid),
		PendingAmount:  Money(s.PendingAmount),
		Status:         string(s.Status),
		CompletedCount: s.CompletedCount,
	}
}

// ToFinancialsResponse converts the reconciled view of a reservation.
func ToFinancialsResponse(f *reconciliation.Financials) FinancialsResponse {
	return FinancialsResponse{
		Reservation: ToReservationResponse(f.Reservation),
		ChannelName: f.ChannelName,
		Breakdown:   ToBreakdownResponse(f.Breakdown),
		Summary:     ToSummaryResponse(f.Summary),
		Payments:    ToPaymentListResponse(f.Payments),
	}
}

// ToReservationListResponse converts a page of reservations.
func ToReservationListResponse(output *reservation.ListReservationsOutput) ReservationListResponse {
	items := make([]ReservationResponse, 0, len(output.Reservations))
	for _, r := range output.Reservations {
		items = append(items, ToReservationResponse(r))
	}
	return ReservationListResponse{
		Reservations: items,
		Pagination: PaginationResponse{
			Page:       output.Pagination.Page,
			Limit:      output.Pagination.Limit,
			Total:      output.Pagination.Total,
			TotalPages: output.Pagination.TotalPages,
		},
	}
}

func parseOptionalUUID(s *string) (*uuid.UUID, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
