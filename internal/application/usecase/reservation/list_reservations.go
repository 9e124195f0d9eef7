package reservation

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rentaldesk/backend/internal/application/adapter"
	"github.com/rentaldesk/backend/internal/domain/entity"
	"github.com/rentaldesk/backend/internal/domain/valueobject"
)

// ListReservationsInput represents the input for listing reservations.
type ListReservationsInput struct {
	OwnerID       uuid.UUID
	PropertyID    *uuid.UUID
	Status        *entity.ReservationStatus
	PaymentStatus *valueobject.SettlementStatus
	From          *time.Time
	To            *time.Time
	Search        string
	Page          int
	Limit         int
}

// PaginationOutput represents pagination information in the output.
type PaginationOutput struct {
	Page       int
	Limit      int
	Total      int64
	TotalPages int
}

// ListReservationsOutput represents the output of listing reservations.
type ListReservationsOutput struct {
	Reservations []*entity.Reservation
	Pagination   PaginationOutput
}

// ListReservationsUseCase handles reservation listing logic.
type ListReservationsUseCase struct {
	reservationRepo adapter.ReservationRepository
}

// NewListReservationsUseCase creates a new ListReservationsUseCase instance.
func NewListReservationsUseCase(reservationRepo adapter.ReservationRepository) *ListReservationsUseCase {
	return &ListReservationsUseCase{reservationRepo: reservationRepo}
}

// Execute lists the reservations matching the filter, latest check-in first.
func (uc *ListReservationsUseCase) Execute(ctx context.Context, input ListReservationsInput) (*ListReservationsOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}

	result, err := uc.reservationRepo.FindByFilter(ctx, adapter.ReservationFilter{
		OwnerID:       input.OwnerID,
		PropertyID:    input.PropertyID,
		Status:        input.Status,
		PaymentStatus: input.PaymentStatus,
		From:          input.From,
		To:            input.To,
		Search:        input.Search,
	}, adapter.ReservationPagination{Page: page, Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}

	return &ListReservationsOutput{
		Reservations: result.Reservations,
		Pagination: PaginationOutput{
			Page:       result.Page,
			Limit:      result.Limit,
			Total:      result.Total,
			TotalPages: result.TotalPages,
		},
	}, nil
}
