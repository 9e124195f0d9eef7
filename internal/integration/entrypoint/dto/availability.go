package dto

import (
	"github.com/rentaldesk/backend/internal/application/usecase/availability"
	"github.com/rentaldesk/backend/internal/domain/valueobject"
)

// CheckAvailabilityQuery holds the query of GET /properties/:id/availability.
type CheckAvailabilityQuery struct {
	CheckIn  string `form:"check_in" binding:"required,datetime=2006-01-02"`
	CheckOut string `form:"check_out" binding:"required,datetime=2006-01-02"`
}

// WindowQuery holds a start/end window with optional period filters.
type WindowQuery struct {
	Start     string `form:"start" binding:"required,datetime=2006-01-02"`
	End       string `form:"end" binding:"required,datetime=2006-01-02"`
	MinNights int    `form:"min_nights" binding:"gte=0"`
	Limit     int    `form:"limit" binding:"gte=0"`
}

// AvailabilityResponse answers whether a stay can be booked.
type AvailabilityResponse struct {
	Available bool                  `json:"available"`
	Nights    int                   `json:"nights"`
	Conflicts []ReservationResponse `json:"conflicts"`
}

// PeriodResponse is a run of free days; end is the last free day.
type PeriodResponse struct {
	Start  string `json:"start"`
	End    string `json:"end"`
	Nights int    `json:"nights"`
}

// CalendarDayResponse is the state of one day.
type CalendarDayResponse struct {
	Date          string `json:"date"`
	Booked        bool   `json:"booked"`
	Occupied      bool   `json:"occupied"`
	ReservationID string `json:"reservation_id,omitempty"`
}

// ToAvailabilityResponse converts the check output.
func ToAvailabilityResponse(output *availability.CheckAvailabilityOutput) AvailabilityResponse {
	conflicts := make([]ReservationResponse, 0, len(output.Conflicts))
	for _, r := range output.Conflicts {
		conflicts = append(conflicts, ToReservationResponse(r))
	}
	return AvailabilityResponse{
		Available: output.Available,
		Nights:    output.Nights,
		Conflicts: conflicts,
	}
}

// ToPeriodListResponse converts available periods.
func ToPeriodListResponse(periods []valueobject.AvailabilityPeriod) []PeriodResponse {
	out := make([]PeriodResponse, 0, len(periods))
	for _, p := range periods {
		out = append(out, PeriodResponse{Start: FormatDate(p.Start), End: FormatDate(p.End), Nights: p.Nights})
	}
	return out
}

// ToCalendarResponse converts calendar days.
func ToCalendarResponse(days []valueobject.CalendarDay) []CalendarDayResponse {
	out := make([]CalendarDayResponse, 0, len(days))
	for _, d := range days {
		out = append(out, CalendarDayResponse{
			Date:          FormatDate(d.Date),
			Booked:        d.Booked,
			Occupied:      d.Occupied,
			ReservationID: d.ReservationID,
		})
	}
	return out
}
