package valueobject

import (
	"sort"
	"time"
)

const (
	// DefaultMinNights is the shortest free run surfaced as an availability period.
	DefaultMinNights = 3
	// DefaultMaxPeriods caps the number of periods returned.
	DefaultMaxPeriods = 10
)

// ReservationRange is the stay of one reservation: check-in day up to
// check-out day.
type ReservationRange struct {
	ID       string
	CheckIn  time.Time
	CheckOut time.Time
}

// AvailabilityPeriod is a maximal run of consecutive free days. End is the
// last free day, inclusive.
type AvailabilityPeriod struct {
	Start  time.Time
	End    time.Time
	Nights int
}

// CalendarDay is the state of one day on a property calendar.
type CalendarDay struct {
	Date time.Time
	// Booked uses check-out exclusive semantics: the day cannot be sold.
	Booked bool
	// Occupied uses check-out inclusive semantics: a guest is on site at
	// some point of the day.
	Occupied      bool
	ReservationID string
}

// Day truncates t to its UTC calendar day.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Nights returns the number of nights between two days, or zero when the
// range is empty or inverted.
func Nights(checkIn, checkOut time.Time) int {
	n := int(Day(checkOut).Sub(Day(checkIn)).Hours() / 24)
	if n < 0 {
		return 0
	}
	return n
}

// IsWellFormed reports whether the range spans at least one night.
func (r ReservationRange) IsWellFormed() bool {
	return Day(r.CheckIn).Before(Day(r.CheckOut))
}

// IsOccupiedForBooking reports whether day cannot be sold because of r.
// Check-in is inclusive and check-out exclusive, so the departure day is free
// for a new arrival.
func IsOccupiedForBooking(r ReservationRange, day time.Time) bool {
	if !r.IsWellFormed() {
		return false
	}
	d := Day(day)
	return !d.Before(Day(r.CheckIn)) && d.Before(Day(r.CheckOut))
}

// IsOccupiedForDisplay reports whether a calendar cell for day should show r.
// Both ends are inclusive so the departure day still shows the leaving guest.
func IsOccupiedForDisplay(r ReservationRange, day time.Time) bool {
	if !r.IsWellFormed() {
		return false
	}
	d := Day(day)
	return !d.Before(Day(r.CheckIn)) && !d.After(Day(r.CheckOut))
}

// IsRangeAvailable reports whether the stay [checkIn, checkOut) overlaps none
// of the reservations. Malformed reservations are ignored; an empty or
// inverted candidate is never available.
func IsRangeAvailable(reservations []ReservationRange, checkIn, checkOut time.Time) bool {
	in, out := Day(checkIn), Day(checkOut)
	if !in.Before(out) {
		return false
	}
	for _, r := range reservations {
		if !r.IsWellFormed() {
			continue
		}
		if in.Before(Day(r.CheckOut)) && Day(r.CheckIn).Before(out) {
			return false
		}
	}
	return true
}

// ListAvailablePeriods sweeps every day of [windowStart, windowEnd] and
// returns the runs of free days at least minNights long, earliest first,
// capped at maxResults. Non-positive minNights and maxResults use the
// defaults.
func ListAvailablePeriods(reservations []ReservationRange, windowStart, windowEnd time.Time, minNights, maxResults int) []AvailabilityPeriod {
	if minNights <= 0 {
		minNights = DefaultMinNights
	}
	if maxResults <= 0 {
		maxResults = DefaultMaxPeriods
	}

	start, end := Day(windowStart), Day(windowEnd)
	periods := make([]AvailabilityPeriod, 0)
	if start.After(end) {
		return periods
	}

	var run *AvailabilityPeriod
	flush := func() {
		if run != nil && run.Nights >= minNights {
			periods = append(periods, *run)
		}
		run = nil
	}

	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if bookedOn(reservations, d) {
			flush()
			continue
		}
		if run == nil {
			run = &AvailabilityPeriod{Start: d}
		}
		run.End = d
		run.Nights++
	}
	flush()

	sort.SliceStable(periods, func(i, j int) bool {
		return periods[i].Start.Before(periods[j].Start)
	})
	if len(periods) > maxResults {
		periods = periods[:maxResults]
	}
	return periods
}

// BuildCalendar returns one CalendarDay per day of [windowStart, windowEnd].
func BuildCalendar(reservations []ReservationRange, windowStart, windowEnd time.Time) []CalendarDay {
	start, end := Day(windowStart), Day(windowEnd)
	days := make([]CalendarDay, 0)
	if start.After(end) {
		return days
	}

	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		day := CalendarDay{Date: d}
		for _, r := range reservations {
			if IsOccupiedForBooking(r, d) {
				day.Booked = true
				day.Occupied = true
				day.ReservationID = r.ID
				break
			}
			if day.ReservationID == "" && IsOccupiedForDisplay(r, d) {
				day.Occupied = true
				day.ReservationID = r.ID
			}
		}
		days = append(days, day)
	}
	return days
}

func bookedOn(reservations []ReservationRange, day time.Time) bool {
	for _, r := range reservations {
		if IsOccupiedForBooking(r, day) {
			return true
		}
	}
	return false
}
