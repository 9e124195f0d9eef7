package dto

import (
	"github.com/rentaldesk/backend/internal/application/usecase/dashboard"
	"github.com/rentaldesk/backend/internal/domain/valueobject"
)

// DashboardQuery holds the query of GET /dashboard.
type DashboardQuery struct {
	Start      string `form:"start"`
	End        string `form:"end"`
	PropertyID string `form:"property_id" binding:"omitempty,uuid"`
}

// FiguresResponse is the money and occupancy figures of a window.
type FiguresResponse struct {
	Reservations   int            `json:"reservations"`
	BookedNights   int            `json:"booked_nights"`
	WindowNights   int            `json:"window_nights"`
	OccupancyRate  string         `json:"occupancy_rate"`
	GrossTotal     string         `json:"gross_total"`
	RequiredTotal  string         `json:"required_total"`
	Collected      string         `json:"collected"`
	Pending        string         `json:"pending"`
	Expenses       string         `json:"expenses"`
	NetIncome      string         `json:"net_income"`
	StatusCounts   map[string]int `json:"payment_status_counts"`
	AnomalousCount int            `json:"anomalous_count"`
}

// PropertyDashboardResponse is the figures of one property.
type PropertyDashboardResponse struct {
	PropertyID   string `json:"property_id"`
	PropertyName string `json:"property_name"`
	FiguresResponse
}

// DashboardResponse is the dashboard of a window.
type DashboardResponse struct {
	Start      string                      `json:"start"`
	End        string                      `json:"end"`
	Properties []PropertyDashboardResponse `json:"properties"`
	Totals     FiguresResponse             `json:"totals"`
}

// ToDashboardResponse converts the dashboard output.
func ToDashboardResponse(output *dashboard.GetPropertyDashboardOutput) DashboardResponse {
	properties := make([]PropertyDashboardResponse, 0, len(output.Properties))
	for _, p := range output.Properties {
		properties = append(properties, PropertyDashboardResponse{
			PropertyID:      p.PropertyID.String(),
			PropertyName:    p.PropertyName,
			FiguresResponse: toFiguresResponse(p.Figures),
		})
	}
	return DashboardResponse{
		Start:      FormatDate(output.Start),
		End:        FormatDate(output.End),
		Properties: properties,
		Totals:     toFiguresResponse(output.Totals),
	}
}

func toFiguresResponse(f dashboard.Figures) FiguresResponse {
	counts := map[string]int{
		string(valueobject.SettlementPending): 0,
		string(valueobject.SettlementPartial): 0,
		string(valueobject.SettlementPaid):    0,
	}
	for status, n := range f.StatusCounts {
		counts[string(status)] = n
	}
	return FiguresResponse{
		Reservations:   f.Reservations,
		BookedNights:   f.BookedNights,
		WindowNights:   f.WindowNights,
		OccupancyRate:  Money(f.OccupancyRate),
		GrossTotal:     Money(f.GrossTotal),
		RequiredTotal:  Money(f.RequiredTotal),
		Collected:      Money(f.Collected),
		Pending:        Money(f.Pending),
		Expenses:       Money(f.Expenses),
		NetIncome:      Money(f.NetIncome),
		StatusCounts:   counts,
		AnomalousCount: f.AnomalousCount,
	}
}
