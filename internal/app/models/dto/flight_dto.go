package dto

import (
	"github.com/selim/groupdesk/internal/app/models"
	"github.com/selim/groupdesk/internal/pkg/helpers"
)

// FlightResponse is the wire representation of a flight.
type FlightResponse struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
	Type string `json:"type"`
	Date string `json:"date"`
	Time string `json:"time"`
}

// FromFlight converts a model flight to its response shape.
func FromFlight(f *models.Flight) FlightResponse {
	if f == nil {
		return FlightResponse{}
	}
	return FlightResponse{
		ID:   f.ID,
		Code: f.Code,
		Type: string(f.Direction),
		Date: helpers.FormatDate(f.FlightDate),
		Time: f.FlightTime,
	}
}

// FromFlights converts a slice of model flights.
func FromFlights(flights []*models.Flight) []FlightResponse {
	out := make([]FlightResponse, 0, len(flights))
	for _, f := range flights {
		out = append(out, FromFlight(f))
	}
	return out
}

// FlightListResponse wraps a list of flights.
type FlightListResponse struct {
	Success bool             `json:"success"`
	Flights []FlightResponse `json:"flights"`
}

// FlightDetailResponse wraps a single flight.
type FlightDetailResponse struct {
	Success bool           `json:"success"`
	Flight  FlightResponse `json:"flight"`
}

// CreateFlightRequest is the POST /api/flights body.
type CreateFlightRequest struct {
	Code string `json:"code" binding:"required"`
	Type string `json:"type" binding:"required,oneof=arrival departure"`
	Date string `json:"date" binding:"required,datetime=2006-01-02"`
	Time string `json:"time"`
}

// UpdateFlightRequest is the PUT /api/flights/:id body.
type UpdateFlightRequest struct {
	Code string `json:"code" binding:"required"`
	Type string `json:"type" binding:"required,oneof=arrival departure"`
	Date string `json:"date" binding:"required,datetime=2006-01-02"`
	Time string `json:"time"`
}
