package services

import (
	"time"

	"github.com/selim/groupdesk/internal/app/models"
	"github.com/selim/groupdesk/internal/app/models/dto"
	"github.com/selim/groupdesk/internal/pkg/helpers"
)

// CheckFlightDates compares each group's linked flights against the group's
// own boundary dates: arrival flights against the arrival date, departure
// flights against the departure date. Only the calendar date is compared.
// One mismatch is recorded per differing flight.
func CheckFlightDates(groups []*models.GroupWithFlights) []dto.DateMismatchResponse {
	mismatches := []dto.DateMismatchResponse{}
	for _, g := range groups {
		for _, f := range g.ArrivalFlights {
			if m, ok := compareFlightDate(&g.Group, f, g.Group.ArrivalDate, string(models.DirectionArrival)); ok {
				mismatches = append(mismatches, m)
			}
		}
		for _, f := range g.DepartureFlights {
			if m, ok := compareFlightDate(&g.Group, f, g.Group.DepartureDate, string(models.DirectionDeparture)); ok {
				mismatches = append(mismatches, m)
			}
		}
	}
	return mismatches
}

func compareFlightDate(group *models.Group, flight models.Flight, groupDate time.Time, direction string) (dto.DateMismatchResponse, bool) {
	if helpers.TruncateToDay(flight.FlightDate).Equal(helpers.TruncateToDay(groupDate)) {
		return dto.DateMismatchResponse{}, false
	}
	return dto.DateMismatchResponse{
		Type:       direction,
		GroupID:    group.ID,
		GroupName:  group.Name,
		GroupDate:  helpers.FormatDate(groupDate),
		FlightID:   flight.ID,
		FlightCode: flight.Code,
		FlightDate: helpers.FormatDate(flight.FlightDate),
	}, true
}
