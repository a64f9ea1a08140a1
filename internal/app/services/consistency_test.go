package services

import (
	"testing"
	"time"

	"github.com/selim/groupdesk/internal/app/models"
)

func groupWithDates(id int64, name string, arrival, departure time.Time) models.Group {
	return models.Group{
		ID:            id,
		Name:          name,
		ArrivalDate:   arrival,
		DepartureDate: departure,
	}
}

func TestCheckFlightDates_MatchingFlightsProduceNoMismatch(t *testing.T) {
	groups := []*models.GroupWithFlights{
		{
			Group: groupWithDates(1, "Milan A", date(2024, 7, 1), date(2024, 7, 14)),
			ArrivalFlights: []models.Flight{
				{ID: 10, Code: "BA123", FlightDate: date(2024, 7, 1)},
			},
			DepartureFlights: []models.Flight{
				{ID: 11, Code: "BA124", FlightDate: date(2024, 7, 14)},
			},
		},
	}

	mismatches := CheckFlightDates(groups)
	if len(mismatches) != 0 {
		t.Errorf("expected no mismatches, got %v", mismatches)
	}
}

func TestCheckFlightDates_ArrivalMismatch(t *testing.T) {
	groups := []*models.GroupWithFlights{
		{
			Group: groupWithDates(1, "Milan A", date(2024, 7, 1), date(2024, 7, 14)),
			ArrivalFlights: []models.Flight{
				{ID: 10, Code: "BA123", FlightDate: date(2024, 7, 2)},
			},
		},
	}

	mismatches := CheckFlightDates(groups)
	if len(mismatches) != 1 {
		t.Fatalf("expected 1 mismatch, got %d", len(mismatches))
	}

	m := mismatches[0]
	if m.Type != "arrival" {
		t.Errorf("expected type arrival, got %s", m.Type)
	}
	if m.GroupID != 1 || m.FlightID != 10 {
		t.Errorf("unexpected ids: group=%d flight=%d", m.GroupID, m.FlightID)
	}
	if m.GroupDate != "2024-07-01" || m.FlightDate != "2024-07-02" {
		t.Errorf("unexpected dates: %s vs %s", m.GroupDate, m.FlightDate)
	}
}

func TestCheckFlightDates_DepartureMismatch(t *testing.T) {
	groups := []*models.GroupWithFlights{
		{
			Group: groupWithDates(2, "Madrid B", date(2024, 7, 1), date(2024, 7, 14)),
			DepartureFlights: []models.Flight{
				{ID: 20, Code: "IB456", FlightDate: date(2024, 7, 15)},
			},
		},
	}

	mismatches := CheckFlightDates(groups)
	if len(mismatches) != 1 {
		t.Fatalf("expected 1 mismatch, got %d", len(mismatches))
	}
	if mismatches[0].Type != "departure" {
		t.Errorf("expected type departure, got %s", mismatches[0].Type)
	}
}

func TestCheckFlightDates_OneMismatchPerDifferingFlight(t *testing.T) {
	groups := []*models.GroupWithFlights{
		{
			Group: groupWithDates(3, "Paris C", date(2024, 7, 1), date(2024, 7, 14)),
			ArrivalFlights: []models.Flight{
				{ID: 30, Code: "AF100", FlightDate: date(2024, 7, 1)},
				{ID: 31, Code: "AF200", FlightDate: date(2024, 6, 30)},
			},
			DepartureFlights: []models.Flight{
				{ID: 32, Code: "AF300", FlightDate: date(2024, 7, 13)},
			},
		},
	}

	mismatches := CheckFlightDates(groups)
	if len(mismatches) != 2 {
		t.Fatalf("expected 2 mismatches, got %d", len(mismatches))
	}
}

func TestCheckFlightDates_IgnoresTimeOfDay(t *testing.T) {
	groups := []*models.GroupWithFlights{
		{
			Group: groupWithDates(4, "Rome D", time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC), date(2024, 7, 14)),
			ArrivalFlights: []models.Flight{
				{ID: 40, Code: "AZ789", FlightDate: time.Date(2024, 7, 1, 22, 45, 0, 0, time.UTC)},
			},
		},
	}

	mismatches := CheckFlightDates(groups)
	if len(mismatches) != 0 {
		t.Errorf("same calendar day must not mismatch, got %v", mismatches)
	}
}

func TestCheckFlightDates_NoFlightsNoMismatches(t *testing.T) {
	groups := []*models.GroupWithFlights{
		{Group: groupWithDates(5, "Lisbon E", date(2024, 7, 1), date(2024, 7, 14))},
	}

	mismatches := CheckFlightDates(groups)
	if mismatches == nil {
		t.Fatal("expected an empty slice, not nil")
	}
	if len(mismatches) != 0 {
		t.Errorf("expected no mismatches, got %v", mismatches)
	}
}
