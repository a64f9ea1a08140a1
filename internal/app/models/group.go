package models

import "time"

// Group represents a tour group booked into a centre.
// Allocation counts are what the agency reserved; booking counts are
// confirmed heads. All four are nullable - absent is not the same as zero.
type Group struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	AgencyID          *int64    `json:"agencyId"`
	AgencyName        string    `json:"agencyName,omitempty"`
	CentreID          *int64    `json:"centreId"`
	CentreName        string    `json:"centreName,omitempty"`
	ArrivalDate       time.Time `json:"-"`
	DepartureDate     time.Time `json:"-"`
	StudentsAllocated *int      `json:"studentsAllocated"`
	LeadersAllocated  *int      `json:"leadersAllocated"`
	StudentsBooked    *int      `json:"studentsBooked"`
	LeadersBooked     *int      `json:"leadersBooked"`
	CreatedAt         time.Time `json:"-"`
	UpdatedAt         time.Time `json:"-"`
}

// GroupFlight is a pure many-to-many link between a group and a flight.
type GroupFlight struct {
	GroupID  int64 `json:"groupId"`
	FlightID int64 `json:"flightId"`
}

// GroupWithFlights carries a group and its linked flights split by direction,
// as needed by the flight-date consistency check.
type GroupWithFlights struct {
	Group            Group
	ArrivalFlights   []Flight
	DepartureFlights []Flight
}

// CentreOccupancyRow is the projection the occupancy aggregation runs over:
// one row per group that is placed at a centre.
type CentreOccupancyRow struct {
	CentreName        string
	ArrivalDate       time.Time
	DepartureDate     time.Time
	StudentsAllocated *int
	LeadersAllocated  *int
}
