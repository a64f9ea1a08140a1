package models

import "time"

// Transfer represents a ground transfer (coach, minibus) between an airport
// and a centre, optionally tied to a specific flight.
type Transfer struct {
	ID           int64           `json:"id"`
	Direction    FlightDirection `json:"type"`
	TransferDate time.Time       `json:"-"`
	TransferTime string          `json:"time"`
	Origin       string          `json:"origin"`
	Destination  string          `json:"destination"`
	Capacity     *int            `json:"capacity"`
	Supplier     string          `json:"supplier"`
	FlightID     *int64          `json:"flightId"`
	FlightCode   string          `json:"flightCode,omitempty"`
}

// TransportTransfer pairs a transfer with the details of its linked flight,
// as shown on the transport planning grid.
type TransportTransfer struct {
	Transfer
	FlightDate *time.Time `json:"-"`
	FlightTime string     `json:"flightTime,omitempty"`
}

// TransferAssignment links a group onto a transfer. Distinct from the
// group-flight link: an assignment has its own identity and attributes.
type TransferAssignment struct {
	ID         int64  `json:"id"`
	GroupID    int64  `json:"groupId"`
	TransferID int64  `json:"transferId"`
	Passengers *int   `json:"passengers"`
	Notes      string `json:"notes"`
}
