package models

import "time"

// Flight represents a flight leg that groups can be linked to.
type Flight struct {
	ID         int64           `json:"id"`
	Code       string          `json:"code"`
	Direction  FlightDirection `json:"type"`
	FlightDate time.Time       `json:"-"`
	FlightTime string          `json:"time"`
}
