package models

// Agency represents the booking agency a group came through.
type Agency struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
