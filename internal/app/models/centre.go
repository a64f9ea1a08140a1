package models

// Centre represents a residential teaching centre.
type Centre struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}
