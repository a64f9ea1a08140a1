package models

import "time"

// Participant is a student or leader travelling with a group.
type Participant struct {
	ID          int64           `json:"id"`
	FirstName   string          `json:"firstName"`
	LastName    string          `json:"lastName"`
	Type        ParticipantType `json:"type"`
	GroupID     *int64          `json:"groupId"`
	TestScore   *int            `json:"testScore"`
	DateOfBirth *time.Time      `json:"-"`
}
