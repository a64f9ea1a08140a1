package models

import "time"

// ProgrammeSlot is one scheduled activity for a group on a given day.
type ProgrammeSlot struct {
	ID       int64             `json:"id"`
	GroupID  int64             `json:"groupId"`
	SlotDate time.Time         `json:"-"`
	Slot     ProgrammeSlotTime `json:"slot"`
	Activity string            `json:"activity"`
}
