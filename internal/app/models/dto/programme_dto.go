package dto

import (
	"github.com/selim/groupdesk/internal/app/models"
	"github.com/selim/groupdesk/internal/pkg/helpers"
)

// ProgrammeSlotResponse is the wire representation of a programme slot.
type ProgrammeSlotResponse struct {
	ID       int64  `json:"id"`
	GroupID  int64  `json:"groupId"`
	Date     string `json:"date"`
	Slot     string `json:"slot"`
	Activity string `json:"activity"`
}

// FromProgrammeSlot converts a model programme slot.
func FromProgrammeSlot(s *models.ProgrammeSlot) ProgrammeSlotResponse {
	if s == nil {
		return ProgrammeSlotResponse{}
	}
	return ProgrammeSlotResponse{
		ID:       s.ID,
		GroupID:  s.GroupID,
		Date:     helpers.FormatDate(s.SlotDate),
		Slot:     string(s.Slot),
		Activity: s.Activity,
	}
}

// FromProgrammeSlots converts a slice of model programme slots.
func FromProgrammeSlots(slots []*models.ProgrammeSlot) []ProgrammeSlotResponse {
	out := make([]ProgrammeSlotResponse, 0, len(slots))
	for _, s := range slots {
		out = append(out, FromProgrammeSlot(s))
	}
	return out
}

// ProgrammeSlotListResponse wraps a list of programme slots.
type ProgrammeSlotListResponse struct {
	Success bool                    `json:"success"`
	Slots   []ProgrammeSlotResponse `json:"slots"`
}

// ProgrammeSlotDetailResponse wraps a single programme slot.
type ProgrammeSlotDetailResponse struct {
	Success bool                  `json:"success"`
	Slot    ProgrammeSlotResponse `json:"slot"`
}

// CreateProgrammeSlotRequest is the POST /api/programme-slot body.
type CreateProgrammeSlotRequest struct {
	GroupID  int64  `json:"groupId" binding:"required"`
	Date     string `json:"date" binding:"required,datetime=2006-01-02"`
	Slot     string `json:"slot" binding:"required,oneof=morning afternoon evening"`
	Activity string `json:"activity" binding:"required"`
}
