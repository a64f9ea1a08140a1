package dto

import (
	"github.com/selim/groupdesk/internal/app/models"
	"github.com/selim/groupdesk/internal/pkg/helpers"
)

// ParticipantResponse is the wire representation of a participant.
type ParticipantResponse struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Type        string `json:"type"`
	GroupID     *int64 `json:"groupId"`
	TestScore   *int   `json:"testScore"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`
}

// FromParticipant converts a model participant to its response shape.
func FromParticipant(p *models.Participant) ParticipantResponse {
	if p == nil {
		return ParticipantResponse{}
	}
	resp := ParticipantResponse{
		ID:        p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Type:      string(p.Type),
		GroupID:   p.GroupID,
		TestScore: p.TestScore,
	}
	if p.DateOfBirth != nil {
		resp.DateOfBirth = helpers.FormatDate(*p.DateOfBirth)
	}
	return resp
}

// FromParticipants converts a slice of model participants.
func FromParticipants(participants []*models.Participant) []ParticipantResponse {
	out := make([]ParticipantResponse, 0, len(participants))
	for _, p := range participants {
		out = append(out, FromParticipant(p))
	}
	return out
}

// ParticipantListResponse wraps a list of participants.
type ParticipantListResponse struct {
	Success      bool                  `json:"success"`
	Participants []ParticipantResponse `json:"participants"`
}

// ParticipantDetailResponse wraps a single participant.
type ParticipantDetailResponse struct {
	Success     bool                `json:"success"`
	Participant ParticipantResponse `json:"participant"`
}

// CreateParticipantRequest is the POST /api/participants body.
type CreateParticipantRequest struct {
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	Type        string `json:"type" binding:"required,oneof=student leader"`
	GroupID     *int64 `json:"groupId"`
	TestScore   *int   `json:"testScore"`
	DateOfBirth string `json:"dateOfBirth" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateParticipantRequest is the PUT /api/participants/:id body.
type UpdateParticipantRequest struct {
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	Type        string `json:"type" binding:"required,oneof=student leader"`
	GroupID     *int64 `json:"groupId"`
	TestScore   *int   `json:"testScore"`
	DateOfBirth string `json:"dateOfBirth" binding:"omitempty,datetime=2006-01-02"`
}
