package dto

import "github.com/selim/groupdesk/internal/app/models"

// AgencyListResponse wraps a list of agencies.
type AgencyListResponse struct {
	Success  bool             `json:"success"`
	Agencies []*models.Agency `json:"agencies"`
}
