package dto

import "github.com/selim/groupdesk/internal/app/models"

// CentreListResponse wraps a list of centres.
type CentreListResponse struct {
	Success bool             `json:"success"`
	Centres []*models.Centre `json:"centres"`
}

// CentreDetailResponse wraps a single centre.
type CentreDetailResponse struct {
	Success bool           `json:"success"`
	Centre  *models.Centre `json:"centre"`
}

// CreateCentreRequest is the POST /api/centres body.
type CreateCentreRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
}

// UpdateCentreRequest is the PUT /api/centres/:id body.
type UpdateCentreRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
}

// OccupancyTally is the per-day headcount at a centre.
type OccupancyTally struct {
	Students int `json:"students"`
	Leaders  int `json:"leaders"`
}

// OccupancyResponse maps centre name -> YYYY-MM-DD -> tally. Date keys are
// unordered; clients must not rely on iteration order.
type OccupancyResponse struct {
	Success   bool                                 `json:"success"`
	Occupancy map[string]map[string]OccupancyTally `json:"occupancy"`
}
