package dto

import (
	"github.com/selim/groupdesk/internal/app/models"
	"github.com/selim/groupdesk/internal/pkg/helpers"
)

// GroupResponse is the wire representation of a group. Dates are
// calendar dates only (YYYY-MM-DD).
type GroupResponse struct {
	ID                int64  `json:"id"`
	Name              string `json:"name"`
	AgencyID          *int64 `json:"agencyId"`
	AgencyName        string `json:"agencyName,omitempty"`
	CentreID          *int64 `json:"centreId"`
	CentreName        string `json:"centreName,omitempty"`
	ArrivalDate       string `json:"arrivalDate"`
	DepartureDate     string `json:"departureDate"`
	StudentsAllocated *int   `json:"studentsAllocated"`
	LeadersAllocated  *int   `json:"leadersAllocated"`
	StudentsBooked    *int   `json:"studentsBooked"`
	LeadersBooked     *int   `json:"leadersBooked"`
}

// FromGroup converts a model group to its response shape.
func FromGroup(g *models.Group) GroupResponse {
	if g == nil {
		return GroupResponse{}
	}
	return GroupResponse{
		ID:                g.ID,
		Name:              g.Name,
		AgencyID:          g.AgencyID,
		AgencyName:        g.AgencyName,
		CentreID:          g.CentreID,
		CentreName:        g.CentreName,
		ArrivalDate:       helpers.FormatDate(g.ArrivalDate),
		DepartureDate:     helpers.FormatDate(g.DepartureDate),
		StudentsAllocated: g.StudentsAllocated,
		LeadersAllocated:  g.LeadersAllocated,
		StudentsBooked:    g.StudentsBooked,
		LeadersBooked:     g.LeadersBooked,
	}
}

// FromGroups converts a slice of model groups.
func FromGroups(groups []*models.Group) []GroupResponse {
	out := make([]GroupResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, FromGroup(g))
	}
	return out
}

// GroupListResponse wraps a list of groups.
type GroupListResponse struct {
	Success bool            `json:"success"`
	Groups  []GroupResponse `json:"groups"`
}

// GroupDetailResponse wraps a single group.
type GroupDetailResponse struct {
	Success bool          `json:"success"`
	Group   GroupResponse `json:"group"`
}

// CreateGroupRequest is the POST /api/groups body. The agency is referenced
// by name and upserted; the centre by id.
type CreateGroupRequest struct {
	Name              string `json:"name" binding:"required"`
	AgencyName        string `json:"agencyName"`
	CentreID          *int64 `json:"centreId"`
	ArrivalDate       string `json:"arrivalDate" binding:"required,datetime=2006-01-02"`
	DepartureDate     string `json:"departureDate" binding:"required,datetime=2006-01-02"`
	StudentsAllocated *int   `json:"studentsAllocated"`
	LeadersAllocated  *int   `json:"leadersAllocated"`
	StudentsBooked    *int   `json:"studentsBooked"`
	LeadersBooked     *int   `json:"leadersBooked"`
}

// UpdateGroupRequest is the PUT /api/groups/:id body.
type UpdateGroupRequest struct {
	Name              string `json:"name" binding:"required"`
	AgencyName        string `json:"agencyName"`
	CentreID          *int64 `json:"centreId"`
	ArrivalDate       string `json:"arrivalDate" binding:"required,datetime=2006-01-02"`
	DepartureDate     string `json:"departureDate" binding:"required,datetime=2006-01-02"`
	StudentsAllocated *int   `json:"studentsAllocated"`
	LeadersAllocated  *int   `json:"leadersAllocated"`
	StudentsBooked    *int   `json:"studentsBooked"`
	LeadersBooked     *int   `json:"leadersBooked"`
}

// LinkFlightRequest links an existing flight to a group.
type LinkFlightRequest struct {
	FlightID int64 `json:"flightId" binding:"required"`
}

// ImportGroupRecord is one candidate row of a batch import. Numeric fields
// arrive as free text from the upload and are coerced integer-or-null.
type ImportGroupRecord struct {
	Name              string `json:"name"`
	AgencyName        string `json:"agencyName"`
	CentreName        string `json:"centreName"`
	ArrivalDate       string `json:"arrivalDate"`
	DepartureDate     string `json:"departureDate"`
	StudentsAllocated string `json:"studentsAllocated"`
	LeadersAllocated  string `json:"leadersAllocated"`
	StudentsBooked    string `json:"studentsBooked"`
	LeadersBooked     string `json:"leadersBooked"`
}

// ImportGroupsRequest is the POST /api/groups/import body.
type ImportGroupsRequest struct {
	Groups []ImportGroupRecord `json:"groups" binding:"required"`
}

// ImportRowError describes why one import row was not committed.
// Row is the zero-based index into the submitted list.
type ImportRowError struct {
	Row     int    `json:"row"`
	Name    string `json:"name,omitempty"`
	Message string `json:"message"`
}

// ImportGroupsResponse summarises a batch import.
type ImportGroupsResponse struct {
	Success                   bool             `json:"success"`
	SuccessfullyImportedCount int              `json:"successfullyImportedCount"`
	SkippedCount              int              `json:"skippedCount"`
	ErrorCount                int              `json:"errorCount"`
	Errors                    []ImportRowError `json:"errors"`
}

// DateMismatchResponse is one flight whose date disagrees with its group.
type DateMismatchResponse struct {
	Type       string `json:"type"`
	GroupID    int64  `json:"groupId"`
	GroupName  string `json:"groupName"`
	GroupDate  string `json:"groupDate"`
	FlightID   int64  `json:"flightId"`
	FlightCode string `json:"flightCode"`
	FlightDate string `json:"flightDate"`
}

// DateMismatchListResponse wraps the consistency check result.
type DateMismatchListResponse struct {
	Success    bool                   `json:"success"`
	Mismatches []DateMismatchResponse `json:"mismatches"`
}
