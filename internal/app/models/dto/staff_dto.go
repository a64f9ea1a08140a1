package dto

import (
	"github.com/selim/groupdesk/internal/app/models"
	"github.com/selim/groupdesk/internal/pkg/helpers"
)

// StaffResponse is the wire representation of a staff member.
type StaffResponse struct {
	ID            int64  `json:"id"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Role          string `json:"role"`
	ContractStart string `json:"contractStart,omitempty"`
	ContractEnd   string `json:"contractEnd,omitempty"`
}

// FromStaff converts a model staff member to its response shape.
func FromStaff(s *models.Staff) StaffResponse {
	if s == nil {
		return StaffResponse{}
	}
	resp := StaffResponse{
		ID:        s.ID,
		FirstName: s.FirstName,
		LastName:  s.LastName,
		Email:     s.Email,
		Phone:     s.Phone,
		Role:      s.Role,
	}
	if s.ContractStart != nil {
		resp.ContractStart = helpers.FormatDate(*s.ContractStart)
	}
	if s.ContractEnd != nil {
		resp.ContractEnd = helpers.FormatDate(*s.ContractEnd)
	}
	return resp
}

// FromStaffList converts a slice of model staff members.
func FromStaffList(staff []*models.Staff) []StaffResponse {
	out := make([]StaffResponse, 0, len(staff))
	for _, s := range staff {
		out = append(out, FromStaff(s))
	}
	return out
}

// StaffListResponse wraps a list of staff members.
type StaffListResponse struct {
	Success bool            `json:"success"`
	Staff   []StaffResponse `json:"staff"`
}

// StaffDetailResponse wraps a single staff member.
type StaffDetailResponse struct {
	Success bool          `json:"success"`
	Staff   StaffResponse `json:"staff"`
}

// CreateStaffRequest is the POST /api/staff body.
type CreateStaffRequest struct {
	FirstName     string `json:"firstName" binding:"required"`
	LastName      string `json:"lastName" binding:"required"`
	Email         string `json:"email" binding:"omitempty,email"`
	Phone         string `json:"phone"`
	Role          string `json:"role"`
	ContractStart string `json:"contractStart" binding:"omitempty,datetime=2006-01-02"`
	ContractEnd   string `json:"contractEnd" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateStaffRequest is the PUT /api/staff/:id body.
type UpdateStaffRequest struct {
	FirstName     string `json:"firstName" binding:"required"`
	LastName      string `json:"lastName" binding:"required"`
	Email         string `json:"email" binding:"omitempty,email"`
	Phone         string `json:"phone"`
	Role          string `json:"role"`
	ContractStart string `json:"contractStart" binding:"omitempty,datetime=2006-01-02"`
	ContractEnd   string `json:"contractEnd" binding:"omitempty,datetime=2006-01-02"`
}

// WorkAssignmentResponse is the wire representation of a work assignment.
type WorkAssignmentResponse struct {
	ID        int64  `json:"id"`
	StaffID   int64  `json:"staffId"`
	CentreID  int64  `json:"centreId"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// FromWorkAssignment converts a model work assignment.
func FromWorkAssignment(a *models.StaffWorkAssignment) WorkAssignmentResponse {
	if a == nil {
		return WorkAssignmentResponse{}
	}
	return WorkAssignmentResponse{
		ID:        a.ID,
		StaffID:   a.StaffID,
		CentreID:  a.CentreID,
		StartDate: helpers.FormatDate(a.StartDate),
		EndDate:   helpers.FormatDate(a.EndDate),
	}
}

// WorkAssignmentListResponse wraps a staff member's work assignments.
type WorkAssignmentListResponse struct {
	Success     bool                     `json:"success"`
	Assignments []WorkAssignmentResponse `json:"assignments"`
}

// CreateWorkAssignmentRequest is the POST /api/staff/:id/work-assignments body.
type CreateWorkAssignmentRequest struct {
	CentreID  int64  `json:"centreId" binding:"required"`
	StartDate string `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate   string `json:"endDate" binding:"required,datetime=2006-01-02"`
}

// AccommodationResponse is the wire representation of an accommodation stay.
type AccommodationResponse struct {
	ID        int64  `json:"id"`
	StaffID   int64  `json:"staffId"`
	CentreID  int64  `json:"centreId"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Lodging   string `json:"lodging"`
}

// FromAccommodation converts a model accommodation record.
func FromAccommodation(a *models.StaffAccommodation) AccommodationResponse {
	if a == nil {
		return AccommodationResponse{}
	}
	return AccommodationResponse{
		ID:        a.ID,
		StaffID:   a.StaffID,
		CentreID:  a.CentreID,
		StartDate: helpers.FormatDate(a.StartDate),
		EndDate:   helpers.FormatDate(a.EndDate),
		Lodging:   a.Lodging,
	}
}

// AccommodationListResponse wraps a staff member's accommodation stays.
type AccommodationListResponse struct {
	Success        bool                    `json:"success"`
	Accommodations []AccommodationResponse `json:"accommodations"`
}

// CreateAccommodationRequest is the POST /api/staff/:id/accommodations body.
type CreateAccommodationRequest struct {
	CentreID  int64  `json:"centreId" binding:"required"`
	StartDate string `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate   string `json:"endDate" binding:"required,datetime=2006-01-02"`
	Lodging   string `json:"lodging"`
}

// StaffDocumentListResponse wraps a staff member's documents.
type StaffDocumentListResponse struct {
	Success   bool                    `json:"success"`
	Documents []*models.StaffDocument `json:"documents"`
}

// StaffDocumentDetailResponse wraps a single uploaded document.
type StaffDocumentDetailResponse struct {
	Success  bool                  `json:"success"`
	Document *models.StaffDocument `json:"document"`
}
