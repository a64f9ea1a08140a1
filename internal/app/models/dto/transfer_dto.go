package dto

import (
	"github.com/selim/groupdesk/internal/app/models"
	"github.com/selim/groupdesk/internal/pkg/helpers"
)

// TransferResponse is the wire representation of a transfer.
type TransferResponse struct {
	ID          int64  `json:"id"`
	Type        string `json:"type"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Capacity    *int   `json:"capacity"`
	Supplier    string `json:"supplier"`
	FlightID    *int64 `json:"flightId"`
	FlightCode  string `json:"flightCode,omitempty"`
}

// FromTransfer converts a model transfer to its response shape.
func FromTransfer(t *models.Transfer) TransferResponse {
	if t == nil {
		return TransferResponse{}
	}
	return TransferResponse{
		ID:          t.ID,
		Type:        string(t.Direction),
		Date:        helpers.FormatDate(t.TransferDate),
		Time:        t.TransferTime,
		Origin:      t.Origin,
		Destination: t.Destination,
		Capacity:    t.Capacity,
		Supplier:    t.Supplier,
		FlightID:    t.FlightID,
		FlightCode:  t.FlightCode,
	}
}

// FromTransfers converts a slice of model transfers.
func FromTransfers(transfers []*models.Transfer) []TransferResponse {
	out := make([]TransferResponse, 0, len(transfers))
	for _, t := range transfers {
		out = append(out, FromTransfer(t))
	}
	return out
}

// TransportTransferResponse extends a transfer with its linked flight's
// date and time, as shown on the transport planning grid.
type TransportTransferResponse struct {
	TransferResponse
	FlightDate string `json:"flightDate,omitempty"`
	FlightTime string `json:"flightTime,omitempty"`
}

// FromTransportTransfer converts a model transport transfer row.
func FromTransportTransfer(t *models.TransportTransfer) TransportTransferResponse {
	if t == nil {
		return TransportTransferResponse{}
	}
	resp := TransportTransferResponse{
		TransferResponse: FromTransfer(&t.Transfer),
		FlightTime:       t.FlightTime,
	}
	if t.FlightDate != nil {
		resp.FlightDate = helpers.FormatDate(*t.FlightDate)
	}
	return resp
}

// FromTransportTransfers converts a slice of model transport transfer rows.
func FromTransportTransfers(transfers []*models.TransportTransfer) []TransportTransferResponse {
	out := make([]TransportTransferResponse, 0, len(transfers))
	for _, t := range transfers {
		out = append(out, FromTransportTransfer(t))
	}
	return out
}

// TransportTransferListResponse wraps the transport planning grid rows.
type TransportTransferListResponse struct {
	Success   bool                        `json:"success"`
	Transfers []TransportTransferResponse `json:"transfers"`
}

// TransferListResponse wraps a list of transfers.
type TransferListResponse struct {
	Success   bool               `json:"success"`
	Transfers []TransferResponse `json:"transfers"`
}

// TransferDetailResponse wraps a single transfer.
type TransferDetailResponse struct {
	Success  bool             `json:"success"`
	Transfer TransferResponse `json:"transfer"`
}

// CreateTransferRequest is the POST /api/transfers body.
type CreateTransferRequest struct {
	Type        string `json:"type" binding:"required,oneof=arrival departure"`
	Date        string `json:"date" binding:"required,datetime=2006-01-02"`
	Time        string `json:"time"`
	Origin      string `json:"origin" binding:"required"`
	Destination string `json:"destination" binding:"required"`
	Capacity    *int   `json:"capacity"`
	Supplier    string `json:"supplier"`
	FlightID    *int64 `json:"flightId"`
}

// UpdateTransferRequest is the PUT /api/transfers/:id body.
type UpdateTransferRequest struct {
	Type        string `json:"type" binding:"required,oneof=arrival departure"`
	Date        string `json:"date" binding:"required,datetime=2006-01-02"`
	Time        string `json:"time"`
	Origin      string `json:"origin" binding:"required"`
	Destination string `json:"destination" binding:"required"`
	Capacity    *int   `json:"capacity"`
	Supplier    string `json:"supplier"`
	FlightID    *int64 `json:"flightId"`
}

// AssignTransferRequest attaches a group to a transfer.
type AssignTransferRequest struct {
	TransferID int64  `json:"transferId" binding:"required"`
	Passengers *int   `json:"passengers"`
	Notes      string `json:"notes"`
}

// UpdateAssignmentRequest updates an existing group-transfer assignment.
type UpdateAssignmentRequest struct {
	Passengers *int   `json:"passengers"`
	Notes      string `json:"notes"`
}

// AssignmentResponse is the wire representation of a transfer assignment.
type AssignmentResponse struct {
	ID         int64  `json:"id"`
	GroupID    int64  `json:"groupId"`
	TransferID int64  `json:"transferId"`
	Passengers *int   `json:"passengers"`
	Notes      string `json:"notes"`
}

// FromAssignment converts a model assignment to its response shape.
func FromAssignment(a *models.TransferAssignment) AssignmentResponse {
	if a == nil {
		return AssignmentResponse{}
	}
	return AssignmentResponse{
		ID:         a.ID,
		GroupID:    a.GroupID,
		TransferID: a.TransferID,
		Passengers: a.Passengers,
		Notes:      a.Notes,
	}
}

// AssignmentListResponse wraps a group's transfer assignments.
type AssignmentListResponse struct {
	Success     bool                 `json:"success"`
	Assignments []AssignmentResponse `json:"assignments"`
}

// AssignmentDetailResponse wraps a single transfer assignment.
type AssignmentDetailResponse struct {
	Success    bool               `json:"success"`
	Assignment AssignmentResponse `json:"assignment"`
}
