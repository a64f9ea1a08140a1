package services

import (
	"context"

	"github.com/selim/groupdesk/internal/app/models"
	"github.com/selim/groupdesk/internal/app/models/dto"
	"github.com/selim/groupdesk/internal/app/repositories"
	"github.com/selim/groupdesk/internal/pkg/apperrors"
	"github.com/selim/groupdesk/internal/pkg/helpers"
)

// TransferService defines transfer and assignment operations
type TransferService interface {
	GetTransfers(ctx context.Context) ([]*models.Transfer, error)
	GetTransportTransfers(ctx context.Context) ([]*models.TransportTransfer, error)
	GetTransfer(ctx context.Context, id int64) (*models.Transfer, error)
	CreateTransfer(ctx context.Context, req *dto.CreateTransferRequest) (*models.Transfer, error)
	UpdateTransfer(ctx context.Context, id int64, req *dto.UpdateTransferRequest) (*models.Transfer, error)
	DeleteTransfer(ctx context.Context, id int64) error
	AssignGroup(ctx context.Context, groupID int64, req *dto.AssignTransferRequest) (*models.TransferAssignment, error)
	UpdateAssignment(ctx context.Context, groupID, assignmentID int64, req *dto.UpdateAssignmentRequest) (*models.TransferAssignment, error)
	RemoveAssignment(ctx context.Context, groupID, assignmentID int64) error
	GetGroupAssignments(ctx context.Context, groupID int64) ([]*models.TransferAssignment, error)
}

type transferService struct {
	transferRepo      *repositories.TransferRepository
	groupTransferRepo *repositories.GroupTransferRepository
	groupRepo         *repositories.GroupRepository
}

// NewTransferService creates a new TransferService
func NewTransferService(transferRepo *repositories.TransferRepository, groupTransferRepo *repositories.GroupTransferRepository, groupRepo *repositories.GroupRepository) TransferService {
	return &transferService{
		transferRepo:      transferRepo,
		groupTransferRepo: groupTransferRepo,
		groupRepo:         groupRepo,
	}
}

func (s *transferService) GetTransfers(ctx context.Context) ([]*models.Transfer, error) {
	return s.transferRepo.GetAll(ctx)
}

func (s *transferService) GetTransportTransfers(ctx context.Context) ([]*models.TransportTransfer, error) {
	return s.transferRepo.GetTransportTransfers(ctx)
}

func (s *transferService) GetTransfer(ctx context.Context, id int64) (*models.Transfer, error) {
	return s.transferRepo.GetByID(ctx, id)
}

func transferFromRequest(direction, dateStr, timeStr, origin, destination, supplier string, capacity *int, flightID *int64) (*models.Transfer, error) {
	date, err := helpers.ParseDate(dateStr)
	if err != nil {
		return nil, apperrors.NewValidationError("date must be a valid YYYY-MM-DD date")
	}
	return &models.Transfer{
		Direction:    models.FlightDirection(direction),
		TransferDate: date,
		TransferTime: timeStr,
		Origin:       origin,
		Destination:  destination,
		Capacity:     capacity,
		Supplier:     supplier,
		FlightID:     flightID,
	}, nil
}

func (s *transferService) CreateTransfer(ctx context.Context, req *dto.CreateTransferRequest) (*models.Transfer, error) {
	transfer, err := transferFromRequest(req.Type, req.Date, req.Time, req.Origin, req.Destination, req.Supplier, req.Capacity, req.FlightID)
	if err != nil {
		return nil, err
	}

	id, err := s.transferRepo.Create(ctx, transfer)
	if err != nil {
		return nil, err
	}

	return s.transferRepo.GetByID(ctx, id)
}

func (s *transferService) UpdateTransfer(ctx context.Context, id int64, req *dto.UpdateTransferRequest) (*models.Transfer, error) {
	transfer, err := transferFromRequest(req.Type, req.Date, req.Time, req.Origin, req.Destination, req.Supplier, req.Capacity, req.FlightID)
	if err != nil {
		return nil, err
	}
	transfer.ID = id

	if err := s.transferRepo.Update(ctx, transfer); err != nil {
		return nil, err
	}

	return s.transferRepo.GetByID(ctx, id)
}

func (s *transferService) DeleteTransfer(ctx context.Context, id int64) error {
	return s.transferRepo.Delete(ctx, id)
}

func (s *transferService) AssignGroup(ctx context.Context, groupID int64, req *dto.AssignTransferRequest) (*models.TransferAssignment, error) {
	assignment := &models.TransferAssignment{
		GroupID:    groupID,
		TransferID: req.TransferID,
		Passengers: req.Passengers,
		Notes:      req.Notes,
	}

	id, err := s.groupTransferRepo.Assign(ctx, assignment)
	if err != nil {
		return nil, err
	}
	assignment.ID = id

	return assignment, nil
}

func (s *transferService) UpdateAssignment(ctx context.Context, groupID, assignmentID int64, req *dto.UpdateAssignmentRequest) (*models.TransferAssignment, error) {
	assignment := &models.TransferAssignment{
		ID:         assignmentID,
		GroupID:    groupID,
		Passengers: req.Passengers,
		Notes:      req.Notes,
	}

	if err := s.groupTransferRepo.Update(ctx, assignment); err != nil {
		return nil, err
	}

	return s.groupTransferRepo.GetByID(ctx, assignmentID)
}

func (s *transferService) RemoveAssignment(ctx context.Context, groupID, assignmentID int64) error {
	return s.groupTransferRepo.Remove(ctx, groupID, assignmentID)
}

func (s *transferService) GetGroupAssignments(ctx context.Context, groupID int64) ([]*models.TransferAssignment, error) {
	if _, err := s.groupRepo.GetByID(ctx, groupID); err != nil {
		return nil, err
	}
	return s.groupTransferRepo.GetByGroup(ctx, groupID)
}
