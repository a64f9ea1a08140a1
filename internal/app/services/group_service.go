package services

import (
	"context"
	"time"

	"github.com/selim/groupdesk/internal/app/models"
	"github.com/selim/groupdesk/internal/app/models/dto"
	"github.com/selim/groupdesk/internal/app/repositories"
	"github.com/selim/groupdesk/internal/pkg/apperrors"
	"github.com/selim/groupdesk/internal/pkg/helpers"
	"github.com/selim/groupdesk/internal/pkg/logger"
)

// GroupService defines the group operations
type GroupService interface {
	GetGroups(ctx context.Context) ([]*models.Group, error)
	GetSalesGrid(ctx context.Context) ([]*models.Group, error)
	GetGroup(ctx context.Context, id int64) (*models.Group, error)
	CreateGroup(ctx context.Context, req *dto.CreateGroupRequest) (*models.Group, error)
	UpdateGroup(ctx context.Context, id int64, req *dto.UpdateGroupRequest) (*models.Group, error)
	DeleteGroup(ctx context.Context, id int64) error
	LinkFlight(ctx context.Context, groupID, flightID int64) error
	UnlinkFlight(ctx context.Context, groupID, flightID int64) error
	GetGroupFlights(ctx context.Context, groupID int64) ([]*models.Flight, error)
	GetFlightDateMismatches(ctx context.Context) ([]dto.DateMismatchResponse, error)
	ImportGroups(ctx context.Context, req *dto.ImportGroupsRequest) (*dto.ImportGroupsResponse, error)
}

type groupService struct {
	groupRepo       *repositories.GroupRepository
	groupFlightRepo *repositories.GroupFlightRepository
}

// NewGroupService creates a new GroupService
func NewGroupService(groupRepo *repositories.GroupRepository, groupFlightRepo *repositories.GroupFlightRepository) GroupService {
	return &groupService{
		groupRepo:       groupRepo,
		groupFlightRepo: groupFlightRepo,
	}
}

func (s *groupService) GetGroups(ctx context.Context) ([]*models.Group, error) {
	return s.groupRepo.GetAll(ctx)
}

func (s *groupService) GetSalesGrid(ctx context.Context) ([]*models.Group, error) {
	return s.groupRepo.GetSalesGrid(ctx)
}

func (s *groupService) GetGroup(ctx context.Context, id int64) (*models.Group, error) {
	return s.groupRepo.GetByID(ctx, id)
}

// parseStayDates parses and orders the stay boundary dates.
func parseStayDates(arrivalStr, departureStr string) (time.Time, time.Time, error) {
	arrival, err := helpers.ParseDate(arrivalStr)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.NewValidationError("arrivalDate must be a valid YYYY-MM-DD date")
	}
	departure, err := helpers.ParseDate(departureStr)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.NewValidationError("departureDate must be a valid YYYY-MM-DD date")
	}
	if departure.Before(arrival) {
		return time.Time{}, time.Time{}, apperrors.NewValidationError("departureDate cannot be before arrivalDate")
	}
	return arrival, departure, nil
}

func (s *groupService) CreateGroup(ctx context.Context, req *dto.CreateGroupRequest) (*models.Group, error) {
	arrival, departure, err := parseStayDates(req.ArrivalDate, req.DepartureDate)
	if err != nil {
		return nil, err
	}

	group := &models.Group{
		Name:              req.Name,
		CentreID:          req.CentreID,
		ArrivalDate:       arrival,
		DepartureDate:     departure,
		StudentsAllocated: req.StudentsAllocated,
		LeadersAllocated:  req.LeadersAllocated,
		StudentsBooked:    req.StudentsBooked,
		LeadersBooked:     req.LeadersBooked,
	}

	id, err := s.groupRepo.Create(ctx, group, req.AgencyName)
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("groupId", id).Str("name", req.Name).Msg("Group created")
	return s.groupRepo.GetByID(ctx, id)
}

func (s *groupService) UpdateGroup(ctx context.Context, id int64, req *dto.UpdateGroupRequest) (*models.Group, error) {
	arrival, departure, err := parseStayDates(req.ArrivalDate, req.DepartureDate)
	if err != nil {
		return nil, err
	}

	existing, err := s.groupRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	group := &models.Group{
		ID:                id,
		Name:              req.Name,
		AgencyID:          existing.AgencyID,
		CentreID:          req.CentreID,
		ArrivalDate:       arrival,
		DepartureDate:     departure,
		StudentsAllocated: req.StudentsAllocated,
		LeadersAllocated:  req.LeadersAllocated,
		StudentsBooked:    req.StudentsBooked,
		LeadersBooked:     req.LeadersBooked,
	}

	if err := s.groupRepo.Update(ctx, group, req.AgencyName); err != nil {
		return nil, err
	}

	return s.groupRepo.GetByID(ctx, id)
}

func (s *groupService) DeleteGroup(ctx context.Context, id int64) error {
	if err := s.groupRepo.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info().Int64("groupId", id).Msg("Group deleted")
	return nil
}

func (s *groupService) LinkFlight(ctx context.Context, groupID, flightID int64) error {
	return s.groupFlightRepo.Add(ctx, groupID, flightID)
}

func (s *groupService) UnlinkFlight(ctx context.Context, groupID, flightID int64) error {
	return s.groupFlightRepo.Remove(ctx, groupID, flightID)
}

func (s *groupService) GetGroupFlights(ctx context.Context, groupID int64) ([]*models.Flight, error) {
	if _, err := s.groupRepo.GetByID(ctx, groupID); err != nil {
		return nil, err
	}
	return s.groupFlightRepo.GetFlightsByGroup(ctx, groupID)
}

func (s *groupService) GetFlightDateMismatches(ctx context.Context) ([]dto.DateMismatchResponse, error) {
	groups, err := s.groupRepo.GetGroupsWithFlights(ctx)
	if err != nil {
		return nil, err
	}
	return CheckFlightDates(groups), nil
}

// ImportGroups validates the batch, imports the valid rows in one
// transaction and reports per-row outcomes. Invalid rows are skipped,
// name collisions are recorded as row errors; both leave the rest of
// the batch untouched.
func (s *groupService) ImportGroups(ctx context.Context, req *dto.ImportGroupsRequest) (*dto.ImportGroupsResponse, error) {
	valid, validRows, rowErrors := validateImportBatch(req.Groups)

	imported, duplicates, err := s.groupRepo.ImportGroups(ctx, valid)
	if err != nil {
		return nil, err
	}

	conflicts := mapDuplicateRows(req.Groups, validRows, duplicates)
	result := &dto.ImportGroupsResponse{
		Success:                   true,
		SuccessfullyImportedCount: imported,
		SkippedCount:              len(rowErrors),
		ErrorCount:                len(conflicts),
		Errors:                    append(rowErrors, conflicts...),
	}

	logger.Info().
		Int("imported", result.SuccessfullyImportedCount).
		Int("skipped", result.SkippedCount).
		Int("conflicts", result.ErrorCount).
		Msg("Group import finished")

	return result, nil
}
