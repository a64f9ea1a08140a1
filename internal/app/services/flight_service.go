package services

import (
	"context"

	"github.com/selim/groupdesk/internal/app/models"
	"github.com/selim/groupdesk/internal/app/models/dto"
	"github.com/selim/groupdesk/internal/app/repositories"
	"github.com/selim/groupdesk/internal/pkg/apperrors"
	"github.com/selim/groupdesk/internal/pkg/helpers"
)

// FlightService defines the flight operations
type FlightService interface {
	GetFlights(ctx context.Context) ([]*models.Flight, error)
	GetFlight(ctx context.Context, id int64) (*models.Flight, error)
	CreateFlight(ctx context.Context, req *dto.CreateFlightRequest) (*models.Flight, error)
	UpdateFlight(ctx context.Context, id int64, req *dto.UpdateFlightRequest) (*models.Flight, error)
	GetFlightGroups(ctx context.Context, flightID int64) ([]*models.Group, error)
}

type flightService struct {
	flightRepo      *repositories.FlightRepository
	groupFlightRepo *repositories.GroupFlightRepository
}

// NewFlightService creates a new FlightService
func NewFlightService(flightRepo *repositories.FlightRepository, groupFlightRepo *repositories.GroupFlightRepository) FlightService {
	return &flightService{
		flightRepo:      flightRepo,
		groupFlightRepo: groupFlightRepo,
	}
}

func (s *flightService) GetFlights(ctx context.Context) ([]*models.Flight, error) {
	return s.flightRepo.GetAll(ctx)
}

func (s *flightService) GetFlight(ctx context.Context, id int64) (*models.Flight, error) {
	return s.flightRepo.GetByID(ctx, id)
}

func (s *flightService) CreateFlight(ctx context.Context, req *dto.CreateFlightRequest) (*models.Flight, error) {
	date, err := helpers.ParseDate(req.Date)
	if err != nil {
		return nil, apperrors.NewValidationError("date must be a valid YYYY-MM-DD date")
	}

	flight := &models.Flight{
		Code:       req.Code,
		Direction:  models.FlightDirection(req.Type),
		FlightDate: date,
		FlightTime: req.Time,
	}

	id, err := s.flightRepo.Create(ctx, flight)
	if err != nil {
		return nil, err
	}
	flight.ID = id

	return flight, nil
}

func (s *flightService) UpdateFlight(ctx context.Context, id int64, req *dto.UpdateFlightRequest) (*models.Flight, error) {
	date, err := helpers.ParseDate(req.Date)
	if err != nil {
		return nil, apperrors.NewValidationError("date must be a valid YYYY-MM-DD date")
	}

	flight := &models.Flight{
		ID:         id,
		Code:       req.Code,
		Direction:  models.FlightDirection(req.Type),
		FlightDate: date,
		FlightTime: req.Time,
	}

	if err := s.flightRepo.Update(ctx, flight); err != nil {
		return nil, err
	}

	return flight, nil
}

func (s *flightService) GetFlightGroups(ctx context.Context, flightID int64) ([]*models.Group, error) {
	if _, err := s.flightRepo.GetByID(ctx, flightID); err != nil {
		return nil, err
	}
	return s.groupFlightRepo.GetGroupsByFlight(ctx, flightID)
}
