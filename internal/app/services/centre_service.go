package services

import (
	"context"
	"time"

	"github.com/selim/groupdesk/internal/app/models"
	"github.com/selim/groupdesk/internal/app/models/dto"
	"github.com/selim/groupdesk/internal/app/repositories"
)

// CentreService defines centre operations including the occupancy view
type CentreService interface {
	GetCentres(ctx context.Context) ([]*models.Centre, error)
	GetCentre(ctx context.Context, id int64) (*models.Centre, error)
	CreateCentre(ctx context.Context, req *dto.CreateCentreRequest) (*models.Centre, error)
	UpdateCentre(ctx context.Context, id int64, req *dto.UpdateCentreRequest) (*models.Centre, error)
	DeleteCentre(ctx context.Context, id int64) error
	GetOccupancy(ctx context.Context, windowDays int) (map[string]map[string]dto.OccupancyTally, error)
}

type centreService struct {
	centreRepo *repositories.CentreRepository
	groupRepo  *repositories.GroupRepository
}

// NewCentreService creates a new CentreService
func NewCentreService(centreRepo *repositories.CentreRepository, groupRepo *repositories.GroupRepository) CentreService {
	return &centreService{
		centreRepo: centreRepo,
		groupRepo:  groupRepo,
	}
}

func (s *centreService) GetCentres(ctx context.Context) ([]*models.Centre, error) {
	return s.centreRepo.GetAll(ctx)
}

func (s *centreService) GetCentre(ctx context.Context, id int64) (*models.Centre, error) {
	return s.centreRepo.GetByID(ctx, id)
}

func (s *centreService) CreateCentre(ctx context.Context, req *dto.CreateCentreRequest) (*models.Centre, error) {
	centre := &models.Centre{
		Name:    req.Name,
		Address: req.Address,
	}

	id, err := s.centreRepo.Create(ctx, centre)
	if err != nil {
		return nil, err
	}
	centre.ID = id

	return centre, nil
}

func (s *centreService) UpdateCentre(ctx context.Context, id int64, req *dto.UpdateCentreRequest) (*models.Centre, error) {
	centre := &models.Centre{
		ID:      id,
		Name:    req.Name,
		Address: req.Address,
	}

	if err := s.centreRepo.Update(ctx, centre); err != nil {
		return nil, err
	}

	return centre, nil
}

func (s *centreService) DeleteCentre(ctx context.Context, id int64) error {
	return s.centreRepo.Delete(ctx, id)
}

// GetOccupancy aggregates the per-centre per-day headcount over a trailing
// window. windowDays <= 0 falls back to the default window.
func (s *centreService) GetOccupancy(ctx context.Context, windowDays int) (map[string]map[string]dto.OccupancyTally, error) {
	if windowDays <= 0 {
		windowDays = DefaultOccupancyWindowDays
	}

	rows, err := s.groupRepo.GetCentreOccupancyRows(ctx)
	if err != nil {
		return nil, err
	}

	return AggregateOccupancy(rows, time.Now(), windowDays), nil
}
