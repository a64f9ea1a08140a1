package services

import (
	"context"

	"github.com/selim/groupdesk/internal/app/models"
	"github.com/selim/groupdesk/internal/app/repositories"
)

// AgencyService defines agency operations
type AgencyService interface {
	GetAgencies(ctx context.Context) ([]*models.Agency, error)
}

type agencyService struct {
	agencyRepo *repositories.AgencyRepository
}

// NewAgencyService creates a new AgencyService
func NewAgencyService(agencyRepo *repositories.AgencyRepository) AgencyService {
	return &agencyService{agencyRepo: agencyRepo}
}

func (s *agencyService) GetAgencies(ctx context.Context) ([]*models.Agency, error) {
	return s.agencyRepo.GetAll(ctx)
}
