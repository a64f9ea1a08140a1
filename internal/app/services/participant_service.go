package services

import (
	"context"
	"time"

	"github.com/selim/groupdesk/internal/app/models"
	"github.com/selim/groupdesk/internal/app/models/dto"
	"github.com/selim/groupdesk/internal/app/repositories"
	"github.com/selim/groupdesk/internal/pkg/apperrors"
	"github.com/selim/groupdesk/internal/pkg/helpers"
)

// ParticipantService defines participant operations
type ParticipantService interface {
	GetParticipants(ctx context.Context) ([]*models.Participant, error)
	GetParticipant(ctx context.Context, id int64) (*models.Participant, error)
	GetGroupParticipants(ctx context.Context, groupID int64) ([]*models.Participant, error)
	CreateParticipant(ctx context.Context, req *dto.CreateParticipantRequest) (*models.Participant, error)
	UpdateParticipant(ctx context.Context, id int64, req *dto.UpdateParticipantRequest) (*models.Participant, error)
	DeleteParticipant(ctx context.Context, id int64) error
}

type participantService struct {
	participantRepo *repositories.ParticipantRepository
	groupRepo       *repositories.GroupRepository
}

// NewParticipantService creates a new ParticipantService
func NewParticipantService(participantRepo *repositories.ParticipantRepository, groupRepo *repositories.GroupRepository) ParticipantService {
	return &participantService{
		participantRepo: participantRepo,
		groupRepo:       groupRepo,
	}
}

func (s *participantService) GetParticipants(ctx context.Context) ([]*models.Participant, error) {
	return s.participantRepo.GetAll(ctx)
}

func (s *participantService) GetParticipant(ctx context.Context, id int64) (*models.Participant, error) {
	return s.participantRepo.GetByID(ctx, id)
}

func (s *participantService) GetGroupParticipants(ctx context.Context, groupID int64) ([]*models.Participant, error) {
	if _, err := s.groupRepo.GetByID(ctx, groupID); err != nil {
		return nil, err
	}
	return s.participantRepo.GetByGroup(ctx, groupID)
}

func parseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := helpers.ParseDate(s)
	if err != nil {
		return nil, apperrors.NewValidationError("dateOfBirth must be a valid YYYY-MM-DD date")
	}
	return &t, nil
}

func (s *participantService) CreateParticipant(ctx context.Context, req *dto.CreateParticipantRequest) (*models.Participant, error) {
	dob, err := parseOptionalDate(req.DateOfBirth)
	if err != nil {
		return nil, err
	}

	participant := &models.Participant{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Type:        models.ParticipantType(req.Type),
		GroupID:     req.GroupID,
		TestScore:   req.TestScore,
		DateOfBirth: dob,
	}

	id, err := s.participantRepo.Create(ctx, participant)
	if err != nil {
		return nil, err
	}
	participant.ID = id

	return participant, nil
}

func (s *participantService) UpdateParticipant(ctx context.Context, id int64, req *dto.UpdateParticipantRequest) (*models.Participant, error) {
	dob, err := parseOptionalDate(req.DateOfBirth)
	if err != nil {
		return nil, err
	}

	participant := &models.Participant{
		ID:          id,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Type:        models.ParticipantType(req.Type),
		GroupID:     req.GroupID,
		TestScore:   req.TestScore,
		DateOfBirth: dob,
	}

	if err := s.participantRepo.Update(ctx, participant); err != nil {
		return nil, err
	}

	return participant, nil
}

func (s *participantService) DeleteParticipant(ctx context.Context, id int64) error {
	return s.participantRepo.Delete(ctx, id)
}
