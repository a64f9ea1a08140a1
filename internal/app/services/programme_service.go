package services

import (
	"context"

	"github.com/selim/groupdesk/internal/app/models"
	"github.com/selim/groupdesk/internal/app/models/dto"
	"github.com/selim/groupdesk/internal/app/repositories"
	"github.com/selim/groupdesk/internal/pkg/apperrors"
	"github.com/selim/groupdesk/internal/pkg/helpers"
)

// ProgrammeService defines programme slot operations
type ProgrammeService interface {
	CreateSlot(ctx context.Context, req *dto.CreateProgrammeSlotRequest) (*models.ProgrammeSlot, error)
	GetGroupSlots(ctx context.Context, groupID int64) ([]*models.ProgrammeSlot, error)
	GetCentreSlots(ctx context.Context, centreID int64) ([]*models.ProgrammeSlot, error)
	DeleteSlot(ctx context.Context, id int64) error
}

type programmeService struct {
	programmeRepo *repositories.ProgrammeRepository
	groupRepo     *repositories.GroupRepository
	centreRepo    *repositories.CentreRepository
}

// NewProgrammeService creates a new ProgrammeService
func NewProgrammeService(programmeRepo *repositories.ProgrammeRepository, groupRepo *repositories.GroupRepository, centreRepo *repositories.CentreRepository) ProgrammeService {
	return &programmeService{
		programmeRepo: programmeRepo,
		groupRepo:     groupRepo,
		centreRepo:    centreRepo,
	}
}

func (s *programmeService) CreateSlot(ctx context.Context, req *dto.CreateProgrammeSlotRequest) (*models.ProgrammeSlot, error) {
	date, err := helpers.ParseDate(req.Date)
	if err != nil {
		return nil, apperrors.NewValidationError("date must be a valid YYYY-MM-DD date")
	}

	slot := &models.ProgrammeSlot{
		GroupID:  req.GroupID,
		SlotDate: date,
		Slot:     models.ProgrammeSlotTime(req.Slot),
		Activity: req.Activity,
	}

	id, err := s.programmeRepo.Create(ctx, slot)
	if err != nil {
		return nil, err
	}
	slot.ID = id

	return slot, nil
}

func (s *programmeService) GetGroupSlots(ctx context.Context, groupID int64) ([]*models.ProgrammeSlot, error) {
	if _, err := s.groupRepo.GetByID(ctx, groupID); err != nil {
		return nil, err
	}
	return s.programmeRepo.GetByGroup(ctx, groupID)
}

func (s *programmeService) GetCentreSlots(ctx context.Context, centreID int64) ([]*models.ProgrammeSlot, error) {
	if _, err := s.centreRepo.GetByID(ctx, centreID); err != nil {
		return nil, err
	}
	return s.programmeRepo.GetByCentre(ctx, centreID)
}

func (s *programmeService) DeleteSlot(ctx context.Context, id int64) error {
	return s.programmeRepo.Delete(ctx, id)
}
