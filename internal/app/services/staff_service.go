package services

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/selim/groupdesk/internal/app/models"
	"github.com/selim/groupdesk/internal/app/models/dto"
	"github.com/selim/groupdesk/internal/app/repositories"
	"github.com/selim/groupdesk/internal/pkg/apperrors"
	"github.com/selim/groupdesk/internal/pkg/filestorage"
	"github.com/selim/groupdesk/internal/pkg/helpers"
	"github.com/selim/groupdesk/internal/pkg/logger"
)

// StaffService defines staff operations including work assignments,
// accommodations and document uploads.
type StaffService interface {
	GetStaff(ctx context.Context) ([]*models.Staff, error)
	GetStaffMember(ctx context.Context, id int64) (*models.Staff, error)
	CreateStaffMember(ctx context.Context, req *dto.CreateStaffRequest) (*models.Staff, error)
	UpdateStaffMember(ctx context.Context, id int64, req *dto.UpdateStaffRequest) (*models.Staff, error)
	DeleteStaffMember(ctx context.Context, id int64) error
	AddWorkAssignment(ctx context.Context, staffID int64, req *dto.CreateWorkAssignmentRequest) (*models.StaffWorkAssignment, error)
	GetWorkAssignments(ctx context.Context, staffID int64) ([]*models.StaffWorkAssignment, error)
	RemoveWorkAssignment(ctx context.Context, staffID, assignmentID int64) error
	AddAccommodation(ctx context.Context, staffID int64, req *dto.CreateAccommodationRequest) (*models.StaffAccommodation, error)
	GetAccommodations(ctx context.Context, staffID int64) ([]*models.StaffAccommodation, error)
	RemoveAccommodation(ctx context.Context, staffID, accommodationID int64) error
	UploadDocument(ctx context.Context, staffID int64, fileHeader *multipart.FileHeader) (*models.StaffDocument, error)
	GetDocuments(ctx context.Context, staffID int64) ([]*models.StaffDocument, error)
	RemoveDocument(ctx context.Context, staffID, documentID int64) error
}

type staffService struct {
	staffRepo *repositories.StaffRepository
	storage   filestorage.Storage
}

// NewStaffService creates a new StaffService
func NewStaffService(staffRepo *repositories.StaffRepository, storage filestorage.Storage) StaffService {
	return &staffService{
		staffRepo: staffRepo,
		storage:   storage,
	}
}

func (s *staffService) GetStaff(ctx context.Context) ([]*models.Staff, error) {
	return s.staffRepo.GetAll(ctx)
}

func (s *staffService) GetStaffMember(ctx context.Context, id int64) (*models.Staff, error) {
	return s.staffRepo.GetByID(ctx, id)
}

func parseContractDates(startStr, endStr string) (*time.Time, *time.Time, error) {
	var start, end *time.Time
	if startStr != "" {
		t, err := helpers.ParseDate(startStr)
		if err != nil {
			return nil, nil, apperrors.NewValidationError("contractStart must be a valid YYYY-MM-DD date")
		}
		start = &t
	}
	if endStr != "" {
		t, err := helpers.ParseDate(endStr)
		if err != nil {
			return nil, nil, apperrors.NewValidationError("contractEnd must be a valid YYYY-MM-DD date")
		}
		end = &t
	}
	return start, end, nil
}

func (s *staffService) CreateStaffMember(ctx context.Context, req *dto.CreateStaffRequest) (*models.Staff, error) {
	start, end, err := parseContractDates(req.ContractStart, req.ContractEnd)
	if err != nil {
		return nil, err
	}

	staff := &models.Staff{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Phone:         req.Phone,
		Role:          req.Role,
		ContractStart: start,
		ContractEnd:   end,
	}

	id, err := s.staffRepo.Create(ctx, staff)
	if err != nil {
		return nil, err
	}
	staff.ID = id

	return staff, nil
}

func (s *staffService) UpdateStaffMember(ctx context.Context, id int64, req *dto.UpdateStaffRequest) (*models.Staff, error) {
	start, end, err := parseContractDates(req.ContractStart, req.ContractEnd)
	if err != nil {
		return nil, err
	}

	staff := &models.Staff{
		ID:            id,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Phone:         req.Phone,
		Role:          req.Role,
		ContractStart: start,
		ContractEnd:   end,
	}

	if err := s.staffRepo.Update(ctx, staff); err != nil {
		return nil, err
	}

	return staff, nil
}

// DeleteStaffMember removes the staff member and all their dependent rows,
// then cleans up any stored document files best-effort.
func (s *staffService) DeleteStaffMember(ctx context.Context, id int64) error {
	documents, err := s.staffRepo.GetDocuments(ctx, id)
	if err != nil {
		return err
	}

	if err := s.staffRepo.Delete(ctx, id); err != nil {
		return err
	}

	for _, document := range documents {
		if err := s.storage.DeleteFile(document.FileURL); err != nil {
			logger.Warn().Err(err).Str("fileUrl", document.FileURL).Msg("Could not delete stored document file")
		}
	}

	return nil
}

func (s *staffService) AddWorkAssignment(ctx context.Context, staffID int64, req *dto.CreateWorkAssignmentRequest) (*models.StaffWorkAssignment, error) {
	start, err := helpers.ParseDate(req.StartDate)
	if err != nil {
		return nil, apperrors.NewValidationError("startDate must be a valid YYYY-MM-DD date")
	}
	end, err := helpers.ParseDate(req.EndDate)
	if err != nil {
		return nil, apperrors.NewValidationError("endDate must be a valid YYYY-MM-DD date")
	}
	if end.Before(start) {
		return nil, apperrors.NewValidationError("endDate cannot be before startDate")
	}

	assignment := &models.StaffWorkAssignment{
		StaffID:   staffID,
		CentreID:  req.CentreID,
		StartDate: start,
		EndDate:   end,
	}

	id, err := s.staffRepo.AddWorkAssignment(ctx, assignment)
	if err != nil {
		return nil, err
	}
	assignment.ID = id

	return assignment, nil
}

func (s *staffService) GetWorkAssignments(ctx context.Context, staffID int64) ([]*models.StaffWorkAssignment, error) {
	if _, err := s.staffRepo.GetByID(ctx, staffID); err != nil {
		return nil, err
	}
	return s.staffRepo.GetWorkAssignments(ctx, staffID)
}

func (s *staffService) RemoveWorkAssignment(ctx context.Context, staffID, assignmentID int64) error {
	return s.staffRepo.RemoveWorkAssignment(ctx, staffID, assignmentID)
}

func (s *staffService) AddAccommodation(ctx context.Context, staffID int64, req *dto.CreateAccommodationRequest) (*models.StaffAccommodation, error) {
	start, err := helpers.ParseDate(req.StartDate)
	if err != nil {
		return nil, apperrors.NewValidationError("startDate must be a valid YYYY-MM-DD date")
	}
	end, err := helpers.ParseDate(req.EndDate)
	if err != nil {
		return nil, apperrors.NewValidationError("endDate must be a valid YYYY-MM-DD date")
	}
	if end.Before(start) {
		return nil, apperrors.NewValidationError("endDate cannot be before startDate")
	}

	accommodation := &models.StaffAccommodation{
		StaffID:   staffID,
		CentreID:  req.CentreID,
		StartDate: start,
		EndDate:   end,
		Lodging:   req.Lodging,
	}

	id, err := s.staffRepo.AddAccommodation(ctx, accommodation)
	if err != nil {
		return nil, err
	}
	accommodation.ID = id

	return accommodation, nil
}

func (s *staffService) GetAccommodations(ctx context.Context, staffID int64) ([]*models.StaffAccommodation, error) {
	if _, err := s.staffRepo.GetByID(ctx, staffID); err != nil {
		return nil, err
	}
	return s.staffRepo.GetAccommodations(ctx, staffID)
}

func (s *staffService) RemoveAccommodation(ctx context.Context, staffID, accommodationID int64) error {
	return s.staffRepo.RemoveAccommodation(ctx, staffID, accommodationID)
}

// UploadDocument stores the file first, then records it. A failed insert
// cleans the stored file back up.
func (s *staffService) UploadDocument(ctx context.Context, staffID int64, fileHeader *multipart.FileHeader) (*models.StaffDocument, error) {
	if _, err := s.staffRepo.GetByID(ctx, staffID); err != nil {
		return nil, err
	}

	fileURL, err := s.storage.SaveFileWithPath(fileHeader, "staff-documents")
	if err != nil {
		return nil, err
	}

	document := &models.StaffDocument{
		StaffID:     staffID,
		FileName:    fileHeader.Filename,
		FileURL:     fileURL,
		FileSize:    fileHeader.Size,
		ContentType: fileHeader.Header.Get("Content-Type"),
	}

	id, err := s.staffRepo.AddDocument(ctx, document)
	if err != nil {
		if delErr := s.storage.DeleteFile(fileURL); delErr != nil {
			logger.Warn().Err(delErr).Str("fileUrl", fileURL).Msg("Could not clean up stored file after failed insert")
		}
		return nil, err
	}
	document.ID = id
	document.UploadedAt = time.Now()

	return document, nil
}

func (s *staffService) GetDocuments(ctx context.Context, staffID int64) ([]*models.StaffDocument, error) {
	if _, err := s.staffRepo.GetByID(ctx, staffID); err != nil {
		return nil, err
	}
	return s.staffRepo.GetDocuments(ctx, staffID)
}

// RemoveDocument deletes the row first and the stored file afterwards;
// a leftover file is logged, not surfaced.
func (s *staffService) RemoveDocument(ctx context.Context, staffID, documentID int64) error {
	document, err := s.staffRepo.GetDocumentByID(ctx, documentID)
	if err != nil {
		return err
	}
	if document.StaffID != staffID {
		return apperrors.ErrStaffDocumentNotFound
	}

	if err := s.staffRepo.RemoveDocument(ctx, staffID, documentID); err != nil {
		return err
	}

	if err := s.storage.DeleteFile(document.FileURL); err != nil {
		logger.Warn().Err(err).Str("fileUrl", document.FileURL).Msg("Could not delete stored document file")
	}

	return nil
}
