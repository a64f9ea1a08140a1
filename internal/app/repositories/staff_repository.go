package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/selim/groupdesk/internal/app/models"
	"github.com/selim/groupdesk/internal/pkg/apperrors"
	"github.com/selim/groupdesk/internal/pkg/dberrors"
	"github.com/selim/groupdesk/internal/pkg/helpers"
	"github.com/selim/groupdesk/internal/pkg/logger"
)

// StaffRepository handles staff members and their sub-resources: work
// assignments, accommodations and uploaded documents.
type StaffRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStaffRepository creates a new StaffRepository
func NewStaffRepository(db *pgxpool.Pool) *StaffRepository {
	return &StaffRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const staffCols = "id, first_name, last_name, COALESCE(email, ''), COALESCE(phone, ''), COALESCE(role, ''), contract_start, contract_end"

func scanStaff(row pgx.Row) (*models.Staff, error) {
	s := &models.Staff{}
	err := row.Scan(&s.ID, &s.FirstName, &s.LastName, &s.Email, &s.Phone, &s.Role,
		&s.ContractStart, &s.ContractEnd)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// GetAll retrieves all staff members ordered by name
func (r *StaffRepository) GetAll(ctx context.Context) ([]*models.Staff, error) {
	sql, args, err := r.sb.Select(staffCols).
		From("staff").
		OrderBy("last_name ASC", "first_name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all staff query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all staff query")
		return nil, fmt.Errorf("error querying staff: %w", err)
	}
	defer rows.Close()

	staff := []*models.Staff{}
	for rows.Next() {
		s, err := scanStaff(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning staff row: %w", err)
		}
		staff = append(staff, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating staff rows: %w", err)
	}

	return staff, nil
}

// GetByID retrieves a single staff member
func (r *StaffRepository) GetByID(ctx context.Context, id int64) (*models.Staff, error) {
	sql, args, err := r.sb.Select(staffCols).
		From("staff").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get staff query: %w", err)
	}

	s, err := scanStaff(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStaffNotFound
		}
		return nil, fmt.Errorf("error getting staff member: %w", err)
	}

	return s, nil
}

// Create inserts a new staff member and returns its id
func (r *StaffRepository) Create(ctx context.Context, staff *models.Staff) (int64, error) {
	sql, args, err := r.sb.Insert("staff").
		Columns("first_name", "last_name", "email", "phone", "role", "contract_start", "contract_end").
		Values(staff.FirstName, staff.LastName, helpers.StringOrNull(staff.Email),
			helpers.StringOrNull(staff.Phone), helpers.StringOrNull(staff.Role),
			staff.ContractStart, staff.ContractEnd).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create staff query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create staff query")
		return 0, fmt.Errorf("error creating staff member: %w", err)
	}

	return id, nil
}

// Update modifies an existing staff member
func (r *StaffRepository) Update(ctx context.Context, staff *models.Staff) error {
	sql, args, err := r.sb.Update("staff").
		Set("first_name", staff.FirstName).
		Set("last_name", staff.LastName).
		Set("email", helpers.StringOrNull(staff.Email)).
		Set("phone", helpers.StringOrNull(staff.Phone)).
		Set("role", helpers.StringOrNull(staff.Role)).
		Set("contract_start", staff.ContractStart).
		Set("contract_end", staff.ContractEnd).
		Where(squirrel.Eq{"id": staff.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update staff query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating staff member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStaffNotFound
	}

	return nil
}

// Delete removes a staff member together with their work assignments,
// accommodations and document rows. Stored document files are the
// caller's responsibility.
func (r *StaffRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("error beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM staff_work_assignments WHERE staff_id = $1`, id); err != nil {
		return fmt.Errorf("error deleting staff work assignments: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM staff_accommodations WHERE staff_id = $1`, id); err != nil {
		return fmt.Errorf("error deleting staff accommodations: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM staff_documents WHERE staff_id = $1`, id); err != nil {
		return fmt.Errorf("error deleting staff documents: %w", err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM staff WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting staff member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStaffNotFound
	}

	return tx.Commit(ctx)
}

// AddWorkAssignment places a staff member at a centre for a date range
func (r *StaffRepository) AddWorkAssignment(ctx context.Context, a *models.StaffWorkAssignment) (int64, error) {
	sql, args, err := r.sb.Insert("staff_work_assignments").
		Columns("staff_id", "centre_id", "start_date", "end_date").
		Values(a.StaffID, a.CentreID, a.StartDate, a.EndDate).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build add work assignment query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsConstraintViolation(err, "staff_work_assignments_staff_id_fkey") {
			return 0, apperrors.ErrStaffNotFound
		}
		if dberrors.IsConstraintViolation(err, "staff_work_assignments_centre_id_fkey") {
			return 0, apperrors.ErrCentreNotFound
		}
		return 0, fmt.Errorf("error adding work assignment: %w", err)
	}

	return id, nil
}

// GetWorkAssignments retrieves a staff member's work assignments
func (r *StaffRepository) GetWorkAssignments(ctx context.Context, staffID int64) ([]*models.StaffWorkAssignment, error) {
	sql, args, err := r.sb.Select("id", "staff_id", "centre_id", "start_date", "end_date").
		From("staff_work_assignments").
		Where(squirrel.Eq{"staff_id": staffID}).
		OrderBy("start_date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build work assignments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying work assignments: %w", err)
	}
	defer rows.Close()

	assignments := []*models.StaffWorkAssignment{}
	for rows.Next() {
		a := &models.StaffWorkAssignment{}
		if err := rows.Scan(&a.ID, &a.StaffID, &a.CentreID, &a.StartDate, &a.EndDate); err != nil {
			return nil, fmt.Errorf("error scanning work assignment row: %w", err)
		}
		assignments = append(assignments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating work assignment rows: %w", err)
	}

	return assignments, nil
}

// RemoveWorkAssignment deletes one work assignment of a staff member
func (r *StaffRepository) RemoveWorkAssignment(ctx context.Context, staffID, assignmentID int64) error {
	sql, args, err := r.sb.Delete("staff_work_assignments").
		Where(squirrel.Eq{"id": assignmentID, "staff_id": staffID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build remove work assignment query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error removing work assignment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStaffAssignmentNotFound
	}

	return nil
}

// AddAccommodation records lodging for a staff member
func (r *StaffRepository) AddAccommodation(ctx context.Context, a *models.StaffAccommodation) (int64, error) {
	sql, args, err := r.sb.Insert("staff_accommodations").
		Columns("staff_id", "centre_id", "start_date", "end_date", "lodging").
		Values(a.StaffID, a.CentreID, a.StartDate, a.EndDate, a.Lodging).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build add accommodation query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsConstraintViolation(err, "staff_accommodations_staff_id_fkey") {
			return 0, apperrors.ErrStaffNotFound
		}
		if dberrors.IsConstraintViolation(err, "staff_accommodations_centre_id_fkey") {
			return 0, apperrors.ErrCentreNotFound
		}
		return 0, fmt.Errorf("error adding accommodation: %w", err)
	}

	return id, nil
}

// GetAccommodations retrieves a staff member's accommodation records
func (r *StaffRepository) GetAccommodations(ctx context.Context, staffID int64) ([]*models.StaffAccommodation, error) {
	sql, args, err := r.sb.Select("id", "staff_id", "centre_id", "start_date", "end_date", "COALESCE(lodging, '')").
		From("staff_accommodations").
		Where(squirrel.Eq{"staff_id": staffID}).
		OrderBy("start_date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build accommodations query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying accommodations: %w", err)
	}
	defer rows.Close()

	accommodations := []*models.StaffAccommodation{}
	for rows.Next() {
		a := &models.StaffAccommodation{}
		if err := rows.Scan(&a.ID, &a.StaffID, &a.CentreID, &a.StartDate, &a.EndDate, &a.Lodging); err != nil {
			return nil, fmt.Errorf("error scanning accommodation row: %w", err)
		}
		accommodations = append(accommodations, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating accommodation rows: %w", err)
	}

	return accommodations, nil
}

// AddDocument records an uploaded staff document
func (r *StaffRepository) AddDocument(ctx context.Context, d *models.StaffDocument) (int64, error) {
	sql, args, err := r.sb.Insert("staff_documents").
		Columns("staff_id", "file_name", "file_url", "file_size", "content_type").
		Values(d.StaffID, d.FileName, d.FileURL, d.FileSize, d.ContentType).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build add document query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrStaffNotFound
		}
		logger.Error().Err(err).Int64("staffId", d.StaffID).Msg("Error recording staff document")
		return 0, fmt.Errorf("error recording staff document: %w", err)
	}

	return id, nil
}

// GetDocuments retrieves a staff member's documents
func (r *StaffRepository) GetDocuments(ctx context.Context, staffID int64) ([]*models.StaffDocument, error) {
	sql, args, err := r.sb.Select("id", "staff_id", "file_name", "file_url", "file_size", "COALESCE(content_type, '')", "uploaded_at").
		From("staff_documents").
		Where(squirrel.Eq{"staff_id": staffID}).
		OrderBy("uploaded_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build documents query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying staff documents: %w", err)
	}
	defer rows.Close()

	documents := []*models.StaffDocument{}
	for rows.Next() {
		d := &models.StaffDocument{}
		if err := rows.Scan(&d.ID, &d.StaffID, &d.FileName, &d.FileURL, &d.FileSize, &d.ContentType, &d.UploadedAt); err != nil {
			return nil, fmt.Errorf("error scanning document row: %w", err)
		}
		documents = append(documents, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating document rows: %w", err)
	}

	return documents, nil
}

// GetDocumentByID retrieves a single staff document
func (r *StaffRepository) GetDocumentByID(ctx context.Context, id int64) (*models.StaffDocument, error) {
	sql, args, err := r.sb.Select("id", "staff_id", "file_name", "file_url", "file_size", "COALESCE(content_type, '')", "uploaded_at").
		From("staff_documents").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get document query: %w", err)
	}

	d := &models.StaffDocument{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&d.ID, &d.StaffID, &d.FileName, &d.FileURL, &d.FileSize, &d.ContentType, &d.UploadedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStaffDocumentNotFound
		}
		return nil, fmt.Errorf("error getting staff document: %w", err)
	}

	return d, nil
}

// RemoveAccommodation deletes one accommodation of a staff member
func (r *StaffRepository) RemoveAccommodation(ctx context.Context, staffID, accommodationID int64) error {
	sql, args, err := r.sb.Delete("staff_accommodations").
		Where(squirrel.Eq{"id": accommodationID, "staff_id": staffID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build remove accommodation query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error removing staff accommodation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStaffAssignmentNotFound
	}

	return nil
}

// RemoveDocument deletes a document row belonging to a staff member
func (r *StaffRepository) RemoveDocument(ctx context.Context, staffID, documentID int64) error {
	sql, args, err := r.sb.Delete("staff_documents").
		Where(squirrel.Eq{"id": documentID, "staff_id": staffID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build remove document query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error removing staff document: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStaffDocumentNotFound
	}

	return nil
}
