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
	"github.com/selim/groupdesk/internal/pkg/logger"
)

// GroupTransferRepository handles transfer assignments for groups
type GroupTransferRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewGroupTransferRepository creates a new GroupTransferRepository
func NewGroupTransferRepository(db *pgxpool.Pool) *GroupTransferRepository {
	return &GroupTransferRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Assign puts a group onto a transfer and returns the assignment id
func (r *GroupTransferRepository) Assign(ctx context.Context, assignment *models.TransferAssignment) (int64, error) {
	sql, args, err := r.sb.Insert("group_transfers").
		Columns("group_id", "transfer_id", "passengers", "notes").
		Values(assignment.GroupID, assignment.TransferID, assignment.Passengers, assignment.Notes).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build assign transfer query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrTransferAlreadyAssigned
		}
		if dberrors.IsConstraintViolation(err, "group_transfers_group_id_fkey") {
			return 0, apperrors.ErrGroupNotFound
		}
		if dberrors.IsConstraintViolation(err, "group_transfers_transfer_id_fkey") {
			return 0, apperrors.ErrTransferNotFound
		}
		logger.Error().Err(err).Int64("groupId", assignment.GroupID).Int64("transferId", assignment.TransferID).Msg("Error assigning transfer")
		return 0, fmt.Errorf("error assigning transfer: %w", err)
	}

	return id, nil
}

// Update modifies the passenger count and notes of an assignment
func (r *GroupTransferRepository) Update(ctx context.Context, assignment *models.TransferAssignment) error {
	sql, args, err := r.sb.Update("group_transfers").
		Set("passengers", assignment.Passengers).
		Set("notes", assignment.Notes).
		Where(squirrel.Eq{"id": assignment.ID, "group_id": assignment.GroupID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update assignment query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating transfer assignment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrTransferAssignmentNotFound
	}

	return nil
}

// Remove deletes an assignment belonging to a group
func (r *GroupTransferRepository) Remove(ctx context.Context, groupID, assignmentID int64) error {
	sql, args, err := r.sb.Delete("group_transfers").
		Where(squirrel.Eq{"id": assignmentID, "group_id": groupID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build remove assignment query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error removing transfer assignment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrTransferAssignmentNotFound
	}

	return nil
}

// GetByGroup retrieves the transfer assignments of a group
func (r *GroupTransferRepository) GetByGroup(ctx context.Context, groupID int64) ([]*models.TransferAssignment, error) {
	sql, args, err := r.sb.Select("id", "group_id", "transfer_id", "passengers", "COALESCE(notes, '')").
		From("group_transfers").
		Where(squirrel.Eq{"group_id": groupID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build assignments by group query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("groupId", groupID).Msg("Error querying transfer assignments")
		return nil, fmt.Errorf("error querying transfer assignments: %w", err)
	}
	defer rows.Close()

	assignments := []*models.TransferAssignment{}
	for rows.Next() {
		a := &models.TransferAssignment{}
		if err := rows.Scan(&a.ID, &a.GroupID, &a.TransferID, &a.Passengers, &a.Notes); err != nil {
			return nil, fmt.Errorf("error scanning assignment row: %w", err)
		}
		assignments = append(assignments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assignment rows: %w", err)
	}

	return assignments, nil
}

// GetByID retrieves a single assignment
func (r *GroupTransferRepository) GetByID(ctx context.Context, id int64) (*models.TransferAssignment, error) {
	sql, args, err := r.sb.Select("id", "group_id", "transfer_id", "passengers", "COALESCE(notes, '')").
		From("group_transfers").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get assignment query: %w", err)
	}

	a := &models.TransferAssignment{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&a.ID, &a.GroupID, &a.TransferID, &a.Passengers, &a.Notes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTransferAssignmentNotFound
		}
		return nil, fmt.Errorf("error getting transfer assignment: %w", err)
	}

	return a, nil
}
