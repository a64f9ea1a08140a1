package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/selim/groupdesk/internal/app/models"
	"github.com/selim/groupdesk/internal/pkg/apperrors"
	"github.com/selim/groupdesk/internal/pkg/dberrors"
	"github.com/selim/groupdesk/internal/pkg/logger"
)

// ProgrammeRepository handles programme slot database operations
type ProgrammeRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewProgrammeRepository creates a new ProgrammeRepository
func NewProgrammeRepository(db *pgxpool.Pool) *ProgrammeRepository {
	return &ProgrammeRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a programme slot and returns its id
func (r *ProgrammeRepository) Create(ctx context.Context, slot *models.ProgrammeSlot) (int64, error) {
	sql, args, err := r.sb.Insert("programme_slots").
		Columns("group_id", "slot_date", "slot", "activity").
		Values(slot.GroupID, slot.SlotDate, slot.Slot, slot.Activity).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create programme slot query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrGroupNotFound
		}
		logger.Error().Err(err).Int64("groupId", slot.GroupID).Msg("Error creating programme slot")
		return 0, fmt.Errorf("error creating programme slot: %w", err)
	}

	return id, nil
}

// GetByGroup retrieves a group's programme slots in chronological order
func (r *ProgrammeRepository) GetByGroup(ctx context.Context, groupID int64) ([]*models.ProgrammeSlot, error) {
	sql, args, err := r.sb.Select("id", "group_id", "slot_date", "slot", "activity").
		From("programme_slots").
		Where(squirrel.Eq{"group_id": groupID}).
		OrderBy("slot_date ASC", "CASE slot WHEN 'morning' THEN 0 WHEN 'afternoon' THEN 1 ELSE 2 END").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build programme slots by group query: %w", err)
	}
	return r.querySlots(ctx, sql, args)
}

// GetByCentre retrieves the programme slots of every group placed at a centre
func (r *ProgrammeRepository) GetByCentre(ctx context.Context, centreID int64) ([]*models.ProgrammeSlot, error) {
	sql, args, err := r.sb.Select("ps.id", "ps.group_id", "ps.slot_date", "ps.slot", "ps.activity").
		From("programme_slots ps").
		Join("groups g ON g.id = ps.group_id").
		Where(squirrel.Eq{"g.centre_id": centreID}).
		OrderBy("ps.slot_date ASC", "ps.group_id ASC",
			"CASE ps.slot WHEN 'morning' THEN 0 WHEN 'afternoon' THEN 1 ELSE 2 END").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build programme slots by centre query: %w", err)
	}
	return r.querySlots(ctx, sql, args)
}

func (r *ProgrammeRepository) querySlots(ctx context.Context, sql string, args []interface{}) ([]*models.ProgrammeSlot, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing programme slots query")
		return nil, fmt.Errorf("error querying programme slots: %w", err)
	}
	defer rows.Close()

	slots := []*models.ProgrammeSlot{}
	for rows.Next() {
		slot := &models.ProgrammeSlot{}
		if err := rows.Scan(&slot.ID, &slot.GroupID, &slot.SlotDate, &slot.Slot, &slot.Activity); err != nil {
			return nil, fmt.Errorf("error scanning programme slot row: %w", err)
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating programme slot rows: %w", err)
	}

	return slots, nil
}

// Delete removes a programme slot
func (r *ProgrammeRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("programme_slots").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete programme slot query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting programme slot: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrProgrammeSlotNotFound
	}

	return nil
}
