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

// ParticipantRepository handles participant database operations
type ParticipantRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewParticipantRepository creates a new ParticipantRepository
func NewParticipantRepository(db *pgxpool.Pool) *ParticipantRepository {
	return &ParticipantRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const participantCols = "id, first_name, last_name, type, group_id, test_score, date_of_birth"

func scanParticipant(row pgx.Row) (*models.Participant, error) {
	p := &models.Participant{}
	err := row.Scan(&p.ID, &p.FirstName, &p.LastName, &p.Type, &p.GroupID, &p.TestScore, &p.DateOfBirth)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// GetAll retrieves all participants ordered by name
func (r *ParticipantRepository) GetAll(ctx context.Context) ([]*models.Participant, error) {
	sql, args, err := r.sb.Select(participantCols).
		From("participants").
		OrderBy("last_name ASC", "first_name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all participants query: %w", err)
	}
	return r.queryParticipants(ctx, sql, args)
}

// GetByGroup retrieves the participants attached to a group
func (r *ParticipantRepository) GetByGroup(ctx context.Context, groupID int64) ([]*models.Participant, error) {
	sql, args, err := r.sb.Select(participantCols).
		From("participants").
		Where(squirrel.Eq{"group_id": groupID}).
		OrderBy("last_name ASC", "first_name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build participants by group query: %w", err)
	}
	return r.queryParticipants(ctx, sql, args)
}

func (r *ParticipantRepository) queryParticipants(ctx context.Context, sql string, args []interface{}) ([]*models.Participant, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing participants query")
		return nil, fmt.Errorf("error querying participants: %w", err)
	}
	defer rows.Close()

	participants := []*models.Participant{}
	for rows.Next() {
		p, err := scanParticipant(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning participant row: %w", err)
		}
		participants = append(participants, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating participant rows: %w", err)
	}

	return participants, nil
}

// GetByID retrieves a single participant
func (r *ParticipantRepository) GetByID(ctx context.Context, id int64) (*models.Participant, error) {
	sql, args, err := r.sb.Select(participantCols).
		From("participants").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get participant query: %w", err)
	}

	p, err := scanParticipant(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrParticipantNotFound
		}
		return nil, fmt.Errorf("error getting participant: %w", err)
	}

	return p, nil
}

// Create inserts a new participant and returns its id
func (r *ParticipantRepository) Create(ctx context.Context, participant *models.Participant) (int64, error) {
	sql, args, err := r.sb.Insert("participants").
		Columns("first_name", "last_name", "type", "group_id", "test_score", "date_of_birth").
		Values(participant.FirstName, participant.LastName, participant.Type,
			participant.GroupID, participant.TestScore, participant.DateOfBirth).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create participant query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrGroupNotFound
		}
		logger.Error().Err(err).Msg("Error executing create participant query")
		return 0, fmt.Errorf("error creating participant: %w", err)
	}

	return id, nil
}

// Update modifies an existing participant
func (r *ParticipantRepository) Update(ctx context.Context, participant *models.Participant) error {
	sql, args, err := r.sb.Update("participants").
		Set("first_name", participant.FirstName).
		Set("last_name", participant.LastName).
		Set("type", participant.Type).
		Set("group_id", participant.GroupID).
		Set("test_score", participant.TestScore).
		Set("date_of_birth", participant.DateOfBirth).
		Where(squirrel.Eq{"id": participant.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update participant query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrGroupNotFound
		}
		return fmt.Errorf("error updating participant: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrParticipantNotFound
	}

	return nil
}

// Delete removes a participant
func (r *ParticipantRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("participants").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete participant query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting participant: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrParticipantNotFound
	}

	return nil
}
