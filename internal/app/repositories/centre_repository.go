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

// CentreRepository handles centre database operations
type CentreRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCentreRepository creates a new CentreRepository
func NewCentreRepository(db *pgxpool.Pool) *CentreRepository {
	return &CentreRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetAll retrieves all centres ordered by name
func (r *CentreRepository) GetAll(ctx context.Context) ([]*models.Centre, error) {
	sql, args, err := r.sb.Select("id", "name", "address").
		From("centres").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all centres query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all centres query")
		return nil, fmt.Errorf("error querying centres: %w", err)
	}
	defer rows.Close()

	centres := []*models.Centre{}
	for rows.Next() {
		centre := &models.Centre{}
		if err := rows.Scan(&centre.ID, &centre.Name, &centre.Address); err != nil {
			return nil, fmt.Errorf("error scanning centre row: %w", err)
		}
		centres = append(centres, centre)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating centre rows: %w", err)
	}

	return centres, nil
}

// GetByID retrieves a single centre
func (r *CentreRepository) GetByID(ctx context.Context, id int64) (*models.Centre, error) {
	sql, args, err := r.sb.Select("id", "name", "address").
		From("centres").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get centre query: %w", err)
	}

	centre := &models.Centre{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&centre.ID, &centre.Name, &centre.Address)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCentreNotFound
		}
		return nil, fmt.Errorf("error getting centre: %w", err)
	}

	return centre, nil
}

// Create inserts a new centre and returns its id
func (r *CentreRepository) Create(ctx context.Context, centre *models.Centre) (int64, error) {
	sql, args, err := r.sb.Insert("centres").
		Columns("name", "address").
		Values(centre.Name, centre.Address).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create centre query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrCentreAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create centre query")
		return 0, fmt.Errorf("error creating centre: %w", err)
	}

	return id, nil
}

// Update modifies an existing centre
func (r *CentreRepository) Update(ctx context.Context, centre *models.Centre) error {
	sql, args, err := r.sb.Update("centres").
		Set("name", centre.Name).
		Set("address", centre.Address).
		Where(squirrel.Eq{"id": centre.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update centre query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrCentreAlreadyExists
		}
		return fmt.Errorf("error updating centre: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCentreNotFound
	}

	return nil
}

// Delete removes a centre. A centre still referenced by groups, staff
// assignments or accommodations cannot be deleted.
func (r *CentreRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM centres WHERE id = $1`, id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrCentreInUse
		}
		return fmt.Errorf("error deleting centre: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCentreNotFound
	}

	return nil
}

// ResolveIDByName finds a centre id by case-insensitive name match.
// Returns nil when no centre carries the name.
func (r *CentreRepository) ResolveIDByName(ctx context.Context, name string) (*int64, error) {
	return resolveCentreIDByName(ctx, r.db, name)
}

// rowQuerier is the slice of pgx shared by *pgxpool.Pool and pgx.Tx that
// lookup helpers need.
type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func resolveCentreIDByName(ctx context.Context, q rowQuerier, name string) (*int64, error) {
	var id int64
	err := q.QueryRow(ctx, `SELECT id FROM centres WHERE LOWER(name) = LOWER($1)`, name).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error resolving centre by name: %w", err)
	}
	return &id, nil
}
