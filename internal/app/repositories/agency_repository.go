package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/selim/groupdesk/internal/app/models"
	"github.com/selim/groupdesk/internal/pkg/logger"
)

// AgencyRepository handles agency database operations
type AgencyRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAgencyRepository creates a new AgencyRepository
func NewAgencyRepository(db *pgxpool.Pool) *AgencyRepository {
	return &AgencyRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetAll retrieves all agencies ordered by name
func (r *AgencyRepository) GetAll(ctx context.Context) ([]*models.Agency, error) {
	sql, args, err := r.sb.Select("id", "name").
		From("agencies").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all agencies query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all agencies query")
		return nil, fmt.Errorf("error querying agencies: %w", err)
	}
	defer rows.Close()

	agencies := []*models.Agency{}
	for rows.Next() {
		agency := &models.Agency{}
		if err := rows.Scan(&agency.ID, &agency.Name); err != nil {
			return nil, fmt.Errorf("error scanning agency row: %w", err)
		}
		agencies = append(agencies, agency)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating agency rows: %w", err)
	}

	return agencies, nil
}

// Upsert inserts an agency by name or returns the existing id. The single
// statement avoids the lookup-then-insert race under concurrent writers.
func (r *AgencyRepository) Upsert(ctx context.Context, name string) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO agencies (name) VALUES ($1)
		 ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		 RETURNING id`, name).Scan(&id)
	if err != nil {
		logger.Error().Err(err).Str("name", name).Msg("Error upserting agency")
		return 0, fmt.Errorf("error upserting agency: %w", err)
	}
	return id, nil
}

// upsertAgencyTx is the transactional variant used by group writes.
func upsertAgencyTx(ctx context.Context, tx pgx.Tx, name string) (int64, error) {
	var id int64
	err := tx.QueryRow(ctx,
		`INSERT INTO agencies (name) VALUES ($1)
		 ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		 RETURNING id`, name).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error upserting agency: %w", err)
	}
	return id, nil
}
