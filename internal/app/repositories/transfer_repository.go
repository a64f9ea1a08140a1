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

// TransferRepository handles ground transfer database operations
type TransferRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewTransferRepository creates a new TransferRepository
func NewTransferRepository(db *pgxpool.Pool) *TransferRepository {
	return &TransferRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *TransferRepository) selectTransfers() squirrel.SelectBuilder {
	return r.sb.Select("t.id", "t.direction", "t.transfer_date", "COALESCE(t.transfer_time, '')",
		"COALESCE(t.origin, '')", "COALESCE(t.destination, '')", "t.capacity",
		"COALESCE(t.supplier, '')", "t.flight_id", "COALESCE(f.code, '')").
		From("transfers t").
		LeftJoin("flights f ON f.id = t.flight_id")
}

func scanTransfer(row pgx.Row) (*models.Transfer, error) {
	t := &models.Transfer{}
	err := row.Scan(&t.ID, &t.Direction, &t.TransferDate, &t.TransferTime,
		&t.Origin, &t.Destination, &t.Capacity, &t.Supplier, &t.FlightID, &t.FlightCode)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// GetAll retrieves all transfers ordered by date
func (r *TransferRepository) GetAll(ctx context.Context) ([]*models.Transfer, error) {
	sql, args, err := r.selectTransfers().
		OrderBy("t.transfer_date ASC", "t.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all transfers query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all transfers query")
		return nil, fmt.Errorf("error querying transfers: %w", err)
	}
	defer rows.Close()

	transfers := []*models.Transfer{}
	for rows.Next() {
		t, err := scanTransfer(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning transfer row: %w", err)
		}
		transfers = append(transfers, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transfer rows: %w", err)
	}

	return transfers, nil
}

// GetTransportTransfers retrieves all transfers joined with the date and
// time of their linked flight, for the transport planning grid.
func (r *TransferRepository) GetTransportTransfers(ctx context.Context) ([]*models.TransportTransfer, error) {
	sql, args, err := r.selectTransfers().
		Columns("f.flight_date", "COALESCE(f.flight_time, '')").
		OrderBy("t.transfer_date ASC", "t.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build transport transfers query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing transport transfers query")
		return nil, fmt.Errorf("error querying transport transfers: %w", err)
	}
	defer rows.Close()

	transfers := []*models.TransportTransfer{}
	for rows.Next() {
		t := &models.TransportTransfer{}
		err := rows.Scan(&t.ID, &t.Direction, &t.TransferDate, &t.TransferTime,
			&t.Origin, &t.Destination, &t.Capacity, &t.Supplier, &t.FlightID, &t.FlightCode,
			&t.FlightDate, &t.FlightTime)
		if err != nil {
			return nil, fmt.Errorf("error scanning transport transfer row: %w", err)
		}
		transfers = append(transfers, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transport transfer rows: %w", err)
	}

	return transfers, nil
}

// GetByID retrieves a single transfer
func (r *TransferRepository) GetByID(ctx context.Context, id int64) (*models.Transfer, error) {
	sql, args, err := r.selectTransfers().Where(squirrel.Eq{"t.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get transfer query: %w", err)
	}

	t, err := scanTransfer(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTransferNotFound
		}
		return nil, fmt.Errorf("error getting transfer: %w", err)
	}

	return t, nil
}

// Create inserts a new transfer and returns its id
func (r *TransferRepository) Create(ctx context.Context, transfer *models.Transfer) (int64, error) {
	sql, args, err := r.sb.Insert("transfers").
		Columns("direction", "transfer_date", "transfer_time", "origin", "destination",
			"capacity", "supplier", "flight_id").
		Values(transfer.Direction, transfer.TransferDate, transfer.TransferTime, transfer.Origin,
			transfer.Destination, transfer.Capacity, transfer.Supplier, transfer.FlightID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create transfer query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrFlightNotFound
		}
		logger.Error().Err(err).Msg("Error executing create transfer query")
		return 0, fmt.Errorf("error creating transfer: %w", err)
	}

	return id, nil
}

// Update modifies an existing transfer
func (r *TransferRepository) Update(ctx context.Context, transfer *models.Transfer) error {
	sql, args, err := r.sb.Update("transfers").
		Set("direction", transfer.Direction).
		Set("transfer_date", transfer.TransferDate).
		Set("transfer_time", transfer.TransferTime).
		Set("origin", transfer.Origin).
		Set("destination", transfer.Destination).
		Set("capacity", transfer.Capacity).
		Set("supplier", transfer.Supplier).
		Set("flight_id", transfer.FlightID).
		Where(squirrel.Eq{"id": transfer.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update transfer query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrFlightNotFound
		}
		return fmt.Errorf("error updating transfer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrTransferNotFound
	}

	return nil
}

// Delete removes a transfer together with its group assignments
func (r *TransferRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("error beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM group_transfers WHERE transfer_id = $1`, id); err != nil {
		return fmt.Errorf("error deleting transfer assignments: %w", err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM transfers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting transfer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrTransferNotFound
	}

	return tx.Commit(ctx)
}
