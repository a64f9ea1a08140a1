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
	"github.com/selim/groupdesk/internal/pkg/logger"
)

// FlightRepository handles flight database operations
type FlightRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewFlightRepository creates a new FlightRepository
func NewFlightRepository(db *pgxpool.Pool) *FlightRepository {
	return &FlightRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetAll retrieves all flights ordered by date then code
func (r *FlightRepository) GetAll(ctx context.Context) ([]*models.Flight, error) {
	sql, args, err := r.sb.Select("id", "code", "direction", "flight_date", "COALESCE(flight_time, '')").
		From("flights").
		OrderBy("flight_date ASC", "code ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all flights query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all flights query")
		return nil, fmt.Errorf("error querying flights: %w", err)
	}
	defer rows.Close()

	flights := []*models.Flight{}
	for rows.Next() {
		flight := &models.Flight{}
		if err := rows.Scan(&flight.ID, &flight.Code, &flight.Direction, &flight.FlightDate, &flight.FlightTime); err != nil {
			return nil, fmt.Errorf("error scanning flight row: %w", err)
		}
		flights = append(flights, flight)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating flight rows: %w", err)
	}

	return flights, nil
}

// GetByID retrieves a single flight
func (r *FlightRepository) GetByID(ctx context.Context, id int64) (*models.Flight, error) {
	sql, args, err := r.sb.Select("id", "code", "direction", "flight_date", "COALESCE(flight_time, '')").
		From("flights").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get flight query: %w", err)
	}

	flight := &models.Flight{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&flight.ID, &flight.Code, &flight.Direction, &flight.FlightDate, &flight.FlightTime)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFlightNotFound
		}
		return nil, fmt.Errorf("error getting flight: %w", err)
	}

	return flight, nil
}

// Create inserts a new flight and returns its id
func (r *FlightRepository) Create(ctx context.Context, flight *models.Flight) (int64, error) {
	sql, args, err := r.sb.Insert("flights").
		Columns("code", "direction", "flight_date", "flight_time").
		Values(flight.Code, flight.Direction, flight.FlightDate, flight.FlightTime).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create flight query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create flight query")
		return 0, fmt.Errorf("error creating flight: %w", err)
	}

	return id, nil
}

// Update modifies an existing flight
func (r *FlightRepository) Update(ctx context.Context, flight *models.Flight) error {
	sql, args, err := r.sb.Update("flights").
		Set("code", flight.Code).
		Set("direction", flight.Direction).
		Set("flight_date", flight.FlightDate).
		Set("flight_time", flight.FlightTime).
		Where(squirrel.Eq{"id": flight.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update flight query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating flight: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrFlightNotFound
	}

	return nil
}
