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

// GroupFlightRepository handles the group-flight link table
type GroupFlightRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewGroupFlightRepository creates a new GroupFlightRepository
func NewGroupFlightRepository(db *pgxpool.Pool) *GroupFlightRepository {
	return &GroupFlightRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Add links a flight to a group. Duplicate links and unknown ids surface
// as typed errors.
func (r *GroupFlightRepository) Add(ctx context.Context, groupID, flightID int64) error {
	sql, args, err := r.sb.Insert("group_flights").
		Columns("group_id", "flight_id").
		Values(groupID, flightID).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build link flight query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrGroupFlightLinked
		}
		if dberrors.IsConstraintViolation(err, "group_flights_group_id_fkey") {
			return apperrors.ErrGroupNotFound
		}
		if dberrors.IsConstraintViolation(err, "group_flights_flight_id_fkey") {
			return apperrors.ErrFlightNotFound
		}
		logger.Error().Err(err).Int64("groupId", groupID).Int64("flightId", flightID).Msg("Error linking flight to group")
		return fmt.Errorf("error linking flight to group: %w", err)
	}

	return nil
}

// Remove unlinks a flight from a group
func (r *GroupFlightRepository) Remove(ctx context.Context, groupID, flightID int64) error {
	sql, args, err := r.sb.Delete("group_flights").
		Where(squirrel.Eq{"group_id": groupID, "flight_id": flightID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build unlink flight query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error unlinking flight from group: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrGroupFlightMissing
	}

	return nil
}

// GetFlightsByGroup retrieves the flights linked to a group
func (r *GroupFlightRepository) GetFlightsByGroup(ctx context.Context, groupID int64) ([]*models.Flight, error) {
	sql, args, err := r.sb.Select("f.id", "f.code", "f.direction", "f.flight_date", "COALESCE(f.flight_time, '')").
		From("group_flights gf").
		Join("flights f ON f.id = gf.flight_id").
		Where(squirrel.Eq{"gf.group_id": groupID}).
		OrderBy("f.flight_date ASC", "f.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build flights by group query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("groupId", groupID).Msg("Error querying flights by group")
		return nil, fmt.Errorf("error querying flights by group: %w", err)
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

// GetGroupsByFlight retrieves the groups linked to a flight
func (r *GroupFlightRepository) GetGroupsByFlight(ctx context.Context, flightID int64) ([]*models.Group, error) {
	cols := append([]string{}, groupColumns...)
	sql, args, err := r.sb.Select(cols...).
		From("group_flights gf").
		Join("groups g ON g.id = gf.group_id").
		LeftJoin("agencies a ON a.id = g.agency_id").
		LeftJoin("centres c ON c.id = g.centre_id").
		Where(squirrel.Eq{"gf.flight_id": flightID}).
		OrderBy("g.name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build groups by flight query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying groups by flight: %w", err)
	}
	defer rows.Close()

	groups := []*models.Group{}
	for rows.Next() {
		group, err := scanGroup(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning group row: %w", err)
		}
		groups = append(groups, group)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating group rows: %w", err)
	}

	return groups, nil
}
