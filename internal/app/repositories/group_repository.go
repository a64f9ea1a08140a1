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

// GroupRepository handles group database operations
type GroupRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewGroupRepository creates a new GroupRepository
func NewGroupRepository(db *pgxpool.Pool) *GroupRepository {
	return &GroupRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// groupColumns is the shared projection for group reads. Agency and centre
// names come from LEFT JOINs so unplaced groups still list.
var groupColumns = []string{
	"g.id", "g.name",
	"g.agency_id", "COALESCE(a.name, '')",
	"g.centre_id", "COALESCE(c.name, '')",
	"g.arrival_date", "g.departure_date",
	"g.students_allocated", "g.leaders_allocated",
	"g.students_booked", "g.leaders_booked",
	"g.created_at", "g.updated_at",
}

func (r *GroupRepository) selectGroups() squirrel.SelectBuilder {
	return r.sb.Select(groupColumns...).
		From("groups g").
		LeftJoin("agencies a ON a.id = g.agency_id").
		LeftJoin("centres c ON c.id = g.centre_id")
}

func scanGroup(row pgx.Row) (*models.Group, error) {
	group := &models.Group{}
	err := row.Scan(
		&group.ID, &group.Name,
		&group.AgencyID, &group.AgencyName,
		&group.CentreID, &group.CentreName,
		&group.ArrivalDate, &group.DepartureDate,
		&group.StudentsAllocated, &group.LeadersAllocated,
		&group.StudentsBooked, &group.LeadersBooked,
		&group.CreatedAt, &group.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return group, nil
}

// GetAll retrieves all groups ordered by name
func (r *GroupRepository) GetAll(ctx context.Context) ([]*models.Group, error) {
	sql, args, err := r.selectGroups().OrderBy("g.name ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all groups query: %w", err)
	}
	return r.queryGroups(ctx, sql, args)
}

// GetSalesGrid retrieves all groups ordered for the sales grid view:
// by arrival date, then name.
func (r *GroupRepository) GetSalesGrid(ctx context.Context) ([]*models.Group, error) {
	sql, args, err := r.selectGroups().OrderBy("g.arrival_date ASC", "g.name ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sales grid query: %w", err)
	}
	return r.queryGroups(ctx, sql, args)
}

func (r *GroupRepository) queryGroups(ctx context.Context, sql string, args []interface{}) ([]*models.Group, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing groups query")
		return nil, fmt.Errorf("error querying groups: %w", err)
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

// GetByID retrieves a single group
func (r *GroupRepository) GetByID(ctx context.Context, id int64) (*models.Group, error) {
	sql, args, err := r.selectGroups().Where(squirrel.Eq{"g.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get group query: %w", err)
	}

	group, err := scanGroup(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrGroupNotFound
		}
		return nil, fmt.Errorf("error getting group: %w", err)
	}

	return group, nil
}

// Create inserts a new group. When agencyName is non-empty the agency is
// upserted in the same transaction and its id attached to the group.
func (r *GroupRepository) Create(ctx context.Context, group *models.Group, agencyName string) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("error beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if agencyName != "" {
		agencyID, err := upsertAgencyTx(ctx, tx, agencyName)
		if err != nil {
			return 0, err
		}
		group.AgencyID = &agencyID
	}

	sql, args, err := r.sb.Insert("groups").
		Columns("name", "agency_id", "centre_id", "arrival_date", "departure_date",
			"students_allocated", "leaders_allocated", "students_booked", "leaders_booked").
		Values(group.Name, group.AgencyID, group.CentreID, group.ArrivalDate, group.DepartureDate,
			group.StudentsAllocated, group.LeadersAllocated, group.StudentsBooked, group.LeadersBooked).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create group query: %w", err)
	}

	var id int64
	if err := tx.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrGroupAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrCentreNotFound
		}
		logger.Error().Err(err).Msg("Error executing create group query")
		return 0, fmt.Errorf("error creating group: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("error committing group creation: %w", err)
	}

	return id, nil
}

// Update modifies an existing group, upserting the agency when a name is given
func (r *GroupRepository) Update(ctx context.Context, group *models.Group, agencyName string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("error beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if agencyName != "" {
		agencyID, err := upsertAgencyTx(ctx, tx, agencyName)
		if err != nil {
			return err
		}
		group.AgencyID = &agencyID
	}

	sql, args, err := r.sb.Update("groups").
		Set("name", group.Name).
		Set("agency_id", group.AgencyID).
		Set("centre_id", group.CentreID).
		Set("arrival_date", group.ArrivalDate).
		Set("departure_date", group.DepartureDate).
		Set("students_allocated", group.StudentsAllocated).
		Set("leaders_allocated", group.LeadersAllocated).
		Set("students_booked", group.StudentsBooked).
		Set("leaders_booked", group.LeadersBooked).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": group.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update group query: %w", err)
	}

	tag, err := tx.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrGroupAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrCentreNotFound
		}
		return fmt.Errorf("error updating group: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrGroupNotFound
	}

	return tx.Commit(ctx)
}

// Delete removes a group together with its flight links and transfer
// assignments in a single transaction. Participants are detached by the
// schema's ON DELETE SET NULL.
func (r *GroupRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("error beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM group_flights WHERE group_id = $1`, id); err != nil {
		return fmt.Errorf("error deleting group flight links: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM group_transfers WHERE group_id = $1`, id); err != nil {
		return fmt.Errorf("error deleting group transfer assignments: %w", err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM groups WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting group: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrGroupNotFound
	}

	return tx.Commit(ctx)
}

// GetCentreOccupancyRows returns the projection the occupancy aggregation
// runs over: every group placed at a centre with its stay dates and
// allocation counts.
func (r *GroupRepository) GetCentreOccupancyRows(ctx context.Context) ([]models.CentreOccupancyRow, error) {
	sql, args, err := r.sb.Select("c.name", "g.arrival_date", "g.departure_date",
		"g.students_allocated", "g.leaders_allocated").
		From("groups g").
		Join("centres c ON c.id = g.centre_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build occupancy rows query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing occupancy rows query")
		return nil, fmt.Errorf("error querying occupancy rows: %w", err)
	}
	defer rows.Close()

	result := []models.CentreOccupancyRow{}
	for rows.Next() {
		var row models.CentreOccupancyRow
		if err := rows.Scan(&row.CentreName, &row.ArrivalDate, &row.DepartureDate,
			&row.StudentsAllocated, &row.LeadersAllocated); err != nil {
			return nil, fmt.Errorf("error scanning occupancy row: %w", err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating occupancy rows: %w", err)
	}

	return result, nil
}

// GetGroupsWithFlights returns every group together with its linked flights
// split by direction, for the flight-date consistency check.
func (r *GroupRepository) GetGroupsWithFlights(ctx context.Context) ([]*models.GroupWithFlights, error) {
	groups, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	sql, args, err := r.sb.Select("gf.group_id", "f.id", "f.code", "f.direction", "f.flight_date", "COALESCE(f.flight_time, '')").
		From("group_flights gf").
		Join("flights f ON f.id = gf.flight_id").
		OrderBy("gf.group_id ASC", "f.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build group flights query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing group flights query")
		return nil, fmt.Errorf("error querying group flights: %w", err)
	}
	defer rows.Close()

	byGroup := make(map[int64]*models.GroupWithFlights, len(groups))
	result := make([]*models.GroupWithFlights, 0, len(groups))
	for _, g := range groups {
		gwf := &models.GroupWithFlights{Group: *g}
		byGroup[g.ID] = gwf
		result = append(result, gwf)
	}

	for rows.Next() {
		var groupID int64
		var flight models.Flight
		if err := rows.Scan(&groupID, &flight.ID, &flight.Code, &flight.Direction,
			&flight.FlightDate, &flight.FlightTime); err != nil {
			return nil, fmt.Errorf("error scanning group flight row: %w", err)
		}
		gwf, ok := byGroup[groupID]
		if !ok {
			continue
		}
		if flight.Direction == models.DirectionArrival {
			gwf.ArrivalFlights = append(gwf.ArrivalFlights, flight)
		} else {
			gwf.DepartureFlights = append(gwf.DepartureFlights, flight)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating group flight rows: %w", err)
	}

	return result, nil
}

// ImportGroups inserts a batch of already-validated groups in one
// transaction. Each group's AgencyName is upserted and CentreName resolved
// case-insensitively; an unmatched centre leaves the group unplaced rather
// than failing the row. A name collision skips the row via ON CONFLICT DO
// NOTHING so the transaction survives; its index lands in duplicates. Any
// other error rolls the whole batch back.
func (r *GroupRepository) ImportGroups(ctx context.Context, groups []*models.Group) (imported int, duplicates []int, err error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, nil, fmt.Errorf("error beginning import transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for i, group := range groups {
		if group.AgencyName != "" {
			agencyID, err := upsertAgencyTx(ctx, tx, group.AgencyName)
			if err != nil {
				return 0, nil, err
			}
			group.AgencyID = &agencyID
		}

		if group.CentreName != "" {
			centreID, err := resolveCentreIDByName(ctx, tx, group.CentreName)
			if err != nil {
				return 0, nil, fmt.Errorf("error resolving centre for import: %w", err)
			}
			group.CentreID = centreID
		}

		var id int64
		err := tx.QueryRow(ctx,
			`INSERT INTO groups (name, agency_id, centre_id, arrival_date, departure_date,
			                     students_allocated, leaders_allocated, students_booked, leaders_booked)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			 ON CONFLICT (name) DO NOTHING
			 RETURNING id`,
			group.Name, group.AgencyID, group.CentreID, group.ArrivalDate, group.DepartureDate,
			group.StudentsAllocated, group.LeadersAllocated, group.StudentsBooked, group.LeadersBooked,
		).Scan(&id)
		if errors.Is(err, pgx.ErrNoRows) {
			duplicates = append(duplicates, i)
			continue
		}
		if err != nil {
			logger.Error().Err(err).Str("name", group.Name).Msg("Error inserting imported group")
			return 0, nil, fmt.Errorf("error inserting imported group: %w", err)
		}

		group.ID = id
		imported++
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, nil, fmt.Errorf("error committing import transaction: %w", err)
	}

	return imported, duplicates, nil
}
