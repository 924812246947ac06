package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/onestop/internal/pkg/constants"
	"github.com/piresc/onestop/internal/pkg/models"
	"github.com/piresc/onestop/internal/utils"
	"github.com/piresc/onestop/services/transit"
)

// stopRow is the stops table layout
type stopRow struct {
	StopID  string  `db:"stop_id"`
	Name    string  `db:"name"`
	Lat     float64 `db:"lat"`
	Lon     float64 `db:"lon"`
	Geohash string  `db:"geohash"`
}

func (r stopRow) toModel() *models.Stop {
	return &models.Stop{
		StopID:   r.StopID,
		Name:     r.Name,
		Location: models.NewLocation(r.Lat, r.Lon),
		Routes:   []models.RouteMembership{},
	}
}

type membershipRow struct {
	StopID      string `db:"stop_id"`
	RouteNumber string `db:"route_number"`
	Index       int    `db:"idx"`
}

// StopRepo implements transit.StopRepo on PostgreSQL
type StopRepo struct {
	db *sqlx.DB
}

// NewStopRepository creates a new stop repository
func NewStopRepository(db *sqlx.DB) transit.StopRepo {
	return &StopRepo{db: db}
}

// GetStop retrieves a stop and its route memberships
func (r *StopRepo) GetStop(ctx context.Context, stopID string) (*models.Stop, error) {
	var row stopRow
	err := r.db.GetContext(ctx, &row,
		`SELECT stop_id, name, lat, lon, geohash FROM stops WHERE stop_id = $1`, stopID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", transit.ErrStopNotFound, stopID)
		}
		return nil, fmt.Errorf("failed to get stop: %w", err)
	}

	stop := row.toModel()
	err = r.db.SelectContext(ctx, &stop.Routes,
		`SELECT route_number, idx FROM stop_routes WHERE stop_id = $1 ORDER BY route_number, idx`, stopID)
	if err != nil {
		return nil, fmt.Errorf("failed to get stop routes: %w", err)
	}

	return stop, nil
}

// GetStopsByIDs retrieves the known stops among ids, keeping the order of ids
func (r *StopRepo) GetStopsByIDs(ctx context.Context, ids []string) ([]*models.Stop, error) {
	if len(ids) == 0 {
		return []*models.Stop{}, nil
	}

	query, args, err := sqlx.In(`SELECT stop_id, name, lat, lon, geohash FROM stops WHERE stop_id IN (?)`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to build stops query: %w", err)
	}

	var rows []stopRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to get stops: %w", err)
	}

	byID := make(map[string]*models.Stop, len(rows))
	for _, row := range rows {
		byID[row.StopID] = row.toModel()
	}

	stops := make([]*models.Stop, 0, len(rows))
	for _, id := range ids {
		if stop, ok := byID[id]; ok {
			stops = append(stops, stop)
		}
	}

	if err := r.attachMemberships(ctx, stops); err != nil {
		return nil, err
	}
	return stops, nil
}

// ListStops retrieves every stop ordered by id
func (r *StopRepo) ListStops(ctx context.Context) ([]*models.Stop, error) {
	var rows []stopRow
	if err := r.db.SelectContext(ctx, &rows,
		`SELECT stop_id, name, lat, lon, geohash FROM stops ORDER BY stop_id`); err != nil {
		return nil, fmt.Errorf("failed to list stops: %w", err)
	}

	stops := make([]*models.Stop, 0, len(rows))
	for _, row := range rows {
		stops = append(stops, row.toModel())
	}

	if err := r.attachMemberships(ctx, stops); err != nil {
		return nil, err
	}
	return stops, nil
}

// CreateStop inserts a stop without route memberships
func (r *StopRepo) CreateStop(ctx context.Context, stop *models.Stop) error {
	row := stopRow{
		StopID:  stop.StopID,
		Name:    stop.Name,
		Lat:     stop.Location.Lat(),
		Lon:     stop.Location.Lon(),
		Geohash: utils.EncodeLocation(stop.Location, constants.StopGeohashPrecision),
	}

	_, err := r.db.NamedExecContext(ctx,
		`INSERT INTO stops (stop_id, name, lat, lon, geohash) VALUES (:stop_id, :name, :lat, :lon, :geohash)`, row)
	if err != nil {
		return fmt.Errorf("failed to create stop: %w", err)
	}
	return nil
}

// NearestStops scans the geohash cells around point and filters by exact distance
func (r *StopRepo) NearestStops(ctx context.Context, point models.Coordinates, radiusMeters float64) ([]*models.Stop, error) {
	origin := utils.GeoPoint{Latitude: point.Lat, Longitude: point.Lon}
	precision := searchPrecision(radiusMeters)

	var rows []stopRow
	if precision == 0 {
		if err := r.db.SelectContext(ctx, &rows, `SELECT stop_id, name, lat, lon, geohash FROM stops`); err != nil {
			return nil, fmt.Errorf("failed to scan stops: %w", err)
		}
	} else {
		cells := utils.CellWithNeighbors(origin, precision)
		query, args, err := sqlx.In(
			`SELECT stop_id, name, lat, lon, geohash FROM stops WHERE LEFT(geohash, ?) IN (?)`, int(precision), cells)
		if err != nil {
			return nil, fmt.Errorf("failed to build nearest query: %w", err)
		}
		if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
			return nil, fmt.Errorf("failed to search stops: %w", err)
		}
	}

	type candidate struct {
		stop     *models.Stop
		distance float64
	}
	candidates := make([]candidate, 0, len(rows))
	for _, row := range rows {
		d := utils.DistanceMeters(origin, utils.GeoPoint{Latitude: row.Lat, Longitude: row.Lon})
		if d <= radiusMeters {
			candidates = append(candidates, candidate{stop: row.toModel(), distance: d})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].distance < candidates[j].distance })

	stops := make([]*models.Stop, 0, len(candidates))
	for _, c := range candidates {
		stops = append(stops, c.stop)
	}

	if err := r.attachMemberships(ctx, stops); err != nil {
		return nil, err
	}
	return stops, nil
}

// attachMemberships loads stop_routes for stops in one query
func (r *StopRepo) attachMemberships(ctx context.Context, stops []*models.Stop) error {
	if len(stops) == 0 {
		return nil
	}

	byID := make(map[string]*models.Stop, len(stops))
	ids := make([]string, 0, len(stops))
	for _, s := range stops {
		byID[s.StopID] = s
		ids = append(ids, s.StopID)
	}

	query, args, err := sqlx.In(
		`SELECT stop_id, route_number, idx FROM stop_routes WHERE stop_id IN (?) ORDER BY stop_id, route_number, idx`, ids)
	if err != nil {
		return fmt.Errorf("failed to build stop routes query: %w", err)
	}

	var rows []membershipRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return fmt.Errorf("failed to get stop routes: %w", err)
	}

	for _, row := range rows {
		if s, ok := byID[row.StopID]; ok {
			s.Routes = append(s.Routes, models.RouteMembership{RouteNumber: row.RouteNumber, Index: row.Index})
		}
	}
	return nil
}

// cellMinMeters is the shortest side of a geohash cell at each precision
var cellMinMeters = []struct {
	precision uint
	meters    float64
}{
	{5, 4890},
	{4, 19500},
	{3, 156000},
	{2, 625000},
}

// searchPrecision picks the finest stored precision whose neighbourhood still covers radius.
// Zero means the radius is too large for a cell search.
func searchPrecision(radiusMeters float64) uint {
	for _, c := range cellMinMeters {
		if c.precision <= constants.StopGeohashPrecision && radiusMeters <= c.meters {
			return c.precision
		}
	}
	return 0
}
