package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/onestop/internal/pkg/models"
	"github.com/piresc/onestop/services/transit"
)

type routeRow struct {
	RouteNumber string `db:"route_number"`
	RouteType   string `db:"route_type"`
}

type routeStopRow struct {
	RouteNumber string  `db:"route_number"`
	Index       int     `db:"idx"`
	StopID      string  `db:"stop_id"`
	Name        string  `db:"name"`
	Lat         float64 `db:"lat"`
	Lon         float64 `db:"lon"`
}

func (r routeStopRow) toModel() models.RouteStop {
	return models.RouteStop{
		Index:    r.Index,
		StopID:   r.StopID,
		Name:     r.Name,
		Location: models.NewLocation(r.Lat, r.Lon),
	}
}

const routeStopsQuery = `
	SELECT rs.route_number, rs.idx, s.stop_id, s.name, s.lat, s.lon
	FROM route_stops rs
	JOIN stops s ON s.stop_id = rs.stop_id`

// RouteRepo implements transit.RouteRepo on PostgreSQL
type RouteRepo struct {
	db *sqlx.DB
}

// NewRouteRepository creates a new route repository
func NewRouteRepository(db *sqlx.DB) transit.RouteRepo {
	return &RouteRepo{db: db}
}

// GetRoute retrieves a route with its stops in index order
func (r *RouteRepo) GetRoute(ctx context.Context, routeNumber string) (*models.Route, error) {
	var row routeRow
	err := r.db.GetContext(ctx, &row,
		`SELECT route_number, route_type FROM routes WHERE route_number = $1`, routeNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", transit.ErrRouteNotFound, routeNumber)
		}
		return nil, fmt.Errorf("failed to get route: %w", err)
	}

	var stops []routeStopRow
	if err := r.db.SelectContext(ctx, &stops,
		routeStopsQuery+` WHERE rs.route_number = $1 ORDER BY rs.idx`, routeNumber); err != nil {
		return nil, fmt.Errorf("failed to get route stops: %w", err)
	}

	route := &models.Route{
		RouteNumber: row.RouteNumber,
		RouteType:   models.RouteType(row.RouteType),
		Stops:       make([]models.RouteStop, 0, len(stops)),
	}
	for _, s := range stops {
		route.Stops = append(route.Stops, s.toModel())
	}
	return route, nil
}

// ListRoutes retrieves every route ordered by route number
func (r *RouteRepo) ListRoutes(ctx context.Context) ([]*models.Route, error) {
	var rows []routeRow
	if err := r.db.SelectContext(ctx, &rows,
		`SELECT route_number, route_type FROM routes ORDER BY route_number`); err != nil {
		return nil, fmt.Errorf("failed to list routes: %w", err)
	}

	var stops []routeStopRow
	if err := r.db.SelectContext(ctx, &stops,
		routeStopsQuery+` ORDER BY rs.route_number, rs.idx`); err != nil {
		return nil, fmt.Errorf("failed to list route stops: %w", err)
	}

	byNumber := make(map[string]*models.Route, len(rows))
	routes := make([]*models.Route, 0, len(rows))
	for _, row := range rows {
		route := &models.Route{
			RouteNumber: row.RouteNumber,
			RouteType:   models.RouteType(row.RouteType),
			Stops:       []models.RouteStop{},
		}
		byNumber[row.RouteNumber] = route
		routes = append(routes, route)
	}
	for _, s := range stops {
		if route, ok := byNumber[s.RouteNumber]; ok {
			route.Stops = append(route.Stops, s.toModel())
		}
	}
	return routes, nil
}

// CreateRoute inserts a route, its stop sequence and the reverse stop memberships in one transaction
func (r *RouteRepo) CreateRoute(ctx context.Context, route *models.Route) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO routes (route_number, route_type) VALUES ($1, $2)`,
		route.RouteNumber, string(route.RouteType))
	if err != nil {
		return fmt.Errorf("failed to insert route: %w", err)
	}

	for _, s := range route.Stops {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO route_stops (route_number, idx, stop_id) VALUES ($1, $2, $3)`,
			route.RouteNumber, s.Index, s.StopID); err != nil {
			return fmt.Errorf("failed to insert route stop: %w", err)
		}
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO stop_routes (stop_id, route_number, idx) VALUES ($1, $2, $3)`,
			s.StopID, route.RouteNumber, s.Index); err != nil {
			return fmt.Errorf("failed to insert stop route: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
