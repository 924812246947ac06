package transit

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/onestop/services/transit StopRepo,GeoIndex,RouteRepo,ApproachRepo

import (
	"context"

	"github.com/piresc/onestop/internal/pkg/models"
)

// StopRepo defines persistence operations for stops
type StopRepo interface {
	// GetStop returns the stop with its route memberships or ErrStopNotFound
	GetStop(ctx context.Context, stopID string) (*models.Stop, error)
	// GetStopsByIDs returns the known stops among ids, in the order of ids
	GetStopsByIDs(ctx context.Context, ids []string) ([]*models.Stop, error)
	ListStops(ctx context.Context) ([]*models.Stop, error)
	CreateStop(ctx context.Context, stop *models.Stop) error
	// NearestStops searches the database directly, nearest first
	NearestStops(ctx context.Context, point models.Coordinates, radiusMeters float64) ([]*models.Stop, error)
}

// GeoIndex defines the fast nearest-stop index
type GeoIndex interface {
	IndexStop(ctx context.Context, stop *models.Stop) error
	// NearestStopIDs returns stop ids within radius, nearest first
	NearestStopIDs(ctx context.Context, point models.Coordinates, radiusMeters float64) ([]string, error)
}

// RouteRepo defines persistence operations for routes
type RouteRepo interface {
	// GetRoute returns the route with its ordered stops or ErrRouteNotFound
	GetRoute(ctx context.Context, routeNumber string) (*models.Route, error)
	ListRoutes(ctx context.Context) ([]*models.Route, error)
	CreateRoute(ctx context.Context, route *models.Route) error
}

// ApproachRepo is the live position cache
type ApproachRepo interface {
	RecordApproach(ctx context.Context, stopID string, record models.BusPositionRecord) error
	ListApproaching(ctx context.Context, stopID string) ([]models.BusPositionRecord, error)
}
