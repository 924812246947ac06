package transit

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/onestop/services/transit TransitUC

import (
	"context"

	"github.com/piresc/onestop/internal/pkg/models"
)

// TransitUC defines the interface for bus tracking business logic
type TransitUC interface {
	// Rider queries
	GetNearestStops(ctx context.Context, point models.Coordinates) ([]*models.Stop, error)
	FindCommonRoutes(ctx context.Context, sourceID, destinationID string) ([]models.CommonRouteResult, error)
	GetBusesForStop(ctx context.Context, stopID string) ([]models.BusPositionRecord, error)

	// Bus tracking
	TrackBus(ctx context.Context, update models.BusUpdate) (*models.DistanceEstimate, error)
	CheckStopDistance(ctx context.Context, from, to models.Coordinates) (*models.DistanceEstimate, error)
	GetNextStop(ctx context.Context, routeNumber string, prevCurr, prevNext int) (*models.TraversalResult, error)

	// Stops and routes
	AddStop(ctx context.Context, stop *models.Stop) error
	AddRoute(ctx context.Context, req models.NewRouteRequest) error
	GetRoute(ctx context.Context, routeNumber string) (*models.Route, error)
	ListRoutes(ctx context.Context) ([]*models.Route, error)
	ListStops(ctx context.Context) ([]*models.Stop, error)
	SyncGeoIndex(ctx context.Context) (int, error)
}
