package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/piresc/onestop/internal/pkg/logger"
	"github.com/piresc/onestop/internal/pkg/models"
	"github.com/piresc/onestop/services/transit"
)

// GetNearestStops returns the stops within the configured radius, nearest first.
// The Redis geo index is tried first; PostgreSQL answers when it is unavailable.
func (uc *TransitUC) GetNearestStops(ctx context.Context, point models.Coordinates) ([]*models.Stop, error) {
	radius := uc.cfg.Transit.NearestStopRadiusMeters

	ids, err := uc.geoIndex.NearestStopIDs(ctx, point, radius)
	if err != nil {
		if uc.metrics != nil {
			uc.metrics.GeoIndexFallbacks.Inc()
		}
		logger.WarnCtx(ctx, "Geo index unavailable, searching database", logger.Err(err))
		return uc.stopRepo.NearestStops(ctx, point, radius)
	}

	return uc.stopRepo.GetStopsByIDs(ctx, ids)
}

// AddStop creates a stop with no route memberships and indexes it
func (uc *TransitUC) AddStop(ctx context.Context, stop *models.Stop) error {
	if err := validateLocation(stop.Location); err != nil {
		return err
	}
	stop.Location.Type = models.GeoJSONPoint

	_, err := uc.stopRepo.GetStop(ctx, stop.StopID)
	if err == nil {
		return fmt.Errorf("%w: stop %s", transit.ErrAlreadyExists, stop.StopID)
	}
	if !errors.Is(err, transit.ErrStopNotFound) {
		return err
	}

	stop.Routes = []models.RouteMembership{}
	if err := uc.stopRepo.CreateStop(ctx, stop); err != nil {
		return err
	}

	if err := uc.geoIndex.IndexStop(ctx, stop); err != nil {
		logger.WarnCtx(ctx, "Stop saved but not indexed",
			logger.String("stop_id", stop.StopID),
			logger.Err(err))
	}
	return nil
}

// AddRoute creates a route over existing stops and records each stop's membership
func (uc *TransitUC) AddRoute(ctx context.Context, req models.NewRouteRequest) error {
	if !req.RouteType.Valid() {
		return fmt.Errorf("%w: routeType must be UD or C", transit.ErrInvalidInput)
	}
	if len(req.Stops) < req.RouteType.MinStops() {
		return fmt.Errorf("%w: route type %s needs at least %d stops", transit.ErrInvalidInput, req.RouteType, req.RouteType.MinStops())
	}

	ordered := make([]models.RouteStopRef, len(req.Stops))
	filled := make([]bool, len(req.Stops))
	for _, ref := range req.Stops {
		if ref.Index == nil {
			return fmt.Errorf("%w: stop %s has no index", transit.ErrInvalidInput, ref.StopID)
		}
		idx := *ref.Index
		if idx < 0 || idx >= len(req.Stops) {
			return fmt.Errorf("%w: index %d outside 0..%d", transit.ErrInvalidInput, idx, len(req.Stops)-1)
		}
		if filled[idx] {
			return fmt.Errorf("%w: duplicate index %d", transit.ErrInvalidInput, idx)
		}
		filled[idx] = true
		ordered[idx] = ref
	}

	_, err := uc.routeRepo.GetRoute(ctx, req.RouteNumber)
	if err == nil {
		return fmt.Errorf("%w: route %s", transit.ErrAlreadyExists, req.RouteNumber)
	}
	if !errors.Is(err, transit.ErrRouteNotFound) {
		return err
	}

	ids := make([]string, 0, len(ordered))
	for _, ref := range ordered {
		ids = append(ids, ref.StopID)
	}
	stops, err := uc.stopRepo.GetStopsByIDs(ctx, ids)
	if err != nil {
		return err
	}
	byID := make(map[string]*models.Stop, len(stops))
	for _, s := range stops {
		byID[s.StopID] = s
	}

	route := &models.Route{
		RouteNumber: req.RouteNumber,
		RouteType:   req.RouteType,
		Stops:       make([]models.RouteStop, 0, len(ordered)),
	}
	for i, ref := range ordered {
		stop, ok := byID[ref.StopID]
		if !ok {
			return fmt.Errorf("%w: %s", transit.ErrStopNotFound, ref.StopID)
		}
		route.Stops = append(route.Stops, models.RouteStop{
			Index:    i,
			StopID:   stop.StopID,
			Name:     stop.Name,
			Location: stop.Location,
		})
	}

	return uc.routeRepo.CreateRoute(ctx, route)
}

// GetRoute returns a route with its ordered stops
func (uc *TransitUC) GetRoute(ctx context.Context, routeNumber string) (*models.Route, error) {
	return uc.routeRepo.GetRoute(ctx, routeNumber)
}

// ListRoutes returns every route
func (uc *TransitUC) ListRoutes(ctx context.Context) ([]*models.Route, error) {
	return uc.routeRepo.ListRoutes(ctx)
}

// ListStops returns every stop
func (uc *TransitUC) ListStops(ctx context.Context) ([]*models.Stop, error) {
	return uc.stopRepo.ListStops(ctx)
}

// SyncGeoIndex re-adds every stored stop to the geo index and returns how many were indexed
func (uc *TransitUC) SyncGeoIndex(ctx context.Context) (int, error) {
	stops, err := uc.stopRepo.ListStops(ctx)
	if err != nil {
		return 0, err
	}

	for i, stop := range stops {
		if err := uc.geoIndex.IndexStop(ctx, stop); err != nil {
			return i, err
		}
	}
	return len(stops), nil
}

func validateLocation(loc models.Location) error {
	if loc.Type != "" && loc.Type != models.GeoJSONPoint {
		return fmt.Errorf("%w: location type must be %s", transit.ErrInvalidInput, models.GeoJSONPoint)
	}
	if lat := loc.Lat(); lat < -90 || lat > 90 {
		return fmt.Errorf("%w: latitude %v out of range", transit.ErrInvalidInput, lat)
	}
	if lon := loc.Lon(); lon < -180 || lon > 180 {
		return fmt.Errorf("%w: longitude %v out of range", transit.ErrInvalidInput, lon)
	}
	return nil
}
