package usecase

import (
	"context"
	"fmt"

	"github.com/piresc/onestop/internal/pkg/models"
	"github.com/piresc/onestop/services/transit"
)

// Advance moves a bus one step along a route of stopCount stops.
// The bus arrives at prevNext, which becomes the new current stop. Equal indices count as backward.
func Advance(routeType models.RouteType, stopCount, prevCurr, prevNext int) (newCurr, newNext int, err error) {
	if stopCount <= 0 {
		return 0, 0, fmt.Errorf("%w: route has no stops", transit.ErrRouteNotFound)
	}
	if !routeType.Valid() {
		return 0, 0, fmt.Errorf("%w: unknown route type %q", transit.ErrInvalidInput, routeType)
	}

	last := stopCount - 1
	newCurr = prevNext

	switch routeType {
	case models.RouteTypeCircular:
		newNext = prevNext + 1
		if newNext > last {
			newNext = 0
		}
	case models.RouteTypeUpDown:
		if prevCurr < prevNext {
			newNext = prevNext + 1
			if newNext > last {
				newNext = last - 1
			}
		} else {
			newNext = prevNext - 1
			if newNext < 0 {
				newNext = 1
			}
		}
	}

	if newCurr < 0 || newCurr > last || newNext < 0 || newNext > last {
		return 0, 0, fmt.Errorf("%w: current %d next %d for %d stops", transit.ErrIndexOutOfRange, newCurr, newNext, stopCount)
	}
	return newCurr, newNext, nil
}

// GetNextStop advances a bus on routeNumber and resolves both indices to stops
func (uc *TransitUC) GetNextStop(ctx context.Context, routeNumber string, prevCurr, prevNext int) (*models.TraversalResult, error) {
	route, err := uc.routeRepo.GetRoute(ctx, routeNumber)
	if err != nil {
		return nil, err
	}

	newCurr, newNext, err := Advance(route.RouteType, len(route.Stops), prevCurr, prevNext)
	if err != nil {
		return nil, fmt.Errorf("route %s: %w", routeNumber, err)
	}

	return &models.TraversalResult{
		NextStop: toStopPoint(route.Stops[newNext]),
		CurrStop: toStopPoint(route.Stops[newCurr]),
	}, nil
}

func toStopPoint(s models.RouteStop) models.StopPoint {
	return models.StopPoint{
		Coordinates: s.Location.ToCoordinates(),
		StopID:      s.StopID,
		Index:       s.Index,
	}
}
