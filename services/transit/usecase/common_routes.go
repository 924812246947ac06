package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/piresc/onestop/internal/pkg/logger"
	"github.com/piresc/onestop/internal/pkg/models"
	"github.com/piresc/onestop/services/transit"
)

// FindCommonRoutes lists the routes serving both stops with the direction of travel between them.
// The order of results is unspecified.
func (uc *TransitUC) FindCommonRoutes(ctx context.Context, sourceID, destinationID string) ([]models.CommonRouteResult, error) {
	source, err := uc.stopRepo.GetStop(ctx, sourceID)
	if err != nil {
		return nil, err
	}
	destination, err := uc.stopRepo.GetStop(ctx, destinationID)
	if err != nil {
		return nil, err
	}

	served := make(map[string]struct{}, len(destination.Routes))
	for _, m := range destination.Routes {
		served[m.RouteNumber] = struct{}{}
	}

	results := []models.CommonRouteResult{}
	seen := make(map[string]struct{}, len(source.Routes))
	for _, m := range source.Routes {
		if _, ok := served[m.RouteNumber]; !ok {
			continue
		}
		if _, ok := seen[m.RouteNumber]; ok {
			continue
		}
		seen[m.RouteNumber] = struct{}{}

		route, err := uc.routeRepo.GetRoute(ctx, m.RouteNumber)
		if err != nil {
			if errors.Is(err, transit.ErrRouteNotFound) {
				logger.WarnCtx(ctx, "Skipping dangling route membership",
					logger.String("route_number", m.RouteNumber),
					logger.String("source_id", sourceID))
				continue
			}
			return nil, fmt.Errorf("failed to resolve route %s: %w", m.RouteNumber, err)
		}

		startIdx := route.IndexOf(sourceID)
		destIdx := route.IndexOf(destinationID)
		if startIdx == -1 || destIdx == -1 || startIdx == destIdx {
			continue
		}

		direction := models.DirectionForward
		if startIdx > destIdx {
			direction = models.DirectionBackward
		}

		results = append(results, models.CommonRouteResult{
			RouteNumber:          route.RouteNumber,
			StartStopIndex:       startIdx,
			DestinationStopIndex: destIdx,
			Direction:            direction,
		})
	}

	return results, nil
}
