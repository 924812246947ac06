package repository

import (
	"context"
	"fmt"

	"github.com/piresc/onestop/internal/pkg/constants"
	"github.com/piresc/onestop/internal/pkg/database"
	"github.com/piresc/onestop/internal/pkg/models"
	"github.com/piresc/onestop/services/transit"
)

// GeoIndexRepo keeps stop positions in a Redis geo set
type GeoIndexRepo struct {
	redisClient *database.RedisClient
}

// NewGeoIndexRepository creates a new Redis backed stop index
func NewGeoIndexRepository(redisClient *database.RedisClient) transit.GeoIndex {
	return &GeoIndexRepo{redisClient: redisClient}
}

// IndexStop adds or moves a stop in the geo set
func (r *GeoIndexRepo) IndexStop(ctx context.Context, stop *models.Stop) error {
	err := r.redisClient.GeoAdd(ctx, constants.KeyStopGeo, stop.Location.Lon(), stop.Location.Lat(), stop.StopID)
	if err != nil {
		return fmt.Errorf("%w: index stop %s: %v", transit.ErrCacheUnavailable, stop.StopID, err)
	}
	return nil
}

// NearestStopIDs returns ids of stops within radius, nearest first
func (r *GeoIndexRepo) NearestStopIDs(ctx context.Context, point models.Coordinates, radiusMeters float64) ([]string, error) {
	locations, err := r.redisClient.GeoRadius(ctx, constants.KeyStopGeo, point.Lon, point.Lat, radiusMeters, constants.GeoUnitMeters)
	if err != nil {
		return nil, fmt.Errorf("%w: geo radius: %v", transit.ErrCacheUnavailable, err)
	}

	ids := make([]string, 0, len(locations))
	for _, loc := range locations {
		ids = append(ids, loc.Name)
	}
	return ids, nil
}
