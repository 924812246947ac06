package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/piresc/onestop/internal/pkg/constants"
	"github.com/piresc/onestop/internal/pkg/database"
	"github.com/piresc/onestop/internal/pkg/logger"
	"github.com/piresc/onestop/internal/pkg/models"
	"github.com/piresc/onestop/services/transit"
)

// ApproachRepo stores buses approaching each stop in a Redis hash keyed by bus id
type ApproachRepo struct {
	redisClient *database.RedisClient
}

// NewApproachRepository creates a new live position cache
func NewApproachRepository(redisClient *database.RedisClient) transit.ApproachRepo {
	return &ApproachRepo{redisClient: redisClient}
}

// RecordApproach upserts the bus entry and refreshes the stop's expiry window
func (r *ApproachRepo) RecordApproach(ctx context.Context, stopID string, record models.BusPositionRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal approach: %w", err)
	}

	key := fmt.Sprintf(constants.KeyStopApproach, stopID)
	if err := r.redisClient.HSetWithTTL(ctx, key, record.BusID, data, constants.ApproachTTL); err != nil {
		return fmt.Errorf("%w: record approach for stop %s: %v", transit.ErrCacheUnavailable, stopID, err)
	}
	return nil
}

// ListApproaching returns every live entry for a stop. An expired or unknown stop yields an empty list.
func (r *ApproachRepo) ListApproaching(ctx context.Context, stopID string) ([]models.BusPositionRecord, error) {
	key := fmt.Sprintf(constants.KeyStopApproach, stopID)
	entries, err := r.redisClient.HGetAll(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("%w: list approaching for stop %s: %v", transit.ErrCacheUnavailable, stopID, err)
	}

	records := make([]models.BusPositionRecord, 0, len(entries))
	for busID, raw := range entries {
		var record models.BusPositionRecord
		if err := json.Unmarshal([]byte(raw), &record); err != nil {
			logger.WarnCtx(ctx, "Skipping malformed approach entry",
				logger.String("stop_id", stopID),
				logger.String("bus_id", busID),
				logger.Err(err))
			continue
		}
		records = append(records, record)
	}
	return records, nil
}
