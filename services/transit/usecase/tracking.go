package usecase

import (
	"context"
	"fmt"

	"github.com/piresc/onestop/internal/pkg/logger"
	"github.com/piresc/onestop/internal/pkg/models"
	"github.com/piresc/onestop/services/transit"
)

// TrackBus estimates how far a bus is from its next stop and records the approach.
// A failed estimate returns ErrUpstreamUnavailable and leaves the cache untouched.
func (uc *TransitUC) TrackBus(ctx context.Context, update models.BusUpdate) (*models.DistanceEstimate, error) {
	estimate, err := uc.distanceGW.Estimate(ctx, update.Position, update.NextStop)
	if err != nil {
		if uc.metrics != nil {
			uc.metrics.UpstreamFailures.Inc()
		}
		logger.WarnCtx(ctx, "Distance unavailable, tracking update not recorded",
			logger.String("bus_id", update.BusID),
			logger.String("stop_id", update.NextStopID),
			logger.Err(err))
		return nil, fmt.Errorf("track bus %s: %w", update.BusID, err)
	}

	record := models.BusPositionRecord{
		BusID:    update.BusID,
		RouteNo:  update.RouteNo,
		Distance: estimate.Distance,
		Duration: estimate.Duration,
	}
	if err := uc.approachRepo.RecordApproach(ctx, update.NextStopID, record); err != nil {
		if uc.metrics != nil {
			uc.metrics.CacheErrors.WithLabelValues("record").Inc()
		}
		return nil, err
	}
	if uc.metrics != nil {
		uc.metrics.TrackingUpdates.Inc()
	}

	if uc.trackingGW != nil {
		event := models.TrackingEvent{
			BusID:      update.BusID,
			RouteNo:    update.RouteNo,
			StopID:     update.NextStopID,
			Distance:   estimate.Distance,
			Duration:   estimate.Duration,
			RecordedAt: models.Now(),
		}
		if err := uc.trackingGW.PublishTracking(ctx, event); err != nil {
			logger.WarnCtx(ctx, "Failed to publish tracking event",
				logger.String("bus_id", update.BusID),
				logger.Err(err))
		}
	}

	return estimate, nil
}

// CheckStopDistance returns the distance between two points without touching the cache
func (uc *TransitUC) CheckStopDistance(ctx context.Context, from, to models.Coordinates) (*models.DistanceEstimate, error) {
	estimate, err := uc.distanceGW.Estimate(ctx, from, to)
	if err != nil {
		if uc.metrics != nil {
			uc.metrics.UpstreamFailures.Inc()
		}
		return nil, err
	}
	return estimate, nil
}

// GetBusesForStop lists the buses currently approaching a stop
func (uc *TransitUC) GetBusesForStop(ctx context.Context, stopID string) ([]models.BusPositionRecord, error) {
	records, err := uc.approachRepo.ListApproaching(ctx, stopID)
	if err != nil {
		if uc.metrics != nil {
			uc.metrics.CacheErrors.WithLabelValues("list").Inc()
		}
		return nil, err
	}
	if records == nil {
		records = []models.BusPositionRecord{}
	}
	return records, nil
}

var _ transit.TransitUC = (*TransitUC)(nil)
