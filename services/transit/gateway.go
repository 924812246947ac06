package transit

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/onestop/services/transit DistanceGW,TrackingGW

import (
	"context"

	"github.com/piresc/onestop/internal/pkg/models"
)

// DistanceGW estimates road distance and travel time between two points
type DistanceGW interface {
	Estimate(ctx context.Context, from, to models.Coordinates) (*models.DistanceEstimate, error)
}

// TrackingGW publishes tracking events to the message bus
type TrackingGW interface {
	PublishTracking(ctx context.Context, event models.TrackingEvent) error
}
