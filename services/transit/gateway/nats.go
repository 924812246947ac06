package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/piresc/onestop/internal/pkg/constants"
	"github.com/piresc/onestop/internal/pkg/metrics"
	"github.com/piresc/onestop/internal/pkg/models"
	"github.com/piresc/onestop/services/transit"
)

// Publisher is the part of the NATS client the tracking gateway needs
type Publisher interface {
	Publish(subject string, data []byte) error
}

type trackingGW struct {
	publisher Publisher
	metrics   *metrics.Collector
}

// NewTrackingGW creates a new tracking gateway. m may be nil.
func NewTrackingGW(publisher Publisher, m *metrics.Collector) transit.TrackingGW {
	return &trackingGW{
		publisher: publisher,
		metrics:   m,
	}
}

// PublishTracking publishes a tracking event to NATS
func (g *trackingGW) PublishTracking(ctx context.Context, event models.TrackingEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal tracking event: %w", err)
	}

	if err := g.publisher.Publish(constants.SubjectBusTracking, data); err != nil {
		if g.metrics != nil {
			g.metrics.EventsPublishErrs.Inc()
		}
		return fmt.Errorf("failed to publish tracking event: %w", err)
	}

	if g.metrics != nil {
		g.metrics.EventsPublished.Inc()
	}
	return nil
}
