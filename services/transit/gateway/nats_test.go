package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/onestop/internal/pkg/constants"
	"github.com/piresc/onestop/internal/pkg/metrics"
	"github.com/piresc/onestop/internal/pkg/models"
)

type fakePublisher struct {
	subject string
	data    []byte
	err     error
}

func (p *fakePublisher) Publish(subject string, data []byte) error {
	p.subject = subject
	p.data = data
	return p.err
}

func TestPublishTracking_Success(t *testing.T) {
	pub := &fakePublisher{}
	m := metrics.NewCollector()
	gw := NewTrackingGW(pub, m)

	event := models.TrackingEvent{
		BusID:      "KA01F1234",
		RouteNo:    "210A",
		StopID:     "S2",
		Distance:   850,
		Duration:   180,
		RecordedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	err := gw.PublishTracking(context.Background(), event)
	require.NoError(t, err)

	assert.Equal(t, constants.SubjectBusTracking, pub.subject)
	var got models.TrackingEvent
	require.NoError(t, json.Unmarshal(pub.data, &got))
	assert.Equal(t, event, got)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EventsPublished))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.EventsPublishErrs))
}

func TestPublishTracking_PublishError(t *testing.T) {
	pub := &fakePublisher{err: errors.New("nats: connection closed")}
	m := metrics.NewCollector()
	gw := NewTrackingGW(pub, m)

	err := gw.PublishTracking(context.Background(), models.TrackingEvent{BusID: "B1"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to publish tracking event")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EventsPublishErrs))
}

func TestPublishTracking_NilMetrics(t *testing.T) {
	pub := &fakePublisher{}
	gw := NewTrackingGW(pub, nil)

	assert.NoError(t, gw.PublishTracking(context.Background(), models.TrackingEvent{BusID: "B1"}))
}
