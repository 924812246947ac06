package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/piresc/onestop/internal/pkg/metrics"
	"github.com/piresc/onestop/internal/pkg/models"
	"github.com/piresc/onestop/internal/pkg/seed"
	"github.com/piresc/onestop/services/transit"
	"github.com/piresc/onestop/services/transit/mocks"
)

type testDeps struct {
	stopRepo     *mocks.MockStopRepo
	geoIndex     *mocks.MockGeoIndex
	routeRepo    *mocks.MockRouteRepo
	approachRepo *mocks.MockApproachRepo
	distanceGW   *mocks.MockDistanceGW
	trackingGW   *mocks.MockTrackingGW
	metrics      *metrics.Collector
	uc           *TransitUC
}

func newTestUC(t *testing.T) *testDeps {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	d := &testDeps{
		stopRepo:     mocks.NewMockStopRepo(ctrl),
		geoIndex:     mocks.NewMockGeoIndex(ctrl),
		routeRepo:    mocks.NewMockRouteRepo(ctrl),
		approachRepo: mocks.NewMockApproachRepo(ctrl),
		distanceGW:   mocks.NewMockDistanceGW(ctrl),
		trackingGW:   mocks.NewMockTrackingGW(ctrl),
		metrics:      metrics.NewCollector(),
	}
	cfg := &models.Config{
		Transit: models.TransitConfig{NearestStopRadiusMeters: 1000},
	}
	d.uc = NewTransitUC(d.stopRepo, d.geoIndex, d.routeRepo, d.approachRepo, d.distanceGW, d.trackingGW, d.metrics, cfg)
	return d
}

// serveDataset answers stop and route lookups from the seeded network
func (d *testDeps) serveDataset(t *testing.T) *seed.Dataset {
	ds, err := seed.Default()
	require.NoError(t, err)

	d.stopRepo.EXPECT().GetStop(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, id string) (*models.Stop, error) {
			if s := ds.Stop(id); s != nil {
				return s, nil
			}
			return nil, fmt.Errorf("%w: %s", transit.ErrStopNotFound, id)
		}).AnyTimes()
	d.routeRepo.EXPECT().GetRoute(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, number string) (*models.Route, error) {
			if r := ds.Route(number); r != nil {
				return r, nil
			}
			return nil, fmt.Errorf("%w: %s", transit.ErrRouteNotFound, number)
		}).AnyTimes()
	return ds
}

func intPtr(i int) *int { return &i }
