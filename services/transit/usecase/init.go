package usecase

import (
	"github.com/piresc/onestop/internal/pkg/metrics"
	"github.com/piresc/onestop/internal/pkg/models"
	"github.com/piresc/onestop/services/transit"
)

// TransitUC implements transit.TransitUC
type TransitUC struct {
	stopRepo     transit.StopRepo
	geoIndex     transit.GeoIndex
	routeRepo    transit.RouteRepo
	approachRepo transit.ApproachRepo
	distanceGW   transit.DistanceGW
	trackingGW   transit.TrackingGW
	metrics      *metrics.Collector
	cfg          *models.Config
}

// NewTransitUC creates a new transit usecase instance. trackingGW and m may be nil.
func NewTransitUC(
	stopRepo transit.StopRepo,
	geoIndex transit.GeoIndex,
	routeRepo transit.RouteRepo,
	approachRepo transit.ApproachRepo,
	distanceGW transit.DistanceGW,
	trackingGW transit.TrackingGW,
	m *metrics.Collector,
	cfg *models.Config,
) *TransitUC {
	return &TransitUC{
		stopRepo:     stopRepo,
		geoIndex:     geoIndex,
		routeRepo:    routeRepo,
		approachRepo: approachRepo,
		distanceGW:   distanceGW,
		trackingGW:   trackingGW,
		metrics:      m,
		cfg:          cfg,
	}
}
