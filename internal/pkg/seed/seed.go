// Package seed loads the sample stop and route network into the stores.
package seed

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/piresc/onestop/internal/pkg/logger"
	"github.com/piresc/onestop/internal/pkg/models"
	"github.com/piresc/onestop/services/transit"
)

//go:embed dataset.yaml
var defaultDataset []byte

// Dataset is a stop and route network. Route stops reference stops by id.
type Dataset struct {
	Stops  []models.Stop  `yaml:"stops"`
	Routes []models.Route `yaml:"routes"`
}

// Result counts what Apply wrote
type Result struct {
	StopsCreated  int
	RoutesCreated int
	StopsIndexed  int
}

// Default returns the embedded Bengaluru dataset
func Default() (*Dataset, error) {
	return Parse(defaultDataset)
}

// LoadFile reads a dataset from path, or the embedded one when path is empty
func LoadFile(path string) (*Dataset, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML dataset and resolves route stops against the stop list
func Parse(data []byte) (*Dataset, error) {
	var d Dataset
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to parse seed dataset: %w", err)
	}
	if err := d.resolve(); err != nil {
		return nil, err
	}
	return &d, nil
}

// resolve fills route stop names and locations and each stop's memberships
func (d *Dataset) resolve() error {
	byID := make(map[string]int, len(d.Stops))
	for i := range d.Stops {
		s := &d.Stops[i]
		if _, dup := byID[s.StopID]; dup {
			return fmt.Errorf("%w: duplicate stop %s", transit.ErrInvalidInput, s.StopID)
		}
		if s.Location.Type == "" {
			s.Location.Type = models.GeoJSONPoint
		}
		s.Routes = []models.RouteMembership{}
		byID[s.StopID] = i
	}

	for ri := range d.Routes {
		r := &d.Routes[ri]
		if !r.RouteType.Valid() {
			return fmt.Errorf("%w: route %s has type %q", transit.ErrInvalidInput, r.RouteNumber, r.RouteType)
		}
		if len(r.Stops) < r.RouteType.MinStops() {
			return fmt.Errorf("%w: route %s has %d stops", transit.ErrInvalidInput, r.RouteNumber, len(r.Stops))
		}
		for i := range r.Stops {
			rs := &r.Stops[i]
			if rs.Index != i {
				return fmt.Errorf("%w: route %s index %d at position %d", transit.ErrInvalidInput, r.RouteNumber, rs.Index, i)
			}
			si, ok := byID[rs.StopID]
			if !ok {
				return fmt.Errorf("%w: route %s references %s", transit.ErrStopNotFound, r.RouteNumber, rs.StopID)
			}
			stop := &d.Stops[si]
			rs.Name = stop.Name
			rs.Location = stop.Location
			stop.Routes = append(stop.Routes, models.RouteMembership{RouteNumber: r.RouteNumber, Index: i})
		}
	}
	return nil
}

// Stop returns the stop with id or nil
func (d *Dataset) Stop(id string) *models.Stop {
	for i := range d.Stops {
		if d.Stops[i].StopID == id {
			return &d.Stops[i]
		}
	}
	return nil
}

// Route returns the route with number or nil
func (d *Dataset) Route(number string) *models.Route {
	for i := range d.Routes {
		if d.Routes[i].RouteNumber == number {
			return &d.Routes[i]
		}
	}
	return nil
}

// Apply writes the dataset into the stores, skipping stops and routes that already exist.
// Every stop is (re)added to the geo index when geoIndex is not nil.
func Apply(ctx context.Context, d *Dataset, stops transit.StopRepo, routes transit.RouteRepo, geoIndex transit.GeoIndex) (Result, error) {
	var res Result

	for i := range d.Stops {
		stop := d.Stops[i]
		_, err := stops.GetStop(ctx, stop.StopID)
		switch {
		case err == nil:
		case errors.Is(err, transit.ErrStopNotFound):
			if err := stops.CreateStop(ctx, &stop); err != nil {
				return res, err
			}
			res.StopsCreated++
		default:
			return res, err
		}

		if geoIndex != nil {
			if err := geoIndex.IndexStop(ctx, &stop); err != nil {
				return res, err
			}
			res.StopsIndexed++
		}
	}

	for i := range d.Routes {
		route := d.Routes[i]
		_, err := routes.GetRoute(ctx, route.RouteNumber)
		switch {
		case err == nil:
			logger.Debug("Route already seeded", logger.String("route_number", route.RouteNumber))
			continue
		case errors.Is(err, transit.ErrRouteNotFound):
		default:
			return res, err
		}

		if err := routes.CreateRoute(ctx, &route); err != nil {
			return res, err
		}
		res.RoutesCreated++
	}

	return res, nil
}
