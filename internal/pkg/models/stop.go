package models

// GeoJSONPoint is the point type name used for stored locations
const GeoJSONPoint = "Point"

// Location is a GeoJSON point. Coordinates are ordered [longitude, latitude].
type Location struct {
	Type        string     `json:"type" yaml:"type" validate:"omitempty,eq=Point"`
	Coordinates [2]float64 `json:"coordinates" yaml:"coordinates"`
}

// NewLocation builds a GeoJSON point from latitude and longitude
func NewLocation(lat, lon float64) Location {
	return Location{Type: GeoJSONPoint, Coordinates: [2]float64{lon, lat}}
}

// Lat returns the latitude of the point
func (l Location) Lat() float64 {
	return l.Coordinates[1]
}

// Lon returns the longitude of the point
func (l Location) Lon() float64 {
	return l.Coordinates[0]
}

// ToCoordinates converts the point into the lat/lon pair sent to tracking clients
func (l Location) ToCoordinates() Coordinates {
	return Coordinates{Lat: l.Lat(), Lon: l.Lon()}
}

// Coordinates is a latitude/longitude pair
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// RouteMembership records a stop's position along one route
type RouteMembership struct {
	RouteNumber string `json:"routeNumber" yaml:"routeNumber" db:"route_number"`
	Index       int    `json:"index" yaml:"index" db:"idx"`
}

// Stop is a fixed geographic point served by one or more routes
type Stop struct {
	StopID   string            `json:"stopId" yaml:"stopId"`
	Name     string            `json:"name" yaml:"name"`
	Location Location          `json:"location" yaml:"location"`
	Routes   []RouteMembership `json:"routes" yaml:"routes"`
}
