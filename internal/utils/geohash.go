package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
	"github.com/piresc/onestop/internal/pkg/models"
)

// GeoPoint represents a geographical point with latitude and longitude
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// EncodeLocation converts a location to a geohash string
func EncodeLocation(location models.Location, precision uint) string {
	return geohash.EncodeWithPrecision(location.Lat(), location.Lon(), precision)
}

// CalculateDistance calculates the distance between two points in kilometers using the Haversine formula
func CalculateDistance(point1, point2 GeoPoint) float64 {
	// Earth's radius in kilometers
	const earthRadius = 6371.0

	lat1 := point1.Latitude * math.Pi / 180.0
	lon1 := point1.Longitude * math.Pi / 180.0
	lat2 := point2.Latitude * math.Pi / 180.0
	lon2 := point2.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadius * c
}

// DistanceMeters is CalculateDistance in meters
func DistanceMeters(point1, point2 GeoPoint) float64 {
	return CalculateDistance(point1, point2) * 1000
}

// CellWithNeighbors returns the geohash cell of a point plus its eight neighbours
func CellWithNeighbors(point GeoPoint, precision uint) []string {
	cell := geohash.EncodeWithPrecision(point.Latitude, point.Longitude, precision)
	return append([]string{cell}, geohash.Neighbors(cell)...)
}

// GeoPointFromLocation converts a Location model to a GeoPoint
func GeoPointFromLocation(location models.Location) GeoPoint {
	return GeoPoint{
		Latitude:  location.Lat(),
		Longitude: location.Lon(),
	}
}
