package models

import "time"

// Travel directions between two stops of a route
const (
	DirectionForward  = "forward"
	DirectionBackward = "backward"
)

// BusPositionRecord describes a bus approaching a stop
type BusPositionRecord struct {
	BusID    string  `json:"busId"`
	RouteNo  string  `json:"routeNo"`
	Distance float64 `json:"distance"` // meters
	Duration float64 `json:"duration"` // seconds
}

// TrackingEvent is published after every recorded approach
type TrackingEvent struct {
	BusID      string    `json:"busId"`
	RouteNo    string    `json:"routeNo"`
	StopID     string    `json:"stopId"`
	Distance   float64   `json:"distance"`
	Duration   float64   `json:"duration"`
	RecordedAt time.Time `json:"recordedAt"`
}

// CommonRouteResult is a route serving both a start and a destination stop
type CommonRouteResult struct {
	RouteNumber          string `json:"routeNumber"`
	StartStopIndex       int    `json:"startStopIndex"`
	DestinationStopIndex int    `json:"destinationStopIndex"`
	Direction            string `json:"direction"`
}

// StopPoint is the stop payload relayed to tracking clients
type StopPoint struct {
	Coordinates Coordinates `json:"coordinates"`
	StopID      string      `json:"stopId"`
	Index       int         `json:"index"`
}

// TraversalResult is one step of a bus along its route
type TraversalResult struct {
	NextStop StopPoint `json:"nextStop"`
	CurrStop StopPoint `json:"currStop"`
}

// DistanceEstimate is the travel distance and time between two points
type DistanceEstimate struct {
	Distance float64 `json:"distance"` // meters
	Duration float64 `json:"duration"` // seconds
}

// BusUpdate is a position report from a bus heading to its next stop
type BusUpdate struct {
	BusID      string
	RouteNo    string
	Position   Coordinates
	NextStopID string
	NextStop   Coordinates
}
