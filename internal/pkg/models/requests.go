package models

// NearestStopsRequest is the body of POST /getNearestBustops
type NearestStopsRequest struct {
	UserLat *float64 `json:"userLat" validate:"required,gte=-90,lte=90"`
	UserLon *float64 `json:"userLon" validate:"required,gte=-180,lte=180"`
}

// CommonRoutesRequest is the body of POST /getCommonRoutes
type CommonRoutesRequest struct {
	SourceID      string `json:"sourceId" validate:"required"`
	DestinationID string `json:"destinationId" validate:"required"`
}

// TrackBusRequest is the body of POST /trackBus
type TrackBusRequest struct {
	BusID          string   `json:"busID" validate:"required"`
	RouteNo        string   `json:"routeNo" validate:"required"`
	BusPositionLat *float64 `json:"busPositionLat" validate:"required,gte=-90,lte=90"`
	BusPositionLon *float64 `json:"busPositionLon" validate:"required,gte=-180,lte=180"`
	NextStopID     string   `json:"nextStopID" validate:"required"`
	NextStopLat    *float64 `json:"nextStopLat" validate:"required,gte=-90,lte=90"`
	NextStopLon    *float64 `json:"nextStopLon" validate:"required,gte=-180,lte=180"`
}

// DistanceCheckRequest is the body of POST /checkStopDistance
type DistanceCheckRequest struct {
	BusPositionLat *float64 `json:"busPositionLat" validate:"required,gte=-90,lte=90"`
	BusPositionLon *float64 `json:"busPositionLon" validate:"required,gte=-180,lte=180"`
	NextStopLat    *float64 `json:"nextStopLat" validate:"required,gte=-90,lte=90"`
	NextStopLon    *float64 `json:"nextStopLon" validate:"required,gte=-180,lte=180"`
}

// NextStopRequest is the body of POST /getNextStop
type NextStopRequest struct {
	RouteNo       string `json:"routeNO" validate:"required"`
	CurrStopIndex *int   `json:"currStopIndex" validate:"required"`
	NextStopIndex *int   `json:"nextStopIndex" validate:"required"`
}

// BusesForStopRequest is the body of POST /getBusesForStop
type BusesForStopRequest struct {
	StopID string `json:"stopId" validate:"required"`
}

// LocationInput is a GeoJSON point as sent by clients, [longitude, latitude]
type LocationInput struct {
	Type        string    `json:"type" validate:"omitempty,eq=Point"`
	Coordinates []float64 `json:"coordinates" validate:"required,len=2"`
}

// ToLocation converts a validated input into a stored Location
func (l LocationInput) ToLocation() Location {
	return NewLocation(l.Coordinates[1], l.Coordinates[0])
}

// NewStopRequest is the body of POST /addNewStop
type NewStopRequest struct {
	StopID   string         `json:"stopId" validate:"required"`
	Name     string         `json:"name" validate:"required"`
	Location *LocationInput `json:"location" validate:"required"`
}

// RouteStopRef places an existing stop at an index of a new route
type RouteStopRef struct {
	StopID string `json:"stopId" validate:"required"`
	Index  *int   `json:"index" validate:"required,gte=0"`
}

// NewRouteRequest is the body of POST /addNewRoute
type NewRouteRequest struct {
	RouteNumber string         `json:"routeNumber" validate:"required"`
	RouteType   RouteType      `json:"routeType" validate:"required,oneof=UD C"`
	Stops       []RouteStopRef `json:"stops" validate:"required,min=1,dive"`
}
