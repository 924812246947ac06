package models

// RouteType tells the traversal engine how a bus moves past the last stop
type RouteType string

const (
	// RouteTypeUpDown routes run to the last stop and then back
	RouteTypeUpDown RouteType = "UD"
	// RouteTypeCircular routes wrap from the last stop back to the first
	RouteTypeCircular RouteType = "C"
)

// Valid reports whether t is a known route type
func (t RouteType) Valid() bool {
	return t == RouteTypeUpDown || t == RouteTypeCircular
}

// MinStops returns the smallest stop count a route of this type may have
func (t RouteType) MinStops() int {
	if t == RouteTypeUpDown {
		return 2
	}
	return 1
}

// RouteStop is one entry of a route's ordered stop sequence
type RouteStop struct {
	Index    int      `json:"index" yaml:"index"`
	StopID   string   `json:"stopId" yaml:"stopId"`
	Name     string   `json:"name" yaml:"name"`
	Location Location `json:"location" yaml:"location"`
}

// Route is an ordered sequence of stops
type Route struct {
	RouteNumber string      `json:"routeNumber" yaml:"routeNumber"`
	RouteType   RouteType   `json:"routeType" yaml:"routeType"`
	Stops       []RouteStop `json:"stops" yaml:"stops"`
}

// IndexOf returns the position of stopID in the route or -1
func (r *Route) IndexOf(stopID string) int {
	for i, s := range r.Stops {
		if s.StopID == stopID {
			return i
		}
	}
	return -1
}
