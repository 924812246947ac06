package constants

import "time"

// Redis key formats
const (
	// Live position cache
	KeyStopApproach = "stop:approach:%s" // Format: stop:approach:{stop_id}, hash of bus_id -> record

	// Geo index
	KeyStopGeo = "stops:geo" // GeoHash set of all stop locations

	// Rate Limiting
	KeyRateLimit = "rate_limit:%s" // Format: rate_limit:{ip}
)

// ApproachTTL is how long a stop's approach bucket survives after its last write
const ApproachTTL = 60 * time.Second

// GeoUnitMeters is the radius unit used for geo queries
const GeoUnitMeters = "m"

// StopGeohashPrecision is the cell size stored with each stop and used by the fallback search
const StopGeohashPrecision uint = 5
