package transit

import "errors"

// Domain errors. Lower layers wrap these with fmt.Errorf("%w: ...") so the
// message names the entity; the HTTP layer maps them with errors.Is.
var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrStopNotFound        = errors.New("stop not found")
	ErrRouteNotFound       = errors.New("route not found")
	ErrIndexOutOfRange     = errors.New("index out of range")
	ErrAlreadyExists       = errors.New("already exists")
	ErrUpstreamUnavailable = errors.New("distance service unavailable")
	ErrCacheUnavailable    = errors.New("live position cache unavailable")
)
