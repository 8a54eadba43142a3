package tsconfig

import "errors"

var (
	// ErrInvalidOverride is returned when an explicit config override points at a path that does not exist.
	ErrInvalidOverride = errors.New("tsconfig override does not exist")
	// ErrMalformedConfig is returned when a config file cannot be parsed or carries fields of the wrong shape.
	ErrMalformedConfig = errors.New("malformed tsconfig")
	// ErrCircularExtends is returned when an extends chain refers back to a file already being loaded.
	ErrCircularExtends = errors.New("circular tsconfig extends chain")
)
