package ledcanvas

import "errors"

// Sentinel errors. Drawing calls never return errors; only construction
// does.
var (
	// ErrInvalidArgument is returned for a nil surface or invalid dimensions.
	ErrInvalidArgument = errors.New("ledcanvas: invalid argument")

	// ErrClosed is returned when a closed context or frame is reused.
	ErrClosed = errors.New("ledcanvas: closed")
)
