package wm

import "errors"

// Operation failures are local: a returned error means the manager's state
// was not modified.
var (
	// ErrInvalidGeometry is returned when a window would be created
	// smaller than the configured minimum size.
	ErrInvalidGeometry = errors.New("window geometry below minimum size")

	// ErrUnknownWindow is returned when an operation references a window
	// id that does not exist or was destroyed.
	ErrUnknownWindow = errors.New("unknown window id")
)
