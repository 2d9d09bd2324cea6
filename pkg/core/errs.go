package core

import "errors"

var (
	// ErrInitialization is returned when a chart cannot be bound to its surface.
	ErrInitialization = errors.New("chart initialization failed")
	// ErrConfiguration is returned for malformed or empty datasets and options.
	ErrConfiguration = errors.New("invalid chart configuration")
)
