package quadraster

import "errors"

// Common errors for engine operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("quadraster: invalid dimensions")

	// ErrInvalidThreshold is returned when the partition threshold is below 1.
	ErrInvalidThreshold = errors.New("quadraster: invalid partition threshold")

	// ErrInvalidQueueCapacity is returned when the leaf queue capacity is below 1.
	ErrInvalidQueueCapacity = errors.New("quadraster: invalid queue capacity")

	// ErrInvalidBlendMode is returned when a blend mode name is not recognized.
	ErrInvalidBlendMode = errors.New("quadraster: invalid blend mode")

	// ErrClosed is returned when an operation is attempted on a closed engine.
	ErrClosed = errors.New("quadraster: engine closed")
)
