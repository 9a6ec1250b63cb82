package model

import "github.com/pkg/errors"

var (
	// ErrInvalidDimensions is returned when a grid is requested with a non-positive size.
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
	// ErrUnknownBoundary is returned for a boundary value outside Toroidal and Finite.
	ErrUnknownBoundary = errors.New("unknown boundary type")
	// ErrOutOfBounds marks a coordinate outside [0, width) x [0, height).
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrUnknownPattern is returned when a seed pattern name is not registered.
	ErrUnknownPattern = errors.New("unknown pattern")
)
