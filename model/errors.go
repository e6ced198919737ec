package model

import "github.com/pkg/errors"

var (
	// ErrInvalidDimension is returned for a grid with a non-positive side length
	ErrInvalidDimension = errors.New("invalid grid dimension")
	// ErrOutOfBounds is returned for a coordinate outside [0, side length)
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrInvalidGenerationCount is returned when a negative number of generations is requested
	ErrInvalidGenerationCount = errors.New("invalid generation count")
	// ErrMalformedInput is returned by the loader when the source is not a well-formed square grid
	ErrMalformedInput = errors.New("malformed input")
	// ErrSourceNotFound is returned by the loader when the source does not exist
	ErrSourceNotFound = errors.New("source not found")
)
