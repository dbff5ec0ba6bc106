package octree

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCapacity is returned when the leaf capacity is not positive.
	ErrInvalidCapacity = errors.New("capacity must be positive")

	// ErrMalformedBounds is the class of every *ErrInvalidBounds.
	ErrMalformedBounds = errors.New("malformed bounds")

	// ErrInvalidMaxDepth is returned when WithMaxDepth is outside [0, MaxDepthLimit].
	ErrInvalidMaxDepth = errors.New("max depth out of range")
)

// ErrInvalidBounds indicates a box with Min > Max (or NaN) on some axis.
//
// errors.Is(err, ErrMalformedBounds) holds for every ErrInvalidBounds.
type ErrInvalidBounds struct {
	Axis int
	Min  float32
	Max  float32
}

func (e *ErrInvalidBounds) Error() string {
	return fmt.Sprintf("invalid bounds: %s axis min %g > max %g", axisName(e.Axis), e.Min, e.Max)
}

func (e *ErrInvalidBounds) Unwrap() error { return ErrMalformedBounds }

func axisName(axis int) string {
	switch axis {
	case 0:
		return "x"
	case 1:
		return "y"
	case 2:
		return "z"
	default:
		return fmt.Sprintf("axis(%d)", axis)
	}
}
