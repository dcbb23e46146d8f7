package jps3d

import "errors"

// Construction-time configuration errors (SPEC_FULL.md §7 / A2). Search-time
// failures (blocked endpoint, unreachable finish) are never exceptions —
// they surface as an empty (nil) []Position from FindPath, per spec.md §7.
var (
	// ErrNilGrid is returned by NewSearcher when grid is nil.
	ErrNilGrid = errors.New("jps3d: grid must not be nil")
	// ErrInvalidGrid is returned when grid dimensions are non-positive, or
	// when a raw cell buffer's length doesn't match the given dimensions.
	ErrInvalidGrid = errors.New("jps3d: invalid grid dimensions")
	// ErrInvalidPolicy is returned when a DiagonalPolicy outside the four
	// defined values is supplied.
	ErrInvalidPolicy = errors.New("jps3d: invalid diagonal policy")
)
