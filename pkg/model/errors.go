package model

import "errors"

// Shape construction and composition failures. Kernel-level failures are
// wrapped, never swallowed: errors.As against *kernel.Error recovers the
// backend's own description.
var (
	// ErrDegenerateGeometry: a requested dimension is non-positive, a
	// polygon is self-intersecting or has fewer than 3 vertices, or a
	// scale factor is non-positive.
	ErrDegenerateGeometry = errors.New("degenerate geometry")

	// ErrBooleanFailed: the kernel rejected a boolean composition.
	ErrBooleanFailed = errors.New("boolean operation failed")

	// ErrInvalidPatternCount: a pattern was requested with count < 1.
	ErrInvalidPatternCount = errors.New("invalid pattern count")

	// ErrEmptyPart: an operation that needs material was called on an
	// empty Part. Empty shapes themselves are valid values, not errors.
	ErrEmptyPart = errors.New("empty part")

	// ErrEmptySketch: the 2D counterpart of ErrEmptyPart.
	ErrEmptySketch = errors.New("empty sketch")
)
