//go:build !manifold

// Package manifold provides a CGo-based geometry kernel binding to the
// Manifold library. When the "manifold" build tag is not set, this stub
// package is compiled instead, returning an error from New().
//
// Build with: go build -tags=manifold
package manifold

import (
	"errors"

	"github.com/chazu/smithy/pkg/kernel"
)

// Option configures the kernel. Unused by the stub.
type Option func(*struct{})

// WithSegments sets the circular segment count. Unused by the stub.
func WithSegments(n int) Option {
	return func(*struct{}) {}
}

// New returns an error indicating Manifold is not available.
// Build with -tags=manifold to enable.
func New(opts ...Option) (kernel.Kernel, error) {
	return nil, errors.New("manifold kernel not available: build with -tags=manifold")
}
