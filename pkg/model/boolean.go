package model

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/chazu/smithy/pkg/kernel"
)

// Boolean composition. Part and Sketch share one contract:
//
//   - Operations are pure: operands are never mutated, the result is a new
//     independently owned entity.
//   - Empty operands resolve here, without a kernel call:
//     add(s, empty) = s, subtract(s, empty) = s, subtract(empty, x) = empty,
//     intersect with empty = empty.
//   - A yielded empty region (intersecting disjoint shapes) is a success
//     returning the explicit empty shape, detected by bounding-box
//     disjointness before the kernel is asked.
//   - Kernel rejections fail with ErrBooleanFailed carrying the operation
//     name and the kernel's description.

// Add returns the union of two parts.
func (p *Part) Add(o *Part) (*Part, error) {
	return p.combine(kernel.OpUnion, o)
}

// Subtract returns this part with the other's overlap removed.
func (p *Part) Subtract(o *Part) (*Part, error) {
	if p.IsEmpty() {
		return p.Clone(), nil
	}
	if o.IsEmpty() {
		return p.Clone(), nil
	}
	if !p.BoundingBox().Overlaps(o.BoundingBox()) {
		// Nothing to remove.
		return p.Clone(), nil
	}
	solid, err := p.k.Boolean(kernel.OpDifference, p.solid, o.solid)
	if err != nil {
		return nil, booleanErr(kernel.OpDifference, err)
	}
	return newPart(p.k, solid), nil
}

// Intersect returns the overlapping volume of two parts. Disjoint parts
// intersect to the explicit empty part.
func (p *Part) Intersect(o *Part) (*Part, error) {
	if p.IsEmpty() || o.IsEmpty() {
		return &Part{id: uuid.New(), k: p.k}, nil
	}
	if !p.BoundingBox().Overlaps(o.BoundingBox()) {
		return &Part{id: uuid.New(), k: p.k}, nil
	}
	solid, err := p.k.Boolean(kernel.OpIntersection, p.solid, o.solid)
	if err != nil {
		return nil, booleanErr(kernel.OpIntersection, err)
	}
	return newPart(p.k, solid), nil
}

// Interface returns the union of two parts with coincident boundaries
// merged into shared topology, keeping downstream meshing and assembly
// consistent where the operands touch.
func (p *Part) Interface(o *Part) (*Part, error) {
	return p.combine(kernel.OpInterface, o)
}

// combine implements the union-shaped operations, which share their empty
// policy.
func (p *Part) combine(op kernel.Op, o *Part) (*Part, error) {
	switch {
	case p.IsEmpty() && o.IsEmpty():
		return p.Clone(), nil
	case p.IsEmpty():
		return o.Clone(), nil
	case o.IsEmpty():
		return p.Clone(), nil
	}
	solid, err := p.k.Boolean(op, p.solid, o.solid)
	if err != nil {
		return nil, booleanErr(op, err)
	}
	return newPart(p.k, solid), nil
}

// Add returns the union of two sketches.
func (s *Sketch) Add(o *Sketch) (*Sketch, error) {
	return s.combine(kernel.OpUnion, o)
}

// Subtract returns this sketch with the other's overlap removed.
func (s *Sketch) Subtract(o *Sketch) (*Sketch, error) {
	if s.IsEmpty() {
		return s.Clone(), nil
	}
	if o.IsEmpty() {
		return s.Clone(), nil
	}
	if !s.BoundingBox().Overlaps(o.BoundingBox()) {
		return s.Clone(), nil
	}
	profile, err := s.k.Boolean2(kernel.OpDifference, s.profile, o.profile)
	if err != nil {
		return nil, booleanErr(kernel.OpDifference, err)
	}
	return newSketch(s.k, profile), nil
}

// Intersect returns the overlapping area of two sketches. Disjoint
// sketches intersect to the explicit empty sketch.
func (s *Sketch) Intersect(o *Sketch) (*Sketch, error) {
	if s.IsEmpty() || o.IsEmpty() {
		return &Sketch{id: uuid.New(), k: s.k}, nil
	}
	if !s.BoundingBox().Overlaps(o.BoundingBox()) {
		return &Sketch{id: uuid.New(), k: s.k}, nil
	}
	profile, err := s.k.Boolean2(kernel.OpIntersection, s.profile, o.profile)
	if err != nil {
		return nil, booleanErr(kernel.OpIntersection, err)
	}
	return newSketch(s.k, profile), nil
}

// Interface returns the union of two sketches with coincident boundaries
// merged into shared edges.
func (s *Sketch) Interface(o *Sketch) (*Sketch, error) {
	return s.combine(kernel.OpInterface, o)
}

func (s *Sketch) combine(op kernel.Op, o *Sketch) (*Sketch, error) {
	switch {
	case s.IsEmpty() && o.IsEmpty():
		return s.Clone(), nil
	case s.IsEmpty():
		return o.Clone(), nil
	case o.IsEmpty():
		return s.Clone(), nil
	}
	profile, err := s.k.Boolean2(op, s.profile, o.profile)
	if err != nil {
		return nil, booleanErr(op, err)
	}
	return newSketch(s.k, profile), nil
}

func booleanErr(op kernel.Op, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrBooleanFailed, err)
}
