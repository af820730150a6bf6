package model

import (
	"github.com/chazu/smithy/pkg/geom"
	"github.com/chazu/smithy/pkg/quant"
)

// Rigid transforms are represented as sequences of primitive steps.
// Sequential application and application of the composed sequence are the
// same computation, which makes composition associative by construction.

// Transform3 is a composable rigid transform (plus uniform scaling) in 3D.
// The zero value is the identity.
type Transform3 struct {
	steps []func(*Part) (*Part, error)
}

// Translation3 moves by the given offsets.
func Translation3(dx, dy, dz quant.Length) Transform3 {
	return Transform3{steps: []func(*Part) (*Part, error){
		func(p *Part) (*Part, error) { return p.MoveBy(dx, dy, dz) },
	}}
}

// Rotation3 rotates about an axis by the right-hand rule.
func Rotation3(axis geom.Axis3, angle quant.Angle) Transform3 {
	return Transform3{steps: []func(*Part) (*Part, error){
		func(p *Part) (*Part, error) { return p.Rotate(axis, angle) },
	}}
}

// Reflection3 reflects across a plane.
func Reflection3(plane geom.Plane) Transform3 {
	return Transform3{steps: []func(*Part) (*Part, error){
		func(p *Part) (*Part, error) { return p.Mirror(plane) },
	}}
}

// Then returns the transform applying t first, then o.
func (t Transform3) Then(o Transform3) Transform3 {
	steps := make([]func(*Part) (*Part, error), 0, len(t.steps)+len(o.steps))
	steps = append(steps, t.steps...)
	steps = append(steps, o.steps...)
	return Transform3{steps: steps}
}

// Apply returns a copy of the part with the transform applied.
func (p *Part) Apply(t Transform3) (*Part, error) {
	out := p
	for _, step := range t.steps {
		next, err := step(out)
		if err != nil {
			return nil, err
		}
		out = next
	}
	if out == p {
		return p.Clone(), nil
	}
	return out, nil
}

// Transform2 is the sketch-space counterpart of Transform3.
// The zero value is the identity.
type Transform2 struct {
	steps []func(*Sketch) (*Sketch, error)
}

// Translation2 moves by the given offsets.
func Translation2(dx, dy quant.Length) Transform2 {
	return Transform2{steps: []func(*Sketch) (*Sketch, error){
		func(s *Sketch) (*Sketch, error) { return s.MoveBy(dx, dy) },
	}}
}

// Rotation2 rotates counter-clockwise about a point.
func Rotation2(center geom.Point2, angle quant.Angle) Transform2 {
	return Transform2{steps: []func(*Sketch) (*Sketch, error){
		func(s *Sketch) (*Sketch, error) { return s.RotateAround(center, angle) },
	}}
}

// Reflection2 reflects across an axis.
func Reflection2(axis geom.Axis2) Transform2 {
	return Transform2{steps: []func(*Sketch) (*Sketch, error){
		func(s *Sketch) (*Sketch, error) { return s.Mirror(axis) },
	}}
}

// Then returns the transform applying t first, then o.
func (t Transform2) Then(o Transform2) Transform2 {
	steps := make([]func(*Sketch) (*Sketch, error), 0, len(t.steps)+len(o.steps))
	steps = append(steps, t.steps...)
	steps = append(steps, o.steps...)
	return Transform2{steps: steps}
}

// Apply returns a copy of the sketch with the transform applied.
func (s *Sketch) Apply(t Transform2) (*Sketch, error) {
	out := s
	for _, step := range t.steps {
		next, err := step(out)
		if err != nil {
			return nil, err
		}
		out = next
	}
	if out == s {
		return s.Clone(), nil
	}
	return out, nil
}
