package model

import (
	"fmt"

	"github.com/chazu/smithy/pkg/geom"
	"github.com/chazu/smithy/pkg/quant"
)

// Repetition patterns place count copies of the base shape by repeated
// application of the implied transform and combine them with Add, so a
// pattern result is an ordinary shape, indistinguishable from a manually
// unioned set of copies. count includes the base: count == 1 is the
// identity, count < 1 fails with ErrInvalidPatternCount.

func validCount(count int) error {
	if count < 1 {
		return fmt.Errorf("pattern count %d: %w", count, ErrInvalidPatternCount)
	}
	return nil
}

// LinearPattern returns count copies spaced along the given direction,
// each offset by spacing from the previous, unioned into one part.
func (p *Part) LinearPattern(dir geom.Dir3, spacing quant.Length, count int) (*Part, error) {
	if err := validCount(count); err != nil {
		return nil, err
	}
	if p.IsEmpty() {
		return p.Clone(), nil
	}
	result := p.Clone()
	for i := 1; i < count; i++ {
		offset := dir.Scale(spacing.Mul(float64(i)))
		inst, err := p.translated(offset.X, offset.Y, offset.Z)
		if err != nil {
			return nil, err
		}
		result, err = result.Add(inst)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

// CircularPattern returns count copies spaced evenly through a full turn
// about the given axis, unioned into one part.
func (p *Part) CircularPattern(axis geom.Axis3, count int) (*Part, error) {
	if err := validCount(count); err != nil {
		return nil, err
	}
	if p.IsEmpty() {
		return p.Clone(), nil
	}
	step := quant.FullTurn().Div(float64(count))
	result := p.Clone()
	for i := 1; i < count; i++ {
		inst, err := p.Rotate(axis, step.Mul(float64(i)))
		if err != nil {
			return nil, err
		}
		result, err = result.Add(inst)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

// LinearPattern returns count copies spaced along the given direction,
// each offset by spacing from the previous, unioned into one sketch.
func (s *Sketch) LinearPattern(dir geom.Dir2, spacing quant.Length, count int) (*Sketch, error) {
	if err := validCount(count); err != nil {
		return nil, err
	}
	if s.IsEmpty() {
		return s.Clone(), nil
	}
	result := s.Clone()
	for i := 1; i < count; i++ {
		offset := dir.Scale(spacing.Mul(float64(i)))
		inst, err := s.translated(offset.X, offset.Y)
		if err != nil {
			return nil, err
		}
		result, err = result.Add(inst)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

// CircularPattern returns count copies spaced evenly through a full turn
// about the given center point, unioned into one sketch.
func (s *Sketch) CircularPattern(center geom.Point2, count int) (*Sketch, error) {
	if err := validCount(count); err != nil {
		return nil, err
	}
	if s.IsEmpty() {
		return s.Clone(), nil
	}
	step := quant.FullTurn().Div(float64(count))
	result := s.Clone()
	for i := 1; i < count; i++ {
		inst, err := s.RotateAround(center, step.Mul(float64(i)))
		if err != nil {
			return nil, err
		}
		result, err = result.Add(inst)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}
