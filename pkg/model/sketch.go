package model

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/chazu/smithy/pkg/geom"
	"github.com/chazu/smithy/pkg/kernel"
	"github.com/chazu/smithy/pkg/quant"
)

// Sketch is a 2D planar profile: the two-dimensional counterpart of Part,
// with the same immutability, ownership and empty-shape discipline.
// Sketches become solids through Extrude and Revolve.
type Sketch struct {
	id      uuid.UUID
	k       kernel.Kernel
	profile kernel.Profile
}

func newSketch(k kernel.Kernel, profile kernel.Profile) *Sketch {
	return &Sketch{id: uuid.New(), k: k, profile: profile}
}

// ID returns the entity identity.
func (s *Sketch) ID() uuid.UUID { return s.id }

// IsEmpty reports whether this is the explicit empty sketch.
func (s *Sketch) IsEmpty() bool { return s.profile == nil }

// Clone returns a new entity over the same geometry with a fresh identity.
func (s *Sketch) Clone() *Sketch {
	return newSketch(s.k, s.profile)
}

// String describes the sketch for diagnostics.
func (s *Sketch) String() string {
	if s.IsEmpty() {
		return fmt.Sprintf("Sketch(%s, empty)", shortID(s.id))
	}
	b := s.BoundingBox()
	return fmt.Sprintf("Sketch(%s, bounds %s..%s)", shortID(s.id), b.Min, b.Max)
}

// BoundingBox returns the axis-aligned bounding rectangle. The empty sketch
// has a zero rectangle at the origin.
func (s *Sketch) BoundingBox() geom.Bounds2 {
	if s.IsEmpty() {
		return geom.Bounds2{}
	}
	min, max := s.profile.BoundingBox()
	return geom.Bounds2{
		Min: geom.Pt2(quant.Millimeters(min[0]), quant.Millimeters(min[1])),
		Max: geom.Pt2(quant.Millimeters(max[0]), quant.Millimeters(max[1])),
	}
}

// Center returns the center of area. The empty sketch has no center and
// fails with ErrEmptySketch.
func (s *Sketch) Center() (geom.Point2, error) {
	if s.IsEmpty() {
		return geom.Point2{}, ErrEmptySketch
	}
	c, err := s.k.Centroid2(s.profile)
	if err != nil {
		return geom.Point2{}, err
	}
	return geom.Pt2(quant.Millimeters(c[0]), quant.Millimeters(c[1])), nil
}

// Area returns the enclosed area. The empty sketch has zero area. The
// value is integrated numerically and carries the backend's measurement
// resolution.
func (s *Sketch) Area() (quant.Area, error) {
	if s.IsEmpty() {
		return quant.Area{}, nil
	}
	a, err := s.k.Area(s.profile)
	if err != nil {
		return quant.Area{}, err
	}
	return quant.SquareMillimeters(a), nil
}

// Eq reports whether two sketches cover the same region, within BoundsTol
// for placement and GeomTol for area. Empty sketches equal only each other.
func (s *Sketch) Eq(o *Sketch) bool {
	if s.IsEmpty() || o.IsEmpty() {
		return s.IsEmpty() && o.IsEmpty()
	}
	sb, ob := s.BoundingBox(), o.BoundingBox()
	closeEnough := func(a, b quant.Length) bool {
		return a.Sub(b).Abs().MM() <= BoundsTol.MM()
	}
	if !closeEnough(sb.Min.X, ob.Min.X) || !closeEnough(sb.Min.Y, ob.Min.Y) ||
		!closeEnough(sb.Max.X, ob.Max.X) || !closeEnough(sb.Max.Y, ob.Max.Y) {
		return false
	}
	sa, err := s.Area()
	if err != nil {
		return false
	}
	oa, err := o.Area()
	if err != nil {
		return false
	}
	return sa.Eq(oa, GeomTol)
}

// MoveTo returns a copy with the center of area placed at the given point.
// Moving the empty sketch yields the empty sketch.
func (s *Sketch) MoveTo(loc geom.Point2) (*Sketch, error) {
	if s.IsEmpty() {
		return s.Clone(), nil
	}
	center, err := s.Center()
	if err != nil {
		return nil, err
	}
	d := loc.Sub(center)
	return s.translated(d.X, d.Y)
}

// MoveBy returns a copy translated by the given offsets.
func (s *Sketch) MoveBy(dx, dy quant.Length) (*Sketch, error) {
	if s.IsEmpty() {
		return s.Clone(), nil
	}
	return s.translated(dx, dy)
}

func (s *Sketch) translated(dx, dy quant.Length) (*Sketch, error) {
	profile, err := s.k.Translate2(s.profile, dx.MM(), dy.MM())
	if err != nil {
		return nil, err
	}
	return newSketch(s.k, profile), nil
}

// Rotate returns a copy rotated counter-clockwise about its center of area.
func (s *Sketch) Rotate(angle quant.Angle) (*Sketch, error) {
	if s.IsEmpty() {
		return s.Clone(), nil
	}
	center, err := s.Center()
	if err != nil {
		return nil, err
	}
	return s.RotateAround(center, angle)
}

// RotateAround returns a copy rotated counter-clockwise about a point.
func (s *Sketch) RotateAround(pt geom.Point2, angle quant.Angle) (*Sketch, error) {
	if s.IsEmpty() {
		return s.Clone(), nil
	}
	profile, err := s.k.Rotate2(s.profile,
		[2]float64{pt.X.MM(), pt.Y.MM()}, angle.Rad())
	if err != nil {
		return nil, err
	}
	return newSketch(s.k, profile), nil
}

// Mirror returns a copy reflected across the given axis.
func (s *Sketch) Mirror(axis geom.Axis2) (*Sketch, error) {
	if s.IsEmpty() {
		return s.Clone(), nil
	}
	profile, err := s.k.Mirror2(s.profile,
		[2]float64{axis.Origin.X.MM(), axis.Origin.Y.MM()},
		[2]float64{axis.Direction.X(), axis.Direction.Y()},
	)
	if err != nil {
		return nil, err
	}
	return newSketch(s.k, profile), nil
}

// Scale returns a copy scaled uniformly about its center of area.
// Non-positive factors are degenerate.
func (s *Sketch) Scale(factor float64) (*Sketch, error) {
	if factor <= 0 {
		return nil, fmt.Errorf("scale factor %g: %w", factor, ErrDegenerateGeometry)
	}
	if s.IsEmpty() {
		return s.Clone(), nil
	}
	center, err := s.Center()
	if err != nil {
		return nil, err
	}
	profile, err := s.k.Scale2(s.profile,
		[2]float64{center.X.MM(), center.Y.MM()}, factor)
	if err != nil {
		return nil, err
	}
	return newSketch(s.k, profile), nil
}

// Extrude sweeps the sketch along Z by height into a Part, centered about
// the sketch plane. Extruding the empty sketch fails with ErrEmptySketch;
// a non-positive height is degenerate.
func (s *Sketch) Extrude(height quant.Length) (*Part, error) {
	if s.IsEmpty() {
		return nil, ErrEmptySketch
	}
	if !height.IsPositive() {
		return nil, fmt.Errorf("extrude height %s: %w", height, ErrDegenerateGeometry)
	}
	solid, err := s.k.Extrude(s.profile, height.MM())
	if err != nil {
		return nil, err
	}
	return newPart(s.k, solid), nil
}

// Revolve sweeps the sketch about the model Z axis by the given angle into
// a Part. The sketch's x coordinate becomes the radial distance, so the
// profile must lie in the positive-x half plane. The angle must be in
// (0, 360°].
func (s *Sketch) Revolve(angle quant.Angle) (*Part, error) {
	if s.IsEmpty() {
		return nil, ErrEmptySketch
	}
	if angle.Rad() <= 0 || angle.Rad() > 2*math.Pi+quant.Eps {
		return nil, fmt.Errorf("revolve angle %s: %w", angle, ErrDegenerateGeometry)
	}
	min, _ := s.profile.BoundingBox()
	if min[0] < -quant.Eps {
		return nil, fmt.Errorf("revolve profile crosses the axis: %w", ErrDegenerateGeometry)
	}
	solid, err := s.k.Revolve(s.profile, angle.Rad())
	if err != nil {
		return nil, err
	}
	return newPart(s.k, solid), nil
}
