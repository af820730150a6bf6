// Package model implements the shape-composition layer: Sketch (2D) and
// Part (3D) entities, their primitive constructors, boolean composition,
// rigid transforms and repetition patterns.
//
// Entities are immutable: every operation returns a new entity and never
// mutates its operands. Each entity owns one kernel shape handle; the
// explicit empty shape is represented by a nil handle, so boolean identity
// cases are resolved here without a kernel round trip.
//
// All dimensional parameters are quant.Length / quant.Angle values. Raw
// numbers cross into geometry only inside the kernel adapter.
package model

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/chazu/smithy/pkg/geom"
	"github.com/chazu/smithy/pkg/kernel"
	"github.com/chazu/smithy/pkg/quant"
)

// GeomTol is the relative tolerance for derived measurements (volume,
// area) when comparing shapes. Mass properties are integrated over
// tessellations, so exact equality is not meaningful.
var GeomTol = 0.02

// BoundsTol is the absolute tolerance for bounding-box comparison.
var BoundsTol = quant.Millimeters(0.25)

// Workspace is the construction entry point. It binds every entity it
// creates to one kernel backend; entities from different workspaces must
// not be combined.
type Workspace struct {
	k kernel.Kernel
}

// New creates a workspace over the given kernel backend.
func New(k kernel.Kernel) *Workspace {
	return &Workspace{k: k}
}

// Kernel returns the backend this workspace constructs on.
func (w *Workspace) Kernel() kernel.Kernel { return w.k }

// EmptyPart returns the explicit empty 3D shape. It is the identity for
// Add and Subtract and the absorbing element for Intersect.
func (w *Workspace) EmptyPart() *Part {
	return &Part{id: uuid.New(), k: w.k}
}

// EmptySketch returns the explicit empty 2D shape.
func (w *Workspace) EmptySketch() *Sketch {
	return &Sketch{id: uuid.New(), k: w.k}
}

// Box constructs a box with the given dimensions, centered on the origin.
func (w *Workspace) Box(x, y, z quant.Length) (*Part, error) {
	if err := positive("box dimension", x, y, z); err != nil {
		return nil, err
	}
	solid, err := w.k.Box(x.MM(), y.MM(), z.MM())
	if err != nil {
		return nil, err
	}
	return newPart(w.k, solid), nil
}

// Cube constructs a cube with the given edge length, centered on the origin.
func (w *Workspace) Cube(size quant.Length) (*Part, error) {
	return w.Box(size, size, size)
}

// BoxFromCorners constructs the axis-aligned box spanned by two opposite
// corners. Corners that coincide in any axis are degenerate.
func (w *Workspace) BoxFromCorners(c1, c2 geom.Point3) (*Part, error) {
	dx := c2.X.Sub(c1.X).Abs()
	dy := c2.Y.Sub(c1.Y).Abs()
	dz := c2.Z.Sub(c1.Z).Abs()
	box, err := w.Box(dx, dy, dz)
	if err != nil {
		return nil, err
	}
	center := geom.Pt3(
		c1.X.Add(c2.X).Div(2),
		c1.Y.Add(c2.Y).Div(2),
		c1.Z.Add(c2.Z).Div(2),
	)
	return box.translated(center.X, center.Y, center.Z)
}

// Cylinder constructs a cylinder along Z, centered on the origin.
func (w *Workspace) Cylinder(height, radius quant.Length) (*Part, error) {
	if err := positive("cylinder dimension", height, radius); err != nil {
		return nil, err
	}
	solid, err := w.k.Cylinder(height.MM(), radius.MM())
	if err != nil {
		return nil, err
	}
	return newPart(w.k, solid), nil
}

// Sphere constructs a sphere centered on the origin.
func (w *Workspace) Sphere(radius quant.Length) (*Part, error) {
	if err := positive("sphere radius", radius); err != nil {
		return nil, err
	}
	solid, err := w.k.Sphere(radius.MM())
	if err != nil {
		return nil, err
	}
	return newPart(w.k, solid), nil
}

// Cone constructs a truncated cone along Z, centered on the origin. A zero
// top radius gives a full cone; the bottom radius and height must be
// strictly positive.
func (w *Workspace) Cone(height, bottomRadius, topRadius quant.Length) (*Part, error) {
	if err := positive("cone dimension", height, bottomRadius); err != nil {
		return nil, err
	}
	if topRadius.MM() < 0 {
		return nil, fmt.Errorf("cone top radius %s: %w", topRadius, ErrDegenerateGeometry)
	}
	solid, err := w.k.Cone(height.MM(), bottomRadius.MM(), topRadius.MM())
	if err != nil {
		return nil, err
	}
	return newPart(w.k, solid), nil
}

// Rectangle constructs a rectangle with the given dimensions, centered on
// the origin.
func (w *Workspace) Rectangle(x, y quant.Length) (*Sketch, error) {
	if err := positive("rectangle dimension", x, y); err != nil {
		return nil, err
	}
	profile, err := w.k.Rectangle(x.MM(), y.MM())
	if err != nil {
		return nil, err
	}
	return newSketch(w.k, profile), nil
}

// Square constructs a square with the given edge length, centered on the
// origin.
func (w *Workspace) Square(size quant.Length) (*Sketch, error) {
	return w.Rectangle(size, size)
}

// RectangleFromCorners constructs the axis-aligned rectangle spanned by two
// opposite corners.
func (w *Workspace) RectangleFromCorners(c1, c2 geom.Point2) (*Sketch, error) {
	dx := c2.X.Sub(c1.X).Abs()
	dy := c2.Y.Sub(c1.Y).Abs()
	rect, err := w.Rectangle(dx, dy)
	if err != nil {
		return nil, err
	}
	center := geom.Pt2(c1.X.Add(c2.X).Div(2), c1.Y.Add(c2.Y).Div(2))
	return rect.translated(center.X, center.Y)
}

// Circle constructs a circle centered on the origin.
func (w *Workspace) Circle(radius quant.Length) (*Sketch, error) {
	if err := positive("circle radius", radius); err != nil {
		return nil, err
	}
	profile, err := w.k.Circle(radius.MM())
	if err != nil {
		return nil, err
	}
	return newSketch(w.k, profile), nil
}

// Polygon constructs a closed polygon from its vertices in order. Polygons
// with fewer than 3 vertices or self-intersecting outlines are degenerate.
func (w *Workspace) Polygon(pts ...geom.Point2) (*Sketch, error) {
	if len(pts) < 3 {
		return nil, fmt.Errorf("polygon with %d vertices: %w", len(pts), ErrDegenerateGeometry)
	}
	if geom.SelfIntersects(pts) {
		return nil, fmt.Errorf("self-intersecting polygon: %w", ErrDegenerateGeometry)
	}
	raw := make([][2]float64, len(pts))
	for i, p := range pts {
		raw[i] = [2]float64{p.X.MM(), p.Y.MM()}
	}
	profile, err := w.k.Polygon(raw)
	if err != nil {
		return nil, err
	}
	return newSketch(w.k, profile), nil
}

// positive checks that every dimension is strictly positive.
func positive(what string, dims ...quant.Length) error {
	for _, d := range dims {
		if !d.IsPositive() {
			return fmt.Errorf("%s %s: %w", what, d, ErrDegenerateGeometry)
		}
	}
	return nil
}
