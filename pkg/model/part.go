package model

import (
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/chazu/smithy/pkg/export"
	"github.com/chazu/smithy/pkg/geom"
	"github.com/chazu/smithy/pkg/kernel"
	"github.com/chazu/smithy/pkg/quant"
)

// Part is a 3D solid: an opaque, immutable handle over one kernel shape.
// A nil handle is the explicit empty part. Parts are not safe for
// concurrent mutation of the same underlying kernel resource; independent
// parts may be used from different goroutines freely.
type Part struct {
	id    uuid.UUID
	k     kernel.Kernel
	solid kernel.Solid
}

func newPart(k kernel.Kernel, solid kernel.Solid) *Part {
	return &Part{id: uuid.New(), k: k, solid: solid}
}

// ID returns the entity identity, used for diagnostics and mesh naming.
func (p *Part) ID() uuid.UUID { return p.id }

// IsEmpty reports whether this is the explicit empty part.
func (p *Part) IsEmpty() bool { return p.solid == nil }

// Clone returns a new entity over the same geometry. Kernel handles are
// immutable, so sharing is safe; the clone has a fresh identity.
func (p *Part) Clone() *Part {
	return newPart(p.k, p.solid)
}

// String describes the part for diagnostics.
func (p *Part) String() string {
	if p.IsEmpty() {
		return fmt.Sprintf("Part(%s, empty)", shortID(p.id))
	}
	b := p.BoundingBox()
	return fmt.Sprintf("Part(%s, bounds %s..%s)", shortID(p.id), b.Min, b.Max)
}

// BoundingBox returns the axis-aligned bounding box. The empty part has a
// zero box at the origin.
func (p *Part) BoundingBox() geom.Bounds3 {
	if p.IsEmpty() {
		return geom.Bounds3{}
	}
	min, max := p.solid.BoundingBox()
	return geom.Bounds3{
		Min: geom.Pt3(quant.Millimeters(min[0]), quant.Millimeters(min[1]), quant.Millimeters(min[2])),
		Max: geom.Pt3(quant.Millimeters(max[0]), quant.Millimeters(max[1]), quant.Millimeters(max[2])),
	}
}

// Center returns the center of mass. The empty part has no center and
// fails with ErrEmptyPart.
func (p *Part) Center() (geom.Point3, error) {
	if p.IsEmpty() {
		return geom.Point3{}, ErrEmptyPart
	}
	c, err := p.k.Centroid(p.solid)
	if err != nil {
		return geom.Point3{}, err
	}
	return geom.Pt3(
		quant.Millimeters(c[0]),
		quant.Millimeters(c[1]),
		quant.Millimeters(c[2]),
	), nil
}

// Volume returns the enclosed volume. The empty part has zero volume.
// The value is integrated over the tessellation and carries the backend's
// measurement resolution.
func (p *Part) Volume() (quant.Volume, error) {
	if p.IsEmpty() {
		return quant.Volume{}, nil
	}
	v, err := p.k.Volume(p.solid)
	if err != nil {
		return quant.Volume{}, err
	}
	return quant.CubicMillimeters(v), nil
}

// Eq reports whether two parts occupy the same space, within BoundsTol for
// placement and GeomTol for volume. Empty parts equal only each other.
func (p *Part) Eq(o *Part) bool {
	if p.IsEmpty() || o.IsEmpty() {
		return p.IsEmpty() && o.IsEmpty()
	}
	if !p.BoundingBox().EqWithin(o.BoundingBox(), BoundsTol) {
		return false
	}
	pv, err := p.Volume()
	if err != nil {
		return false
	}
	ov, err := o.Volume()
	if err != nil {
		return false
	}
	return pv.Eq(ov, GeomTol)
}

// MoveTo returns a copy with the center of mass placed at the given point.
// Moving the empty part yields the empty part.
func (p *Part) MoveTo(loc geom.Point3) (*Part, error) {
	if p.IsEmpty() {
		return p.Clone(), nil
	}
	center, err := p.Center()
	if err != nil {
		return nil, err
	}
	d := loc.Sub(center)
	return p.translated(d.X, d.Y, d.Z)
}

// MoveBy returns a copy translated by the given offsets.
func (p *Part) MoveBy(dx, dy, dz quant.Length) (*Part, error) {
	if p.IsEmpty() {
		return p.Clone(), nil
	}
	return p.translated(dx, dy, dz)
}

func (p *Part) translated(dx, dy, dz quant.Length) (*Part, error) {
	solid, err := p.k.Translate(p.solid, dx.MM(), dy.MM(), dz.MM())
	if err != nil {
		return nil, err
	}
	return newPart(p.k, solid), nil
}

// Rotate returns a copy rotated about the given axis. Positive angles
// follow the right-hand rule about the axis direction.
func (p *Part) Rotate(axis geom.Axis3, angle quant.Angle) (*Part, error) {
	if p.IsEmpty() {
		return p.Clone(), nil
	}
	solid, err := p.k.Rotate(p.solid,
		[3]float64{axis.Origin.X.MM(), axis.Origin.Y.MM(), axis.Origin.Z.MM()},
		[3]float64{axis.Direction.X(), axis.Direction.Y(), axis.Direction.Z()},
		angle.Rad(),
	)
	if err != nil {
		return nil, err
	}
	return newPart(p.k, solid), nil
}

// Mirror returns a copy reflected across the given plane.
func (p *Part) Mirror(plane geom.Plane) (*Part, error) {
	if p.IsEmpty() {
		return p.Clone(), nil
	}
	solid, err := p.k.Mirror(p.solid,
		[3]float64{plane.Origin.X.MM(), plane.Origin.Y.MM(), plane.Origin.Z.MM()},
		[3]float64{plane.Normal.X(), plane.Normal.Y(), plane.Normal.Z()},
	)
	if err != nil {
		return nil, err
	}
	return newPart(p.k, solid), nil
}

// Scale returns a copy scaled uniformly about its center of mass.
// Non-positive factors are degenerate.
func (p *Part) Scale(factor float64) (*Part, error) {
	if factor <= 0 {
		return nil, fmt.Errorf("scale factor %g: %w", factor, ErrDegenerateGeometry)
	}
	if p.IsEmpty() {
		return p.Clone(), nil
	}
	center, err := p.Center()
	if err != nil {
		return nil, err
	}
	solid, err := p.k.Scale(p.solid,
		[3]float64{center.X.MM(), center.Y.MM(), center.Z.MM()}, factor)
	if err != nil {
		return nil, err
	}
	return newPart(p.k, solid), nil
}

// CrossSection returns the planar section of the part in the given plane,
// as a sketch in that plane's 2D coordinates. Sectioning the empty part
// yields the empty sketch.
func (p *Part) CrossSection(plane geom.Plane) (*Sketch, error) {
	if p.IsEmpty() {
		return &Sketch{id: uuid.New(), k: p.k}, nil
	}
	profile, err := p.k.Slice(p.solid,
		[3]float64{plane.Origin.X.MM(), plane.Origin.Y.MM(), plane.Origin.Z.MM()},
		[3]float64{plane.Normal.X(), plane.Normal.Y(), plane.Normal.Z()},
	)
	if err != nil {
		return nil, err
	}
	return newSketch(p.k, profile), nil
}

// Mesh tessellates the part. cells <= 0 selects the backend default. The
// empty part tessellates to an empty mesh.
func (p *Part) Mesh(cells int) (*kernel.Mesh, error) {
	if p.IsEmpty() {
		return &kernel.Mesh{Name: shortID(p.id)}, nil
	}
	mesh, err := p.k.Tessellate(p.solid, cells)
	if err != nil {
		return nil, err
	}
	mesh.Name = shortID(p.id)
	return mesh, nil
}

// Export tessellates the part and writes it in the given format.
func (p *Part) Export(w io.Writer, format kernel.Format, cells int) error {
	if p.IsEmpty() {
		return export.WriteMesh(w, &kernel.Mesh{Name: shortID(p.id)}, format)
	}
	return p.k.Export(w, p.solid, format, cells)
}

func shortID(id uuid.UUID) string {
	return id.String()[:8]
}
