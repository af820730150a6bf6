// Package geom defines the geometric primitives used to parameterize shape
// construction: points, unit directions, axes, planes and bounding boxes.
// All coordinates are quant.Length values; raw floats appear only in
// direction components, which are dimensionless by definition.
package geom

import (
	"fmt"
	"math"

	"github.com/chazu/smithy/pkg/quant"
)

// Point2 is a location in 2D sketch space.
type Point2 struct {
	X, Y quant.Length
}

// Pt2 constructs a 2D point.
func Pt2(x, y quant.Length) Point2 { return Point2{X: x, Y: y} }

// Origin2 returns the 2D origin.
func Origin2() Point2 { return Point2{} }

// Add returns the point offset by another point taken as a displacement.
func (p Point2) Add(o Point2) Point2 {
	return Point2{X: p.X.Add(o.X), Y: p.Y.Add(o.Y)}
}

// Sub returns the displacement from o to p, expressed as a point.
func (p Point2) Sub(o Point2) Point2 {
	return Point2{X: p.X.Sub(o.X), Y: p.Y.Sub(o.Y)}
}

// DistanceTo returns the distance between two points.
func (p Point2) DistanceTo(o Point2) quant.Length {
	dx := p.X.Sub(o.X).MM()
	dy := p.Y.Sub(o.Y).MM()
	return quant.Millimeters(math.Hypot(dx, dy))
}

// DirectionTo returns the unit direction from p towards o.
// Coincident points fail with ErrZeroDirection.
func (p Point2) DirectionTo(o Point2) (Dir2, error) {
	return NewDir2(o.X.Sub(p.X).MM(), o.Y.Sub(p.Y).MM())
}

// Eq reports whether two points coincide within quant.Eps.
func (p Point2) Eq(o Point2) bool { return p.X.Eq(o.X) && p.Y.Eq(o.Y) }

func (p Point2) String() string { return fmt.Sprintf("(%s, %s)", p.X, p.Y) }

// Point3 is a location in 3D model space.
type Point3 struct {
	X, Y, Z quant.Length
}

// Pt3 constructs a 3D point.
func Pt3(x, y, z quant.Length) Point3 { return Point3{X: x, Y: y, Z: z} }

// Origin3 returns the 3D origin.
func Origin3() Point3 { return Point3{} }

// Add returns the point offset by another point taken as a displacement.
func (p Point3) Add(o Point3) Point3 {
	return Point3{X: p.X.Add(o.X), Y: p.Y.Add(o.Y), Z: p.Z.Add(o.Z)}
}

// Sub returns the displacement from o to p, expressed as a point.
func (p Point3) Sub(o Point3) Point3 {
	return Point3{X: p.X.Sub(o.X), Y: p.Y.Sub(o.Y), Z: p.Z.Sub(o.Z)}
}

// DistanceTo returns the distance between two points.
func (p Point3) DistanceTo(o Point3) quant.Length {
	dx := p.X.Sub(o.X).MM()
	dy := p.Y.Sub(o.Y).MM()
	dz := p.Z.Sub(o.Z).MM()
	return quant.Millimeters(math.Sqrt(dx*dx + dy*dy + dz*dz))
}

// DirectionTo returns the unit direction from p towards o.
// Coincident points fail with ErrZeroDirection.
func (p Point3) DirectionTo(o Point3) (Dir3, error) {
	return NewDir3(o.X.Sub(p.X).MM(), o.Y.Sub(p.Y).MM(), o.Z.Sub(p.Z).MM())
}

// Eq reports whether two points coincide within quant.Eps.
func (p Point3) Eq(o Point3) bool {
	return p.X.Eq(o.X) && p.Y.Eq(o.Y) && p.Z.Eq(o.Z)
}

func (p Point3) String() string {
	return fmt.Sprintf("(%s, %s, %s)", p.X, p.Y, p.Z)
}
