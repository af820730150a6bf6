package geom

import (
	"fmt"

	"github.com/chazu/smithy/pkg/quant"
)

// Axis2 is an infinite directed line in 2D, used for mirroring sketches and
// as the direction carrier of 2D patterns.
type Axis2 struct {
	Origin    Point2
	Direction Dir2
}

// NewAxis2 constructs an axis through origin pointing along direction.
func NewAxis2(origin Point2, direction Dir2) Axis2 {
	return Axis2{Origin: origin, Direction: direction}
}

// Axis2Between constructs the axis from origin towards other.
// Coincident points fail with ErrZeroDirection.
func Axis2Between(origin, other Point2) (Axis2, error) {
	d, err := origin.DirectionTo(other)
	if err != nil {
		return Axis2{}, fmt.Errorf("axis between %s and %s: %w", origin, other, err)
	}
	return Axis2{Origin: origin, Direction: d}, nil
}

// Axis2X returns the sketch-space x-axis through the origin.
func Axis2X() Axis2 { return Axis2{Direction: DirX2()} }

// Axis2Y returns the sketch-space y-axis through the origin.
func Axis2Y() Axis2 { return Axis2{Direction: DirY2()} }

// PointAt returns the point on the axis at the given signed distance from
// its origin.
func (a Axis2) PointAt(distance quant.Length) Point2 {
	return a.Origin.Add(a.Direction.Scale(distance))
}

// Axis3 is an infinite directed line in 3D, used for rotations and patterns.
// Positive rotation angles follow the right-hand rule about Direction.
type Axis3 struct {
	Origin    Point3
	Direction Dir3
}

// NewAxis3 constructs an axis through origin pointing along direction.
func NewAxis3(origin Point3, direction Dir3) Axis3 {
	return Axis3{Origin: origin, Direction: direction}
}

// Axis3Between constructs the axis from origin towards other.
// Coincident points fail with ErrZeroDirection.
func Axis3Between(origin, other Point3) (Axis3, error) {
	d, err := origin.DirectionTo(other)
	if err != nil {
		return Axis3{}, fmt.Errorf("axis between %s and %s: %w", origin, other, err)
	}
	return Axis3{Origin: origin, Direction: d}, nil
}

// Axis3X returns the model-space x-axis through the origin.
func Axis3X() Axis3 { return Axis3{Direction: DirX3()} }

// Axis3Y returns the model-space y-axis through the origin.
func Axis3Y() Axis3 { return Axis3{Direction: DirY3()} }

// Axis3Z returns the model-space z-axis through the origin.
func Axis3Z() Axis3 { return Axis3{Direction: DirZ3()} }

// PointAt returns the point on the axis at the given signed distance from
// its origin.
func (a Axis3) PointAt(distance quant.Length) Point3 {
	return a.Origin.Add(a.Direction.Scale(distance))
}
