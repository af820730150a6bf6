package geom

import (
	"errors"
	"fmt"
	"math"

	"github.com/chazu/smithy/pkg/quant"
)

// ErrZeroDirection is returned when a direction is constructed from
// zero-length components. It is a degenerate-geometry condition.
var ErrZeroDirection = errors.New("zero-length direction")

// Dir2 is a unit direction in 2D. Components are dimensionless and the
// magnitude is always 1; the zero value is invalid and only obtainable by
// bypassing the constructor.
type Dir2 struct {
	x, y float64
}

// NewDir2 constructs a normalized 2D direction from raw components.
func NewDir2(x, y float64) (Dir2, error) {
	m := math.Hypot(x, y)
	if m < quant.Eps {
		return Dir2{}, fmt.Errorf("dir2 (%g, %g): %w", x, y, ErrZeroDirection)
	}
	return Dir2{x: x / m, y: y / m}, nil
}

// DirX2 and friends are the canonical sketch-space directions.
func DirX2() Dir2 { return Dir2{x: 1} }
func DirY2() Dir2 { return Dir2{y: 1} }

// X returns the x component.
func (d Dir2) X() float64 { return d.x }

// Y returns the y component.
func (d Dir2) Y() float64 { return d.y }

// Dot returns the dot product with another direction.
func (d Dir2) Dot(o Dir2) float64 { return d.x*o.x + d.y*o.y }

// Neg returns the opposite direction.
func (d Dir2) Neg() Dir2 { return Dir2{x: -d.x, y: -d.y} }

// Scale returns the point reached by travelling the given length from the
// origin along this direction.
func (d Dir2) Scale(l quant.Length) Point2 {
	return Point2{X: l.Mul(d.x), Y: l.Mul(d.y)}
}

// Eq reports whether two directions differ by less than quant.Eps per
// component.
func (d Dir2) Eq(o Dir2) bool {
	return math.Abs(d.x-o.x) < quant.Eps && math.Abs(d.y-o.y) < quant.Eps
}

func (d Dir2) String() string { return fmt.Sprintf("dir(%g, %g)", d.x, d.y) }

// Dir3 is a unit direction in 3D.
type Dir3 struct {
	x, y, z float64
}

// NewDir3 constructs a normalized 3D direction from raw components.
func NewDir3(x, y, z float64) (Dir3, error) {
	m := math.Sqrt(x*x + y*y + z*z)
	if m < quant.Eps {
		return Dir3{}, fmt.Errorf("dir3 (%g, %g, %g): %w", x, y, z, ErrZeroDirection)
	}
	return Dir3{x: x / m, y: y / m, z: z / m}, nil
}

// DirX3 and friends are the canonical model-space directions.
func DirX3() Dir3 { return Dir3{x: 1} }
func DirY3() Dir3 { return Dir3{y: 1} }
func DirZ3() Dir3 { return Dir3{z: 1} }

// X returns the x component.
func (d Dir3) X() float64 { return d.x }

// Y returns the y component.
func (d Dir3) Y() float64 { return d.y }

// Z returns the z component.
func (d Dir3) Z() float64 { return d.z }

// Dot returns the dot product with another direction.
func (d Dir3) Dot(o Dir3) float64 { return d.x*o.x + d.y*o.y + d.z*o.z }

// Cross returns the cross product with another direction. The result is not
// normalized; its magnitude is the sine of the angle between the inputs.
func (d Dir3) Cross(o Dir3) (x, y, z float64) {
	return d.y*o.z - d.z*o.y,
		d.z*o.x - d.x*o.z,
		d.x*o.y - d.y*o.x
}

// Neg returns the opposite direction.
func (d Dir3) Neg() Dir3 { return Dir3{x: -d.x, y: -d.y, z: -d.z} }

// Scale returns the point reached by travelling the given length from the
// origin along this direction.
func (d Dir3) Scale(l quant.Length) Point3 {
	return Point3{X: l.Mul(d.x), Y: l.Mul(d.y), Z: l.Mul(d.z)}
}

// Eq reports whether two directions differ by less than quant.Eps per
// component.
func (d Dir3) Eq(o Dir3) bool {
	return math.Abs(d.x-o.x) < quant.Eps &&
		math.Abs(d.y-o.y) < quant.Eps &&
		math.Abs(d.z-o.z) < quant.Eps
}

func (d Dir3) String() string {
	return fmt.Sprintf("dir(%g, %g, %g)", d.x, d.y, d.z)
}
