package geom

import (
	"fmt"
	"math"

	"github.com/chazu/smithy/pkg/quant"
)

// Plane is an oriented plane in 3D, stored in point-normal form. It
// parameterizes mirror reflections and planar cross-sections.
type Plane struct {
	Origin Point3
	Normal Dir3
}

// NewPlane constructs a plane through origin with the given normal.
func NewPlane(origin Point3, normal Dir3) Plane {
	return Plane{Origin: origin, Normal: normal}
}

// PlaneThrough constructs the plane spanned by two directions at origin.
// Parallel or anti-parallel spanning directions fail with ErrZeroDirection
// since they do not determine a plane.
func PlaneThrough(origin Point3, u, v Dir3) (Plane, error) {
	nx, ny, nz := u.Cross(v)
	n, err := NewDir3(nx, ny, nz)
	if err != nil {
		return Plane{}, fmt.Errorf("plane through %s spanned by %s, %s: %w", origin, u, v, err)
	}
	return Plane{Origin: origin, Normal: n}, nil
}

// PlaneXY returns the z=0 plane with +Z normal.
func PlaneXY() Plane { return Plane{Normal: DirZ3()} }

// PlaneXZ returns the y=0 plane with +Y normal.
func PlaneXZ() Plane { return Plane{Normal: DirY3()} }

// PlaneYZ returns the x=0 plane with +X normal.
func PlaneYZ() Plane { return Plane{Normal: DirX3()} }

// SignedDistanceTo returns the signed distance from the plane to a point,
// positive on the normal side.
func (p Plane) SignedDistanceTo(pt Point3) quant.Length {
	d := pt.Sub(p.Origin)
	mm := d.X.MM()*p.Normal.X() + d.Y.MM()*p.Normal.Y() + d.Z.MM()*p.Normal.Z()
	return quant.Millimeters(mm)
}

// Contains reports whether a point lies on the plane within quant.Eps.
func (p Plane) Contains(pt Point3) bool {
	return math.Abs(p.SignedDistanceTo(pt).MM()) < quant.Eps
}
