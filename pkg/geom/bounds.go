package geom

import "github.com/chazu/smithy/pkg/quant"

// Bounds2 is an axis-aligned bounding rectangle in sketch space.
type Bounds2 struct {
	Min, Max Point2
}

// Size returns the extents along x and y.
func (b Bounds2) Size() (x, y quant.Length) {
	return b.Max.X.Sub(b.Min.X), b.Max.Y.Sub(b.Min.Y)
}

// Center returns the box center.
func (b Bounds2) Center() Point2 {
	return Point2{
		X: b.Min.X.Add(b.Max.X).Div(2),
		Y: b.Min.Y.Add(b.Max.Y).Div(2),
	}
}

// Overlaps reports whether two boxes share any area, within quant.Eps.
func (b Bounds2) Overlaps(o Bounds2) bool {
	return !b.Max.X.Less(o.Min.X) && !o.Max.X.Less(b.Min.X) &&
		!b.Max.Y.Less(o.Min.Y) && !o.Max.Y.Less(b.Min.Y)
}

// Eq reports whether two boxes coincide within quant.Eps per corner.
func (b Bounds2) Eq(o Bounds2) bool {
	return b.Min.Eq(o.Min) && b.Max.Eq(o.Max)
}

// Bounds3 is an axis-aligned bounding box in model space.
type Bounds3 struct {
	Min, Max Point3
}

// Size returns the extents along x, y and z.
func (b Bounds3) Size() (x, y, z quant.Length) {
	return b.Max.X.Sub(b.Min.X), b.Max.Y.Sub(b.Min.Y), b.Max.Z.Sub(b.Min.Z)
}

// Center returns the box center.
func (b Bounds3) Center() Point3 {
	return Point3{
		X: b.Min.X.Add(b.Max.X).Div(2),
		Y: b.Min.Y.Add(b.Max.Y).Div(2),
		Z: b.Min.Z.Add(b.Max.Z).Div(2),
	}
}

// Overlaps reports whether two boxes share any volume, within quant.Eps.
func (b Bounds3) Overlaps(o Bounds3) bool {
	return !b.Max.X.Less(o.Min.X) && !o.Max.X.Less(b.Min.X) &&
		!b.Max.Y.Less(o.Min.Y) && !o.Max.Y.Less(b.Min.Y) &&
		!b.Max.Z.Less(o.Min.Z) && !o.Max.Z.Less(b.Min.Z)
}

// Eq reports whether two boxes coincide within quant.Eps per corner.
func (b Bounds3) Eq(o Bounds3) bool {
	return b.Min.Eq(o.Min) && b.Max.Eq(o.Max)
}

// EqWithin reports whether two boxes coincide within the given tolerance.
func (b Bounds3) EqWithin(o Bounds3, tol quant.Length) bool {
	close := func(a, c quant.Length) bool {
		return a.Sub(c).Abs().MM() <= tol.MM()
	}
	return close(b.Min.X, o.Min.X) && close(b.Min.Y, o.Min.Y) && close(b.Min.Z, o.Min.Z) &&
		close(b.Max.X, o.Max.X) && close(b.Max.Y, o.Max.Y) && close(b.Max.Z, o.Max.Z)
}
