// Package sdfx implements the kernel.Kernel interface using the
// github.com/deadsy/sdfx SDF-based CAD library.
//
// Signed distance fields have no boundary topology, which shapes two
// adapter decisions: the interface boolean maps to union (an SDF union
// merges coincident boundaries by construction, so no duplicate geometry
// can survive), and mass properties are integrated numerically — volume and
// centroid over the marching-cubes mesh, area over an evaluation grid.
package sdfx

import (
	"fmt"
	"io"
	"math"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/hashicorp/go-hclog"

	"github.com/chazu/smithy/pkg/export"
	"github.com/chazu/smithy/pkg/kernel"
)

// Compile-time interface check.
var _ kernel.Kernel = (*Kernel)(nil)

// defaultMeshCells controls marching cubes tessellation resolution.
const defaultMeshCells = 200

// areaSamples is the per-axis grid resolution for 2D mass properties.
const areaSamples = 512

// boundsSamples is the per-axis grid resolution used to shrink-wrap the
// bounding boxes of difference and intersection results.
const boundsSamples = 128

// sdfxSolid wraps an sdf.SDF3 to implement kernel.Solid.
type sdfxSolid struct {
	s sdf.SDF3
}

// BoundingBox returns the axis-aligned bounding box.
func (s *sdfxSolid) BoundingBox() (min, max [3]float64) {
	bb := s.s.BoundingBox()
	min = [3]float64{bb.Min.X, bb.Min.Y, bb.Min.Z}
	max = [3]float64{bb.Max.X, bb.Max.Y, bb.Max.Z}
	return min, max
}

// sdfxProfile wraps an sdf.SDF2 to implement kernel.Profile.
type sdfxProfile struct {
	s sdf.SDF2
}

// BoundingBox returns the axis-aligned bounding rectangle.
func (p *sdfxProfile) BoundingBox() (min, max [2]float64) {
	bb := p.s.BoundingBox()
	min = [2]float64{bb.Min.X, bb.Min.Y}
	max = [2]float64{bb.Max.X, bb.Max.Y}
	return min, max
}

// Kernel implements kernel.Kernel using sdfx.
type Kernel struct {
	log       hclog.Logger
	meshCells int
}

// Option configures the adapter.
type Option func(*Kernel)

// WithLogger enables structured tracing of kernel requests.
func WithLogger(l hclog.Logger) Option {
	return func(k *Kernel) { k.log = l }
}

// WithMeshCells overrides the default tessellation resolution.
func WithMeshCells(cells int) Option {
	return func(k *Kernel) {
		if cells > 0 {
			k.meshCells = cells
		}
	}
}

// New returns a new sdfx-backed kernel.
func New(opts ...Option) *Kernel {
	k := &Kernel{
		log:       hclog.NewNullLogger(),
		meshCells: defaultMeshCells,
	}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

// unwrap extracts the underlying sdf.SDF3 from a kernel.Solid.
func unwrap(s kernel.Solid) sdf.SDF3 {
	return s.(*sdfxSolid).s
}

// wrap creates a kernel.Solid from an sdf.SDF3.
func wrap(s sdf.SDF3) kernel.Solid {
	return &sdfxSolid{s: s}
}

func unwrap2(p kernel.Profile) sdf.SDF2 {
	return p.(*sdfxProfile).s
}

func wrap2(s sdf.SDF2) kernel.Profile {
	return &sdfxProfile{s: s}
}

// positiveDims rejects non-positive dimensions before they reach sdfx,
// which accepts some degenerate inputs (a zero-height cylinder, a zero-size
// rectangle) without error.
func positiveDims(op string, dims ...float64) error {
	for _, d := range dims {
		if d <= 0 {
			return kernel.Errorf(kernel.KindInvalidGeometry, op, "non-positive dimension %g", d)
		}
	}
	return nil
}

// Box creates a box with the given dimensions, centered on the origin.
func (k *Kernel) Box(x, y, z float64) (kernel.Solid, error) {
	k.log.Trace("box", "x", x, "y", y, "z", z)
	if err := positiveDims("box", x, y, z); err != nil {
		return nil, err
	}
	s, err := sdf.Box3D(v3.Vec{X: x, Y: y, Z: z}, 0)
	if err != nil {
		return nil, kernel.Wrap(kernel.KindInvalidGeometry, "box", err)
	}
	return wrap(s), nil
}

// Cylinder creates a cylinder along Z, centered on the origin.
func (k *Kernel) Cylinder(height, radius float64) (kernel.Solid, error) {
	k.log.Trace("cylinder", "height", height, "radius", radius)
	if err := positiveDims("cylinder", height, radius); err != nil {
		return nil, err
	}
	s, err := sdf.Cylinder3D(height, radius, 0)
	if err != nil {
		return nil, kernel.Wrap(kernel.KindInvalidGeometry, "cylinder", err)
	}
	return wrap(s), nil
}

// Sphere creates a sphere centered on the origin.
func (k *Kernel) Sphere(radius float64) (kernel.Solid, error) {
	k.log.Trace("sphere", "radius", radius)
	if err := positiveDims("sphere", radius); err != nil {
		return nil, err
	}
	s, err := sdf.Sphere3D(radius)
	if err != nil {
		return nil, kernel.Wrap(kernel.KindInvalidGeometry, "sphere", err)
	}
	return wrap(s), nil
}

// Cone creates a truncated cone along Z, centered on the origin.
func (k *Kernel) Cone(height, bottomRadius, topRadius float64) (kernel.Solid, error) {
	k.log.Trace("cone", "height", height, "r0", bottomRadius, "r1", topRadius)
	if err := positiveDims("cone", height, bottomRadius); err != nil {
		return nil, err
	}
	if topRadius < 0 {
		return nil, kernel.Errorf(kernel.KindInvalidGeometry, "cone", "negative top radius %g", topRadius)
	}
	s, err := sdf.Cone3D(height, bottomRadius, topRadius, 0)
	if err != nil {
		return nil, kernel.Wrap(kernel.KindInvalidGeometry, "cone", err)
	}
	return wrap(s), nil
}

// Rectangle creates a rectangle centered on the origin. Box2D itself never
// errors, so degenerate dimensions are rejected here.
func (k *Kernel) Rectangle(x, y float64) (kernel.Profile, error) {
	k.log.Trace("rectangle", "x", x, "y", y)
	if err := positiveDims("rectangle", x, y); err != nil {
		return nil, err
	}
	return wrap2(sdf.Box2D(v2.Vec{X: x, Y: y}, 0)), nil
}

// Circle creates a circle centered on the origin.
func (k *Kernel) Circle(radius float64) (kernel.Profile, error) {
	k.log.Trace("circle", "radius", radius)
	if err := positiveDims("circle", radius); err != nil {
		return nil, err
	}
	s, err := sdf.Circle2D(radius)
	if err != nil {
		return nil, kernel.Wrap(kernel.KindInvalidGeometry, "circle", err)
	}
	return wrap2(s), nil
}

// Polygon creates a closed polygon from its vertices, as given.
func (k *Kernel) Polygon(points [][2]float64) (kernel.Profile, error) {
	k.log.Trace("polygon", "vertices", len(points))
	vs := make([]v2.Vec, len(points))
	for i, p := range points {
		vs[i] = v2.Vec{X: p[0], Y: p[1]}
	}
	s, err := sdf.Polygon2D(vs)
	if err != nil {
		return nil, kernel.Wrap(kernel.KindInvalidGeometry, "polygon", err)
	}
	return wrap2(s), nil
}

// Boolean evaluates a 3D boolean operation. OpInterface maps to union: an
// SDF union merges coincident boundaries by construction.
func (k *Kernel) Boolean(op kernel.Op, a, b kernel.Solid) (kernel.Solid, error) {
	k.log.Trace("boolean", "op", op.String())
	sa, sb := unwrap(a), unwrap(b)
	switch op {
	case kernel.OpUnion, kernel.OpInterface:
		return wrap(sdf.Union3D(sa, sb)), nil
	case kernel.OpDifference:
		return wrap(tighten3(sdf.Difference3D(sa, sb))), nil
	case kernel.OpIntersection:
		return wrap(tighten3(sdf.Intersect3D(sa, sb))), nil
	default:
		return nil, kernel.Errorf(kernel.KindUnsupported, "boolean", "unknown op %d", op)
	}
}

// Boolean2 evaluates a 2D boolean operation with the same op mapping.
func (k *Kernel) Boolean2(op kernel.Op, a, b kernel.Profile) (kernel.Profile, error) {
	k.log.Trace("boolean2", "op", op.String())
	sa, sb := unwrap2(a), unwrap2(b)
	switch op {
	case kernel.OpUnion, kernel.OpInterface:
		return wrap2(sdf.Union2D(sa, sb)), nil
	case kernel.OpDifference:
		return wrap2(tighten2(sdf.Difference2D(sa, sb))), nil
	case kernel.OpIntersection:
		return wrap2(tighten2(sdf.Intersect2D(sa, sb))), nil
	default:
		return nil, kernel.Errorf(kernel.KindUnsupported, "boolean2", "unknown op %d", op)
	}
}

// boundedSDF3 carries a tighter bounding box than the SDF it wraps.
type boundedSDF3 struct {
	sdf.SDF3
	bb sdf.Box3
}

func (b *boundedSDF3) BoundingBox() sdf.Box3 { return b.bb }

// boundedSDF2 carries a tighter bounding box than the SDF it wraps.
type boundedSDF2 struct {
	sdf.SDF2
	bb sdf.Box2
}

func (b *boundedSDF2) BoundingBox() sdf.Box2 { return b.bb }

// tighten3 shrink-wraps a boolean result's bounding box. Difference and
// intersection SDFs keep their inputs' conservative boxes, so a box query
// on the result would report material that is no longer there. The SDF is
// sampled on a boundsSamples³ grid; the fitted box is padded by one grid
// spacing per side, which bounds the overshoot against the true material.
func tighten3(s sdf.SDF3) sdf.SDF3 {
	bb := s.BoundingBox()
	size := bb.Max.Sub(bb.Min)
	if size.X <= 0 || size.Y <= 0 || size.Z <= 0 {
		return s
	}
	dx := size.X / (boundsSamples - 1)
	dy := size.Y / (boundsSamples - 1)
	dz := size.Z / (boundsSamples - 1)

	found := false
	var lo, hi v3.Vec
	for i := 0; i < boundsSamples; i++ {
		x := bb.Min.X + float64(i)*dx
		for j := 0; j < boundsSamples; j++ {
			y := bb.Min.Y + float64(j)*dy
			for l := 0; l < boundsSamples; l++ {
				z := bb.Min.Z + float64(l)*dz
				if s.Evaluate(v3.Vec{X: x, Y: y, Z: z}) > 0 {
					continue
				}
				if !found {
					lo = v3.Vec{X: x, Y: y, Z: z}
					hi = lo
					found = true
					continue
				}
				lo.X = math.Min(lo.X, x)
				lo.Y = math.Min(lo.Y, y)
				lo.Z = math.Min(lo.Z, z)
				hi.X = math.Max(hi.X, x)
				hi.Y = math.Max(hi.Y, y)
				hi.Z = math.Max(hi.Z, z)
			}
		}
	}
	if !found {
		// No material resolved at this resolution; keep the safe box.
		return s
	}
	lo = v3.Vec{X: math.Max(lo.X-dx, bb.Min.X), Y: math.Max(lo.Y-dy, bb.Min.Y), Z: math.Max(lo.Z-dz, bb.Min.Z)}
	hi = v3.Vec{X: math.Min(hi.X+dx, bb.Max.X), Y: math.Min(hi.Y+dy, bb.Max.Y), Z: math.Min(hi.Z+dz, bb.Max.Z)}
	return &boundedSDF3{SDF3: s, bb: sdf.Box3{Min: lo, Max: hi}}
}

// tighten2 is the 2D counterpart of tighten3.
func tighten2(s sdf.SDF2) sdf.SDF2 {
	bb := s.BoundingBox()
	size := bb.Max.Sub(bb.Min)
	if size.X <= 0 || size.Y <= 0 {
		return s
	}
	dx := size.X / (boundsSamples - 1)
	dy := size.Y / (boundsSamples - 1)

	found := false
	var lo, hi v2.Vec
	for i := 0; i < boundsSamples; i++ {
		x := bb.Min.X + float64(i)*dx
		for j := 0; j < boundsSamples; j++ {
			y := bb.Min.Y + float64(j)*dy
			if s.Evaluate(v2.Vec{X: x, Y: y}) > 0 {
				continue
			}
			if !found {
				lo = v2.Vec{X: x, Y: y}
				hi = lo
				found = true
				continue
			}
			lo.X = math.Min(lo.X, x)
			lo.Y = math.Min(lo.Y, y)
			hi.X = math.Max(hi.X, x)
			hi.Y = math.Max(hi.Y, y)
		}
	}
	if !found {
		return s
	}
	lo = v2.Vec{X: math.Max(lo.X-dx, bb.Min.X), Y: math.Max(lo.Y-dy, bb.Min.Y)}
	hi = v2.Vec{X: math.Min(hi.X+dx, bb.Max.X), Y: math.Min(hi.Y+dy, bb.Max.Y)}
	return &boundedSDF2{SDF2: s, bb: sdf.Box2{Min: lo, Max: hi}}
}

// Translate moves a solid by (x, y, z).
func (k *Kernel) Translate(s kernel.Solid, x, y, z float64) (kernel.Solid, error) {
	k.log.Trace("translate", "x", x, "y", y, "z", z)
	m := sdf.Translate3d(v3.Vec{X: x, Y: y, Z: z})
	return wrap(sdf.Transform3D(unwrap(s), m)), nil
}

// Rotate rotates a solid about an arbitrary axis through origin, using the
// right-hand rule. The axis must be a unit vector.
func (k *Kernel) Rotate(s kernel.Solid, origin, axis [3]float64, angle float64) (kernel.Solid, error) {
	k.log.Trace("rotate", "angle", angle)
	o := v3.Vec{X: origin[0], Y: origin[1], Z: origin[2]}
	rot := sdf.Rotate3d(v3.Vec{X: axis[0], Y: axis[1], Z: axis[2]}, angle)
	m := sdf.Translate3d(o).Mul(rot).Mul(sdf.Translate3d(o.Neg()))
	return wrap(sdf.Transform3D(unwrap(s), m)), nil
}

// Mirror reflects a solid across the plane through origin with the given
// unit normal. The reflection is built by conjugating the canned XY-plane
// mirror with the rotation that carries +Z onto the normal.
func (k *Kernel) Mirror(s kernel.Solid, origin, normal [3]float64) (kernel.Solid, error) {
	k.log.Trace("mirror", "normal", normal)
	o := v3.Vec{X: origin[0], Y: origin[1], Z: origin[2]}

	toNormal, err := rotationFromZ(normal)
	if err != nil {
		return nil, kernel.Wrap(kernel.KindInvalidGeometry, "mirror", err)
	}
	fromNormal, err := rotationToZ(normal)
	if err != nil {
		return nil, kernel.Wrap(kernel.KindInvalidGeometry, "mirror", err)
	}

	m := sdf.Translate3d(o).
		Mul(toNormal).
		Mul(sdf.MirrorXY()).
		Mul(fromNormal).
		Mul(sdf.Translate3d(o.Neg()))
	return wrap(sdf.Transform3D(unwrap(s), m)), nil
}

// Scale scales a solid uniformly about the given origin.
func (k *Kernel) Scale(s kernel.Solid, origin [3]float64, factor float64) (kernel.Solid, error) {
	k.log.Trace("scale", "factor", factor)
	if factor <= 0 {
		return nil, kernel.Errorf(kernel.KindInvalidGeometry, "scale", "non-positive factor %g", factor)
	}
	o := v3.Vec{X: origin[0], Y: origin[1], Z: origin[2]}
	centered := sdf.Transform3D(unwrap(s), sdf.Translate3d(o.Neg()))
	scaled := sdf.ScaleUniform3D(centered, factor)
	return wrap(sdf.Transform3D(scaled, sdf.Translate3d(o))), nil
}

// Translate2 moves a profile by (x, y).
func (k *Kernel) Translate2(p kernel.Profile, x, y float64) (kernel.Profile, error) {
	k.log.Trace("translate2", "x", x, "y", y)
	m := sdf.Translate2d(v2.Vec{X: x, Y: y})
	return wrap2(sdf.Transform2D(unwrap2(p), m)), nil
}

// Rotate2 rotates a profile counter-clockwise about the given origin.
func (k *Kernel) Rotate2(p kernel.Profile, origin [2]float64, angle float64) (kernel.Profile, error) {
	k.log.Trace("rotate2", "angle", angle)
	o := v2.Vec{X: origin[0], Y: origin[1]}
	m := sdf.Translate2d(o).Mul(sdf.Rotate2d(angle)).Mul(sdf.Translate2d(o.Neg()))
	return wrap2(sdf.Transform2D(unwrap2(p), m)), nil
}

// Mirror2 reflects a profile across the line through origin along the given
// unit direction.
func (k *Kernel) Mirror2(p kernel.Profile, origin, dir [2]float64) (kernel.Profile, error) {
	k.log.Trace("mirror2", "dir", dir)
	o := v2.Vec{X: origin[0], Y: origin[1]}
	theta := math.Atan2(dir[1], dir[0])
	m := sdf.Translate2d(o).
		Mul(sdf.Rotate2d(theta)).
		Mul(sdf.MirrorX()).
		Mul(sdf.Rotate2d(-theta)).
		Mul(sdf.Translate2d(o.Neg()))
	return wrap2(sdf.Transform2D(unwrap2(p), m)), nil
}

// Scale2 scales a profile uniformly about the given origin.
func (k *Kernel) Scale2(p kernel.Profile, origin [2]float64, factor float64) (kernel.Profile, error) {
	k.log.Trace("scale2", "factor", factor)
	if factor <= 0 {
		return nil, kernel.Errorf(kernel.KindInvalidGeometry, "scale2", "non-positive factor %g", factor)
	}
	o := v2.Vec{X: origin[0], Y: origin[1]}
	centered := sdf.Transform2D(unwrap2(p), sdf.Translate2d(o.Neg()))
	scaled := sdf.ScaleUniform2D(centered, factor)
	return wrap2(sdf.Transform2D(scaled, sdf.Translate2d(o))), nil
}

// Extrude sweeps a profile along Z by height, centered about z=0.
func (k *Kernel) Extrude(p kernel.Profile, height float64) (kernel.Solid, error) {
	k.log.Trace("extrude", "height", height)
	if height <= 0 {
		return nil, kernel.Errorf(kernel.KindInvalidGeometry, "extrude", "non-positive height %g", height)
	}
	return wrap(sdf.Extrude3D(unwrap2(p), height)), nil
}

// Revolve sweeps a profile about the model Z axis by the given angle in
// radians. The profile's x coordinate becomes the radial distance.
func (k *Kernel) Revolve(p kernel.Profile, angle float64) (kernel.Solid, error) {
	k.log.Trace("revolve", "angle", angle)
	s, err := sdf.RevolveTheta3D(unwrap2(p), angle)
	if err != nil {
		return nil, kernel.Wrap(kernel.KindInvalidGeometry, "revolve", err)
	}
	return wrap(s), nil
}

// Slice returns the cross-section of a solid in the plane through origin
// with the given unit normal.
func (k *Kernel) Slice(s kernel.Solid, origin, normal [3]float64) (kernel.Profile, error) {
	k.log.Trace("slice", "normal", normal)
	a := v3.Vec{X: origin[0], Y: origin[1], Z: origin[2]}
	n := v3.Vec{X: normal[0], Y: normal[1], Z: normal[2]}
	return wrap2(sdf.Slice2D(unwrap(s), a, n)), nil
}

// Volume integrates the solid volume over its tessellation. The result
// approximates the exact volume to the tessellation resolution.
func (k *Kernel) Volume(s kernel.Solid) (float64, error) {
	mesh, err := k.Tessellate(s, 0)
	if err != nil {
		return 0, err
	}
	return math.Abs(mesh.SignedVolume()), nil
}

// Centroid integrates the solid's center of mass over its tessellation.
func (k *Kernel) Centroid(s kernel.Solid) ([3]float64, error) {
	mesh, err := k.Tessellate(s, 0)
	if err != nil {
		return [3]float64{}, err
	}
	if mesh.IsEmpty() {
		return [3]float64{}, kernel.Errorf(kernel.KindInvalidGeometry, "centroid", "solid encloses no volume")
	}
	return mesh.Centroid(), nil
}

// Area integrates the profile area by sampling the SDF over its bounding
// rectangle on an areaSamples² grid.
func (k *Kernel) Area(p kernel.Profile) (float64, error) {
	area, _, _, err := k.sample2(p)
	return area, err
}

// Centroid2 integrates the profile's center of area on the same grid.
func (k *Kernel) Centroid2(p kernel.Profile) ([2]float64, error) {
	area, cx, cy, err := k.sample2(p)
	if err != nil {
		return [2]float64{}, err
	}
	if area == 0 {
		return [2]float64{}, kernel.Errorf(kernel.KindInvalidGeometry, "centroid2", "profile encloses no area")
	}
	return [2]float64{cx, cy}, nil
}

// sample2 evaluates the SDF on a uniform grid over the bounding rectangle
// and accumulates covered area and its first moments.
func (k *Kernel) sample2(p kernel.Profile) (area, cx, cy float64, err error) {
	s := unwrap2(p)
	bb := s.BoundingBox()
	dx := (bb.Max.X - bb.Min.X) / areaSamples
	dy := (bb.Max.Y - bb.Min.Y) / areaSamples
	if dx <= 0 || dy <= 0 {
		return 0, 0, 0, nil
	}
	cell := dx * dy
	for i := 0; i < areaSamples; i++ {
		x := bb.Min.X + (float64(i)+0.5)*dx
		for j := 0; j < areaSamples; j++ {
			y := bb.Min.Y + (float64(j)+0.5)*dy
			if s.Evaluate(v2.Vec{X: x, Y: y}) <= 0 {
				area += cell
				cx += cell * x
				cy += cell * y
			}
		}
	}
	if area > 0 {
		cx /= area
		cy /= area
	}
	return area, cx, cy, nil
}

// Tessellate converts a solid to a triangle mesh using marching cubes.
func (k *Kernel) Tessellate(s kernel.Solid, cells int) (*kernel.Mesh, error) {
	if cells <= 0 {
		cells = k.meshCells
	}
	k.log.Trace("tessellate", "cells", cells)
	sdf3 := unwrap(s)

	renderer := render.NewMarchingCubesUniform(cells)
	triangles := render.ToTriangles(sdf3, renderer)

	numTri := len(triangles)
	numVerts := numTri * 3

	vertices := make([]float32, 0, numVerts*3)
	normals := make([]float32, 0, numVerts*3)
	indices := make([]uint32, 0, numVerts)

	for i, tri := range triangles {
		// Compute face normal.
		n := tri.Normal()
		nx := float32(n.X)
		ny := float32(n.Y)
		nz := float32(n.Z)

		for j := 0; j < 3; j++ {
			v := tri[j]
			vertices = append(vertices, float32(v.X), float32(v.Y), float32(v.Z))
			normals = append(normals, nx, ny, nz)
			indices = append(indices, uint32(i*3+j))
		}
	}

	return &kernel.Mesh{
		Vertices: vertices,
		Normals:  normals,
		Indices:  indices,
	}, nil
}

// Export tessellates the solid and writes it in the given format.
func (k *Kernel) Export(w io.Writer, s kernel.Solid, format kernel.Format, cells int) error {
	k.log.Trace("export", "format", format.String())
	mesh, err := k.Tessellate(s, cells)
	if err != nil {
		return err
	}
	if err := export.WriteMesh(w, mesh, format); err != nil {
		return kernel.Wrap(kernel.KindResource, "export", err)
	}
	return nil
}

// rotationFromZ returns the matrix rotating +Z onto the given unit vector.
func rotationFromZ(n [3]float64) (sdf.M44, error) {
	return alignRotation([3]float64{0, 0, 1}, n)
}

// rotationToZ returns the matrix rotating the given unit vector onto +Z.
func rotationToZ(n [3]float64) (sdf.M44, error) {
	return alignRotation(n, [3]float64{0, 0, 1})
}

// alignRotation builds the rotation carrying unit vector a onto unit
// vector b about their mutual perpendicular.
func alignRotation(a, b [3]float64) (sdf.M44, error) {
	cx := a[1]*b[2] - a[2]*b[1]
	cy := a[2]*b[0] - a[0]*b[2]
	cz := a[0]*b[1] - a[1]*b[0]
	sin := math.Sqrt(cx*cx + cy*cy + cz*cz)
	cos := a[0]*b[0] + a[1]*b[1] + a[2]*b[2]

	if sin < 1e-12 {
		if cos > 0 {
			return sdf.Identity3d(), nil
		}
		// Antiparallel: rotate half a turn about any perpendicular axis.
		perp := v3.Vec{X: 1}
		if math.Abs(a[0]) > 0.9 {
			perp = v3.Vec{Y: 1}
		}
		return sdf.Rotate3d(perp, math.Pi), nil
	}

	axis := v3.Vec{X: cx / sin, Y: cy / sin, Z: cz / sin}
	angle := math.Atan2(sin, cos)
	if math.IsNaN(angle) {
		return sdf.M44{}, fmt.Errorf("degenerate rotation alignment")
	}
	return sdf.Rotate3d(axis, angle), nil
}
