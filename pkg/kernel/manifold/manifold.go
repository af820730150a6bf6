//go:build manifold

// Package manifold provides a CGo-based geometry kernel binding to the
// Manifold library (https://github.com/elalish/manifold). Manifold provides
// guaranteed-manifold mesh boolean operations with face identity tracking,
// so unlike the sdfx backend its boolean results are exact meshes rather
// than sampled distance fields.
//
// This package requires the Manifold C library (manifoldc) to be installed.
// Build with: go build -tags=manifold
//
// See the Makefile in this directory for instructions on building manifoldc
// from source.
package manifold

/*
#cgo CFLAGS: -I/usr/local/include
#cgo LDFLAGS: -L/usr/local/lib -lmanifoldc

#include <stdlib.h>
#include <manifold/manifoldc.h>
*/
import "C"

import (
	"io"
	"math"
	"runtime"
	"unsafe"

	"github.com/chazu/smithy/pkg/export"
	"github.com/chazu/smithy/pkg/kernel"
)

// Compile-time interface checks.
var _ kernel.Kernel = (*Kernel)(nil)
var _ kernel.Solid = (*manifoldSolid)(nil)
var _ kernel.Profile = (*manifoldProfile)(nil)

const defaultSegments = 64

// Kernel implements kernel.Kernel using the Manifold C library.
type Kernel struct {
	segments int
}

// Option configures the kernel.
type Option func(*Kernel)

// WithSegments sets the number of circular segments used when
// discretizing circles, cylinders, spheres and revolutions.
func WithSegments(n int) Option {
	return func(k *Kernel) {
		if n > 2 {
			k.segments = n
		}
	}
}

// New creates a Manifold-backed kernel.
func New(opts ...Option) (kernel.Kernel, error) {
	k := &Kernel{segments: defaultSegments}
	for _, opt := range opts {
		opt(k)
	}
	return k, nil
}

// manifoldSolid wraps a C ManifoldManifold pointer and implements
// kernel.Solid.
type manifoldSolid struct {
	ptr *C.ManifoldManifold
}

// BoundingBox returns the axis-aligned bounding box of the solid.
func (s *manifoldSolid) BoundingBox() (min, max [3]float64) {
	alloc := C.manifold_alloc_box()
	bbox := C.manifold_bounding_box(alloc, s.ptr)
	defer C.manifold_delete_box(bbox)

	min[0] = float64(C.manifold_box_min_x(bbox))
	min[1] = float64(C.manifold_box_min_y(bbox))
	min[2] = float64(C.manifold_box_min_z(bbox))
	max[0] = float64(C.manifold_box_max_x(bbox))
	max[1] = float64(C.manifold_box_max_y(bbox))
	max[2] = float64(C.manifold_box_max_z(bbox))
	return min, max
}

// newSolid wraps a C ManifoldManifold pointer with a Go-side finalizer
// for automatic memory management.
func newSolid(ptr *C.ManifoldManifold) *manifoldSolid {
	s := &manifoldSolid{ptr: ptr}
	runtime.SetFinalizer(s, func(s *manifoldSolid) {
		if s.ptr != nil {
			C.manifold_delete_manifold(s.ptr)
			s.ptr = nil
		}
	})
	return s
}

// manifoldProfile wraps a C ManifoldCrossSection pointer and implements
// kernel.Profile.
type manifoldProfile struct {
	ptr *C.ManifoldCrossSection
}

// BoundingBox returns the axis-aligned bounding rectangle of the profile.
func (p *manifoldProfile) BoundingBox() (min, max [2]float64) {
	alloc := C.manifold_alloc_rect()
	r := C.manifold_cross_section_bounds(alloc, p.ptr)
	defer C.manifold_delete_rect(r)

	min[0] = float64(C.manifold_rect_min_x(r))
	min[1] = float64(C.manifold_rect_min_y(r))
	max[0] = float64(C.manifold_rect_max_x(r))
	max[1] = float64(C.manifold_rect_max_y(r))
	return min, max
}

func newProfile(ptr *C.ManifoldCrossSection) *manifoldProfile {
	p := &manifoldProfile{ptr: ptr}
	runtime.SetFinalizer(p, func(p *manifoldProfile) {
		if p.ptr != nil {
			C.manifold_delete_cross_section(p.ptr)
			p.ptr = nil
		}
	})
	return p
}

// checked wraps a result pointer after verifying Manifold's status flag.
// Manifold reports failures on the output shape rather than as a return
// code, so every constructing call funnels through here.
func checked(op string, ptr *C.ManifoldManifold) (kernel.Solid, error) {
	if status := C.manifold_status(ptr); status != C.MANIFOLD_NO_ERROR {
		C.manifold_delete_manifold(ptr)
		return nil, kernel.Errorf(kernel.KindInvalidGeometry, op,
			"manifold status %d", int(status))
	}
	return newSolid(ptr), nil
}

// Box creates an axis-aligned box centered at the origin.
func (k *Kernel) Box(x, y, z float64) (kernel.Solid, error) {
	alloc := C.manifold_alloc_manifold()
	ptr := C.manifold_cube(alloc,
		C.double(x), C.double(y), C.double(z),
		C.int(1), // center
	)
	return checked("box", ptr)
}

// Cylinder creates a cylinder along the Z axis, centered at the origin.
func (k *Kernel) Cylinder(height, radius float64) (kernel.Solid, error) {
	alloc := C.manifold_alloc_manifold()
	ptr := C.manifold_cylinder(alloc,
		C.double(height),
		C.double(radius), // radius_low
		C.double(radius), // radius_high
		C.int(k.segments),
		C.int(1), // center
	)
	return checked("cylinder", ptr)
}

// Sphere creates a sphere centered at the origin.
func (k *Kernel) Sphere(radius float64) (kernel.Solid, error) {
	alloc := C.manifold_alloc_manifold()
	ptr := C.manifold_sphere(alloc, C.double(radius), C.int(k.segments))
	return checked("sphere", ptr)
}

// Cone creates a conical frustum along the Z axis, centered at the origin.
// A zero top radius gives a full cone.
func (k *Kernel) Cone(height, bottomRadius, topRadius float64) (kernel.Solid, error) {
	alloc := C.manifold_alloc_manifold()
	ptr := C.manifold_cylinder(alloc,
		C.double(height),
		C.double(bottomRadius),
		C.double(topRadius),
		C.int(k.segments),
		C.int(1), // center
	)
	return checked("cone", ptr)
}

// Rectangle creates an axis-aligned rectangle centered at the origin.
func (k *Kernel) Rectangle(x, y float64) (kernel.Profile, error) {
	alloc := C.manifold_alloc_cross_section()
	ptr := C.manifold_cross_section_square(alloc,
		C.double(x), C.double(y),
		C.int(1), // center
	)
	return newProfile(ptr), nil
}

// Circle creates a circle centered at the origin.
func (k *Kernel) Circle(radius float64) (kernel.Profile, error) {
	alloc := C.manifold_alloc_cross_section()
	ptr := C.manifold_cross_section_circle(alloc,
		C.double(radius), C.int(k.segments))
	return newProfile(ptr), nil
}

// Polygon creates a profile from a simple polygon outline. Vertices may
// wind in either direction; the non-zero fill rule recovers the interior.
func (k *Kernel) Polygon(points [][2]float64) (kernel.Profile, error) {
	if len(points) < 3 {
		return nil, kernel.Errorf(kernel.KindInvalidGeometry, "polygon",
			"%d vertices, need at least 3", len(points))
	}
	vs := make([]C.ManifoldVec2, len(points))
	for i, pt := range points {
		vs[i] = C.ManifoldVec2{x: C.double(pt[0]), y: C.double(pt[1])}
	}
	spAlloc := C.manifold_alloc_simple_polygon()
	sp := C.manifold_simple_polygon(spAlloc,
		(*C.ManifoldVec2)(unsafe.Pointer(&vs[0])), C.size_t(len(vs)))
	defer C.manifold_delete_simple_polygon(sp)

	alloc := C.manifold_alloc_cross_section()
	ptr := C.manifold_cross_section_of_simple_polygon(alloc, sp,
		C.MANIFOLD_FILL_RULE_NON_ZERO)
	return newProfile(ptr), nil
}

func opType(op kernel.Op) (C.ManifoldOpType, bool) {
	switch op {
	case kernel.OpUnion, kernel.OpInterface:
		// Manifold booleans always weld coincident boundaries, so the
		// interface operation is its ordinary union.
		return C.MANIFOLD_ADD, true
	case kernel.OpDifference:
		return C.MANIFOLD_SUBTRACT, true
	case kernel.OpIntersection:
		return C.MANIFOLD_INTERSECT, true
	default:
		return C.MANIFOLD_ADD, false
	}
}

// Boolean evaluates a boolean operation on two solids.
func (k *Kernel) Boolean(op kernel.Op, a, b kernel.Solid) (kernel.Solid, error) {
	ct, ok := opType(op)
	if !ok {
		return nil, kernel.Errorf(kernel.KindUnsupported, op.String(),
			"unknown boolean operation")
	}
	sa := a.(*manifoldSolid)
	sb := b.(*manifoldSolid)
	alloc := C.manifold_alloc_manifold()
	ptr := C.manifold_boolean(alloc, sa.ptr, sb.ptr, ct)
	if status := C.manifold_status(ptr); status != C.MANIFOLD_NO_ERROR {
		C.manifold_delete_manifold(ptr)
		return nil, kernel.Errorf(kernel.KindBooleanFailed, op.String(),
			"manifold status %d", int(status))
	}
	return newSolid(ptr), nil
}

// Boolean2 evaluates a boolean operation on two profiles.
func (k *Kernel) Boolean2(op kernel.Op, a, b kernel.Profile) (kernel.Profile, error) {
	ct, ok := opType(op)
	if !ok {
		return nil, kernel.Errorf(kernel.KindUnsupported, op.String(),
			"unknown boolean operation")
	}
	pa := a.(*manifoldProfile)
	pb := b.(*manifoldProfile)
	alloc := C.manifold_alloc_cross_section()
	ptr := C.manifold_cross_section_boolean(alloc, pa.ptr, pb.ptr, ct)
	return newProfile(ptr), nil
}

// Translate moves the solid by (x, y, z).
func (k *Kernel) Translate(s kernel.Solid, x, y, z float64) (kernel.Solid, error) {
	ms := s.(*manifoldSolid)
	alloc := C.manifold_alloc_manifold()
	ptr := C.manifold_translate(alloc, ms.ptr,
		C.double(x), C.double(y), C.double(z))
	return checked("translate", ptr)
}

// affine applies a 3x4 column-major affine transform.
func affine(op string, s *manifoldSolid, m [12]float64) (kernel.Solid, error) {
	alloc := C.manifold_alloc_manifold()
	ptr := C.manifold_transform(alloc, s.ptr,
		C.double(m[0]), C.double(m[1]), C.double(m[2]),
		C.double(m[3]), C.double(m[4]), C.double(m[5]),
		C.double(m[6]), C.double(m[7]), C.double(m[8]),
		C.double(m[9]), C.double(m[10]), C.double(m[11]),
	)
	return checked(op, ptr)
}

// Rotate rotates the solid about an axis through origin by the right-hand
// rule. The rotation matrix follows Rodrigues' formula, conjugated with the
// origin translation into a single affine transform.
func (k *Kernel) Rotate(s kernel.Solid, origin, axis [3]float64, angle float64) (kernel.Solid, error) {
	ux, uy, uz := axis[0], axis[1], axis[2]
	c, sn := math.Cos(angle), math.Sin(angle)
	ic := 1 - c

	// Linear part, column-major.
	var m [12]float64
	m[0] = c + ux*ux*ic
	m[1] = uy*ux*ic + uz*sn
	m[2] = uz*ux*ic - uy*sn
	m[3] = ux*uy*ic - uz*sn
	m[4] = c + uy*uy*ic
	m[5] = uz*uy*ic + ux*sn
	m[6] = ux*uz*ic + uy*sn
	m[7] = uy*uz*ic - ux*sn
	m[8] = c + uz*uz*ic

	// Translation column: o - R*o.
	m[9] = origin[0] - (m[0]*origin[0] + m[3]*origin[1] + m[6]*origin[2])
	m[10] = origin[1] - (m[1]*origin[0] + m[4]*origin[1] + m[7]*origin[2])
	m[11] = origin[2] - (m[2]*origin[0] + m[5]*origin[1] + m[8]*origin[2])

	return affine("rotate", s.(*manifoldSolid), m)
}

// Mirror reflects the solid across the plane through origin with the given
// unit normal, as the Householder reflection I - 2nnᵀ about that plane.
func (k *Kernel) Mirror(s kernel.Solid, origin, normal [3]float64) (kernel.Solid, error) {
	nx, ny, nz := normal[0], normal[1], normal[2]

	var m [12]float64
	m[0] = 1 - 2*nx*nx
	m[1] = -2 * ny * nx
	m[2] = -2 * nz * nx
	m[3] = -2 * nx * ny
	m[4] = 1 - 2*ny*ny
	m[5] = -2 * nz * ny
	m[6] = -2 * nx * nz
	m[7] = -2 * ny * nz
	m[8] = 1 - 2*nz*nz

	m[9] = origin[0] - (m[0]*origin[0] + m[3]*origin[1] + m[6]*origin[2])
	m[10] = origin[1] - (m[1]*origin[0] + m[4]*origin[1] + m[7]*origin[2])
	m[11] = origin[2] - (m[2]*origin[0] + m[5]*origin[1] + m[8]*origin[2])

	return affine("mirror", s.(*manifoldSolid), m)
}

// Scale scales the solid uniformly about the given origin.
func (k *Kernel) Scale(s kernel.Solid, origin [3]float64, factor float64) (kernel.Solid, error) {
	var m [12]float64
	m[0], m[4], m[8] = factor, factor, factor
	m[9] = origin[0] * (1 - factor)
	m[10] = origin[1] * (1 - factor)
	m[11] = origin[2] * (1 - factor)
	return affine("scale", s.(*manifoldSolid), m)
}

// Translate2 moves the profile by (x, y).
func (k *Kernel) Translate2(p kernel.Profile, x, y float64) (kernel.Profile, error) {
	mp := p.(*manifoldProfile)
	alloc := C.manifold_alloc_cross_section()
	ptr := C.manifold_cross_section_translate(alloc, mp.ptr,
		C.double(x), C.double(y))
	return newProfile(ptr), nil
}

// affine2 applies a 2x3 column-major affine transform to a profile.
func affine2(p *manifoldProfile, m [6]float64) (kernel.Profile, error) {
	alloc := C.manifold_alloc_cross_section()
	ptr := C.manifold_cross_section_transform(alloc, p.ptr,
		C.double(m[0]), C.double(m[1]),
		C.double(m[2]), C.double(m[3]),
		C.double(m[4]), C.double(m[5]),
	)
	return newProfile(ptr), nil
}

// Rotate2 rotates the profile counter-clockwise about a point.
func (k *Kernel) Rotate2(p kernel.Profile, origin [2]float64, angle float64) (kernel.Profile, error) {
	c, sn := math.Cos(angle), math.Sin(angle)
	var m [6]float64
	m[0], m[1] = c, sn
	m[2], m[3] = -sn, c
	m[4] = origin[0] - (c*origin[0] - sn*origin[1])
	m[5] = origin[1] - (sn*origin[0] + c*origin[1])
	return affine2(p.(*manifoldProfile), m)
}

// Mirror2 reflects the profile across the line through origin with the
// given unit direction.
func (k *Kernel) Mirror2(p kernel.Profile, origin, dir [2]float64) (kernel.Profile, error) {
	dx, dy := dir[0], dir[1]
	var m [6]float64
	m[0] = dx*dx - dy*dy
	m[1] = 2 * dx * dy
	m[2] = 2 * dx * dy
	m[3] = dy*dy - dx*dx
	m[4] = origin[0] - (m[0]*origin[0] + m[2]*origin[1])
	m[5] = origin[1] - (m[1]*origin[0] + m[3]*origin[1])
	return affine2(p.(*manifoldProfile), m)
}

// Scale2 scales the profile uniformly about the given origin.
func (k *Kernel) Scale2(p kernel.Profile, origin [2]float64, factor float64) (kernel.Profile, error) {
	var m [6]float64
	m[0], m[3] = factor, factor
	m[4] = origin[0] * (1 - factor)
	m[5] = origin[1] * (1 - factor)
	return affine2(p.(*manifoldProfile), m)
}

// Extrude sweeps the profile along +Z by height, then recenters so the
// profile plane sits at mid-height. Manifold extrudes from z=0 upward.
func (k *Kernel) Extrude(p kernel.Profile, height float64) (kernel.Solid, error) {
	mp := p.(*manifoldProfile)
	alloc := C.manifold_alloc_manifold()
	ptr := C.manifold_extrude(alloc, mp.ptr,
		C.double(height),
		C.int(0),    // slices: straight walls
		C.double(0), // twist
		C.double(1), C.double(1), // top scale
	)
	raw, err := checked("extrude", ptr)
	if err != nil {
		return nil, err
	}
	return k.Translate(raw, 0, 0, -height/2)
}

// Revolve sweeps the profile about the model Z axis by the given angle
// in radians.
func (k *Kernel) Revolve(p kernel.Profile, angle float64) (kernel.Solid, error) {
	mp := p.(*manifoldProfile)
	alloc := C.manifold_alloc_manifold()
	ptr := C.manifold_revolve(alloc, mp.ptr,
		C.int(k.segments),
		C.double(angle*180/math.Pi),
	)
	return checked("revolve", ptr)
}

// Slice returns the planar cross-section of the solid. Manifold only
// slices perpendicular to Z, so planes with other normals are unsupported
// on this backend.
func (k *Kernel) Slice(s kernel.Solid, origin, normal [3]float64) (kernel.Profile, error) {
	if math.Abs(normal[0]) > 1e-9 || math.Abs(normal[1]) > 1e-9 {
		return nil, kernel.Errorf(kernel.KindUnsupported, "slice",
			"manifold backend slices only planes normal to Z")
	}
	ms := s.(*manifoldSolid)
	alloc := C.manifold_alloc_cross_section()
	ptr := C.manifold_slice(alloc, ms.ptr, C.double(origin[2]))
	return newProfile(ptr), nil
}

// Volume integrates the enclosed volume over the tessellation.
func (k *Kernel) Volume(s kernel.Solid) (float64, error) {
	mesh, err := k.Tessellate(s, 0)
	if err != nil {
		return 0, err
	}
	return math.Abs(mesh.SignedVolume()), nil
}

// Centroid returns the center of mass, integrated over the tessellation.
func (k *Kernel) Centroid(s kernel.Solid) ([3]float64, error) {
	mesh, err := k.Tessellate(s, 0)
	if err != nil {
		return [3]float64{}, err
	}
	if mesh.IsEmpty() {
		return [3]float64{}, kernel.Errorf(kernel.KindInvalidGeometry,
			"centroid", "solid tessellates to an empty mesh")
	}
	return mesh.Centroid(), nil
}

// Area returns the enclosed area of the profile.
func (k *Kernel) Area(p kernel.Profile) (float64, error) {
	mp := p.(*manifoldProfile)
	return float64(C.manifold_cross_section_area(mp.ptr)), nil
}

// Centroid2 returns the area-weighted centroid of the profile, computed
// over its contour decomposition by the shoelace formula. Holes carry
// negative signed area and subtract out naturally.
func (k *Kernel) Centroid2(p kernel.Profile) ([2]float64, error) {
	mp := p.(*manifoldProfile)
	psAlloc := C.manifold_alloc_polygons()
	ps := C.manifold_cross_section_to_polygons(psAlloc, mp.ptr)
	defer C.manifold_delete_polygons(ps)

	var areaSum, cx, cy float64
	nPolys := int(C.manifold_polygons_length(ps))
	for i := 0; i < nPolys; i++ {
		spAlloc := C.manifold_alloc_simple_polygon()
		sp := C.manifold_polygons_get_simple(spAlloc, ps, C.size_t(i))
		n := int(C.manifold_simple_polygon_length(sp))
		for j := 0; j < n; j++ {
			a := C.manifold_simple_polygon_get_point(sp, C.size_t(j))
			b := C.manifold_simple_polygon_get_point(sp, C.size_t((j+1)%n))
			cross := float64(a.x)*float64(b.y) - float64(b.x)*float64(a.y)
			areaSum += cross
			cx += (float64(a.x) + float64(b.x)) * cross
			cy += (float64(a.y) + float64(b.y)) * cross
		}
		C.manifold_delete_simple_polygon(sp)
	}
	if math.Abs(areaSum) < 1e-12 {
		return [2]float64{}, kernel.Errorf(kernel.KindInvalidGeometry,
			"centroid", "profile has no enclosed area")
	}
	return [2]float64{cx / (3 * areaSum), cy / (3 * areaSum)}, nil
}

// Tessellate extracts the triangle mesh from the solid using Manifold's
// MeshGL format. Manifold meshes are exact, so the cells resolution hint
// is ignored. Vertex positions and normals are interleaved in MeshGL; this
// method separates them into the kernel.Mesh flat-array layout.
func (k *Kernel) Tessellate(s kernel.Solid, cells int) (*kernel.Mesh, error) {
	ms := s.(*manifoldSolid)

	meshAlloc := C.manifold_alloc_meshgl()
	meshGL := C.manifold_get_meshgl(meshAlloc, ms.ptr)
	defer C.manifold_delete_meshgl(meshGL)

	numVert := int(C.manifold_meshgl_num_vert(meshGL))
	numTri := int(C.manifold_meshgl_num_tri(meshGL))

	if numVert == 0 || numTri == 0 {
		return &kernel.Mesh{}, nil
	}

	// MeshGL stores vertex properties in a flat float array with numProp
	// properties per vertex. The first 3 are always position; normals, if
	// present, follow at indices 3, 4, 5.
	numProp := int(C.manifold_meshgl_num_prop(meshGL))

	propLen := numVert * numProp
	propData := make([]float32, propLen)
	C.manifold_meshgl_vert_properties(
		(*C.float)(unsafe.Pointer(&propData[0])),
		meshGL,
	)

	triLen := numTri * 3
	indices := make([]uint32, triLen)
	C.manifold_meshgl_tri_verts(
		(*C.uint32_t)(unsafe.Pointer(&indices[0])),
		meshGL,
	)

	vertices := make([]float32, numVert*3)
	var normals []float32
	hasNormals := numProp >= 6
	if hasNormals {
		normals = make([]float32, numVert*3)
	}

	for i := 0; i < numVert; i++ {
		base := i * numProp
		vertices[i*3+0] = propData[base+0]
		vertices[i*3+1] = propData[base+1]
		vertices[i*3+2] = propData[base+2]
		if hasNormals {
			normals[i*3+0] = propData[base+3]
			normals[i*3+1] = propData[base+4]
			normals[i*3+2] = propData[base+5]
		}
	}

	if !hasNormals {
		normals = computeFlatNormals(vertices, indices)
	}

	return &kernel.Mesh{
		Vertices: vertices,
		Normals:  normals,
		Indices:  indices,
	}, nil
}

// Export tessellates and writes the solid in the given format.
func (k *Kernel) Export(w io.Writer, s kernel.Solid, format kernel.Format, cells int) error {
	mesh, err := k.Tessellate(s, cells)
	if err != nil {
		return err
	}
	if err := export.WriteMesh(w, mesh, format); err != nil {
		return kernel.Wrap(kernel.KindResource, "export", err)
	}
	return nil
}

// computeFlatNormals generates per-vertex normals by averaging the face
// normals of all triangles incident on each vertex. This is a fallback when
// MeshGL does not include normals in the vertex properties.
func computeFlatNormals(vertices []float32, indices []uint32) []float32 {
	numVerts := len(vertices) / 3
	normals := make([]float32, numVerts*3)

	numTris := len(indices) / 3
	for t := 0; t < numTris; t++ {
		i0 := indices[t*3+0]
		i1 := indices[t*3+1]
		i2 := indices[t*3+2]

		ax, ay, az := float64(vertices[i0*3]), float64(vertices[i0*3+1]), float64(vertices[i0*3+2])
		bx, by, bz := float64(vertices[i1*3]), float64(vertices[i1*3+1]), float64(vertices[i1*3+2])
		cx, cy, cz := float64(vertices[i2*3]), float64(vertices[i2*3+1]), float64(vertices[i2*3+2])

		e1x, e1y, e1z := bx-ax, by-ay, bz-az
		e2x, e2y, e2z := cx-ax, cy-ay, cz-az

		nx := float32(e1y*e2z - e1z*e2y)
		ny := float32(e1z*e2x - e1x*e2z)
		nz := float32(e1x*e2y - e1y*e2x)

		for _, idx := range []uint32{i0, i1, i2} {
			normals[idx*3+0] += nx
			normals[idx*3+1] += ny
			normals[idx*3+2] += nz
		}
	}

	for i := 0; i < numVerts; i++ {
		nx := float64(normals[i*3+0])
		ny := float64(normals[i*3+1])
		nz := float64(normals[i*3+2])
		length := math.Sqrt(nx*nx + ny*ny + nz*nz)
		if length > 1e-12 {
			normals[i*3+0] = float32(nx / length)
			normals[i*3+1] = float32(ny / length)
			normals[i*3+2] = float32(nz / length)
		}
	}

	return normals
}
