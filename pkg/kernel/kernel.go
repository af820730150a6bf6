// Package kernel defines the abstract geometry kernel interface.
// Implementations (sdfx, manifold) provide primitive construction, boolean
// evaluation, rigid transforms, measurement and tessellation behind this
// interface. It is the only boundary at which raw float64 values cross into
// kernel-native representations: lengths are millimeters, angles radians.
//
// Every call is synchronous and deterministic for identical inputs.
// Failures are surfaced as *Error and are never retried; geometric failures
// are not transient.
package kernel

import "io"

// Solid is an opaque handle to a kernel 3D solid.
// Implementations wrap their internal representation. Handles are immutable:
// no operation modifies an existing solid, so handles may be shared.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max [3]float64)
}

// Profile is an opaque handle to a kernel 2D planar profile, the
// two-dimensional counterpart of Solid. The same immutability applies.
type Profile interface {
	// BoundingBox returns the axis-aligned bounding rectangle.
	BoundingBox() (min, max [2]float64)
}

// Op identifies a boolean operation.
type Op int

const (
	// OpUnion keeps all points in either operand.
	OpUnion Op = iota
	// OpDifference keeps points in the first operand not in the second.
	OpDifference
	// OpIntersection keeps points in both operands.
	OpIntersection
	// OpInterface is a union that merges coincident boundaries between the
	// operands into shared topology instead of duplicate geometry.
	OpInterface
)

// String returns the operation name.
func (op Op) String() string {
	switch op {
	case OpUnion:
		return "union"
	case OpDifference:
		return "difference"
	case OpIntersection:
		return "intersection"
	case OpInterface:
		return "interface"
	default:
		return "unknown"
	}
}

// Format identifies a mesh export format.
type Format int

const (
	// FormatSTL is binary stereolithography.
	FormatSTL Format = iota
	// Format3MF is the 3D Manufacturing Format container.
	Format3MF
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatSTL:
		return "stl"
	case Format3MF:
		return "3mf"
	default:
		return "unknown"
	}
}

// Kernel is the abstract geometry kernel interface. Implementations provide
// solid modeling behind this interface so backends can be swapped without
// touching the composition layer above.
//
// Dimension parameters must be strictly positive; callers validate before
// crossing this boundary, implementations may still reject with *Error.
type Kernel interface {
	// 3D primitives, centered on the origin.
	Box(x, y, z float64) (Solid, error)
	Cylinder(height, radius float64) (Solid, error)
	Sphere(radius float64) (Solid, error)
	Cone(height, bottomRadius, topRadius float64) (Solid, error)

	// 2D primitives, centered on the origin (Polygon as given).
	Rectangle(x, y float64) (Profile, error)
	Circle(radius float64) (Profile, error)
	Polygon(points [][2]float64) (Profile, error)

	// Boolean operations.
	Boolean(op Op, a, b Solid) (Solid, error)
	Boolean2(op Op, a, b Profile) (Profile, error)

	// Rigid transforms and uniform scaling. Rotation follows the right-hand
	// rule about the axis direction; axis and mirror-plane normals must be
	// unit vectors.
	Translate(s Solid, x, y, z float64) (Solid, error)
	Rotate(s Solid, origin, axis [3]float64, angle float64) (Solid, error)
	Mirror(s Solid, origin, normal [3]float64) (Solid, error)
	Scale(s Solid, origin [3]float64, factor float64) (Solid, error)

	Translate2(p Profile, x, y float64) (Profile, error)
	Rotate2(p Profile, origin [2]float64, angle float64) (Profile, error)
	Mirror2(p Profile, origin, dir [2]float64) (Profile, error)
	Scale2(p Profile, origin [2]float64, factor float64) (Profile, error)

	// Dimension conversions. Extrude sweeps a profile along +Z by height,
	// centered so the profile plane is at z=0 mid-height. Revolve sweeps the
	// profile about the model Z axis by the given angle. Slice returns the
	// planar cross-section of a solid in the given plane, expressed in that
	// plane's 2D coordinates.
	Extrude(p Profile, height float64) (Solid, error)
	Revolve(p Profile, angle float64) (Solid, error)
	Slice(s Solid, origin, normal [3]float64) (Profile, error)

	// Mass properties. Values are approximate to the backend's documented
	// measurement resolution.
	Volume(s Solid) (float64, error)
	Centroid(s Solid) ([3]float64, error)
	Area(p Profile) (float64, error)
	Centroid2(p Profile) ([2]float64, error)

	// Mesh output. cells controls tessellation resolution along the longest
	// bounding box edge; cells <= 0 selects the backend default.
	Tessellate(s Solid, cells int) (*Mesh, error)

	// Export tessellates and writes the solid in the given format.
	Export(w io.Writer, s Solid, format Format, cells int) error
}
