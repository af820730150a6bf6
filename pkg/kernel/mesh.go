package kernel

// Mesh is a triangle mesh produced by tessellating a solid.
// All arrays are flat: vertices has 3 floats per vertex (x,y,z),
// normals has 3 floats per vertex, indices has 3 uint32s per triangle.
type Mesh struct {
	Vertices []float32 // [x0,y0,z0, x1,y1,z1, ...]
	Normals  []float32 // [nx0,ny0,nz0, ...]
	Indices  []uint32  // [i0,i1,i2, ...] triangles
	Name     string    // which shape entity this came from
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}

// Triangle returns the vertex positions of triangle t.
func (m *Mesh) Triangle(t int) (a, b, c [3]float64) {
	read := func(i uint32) [3]float64 {
		return [3]float64{
			float64(m.Vertices[i*3]),
			float64(m.Vertices[i*3+1]),
			float64(m.Vertices[i*3+2]),
		}
	}
	return read(m.Indices[t*3]), read(m.Indices[t*3+1]), read(m.Indices[t*3+2])
}

// SignedVolume integrates the mesh volume with the divergence theorem.
// The result is exact for the mesh and approximates the solid to the
// tessellation resolution. Orientation must be consistent outward.
func (m *Mesh) SignedVolume() float64 {
	var sum float64
	for t := 0; t < m.TriangleCount(); t++ {
		a, b, c := m.Triangle(t)
		sum += a[0]*(b[1]*c[2]-b[2]*c[1]) -
			a[1]*(b[0]*c[2]-b[2]*c[0]) +
			a[2]*(b[0]*c[1]-b[1]*c[0])
	}
	return sum / 6
}

// Centroid integrates the volume centroid of the mesh. Returns the origin
// for meshes enclosing no volume.
func (m *Mesh) Centroid() [3]float64 {
	var vol float64
	var cx, cy, cz float64
	for t := 0; t < m.TriangleCount(); t++ {
		a, b, c := m.Triangle(t)
		// Signed volume of the tetrahedron (origin, a, b, c) and its
		// centroid contribution.
		v := (a[0]*(b[1]*c[2]-b[2]*c[1]) -
			a[1]*(b[0]*c[2]-b[2]*c[0]) +
			a[2]*(b[0]*c[1]-b[1]*c[0])) / 6
		vol += v
		cx += v * (a[0] + b[0] + c[0]) / 4
		cy += v * (a[1] + b[1] + c[1]) / 4
		cz += v * (a[2] + b[2] + c[2]) / 4
	}
	if vol == 0 {
		return [3]float64{}
	}
	return [3]float64{cx / vol, cy / vol, cz / vol}
}
