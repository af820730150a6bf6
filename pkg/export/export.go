// Package export writes kernel meshes to interchange formats. It operates
// purely on the flat-array mesh layout of pkg/kernel, so it works with any
// backend's tessellation output.
package export

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/hpinc/go3mf"

	"github.com/chazu/smithy/pkg/kernel"
)

// stlHeaderSize is the fixed binary STL header length.
const stlHeaderSize = 80

// WriteSTL writes the mesh as binary STL. Normals are recomputed per face
// from the triangle winding; STL consumers ignore stored vertex normals.
func WriteSTL(w io.Writer, m *kernel.Mesh) error {
	header := make([]byte, stlHeaderSize)
	copy(header, m.Name)
	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("stl: write header: %w", err)
	}

	count := uint32(m.TriangleCount())
	if err := binary.Write(w, binary.LittleEndian, count); err != nil {
		return fmt.Errorf("stl: write count: %w", err)
	}

	var rec [50]byte
	for t := 0; t < m.TriangleCount(); t++ {
		a, b, c := m.Triangle(t)
		n := faceNormal(a, b, c)
		off := 0
		for _, v := range [][3]float64{n, a, b, c} {
			for i := 0; i < 3; i++ {
				binary.LittleEndian.PutUint32(rec[off:], math.Float32bits(float32(v[i])))
				off += 4
			}
		}
		// Attribute byte count stays zero.
		rec[48], rec[49] = 0, 0
		if _, err := w.Write(rec[:]); err != nil {
			return fmt.Errorf("stl: write triangle %d: %w", t, err)
		}
	}
	return nil
}

// Write3MF writes the mesh as a 3MF package with a single mesh object.
func Write3MF(w io.Writer, m *kernel.Mesh) error {
	obj := &go3mf.Object{ID: 1, Name: m.Name, Mesh: new(go3mf.Mesh)}

	for i := 0; i < m.VertexCount(); i++ {
		obj.Mesh.Vertices.Vertex = append(obj.Mesh.Vertices.Vertex, go3mf.Point3D{
			m.Vertices[i*3], m.Vertices[i*3+1], m.Vertices[i*3+2],
		})
	}
	for t := 0; t < m.TriangleCount(); t++ {
		obj.Mesh.Triangles.Triangle = append(obj.Mesh.Triangles.Triangle, go3mf.Triangle{
			V1: m.Indices[t*3], V2: m.Indices[t*3+1], V3: m.Indices[t*3+2],
		})
	}

	model := new(go3mf.Model)
	model.Units = go3mf.UnitMillimeter
	model.Resources.Objects = append(model.Resources.Objects, obj)
	model.Build.Items = append(model.Build.Items, &go3mf.Item{ObjectID: 1})

	if err := go3mf.NewEncoder(w).Encode(model); err != nil {
		return fmt.Errorf("3mf: encode: %w", err)
	}
	return nil
}

// WriteMesh dispatches on the kernel export format.
func WriteMesh(w io.Writer, m *kernel.Mesh, format kernel.Format) error {
	switch format {
	case kernel.FormatSTL:
		return WriteSTL(w, m)
	case kernel.Format3MF:
		return Write3MF(w, m)
	default:
		return fmt.Errorf("export: unknown format %d", format)
	}
}

func faceNormal(a, b, c [3]float64) [3]float64 {
	ux, uy, uz := b[0]-a[0], b[1]-a[1], b[2]-a[2]
	vx, vy, vz := c[0]-a[0], c[1]-a[1], c[2]-a[2]
	nx := uy*vz - uz*vy
	ny := uz*vx - ux*vz
	nz := ux*vy - uy*vx
	l := math.Sqrt(nx*nx + ny*ny + nz*nz)
	if l < 1e-12 {
		return [3]float64{}
	}
	return [3]float64{nx / l, ny / l, nz / l}
}
