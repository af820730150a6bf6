package export

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/chazu/smithy/pkg/kernel"
)

func testMesh() *kernel.Mesh {
	// One outward-wound tetrahedron.
	return &kernel.Mesh{
		Vertices: []float32{
			0, 0, 0,
			1, 0, 0,
			0, 1, 0,
			0, 0, 1,
		},
		Normals: make([]float32, 12),
		Indices: []uint32{
			0, 2, 1,
			0, 3, 2,
			0, 1, 3,
			1, 2, 3,
		},
		Name: "tetra",
	}
}

func TestWriteSTL(t *testing.T) {
	var buf bytes.Buffer
	m := testMesh()
	if err := WriteSTL(&buf, m); err != nil {
		t.Fatalf("WriteSTL() error = %v", err)
	}

	// Binary STL layout: 80-byte header, uint32 count, 50 bytes per triangle.
	wantLen := 80 + 4 + 50*m.TriangleCount()
	if buf.Len() != wantLen {
		t.Errorf("STL length = %d, want %d", buf.Len(), wantLen)
	}

	data := buf.Bytes()
	if !bytes.HasPrefix(data, []byte("tetra")) {
		t.Error("STL header should start with the mesh name")
	}
	count := binary.LittleEndian.Uint32(data[80:84])
	if count != uint32(m.TriangleCount()) {
		t.Errorf("STL triangle count = %d, want %d", count, m.TriangleCount())
	}
}

func TestWriteSTLEmptyMesh(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSTL(&buf, &kernel.Mesh{Name: "empty"}); err != nil {
		t.Fatalf("WriteSTL(empty) error = %v", err)
	}
	if buf.Len() != 84 {
		t.Errorf("empty STL length = %d, want 84", buf.Len())
	}
}

func TestWrite3MF(t *testing.T) {
	var buf bytes.Buffer
	if err := Write3MF(&buf, testMesh()); err != nil {
		t.Fatalf("Write3MF() error = %v", err)
	}
	// A 3MF package is an OPC zip container.
	if !bytes.HasPrefix(buf.Bytes(), []byte("PK")) {
		t.Error("3MF output should be a zip container")
	}
}

func TestWriteMeshDispatch(t *testing.T) {
	var stl, tmf bytes.Buffer
	if err := WriteMesh(&stl, testMesh(), kernel.FormatSTL); err != nil {
		t.Fatalf("WriteMesh(stl) error = %v", err)
	}
	if err := WriteMesh(&tmf, testMesh(), kernel.Format3MF); err != nil {
		t.Fatalf("WriteMesh(3mf) error = %v", err)
	}
	if stl.Len() == 0 || tmf.Len() == 0 {
		t.Error("dispatch produced empty output")
	}
	if err := WriteMesh(&stl, testMesh(), kernel.Format(99)); err == nil {
		t.Error("unknown format: error = nil, want error")
	}
}
