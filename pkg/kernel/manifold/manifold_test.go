//go:build manifold

package manifold

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/chazu/smithy/pkg/kernel"
)

func mustNew(t *testing.T) kernel.Kernel {
	t.Helper()
	k, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return k
}

func TestBox(t *testing.T) {
	k := mustNew(t)
	s, err := k.Box(10, 20, 30)
	if err != nil {
		t.Fatalf("Box() error = %v", err)
	}
	min, max := s.BoundingBox()

	// Box is centered, so bounds should be symmetric.
	wantMin := [3]float64{-5, -10, -15}
	wantMax := [3]float64{5, 10, 15}

	for i := 0; i < 3; i++ {
		if math.Abs(min[i]-wantMin[i]) > 1e-6 {
			t.Errorf("Box min[%d] = %f, want %f", i, min[i], wantMin[i])
		}
		if math.Abs(max[i]-wantMax[i]) > 1e-6 {
			t.Errorf("Box max[%d] = %f, want %f", i, max[i], wantMax[i])
		}
	}
}

func TestBoxVolume(t *testing.T) {
	k := mustNew(t)
	s, err := k.Box(10, 20, 30)
	if err != nil {
		t.Fatalf("Box() error = %v", err)
	}
	v, err := k.Volume(s)
	if err != nil {
		t.Fatalf("Volume() error = %v", err)
	}
	// Manifold boxes are exact meshes.
	if math.Abs(v-6000) > 1e-6 {
		t.Errorf("Volume = %f, want 6000", v)
	}
}

func TestBooleanDifference(t *testing.T) {
	k := mustNew(t)
	a, err := k.Box(10, 10, 10)
	if err != nil {
		t.Fatalf("Box() error = %v", err)
	}
	b, err := k.Cylinder(20, 2)
	if err != nil {
		t.Fatalf("Cylinder() error = %v", err)
	}
	d, err := k.Boolean(kernel.OpDifference, a, b)
	if err != nil {
		t.Fatalf("Boolean(difference) error = %v", err)
	}
	va, err := k.Volume(a)
	if err != nil {
		t.Fatalf("Volume(a) error = %v", err)
	}
	vd, err := k.Volume(d)
	if err != nil {
		t.Fatalf("Volume(d) error = %v", err)
	}
	if vd >= va {
		t.Errorf("difference volume %f not smaller than box volume %f", vd, va)
	}
}

func TestRotateAboutAxis(t *testing.T) {
	k := mustNew(t)
	s, err := k.Box(10, 2, 2)
	if err != nil {
		t.Fatalf("Box() error = %v", err)
	}
	// Quarter turn about Z swaps the long edge from X onto Y.
	r, err := k.Rotate(s, [3]float64{0, 0, 0}, [3]float64{0, 0, 1}, math.Pi/2)
	if err != nil {
		t.Fatalf("Rotate() error = %v", err)
	}
	min, max := r.BoundingBox()
	if got := max[1] - min[1]; math.Abs(got-10) > 1e-6 {
		t.Errorf("rotated Y extent = %f, want 10", got)
	}
	if got := max[0] - min[0]; math.Abs(got-2) > 1e-6 {
		t.Errorf("rotated X extent = %f, want 2", got)
	}
}

func TestExtrudeCentered(t *testing.T) {
	k := mustNew(t)
	p, err := k.Rectangle(4, 6)
	if err != nil {
		t.Fatalf("Rectangle() error = %v", err)
	}
	s, err := k.Extrude(p, 10)
	if err != nil {
		t.Fatalf("Extrude() error = %v", err)
	}
	min, max := s.BoundingBox()
	if math.Abs(min[2]+5) > 1e-6 || math.Abs(max[2]-5) > 1e-6 {
		t.Errorf("extrusion Z bounds = [%f, %f], want [-5, 5]", min[2], max[2])
	}
}

func TestSliceNonZUnsupported(t *testing.T) {
	k := mustNew(t)
	s, err := k.Box(10, 10, 10)
	if err != nil {
		t.Fatalf("Box() error = %v", err)
	}
	_, err = k.Slice(s, [3]float64{0, 0, 0}, [3]float64{1, 0, 0})
	if err == nil {
		t.Fatal("Slice with X normal: error = nil, want unsupported")
	}
	var kerr *kernel.Error
	if !errors.As(err, &kerr) || kerr.Kind != kernel.KindUnsupported {
		t.Errorf("Slice error = %v, want kind %s", err, kernel.KindUnsupported)
	}
}

func TestProfileAreaAndCentroid(t *testing.T) {
	k := mustNew(t)
	p, err := k.Rectangle(4, 6)
	if err != nil {
		t.Fatalf("Rectangle() error = %v", err)
	}
	moved, err := k.Translate2(p, 3, 1)
	if err != nil {
		t.Fatalf("Translate2() error = %v", err)
	}
	a, err := k.Area(moved)
	if err != nil {
		t.Fatalf("Area() error = %v", err)
	}
	if math.Abs(a-24) > 1e-6 {
		t.Errorf("Area = %f, want 24", a)
	}
	c, err := k.Centroid2(moved)
	if err != nil {
		t.Fatalf("Centroid2() error = %v", err)
	}
	if math.Abs(c[0]-3) > 1e-6 || math.Abs(c[1]-1) > 1e-6 {
		t.Errorf("Centroid2 = %v, want [3 1]", c)
	}
}

func TestExportSTL(t *testing.T) {
	k := mustNew(t)
	s, err := k.Box(10, 10, 10)
	if err != nil {
		t.Fatalf("Box() error = %v", err)
	}
	var buf bytes.Buffer
	if err := k.Export(&buf, s, kernel.FormatSTL, 0); err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if buf.Len() <= 84 {
		t.Errorf("STL output %d bytes, want more than header", buf.Len())
	}
}
