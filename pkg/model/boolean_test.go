package model

import (
	"testing"
)

func TestBooleanEmptyIdentities(t *testing.T) {
	w := testWorkspace()
	cube, err := w.Cube(mm(10))
	if err != nil {
		t.Fatalf("Cube() error = %v", err)
	}
	empty := w.EmptyPart()

	sum, err := cube.Add(empty)
	if err != nil {
		t.Fatalf("Add(empty) error = %v", err)
	}
	if !sum.Eq(cube) {
		t.Error("add with empty should preserve the shape")
	}

	sum, err = empty.Add(cube)
	if err != nil {
		t.Fatalf("empty.Add error = %v", err)
	}
	if !sum.Eq(cube) {
		t.Error("empty plus shape should be the shape")
	}

	diff, err := cube.Subtract(empty)
	if err != nil {
		t.Fatalf("Subtract(empty) error = %v", err)
	}
	if !diff.Eq(cube) {
		t.Error("subtracting empty should preserve the shape")
	}

	diff, err = empty.Subtract(cube)
	if err != nil {
		t.Fatalf("empty.Subtract error = %v", err)
	}
	if !diff.IsEmpty() {
		t.Error("subtracting from empty should stay empty")
	}

	inter, err := cube.Intersect(empty)
	if err != nil {
		t.Fatalf("Intersect(empty) error = %v", err)
	}
	if !inter.IsEmpty() {
		t.Error("intersection with empty should be empty")
	}

	both, err := empty.Add(w.EmptyPart())
	if err != nil {
		t.Fatalf("empty.Add(empty) error = %v", err)
	}
	if !both.IsEmpty() {
		t.Error("empty plus empty should be empty")
	}
}

func TestBooleanResultsAreNewEntities(t *testing.T) {
	w := testWorkspace()
	a, err := w.Cube(mm(10))
	if err != nil {
		t.Fatalf("Cube() error = %v", err)
	}
	b, err := w.Sphere(mm(6))
	if err != nil {
		t.Fatalf("Sphere() error = %v", err)
	}
	va := mustVolume(t, a)

	u, err := a.Add(b)
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if u.ID() == a.ID() || u.ID() == b.ID() {
		t.Error("boolean result should have a fresh identity")
	}
	// Operands are untouched.
	if got := mustVolume(t, a); !near(got, va, 1e-9) {
		t.Error("Add mutated its receiver")
	}
}

func TestUnionCommutes(t *testing.T) {
	w := testWorkspace()
	a, err := w.Cube(mm(10))
	if err != nil {
		t.Fatalf("Cube() error = %v", err)
	}
	shifted, err := a.MoveBy(mm(5), mm(0), mm(0))
	if err != nil {
		t.Fatalf("MoveBy() error = %v", err)
	}

	ab, err := a.Add(shifted)
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	ba, err := shifted.Add(a)
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if !ab.Eq(ba) {
		t.Error("union should commute")
	}
	if v := mustVolume(t, ab); !near(v, 1500, 1500*GeomTol) {
		t.Errorf("union volume = %f, want 1500", v)
	}
}

func TestIntersectCommutes(t *testing.T) {
	w := testWorkspace()
	a, err := w.Cube(mm(10))
	if err != nil {
		t.Fatalf("Cube() error = %v", err)
	}
	b, err := a.MoveBy(mm(5), mm(0), mm(0))
	if err != nil {
		t.Fatalf("MoveBy() error = %v", err)
	}

	ab, err := a.Intersect(b)
	if err != nil {
		t.Fatalf("Intersect() error = %v", err)
	}
	ba, err := b.Intersect(a)
	if err != nil {
		t.Fatalf("Intersect() error = %v", err)
	}
	if !ab.Eq(ba) {
		t.Error("intersection should commute")
	}
	if v := mustVolume(t, ab); !near(v, 500, 500*GeomTol) {
		t.Errorf("intersection volume = %f, want 500", v)
	}
}

func TestIntersectDisjointIsEmpty(t *testing.T) {
	w := testWorkspace()
	a, err := w.Cube(mm(10))
	if err != nil {
		t.Fatalf("Cube() error = %v", err)
	}
	far, err := a.MoveBy(mm(100), mm(0), mm(0))
	if err != nil {
		t.Fatalf("MoveBy() error = %v", err)
	}
	inter, err := a.Intersect(far)
	if err != nil {
		t.Fatalf("Intersect() error = %v", err)
	}
	if !inter.IsEmpty() {
		t.Error("disjoint intersection should be the explicit empty part")
	}
}

func TestSubtractDisjointPreservesShape(t *testing.T) {
	w := testWorkspace()
	a, err := w.Cube(mm(10))
	if err != nil {
		t.Fatalf("Cube() error = %v", err)
	}
	far, err := a.MoveBy(mm(100), mm(0), mm(0))
	if err != nil {
		t.Fatalf("MoveBy() error = %v", err)
	}
	diff, err := a.Subtract(far)
	if err != nil {
		t.Fatalf("Subtract() error = %v", err)
	}
	if !diff.Eq(a) {
		t.Error("subtracting a disjoint shape should preserve the receiver")
	}
}

// Two 10mm cubes offset by half an edge: the difference keeps half the
// material and its bounding box spans only the uncovered 5mm of x.
func TestSubtractHalfOverlap(t *testing.T) {
	w := testWorkspace()
	a, err := w.Cube(mm(10))
	if err != nil {
		t.Fatalf("Cube() error = %v", err)
	}
	b, err := a.MoveBy(mm(5), mm(0), mm(0))
	if err != nil {
		t.Fatalf("MoveBy() error = %v", err)
	}
	d, err := a.Subtract(b)
	if err != nil {
		t.Fatalf("Subtract() error = %v", err)
	}

	if v := mustVolume(t, d); !near(v, 500, 500*GeomTol) {
		t.Errorf("difference volume = %f, want 500", v)
	}

	bb := d.BoundingBox()
	if !near(bb.Min.X.MM(), -5, 0.2) || !near(bb.Max.X.MM(), 0, 0.2) {
		t.Errorf("bounding box X = [%s, %s], want [-5, 0]", bb.Min.X, bb.Max.X)
	}
	x, y, z := bb.Size()
	if !near(x.MM(), 5, 0.3) {
		t.Errorf("bounding box X extent = %s, want 5mm", x)
	}
	if !near(y.MM(), 10, 0.3) || !near(z.MM(), 10, 0.3) {
		t.Errorf("bounding box Y/Z extents = %s, %s, want 10mm", y, z)
	}
}

func TestInterfaceMatchesUnionMeasure(t *testing.T) {
	w := testWorkspace()
	a, err := w.Cube(mm(10))
	if err != nil {
		t.Fatalf("Cube() error = %v", err)
	}
	// Face-adjacent neighbor: the shared boundary is where interface and
	// plain union may differ structurally, never in measure.
	b, err := a.MoveBy(mm(10), mm(0), mm(0))
	if err != nil {
		t.Fatalf("MoveBy() error = %v", err)
	}

	iface, err := a.Interface(b)
	if err != nil {
		t.Fatalf("Interface() error = %v", err)
	}
	union, err := a.Add(b)
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if !iface.Eq(union) {
		t.Error("interface should cover the same region as union")
	}
}

func TestSketchBooleans(t *testing.T) {
	w := testWorkspace()
	a, err := w.Square(mm(10))
	if err != nil {
		t.Fatalf("Square() error = %v", err)
	}
	b, err := a.MoveBy(mm(5), mm(0))
	if err != nil {
		t.Fatalf("MoveBy() error = %v", err)
	}

	union, err := a.Add(b)
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if got := mustArea(t, union); !near(got, 150, 150*GeomTol) {
		t.Errorf("union area = %f, want 150", got)
	}

	inter, err := a.Intersect(b)
	if err != nil {
		t.Fatalf("Intersect() error = %v", err)
	}
	if got := mustArea(t, inter); !near(got, 50, 50*GeomTol) {
		t.Errorf("intersection area = %f, want 50", got)
	}

	diff, err := a.Subtract(b)
	if err != nil {
		t.Fatalf("Subtract() error = %v", err)
	}
	if got := mustArea(t, diff); !near(got, 50, 50*GeomTol) {
		t.Errorf("difference area = %f, want 50", got)
	}

	empty := w.EmptySketch()
	kept, err := a.Subtract(empty)
	if err != nil {
		t.Fatalf("Subtract(empty) error = %v", err)
	}
	if !kept.Eq(a) {
		t.Error("subtracting the empty sketch should preserve the shape")
	}
	gone, err := a.Intersect(empty)
	if err != nil {
		t.Fatalf("Intersect(empty) error = %v", err)
	}
	if !gone.IsEmpty() {
		t.Error("intersecting with the empty sketch should be empty")
	}
}
