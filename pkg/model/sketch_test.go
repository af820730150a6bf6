package model

import (
	"errors"
	"math"
	"testing"

	"github.com/chazu/smithy/pkg/geom"
	"github.com/chazu/smithy/pkg/quant"
)

func TestSketchMoveAndRotate(t *testing.T) {
	w := testWorkspace()
	s, err := w.Rectangle(mm(10), mm(4))
	if err != nil {
		t.Fatalf("Rectangle() error = %v", err)
	}

	moved, err := s.MoveTo(geom.Pt2(mm(20), mm(5)))
	if err != nil {
		t.Fatalf("MoveTo() error = %v", err)
	}
	c, err := moved.Center()
	if err != nil {
		t.Fatalf("Center() error = %v", err)
	}
	if geom.Pt2(mm(20), mm(5)).DistanceTo(c).MM() > BoundsTol.MM() {
		t.Errorf("center after MoveTo = %s, want (20, 5)", c)
	}

	r, err := s.Rotate(quant.Degrees(90))
	if err != nil {
		t.Fatalf("Rotate() error = %v", err)
	}
	x, y := r.BoundingBox().Size()
	if !near(x.MM(), 4, 0.01) || !near(y.MM(), 10, 0.01) {
		t.Errorf("rotated size = (%s, %s), want (4mm, 10mm)", x, y)
	}
}

func TestSketchMirror(t *testing.T) {
	w := testWorkspace()
	s, err := w.Square(mm(2))
	if err != nil {
		t.Fatalf("Square() error = %v", err)
	}
	moved, err := s.MoveBy(mm(5), mm(0))
	if err != nil {
		t.Fatalf("MoveBy() error = %v", err)
	}
	m, err := moved.Mirror(geom.Axis2Y())
	if err != nil {
		t.Fatalf("Mirror() error = %v", err)
	}
	b := m.BoundingBox()
	if !near(b.Min.X.MM(), -6, 1e-6) || !near(b.Max.X.MM(), -4, 1e-6) {
		t.Errorf("mirrored X bounds = [%s, %s], want [-6, -4]", b.Min.X, b.Max.X)
	}
}

func TestSketchScale(t *testing.T) {
	w := testWorkspace()
	s, err := w.Square(mm(10))
	if err != nil {
		t.Fatalf("Square() error = %v", err)
	}
	big, err := s.Scale(3)
	if err != nil {
		t.Fatalf("Scale() error = %v", err)
	}
	if a := mustArea(t, big); !near(a, 900, 900*GeomTol) {
		t.Errorf("scaled area = %f, want 900", a)
	}
	if _, err := s.Scale(-2); !errors.Is(err, ErrDegenerateGeometry) {
		t.Errorf("Scale(-2) error = %v, want ErrDegenerateGeometry", err)
	}
}

func TestExtrude(t *testing.T) {
	w := testWorkspace()
	s, err := w.Rectangle(mm(4), mm(6))
	if err != nil {
		t.Fatalf("Rectangle() error = %v", err)
	}
	p, err := s.Extrude(mm(10))
	if err != nil {
		t.Fatalf("Extrude() error = %v", err)
	}
	b := p.BoundingBox()
	if !near(b.Min.Z.MM(), -5, 1e-9) || !near(b.Max.Z.MM(), 5, 1e-9) {
		t.Errorf("extrusion Z bounds = [%s, %s], want [-5, 5]", b.Min.Z, b.Max.Z)
	}
	if v := mustVolume(t, p); !near(v, 240, 240*GeomTol) {
		t.Errorf("extrusion volume = %f, want 240", v)
	}

	if _, err := s.Extrude(mm(0)); !errors.Is(err, ErrDegenerateGeometry) {
		t.Errorf("Extrude(0) error = %v, want ErrDegenerateGeometry", err)
	}
	if _, err := w.EmptySketch().Extrude(mm(10)); !errors.Is(err, ErrEmptySketch) {
		t.Errorf("empty Extrude error = %v, want ErrEmptySketch", err)
	}
}

func TestRevolve(t *testing.T) {
	w := testWorkspace()
	// Profile x in [5, 10], y in [-2, 2]: a full revolution is a washer.
	s, err := w.RectangleFromCorners(geom.Pt2(mm(5), mm(-2)), geom.Pt2(mm(10), mm(2)))
	if err != nil {
		t.Fatalf("RectangleFromCorners() error = %v", err)
	}
	p, err := s.Revolve(quant.FullTurn())
	if err != nil {
		t.Fatalf("Revolve() error = %v", err)
	}
	want := math.Pi * (100 - 25) * 4
	if v := mustVolume(t, p); !near(v, want, want*0.03) {
		t.Errorf("revolved volume = %f, want %f", v, want)
	}
}

func TestRevolveRejectsAxisCrossing(t *testing.T) {
	w := testWorkspace()
	// Centered square straddles x=0.
	s, err := w.Square(mm(10))
	if err != nil {
		t.Fatalf("Square() error = %v", err)
	}
	if _, err := s.Revolve(quant.FullTurn()); !errors.Is(err, ErrDegenerateGeometry) {
		t.Errorf("Revolve across axis error = %v, want ErrDegenerateGeometry", err)
	}
}

func TestRevolveAngleRange(t *testing.T) {
	w := testWorkspace()
	s, err := w.RectangleFromCorners(geom.Pt2(mm(5), mm(-2)), geom.Pt2(mm(10), mm(2)))
	if err != nil {
		t.Fatalf("RectangleFromCorners() error = %v", err)
	}
	if _, err := s.Revolve(quant.Degrees(0)); !errors.Is(err, ErrDegenerateGeometry) {
		t.Errorf("Revolve(0) error = %v, want ErrDegenerateGeometry", err)
	}
	if _, err := s.Revolve(quant.Degrees(361)); !errors.Is(err, ErrDegenerateGeometry) {
		t.Errorf("Revolve(361deg) error = %v, want ErrDegenerateGeometry", err)
	}
	if _, err := w.EmptySketch().Revolve(quant.Degrees(90)); !errors.Is(err, ErrEmptySketch) {
		t.Errorf("empty Revolve error = %v, want ErrEmptySketch", err)
	}
}

func TestSketchEq(t *testing.T) {
	w := testWorkspace()
	a, err := w.Square(mm(10))
	if err != nil {
		t.Fatalf("Square() error = %v", err)
	}
	b, err := w.Square(mm(10))
	if err != nil {
		t.Fatalf("Square() error = %v", err)
	}
	if !a.Eq(b) {
		t.Error("identical squares should be equal")
	}
	moved, err := a.MoveBy(mm(2), mm(0))
	if err != nil {
		t.Fatalf("MoveBy() error = %v", err)
	}
	if a.Eq(moved) {
		t.Error("squares 2mm apart should not be equal")
	}
	if !w.EmptySketch().Eq(w.EmptySketch()) {
		t.Error("empty sketches should equal each other")
	}
}
