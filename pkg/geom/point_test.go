package geom

import (
	"errors"
	"math"
	"testing"

	"github.com/chazu/smithy/pkg/quant"
)

func mm(v float64) quant.Length { return quant.Millimeters(v) }

func TestPointDistance(t *testing.T) {
	a := Pt2(mm(0), mm(0))
	b := Pt2(mm(3), mm(4))
	if got := a.DistanceTo(b); !got.Eq(mm(5)) {
		t.Errorf("DistanceTo = %v, want 5mm", got)
	}

	p := Pt3(mm(1), mm(2), mm(3))
	q := Pt3(mm(1), mm(2), mm(3))
	if got := p.DistanceTo(q); !got.IsZero() {
		t.Errorf("DistanceTo self = %v, want 0", got)
	}
}

func TestPointAddSub(t *testing.T) {
	p := Pt3(mm(1), mm(2), mm(3))
	d := Pt3(mm(10), mm(-2), mm(0))
	sum := p.Add(d)
	if !sum.Eq(Pt3(mm(11), mm(0), mm(3))) {
		t.Errorf("Add = %v", sum)
	}
	if !sum.Sub(d).Eq(p) {
		t.Errorf("Sub did not invert Add: %v", sum.Sub(d))
	}
}

func TestDirectionTo(t *testing.T) {
	a := Pt3(mm(0), mm(0), mm(0))
	b := Pt3(mm(0), mm(0), mm(7))
	d, err := a.DirectionTo(b)
	if err != nil {
		t.Fatalf("DirectionTo error = %v", err)
	}
	if !d.Eq(DirZ3()) {
		t.Errorf("DirectionTo = %v, want +Z", d)
	}

	_, err = a.DirectionTo(a)
	if !errors.Is(err, ErrZeroDirection) {
		t.Errorf("DirectionTo self error = %v, want ErrZeroDirection", err)
	}
}

func TestDirNormalization(t *testing.T) {
	d, err := NewDir3(3, 0, 4)
	if err != nil {
		t.Fatalf("NewDir3 error = %v", err)
	}
	if math.Abs(d.X()-0.6) > 1e-12 || math.Abs(d.Z()-0.8) > 1e-12 {
		t.Errorf("NewDir3(3,0,4) = %v, want (0.6, 0, 0.8)", d)
	}
	mag := math.Sqrt(d.X()*d.X() + d.Y()*d.Y() + d.Z()*d.Z())
	if math.Abs(mag-1) > 1e-12 {
		t.Errorf("direction magnitude = %v, want 1", mag)
	}

	if _, err := NewDir3(0, 0, 0); !errors.Is(err, ErrZeroDirection) {
		t.Errorf("NewDir3(0,0,0) error = %v, want ErrZeroDirection", err)
	}
	if _, err := NewDir2(0, 0); !errors.Is(err, ErrZeroDirection) {
		t.Errorf("NewDir2(0,0) error = %v, want ErrZeroDirection", err)
	}
}

func TestDirProducts(t *testing.T) {
	if got := DirX3().Dot(DirY3()); got != 0 {
		t.Errorf("X.Y = %v, want 0", got)
	}
	x, y, z := DirX3().Cross(DirY3())
	if x != 0 || y != 0 || math.Abs(z-1) > 1e-12 {
		t.Errorf("X cross Y = (%v, %v, %v), want +Z", x, y, z)
	}
	if !DirX3().Neg().Eq(mustDir3(t, -1, 0, 0)) {
		t.Error("Neg of +X should be -X")
	}
}

func mustDir3(t *testing.T, x, y, z float64) Dir3 {
	t.Helper()
	d, err := NewDir3(x, y, z)
	if err != nil {
		t.Fatalf("NewDir3(%v,%v,%v) error = %v", x, y, z, err)
	}
	return d
}

func TestDirScale(t *testing.T) {
	p := DirZ3().Scale(mm(12))
	if !p.Eq(Pt3(mm(0), mm(0), mm(12))) {
		t.Errorf("Scale along +Z = %v, want (0,0,12)", p)
	}
}
