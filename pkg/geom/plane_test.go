package geom

import (
	"errors"
	"testing"
)

func TestPlaneSignedDistance(t *testing.T) {
	p := PlaneXY()
	if got := p.SignedDistanceTo(Pt3(mm(0), mm(0), mm(3))); !got.Eq(mm(3)) {
		t.Errorf("distance above XY = %v, want 3mm", got)
	}
	if got := p.SignedDistanceTo(Pt3(mm(5), mm(5), mm(-2))); !got.Eq(mm(-2)) {
		t.Errorf("distance below XY = %v, want -2mm", got)
	}
	if !p.Contains(Pt3(mm(7), mm(-4), mm(0))) {
		t.Error("point at z=0 should lie on the XY plane")
	}
}

func TestPlaneThrough(t *testing.T) {
	p, err := PlaneThrough(Origin3(), DirX3(), DirY3())
	if err != nil {
		t.Fatalf("PlaneThrough error = %v", err)
	}
	if !p.Normal.Eq(DirZ3()) {
		t.Errorf("normal = %v, want +Z", p.Normal)
	}

	_, err = PlaneThrough(Origin3(), DirX3(), DirX3())
	if !errors.Is(err, ErrZeroDirection) {
		t.Errorf("parallel spanning directions error = %v, want ErrZeroDirection", err)
	}
}

func TestCanonicalPlanes(t *testing.T) {
	if !PlaneXZ().Normal.Eq(DirY3()) {
		t.Error("XZ plane normal should be +Y")
	}
	if !PlaneYZ().Normal.Eq(DirX3()) {
		t.Error("YZ plane normal should be +X")
	}
}
