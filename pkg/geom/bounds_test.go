package geom

import (
	"testing"

	"github.com/chazu/smithy/pkg/quant"
)

func box3(minX, minY, minZ, maxX, maxY, maxZ float64) Bounds3 {
	return Bounds3{
		Min: Pt3(mm(minX), mm(minY), mm(minZ)),
		Max: Pt3(mm(maxX), mm(maxY), mm(maxZ)),
	}
}

func TestBoundsSizeCenter(t *testing.T) {
	b := box3(-5, -10, -15, 5, 10, 15)
	x, y, z := b.Size()
	if !x.Eq(mm(10)) || !y.Eq(mm(20)) || !z.Eq(mm(30)) {
		t.Errorf("Size = (%v, %v, %v)", x, y, z)
	}
	if !b.Center().Eq(Origin3()) {
		t.Errorf("Center = %v, want origin", b.Center())
	}
}

func TestBoundsOverlaps(t *testing.T) {
	a := box3(0, 0, 0, 10, 10, 10)
	if !a.Overlaps(box3(5, 5, 5, 15, 15, 15)) {
		t.Error("overlapping boxes should overlap")
	}
	if a.Overlaps(box3(20, 0, 0, 30, 10, 10)) {
		t.Error("disjoint boxes should not overlap")
	}
	// Touching faces still count as overlap.
	if !a.Overlaps(box3(10, 0, 0, 20, 10, 10)) {
		t.Error("face-touching boxes should overlap")
	}
}

func TestBoundsEqWithin(t *testing.T) {
	a := box3(0, 0, 0, 10, 10, 10)
	b := box3(0.1, -0.1, 0, 10.1, 10, 9.9)
	if !a.EqWithin(b, quant.Millimeters(0.25)) {
		t.Error("boxes within 0.25mm should compare equal")
	}
	if a.EqWithin(b, quant.Millimeters(0.05)) {
		t.Error("boxes beyond 0.05mm should not compare equal")
	}
}
