package geom

import (
	"math"
	"testing"
)

func poly(coords ...float64) []Point2 {
	pts := make([]Point2, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		pts = append(pts, Pt2(mm(coords[i]), mm(coords[i+1])))
	}
	return pts
}

func TestSelfIntersects(t *testing.T) {
	tests := []struct {
		name string
		pts  []Point2
		want bool
	}{
		{
			name: "triangle",
			pts:  poly(0, 0, 10, 0, 5, 8),
			want: false,
		},
		{
			name: "square",
			pts:  poly(0, 0, 10, 0, 10, 10, 0, 10),
			want: false,
		},
		{
			name: "bowtie",
			pts:  poly(0, 0, 10, 10, 10, 0, 0, 10),
			want: true,
		},
		{
			name: "concave L",
			pts:  poly(0, 0, 10, 0, 10, 4, 4, 4, 4, 10, 0, 10),
			want: false,
		},
		{
			name: "edge touching non-adjacent edge",
			pts:  poly(0, 0, 10, 0, 10, 10, 5, 0, 0, 10),
			want: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SelfIntersects(tt.pts); got != tt.want {
				t.Errorf("SelfIntersects = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSelfIntersectsManyVertices(t *testing.T) {
	// A 100-gon star outline with no crossings exercises the index path.
	pts := make([]Point2, 0, 100)
	for i := 0; i < 100; i++ {
		r := 10.0
		if i%2 == 1 {
			r = 6
		}
		theta := float64(i) / 100 * 2 * math.Pi
		pts = append(pts, Pt2(mm(r*math.Cos(theta)), mm(r*math.Sin(theta))))
	}
	if SelfIntersects(pts) {
		t.Error("star polygon should not self-intersect")
	}
}
