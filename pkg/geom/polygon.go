package geom

import (
	"math"

	"github.com/dhconnelly/rtreego"
)

// polygon validation. Candidate edge pairs are found through an R-tree over
// edge bounding boxes so only nearby edges are tested exactly; the exact
// test is a standard orientation/on-segment check.

// edgePad keeps R-tree rectangles non-degenerate for axis-aligned edges.
const edgePad = 1e-9

type polyEdge struct {
	index  int
	ax, ay float64
	bx, by float64
	rect   rtreego.Rect
}

func (e *polyEdge) Bounds() rtreego.Rect { return e.rect }

func newPolyEdge(index int, a, b Point2) (*polyEdge, error) {
	e := &polyEdge{
		index: index,
		ax:    a.X.MM(), ay: a.Y.MM(),
		bx: b.X.MM(), by: b.Y.MM(),
	}
	minX := math.Min(e.ax, e.bx)
	minY := math.Min(e.ay, e.by)
	lenX := math.Abs(e.ax-e.bx) + edgePad
	lenY := math.Abs(e.ay-e.by) + edgePad
	rect, err := rtreego.NewRect(rtreego.Point{minX, minY}, []float64{lenX, lenY})
	if err != nil {
		return nil, err
	}
	e.rect = rect
	return e, nil
}

// SelfIntersects reports whether the closed polygon defined by pts has two
// non-adjacent edges that cross or touch. Fewer than 3 vertices never
// self-intersect; such inputs are rejected earlier as degenerate.
func SelfIntersects(pts []Point2) bool {
	n := len(pts)
	if n < 4 {
		// A triangle cannot self-intersect.
		return false
	}

	tree := rtreego.NewTree(2, 4, 8)
	edges := make([]*polyEdge, 0, n)
	for i := 0; i < n; i++ {
		e, err := newPolyEdge(i, pts[i], pts[(i+1)%n])
		if err != nil {
			// Zero-extent rectangle: coincident vertices, treat as
			// self-intersecting input.
			return true
		}
		edges = append(edges, e)
		tree.Insert(e)
	}

	for _, e := range edges {
		for _, hit := range tree.SearchIntersect(e.rect) {
			o := hit.(*polyEdge)
			if o.index <= e.index {
				continue
			}
			// Skip edges sharing a vertex; they touch by construction.
			if adjacent(e.index, o.index, n) {
				continue
			}
			if segmentsCross(e, o) {
				return true
			}
		}
	}
	return false
}

func adjacent(i, j, n int) bool {
	d := j - i
	if d < 0 {
		d = -d
	}
	return d == 1 || d == n-1
}

// segmentsCross reports whether segments e and o properly intersect or a
// segment endpoint lies on the other segment.
func segmentsCross(e, o *polyEdge) bool {
	d1 := orient(o.ax, o.ay, o.bx, o.by, e.ax, e.ay)
	d2 := orient(o.ax, o.ay, o.bx, o.by, e.bx, e.by)
	d3 := orient(e.ax, e.ay, e.bx, e.by, o.ax, o.ay)
	d4 := orient(e.ax, e.ay, e.bx, e.by, o.bx, o.by)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	if d1 == 0 && onSegment(o.ax, o.ay, o.bx, o.by, e.ax, e.ay) {
		return true
	}
	if d2 == 0 && onSegment(o.ax, o.ay, o.bx, o.by, e.bx, e.by) {
		return true
	}
	if d3 == 0 && onSegment(e.ax, e.ay, e.bx, e.by, o.ax, o.ay) {
		return true
	}
	if d4 == 0 && onSegment(e.ax, e.ay, e.bx, e.by, o.bx, o.by) {
		return true
	}
	return false
}

// orient returns the sign of the cross product (b-a) x (c-a).
func orient(ax, ay, bx, by, cx, cy float64) float64 {
	v := (bx-ax)*(cy-ay) - (by-ay)*(cx-ax)
	switch {
	case v > edgePad:
		return 1
	case v < -edgePad:
		return -1
	default:
		return 0
	}
}

// onSegment reports whether point (px,py), known collinear with segment
// (ax,ay)-(bx,by), lies within the segment's extent.
func onSegment(ax, ay, bx, by, px, py float64) bool {
	return math.Min(ax, bx)-edgePad <= px && px <= math.Max(ax, bx)+edgePad &&
		math.Min(ay, by)-edgePad <= py && py <= math.Max(ay, by)+edgePad
}
