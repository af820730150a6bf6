package model

import (
	"fmt"
	"math"

	"github.com/chazu/smithy/pkg/geom"
	"github.com/chazu/smithy/pkg/quant"
)

// pathArcSegments is the chord count approximating a full circle when a
// path is realized as a polygon profile.
const pathArcSegments = 64

// Path builds a closed profile from a continuous run of straight lines and
// three-point circular arcs. Each step returns a new Path; a failed step
// poisons the result and Close reports the first error.
type Path struct {
	w   *Workspace
	pts []geom.Point2
	err error
}

// PathAt starts a path at the given point.
func (w *Workspace) PathAt(start geom.Point2) *Path {
	return &Path{w: w, pts: []geom.Point2{start}}
}

// Start returns the first point of the path.
func (p *Path) Start() geom.Point2 { return p.pts[0] }

// End returns the current cursor position.
func (p *Path) End() geom.Point2 { return p.pts[len(p.pts)-1] }

// Err returns the first construction error, if any.
func (p *Path) Err() error { return p.err }

func (p *Path) fail(err error) *Path {
	return &Path{w: p.w, pts: p.pts, err: err}
}

func (p *Path) extend(pts ...geom.Point2) *Path {
	next := make([]geom.Point2, 0, len(p.pts)+len(pts))
	next = append(next, p.pts...)
	next = append(next, pts...)
	return &Path{w: p.w, pts: next}
}

// LineTo appends a straight edge from the cursor to pt.
func (p *Path) LineTo(pt geom.Point2) *Path {
	if p.err != nil {
		return p
	}
	if samePoint(p.End(), pt) {
		return p.fail(fmt.Errorf("line to coincident point %s: %w", pt, ErrDegenerateGeometry))
	}
	return p.extend(pt)
}

// ArcTo appends the circular arc from the cursor through mid to end, on
// whichever side of the chord mid lies. The arc is realized as chords at
// pathArcSegments per full turn.
func (p *Path) ArcTo(mid, end geom.Point2) *Path {
	if p.err != nil {
		return p
	}
	start := p.End()
	if samePoint(start, mid) || samePoint(mid, end) || samePoint(start, end) {
		return p.fail(fmt.Errorf("arc through coincident points: %w", ErrDegenerateGeometry))
	}

	x1, y1 := start.X.MM(), start.Y.MM()
	x2, y2 := mid.X.MM(), mid.Y.MM()
	x3, y3 := end.X.MM(), end.Y.MM()
	cx, cy, ok := circumcenter(x1, y1, x2, y2, x3, y3)
	if !ok {
		return p.fail(fmt.Errorf("arc through collinear points: %w", ErrDegenerateGeometry))
	}
	r := math.Hypot(x1-cx, y1-cy)

	// Sweep counter-clockwise from the start angle unless the interior
	// point lies on the clockwise side.
	a0 := math.Atan2(y1-cy, x1-cx)
	am := ccwDelta(a0, math.Atan2(y2-cy, x2-cx))
	a1 := ccwDelta(a0, math.Atan2(y3-cy, x3-cx))
	sweep := a1
	if am > a1 {
		sweep = a1 - 2*math.Pi
	}

	n := int(math.Ceil(math.Abs(sweep) / (2 * math.Pi) * pathArcSegments))
	if n < 2 {
		n = 2
	}
	pts := make([]geom.Point2, 0, n)
	for i := 1; i < n; i++ {
		ang := a0 + sweep*float64(i)/float64(n)
		pts = append(pts, geom.Pt2(
			quant.Millimeters(cx+r*math.Cos(ang)),
			quant.Millimeters(cy+r*math.Sin(ang)),
		))
	}
	pts = append(pts, end)
	return p.extend(pts...)
}

// Close connects the cursor back to the start when needed and realizes the
// path as a polygon Sketch, subject to the usual polygon validation.
func (p *Path) Close() (*Sketch, error) {
	if p.err != nil {
		return nil, p.err
	}
	pts := p.pts
	if len(pts) > 1 && samePoint(p.Start(), p.End()) {
		pts = pts[:len(pts)-1]
	}
	// Kernel profiles expect an anticlockwise boundary.
	if signedArea2(pts) < 0 {
		rev := make([]geom.Point2, len(pts))
		for i, pt := range pts {
			rev[len(pts)-1-i] = pt
		}
		pts = rev
	}
	return p.w.Polygon(pts...)
}

func samePoint(a, b geom.Point2) bool {
	return a.X.Eq(b.X) && a.Y.Eq(b.Y)
}

// circumcenter returns the center of the circle through three points, in
// millimeters. ok is false when the points are collinear.
func circumcenter(x1, y1, x2, y2, x3, y3 float64) (cx, cy float64, ok bool) {
	d := 2 * (x1*(y2-y3) + x2*(y3-y1) + x3*(y1-y2))
	if math.Abs(d) < 1e-9 {
		return 0, 0, false
	}
	s1 := x1*x1 + y1*y1
	s2 := x2*x2 + y2*y2
	s3 := x3*x3 + y3*y3
	cx = (s1*(y2-y3) + s2*(y3-y1) + s3*(y1-y2)) / d
	cy = (s1*(x3-x2) + s2*(x1-x3) + s3*(x2-x1)) / d
	return cx, cy, true
}

// ccwDelta returns the counter-clockwise angle from a0 to a, in [0, 2π).
func ccwDelta(a0, a float64) float64 {
	d := math.Mod(a-a0, 2*math.Pi)
	if d < 0 {
		d += 2 * math.Pi
	}
	return d
}

// signedArea2 returns the shoelace signed area of the closed loop, in mm².
// Positive means anticlockwise.
func signedArea2(pts []geom.Point2) float64 {
	var sum float64
	n := len(pts)
	for i := 0; i < n; i++ {
		a, b := pts[i], pts[(i+1)%n]
		sum += a.X.MM()*b.Y.MM() - b.X.MM()*a.Y.MM()
	}
	return sum / 2
}
