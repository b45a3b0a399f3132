package clip

import (
	"math"
)

// maxFlattenDepth limits recursive subdivision when flattening Bezier curves.
const maxFlattenDepth = 24

// quadraticToCubicBezier converts a quadratic Bezier to an equivalent cubic Bezier, returning its two control points.
func quadraticToCubicBezier(p0, p1, p2 Point) (Point, Point) {
	cp1 := p0.Interpolate(p1, 2.0/3.0)
	cp2 := p2.Interpolate(p1, 2.0/3.0)
	return cp1, cp2
}

// cubicBezierPos returns the position on the curve at parameter t.
func cubicBezierPos(p0, p1, p2, p3 Point, t float64) Point {
	s := 1.0 - t
	p := p0.Mul(s * s * s)
	p = p.Add(p1.Mul(3.0 * s * s * t))
	p = p.Add(p2.Mul(3.0 * s * t * t))
	p = p.Add(p3.Mul(t * t * t))
	return p
}

// cubicBezierDeriv returns the derivative of the curve at parameter t, ie. the tangent vector.
func cubicBezierDeriv(p0, p1, p2, p3 Point, t float64) Point {
	s := 1.0 - t
	p := p1.Sub(p0).Mul(3.0 * s * s)
	p = p.Add(p2.Sub(p1).Mul(6.0 * s * t))
	p = p.Add(p3.Sub(p2).Mul(3.0 * t * t))
	return p
}

func splitCubicBezier(p0, p1, p2, p3 Point, t float64) (Point, Point, Point, Point, Point, Point, Point, Point) {
	pm := p1.Interpolate(p2, t)

	q0 := p0
	q1 := p0.Interpolate(p1, t)
	q2 := q1.Interpolate(pm, t)

	r3 := p3
	r2 := p2.Interpolate(p3, t)
	r1 := pm.Interpolate(r2, t)

	r0 := q2.Interpolate(r1, t)
	q3 := r0
	return q0, q1, q2, q3, r0, r1, r2, r3
}

// cubicBezierBounds returns the exact bounding box of the curve by solving for the roots of its derivative per axis.
func cubicBezierBounds(p0, p1, p2, p3 Point) Rect {
	ax := p3.X - 3.0*p2.X + 3.0*p1.X - p0.X
	bx := 2.0 * (p2.X - 2.0*p1.X + p0.X)
	cx := p1.X - p0.X
	xmin := math.Min(p0.X, p3.X)
	xmax := math.Max(p0.X, p3.X)
	t1, t2 := solveQuadraticFormula(ax, bx, cx)
	for _, t := range []float64{t1, t2} {
		if !math.IsNaN(t) && 0.0 < t && t < 1.0 {
			x := cubicBezierPos(p0, p1, p2, p3, t).X
			xmin = math.Min(xmin, x)
			xmax = math.Max(xmax, x)
		}
	}

	ay := p3.Y - 3.0*p2.Y + 3.0*p1.Y - p0.Y
	by := 2.0 * (p2.Y - 2.0*p1.Y + p0.Y)
	cy := p1.Y - p0.Y
	ymin := math.Min(p0.Y, p3.Y)
	ymax := math.Max(p0.Y, p3.Y)
	t1, t2 = solveQuadraticFormula(ay, by, cy)
	for _, t := range []float64{t1, t2} {
		if !math.IsNaN(t) && 0.0 < t && t < 1.0 {
			y := cubicBezierPos(p0, p1, p2, p3, t).Y
			ymin = math.Min(ymin, y)
			ymax = math.Max(ymax, y)
		}
	}
	return Rect{xmin, ymin, xmax - xmin, ymax - ymin}
}

// perpDistanceSq returns the squared perpendicular distance of point c to the line through a and b, or the squared distance to a when a and b coincide.
func perpDistanceSq(a, b, c Point) float64 {
	d := b.Sub(a)
	dd := d.Dot(d)
	if dd < Epsilon {
		e := c.Sub(a)
		return e.Dot(e)
	}
	f := d.PerpDot(c.Sub(a))
	return f * f / dd
}

// cubicBezierFlatness returns the maximum squared deviation of the control points from the chord.
func cubicBezierFlatness(p0, p1, p2, p3 Point) float64 {
	return math.Max(perpDistanceSq(p0, p3, p1), perpDistanceSq(p0, p3, p2))
}

// flattenCubicBezier approximates the curve by line segments with a maximum deviation of tol. It returns the polyline points including both end points.
func flattenCubicBezier(p0, p1, p2, p3 Point, tol float64) []Point {
	return appendFlattenedCubicBezier([]Point{p0}, p0, p1, p2, p3, tol*tol, 0)
}

func appendFlattenedCubicBezier(pts []Point, p0, p1, p2, p3 Point, tol2 float64, depth int) []Point {
	if maxFlattenDepth <= depth || cubicBezierFlatness(p0, p1, p2, p3) <= tol2 {
		return append(pts, p3)
	}
	q0, q1, q2, q3, r0, r1, r2, r3 := splitCubicBezier(p0, p1, p2, p3, 0.5)
	pts = appendFlattenedCubicBezier(pts, q0, q1, q2, q3, tol2, depth+1)
	return appendFlattenedCubicBezier(pts, r0, r1, r2, r3, tol2, depth+1)
}
