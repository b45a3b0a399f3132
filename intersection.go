package clip

import (
	"fmt"
	"math"
)

// Intersection is a crossing between two path segments.
type Intersection struct {
	Point              // position of the crossing
	Seg1, Seg2 int     // command indices into the first and second path
	T1, T2     float64 // parameters along the first and second segment in [0,1]
}

func (z Intersection) String() string {
	return fmt.Sprintf("pos=%v seg1=%d t1=%g seg2=%d t2=%g", z.Point, z.Seg1, z.T1, z.Seg2, z.T2)
}

// intersectLineLine returns the intersection between two line segments, if any. Segments that are parallel or collinear do not intersect. Parameters within Epsilon outside [0,1] are accepted and clamped, so that crossings exactly at segment end points are found.
func intersectLineLine(a0, a1, b0, b1 Point) (Intersection, bool) {
	da := a1.Sub(a0)
	db := b1.Sub(b0)
	denom := da.PerpDot(db)
	if math.Abs(denom) < Epsilon {
		return Intersection{}, false
	}

	c := b0.Sub(a0)
	ta := c.PerpDot(db) / denom
	tb := c.PerpDot(da) / denom
	if ta < -Epsilon || 1.0+Epsilon < ta || tb < -Epsilon || 1.0+Epsilon < tb {
		return Intersection{}, false
	}
	ta = math.Max(0.0, math.Min(1.0, ta))
	tb = math.Max(0.0, math.Min(1.0, tb))
	return Intersection{
		Point: a0.Interpolate(a1, ta),
		T1:    ta,
		T2:    tb,
	}, true
}

func segmentBounds(a, b Point) Rect {
	return Rect{math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Abs(b.X - a.X), math.Abs(b.Y - a.Y)}
}

// controlHullBounds returns the bounding box of the control points, which contains the curve.
func controlHullBounds(p0, p1, p2, p3 Point) Rect {
	xmin := math.Min(math.Min(p0.X, p1.X), math.Min(p2.X, p3.X))
	xmax := math.Max(math.Max(p0.X, p1.X), math.Max(p2.X, p3.X))
	ymin := math.Min(math.Min(p0.Y, p1.Y), math.Min(p2.Y, p3.Y))
	ymax := math.Max(math.Max(p0.Y, p1.Y), math.Max(p2.Y, p3.Y))
	return Rect{xmin, ymin, xmax - xmin, ymax - ymin}
}

// dedupIntersections drops intersections whose parameter pair coincides with an earlier one within tol. Recursive subdivision finds the same crossing in adjacent subdivision windows.
func dedupIntersections(zs []Intersection, tol float64) []Intersection {
	unique := zs[:0]
	for _, z := range zs {
		found := false
		for _, u := range unique {
			if math.Abs(z.T1-u.T1) < tol && math.Abs(z.T2-u.T2) < tol {
				found = true
				break
			}
		}
		if !found {
			unique = append(unique, z)
		}
	}
	return unique
}

// intersectLineCube returns the intersections between a line segment and a cubic Bezier by recursive subdivision of the curve. T1 is the parameter along the line, T2 along the curve.
func intersectLineCube(l0, l1, p0, p1, p2, p3 Point, tol float64) []Intersection {
	zs := appendLineCubeIntersections(nil, l0, l1, p0, p1, p2, p3, 0.0, 1.0, tol, 0)
	return dedupIntersections(zs, 1.0e-6)
}

func appendLineCubeIntersections(zs []Intersection, l0, l1, p0, p1, p2, p3 Point, tmin, tmax, tol float64, depth int) []Intersection {
	if !segmentBounds(l0, l1).Expand(tol).Overlaps(controlHullBounds(p0, p1, p2, p3)) {
		return zs
	}
	if cubicBezierFlatness(p0, p1, p2, p3) <= tol*tol || maxFlattenDepth <= depth {
		if z, ok := intersectLineLine(l0, l1, p0, p3); ok {
			z.T2 = tmin + z.T2*(tmax-tmin)
			zs = append(zs, z)
		}
		return zs
	}
	q0, q1, q2, q3, r0, r1, r2, r3 := splitCubicBezier(p0, p1, p2, p3, 0.5)
	tmid := (tmin + tmax) / 2.0
	zs = appendLineCubeIntersections(zs, l0, l1, q0, q1, q2, q3, tmin, tmid, tol, depth+1)
	return appendLineCubeIntersections(zs, l0, l1, r0, r1, r2, r3, tmid, tmax, tol, depth+1)
}

// intersectCubeLine is intersectLineCube with the arguments and parameters swapped.
func intersectCubeLine(p0, p1, p2, p3, l0, l1 Point, tol float64) []Intersection {
	zs := intersectLineCube(l0, l1, p0, p1, p2, p3, tol)
	for i := range zs {
		zs[i].T1, zs[i].T2 = zs[i].T2, zs[i].T1
	}
	return zs
}

// intersectCubeCube returns the intersections between two cubic Beziers by recursive subdivision, splitting the less flat curve at each step.
func intersectCubeCube(a0, a1, a2, a3, b0, b1, b2, b3 Point, tol float64) []Intersection {
	zs := appendCubeCubeIntersections(nil, a0, a1, a2, a3, b0, b1, b2, b3, 0.0, 1.0, 0.0, 1.0, tol, 0)
	return dedupIntersections(zs, 1.0e-6)
}

func appendCubeCubeIntersections(zs []Intersection, a0, a1, a2, a3, b0, b1, b2, b3 Point, amin, amax, bmin, bmax, tol float64, depth int) []Intersection {
	if !controlHullBounds(a0, a1, a2, a3).Expand(tol).Overlaps(controlHullBounds(b0, b1, b2, b3)) {
		return zs
	}
	fa := cubicBezierFlatness(a0, a1, a2, a3)
	fb := cubicBezierFlatness(b0, b1, b2, b3)
	tol2 := tol * tol
	if fa <= tol2 && fb <= tol2 || maxFlattenDepth <= depth {
		if z, ok := intersectLineLine(a0, a3, b0, b3); ok {
			z.T1 = amin + z.T1*(amax-amin)
			z.T2 = bmin + z.T2*(bmax-bmin)
			zs = append(zs, z)
		}
		return zs
	}
	if fb < fa {
		q0, q1, q2, q3, r0, r1, r2, r3 := splitCubicBezier(a0, a1, a2, a3, 0.5)
		amid := (amin + amax) / 2.0
		zs = appendCubeCubeIntersections(zs, q0, q1, q2, q3, b0, b1, b2, b3, amin, amid, bmin, bmax, tol, depth+1)
		return appendCubeCubeIntersections(zs, r0, r1, r2, r3, b0, b1, b2, b3, amid, amax, bmin, bmax, tol, depth+1)
	}
	q0, q1, q2, q3, r0, r1, r2, r3 := splitCubicBezier(b0, b1, b2, b3, 0.5)
	bmid := (bmin + bmax) / 2.0
	zs = appendCubeCubeIntersections(zs, a0, a1, a2, a3, q0, q1, q2, q3, amin, amax, bmin, bmid, tol, depth+1)
	return appendCubeCubeIntersections(zs, a0, a1, a2, a3, r0, r1, r2, r3, amin, amax, bmid, bmax, tol, depth+1)
}

type pathSegment struct {
	i              int // command index
	cube           bool
	a, cp1, cp2, b Point
}

// pathSegments returns the line and curve segments of a path. Quadratic Beziers are promoted to cubic, Close commands become line segments unless zero length.
func pathSegments(p *Path) []pathSegment {
	var segs []pathSegment
	i := 0
	for scanner := p.Scanner(); scanner.Scan(); i++ {
		start, end := scanner.Start(), scanner.End()
		switch scanner.Cmd() {
		case LineToCmd:
			segs = append(segs, pathSegment{i: i, a: start, b: end})
		case CloseCmd:
			if !start.Equals(end) {
				segs = append(segs, pathSegment{i: i, a: start, b: end})
			}
		case QuadToCmd:
			cp1, cp2 := quadraticToCubicBezier(start, scanner.CP1(), end)
			segs = append(segs, pathSegment{i: i, cube: true, a: start, cp1: cp1, cp2: cp2, b: end})
		case CubeToCmd:
			segs = append(segs, pathSegment{i: i, cube: true, a: start, cp1: scanner.CP1(), cp2: scanner.CP2(), b: end})
		}
	}
	return segs
}

// PathIntersections returns the crossings between the segments of p and q. Bezier curves are intersected by recursive subdivision with tolerance tol. Seg1 and Seg2 are command indices into p and q respectively.
func PathIntersections(p, q *Path, tol float64) []Intersection {
	var zs []Intersection
	for _, s1 := range pathSegments(p) {
		for _, s2 := range pathSegments(q) {
			var zss []Intersection
			if !s1.cube && !s2.cube {
				if z, ok := intersectLineLine(s1.a, s1.b, s2.a, s2.b); ok {
					zss = append(zss, z)
				}
			} else if !s1.cube {
				zss = intersectLineCube(s1.a, s1.b, s2.a, s2.cp1, s2.cp2, s2.b, tol)
			} else if !s2.cube {
				zss = intersectCubeLine(s1.a, s1.cp1, s1.cp2, s1.b, s2.a, s2.b, tol)
			} else {
				zss = intersectCubeCube(s1.a, s1.cp1, s1.cp2, s1.b, s2.a, s2.cp1, s2.cp2, s2.b, tol)
			}
			for _, z := range zss {
				z.Seg1, z.Seg2 = s1.i, s2.i
				zs = append(zs, z)
			}
		}
	}
	return zs
}
