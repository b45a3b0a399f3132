package clip

import (
	"math"
)

// location classifies a point relative to a ring.
type location uint8

const (
	locOutside location = iota
	locInside
	locBoundary
)

func (l location) String() string {
	switch l {
	case locInside:
		return "inside"
	case locBoundary:
		return "boundary"
	}
	return "outside"
}

// isPointOnSegment returns true if pt lies on the segment from a to b within distance tol.
func isPointOnSegment(pt, a, b Point, tol float64) bool {
	if pt.X < math.Min(a.X, b.X)-tol || math.Max(a.X, b.X)+tol < pt.X ||
		pt.Y < math.Min(a.Y, b.Y)-tol || math.Max(a.Y, b.Y)+tol < pt.Y {
		return false
	}
	return perpDistanceSq(a, b, pt) <= tol*tol
}

// classifyPoint returns whether pt is inside, outside or on the boundary of the ring, casting a ray in the +X direction. Boundary detection uses distance tolerance tol. When the ray passes exactly through a vertex, the edge counts only if its other end point lies above the ray, so that the vertex is counted once.
func classifyPoint(pt Point, p *polygon, tol float64) location {
	crossings := 0
	for v := range p.vertices() {
		a, b := v.point, v.next.point
		if isPointOnSegment(pt, a, b, tol) {
			return locBoundary
		}
		if a.Y == b.Y {
			continue
		}
		if pt.Y < math.Min(a.Y, b.Y) || math.Max(a.Y, b.Y) < pt.Y {
			continue
		}
		t := (pt.Y - a.Y) / (b.Y - a.Y)
		x := a.X + t*(b.X-a.X)
		if x <= pt.X {
			continue
		}
		if pt.Y == a.Y {
			if pt.Y < b.Y {
				crossings++
			}
			continue
		}
		if pt.Y == b.Y {
			if pt.Y < a.Y {
				crossings++
			}
			continue
		}
		crossings++
	}
	if crossings%2 == 1 {
		return locInside
	}
	return locOutside
}

// isLeft returns a positive value if pt lies left of the directed line from a to b, negative if right and zero if on the line.
func isLeft(a, b, pt Point) float64 {
	return (b.X-a.X)*(pt.Y-a.Y) - (pt.X-a.X)*(b.Y-a.Y)
}

// windingNumber returns the number of times the ring winds counter clockwise around pt. It is zero when pt lies outside the ring.
func windingNumber(pt Point, p *polygon) int {
	wn := 0
	for v := range p.vertices() {
		a, b := v.point, v.next.point
		if a.Y <= pt.Y {
			if pt.Y < b.Y && 0.0 < isLeft(a, b, pt) {
				wn++
			}
		} else if b.Y <= pt.Y && isLeft(a, b, pt) < 0.0 {
			wn--
		}
	}
	return wn
}

// isSimplePolygon returns true if no two non-adjacent edges of the ring cross or touch away from their end points.
func isSimplePolygon(p *polygon) bool {
	type edge struct {
		a, b Point
	}
	var edges []edge
	for v := range p.vertices() {
		edges = append(edges, edge{v.point, v.next.point})
	}
	n := len(edges)
	for i := 0; i < n; i++ {
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				continue // adjacent around the ring
			}
			z, ok := intersectLineLine(edges[i].a, edges[i].b, edges[j].a, edges[j].b)
			if !ok {
				continue
			}
			if Epsilon < z.T1 && z.T1 < 1.0-Epsilon || Epsilon < z.T2 && z.T2 < 1.0-Epsilon {
				return false
			}
		}
	}
	return true
}
