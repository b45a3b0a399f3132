package clip

import (
	"iter"
)

// side tags whether a polygon belongs to the subject or the clip path.
type side uint8

const (
	subjectSide side = iota
	clipSide
)

// vertex is a node in the circular doubly-linked ring of a polygon. Original ring vertices and inserted intersection vertices share the same list. Intersection vertices link to their twin on the other polygon.
type vertex struct {
	point          Point
	prev, next     *vertex
	isIntersection bool
	isEntry        bool
	visited        bool
	neighbor       *vertex // twin vertex on the other polygon
	alpha          float64 // fractional position along the original edge
	source         side
}

// polygon is a closed ring of vertices.
type polygon struct {
	first  *vertex
	n      int
	source side
}

// newPolygon builds a ring from points in order.
func newPolygon(points []Point, s side) *polygon {
	p := &polygon{source: s}
	for _, pt := range points {
		p.addPoint(pt)
	}
	return p
}

func (p *polygon) appendVertex(v *vertex) *vertex {
	if p.first == nil {
		v.prev, v.next = v, v
		p.first = v
	} else {
		last := p.first.prev
		last.next = v
		v.prev = last
		v.next = p.first
		p.first.prev = v
	}
	p.n++
	return v
}

// addPoint appends an original vertex at the end of the ring and returns it.
func (p *polygon) addPoint(pt Point) *vertex {
	return p.appendVertex(&vertex{point: pt, source: p.source})
}

// insertAfter inserts v directly after anchor.
func (p *polygon) insertAfter(v, anchor *vertex) {
	v.prev = anchor
	v.next = anchor.next
	anchor.next.prev = v
	anchor.next = v
	p.n++
}

// insertIntersection inserts an intersection vertex after the original vertex anchor, keeping the intersections on the same edge sorted ascending by alpha.
func (p *polygon) insertIntersection(v, anchor *vertex) {
	after := anchor
	for after.next.isIntersection && after.next.alpha <= v.alpha {
		after = after.next
	}
	p.insertAfter(v, after)
}

// vertices yields all vertices in ring order starting at the first vertex.
func (p *polygon) vertices() iter.Seq[*vertex] {
	return func(yield func(*vertex) bool) {
		if p.first == nil {
			return
		}
		v := p.first
		for {
			if !yield(v) {
				return
			}
			v = v.next
			if v == p.first {
				return
			}
		}
	}
}

// originals returns the original (non-intersection) vertices in ring order.
func (p *polygon) originals() []*vertex {
	var vs []*vertex
	for v := range p.vertices() {
		if !v.isIntersection {
			vs = append(vs, v)
		}
	}
	return vs
}

// intersections yields the intersection vertices in ring order.
func (p *polygon) intersections() iter.Seq[*vertex] {
	return func(yield func(*vertex) bool) {
		for v := range p.vertices() {
			if v.isIntersection && !yield(v) {
				return
			}
		}
	}
}

func (p *polygon) hasIntersections() bool {
	for range p.intersections() {
		return true
	}
	return false
}

// unprocessedIntersection returns the first unvisited entry intersection, or nil when all contours have been traced.
func (p *polygon) unprocessedIntersection() *vertex {
	for v := range p.intersections() {
		if !v.visited && v.isEntry {
			return v
		}
	}
	return nil
}

func (p *polygon) resetVisited() {
	for v := range p.vertices() {
		v.visited = false
	}
}

// points returns the coordinates of the original vertices.
func (p *polygon) points() []Point {
	var pts []Point
	for v := range p.vertices() {
		if !v.isIntersection {
			pts = append(pts, v.point)
		}
	}
	return pts
}

// clonePolygons deep-copies polygons, remapping neighbor links between cloned polygons onto their clones. Neighbor links to polygons outside the set are kept as is.
func clonePolygons(ps []*polygon) []*polygon {
	clones := map[*vertex]*vertex{}
	qs := make([]*polygon, 0, len(ps))
	for _, p := range ps {
		q := &polygon{source: p.source}
		for v := range p.vertices() {
			c := &vertex{
				point:          v.point,
				isIntersection: v.isIntersection,
				isEntry:        v.isEntry,
				visited:        v.visited,
				neighbor:       v.neighbor,
				alpha:          v.alpha,
				source:         v.source,
			}
			clones[v] = c
			q.appendVertex(c)
		}
		qs = append(qs, q)
	}
	for _, c := range clones {
		if c.neighbor != nil {
			if cn, ok := clones[c.neighbor]; ok {
				c.neighbor = cn
			}
		}
	}
	return qs
}

func (p *polygon) clone() *polygon {
	return clonePolygons([]*polygon{p})[0]
}

////////////////////////////////////////////////////////////////

// signedArea returns the shoelace area of the ring; positive when the ring winds counter clockwise in a Y-up coordinate system.
func signedArea(points []Point) float64 {
	area := 0.0
	n := len(points)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += points[i].X*points[j].Y - points[j].X*points[i].Y
	}
	return area / 2.0
}

// isClockwise returns true if the ring has negative signed area.
func isClockwise(points []Point) bool {
	return signedArea(points) < 0.0
}

// reversePoints returns the ring in opposite order.
func reversePoints(points []Point) []Point {
	rev := make([]Point, len(points))
	for i, pt := range points {
		rev[len(points)-1-i] = pt
	}
	return rev
}

// flattenRings converts every subpath of p into a ring of points, flattening Bezier curves with tolerance tol. Consecutive duplicate points and a trailing point equal to the first are dropped, as are rings with fewer than three points. Ring orientation is preserved.
func flattenRings(p *Path, tol float64) [][]Point {
	var rings [][]Point
	var ring []Point
	flush := func() {
		if 1 < len(ring) && ring[len(ring)-1].Equals(ring[0]) {
			ring = ring[:len(ring)-1]
		}
		if 3 <= len(ring) {
			rings = append(rings, ring)
		}
		ring = nil
	}
	appendPoint := func(pt Point) {
		if len(ring) == 0 || !ring[len(ring)-1].Equals(pt) {
			ring = append(ring, pt)
		}
	}
	for scanner := p.Scanner(); scanner.Scan(); {
		end := scanner.End()
		switch scanner.Cmd() {
		case MoveToCmd:
			flush()
			ring = append(ring, end)
		case LineToCmd:
			appendPoint(end)
		case QuadToCmd:
			cp1, cp2 := quadraticToCubicBezier(scanner.Start(), scanner.CP1(), end)
			for _, pt := range flattenCubicBezier(scanner.Start(), cp1, cp2, end, tol)[1:] {
				appendPoint(pt)
			}
		case CubeToCmd:
			for _, pt := range flattenCubicBezier(scanner.Start(), scanner.CP1(), scanner.CP2(), end, tol)[1:] {
				appendPoint(pt)
			}
		case CloseCmd:
			flush()
		}
	}
	flush()
	return rings
}

// normalizedRings returns the flattened rings of p with their orientation normalized to counter clockwise.
func normalizedRings(p *Path, tol float64) [][]Point {
	rings := flattenRings(p, tol)
	for i, ring := range rings {
		if isClockwise(ring) {
			rings[i] = reversePoints(ring)
		}
	}
	return rings
}
