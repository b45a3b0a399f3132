package clip

// maxContourIterations caps contour tracing so that inconsistent entry/exit marks cannot loop forever.
const maxContourIterations = 10000

// insertIntersections finds all crossings between the edges of the subject and clip rings and inserts a linked pair of intersection vertices for each. It returns the number of crossings found.
func insertIntersections(subject, clip *polygon) int {
	count := 0
	subjOrig := subject.originals()
	clipOrig := clip.originals()
	for i, sv := range subjOrig {
		sEnd := subjOrig[(i+1)%len(subjOrig)].point
		for j, cv := range clipOrig {
			cEnd := clipOrig[(j+1)%len(clipOrig)].point
			z, ok := intersectLineLine(sv.point, sEnd, cv.point, cEnd)
			if !ok {
				continue
			}
			vs := &vertex{point: z.Point, isIntersection: true, alpha: z.T1, source: subjectSide}
			vc := &vertex{point: z.Point, isIntersection: true, alpha: z.T2, source: clipSide}
			vs.neighbor, vc.neighbor = vc, vs
			subject.insertIntersection(vs, sv)
			clip.insertIntersection(vc, cv)
			count++
		}
	}
	return count
}

// entryRule returns the inside state at which an intersection counts as an entry for the given operation and side, following the Greiner-Hormann entry/exit table.
func entryRule(op Op, s side) bool {
	switch op {
	case OpIntersect:
		return true
	case OpSubtract:
		return s == clipSide
	}
	return false // OpUnion and OpExclude
}

// markEntries walks the ring once, tracking whether the current position is inside the other polygon, and marks every intersection vertex as entry or exit. The inside state flips at each intersection. Vertices on the boundary of the other polygon are disambiguated by classifying the point halfway to the next vertex; if that is also on the boundary the start counts as outside.
func markEntries(p, other *polygon, entryOnInside bool, tol float64) {
	start := p.first
	for v := range p.vertices() {
		if !v.isIntersection {
			start = v
			break
		}
	}
	loc := classifyPoint(start.point, other, tol)
	if loc == locBoundary {
		loc = classifyPoint(start.point.Interpolate(start.next.point, 0.5), other, tol)
		if loc == locBoundary {
			loc = locOutside
		}
	}
	inside := loc == locInside

	v := start
	for {
		if v.isIntersection {
			v.isEntry = inside == entryOnInside
			inside = !inside
		}
		v = v.next
		if v == start {
			break
		}
	}
}

// traceContour follows the linked rings forward from an entry intersection, switching to the other ring at every intersection, until it returns to the start or hits the iteration cap.
func traceContour(start *vertex) []Point {
	var pts []Point
	v := start
	for i := 0; i < maxContourIterations; i++ {
		if v.isIntersection {
			v.visited = true
			if v.neighbor != nil {
				v.neighbor.visited = true
			}
		}
		pts = append(pts, v.point)
		if v.isIntersection && v.neighbor != nil {
			v = v.neighbor
		}
		v = v.next
		if v == start || v == start.neighbor || v.point.Equals(start.point) {
			return pts
		}
	}
	Logger().Warn("contour tracing exceeded iteration cap, truncating", "points", len(pts))
	return pts
}

// compressRing drops consecutive duplicate points and a trailing point equal to the first.
func compressRing(pts []Point) []Point {
	var ring []Point
	for _, pt := range pts {
		if len(ring) == 0 || !ring[len(ring)-1].Equals(pt) {
			ring = append(ring, pt)
		}
	}
	if 1 < len(ring) && ring[len(ring)-1].Equals(ring[0]) {
		ring = ring[:len(ring)-1]
	}
	return ring
}

// extractContours traces one output contour from every unprocessed entry intersection. When the rings do not cross at all, the result follows from containment instead.
func extractContours(subject, clip *polygon, op Op, tol float64) [][]Point {
	if !subject.hasIntersections() {
		return containmentContours(subject, clip, op, tol)
	}
	subject.resetVisited()
	clip.resetVisited()
	var rings [][]Point
	for {
		start := subject.unprocessedIntersection()
		if start == nil {
			start = clip.unprocessedIntersection()
		}
		if start == nil {
			break
		}
		ring := compressRing(traceContour(start))
		if 3 <= len(ring) {
			rings = append(rings, ring)
		}
	}
	return rings
}

// containmentContours resolves an operation between two rings that do not cross each other.
func containmentContours(subject, clip *polygon, op Op, tol float64) [][]Point {
	subjectInside := isFullyInside(subject, clip, tol)
	clipInside := isFullyInside(clip, subject, tol)
	s, c := subject.points(), clip.points()
	switch op {
	case OpUnion:
		if subjectInside {
			return [][]Point{c}
		} else if clipInside {
			return [][]Point{s}
		}
		return [][]Point{s, c}
	case OpIntersect:
		if subjectInside {
			return [][]Point{s}
		} else if clipInside {
			return [][]Point{c}
		}
		return nil
	case OpSubtract:
		if subjectInside {
			return nil
		}
		// a clip fully inside the subject keeps the outer ring; holes are not produced
		return [][]Point{s}
	case OpExclude:
		return [][]Point{s, c}
	}
	return nil
}
