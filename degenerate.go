package clip

import (
	"math"
	"math/rand/v2"
)

// sharedVertexTolerance is the distance below which vertices of different rings count as shared.
const sharedVertexTolerance = 10.0 * Epsilon

// maxPerturbRetries caps how often a degenerate ring pair is perturbed and retried.
const maxPerturbRetries = 5

// isZeroArea returns true if the ring encloses no area.
func isZeroArea(p *polygon) bool {
	return math.Abs(signedArea(p.points())) < Epsilon
}

// hasSharedVertex returns true if any vertex of a coincides with a vertex of b within sharedVertexTolerance.
func hasSharedVertex(a, b *polygon) bool {
	for va := range a.vertices() {
		for vb := range b.vertices() {
			if math.Abs(va.point.X-vb.point.X) < sharedVertexTolerance && math.Abs(va.point.Y-vb.point.Y) < sharedVertexTolerance {
				return true
			}
		}
	}
	return false
}

// hasCoincidentEdges returns true if an edge of a overlaps collinearly with an edge of b over more than a single point.
func hasCoincidentEdges(a, b *polygon) bool {
	for va := range a.vertices() {
		a0, a1 := va.point, va.next.point
		d := a1.Sub(a0)
		dd := d.Dot(d)
		if dd < Epsilon {
			continue
		}
		for vb := range b.vertices() {
			b0, b1 := vb.point, vb.next.point
			if Epsilon < math.Abs(d.PerpDot(b0.Sub(a0))) || Epsilon < math.Abs(d.PerpDot(b1.Sub(a0))) {
				continue
			}
			t0 := d.Dot(b0.Sub(a0)) / dd
			t1 := d.Dot(b1.Sub(a0)) / dd
			if t1 < t0 {
				t0, t1 = t1, t0
			}
			lo := math.Max(t0, 0.0)
			hi := math.Min(t1, 1.0)
			if Epsilon < hi-lo {
				return true
			}
		}
	}
	return false
}

// ringsIdentical returns true if both rings contain the same points in the same cyclic order, in either direction, within distance tol per coordinate.
func ringsIdentical(a, b *polygon, tol float64) bool {
	pa, pb := a.points(), b.points()
	if len(pa) != len(pb) {
		return false
	}
	n := len(pa)
	if n == 0 {
		return true
	}
	near := func(p, q Point) bool {
		return math.Abs(p.X-q.X) < tol && math.Abs(p.Y-q.Y) < tol
	}
	for off := 0; off < n; off++ {
		forward := true
		for i := 0; i < n; i++ {
			if !near(pa[i], pb[(off+i)%n]) {
				forward = false
				break
			}
		}
		if forward {
			return true
		}
		backward := true
		for i := 0; i < n; i++ {
			if !near(pa[i], pb[((off-i)%n+n)%n]) {
				backward = false
				break
			}
		}
		if backward {
			return true
		}
	}
	return false
}

// isFullyInside returns true if no vertex of p lies strictly outside q and at least one lies strictly inside.
func isFullyInside(p, q *polygon, tol float64) bool {
	strict := false
	for v := range p.vertices() {
		switch classifyPoint(v.point, q, tol) {
		case locOutside:
			return false
		case locInside:
			strict = true
		}
	}
	return strict
}

// isDegenerate returns true if the ring pair needs special handling before the regular clipping pipeline: zero-area rings, shared vertices or collinear overlapping edges.
func isDegenerate(subject, clip *polygon) bool {
	return isZeroArea(subject) || isZeroArea(clip) || hasSharedVertex(subject, clip) || hasCoincidentEdges(subject, clip)
}

// handleDegenerate resolves ring pairs whose relation is decidable without clipping: zero-area rings, identical rings and full containment. The second return is false when the pair still needs the regular pipeline, possibly after perturbation.
func handleDegenerate(subject, clip *polygon, op Op, tol float64) ([][]Point, bool) {
	s, c := subject.points(), clip.points()
	if isZeroArea(subject) {
		switch op {
		case OpUnion, OpExclude:
			return [][]Point{c}, true
		}
		return nil, true
	}
	if isZeroArea(clip) {
		if op == OpIntersect {
			return nil, true
		}
		return [][]Point{s}, true
	}
	if ringsIdentical(subject, clip, sharedVertexTolerance) {
		switch op {
		case OpUnion, OpIntersect:
			return [][]Point{s}, true
		}
		return nil, true // subtract and exclude cancel
	}
	if isFullyInside(subject, clip, tol) || isFullyInside(clip, subject, tol) {
		return containmentContours(subject, clip, op, tol), true
	}
	return nil, false
}

// perturbPolygon offsets every vertex by a random amount of at most magnitude per axis.
func perturbPolygon(p *polygon, magnitude float64) {
	for v := range p.vertices() {
		v.point.X += (rand.Float64() - 0.5) * 2.0 * magnitude
		v.point.Y += (rand.Float64() - 0.5) * 2.0 * magnitude
	}
}
