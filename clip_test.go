package clip

import (
	"fmt"
	"testing"

	"github.com/tdewolff/test"
)

func TestEntryRule(t *testing.T) {
	var tts = []struct {
		op    Op
		s     side
		entry bool
	}{
		{OpUnion, subjectSide, false},
		{OpUnion, clipSide, false},
		{OpIntersect, subjectSide, true},
		{OpIntersect, clipSide, true},
		{OpSubtract, subjectSide, false},
		{OpSubtract, clipSide, true},
		{OpExclude, subjectSide, false},
		{OpExclude, clipSide, false},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			test.T(t, entryRule(tt.op, tt.s), tt.entry)
		})
	}
}

func TestInsertIntersections(t *testing.T) {
	s := newPolygon(square(0.0, 0.0, 1.0), subjectSide)
	c := newPolygon(square(0.5, 0.5, 1.0), clipSide)
	test.T(t, insertIntersections(s, c), 2)
	test.T(t, s.n, 6)
	test.T(t, c.n, 6)

	var pts []Point
	for v := range s.vertices() {
		pts = append(pts, v.point)
	}
	test.T(t, pts, []Point{{0.0, 0.0}, {1.0, 0.0}, {1.0, 0.5}, {1.0, 1.0}, {0.5, 1.0}, {0.0, 1.0}})

	for v := range s.intersections() {
		test.Float(t, v.alpha, 0.5)
		test.T(t, v.neighbor.point, v.point)
		test.T(t, v.neighbor.source, clipSide)
		test.T(t, v.neighbor.neighbor, v)
	}
}

func TestMarkEntries(t *testing.T) {
	s := newPolygon(square(0.0, 0.0, 1.0), subjectSide)
	c := newPolygon(square(0.5, 0.5, 1.0), clipSide)
	insertIntersections(s, c)

	// the subject starts outside the clip: the first crossing enters, the second leaves
	markEntries(s, c, entryRule(OpUnion, subjectSide), 1.0e-9)
	var entries []bool
	for v := range s.intersections() {
		entries = append(entries, v.isEntry)
	}
	test.T(t, entries, []bool{true, false})

	markEntries(s, c, entryRule(OpIntersect, subjectSide), 1.0e-9)
	entries = entries[:0]
	for v := range s.intersections() {
		entries = append(entries, v.isEntry)
	}
	test.T(t, entries, []bool{false, true})

	// the clip starts inside the subject
	markEntries(c, s, entryRule(OpUnion, clipSide), 1.0e-9)
	entries = entries[:0]
	for v := range c.intersections() {
		entries = append(entries, v.isEntry)
	}
	test.T(t, entries, []bool{false, true})
}

func TestTraceContour(t *testing.T) {
	s := newPolygon(square(0.0, 0.0, 1.0), subjectSide)
	c := newPolygon(square(0.5, 0.5, 1.0), clipSide)
	insertIntersections(s, c)
	markEntries(s, c, entryRule(OpUnion, subjectSide), 1.0e-9)
	markEntries(c, s, entryRule(OpUnion, clipSide), 1.0e-9)

	start := s.unprocessedIntersection()
	test.That(t, start != nil)
	test.T(t, start.point, Point{1.0, 0.5})

	pts := traceContour(start)
	test.T(t, pts, []Point{{1.0, 0.5}, {1.5, 0.5}, {1.5, 1.5}, {0.5, 1.5}, {0.5, 1.0}, {0.0, 1.0}, {0.0, 0.0}, {1.0, 0.0}})
	test.Float(t, signedArea(pts), 1.75)
	test.That(t, start.visited)
	test.That(t, start.neighbor.visited)
}

func TestCompressRing(t *testing.T) {
	ring := compressRing([]Point{{0.0, 0.0}, {0.0, 0.0}, {1.0, 0.0}, {1.0, 1.0}, {1.0, 1.0}, {0.0, 0.0}})
	test.T(t, ring, []Point{{0.0, 0.0}, {1.0, 0.0}, {1.0, 1.0}})
	test.T(t, len(compressRing(nil)), 0)
}

func TestExtractContours(t *testing.T) {
	s := newPolygon(square(0.0, 0.0, 1.0), subjectSide)
	c := newPolygon(square(0.5, 0.5, 1.0), clipSide)
	insertIntersections(s, c)
	markEntries(s, c, entryRule(OpUnion, subjectSide), 1.0e-9)
	markEntries(c, s, entryRule(OpUnion, clipSide), 1.0e-9)

	rings := extractContours(s, c, OpUnion, 1.0e-9)
	test.T(t, len(rings), 1)
	test.T(t, len(rings[0]), 8)
	test.Float(t, signedArea(rings[0]), 1.75)
}

func TestContainmentContours(t *testing.T) {
	outer := square(0.0, 0.0, 4.0)
	inner := square(1.0, 1.0, 1.0)
	apart := square(6.0, 0.0, 1.0)

	var tts = []struct {
		op       Op
		s, c     []Point
		expected [][]Point
	}{
		{OpUnion, outer, inner, [][]Point{outer}},
		{OpUnion, inner, outer, [][]Point{outer}},
		{OpUnion, outer, apart, [][]Point{outer, apart}},
		{OpIntersect, outer, inner, [][]Point{inner}},
		{OpIntersect, inner, outer, [][]Point{inner}},
		{OpIntersect, outer, apart, nil},
		{OpSubtract, inner, outer, nil},
		{OpSubtract, outer, inner, [][]Point{outer}}, // the hole is not produced
		{OpSubtract, outer, apart, [][]Point{outer}},
		{OpExclude, outer, inner, [][]Point{outer, inner}},
		{OpExclude, outer, apart, [][]Point{outer, apart}},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			s := newPolygon(tt.s, subjectSide)
			c := newPolygon(tt.c, clipSide)
			rings := extractContours(s, c, tt.op, 1.0e-9)
			test.T(t, len(rings), len(tt.expected))
			for j := range tt.expected {
				test.T(t, rings[j], tt.expected[j])
			}
		})
	}
}
