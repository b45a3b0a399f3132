package clip

import (
	"fmt"
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestIntersectLineLine(t *testing.T) {
	z, ok := intersectLineLine(Point{2.0, 0.0}, Point{2.0, 3.0}, Point{1.0, 2.0}, Point{3.0, 2.0})
	test.That(t, ok)
	test.T(t, z.Point, Point{2.0, 2.0})
	test.Float(t, z.T1, 2.0/3.0)
	test.Float(t, z.T2, 0.5)

	// parallel
	_, ok = intersectLineLine(Point{2.0, 0.0}, Point{2.0, 1.0}, Point{3.0, 0.0}, Point{3.0, 1.0})
	test.That(t, !ok)

	// collinear overlap does not count as a crossing
	_, ok = intersectLineLine(Point{0.0, 0.0}, Point{2.0, 0.0}, Point{1.0, 0.0}, Point{3.0, 0.0})
	test.That(t, !ok)

	// crossing outside the segments
	_, ok = intersectLineLine(Point{2.0, 0.0}, Point{2.0, 1.0}, Point{0.0, 2.0}, Point{1.0, 2.0})
	test.That(t, !ok)

	// touching end points are found and clamped
	z, ok = intersectLineLine(Point{0.0, 0.0}, Point{1.0, 0.0}, Point{1.0, 0.0}, Point{1.0, 1.0})
	test.That(t, ok)
	test.T(t, z.Point, Point{1.0, 0.0})
	test.Float(t, z.T1, 1.0)
	test.Float(t, z.T2, 0.0)
}

func TestIntersectLineCube(t *testing.T) {
	// the arch rises to y=1.5, the line y=1 crosses it twice
	zs := intersectLineCube(Point{-1.0, 1.0}, Point{3.0, 1.0}, Point{0.0, 0.0}, Point{0.0, 2.0}, Point{2.0, 2.0}, Point{2.0, 0.0}, 1.0e-4)
	test.T(t, len(zs), 2)
	for i, want := range []Point{{0.230200, 1.0}, {1.769800, 1.0}} {
		if 0.01 < zs[i].Sub(want).Length() {
			test.Fail(t, "intersection", i, "at", zs[i].Point, "want", want)
		}
	}
	test.That(t, math.Abs(zs[0].T2-0.211325) < 0.01)
	test.That(t, math.Abs(zs[1].T2-0.788675) < 0.01)
	test.That(t, math.Abs(zs[0].T1-0.307550) < 0.01)
	test.That(t, math.Abs(zs[1].T1-0.692450) < 0.01)

	// line above the arch
	zs = intersectLineCube(Point{-1.0, 2.0}, Point{3.0, 2.0}, Point{0.0, 0.0}, Point{0.0, 2.0}, Point{2.0, 2.0}, Point{2.0, 0.0}, 1.0e-4)
	test.T(t, len(zs), 0)
}

func TestIntersectCubeCube(t *testing.T) {
	// the same line y=1, but expressed as a cubic
	zs := intersectCubeCube(Point{0.0, 0.0}, Point{0.0, 2.0}, Point{2.0, 2.0}, Point{2.0, 0.0},
		Point{-1.0, 1.0}, Point{0.0, 1.0}, Point{2.0, 1.0}, Point{3.0, 1.0}, 1.0e-4)
	test.T(t, len(zs), 2)
	for i, want := range []Point{{0.230200, 1.0}, {1.769800, 1.0}} {
		if 0.01 < zs[i].Sub(want).Length() {
			test.Fail(t, "intersection", i, "at", zs[i].Point, "want", want)
		}
	}

	// disjoint hulls
	zs = intersectCubeCube(Point{0.0, 0.0}, Point{0.0, 2.0}, Point{2.0, 2.0}, Point{2.0, 0.0},
		Point{5.0, 0.0}, Point{5.0, 2.0}, Point{7.0, 2.0}, Point{7.0, 0.0}, 1.0e-4)
	test.T(t, len(zs), 0)
}

func TestPathIntersections(t *testing.T) {
	p := Rectangle(0.0, 0.0, 1.0, 1.0)
	q := Rectangle(0.5, 0.5, 1.0, 1.0)
	zs := PathIntersections(p, q, 1.0e-6)
	test.T(t, len(zs), 2)

	test.T(t, zs[0].Point, Point{1.0, 0.5})
	test.T(t, zs[0].Seg1, 2)
	test.T(t, zs[0].Seg2, 1)
	test.Float(t, zs[0].T1, 0.5)
	test.Float(t, zs[0].T2, 0.5)

	test.T(t, zs[1].Point, Point{0.5, 1.0})
	test.T(t, zs[1].Seg1, 3)
	test.T(t, zs[1].Seg2, 4) // the closing edge
	test.Float(t, zs[1].T1, 0.5)
	test.Float(t, zs[1].T2, 0.5)

	// curve against line
	arch := MustParseSVG("M0 0C0 2 2 2 2 0")
	line := MustParseSVG("M-1 1L3 1")
	zs = PathIntersections(arch, line, 1.0e-4)
	test.T(t, len(zs), 2)
	test.T(t, zs[0].Seg1, 1)
	test.T(t, zs[0].Seg2, 1)
	test.That(t, math.Abs(zs[0].Y-1.0) < 0.01)
	test.That(t, math.Abs(zs[1].Y-1.0) < 0.01)

	// disjoint paths
	zs = PathIntersections(Rectangle(0.0, 0.0, 1.0, 1.0), Rectangle(5.0, 5.0, 1.0, 1.0), 1.0e-6)
	test.T(t, len(zs), 0)
}

func TestIntersectionString(t *testing.T) {
	z := Intersection{Point: Point{1.0, 2.0}, Seg1: 3, Seg2: 4, T1: 0.5, T2: 0.25}
	test.String(t, fmt.Sprint(z), "pos=[1; 2] seg1=3 t1=0.5 seg2=4 t2=0.25")
}
