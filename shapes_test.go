package clip

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestLine(t *testing.T) {
	test.T(t, Line(0.0, 0.0, 5.0, 5.0), MustParseSVG("M0 0L5 5"))
	test.T(t, Line(1.0, 1.0, 1.0, 1.0), &Path{})
	test.That(t, !Line(0.0, 0.0, 5.0, 5.0).Closed())
}

func TestRectangle(t *testing.T) {
	test.T(t, Rectangle(0.0, 0.0, 5.0, 10.0), MustParseSVG("M0 0L5 0L5 10L0 10z"))
	test.T(t, Rectangle(0.0, 0.0, 0.0, 10.0), &Path{})
	test.T(t, Rectangle(0.0, 0.0, 5.0, 0.0), &Path{})
	test.Float(t, Rectangle(1.0, 1.0, 2.0, 3.0).Area(0.01), 6.0)

	// negative dimensions wind the other way
	test.Float(t, Rectangle(0.0, 0.0, -2.0, 1.0).Area(0.01), -2.0)
}

func TestCircle(t *testing.T) {
	test.T(t, Circle(0.0, 0.0, 0.0), &Path{})

	c := Circle(0.0, 0.0, 2.0)
	test.That(t, c.Closed())
	test.T(t, c.Bounds(), Rect{-2.0, -2.0, 4.0, 4.0})
	test.T(t, c, Ellipse(0.0, 0.0, 2.0, 2.0))
	if math.Abs(c.Area(0.001)-4.0*math.Pi) > 0.1 {
		test.Fail(t, "area", c.Area(0.001), "too far from", 4.0*math.Pi)
	}
	test.That(t, c.Interior(0.0, 0.0, 0.01))
	test.That(t, !c.Interior(3.0, 0.0, 0.01))
}

func TestEllipse(t *testing.T) {
	test.T(t, Ellipse(0.0, 0.0, 0.0, 5.0), &Path{})
	test.T(t, Ellipse(0.0, 0.0, 5.0, 0.0), &Path{})

	e := Ellipse(1.0, 2.0, 3.0, 4.0)
	test.That(t, e.Closed())
	test.T(t, e.Bounds(), Rect{-2.0, -2.0, 6.0, 8.0})
	if math.Abs(e.Area(0.001)-12.0*math.Pi) > 0.1 {
		test.Fail(t, "area", e.Area(0.001), "too far from", 12.0*math.Pi)
	}
}

func TestRegularPolygon(t *testing.T) {
	test.T(t, RegularPolygon(2, 0.0, 0.0, 2.0), &Path{})
	test.T(t, RegularPolygon(4, 0.0, 0.0, 0.0), &Path{})
	test.T(t, RegularPolygon(4, 0.0, 0.0, 2.0), MustParseSVG("M2 0L0 2L-2 0L0 -2z"))

	triangle := &Path{}
	triangle.MoveTo(2.0, 0.0)
	triangle.LineTo(-1.0, math.Sqrt(3.0))
	triangle.LineTo(-1.0, -math.Sqrt(3.0))
	triangle.Close()
	test.T(t, RegularPolygon(3, 0.0, 0.0, 2.0), triangle)

	p := RegularPolygon(5, 1.0, 1.0, 2.0)
	test.That(t, p.Closed())
	test.T(t, len(p.Coords()), 5)
	test.T(t, p.Coords()[0], Point{3.0, 1.0})

	test.Float(t, RegularPolygon(6, 0.0, 0.0, 2.0).Area(0.01), 6.0*math.Sqrt(3.0))
}
