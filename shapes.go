package clip

import (
	"math"
)

// kappa is the control point distance, relative to the radius, that makes a cubic Bezier approximate a quarter circle.
const kappa = 4.0 / 3.0 * (math.Sqrt2 - 1.0)

// Line returns a line segment from (x1,y1) to (x2,y2).
func Line(x1, y1, x2, y2 float64) *Path {
	if equal(x1, x2) && equal(y1, y2) {
		return &Path{}
	}

	p := &Path{}
	p.MoveTo(x1, y1)
	p.LineTo(x2, y2)
	return p
}

// Rectangle returns a rectangle at (x,y) of width w and height h.
func Rectangle(x, y, w, h float64) *Path {
	if equal(w, 0.0) || equal(h, 0.0) {
		return &Path{}
	}

	p := &Path{}
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
	return p
}

// Circle returns a circle centered at (cx,cy) of radius r, approximated by four cubic Beziers.
func Circle(cx, cy, r float64) *Path {
	return Ellipse(cx, cy, r, r)
}

// Ellipse returns an ellipse centered at (cx,cy) of radii rx and ry, approximated by four cubic Beziers.
func Ellipse(cx, cy, rx, ry float64) *Path {
	if equal(rx, 0.0) || equal(ry, 0.0) {
		return &Path{}
	}

	dx, dy := kappa*rx, kappa*ry
	p := &Path{}
	p.MoveTo(cx+rx, cy)
	p.CubeTo(cx+rx, cy+dy, cx+dx, cy+ry, cx, cy+ry)
	p.CubeTo(cx-dx, cy+ry, cx-rx, cy+dy, cx-rx, cy)
	p.CubeTo(cx-rx, cy-dy, cx-dx, cy-ry, cx, cy-ry)
	p.CubeTo(cx+dx, cy-ry, cx+rx, cy-dy, cx+rx, cy)
	p.Close()
	return p
}

// RegularPolygon returns a regular polygon with n vertices inscribed in the circle centered at (cx,cy) of radius r. The first vertex lies at (cx+r,cy). n must be 3 or more.
func RegularPolygon(n int, cx, cy, r float64) *Path {
	if n < 3 || equal(r, 0.0) {
		return &Path{}
	}

	p := &Path{}
	for i := 0; i < n; i++ {
		theta := 2.0 * math.Pi * float64(i) / float64(n)
		sintheta, costheta := math.Sincos(theta)
		if i == 0 {
			p.MoveTo(cx+r*costheta, cy+r*sintheta)
		} else {
			p.LineTo(cx+r*costheta, cy+r*sintheta)
		}
	}
	p.Close()
	return p
}
