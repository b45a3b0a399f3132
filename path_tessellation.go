package clip

import (
	"github.com/ByteArena/poly2tri-go"
)

// Tessellate breaks up the closed subpaths of p into triangles that cover the
// same area. Bezier curves are flattened with tolerance tol. Each subpath is
// triangulated on its own, holes between subpaths are not cut out. The path
// must not self-intersect, run it through a boolean operation first to resolve
// overlap.
func (p *Path) Tessellate(tol float64) [][3]Point {
	triangles := [][3]Point{}
	for _, ring := range flattenRings(p, tol) {
		contour := make([]*poly2tri.Point, 0, len(ring))
		for _, pt := range ring {
			contour = append(contour, poly2tri.NewPoint(pt.X, pt.Y))
		}

		swctx := poly2tri.NewSweepContext(contour, false)
		swctx.Triangulate()

		for _, tr := range swctx.GetTriangles() {
			p0 := Point{tr.Points[0].X, tr.Points[0].Y}
			p1 := Point{tr.Points[1].X, tr.Points[1].Y}
			p2 := Point{tr.Points[2].X, tr.Points[2].Y}
			triangles = append(triangles, [3]Point{p0, p1, p2})
		}
	}
	return triangles
}
