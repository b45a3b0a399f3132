package clip

import (
	"fmt"

	"github.com/paulmach/orb"
)

// ToOrb converts the closed subpaths of p into an orb multi polygon,
// flattening Bezier curves with tolerance tol. Every subpath becomes a
// single-ring polygon with the first point repeated at the end, as orb
// expects. Subpaths with fewer than three points are dropped.
func (p *Path) ToOrb(tol float64) orb.MultiPolygon {
	var mp orb.MultiPolygon
	for _, ring := range flattenRings(p, tol) {
		r := make(orb.Ring, 0, len(ring)+1)
		for _, pt := range ring {
			r = append(r, orb.Point{pt.X, pt.Y})
		}
		r = append(r, r[0])
		mp = append(mp, orb.Polygon{r})
	}
	return mp
}

// FromOrb converts an orb ring, polygon or multi polygon into a path of
// closed subpaths. Other geometry types return an error.
func FromOrb(g orb.Geometry) (*Path, error) {
	p := &Path{}
	switch g := g.(type) {
	case orb.Ring:
		fromOrbRing(p, g)
	case orb.Polygon:
		for _, ring := range g {
			fromOrbRing(p, ring)
		}
	case orb.MultiPolygon:
		for _, poly := range g {
			for _, ring := range poly {
				fromOrbRing(p, ring)
			}
		}
	default:
		return nil, fmt.Errorf("unsupported geometry type %T", g)
	}
	return p, nil
}

func fromOrbRing(p *Path, ring orb.Ring) {
	if len(ring) == 0 {
		return
	}
	p.MoveTo(ring[0][0], ring[0][1])
	for _, point := range ring[1:] {
		p.LineTo(point[0], point[1])
	}
	p.Close()
}
