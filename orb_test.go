package clip

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/tdewolff/test"
)

func TestToOrb(t *testing.T) {
	mp := Rectangle(0.0, 0.0, 2.0, 1.0).ToOrb(0.01)
	test.T(t, len(mp), 1)
	test.T(t, len(mp[0]), 1)
	test.T(t, mp[0][0], orb.Ring{{0.0, 0.0}, {2.0, 0.0}, {2.0, 1.0}, {0.0, 1.0}, {0.0, 0.0}})

	mp = Rectangle(0.0, 0.0, 4.0, 4.0).Append(Rectangle(1.0, 1.0, 1.0, 1.0)).ToOrb(0.01)
	test.T(t, len(mp), 2)

	// open zero-area subpaths are dropped
	test.T(t, len(Line(0.0, 0.0, 5.0, 5.0).ToOrb(0.01)), 0)
}

func TestFromOrb(t *testing.T) {
	p, err := FromOrb(orb.Ring{{0.0, 0.0}, {2.0, 0.0}, {2.0, 1.0}, {0.0, 1.0}, {0.0, 0.0}})
	test.Error(t, err)
	test.T(t, p, MustParseSVG("M0 0L2 0L2 1L0 1L0 0z"))

	p, err = FromOrb(orb.Polygon{
		{{0.0, 0.0}, {4.0, 0.0}, {4.0, 4.0}, {0.0, 4.0}, {0.0, 0.0}},
		{{1.0, 1.0}, {1.0, 2.0}, {2.0, 2.0}, {2.0, 1.0}, {1.0, 1.0}},
	})
	test.Error(t, err)
	test.T(t, len(p.Split()), 2)

	p, err = FromOrb(orb.MultiPolygon{
		{{{0.0, 0.0}, {1.0, 0.0}, {1.0, 1.0}, {0.0, 0.0}}},
		{{{3.0, 0.0}, {4.0, 0.0}, {4.0, 1.0}, {3.0, 0.0}}},
	})
	test.Error(t, err)
	test.T(t, len(p.Split()), 2)

	// empty rings are ignored
	p, err = FromOrb(orb.Polygon{orb.Ring{}})
	test.Error(t, err)
	test.That(t, p.Empty())

	_, err = FromOrb(orb.Point{1.0, 2.0})
	test.That(t, err != nil)
	test.T(t, err.Error(), "unsupported geometry type orb.Point")
}

func TestOrbRoundTrip(t *testing.T) {
	p := Rectangle(0.0, 0.0, 2.0, 1.0)
	q, err := FromOrb(p.ToOrb(0.01))
	test.Error(t, err)
	test.T(t, flattenRings(q, 0.01), flattenRings(p, 0.01))
	test.Float(t, q.Area(0.01), p.Area(0.01))
}
