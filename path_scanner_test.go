package clip

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestPathScanner(t *testing.T) {
	p := MustParseSVG("M1 2L3 4Q5 6 7 8C9 10 11 12 13 14z")

	s := p.Scanner()
	test.That(t, s.Scan())
	test.That(t, s.Cmd() == MoveToCmd)
	test.T(t, s.Start(), Point{0, 0})
	test.T(t, s.End(), Point{1, 2})
	vals := s.Values()
	test.T(t, len(vals), 2)
	test.Float(t, vals[0], 1.0)
	test.Float(t, vals[1], 2.0)

	test.That(t, s.Scan())
	test.That(t, s.Cmd() == LineToCmd)
	test.T(t, s.Start(), Point{1, 2})
	test.T(t, s.End(), Point{3, 4})

	test.That(t, s.Scan())
	test.That(t, s.Cmd() == QuadToCmd)
	test.T(t, s.Start(), Point{3, 4})
	test.T(t, s.CP1(), Point{5, 6})
	test.T(t, s.End(), Point{7, 8})
	test.T(t, len(s.Values()), 4)

	test.That(t, s.Scan())
	test.That(t, s.Cmd() == CubeToCmd)
	test.T(t, s.Start(), Point{7, 8})
	test.T(t, s.CP1(), Point{9, 10})
	test.T(t, s.CP2(), Point{11, 12})
	test.T(t, s.End(), Point{13, 14})

	test.That(t, s.Scan())
	test.That(t, s.Cmd() == CloseCmd)
	test.T(t, s.Start(), Point{13, 14})
	test.T(t, s.End(), Point{1, 2})

	test.That(t, !s.Scan())
}

func TestPathReverseScanner(t *testing.T) {
	p := MustParseSVG("M1 2L3 4Q5 6 7 8C9 10 11 12 13 14z")

	s := p.ReverseScanner()
	test.That(t, s.Scan())
	test.That(t, s.Cmd() == CloseCmd)
	test.T(t, s.Start(), Point{13, 14})
	test.T(t, s.End(), Point{1, 2})

	test.That(t, s.Scan())
	test.That(t, s.Cmd() == CubeToCmd)
	test.T(t, s.Start(), Point{7, 8})
	test.T(t, s.CP1(), Point{9, 10})
	test.T(t, s.CP2(), Point{11, 12})
	test.T(t, s.End(), Point{13, 14})

	test.That(t, s.Scan())
	test.That(t, s.Cmd() == QuadToCmd)
	test.T(t, s.Start(), Point{3, 4})
	test.T(t, s.CP1(), Point{5, 6})
	test.T(t, s.End(), Point{7, 8})

	test.That(t, s.Scan())
	test.That(t, s.Cmd() == LineToCmd)
	test.T(t, s.Start(), Point{1, 2})
	test.T(t, s.End(), Point{3, 4})

	test.That(t, s.Scan())
	test.That(t, s.Cmd() == MoveToCmd)
	test.T(t, s.Start(), Point{0, 0})
	test.T(t, s.End(), Point{1, 2})

	test.That(t, !s.Scan())
}

func BenchmarkScanner(b *testing.B) {
	p := Circle(0.0, 0.0, 10.0)
	for i := 0; i < 6; i++ {
		p = p.Append(Circle(float64(i), 0.0, 10.0).Flatten(0.01))
	}
	b.Run("Manual", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			for j := 0; j < len(p.d); {
				j += cmdLen(p.d[j])
				_, _ = p.d[j-3], p.d[j-2]
			}
		}
	})

	b.Run("Scanner", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			for s := p.Scanner(); s.Scan(); {
				_ = s.End()
			}
		}
	})
}
