package clip

import (
	"context"
	"fmt"
	"log/slog"
)

// Op is a boolean operation between two shapes.
type Op int

const (
	OpUnion Op = iota
	OpIntersect
	OpSubtract
	OpExclude
)

func (op Op) String() string {
	switch op {
	case OpUnion:
		return "union"
	case OpIntersect:
		return "intersect"
	case OpSubtract:
		return "subtract"
	case OpExclude:
		return "exclude"
	}
	return fmt.Sprintf("Op(%d)", int(op))
}

// Options configures the boolean operations.
type Options struct {
	// FlattenTolerance is the maximum deviation allowed when Bezier curves are flattened into line segments.
	FlattenTolerance float64

	// IntersectionTolerance is the distance below which points count as lying on a boundary.
	IntersectionTolerance float64

	// HandleDegenerates enables the pre-checks for ring pairs that share vertices or edges, are identical, enclose no area or contain one another.
	HandleDegenerates bool

	// Perturb allows nudging a degenerate subject ring by a random offset up to IntersectionTolerance and retrying. Disable for deterministic output.
	Perturb bool
}

// DefaultOptions returns the options used when Boolean receives nil options.
func DefaultOptions() *Options {
	return &Options{
		FlattenTolerance:      0.5,
		IntersectionTolerance: 1.0e-6,
		HandleDegenerates:     true,
		Perturb:               true,
	}
}

// Boolean applies the operation op between the closed subpaths of the subject and clip paths and returns the resulting contours as a single path with one closed subpath per contour. Bezier curves are flattened first. Open subpaths are treated as closed, subpaths with fewer than three points are ignored. Multiple rings fold pairwise: every clip ring is applied to each ring of the running result in turn. Boolean never panics; an invalid operation or an internal failure returns an error.
func Boolean(op Op, subject, clip []*Path, opts *Options) (res *Path, err error) {
	if op < OpUnion || OpExclude < op {
		return nil, fmt.Errorf("unknown boolean operation %d", int(op))
	}
	if opts == nil {
		opts = DefaultOptions()
	}
	defer func() {
		if r := recover(); r != nil {
			res = nil
			err = fmt.Errorf("boolean %v failed: %v", op, r)
		}
	}()

	var subjectRings, clipRings [][]Point
	for _, p := range subject {
		subjectRings = append(subjectRings, normalizedRings(p, opts.FlattenTolerance)...)
	}
	for _, p := range clip {
		clipRings = append(clipRings, normalizedRings(p, opts.FlattenTolerance)...)
	}

	log := Logger()
	debug := log.Enabled(context.Background(), slog.LevelDebug)
	if debug {
		log.Debug("boolean operation", "op", op.String(), "subjectRings", len(subjectRings), "clipRings", len(clipRings))
		for i, ring := range subjectRings {
			if !isSimplePolygon(newPolygon(ring, subjectSide)) {
				log.Debug("subject ring is self-intersecting", "ring", i)
			}
		}
		for i, ring := range clipRings {
			if !isSimplePolygon(newPolygon(ring, clipSide)) {
				log.Debug("clip ring is self-intersecting", "ring", i)
			}
		}
	}

	// empty operands resolve without clipping
	if len(subjectRings) == 0 {
		if op == OpUnion || op == OpExclude {
			return ringsToPath(clipRings, op), nil
		}
		return &Path{}, nil
	}
	if len(clipRings) == 0 {
		if op == OpIntersect {
			return &Path{}, nil
		}
		return ringsToPath(subjectRings, op), nil
	}

	results := subjectRings
	for _, c := range clipRings {
		var next [][]Point
		for _, r := range results {
			next = append(next, clipRingPair(op, r, c, opts)...)
		}
		results = next
		if len(results) == 0 {
			break
		}
	}
	if debug {
		log.Debug("boolean result", "rings", len(results))
	}
	return ringsToPath(results, op), nil
}

// clipRingPair applies the operation between a single subject ring and a single clip ring.
func clipRingPair(op Op, subjectPts, clipPts []Point, opts *Options) [][]Point {
	if op == OpSubtract {
		// difference clips against the complement, which reverses the ring
		clipPts = reversePoints(clipPts)
	}
	s := newPolygon(subjectPts, subjectSide)
	c := newPolygon(clipPts, clipSide)

	if opts.HandleDegenerates && isDegenerate(s, c) {
		if rings, ok := handleDegenerate(s, c, op, opts.IntersectionTolerance); ok {
			return rings
		}
		if opts.Perturb {
			for i := 0; i < maxPerturbRetries; i++ {
				ps := s.clone()
				perturbPolygon(ps, opts.IntersectionTolerance)
				if !isDegenerate(ps, c) {
					s = ps
					break
				}
			}
		}
	}

	if 0 < insertIntersections(s, c) {
		markEntries(s, c, entryRule(op, subjectSide), opts.IntersectionTolerance)
		markEntries(c, s, entryRule(op, clipSide), opts.IntersectionTolerance)
	}
	return extractContours(s, c, op, opts.IntersectionTolerance)
}

// ringsToPath serializes contours into a path of closed subpaths.
func ringsToPath(rings [][]Point, op Op) *Path {
	p := &Path{}
	if op == OpExclude {
		// nested exclusion outputs overlapping rings that only render correctly even-odd
		p.FillRule = EvenOdd
	}
	for _, ring := range rings {
		if len(ring) < 3 {
			continue
		}
		p.MoveTo(ring[0].X, ring[0].Y)
		for _, pt := range ring[1:] {
			p.LineTo(pt.X, pt.Y)
		}
		p.Close()
	}
	return p
}

// Union merges the closed subpaths of subject and clip.
func Union(subject, clip *Path, opts *Options) (*Path, error) {
	return Boolean(OpUnion, []*Path{subject}, []*Path{clip}, opts)
}

// Intersect keeps the area covered by both subject and clip.
func Intersect(subject, clip *Path, opts *Options) (*Path, error) {
	return Boolean(OpIntersect, []*Path{subject}, []*Path{clip}, opts)
}

// Subtract removes the area of clip from subject.
func Subtract(subject, clip *Path, opts *Options) (*Path, error) {
	return Boolean(OpSubtract, []*Path{subject}, []*Path{clip}, opts)
}

// Exclude keeps the area covered by either subject or clip but not both.
func Exclude(subject, clip *Path, opts *Options) (*Path, error) {
	return Boolean(OpExclude, []*Path{subject}, []*Path{clip}, opts)
}

// And returns the boolean intersection of the closed subpaths of p and q.
func (p *Path) And(q *Path) *Path {
	return mustBoolean(OpIntersect, p, q)
}

// Or returns the boolean union of the closed subpaths of p and q.
func (p *Path) Or(q *Path) *Path {
	return mustBoolean(OpUnion, p, q)
}

// Xor returns the boolean exclusion of the closed subpaths of p and q.
func (p *Path) Xor(q *Path) *Path {
	return mustBoolean(OpExclude, p, q)
}

// Not returns the boolean difference of the closed subpaths of p and q, ie. p minus q.
func (p *Path) Not(q *Path) *Path {
	return mustBoolean(OpSubtract, p, q)
}

func mustBoolean(op Op, p, q *Path) *Path {
	r, err := Boolean(op, []*Path{p}, []*Path{q}, nil)
	if err != nil {
		return &Path{}
	}
	return r
}
