package clip

import (
	"fmt"
	"math"
	"strings"
)

// Path commands, their values are stored before and after the command's coordinates in the data array.
const (
	MoveToCmd = 1.0 << iota
	LineToCmd
	QuadToCmd
	CubeToCmd
	CloseCmd
)

// cmdLen returns the number of values (including the commands) that a command occupies in the data array.
func cmdLen(cmd float64) int {
	switch cmd {
	case MoveToCmd, LineToCmd, CloseCmd:
		return 4
	case QuadToCmd:
		return 6
	case CubeToCmd:
		return 8
	}
	panic("unknown path command")
}

// FillRule is the algorithm to specify which area is to be filled and which not, in particular when multiple subpaths overlap. The NonZero rule is the default and will fill any point that is being enclosed by an unequal number of paths winding clockwise and counter clockwise, otherwise it will not be filled. The EvenOdd rule will fill any point that is being enclosed by an uneven number of paths, whichever their direction.
type FillRule int

// see FillRule
const (
	NonZero FillRule = iota
	EvenOdd
)

func (fillRule FillRule) String() string {
	if fillRule == NonZero {
		return "NonZero"
	}
	return "EvenOdd"
}

// Path defines a vector path in 2D using a series of commands (MoveTo, LineTo, QuadTo, CubeTo and Close). Each command consists of a number of float64 values (depending on the command) that fully define the action. The first and the last value is the command itself (as a float64), the values in between are the coordinates. The end point of Close repeats the subpath's starting coordinates.
type Path struct {
	d []float64

	// FillRule selects how self-overlapping subpaths are interpreted by Interior. It does not affect the boolean operations, which treat every closed subpath as an independent simple ring.
	FillRule FillRule
}

// Empty returns true if p is an empty path or consists of a single MoveTo.
func (p *Path) Empty() bool {
	return p == nil || len(p.d) <= cmdLen(MoveToCmd)
}

// Equals returns true if p and q are equal within tolerance Epsilon.
func (p *Path) Equals(q *Path) bool {
	if len(p.d) != len(q.d) {
		return false
	}
	for i := 0; i < len(p.d); i++ {
		if !equal(p.d[i], q.d[i]) {
			return false
		}
	}
	return true
}

// Closed returns true if the last subpath of p is a closed path.
func (p *Path) Closed() bool {
	return 0 < len(p.d) && p.d[len(p.d)-1] == CloseCmd
}

// Pos returns the current position of the path, which is the end point of the last command.
func (p *Path) Pos() Point {
	if 0 < len(p.d) {
		return Point{p.d[len(p.d)-3], p.d[len(p.d)-2]}
	}
	return Point{}
}

// startPos returns the start point of the current subpath, ie. the end point of the last MoveTo command.
func (p *Path) startPos() Point {
	for i := len(p.d); 0 < i; {
		cmd := p.d[i-1]
		if cmd == MoveToCmd {
			return Point{p.d[i-3], p.d[i-2]}
		}
		i -= cmdLen(cmd)
	}
	return Point{}
}

// MoveTo moves the path to (x,y) without connecting the path. It starts a new independent subpath. A preceding lone MoveTo is replaced.
func (p *Path) MoveTo(x, y float64) {
	if 0 < len(p.d) && p.d[len(p.d)-1] == MoveToCmd {
		p.d[len(p.d)-3] = x
		p.d[len(p.d)-2] = y
		return
	}
	p.d = append(p.d, MoveToCmd, x, y, MoveToCmd)
}

// LineTo adds a linear path to (x,y). Zero-length segments are dropped.
func (p *Path) LineTo(x, y float64) {
	start := p.Pos()
	end := Point{x, y}
	if start.Equals(end) {
		return
	}
	if len(p.d) == 0 {
		p.MoveTo(0.0, 0.0)
	} else if p.d[len(p.d)-1] == CloseCmd {
		p.MoveTo(start.X, start.Y)
	}
	p.d = append(p.d, LineToCmd, end.X, end.Y, LineToCmd)
}

// QuadTo adds a quadratic Bezier path with control point (cpx,cpy) and end point (x,y).
func (p *Path) QuadTo(cpx, cpy, x, y float64) {
	start := p.Pos()
	cp := Point{cpx, cpy}
	end := Point{x, y}
	if start.Equals(cp) && start.Equals(end) {
		return
	}
	if len(p.d) == 0 {
		p.MoveTo(0.0, 0.0)
	} else if p.d[len(p.d)-1] == CloseCmd {
		p.MoveTo(start.X, start.Y)
	}
	p.d = append(p.d, QuadToCmd, cp.X, cp.Y, end.X, end.Y, QuadToCmd)
}

// CubeTo adds a cubic Bezier path with control points (cpx1,cpy1) and (cpx2,cpy2) and end point (x,y).
func (p *Path) CubeTo(cpx1, cpy1, cpx2, cpy2, x, y float64) {
	start := p.Pos()
	cp1 := Point{cpx1, cpy1}
	cp2 := Point{cpx2, cpy2}
	end := Point{x, y}
	if start.Equals(cp1) && start.Equals(cp2) && start.Equals(end) {
		return
	}
	if len(p.d) == 0 {
		p.MoveTo(0.0, 0.0)
	} else if p.d[len(p.d)-1] == CloseCmd {
		p.MoveTo(start.X, start.Y)
	}
	p.d = append(p.d, CubeToCmd, cp1.X, cp1.Y, cp2.X, cp2.Y, end.X, end.Y, CubeToCmd)
}

// Close closes a (sub)path with a line segment to the subpath's starting point. It is equivalent to the Z command in SVG path data.
func (p *Path) Close() {
	if len(p.d) == 0 || p.d[len(p.d)-1] == CloseCmd {
		return
	}
	start := p.startPos()
	p.d = append(p.d, CloseCmd, start.X, start.Y, CloseCmd)
}

// Append appends path q to p and returns the extended path p.
func (p *Path) Append(q *Path) *Path {
	if q == nil || len(q.d) == 0 {
		return p
	}
	p.d = append(p.d, q.d...)
	return p
}

// Split splits the path into its subpaths.
func (p *Path) Split() []*Path {
	var ps []*Path
	i := 0
	for j := 0; j < len(p.d); {
		cmd := p.d[j]
		if cmd == MoveToCmd && i < j {
			ps = append(ps, &Path{d: p.d[i:j:j], FillRule: p.FillRule})
			i = j
		}
		j += cmdLen(cmd)
	}
	if i < len(p.d) {
		ps = append(ps, &Path{d: p.d[i:len(p.d):len(p.d)], FillRule: p.FillRule})
	}
	return ps
}

// Reverse returns a new path that is the same path as p but in the reverse direction.
func (p *Path) Reverse() *Path {
	r := &Path{FillRule: p.FillRule}
	for _, ps := range p.Split() {
		closed := ps.Closed()
		base := len(r.d)
		started := false
		for scanner := ps.ReverseScanner(); scanner.Scan(); {
			cmd := scanner.Cmd()
			if cmd == MoveToCmd {
				continue
			}
			start, end := scanner.Start(), scanner.End()
			if !started {
				r.MoveTo(end.X, end.Y)
				started = true
			}
			switch cmd {
			case LineToCmd, CloseCmd:
				r.LineTo(start.X, start.Y)
			case QuadToCmd:
				cp := scanner.CP1()
				r.QuadTo(cp.X, cp.Y, start.X, start.Y)
			case CubeToCmd:
				cp1, cp2 := scanner.CP1(), scanner.CP2()
				r.CubeTo(cp2.X, cp2.Y, cp1.X, cp1.Y, start.X, start.Y)
			}
		}
		if !started {
			pos := ps.Pos()
			r.MoveTo(pos.X, pos.Y)
			continue
		}
		if closed {
			// a trailing line back to the start becomes the closing segment
			last := Point{r.d[len(r.d)-3], r.d[len(r.d)-2]}
			if r.d[len(r.d)-1] == LineToCmd && last.Equals(Point{r.d[base+1], r.d[base+2]}) {
				r.d = r.d[:len(r.d)-cmdLen(LineToCmd)]
			}
			r.Close()
		}
	}
	return r
}

// Coords returns the start and end point coordinates of all commands.
func (p *Path) Coords() []Point {
	coords := []Point{}
	for scanner := p.Scanner(); scanner.Scan(); {
		if scanner.Cmd() != CloseCmd {
			coords = append(coords, scanner.End())
		}
	}
	return coords
}

// Bounds returns the exact bounding box rectangle of the path, taking the curvature of Bezier segments into account.
func (p *Path) Bounds() Rect {
	if len(p.d) < 4 {
		return Rect{}
	}
	xmin, xmax := math.Inf(1), math.Inf(-1)
	ymin, ymax := math.Inf(1), math.Inf(-1)
	for scanner := p.Scanner(); scanner.Scan(); {
		end := scanner.End()
		switch scanner.Cmd() {
		case QuadToCmd:
			cp1, cp2 := quadraticToCubicBezier(scanner.Start(), scanner.CP1(), end)
			r := cubicBezierBounds(scanner.Start(), cp1, cp2, end)
			xmin = math.Min(xmin, r.X)
			xmax = math.Max(xmax, r.X+r.W)
			ymin = math.Min(ymin, r.Y)
			ymax = math.Max(ymax, r.Y+r.H)
		case CubeToCmd:
			r := cubicBezierBounds(scanner.Start(), scanner.CP1(), scanner.CP2(), end)
			xmin = math.Min(xmin, r.X)
			xmax = math.Max(xmax, r.X+r.W)
			ymin = math.Min(ymin, r.Y)
			ymax = math.Max(ymax, r.Y+r.H)
		default:
			xmin = math.Min(xmin, end.X)
			xmax = math.Max(xmax, end.X)
			ymin = math.Min(ymin, end.Y)
			ymax = math.Max(ymax, end.Y)
		}
	}
	return Rect{xmin, ymin, xmax - xmin, ymax - ymin}
}

// Area returns the signed area of the path; positive for subpaths that wind counter clockwise in a Y-up coordinate system, negative otherwise. Bezier curves are flattened with tolerance tol.
func (p *Path) Area(tol float64) float64 {
	area := 0.0
	for _, ring := range flattenRings(p, tol) {
		area += signedArea(ring)
	}
	return area
}

// Flatten flattens all Bezier curves into line segments with a maximum deviation of tol. It returns a new path.
func (p *Path) Flatten(tol float64) *Path {
	q := &Path{FillRule: p.FillRule}
	for scanner := p.Scanner(); scanner.Scan(); {
		end := scanner.End()
		switch scanner.Cmd() {
		case MoveToCmd:
			q.MoveTo(end.X, end.Y)
		case LineToCmd:
			q.LineTo(end.X, end.Y)
		case QuadToCmd:
			cp1, cp2 := quadraticToCubicBezier(scanner.Start(), scanner.CP1(), end)
			for _, pt := range flattenCubicBezier(scanner.Start(), cp1, cp2, end, tol)[1:] {
				q.LineTo(pt.X, pt.Y)
			}
		case CubeToCmd:
			for _, pt := range flattenCubicBezier(scanner.Start(), scanner.CP1(), scanner.CP2(), end, tol)[1:] {
				q.LineTo(pt.X, pt.Y)
			}
		case CloseCmd:
			q.Close()
		}
	}
	return q
}

// Interior returns true if the point (x,y) is in the interior of the path, ie. gets filled according to the path's fill rule. Points on the boundary count as interior. Bezier curves are flattened with tolerance tol.
func (p *Path) Interior(x, y, tol float64) bool {
	pt := Point{x, y}
	winding := 0
	crossings := 0
	for _, ring := range flattenRings(p, tol) {
		poly := newPolygon(ring, subjectSide)
		switch classifyPoint(pt, poly, Epsilon) {
		case locBoundary:
			return true
		case locInside:
			crossings++
		}
		winding += windingNumber(pt, poly)
	}
	if p.FillRule == EvenOdd {
		return crossings%2 == 1
	}
	return winding != 0
}

// String returns a string that represents the path similar to the SVG path data format (but not necessarily valid SVG).
func (p *Path) String() string {
	return p.ToSVG()
}

// ToSVG returns a string that represents the path in the SVG path data format with minified numbers.
func (p *Path) ToSVG() string {
	if p.Empty() {
		return ""
	}
	sb := strings.Builder{}
	x, y := 0.0, 0.0
	for scanner := p.Scanner(); scanner.Scan(); {
		end := scanner.End()
		switch scanner.Cmd() {
		case MoveToCmd:
			fmt.Fprintf(&sb, "M%v %v", num(end.X), num(end.Y))
		case LineToCmd:
			if equal(end.X, x) && equal(end.Y, y) {
				break
			} else if equal(end.X, x) {
				fmt.Fprintf(&sb, "V%v", num(end.Y))
			} else if equal(end.Y, y) {
				fmt.Fprintf(&sb, "H%v", num(end.X))
			} else {
				fmt.Fprintf(&sb, "L%v %v", num(end.X), num(end.Y))
			}
		case QuadToCmd:
			cp := scanner.CP1()
			fmt.Fprintf(&sb, "Q%v %v %v %v", num(cp.X), num(cp.Y), num(end.X), num(end.Y))
		case CubeToCmd:
			cp1, cp2 := scanner.CP1(), scanner.CP2()
			fmt.Fprintf(&sb, "C%v %v %v %v %v %v", num(cp1.X), num(cp1.Y), num(cp2.X), num(cp2.Y), num(end.X), num(end.Y))
		case CloseCmd:
			sb.WriteString("z")
		}
		x, y = end.X, end.Y
	}
	return sb.String()
}
