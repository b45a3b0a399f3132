package clip

import (
	"fmt"

	"github.com/tdewolff/parse/v2/strconv"
)

func skipCommaWhitespace(path []byte) int {
	i := 0
	for i < len(path) && (path[i] == ' ' || path[i] == ',' || path[i] == '\n' || path[i] == '\r' || path[i] == '\t') {
		i++
	}
	return i
}

func parseNum(path []byte) (float64, int) {
	i := skipCommaWhitespace(path)
	f, n := strconv.ParseFloat(path[i:])
	if n == 0 {
		return 0.0, 0
	}
	return f, i + n
}

// numsFollowing returns the number of coordinate values that follow a path command, or -1 for unknown commands.
func numsFollowing(cmd byte) int {
	switch cmd {
	case 'M', 'm', 'L', 'l', 'T', 't':
		return 2
	case 'H', 'h', 'V', 'v':
		return 1
	case 'S', 's', 'Q', 'q':
		return 4
	case 'C', 'c':
		return 6
	case 'Z', 'z':
		return 0
	}
	return -1
}

// MustParseSVG parses an SVG path data string and panics on failure.
func MustParseSVG(s string) *Path {
	p, err := ParseSVG(s)
	if err != nil {
		panic(err)
	}
	return p
}

// ParseSVG parses an SVG path data string and returns the path. A path may start with a non-MoveTo command in which case it starts at the origin. Arc commands (A/a) are not supported, convert arcs to cubic Bezier segments before parsing.
func ParseSVG(s string) (*Path, error) {
	if len(s) == 0 {
		return &Path{}, nil
	}

	path := []byte(s)
	p := &Path{}

	var prevCmd byte
	cpx, cpy := 0.0, 0.0 // control point of the previous Bezier for smooth commands

	i := 0
	for i < len(path) {
		i += skipCommaWhitespace(path[i:])
		if len(path) <= i {
			break
		}

		cmd := prevCmd
		iCmd := i + 1 // 1-based position for error messages
		if 'A' <= path[i] && path[i] <= 'Z' || 'a' <= path[i] && path[i] <= 'z' {
			cmd = path[i]
			i++
		} else if prevCmd == 0 {
			return nil, fmt.Errorf("bad path: path should start with command")
		} else if prevCmd == 'Z' || prevCmd == 'z' {
			return nil, fmt.Errorf("bad path: unknown command '%c' at position %d", path[i], i+1)
		} else if cmd == 'M' {
			// an implicit command after a moveto is a lineto
			cmd = 'L'
		} else if cmd == 'm' {
			cmd = 'l'
		}

		if cmd == 'A' || cmd == 'a' {
			return nil, fmt.Errorf("bad path: arc commands are not supported at position %d", iCmd)
		}
		n := numsFollowing(cmd)
		if n == -1 {
			return nil, fmt.Errorf("bad path: unknown command '%c' at position %d", cmd, iCmd)
		}

		var nums [6]float64
		for j := 0; j < n; j++ {
			num, k := parseNum(path[i:])
			if k == 0 {
				return nil, fmt.Errorf("bad path: %d numbers should follow command '%c' at position %d", n, cmd, iCmd)
			}
			nums[j] = num
			i += k
		}

		x, y := p.Pos().X, p.Pos().Y
		switch cmd {
		case 'M', 'm':
			a, b := nums[0], nums[1]
			if cmd == 'm' {
				a += x
				b += y
			}
			p.MoveTo(a, b)
		case 'Z', 'z':
			p.Close()
		case 'L', 'l':
			a, b := nums[0], nums[1]
			if cmd == 'l' {
				a += x
				b += y
			}
			p.LineTo(a, b)
		case 'H', 'h':
			a := nums[0]
			if cmd == 'h' {
				a += x
			}
			p.LineTo(a, y)
		case 'V', 'v':
			b := nums[0]
			if cmd == 'v' {
				b += y
			}
			p.LineTo(x, b)
		case 'C', 'c':
			a, b, c, d, e, f := nums[0], nums[1], nums[2], nums[3], nums[4], nums[5]
			if cmd == 'c' {
				a += x
				b += y
				c += x
				d += y
				e += x
				f += y
			}
			p.CubeTo(a, b, c, d, e, f)
			cpx, cpy = c, d
		case 'S', 's':
			c, d, e, f := nums[0], nums[1], nums[2], nums[3]
			if cmd == 's' {
				c += x
				d += y
				e += x
				f += y
			}
			a, b := x, y
			if prevCmd == 'C' || prevCmd == 'c' || prevCmd == 'S' || prevCmd == 's' {
				a, b = 2.0*x-cpx, 2.0*y-cpy
			}
			p.CubeTo(a, b, c, d, e, f)
			cpx, cpy = c, d
		case 'Q', 'q':
			a, b, c, d := nums[0], nums[1], nums[2], nums[3]
			if cmd == 'q' {
				a += x
				b += y
				c += x
				d += y
			}
			p.QuadTo(a, b, c, d)
			cpx, cpy = a, b
		case 'T', 't':
			c, d := nums[0], nums[1]
			if cmd == 't' {
				c += x
				d += y
			}
			a, b := x, y
			if prevCmd == 'Q' || prevCmd == 'q' || prevCmd == 'T' || prevCmd == 't' {
				a, b = 2.0*x-cpx, 2.0*y-cpy
			}
			p.QuadTo(a, b, c, d)
			cpx, cpy = a, b
		}
		prevCmd = cmd
	}
	return p, nil
}
