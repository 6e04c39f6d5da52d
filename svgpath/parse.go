package svgpath

import (
	"math"

	"github.com/tdewolff/pathbool/geom"
	"github.com/tdewolff/parse/v2"
	tstrconv "github.com/tdewolff/strconv"
)

func skipCommaWhitespace(data []byte) int {
	i := 0
	for i < len(data) && (data[i] == ' ' || data[i] == ',' || data[i] == '\n' || data[i] == '\r' || data[i] == '\t') {
		i++
	}
	return i
}

func parseNum(data []byte) (float64, int) {
	i := skipCommaWhitespace(data)
	f, n := tstrconv.ParseFloat(data[i:])
	return f, i + n
}

// ParsePathData tokenizes SVG path-data syntax directly into segments,
// expanding relative commands, shorthand curves, and H/V into their
// absolute, explicit-argument PathCommand equivalents before calling
// FromCommands.
func ParsePathData(s string) ([]geom.Segment, error) {
	data := []byte(s)
	z := parse.NewInputString(s)
	var cmds []PathCommand

	var prevCmd byte
	var x, y float64     // current point
	var cpx, cpy float64 // last cubic/quadratic control point, for S/T reflection
	haveCP := false

	i := 0
	for i < len(data) {
		i += skipCommaWhitespace(data[i:])
		if i >= len(data) {
			break
		}
		cmd := prevCmd
		if data[i] >= 'A' {
			cmd = data[i]
			i++
		} else if prevCmd == 0 {
			z.Move(i)
			return nil, parse.NewErrorLexer(z, "svgpath: unexpected token: %w", ErrBadSequence)
		}

		switch cmd {
		case 'M', 'm':
			a, n := parseNum(data[i:])
			i += n
			b, n := parseNum(data[i:])
			i += n
			if cmd == 'm' {
				a += x
				b += y
			}
			x, y = a, b
			haveCP = false
			cmds = append(cmds, PathCommand{Kind: MoveTo, X: x, Y: y})
		case 'Z', 'z':
			cmds = append(cmds, PathCommand{Kind: ClosePath})
			haveCP = false
		case 'L', 'l':
			a, n := parseNum(data[i:])
			i += n
			b, n := parseNum(data[i:])
			i += n
			if cmd == 'l' {
				a += x
				b += y
			}
			x, y = a, b
			haveCP = false
			cmds = append(cmds, PathCommand{Kind: LineTo, X: x, Y: y})
		case 'H', 'h':
			a, n := parseNum(data[i:])
			i += n
			if cmd == 'h' {
				a += x
			}
			x = a
			haveCP = false
			cmds = append(cmds, PathCommand{Kind: LineTo, X: x, Y: y})
		case 'V', 'v':
			b, n := parseNum(data[i:])
			i += n
			if cmd == 'v' {
				b += y
			}
			y = b
			haveCP = false
			cmds = append(cmds, PathCommand{Kind: LineTo, X: x, Y: y})
		case 'C', 'c':
			a, n := parseNum(data[i:])
			i += n
			b, n := parseNum(data[i:])
			i += n
			c, n := parseNum(data[i:])
			i += n
			d, n := parseNum(data[i:])
			i += n
			e, n := parseNum(data[i:])
			i += n
			f, n := parseNum(data[i:])
			i += n
			if cmd == 'c' {
				a, b, c, d, e, f = a+x, b+y, c+x, d+y, e+x, f+y
			}
			cmds = append(cmds, PathCommand{Kind: CubeTo, CX1: a, CY1: b, CX2: c, CY2: d, X: e, Y: f})
			cpx, cpy, haveCP = c, d, true
			x, y = e, f
		case 'S', 's':
			c, n := parseNum(data[i:])
			i += n
			d, n := parseNum(data[i:])
			i += n
			e, n := parseNum(data[i:])
			i += n
			f, n := parseNum(data[i:])
			i += n
			if cmd == 's' {
				c, d, e, f = c+x, d+y, e+x, f+y
			}
			a, b := x, y
			if haveCP && isCubicCmd(prevCmd) {
				a, b = 2*x-cpx, 2*y-cpy
			}
			cmds = append(cmds, PathCommand{Kind: CubeTo, CX1: a, CY1: b, CX2: c, CY2: d, X: e, Y: f})
			cpx, cpy, haveCP = c, d, true
			x, y = e, f
		case 'Q', 'q':
			a, n := parseNum(data[i:])
			i += n
			b, n := parseNum(data[i:])
			i += n
			c, n := parseNum(data[i:])
			i += n
			d, n := parseNum(data[i:])
			i += n
			if cmd == 'q' {
				a, b, c, d = a+x, b+y, c+x, d+y
			}
			cmds = append(cmds, PathCommand{Kind: QuadTo, CX1: a, CY1: b, X: c, Y: d})
			cpx, cpy, haveCP = a, b, true
			x, y = c, d
		case 'T', 't':
			c, n := parseNum(data[i:])
			i += n
			d, n := parseNum(data[i:])
			i += n
			if cmd == 't' {
				c, d = c+x, d+y
			}
			a, b := x, y
			if haveCP && isQuadCmd(prevCmd) {
				a, b = 2*x-cpx, 2*y-cpy
			}
			cmds = append(cmds, PathCommand{Kind: QuadTo, CX1: a, CY1: b, X: c, Y: d})
			cpx, cpy, haveCP = a, b, true
			x, y = c, d
		case 'A', 'a':
			rx, n := parseNum(data[i:])
			i += n
			ry, n := parseNum(data[i:])
			i += n
			rot, n := parseNum(data[i:])
			i += n
			largeF, n := parseNum(data[i:])
			i += n
			sweepF, n := parseNum(data[i:])
			i += n
			ex, n := parseNum(data[i:])
			i += n
			ey, n := parseNum(data[i:])
			i += n
			if cmd == 'a' {
				ex += x
				ey += y
			}
			cmds = append(cmds, PathCommand{
				Kind: ArcTo, Rx: rx, Ry: ry, Phi: rot * math.Pi / 180.0,
				LargeArc: math.Abs(largeF-1.0) < 1e-10, Sweep: math.Abs(sweepF-1.0) < 1e-10,
				X: ex, Y: ey,
			})
			haveCP = false
			x, y = ex, ey
		default:
			z.Move(i - 1)
			return nil, parse.NewErrorLexer(z, "svgpath: unknown command %q: %w", rune(cmd), ErrBadSequence)
		}
		prevCmd = cmd
	}
	return FromCommands(cmds)
}

func isCubicCmd(cmd byte) bool {
	return cmd == 'C' || cmd == 'c' || cmd == 'S' || cmd == 's'
}

func isQuadCmd(cmd byte) bool {
	return cmd == 'Q' || cmd == 'q' || cmd == 'T' || cmd == 't'
}
