// Package svgpath adapts between SVG path-data command streams and the
// segment lists the arrangement pipeline operates on.
package svgpath

import (
	"errors"
	"fmt"

	"github.com/tdewolff/pathbool/geom"
)

// ErrBadSequence is returned when a command stream does not start with a
// move and cannot be turned into a well-formed sequence of subpaths.
var ErrBadSequence = errors.New("svgpath: bad command sequence")

// Kind identifies the drawing operation a PathCommand performs.
type Kind int

const (
	MoveTo Kind = iota
	LineTo
	QuadTo
	CubeTo
	ArcTo
	ClosePath
)

// PathCommand is a single SVG path-data drawing operation, already resolved
// to absolute coordinates (relative commands and shorthand curves are
// expanded during tokenization, mirroring how ParseSVGPath folds 'S'/'T'
// and lower-case commands into their absolute, explicit-control-point
// equivalents before a Path ever sees them).
type PathCommand struct {
	Kind            Kind
	X, Y            float64 // endpoint; unused for ClosePath
	CX1, CY1        float64 // QuadTo's only control point, or CubeTo's first
	CX2, CY2        float64 // CubeTo's second control point
	Rx, Ry, Phi     float64 // ArcTo radii and x-axis rotation, in radians
	LargeArc, Sweep bool
}

// FromCommands converts a command stream into segments, one subpath per
// MoveTo. A stream that does not open with MoveTo, or a ClosePath issued
// with no subpath open, is reported as ErrBadSequence.
func FromCommands(cmds []PathCommand) ([]geom.Segment, error) {
	var segs []geom.Segment
	var start, cur geom.Vector
	open := false

	for i, c := range cmds {
		if c.Kind == MoveTo {
			start = geom.Vector{X: c.X, Y: c.Y}
			cur = start
			open = true
			continue
		}
		if !open {
			return nil, fmt.Errorf("svgpath: command %d issued with no subpath open: %w", i, ErrBadSequence)
		}
		switch c.Kind {
		case LineTo:
			end := geom.Vector{X: c.X, Y: c.Y}
			segs = append(segs, geom.Line(cur, end))
			cur = end
		case QuadTo:
			c1 := geom.Vector{X: c.CX1, Y: c.CY1}
			end := geom.Vector{X: c.X, Y: c.Y}
			segs = append(segs, geom.Quadratic(cur, c1, end))
			cur = end
		case CubeTo:
			c1 := geom.Vector{X: c.CX1, Y: c.CY1}
			c2 := geom.Vector{X: c.CX2, Y: c.CY2}
			end := geom.Vector{X: c.X, Y: c.Y}
			segs = append(segs, geom.Cubic(cur, c1, c2, end))
			cur = end
		case ArcTo:
			end := geom.Vector{X: c.X, Y: c.Y}
			segs = append(segs, geom.Arc(cur, c.Rx, c.Ry, c.Phi, c.LargeArc, c.Sweep, end))
			cur = end
		case ClosePath:
			if cur != start {
				segs = append(segs, geom.Line(cur, start))
			}
			cur = start
			open = false
		default:
			return nil, fmt.Errorf("svgpath: command %d has unknown kind %d: %w", i, c.Kind, ErrBadSequence)
		}
	}
	return segs, nil
}

// ToCommands rewrites segs as a command stream, inserting an implicit
// MoveTo whenever a segment's start does not coincide with the previous
// segment's end within eps, per the same subpath-boundary rule FromCommands
// enforces in reverse.
func ToCommands(segs []geom.Segment, eps float64) []PathCommand {
	var cmds []PathCommand
	var cur geom.Vector
	first := true

	for _, s := range segs {
		if first || !closeEnough(cur, s.P0, eps) {
			cmds = append(cmds, PathCommand{Kind: MoveTo, X: s.P0.X, Y: s.P0.Y})
			first = false
		}
		switch s.Kind {
		case geom.LineKind:
			cmds = append(cmds, PathCommand{Kind: LineTo, X: s.P1.X, Y: s.P1.Y})
		case geom.QuadraticKind:
			cmds = append(cmds, PathCommand{Kind: QuadTo, CX1: s.C1.X, CY1: s.C1.Y, X: s.P1.X, Y: s.P1.Y})
		case geom.CubicKind:
			cmds = append(cmds, PathCommand{Kind: CubeTo, CX1: s.C1.X, CY1: s.C1.Y, CX2: s.C2.X, CY2: s.C2.Y, X: s.P1.X, Y: s.P1.Y})
		case geom.ArcKind:
			cmds = append(cmds, PathCommand{Kind: ArcTo, Rx: s.Rx, Ry: s.Ry, Phi: s.Phi, LargeArc: s.LargeArc, Sweep: s.Sweep, X: s.P1.X, Y: s.P1.Y})
		}
		cur = s.P1
	}
	return cmds
}

func closeEnough(a, b geom.Vector, eps float64) bool {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx+dy*dy <= eps*eps
}
