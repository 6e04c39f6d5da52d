package svgpath

import (
	"strings"

	"github.com/tdewolff/pathbool/geom"
	tstrconv "github.com/tdewolff/strconv"
)

// FormatPathData renders segs as SVG path-data syntax, one absolute
// command per segment plus any implicit moves ToCommands inserts between
// disjoint subpaths.
func FormatPathData(segs []geom.Segment, eps float64) string {
	var b strings.Builder
	for _, c := range ToCommands(segs, eps) {
		switch c.Kind {
		case MoveTo:
			b.WriteByte('M')
			writeNums(&b, c.X, c.Y)
		case LineTo:
			b.WriteByte('L')
			writeNums(&b, c.X, c.Y)
		case QuadTo:
			b.WriteByte('Q')
			writeNums(&b, c.CX1, c.CY1, c.X, c.Y)
		case CubeTo:
			b.WriteByte('C')
			writeNums(&b, c.CX1, c.CY1, c.CX2, c.CY2, c.X, c.Y)
		case ArcTo:
			b.WriteByte('A')
			writeNums(&b, c.Rx, c.Ry, c.Phi*180.0/3.141592653589793)
			writeFlag(&b, c.LargeArc)
			writeFlag(&b, c.Sweep)
			writeNums(&b, c.X, c.Y)
		case ClosePath:
			b.WriteByte('Z')
		}
	}
	return b.String()
}

func writeNums(b *strings.Builder, nums ...float64) {
	for _, n := range nums {
		b.WriteByte(' ')
		b.WriteString(ftos(n))
	}
}

func writeFlag(b *strings.Builder, v bool) {
	b.WriteByte(' ')
	if v {
		b.WriteByte('1')
	} else {
		b.WriteByte('0')
	}
}

// ftos matches the teacher's own path-serialization precision: five
// significant digits in the shortest representation that round-trips.
func ftos(f float64) string {
	b, _ := tstrconv.AppendFloat(nil, f, 5)
	return string(b)
}
