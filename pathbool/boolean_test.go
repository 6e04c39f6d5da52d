package pathbool

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tdewolff/pathbool/svgpath"
)

func square(x0, y0, x1, y1 float64) Path {
	d := fmt.Sprintf("M%g %gL%g %gL%g %gL%g %gZ", x0, y0, x1, y0, x1, y1, x0, y1)
	segs, err := svgpath.ParsePathData(d)
	if err != nil {
		panic(err)
	}
	return Path(segs)
}

func TestPathBooleanDisjointUnion(t *testing.T) {
	a := square(0, 0, 1, 1)
	b := square(2, 2, 3, 3)
	out, err := PathBoolean(DefaultConfig(), a, NonZero, b, NonZero, Union)
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Len(t, out[0], len(a)+len(b))
}

func TestPathBooleanOverlappingSquares(t *testing.T) {
	a := square(0, 0, 2, 2)
	b := square(1, 1, 3, 3)

	union, err := PathBoolean(DefaultConfig(), a, NonZero, b, NonZero, Union)
	require.NoError(t, err)
	require.Len(t, union, 1)

	inter, err := PathBoolean(DefaultConfig(), a, NonZero, b, NonZero, Intersection)
	require.NoError(t, err)
	require.Len(t, inter, 1)
	box := Path(inter[0]).Bounds()
	require.InDelta(t, 1.0, box.Left, 1e-6)
	require.InDelta(t, 1.0, box.Top, 1e-6)
	require.InDelta(t, 2.0, box.Right, 1e-6)
	require.InDelta(t, 2.0, box.Bottom, 1e-6)

	diff, err := PathBoolean(DefaultConfig(), a, NonZero, b, NonZero, Difference)
	require.NoError(t, err)
	require.Len(t, diff, 1)

	excl, err := PathBoolean(DefaultConfig(), a, NonZero, b, NonZero, Exclusion)
	require.NoError(t, err)
	require.Len(t, excl, 1)
}

func TestPathBooleanFractureProducesBothFaces(t *testing.T) {
	a := square(0, 0, 2, 2)
	b := square(1, 0, 3, 2)
	out, err := PathBoolean(DefaultConfig(), a, NonZero, b, NonZero, Fracture)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(out), 2)
}

func TestPathReverse(t *testing.T) {
	a := square(0, 0, 1, 1)
	r := a.Reverse()
	require.Len(t, r, len(a))
	require.Equal(t, a[0].P0, r[len(r)-1].P1)
}

func TestPathBoundsEmpty(t *testing.T) {
	var p Path
	box := p.Bounds()
	require.True(t, box.IsEmpty())
}
