// Package quadtree implements the depth-limited, fixed-capacity spatial
// index used throughout the arrangement pipeline for near-linear candidate
// pruning (spec §4.2).
package quadtree

import "github.com/tdewolff/pathbool/geom"

const defaultDepth = 8

type entry struct {
	box   geom.AABB
	value int
}

// Tree is a quadtree over axis-aligned bounding boxes. Each node holds up
// to capacity (box, value) pairs; on overflow, if it still has depth
// budget, it subdivides into four children and every subsequent insertion
// is duplicated into each child whose box overlaps the inserted box. A
// value may therefore be stored more than once; Query and QueryLine
// deduplicate results.
type Tree struct {
	bounds   geom.AABB
	capacity int
	maxDepth int

	entries  []entry
	children *[4]*Tree // nil until this node subdivides
}

// New creates a quadtree covering bounds, with room for capacity entries
// per node before subdividing, to a depth budget of maxDepth. Per spec
// §4.2, capacity is 16 for general insertions and 8 for the
// intersection-phase tree; maxDepth is 8 for both.
func New(bounds geom.AABB, capacity int) *Tree {
	return &Tree{bounds: bounds, capacity: capacity, maxDepth: defaultDepth}
}

// NewWithDepth is New with an explicit depth budget, for tests that want to
// force early subdivision.
func NewWithDepth(bounds geom.AABB, capacity, maxDepth int) *Tree {
	return &Tree{bounds: bounds, capacity: capacity, maxDepth: maxDepth}
}

// Insert adds value keyed by box.
func (t *Tree) Insert(box geom.AABB, value int) {
	t.insert(box, value, 0)
}

func (t *Tree) insert(box geom.AABB, value int, depth int) {
	if t.children != nil {
		for _, c := range t.children {
			if c.bounds.Overlaps(box) {
				c.insert(box, value, depth+1)
			}
		}
		return
	}

	t.entries = append(t.entries, entry{box, value})
	if len(t.entries) <= t.capacity || depth >= t.maxDepth {
		return
	}
	t.subdivide(depth)
}

func (t *Tree) subdivide(depth int) {
	midX := (t.bounds.Left + t.bounds.Right) / 2
	midY := (t.bounds.Top + t.bounds.Bottom) / 2
	quadrants := [4]geom.AABB{
		{Left: t.bounds.Left, Top: t.bounds.Top, Right: midX, Bottom: midY},         // top-left
		{Left: midX, Top: t.bounds.Top, Right: t.bounds.Right, Bottom: midY},        // top-right
		{Left: t.bounds.Left, Top: midY, Right: midX, Bottom: t.bounds.Bottom},      // bottom-left
		{Left: midX, Top: midY, Right: t.bounds.Right, Bottom: t.bounds.Bottom},     // bottom-right
	}
	var children [4]*Tree
	for i, q := range quadrants {
		children[i] = &Tree{bounds: q, capacity: t.capacity, maxDepth: t.maxDepth}
	}
	t.children = &children

	entries := t.entries
	t.entries = nil
	for _, e := range entries {
		for _, c := range t.children {
			if c.bounds.Overlaps(e.box) {
				c.insert(e.box, e.value, depth+1)
			}
		}
	}
}

// Query returns every value whose stored box overlaps box, deduplicated.
func (t *Tree) Query(box geom.AABB) []int {
	seen := map[int]struct{}{}
	var out []int
	t.query(box, seen, &out)
	return out
}

func (t *Tree) query(box geom.AABB, seen map[int]struct{}, out *[]int) {
	if !t.bounds.Overlaps(box) {
		return
	}
	if t.children != nil {
		for _, c := range t.children {
			c.query(box, seen, out)
		}
		return
	}
	for _, e := range t.entries {
		if !e.box.Overlaps(box) {
			continue
		}
		if _, ok := seen[e.value]; ok {
			continue
		}
		seen[e.value] = struct{}{}
		*out = append(*out, e.value)
	}
}

// QueryLine returns every value whose stored box the segment from a to b
// crosses, per Cohen-Sutherland clipping against each stored box.
func (t *Tree) QueryLine(a, b geom.Vector) []int {
	seen := map[int]struct{}{}
	var out []int
	lineBox := geom.EmptyAABB()
	lineBox = lineBox.Union(geom.AABB{
		Left: minF(a.X, b.X), Right: maxF(a.X, b.X),
		Top: minF(a.Y, b.Y), Bottom: maxF(a.Y, b.Y),
	})
	t.queryLine(a, b, lineBox, seen, &out)
	return out
}

func (t *Tree) queryLine(a, b geom.Vector, lineBox geom.AABB, seen map[int]struct{}, out *[]int) {
	if !t.bounds.Overlaps(lineBox) {
		return
	}
	if t.children != nil {
		for _, c := range t.children {
			c.queryLine(a, b, lineBox, seen, out)
		}
		return
	}
	for _, e := range t.entries {
		if _, ok := seen[e.value]; ok {
			continue
		}
		if !geom.ClipLineAABB(a, b, e.box) {
			continue
		}
		seen[e.value] = struct{}{}
		*out = append(*out, e.value)
	}
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
