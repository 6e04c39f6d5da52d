// Package arrange implements the planar-arrangement pipeline: splitting
// input segments at every pairwise and self intersection, snapping
// endpoints into a graph, contracting degree-2 chains, pruning dangling
// trees, building the dual (face) graph, nesting components, flagging
// faces against each input's fill rule, and extracting the boundary of a
// boolean combination of faces.
//
// Every stage is a pure function over pool-indexed handles (spec §9): no
// pointer cycles, no global state. Iteration is always in pool insertion
// order so results are reproducible run to run.
package arrange

import "github.com/tdewolff/pathbool/geom"

// Parent is the 2-bit set of which input path(s) a piece of geometry
// derives from (spec §3). Bit 0 is path A, bit 1 is path B; an edge shared
// by both inputs carries both bits.
type Parent uint8

const (
	ParentA Parent = 1 << 0
	ParentB Parent = 1 << 1
)

func (p Parent) HasA() bool { return p&ParentA != 0 }
func (p Parent) HasB() bool { return p&ParentB != 0 }
func (p Parent) Union(o Parent) Parent { return p | o }

// TaggedSegment is one input segment carrying its parent bit, the unit fed
// into PrepareEdges.
type TaggedSegment struct {
	Seg    geom.Segment
	Parent Parent
}

// VertexID and EdgeID index the vertex and edge pools of the major graph.
type VertexID int
type EdgeID int

const noEdge EdgeID = -1
const noVertex VertexID = -1

// MajorVertex is a point in the arrangement together with its outgoing
// directed edges, in insertion order.
type MajorVertex struct {
	Point    geom.Vector
	Outgoing []EdgeID
}

// MajorEdge is one directed half of a physical edge (spec §3). Every
// physical edge is represented by two twinned MajorEdges with opposite
// Reversed flags and reversed Start/End.
type MajorEdge struct {
	Seg      geom.Segment
	Parent   Parent
	Start    VertexID
	End      VertexID
	Reversed bool // false = forward (as stored), true = backward
	Twin     EdgeID
}

// MajorGraph is the vertex-exact planar arrangement built by
// BuildMajorGraph (stage 4).
type MajorGraph struct {
	Vertices []MajorVertex
	Edges    []MajorEdge
}

func (g *MajorGraph) degree(v VertexID) int {
	return len(g.Vertices[v].Outgoing)
}

// MinorEdgeID and MinorCycleID index the minor graph's edge and cycle
// lists.
type MinorEdgeID int
type MinorCycleID int

// MinorEdge is a maximal chain of segments between two branch (or leaf)
// vertices of the major graph (spec §3, §4.5).
type MinorEdge struct {
	Segments []geom.Segment
	Parent   Parent
	Start    VertexID
	End      VertexID
	Reversed bool
	Twin     MinorEdgeID
}

// MinorCycle is a standalone closed loop whose vertices are all degree 2
// (spec §3, §4.5): it never touches a branch vertex, so it has no Start/End
// in the vertex pool.
type MinorCycle struct {
	Segments []geom.Segment
	Parent   Parent
	Reversed bool
}

// MinorGraph is the chain-contracted graph built by BuildMinorGraph (stage
// 5). Outgoing mirrors MajorVertex.Outgoing but over minor edges, keyed by
// the (shared) VertexID space of the major graph's branch vertices.
type MinorGraph struct {
	Edges    []MinorEdge
	Cycles   []MinorCycle
	Outgoing map[VertexID][]MinorEdgeID

	// AngleAt[e] is the incidence angle of MinorEdge e at its Start vertex,
	// memoized by AngularOrder (stage 7).
	AngleAt []float64
}

// DualHalfEdgeID and FaceID index the dual graph's half-edge and face
// lists.
type DualHalfEdgeID int
type FaceID int

// DualHalfEdge is a directed boundary edge of exactly one face (spec §3).
type DualHalfEdge struct {
	Segments []geom.Segment
	Parent   Parent
	Face     FaceID
	Reversed bool
	Twin     DualHalfEdgeID

	// minorEdge/minorCyc identify which minor-graph object this
	// half-edge came from, used only to look up the twin and next-edge
	// relations during construction.
	fromCycle bool
	minorEdge MinorEdgeID
	minorCyc  MinorCycleID
	forward   bool // traversal direction relative to the minor edge/cycle
}

// Face is one boundary cycle of dual half-edges (spec §3). Flag's bit 0 is
// "inside A", bit 1 is "inside B", set by FlagFaces (stage 10).
type Face struct {
	IncidentEdges []DualHalfEdgeID
	Flag          uint8
	component     int
	isOuter       bool
}

// Component is a maximal set of faces connected by dual edges (spec §3).
type Component struct {
	Faces    []FaceID
	OuterFace FaceID
}

// NestingTree is a node of the containment forest (spec §3): Component is
// this node's connected component, and Children maps each non-outer face
// of that component to the forest of components nested inside it.
type NestingTree struct {
	Component int
	Children  map[FaceID][]*NestingTree
}

// Arrangement is the fully built pipeline state, threaded from stage to
// stage and consumed by Extract (stage 11).
type Arrangement struct {
	Major      *MajorGraph
	Minor      *MinorGraph
	DualEdges  []DualHalfEdge
	Faces      []Face
	Components []Component
	Roots      []*NestingTree
}
