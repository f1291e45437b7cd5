package graph

import (
	"github.com/ttpr0/streetlink/geo"
	. "github.com/ttpr0/streetlink/util"
)

//*******************************************
// street graph
//*******************************************

// Graph is the arena the linker builds against: vertices and edges are
// dense, integer-indexed, append-only stores (same append/List-backed
// shape as a contraction-hierarchy graph base, generalized from a single
// node/edge schema to the tagged vertex/edge variants this package needs,
// with per-vertex Incoming/Outgoing adjacency instead of a shared
// CH-oriented topology index, since the linker never needs shortcut-aware
// traversal).
//
// The graph exclusively owns permanent vertices/edges; temporary ones are
// appended to the same arena (so that EdgeID/VertexID stay simple integers
// end to end) but are expected to be discarded, along with their ids, at
// the end of the routing request that created them.
type Graph struct {
	vertices List[Vertex]
	edges    List[Edge]
}

func NewGraph(initCap int) *Graph {
	return &Graph{
		vertices: NewList[Vertex](initCap),
		edges:    NewList[Edge](initCap),
	}
}

func (self *Graph) VertexCount() int { return self.vertices.Length() }
func (self *Graph) EdgeCount() int   { return self.edges.Length() }

func (self *Graph) Vertex(id VertexID) *Vertex { return &self.vertices[id] }
func (self *Graph) Edge(id EdgeID) *Edge       { return &self.edges[id] }

func (self *Graph) Vertices() []Vertex { return self.vertices }
func (self *Graph) Edges() []Edge      { return self.edges }

// AddVertex appends a new vertex and returns its id. Ownership (permanent
// vs temporary) is implied by v.Kind.
func (self *Graph) AddVertex(v Vertex) VertexID {
	v.Temporary = v.Kind.IsTemporary()
	id := VertexID(self.vertices.Length())
	self.vertices.Add(v)
	return id
}

// addEdgeRaw appends an edge without touching any adjacency list; callers
// are responsible for linking it in via addOutgoing/addIncoming or
// linkTemporaryEdge.
func (self *Graph) addEdgeRaw(e Edge) EdgeID {
	id := EdgeID(self.edges.Length())
	self.edges.Add(e)
	return id
}

// AddPermanentEdge creates a fully-wired permanent edge and links it into
// both endpoints' adjacency. Panics if either endpoint is a temporary
// vertex.
func (self *Graph) AddPermanentEdge(e Edge) EdgeID {
	e.Temporary = false
	id := self.addEdgeRaw(e)
	self.addOutgoing(e.From, id)
	self.addIncoming(e.To, id)
	return id
}

// AddTemporaryEdge creates a temporary edge and links it into whichever
// endpoint(s) are themselves temporary, leaving permanent endpoints'
// adjacency untouched: temporary entities may reference permanent
// entities, but are never referenced by them.
func (self *Graph) AddTemporaryEdge(e Edge) EdgeID {
	e.Temporary = true
	id := self.addEdgeRaw(e)
	self.linkTemporaryEdge(id)
	return id
}

func (self *Graph) linkTemporaryEdge(id EdgeID) {
	e := self.edges[id]
	if self.vertices[e.From].Temporary {
		self.vertices[e.From].Outgoing = append(self.vertices[e.From].Outgoing, id)
	}
	if self.vertices[e.To].Temporary {
		self.vertices[e.To].Incoming = append(self.vertices[e.To].Incoming, id)
	}
}

func (self *Graph) addOutgoing(v VertexID, e EdgeID) {
	if self.vertices[v].Temporary != self.edges[e].Temporary {
		panic("graph: refusing to mix a temporary edge into a permanent vertex's adjacency (or vice versa)")
	}
	self.vertices[v].Outgoing = append(self.vertices[v].Outgoing, e)
}

func (self *Graph) addIncoming(v VertexID, e EdgeID) {
	if self.vertices[v].Temporary != self.edges[e].Temporary {
		panic("graph: refusing to mix a temporary edge into a permanent vertex's adjacency (or vice versa)")
	}
	self.vertices[v].Incoming = append(self.vertices[v].Incoming, e)
}

// RemoveIncoming removes e from v's incoming list, if present. Used by a
// destructive split to retire the original edge.
func (self *Graph) RemoveIncoming(v VertexID, e EdgeID) {
	self.vertices[v].Incoming = removeEdge(self.vertices[v].Incoming, e)
}

// RemoveOutgoing removes e from v's outgoing list, if present.
func (self *Graph) RemoveOutgoing(v VertexID, e EdgeID) {
	self.vertices[v].Outgoing = removeEdge(self.vertices[v].Outgoing, e)
}

func removeEdge(list []EdgeID, e EdgeID) []EdgeID {
	for i, id := range list {
		if id == e {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

// IsInGraph reports whether e is still listed as incoming on its to
// vertex. A spatial index may return edges that have since been split
// out; this is the single source of truth callers filter staleness
// against.
func (self *Graph) IsInGraph(e EdgeID) bool {
	edge := self.edges[e]
	for _, id := range self.vertices[edge.To].Incoming {
		if id == e {
			return true
		}
	}
	return false
}

// SplitEdge replaces the conceptual middle of `original` with vertex `at`,
// producing two half-edges edge1 (original.From -> at) and edge2
// (at -> original.To). saveInGraph selects whether the halves are wired
// into original's own endpoints (destructive splits: saveInGraph=true,
// `at` is permanent) or left reachable only through `at`'s own adjacency
// (non-destructive: saveInGraph=false, `at` is temporary). The caller is
// responsible for then removing `original` from the graph when
// destructive (RemoveIncoming/RemoveOutgoing) — SplitEdge itself never
// mutates `original`.
func (self *Graph) SplitEdge(original EdgeID, at VertexID, loc geo.LinearLocation, elevationAtSplit float64, saveInGraph bool) (EdgeID, EdgeID) {
	e := self.edges[original]
	i := loc.SegmentIndex
	splitCoord := geo.CoordAt(e.Geometry, loc)

	geom1 := make(geo.LineString, 0, i+2)
	geom1 = append(geom1, e.Geometry[:i+1]...)
	geom1 = append(geom1, splitCoord)

	geom2 := make(geo.LineString, 0, len(e.Geometry)-i+1)
	geom2 = append(geom2, splitCoord)
	geom2 = append(geom2, e.Geometry[i+1:]...)

	var elev1, elev2 []float64
	if e.Elevation != nil {
		elev1 = append(append([]float64{}, e.Elevation[:i+1]...), elevationAtSplit)
		elev2 = append([]float64{elevationAtSplit}, e.Elevation[i+1:]...)
	}

	temporary := !saveInGraph
	edge1 := Edge{
		Kind: StreetEdgeKind, From: e.From, To: at,
		Geometry: geom1, Elevation: elev1,
		Modes: e.Modes, WheelchairAccessible: e.WheelchairAccessible,
		Temporary: temporary,
	}
	edge2 := Edge{
		Kind: StreetEdgeKind, From: at, To: e.To,
		Geometry: geom2, Elevation: elev2,
		Modes: e.Modes, WheelchairAccessible: e.WheelchairAccessible,
		Temporary: temporary,
	}

	edge1ID := self.addEdgeRaw(edge1)
	edge2ID := self.addEdgeRaw(edge2)

	// `at` always sees both halves, regardless of saveInGraph: it is the
	// vertex these edges exist to reach.
	if temporary {
		self.linkTemporaryEdge(edge1ID)
		self.linkTemporaryEdge(edge2ID)
	} else {
		self.addIncoming(at, edge1ID)
		self.addOutgoing(at, edge2ID)
	}

	if saveInGraph {
		self.addOutgoing(e.From, edge1ID)
		self.addIncoming(e.To, edge2ID)
	}
	// else: original.From/original.To are permanent; a temporary
	// half-edge is never spliced into their adjacency.

	return edge1ID, edge2ID
}
