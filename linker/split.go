package linker

import (
	"fmt"

	"github.com/ttpr0/streetlink/geo"
	"github.com/ttpr0/streetlink/graph"
)

// linkToEdge decides whether vertex snaps onto one of edge's existing
// endpoints or requires an actual split. Mirrors linkToEdge(Vertex,
// StreetEdge, double, RoutingRequest, boolean) including its three
// endpoint-snap special cases, each guarded by endpointSnapEpsilon so
// that load order never affects where a point snaps.
func (self *Linker) linkToEdge(vertex graph.VertexID, edgeID graph.EdgeID, xscale float64, opts graph.RoutingOptions, split SplitMode) {
	e := self.graph.Edge(edgeID)
	v := self.graph.Vertex(vertex)

	transformed := geo.ProjectLineString(e.Geometry, xscale)
	point := geo.Project(v.Coord, xscale)
	loc := geo.ProjectToLineString(point, transformed)

	n := len(e.Geometry)
	switch {
	case loc.SegmentIndex == 0 && loc.SegmentFraction < endpointSnapEpsilon:
		self.makeLinkEdges(vertex, e.From, split)
		return
	case loc.SegmentIndex == n-1:
		self.makeLinkEdges(vertex, e.To, split)
		return
	case loc.SegmentIndex == n-2 && loc.SegmentFraction > 1-endpointSnapEpsilon:
		self.makeLinkEdges(vertex, e.To, split)
		return
	}

	// This panics with graph.TrivialPathError if opts forbids splitting
	// this edge — only reachable from origin/destination linking, where
	// options is non-zero; destructive linkAll calls always pass the
	// zero RoutingOptions, whose nil CanSplitEdge hook never rejects.
	graph.CheckSplit(opts, edgeID)

	temporarySplit := split == NonDestructive
	endVertex := false
	if v.Kind == graph.TemporaryStreetLocationKind {
		endVertex = v.EndVertex
	}

	v0 := self.split(edgeID, loc, temporarySplit, endVertex, split)
	self.makeLinkEdges(vertex, v0, split)
}

// split cuts edgeID at loc, producing a new splitter vertex, and wires
// the resulting half-edges in according to splitMode. Mirrors the
// private split(StreetEdge, LinearLocation, boolean, boolean, boolean)
// method.
func (self *Linker) split(edgeID graph.EdgeID, loc geo.LinearLocation, temporarySplit bool, endVertex bool, splitMode SplitMode) graph.VertexID {
	e := self.graph.Edge(edgeID)

	kind := graph.SplitterVertexKind
	if temporarySplit {
		kind = graph.TemporarySplitterVertexKind
	}

	splitCoord := geo.CoordAt(e.Geometry, loc)
	vID := self.graph.AddVertex(graph.Vertex{
		Kind:                 kind,
		Label:                fmt.Sprintf("split from edge %d", edgeID),
		Coord:                splitCoord,
		WheelchairAccessible: e.WheelchairAccessible,
		EndVertex:            endVertex,
		SplitFromEdge:        edgeID,
	})

	elevAtSplit := geo.ElevationAt(e.Elevation, loc)
	saveInGraph := splitMode == Destructive
	edge1, edge2 := self.graph.SplitEdge(edgeID, vID, loc, elevAtSplit, saveInGraph)

	if splitMode == Destructive {
		// The index write and the adjacency removal of the retired edge
		// are the only two things this lock protects — not the rest of
		// linking, which can run unsynchronized.
		self.splitMu.Lock()
		self.edgeIndex.Insert(geo.LineStringEnvelope(self.graph.Edge(edge1).Geometry), edge1)
		self.edgeIndex.Insert(geo.LineStringEnvelope(self.graph.Edge(edge2).Geometry), edge2)
		// no need to remove the original edge from the index: IsInGraph
		// filters it out wherever it comes out of a query.
		self.graph.RemoveIncoming(e.To, edgeID)
		self.graph.RemoveOutgoing(e.From, edgeID)
		self.splitMu.Unlock()
	}

	return vID
}
