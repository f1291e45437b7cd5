// Package linker implements the street-network linking subsystem:
// projection and distance (delegated to package geo), spatial lookup
// (delegated to package spatialindex), candidate ranking (ranker.go),
// edge splitting (split.go), link edge factories (link_edges.go), the
// linking orchestrator (this file), and origin/destination linking
// (origin_destination.go). It is grounded throughout on OpenTripPlanner's
// org.opentripplanner.graph_builder.linking.SimpleStreetSplitter, adapted
// to Go's idiom: an arena graph with integer ids instead of object
// references, tagged-union dispatch instead of instanceof chains, and
// explicit error/panic signaling instead of checked exceptions.
package linker

import (
	"sync"

	"github.com/ttpr0/streetlink/annotate"
	"github.com/ttpr0/streetlink/geo"
	"github.com/ttpr0/streetlink/graph"
	"github.com/ttpr0/streetlink/spatialindex"
	"golang.org/x/exp/slog"
)

// Linker is the street-network linker. Only one Linker should be active
// on a given *graph.Graph at a time — the same constraint the original
// SimpleStreetSplitter documents on itself ("NOTE: Only one
// SimpleStreetSplitter should be active on a graph at any given time").
type Linker struct {
	graph *graph.Graph

	// edgeIndex is this Linker's private spatial index over every
	// StreetEdgeKind edge. splitMu guards the narrow window where a
	// destructive split inserts the two new half-edges into edgeIndex and
	// removes the original from the graph's adjacency — see split.go; the
	// mutex protects only that pair of operations, not the whole linking
	// call.
	edgeIndex *spatialindex.Index[graph.EdgeID]
	splitMu   sync.Mutex

	// stopIndex is optional: only origin/destination linking falls back to
	// it, and only when no street edge was found at all.
	stopIndex *spatialindex.Index[graph.VertexID]

	sink annotate.Sink
	log  *slog.Logger
}

// New constructs a Linker that builds its own private edge index from
// every StreetEdgeKind edge currently in g. Mirrors the no-arg
// constructor path of SimpleStreetSplitter(Graph), which builds its own
// HashGridSpatialIndex when none is supplied.
func New(g *graph.Graph, sink annotate.Sink, log *slog.Logger) *Linker {
	idx := spatialindex.New[graph.EdgeID]()
	for i := 0; i < g.EdgeCount(); i++ {
		id := graph.EdgeID(i)
		e := g.Edge(id)
		if e.Kind != graph.StreetEdgeKind || e.Temporary {
			continue
		}
		idx.Insert(geo.LineStringEnvelope(e.Geometry), id)
	}
	return &Linker{graph: g, edgeIndex: idx, sink: sink, log: log}
}

// NewWithIndexes accepts externally-built indexes, mirroring the
// SimpleStreetSplitter(Graph, HashGridSpatialIndex, SpatialIndex)
// constructor: callers that already maintain an edge index elsewhere
// (e.g. a host graph-build orchestrator) can hand it in instead of
// paying to rebuild it, and a transit stop index enables the
// origin/destination stop-fallback path.
func NewWithIndexes(g *graph.Graph, edgeIndex *spatialindex.Index[graph.EdgeID], stopIndex *spatialindex.Index[graph.VertexID], sink annotate.Sink, log *slog.Logger) *Linker {
	return &Linker{graph: g, edgeIndex: edgeIndex, stopIndex: stopIndex, sink: sink, log: log}
}

// LinkAllStationsToGraph links every transit stop, bike-rental station,
// and bike-park vertex currently in the graph to its closest walkable
// edge, destructively. Grounded on linkAllStationsToGraph(), generalized
// to iterate all graph vertices and dispatch inline on kind rather than
// requiring three separate caller-maintained lists.
func (self *Linker) LinkAllStationsToGraph() {
	n := self.graph.VertexCount()
	for i := 0; i < n; i++ {
		id := graph.VertexID(i)
		v := self.graph.Vertex(id)
		switch v.Kind {
		case graph.TransitStopKind, graph.BikeRentalStationKind, graph.BikeParkKind:
		default:
			continue
		}
		if self.LinkToClosestWalkableEdge(id, Destructive) {
			continue
		}
		switch v.Kind {
		case graph.TransitStopKind:
			self.sink.StopUnlinked(v.Label)
		case graph.BikeRentalStationKind:
			self.sink.BikeRentalStationUnlinked(v.Label)
		case graph.BikeParkKind:
			self.sink.BikeParkUnlinked(v.Label)
		}
	}
}

// LinkToClosestWalkableEdge links vertex using TraverseMode WALK. Mirrors
// linkToClosestWalkableEdge(Vertex, boolean).
func (self *Linker) LinkToClosestWalkableEdge(vertex graph.VertexID, mode SplitMode) bool {
	return self.LinkToGraph(vertex, graph.Walk, graph.RoutingOptions{}, mode)
}

// LinkToGraph links vertex into the graph using traverseMode: rank
// candidate edges, then split or snap onto the best ones and wire link
// edges. Mirrors linkToGraph(Vertex, TraverseMode, RoutingRequest,
// boolean).
func (self *Linker) LinkToGraph(vertex graph.VertexID, mode graph.TraverseMode, opts graph.RoutingOptions, split SplitMode) bool {
	v := self.graph.Vertex(vertex)
	xscale := geo.XScale(geo.Lat(v.Coord))
	env := geo.NewEnvelope(v.Coord).ExpandBy(maxSearchRadiusDegrees/xscale, maxSearchRadiusDegrees)

	modes := graph.NewTraverseModeSet(mode)
	if mode == graph.Bicycle {
		modes = modes.With(graph.Walk)
	}

	type edgeCand struct {
		id   graph.EdgeID
		dist float64
	}
	var candidates []edgeCand
	for _, id := range self.edgeIndex.Query(env) {
		e := self.graph.Edge(id)
		if e.Kind != graph.StreetEdgeKind {
			continue
		}
		if !e.Modes.Intersects(modes) {
			continue
		}
		// only link to edges still in the graph — a destructive split
		// retires the original but never removes it from the spatial
		// index.
		if !self.graph.IsInGraph(id) {
			continue
		}
		candidates = append(candidates, edgeCand{id: id, dist: self.edgeDistance(v.Coord, e, xscale)})
	}

	best := bestByEpsilon(candidates, func(c edgeCand) float64 { return c.dist }, duplicateWayEpsilonDegrees)

	if len(best) == 0 || best[0].dist > maxSearchRadiusDegrees {
		// We only fall back to linking stops if we are searching for an
		// origin/destination (a stop index was supplied) — never during
		// a destructive link.
		if split == Destructive || self.stopIndex == nil {
			return false
		}
		self.log.Debug("no street edge was found", "vertex", v.Label)
		return self.linkToClosestStop(vertex, env, xscale, split)
	}

	for _, c := range best {
		self.linkToEdge(vertex, c.id, xscale, opts, split)
	}

	if v.Kind == graph.TransitStopKind {
		meters := geo.DegreesLatitudeToMeters(best[0].dist)
		if meters > WarningDistanceMeters {
			self.sink.StopLinkedTooFar(v.Label, meters)
		}
	}

	return true
}

func (self *Linker) linkToClosestStop(vertex graph.VertexID, env geo.Envelope, xscale float64, split SplitMode) bool {
	v := self.graph.Vertex(vertex)

	type stopCand struct {
		id   graph.VertexID
		dist float64
	}
	var candidates []stopCand
	for _, id := range self.stopIndex.Query(env) {
		stop := self.graph.Vertex(id)
		candidates = append(candidates, stopCand{id: id, dist: self.stopDistance(v.Coord, stop.Coord, xscale)})
	}

	best := bestByEpsilon(candidates, func(c stopCand) float64 { return c.dist }, duplicateWayEpsilonDegrees)
	if len(best) == 0 || best[0].dist > maxSearchRadiusDegrees {
		self.log.Debug("stops aren't close either", "vertex", v.Label)
		return false
	}

	for _, c := range best {
		stop := self.graph.Vertex(c.id)
		self.log.Debug("linking vertex to stop", "stop", stop.Label)
		self.makeTemporaryEdges(vertex, c.id, split)
	}
	return true
}

// edgeDistance is the projected distance from a point to an edge's
// geometry, in degrees of latitude. Mirrors the private static
// distance(Vertex, StreetEdge, double) overload.
func (self *Linker) edgeDistance(p geo.Coord, e *graph.Edge, xscale float64) float64 {
	projected := geo.Project(p, xscale)
	transformed := geo.ProjectLineString(e.Geometry, xscale)
	return geo.DistancePointLineString(projected, transformed)
}

// stopDistance is the projected distance between two points. Mirrors the
// private static distance(Vertex, Vertex, double) overload.
func (self *Linker) stopDistance(a, b geo.Coord, xscale float64) float64 {
	return geo.DistancePointPoint(geo.Project(a, xscale), geo.Project(b, xscale))
}
