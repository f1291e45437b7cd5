package linker

import "github.com/ttpr0/streetlink/graph"

// linkEdgeModes is the mode set every StreetTransitLink / StreetBikeRentalLink
// / StreetBikeParkLink / TemporaryFreeEdge permits. Link edges exist only to
// bridge a point entity onto the street network, so they never themselves
// restrict traversal beyond what the street edge on the other side allows.
var linkEdgeModes = graph.NewTraverseModeSet(graph.Walk, graph.Bicycle, graph.Car)

// makeLinkEdges dispatches on from's kind to build the appropriate link
// edges: a bidirectional pair for permanent point entities, a single
// directed TemporaryFreeEdge for a temporary street location. Mirrors makeLinkEdges(Vertex, StreetVertex, boolean),
// translating its instanceof chain into a switch over VertexKind.
func (self *Linker) makeLinkEdges(from graph.VertexID, to graph.VertexID, split SplitMode) {
	switch self.graph.Vertex(from).Kind {
	case graph.TemporaryStreetLocationKind:
		self.makeTemporaryEdges(from, to, split)
	case graph.TransitStopKind:
		self.makeTransitLinkEdges(from, to, split)
	case graph.BikeRentalStationKind:
		self.makeBikeRentalLinkEdges(from, to, split)
	case graph.BikeParkKind:
		self.makeBikeParkEdges(from, to, split)
	}
}

func (self *Linker) hasOutgoingTo(vertex graph.VertexID, kind graph.EdgeKind, to graph.VertexID) bool {
	for _, eid := range self.graph.Vertex(vertex).Outgoing {
		e := self.graph.Edge(eid)
		if e.Kind == kind && e.To == to {
			return true
		}
	}
	return false
}

// makeTemporaryEdges wires a single directed TemporaryFreeEdge between an
// origin/destination vertex and the vertex it was linked to, in the
// direction dictated by EndVertex. Mirrors
// makeTemporaryEdges(TemporaryStreetLocation, Vertex, boolean).
func (self *Linker) makeTemporaryEdges(from graph.VertexID, to graph.VertexID, split SplitMode) {
	if split == Destructive {
		panic("linker: destructive splitting used on temporary edges")
	}

	fromV := self.graph.Vertex(from)
	toV := self.graph.Vertex(to)
	if toV.Kind == graph.TemporarySplitterVertexKind {
		fromV.WheelchairAccessible = toV.WheelchairAccessible
	}

	if fromV.EndVertex {
		self.log.Debug("linking end vertex", "from", toV.Label, "to", fromV.Label)
		self.graph.AddTemporaryEdge(graph.Edge{Kind: graph.TemporaryFreeEdgeKind, From: to, To: from, Modes: linkEdgeModes})
	} else {
		self.log.Debug("linking start vertex", "from", fromV.Label, "to", toV.Label)
		self.graph.AddTemporaryEdge(graph.Edge{Kind: graph.TemporaryFreeEdgeKind, From: from, To: to, Modes: linkEdgeModes})
	}
}

// makeBikeParkEdges wires a bidirectional pair of StreetBikeParkLink
// edges, unless they already exist. Mirrors makeBikeParkEdges(BikeParkVertex,
// StreetVertex, boolean).
func (self *Linker) makeBikeParkEdges(from graph.VertexID, to graph.VertexID, split SplitMode) {
	if split != Destructive {
		panic("linker: bike park edges must be created with destructive splitting")
	}
	if self.hasOutgoingTo(from, graph.StreetBikeParkLinkKind, to) {
		return
	}
	self.graph.AddPermanentEdge(graph.Edge{Kind: graph.StreetBikeParkLinkKind, From: from, To: to, Modes: linkEdgeModes})
	self.graph.AddPermanentEdge(graph.Edge{Kind: graph.StreetBikeParkLinkKind, From: to, To: from, Modes: linkEdgeModes})
}

// makeTransitLinkEdges wires a bidirectional pair of StreetTransitLink
// edges, unless they already exist (which can happen when linking to
// duplicate ways sharing start/end vertices). Mirrors
// makeTransitLinkEdges(TransitStop, StreetVertex, boolean).
func (self *Linker) makeTransitLinkEdges(tstop graph.VertexID, to graph.VertexID, split SplitMode) {
	if split != Destructive {
		panic("linker: transit link edges must be created with destructive splitting")
	}
	if self.hasOutgoingTo(tstop, graph.StreetTransitLinkKind, to) {
		return
	}
	wheelchair := self.graph.Vertex(tstop).WheelchairAccessible
	e1 := graph.Edge{Kind: graph.StreetTransitLinkKind, From: tstop, To: to, Modes: linkEdgeModes, WheelchairAccessible: wheelchair}
	e2 := graph.Edge{Kind: graph.StreetTransitLinkKind, From: to, To: tstop, Modes: linkEdgeModes, WheelchairAccessible: wheelchair}
	self.graph.AddPermanentEdge(e1)
	self.graph.AddPermanentEdge(e2)
}

// makeBikeRentalLinkEdges wires a bidirectional pair of
// StreetBikeRentalLink edges, unless they already exist. Mirrors
// makeBikeRentalLinkEdges(BikeRentalStationVertex, StreetVertex, boolean).
func (self *Linker) makeBikeRentalLinkEdges(from graph.VertexID, to graph.VertexID, split SplitMode) {
	if split != Destructive {
		panic("linker: bike rental link edges must be created with destructive splitting")
	}
	if self.hasOutgoingTo(from, graph.StreetBikeRentalLinkKind, to) {
		return
	}
	self.graph.AddPermanentEdge(graph.Edge{Kind: graph.StreetBikeRentalLinkKind, From: from, To: to, Modes: linkEdgeModes})
	self.graph.AddPermanentEdge(graph.Edge{Kind: graph.StreetBikeRentalLinkKind, From: to, To: from, Modes: linkEdgeModes})
}
