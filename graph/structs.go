package graph

import (
	"github.com/ttpr0/streetlink/geo"
)

// VertexID and EdgeID are arena indices: vertices and edges live in flat,
// append-only stores, adjacency is index lists, and back-references are
// never owners.
type VertexID int32
type EdgeID int32

const NoVertex VertexID = -1
const NoEdge EdgeID = -1

// Vertex is the single representation for every vertex variant. Which
// fields are meaningful is determined by Kind; this is a tagged-union
// shape in place of subclassing.
type Vertex struct {
	Kind  VertexKind
	Label string
	Coord geo.Coord

	Incoming []EdgeID
	Outgoing []EdgeID

	// Temporary is true for SplitterVertexKind's ephemeral twin
	// (TemporarySplitterVertexKind) and TemporaryStreetLocationKind; it is
	// the ownership tag adjacency mutations are checked against.
	Temporary bool

	// EndVertex marks a TemporarySplitterVertex/TemporaryStreetLocation as
	// the destination side of a routing request (vs. the origin side).
	// Meaningless on permanent vertices.
	EndVertex bool

	// WheelchairAccessible carries:
	//   - TransitStopKind: whether the stop has a wheelchair entrance
	//   - TemporarySplitterVertexKind: copied from the split edge
	//   - TemporaryStreetLocationKind: propagated from a linked splitter
	WheelchairAccessible bool

	// DisplayName is set on TemporaryStreetLocationKind ("Origin",
	// "Destination", or a caller-supplied name).
	DisplayName string

	// SplitFromEdge records which StreetEdge a splitter vertex was cut
	// from, used only for its debug label.
	SplitFromEdge EdgeID
}

// Edge is the single representation for every edge variant (StreetEdge
// and the LinkEdge variants).
type Edge struct {
	Kind EdgeKind
	From VertexID
	To   VertexID

	// Geometry is nil for link edges (StreetTransitLink, ...,
	// TemporaryFreeEdge); it is the polyline for StreetEdgeKind.
	Geometry geo.LineString

	// Elevation holds one sample per Geometry vertex, or nil if the edge
	// carries no elevation profile. Preserved across splits via
	// geo.ElevationAt instead of being discarded.
	Elevation []float64

	Modes                TraverseModeSet
	WheelchairAccessible bool

	// Temporary mirrors Vertex.Temporary: true for TemporaryFreeEdge and
	// for the two half-edges produced by a non-destructive split.
	Temporary bool
}
