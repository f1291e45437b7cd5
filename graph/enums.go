package graph

//*******************************************
// vertex kinds: a tagged union keyed by an enum, replacing the original's
// subclass/instanceof dispatch
//*******************************************

type VertexKind uint8

const (
	StreetVertexKind VertexKind = iota
	SplitterVertexKind
	TemporarySplitterVertexKind
	TransitStopKind
	BikeRentalStationKind
	BikeParkKind
	TemporaryStreetLocationKind
)

func (self VertexKind) String() string {
	switch self {
	case StreetVertexKind:
		return "street_vertex"
	case SplitterVertexKind:
		return "splitter_vertex"
	case TemporarySplitterVertexKind:
		return "temporary_splitter_vertex"
	case TransitStopKind:
		return "transit_stop"
	case BikeRentalStationKind:
		return "bike_rental_station"
	case BikeParkKind:
		return "bike_park"
	case TemporaryStreetLocationKind:
		return "temporary_street_location"
	default:
		return "unknown"
	}
}

// IsTemporary reports whether vertices of this kind are always ephemeral
// (owned by a single routing request) rather than permanent (owned by the
// graph).
func (self VertexKind) IsTemporary() bool {
	switch self {
	case TemporarySplitterVertexKind, TemporaryStreetLocationKind:
		return true
	default:
		return false
	}
}

//*******************************************
// edge kinds
//*******************************************

type EdgeKind uint8

const (
	StreetEdgeKind EdgeKind = iota
	StreetTransitLinkKind
	StreetBikeRentalLinkKind
	StreetBikeParkLinkKind
	TemporaryFreeEdgeKind
)

func (self EdgeKind) String() string {
	switch self {
	case StreetEdgeKind:
		return "street_edge"
	case StreetTransitLinkKind:
		return "street_transit_link"
	case StreetBikeRentalLinkKind:
		return "street_bike_rental_link"
	case StreetBikeParkLinkKind:
		return "street_bike_park_link"
	case TemporaryFreeEdgeKind:
		return "temporary_free_edge"
	default:
		return "unknown"
	}
}

//*******************************************
// traverse modes
//*******************************************

// TraverseMode is one of the traversal modes {WALK, BICYCLE, CAR, TRANSIT}.
// It is a single-bit value; TraverseModeSet below combines several.
type TraverseMode uint8

const (
	Walk TraverseMode = 1 << iota
	Bicycle
	Car
	Transit
)

func (self TraverseMode) String() string {
	switch self {
	case Walk:
		return "walk"
	case Bicycle:
		return "bicycle"
	case Car:
		return "car"
	case Transit:
		return "transit"
	default:
		return "unknown"
	}
}

// TraverseModeSet is a small bitset of TraverseMode, matching OTP's
// TraverseModeSet used throughout original_source/SimpleStreetSplitter.java.
type TraverseModeSet uint8

func NewTraverseModeSet(modes ...TraverseMode) TraverseModeSet {
	var s TraverseModeSet
	for _, m := range modes {
		s |= TraverseModeSet(m)
	}
	return s
}

func (self TraverseModeSet) With(m TraverseMode) TraverseModeSet {
	return self | TraverseModeSet(m)
}

func (self TraverseModeSet) Has(m TraverseMode) bool {
	return self&TraverseModeSet(m) != 0
}

// Intersects reports whether self and other share at least one mode —
// the semantics StreetEdge.canTraverse(TraverseModeSet) uses in the
// original: an edge is a traversal candidate if it permits any mode the
// caller asked for.
func (self TraverseModeSet) Intersects(other TraverseModeSet) bool {
	return self&other != 0
}
