// Package annotate implements the annotation sink collaborator: the
// linker never decides how a warning about an unlinkable entity surfaces,
// it only ever calls Sink's methods. This mirrors depending on
// golang.org/x/exp/slog rather than printing directly, and the
// counter-based implementation below follows the same shape as a
// dedicated internal metrics package wrapping prometheus.
package annotate

// Sink receives notice of every linking decision worth surfacing.
// The linker calls these from whichever goroutine is running it
// (LinkAllStationsToGraph is a sequential loop), and the split-time mutex
// only guards graph mutation, not annotation; a Sink shared between
// several linkers must therefore be safe for concurrent use.
type Sink interface {
	// StopUnlinked fires when a transit stop has no candidate edge within
	// its search radius at all.
	StopUnlinked(label string)

	// StopLinkedTooFar fires when a stop only found a candidate edge
	// beyond the "too far" warning threshold, using the closest
	// candidate's own distance, not a max or average over the cluster.
	StopLinkedTooFar(label string, meters float64)

	// BikeRentalStationUnlinked and BikeParkUnlinked mirror StopUnlinked
	// for the other two permanent point-entity kinds.
	BikeRentalStationUnlinked(label string)
	BikeParkUnlinked(label string)
}

// Multi fans every call out to each sink in order, the same "compose
// small sinks" shape an io.Writer-backed log handler uses, generalized
// from one writer to any number of Sinks.
type Multi []Sink

func (self Multi) StopUnlinked(label string) {
	for _, s := range self {
		s.StopUnlinked(label)
	}
}

func (self Multi) StopLinkedTooFar(label string, meters float64) {
	for _, s := range self {
		s.StopLinkedTooFar(label, meters)
	}
}

func (self Multi) BikeRentalStationUnlinked(label string) {
	for _, s := range self {
		s.BikeRentalStationUnlinked(label)
	}
}

func (self Multi) BikeParkUnlinked(label string) {
	for _, s := range self {
		s.BikeParkUnlinked(label)
	}
}
