package linker

import (
	"fmt"
	"sync/atomic"

	"github.com/ttpr0/streetlink/geo"
	"github.com/ttpr0/streetlink/graph"
)

// Location is the caller-supplied description of an origin or destination
// point, mirroring org.opentripplanner.common.model.GenericLocation as
// used by linkOriginDestination.
type Location struct {
	Name  string
	Coord geo.Coord
}

// temporaryLocationSeq replaces the original's UUID.randomUUID() label
// source: a process-wide counter is just as unique for the lifetime of a
// single linker process and keeps vertex labels legible in logs/tests.
var temporaryLocationSeq uint64

func nextTemporaryLocationLabel() string {
	n := atomic.AddUint64(&temporaryLocationSeq, 1)
	return fmt.Sprintf("temporary-location-%d", n)
}

// LinkOriginDestination creates and non-destructively links a temporary
// street location for one end of a routing request. endVertex selects the
// destination side (true) vs the origin side (false). Mirrors
// linkOriginDestination(GenericLocation, RoutingRequest, boolean),
// including its literal non-transit-mode precedence logic, deliberately
// preserved rather than "fixed": CAR wins whenever requested, regardless
// of whether WALK or BICYCLE are also set, unless this is the destination
// of a park-and-ride or kiss-and-ride trip, in which case it is demoted
// to WALK.
func (self *Linker) LinkOriginDestination(loc Location, opts graph.RoutingOptions, endVertex bool) graph.VertexID {
	if endVertex {
		self.log.Debug("finding end vertex", "location", loc.Name)
	} else {
		self.log.Debug("finding start vertex", "location", loc.Name)
	}

	name := loc.Name
	if name == "" {
		if endVertex {
			name = "Destination"
		} else {
			name = "Origin"
		}
	}

	vID := self.graph.AddVertex(graph.Vertex{
		Kind:        graph.TemporaryStreetLocationKind,
		Label:       nextTemporaryLocationLabel(),
		Coord:       loc.Coord,
		EndVertex:   endVertex,
		DisplayName: name,
	})

	mode := graph.Walk
	if opts.Modes.Has(graph.Car) {
		if endVertex && (opts.ParkAndRide || opts.KissAndRide) {
			mode = graph.Walk
		} else {
			mode = graph.Car
		}
	} else if opts.Modes.Has(graph.Walk) {
		mode = graph.Walk
	} else if opts.Modes.Has(graph.Bicycle) {
		mode = graph.Bicycle
	}

	if !self.LinkToGraph(vID, mode, opts, NonDestructive) {
		self.log.Warn(fmt.Sprintf("couldn't link %s", name))
	}
	return vID
}
