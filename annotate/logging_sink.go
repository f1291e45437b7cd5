package annotate

import "golang.org/x/exp/slog"

// LoggingSink writes each annotation as a structured log line, at the
// same level and call sites the original SimpleStreetSplitter uses
// (LOG.warn("Could not link {}", vertex) for unlinked entities, and a
// dedicated "stop is too far from the street network" warning reused
// here for StopLinkedTooFar).
type LoggingSink struct {
	log *slog.Logger
}

func NewLoggingSink(log *slog.Logger) *LoggingSink {
	return &LoggingSink{log: log}
}

func (self *LoggingSink) StopUnlinked(label string) {
	self.log.Warn("could not link stop to street network", "stop", label)
}

func (self *LoggingSink) StopLinkedTooFar(label string, meters float64) {
	self.log.Warn("stop is too far from the street network", "stop", label, "meters", meters)
}

func (self *LoggingSink) BikeRentalStationUnlinked(label string) {
	self.log.Warn("could not link bike rental station to street network", "station", label)
}

func (self *LoggingSink) BikeParkUnlinked(label string) {
	self.log.Warn("could not link bike park to street network", "bike_park", label)
}
