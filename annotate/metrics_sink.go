package annotate

import "github.com/prometheus/client_golang/prometheus"

// MetricsSink counts each annotation kind using Counter/CounterVec
// collectors registered via prometheus.MustRegister in a constructor
// function rather than an init, since a module has no business
// registering global collectors for every graph it builds.
type MetricsSink struct {
	unlinked  *prometheus.CounterVec
	tooFar    prometheus.Counter
	tooFarSum prometheus.Histogram
}

// NewMetricsSink creates and registers the sink's collectors against reg.
// Passing prometheus.DefaultRegisterer registers against the implicit
// global registry; a dedicated *prometheus.Registry is preferred when
// more than one Graph/linker is alive in the same process, since
// MustRegister panics on duplicate registration.
func NewMetricsSink(reg prometheus.Registerer) *MetricsSink {
	s := &MetricsSink{
		unlinked: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "streetlink_unlinked_total",
			Help: "Number of point entities that could not be linked to the street graph, by kind.",
		}, []string{"kind"}),
		tooFar: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "streetlink_linked_too_far_total",
			Help: "Number of stops linked to an edge beyond the too-far warning threshold.",
		}),
		tooFarSum: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "streetlink_linked_too_far_meters",
			Help:    "Distance in meters of stops linked beyond the too-far warning threshold.",
			Buckets: prometheus.ExponentialBuckets(10, 2, 10),
		}),
	}
	reg.MustRegister(s.unlinked, s.tooFar, s.tooFarSum)
	return s
}

func (self *MetricsSink) StopUnlinked(label string) {
	self.unlinked.WithLabelValues("stop").Inc()
}

func (self *MetricsSink) StopLinkedTooFar(label string, meters float64) {
	self.tooFar.Inc()
	self.tooFarSum.Observe(meters)
}

func (self *MetricsSink) BikeRentalStationUnlinked(label string) {
	self.unlinked.WithLabelValues("bike_rental_station").Inc()
}

func (self *MetricsSink) BikeParkUnlinked(label string) {
	self.unlinked.WithLabelValues("bike_park").Inc()
}
