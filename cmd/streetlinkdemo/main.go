// Command streetlinkdemo is a small runnable example wiring the street
// graph, spatial index, annotation sinks and linker together end to end.
// It loads a tiny synthetic graph (no OSM/GTFS import — that parsing is a
// host graph-build orchestrator's job, outside this module's scope),
// links every transit stop to it destructively, then non-destructively
// links a sample origin/destination pair, printing what happened.
//
// Structurally this is a plain function body with no framework around
// it: godotenv for local overrides, a config.Read call, and a custom
// slog handler.
package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/exp/slog"

	"github.com/ttpr0/streetlink/annotate"
	"github.com/ttpr0/streetlink/config"
	"github.com/ttpr0/streetlink/geo"
	"github.com/ttpr0/streetlink/graph"
	"github.com/ttpr0/streetlink/linker"
)

func main() {
	_ = godotenv.Load(".env")

	cfgPath := "./config.yaml"
	if v := os.Getenv("STREETLINK_CONFIG"); v != "" {
		cfgPath = v
	}

	var cfg config.Config
	if _, err := os.Stat(cfgPath); err == nil {
		cfg = config.Read(cfgPath)
	} else {
		cfg = config.Config{LogLevel: config.Info}
	}

	log := slog.New(NewLogHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel.SlogLevel()}))
	slog.SetDefault(log)

	g, stops := buildSampleGraph()

	var sink annotate.Sink = annotate.NewLoggingSink(log)
	if cfg.Metrics.Enabled {
		metricsSink := annotate.NewMetricsSink(prometheus.DefaultRegisterer)
		sink = annotate.Multi{sink, metricsSink}
		addr := cfg.Metrics.Addr
		if addr == "" {
			addr = ":9102"
		}
		go func() {
			http.Handle("/metrics", promhttp.Handler())
			log.Error("metrics server exited", "error", http.ListenAndServe(addr, nil))
		}()
	}

	l := linker.New(g, sink, log)
	l.LinkAllStationsToGraph()

	for _, stop := range stops {
		v := g.Vertex(stop)
		fmt.Printf("stop %q now has %d outgoing edges\n", v.Label, len(v.Outgoing))
	}

	opts := graph.RoutingOptions{Modes: graph.NewTraverseModeSet(graph.Walk)}
	origin := l.LinkOriginDestination(linker.Location{Name: "Home", Coord: geo.NewCoord(7.0049, 51.0003)}, opts, false)
	dest := l.LinkOriginDestination(linker.Location{Name: "Work", Coord: geo.NewCoord(7.0091, 51.0002)}, opts, true)

	fmt.Printf("origin vertex %q temporary=%v\n", g.Vertex(origin).Label, g.Vertex(origin).Temporary)
	fmt.Printf("destination vertex %q temporary=%v\n", g.Vertex(dest).Label, g.Vertex(dest).Temporary)
}

// buildSampleGraph constructs a tiny street network: three street
// vertices along one straight road, plus two transit stops: one about
// 30m off the road, and one tens of kilometers away that cannot be linked.
func buildSampleGraph() (*graph.Graph, []graph.VertexID) {
	g := graph.NewGraph(16)

	a := g.AddVertex(graph.Vertex{Kind: graph.StreetVertexKind, Label: "A", Coord: geo.NewCoord(7.000, 51.000)})
	b := g.AddVertex(graph.Vertex{Kind: graph.StreetVertexKind, Label: "B", Coord: geo.NewCoord(7.005, 51.000)})
	c := g.AddVertex(graph.Vertex{Kind: graph.StreetVertexKind, Label: "C", Coord: geo.NewCoord(7.010, 51.000)})

	modes := graph.NewTraverseModeSet(graph.Walk, graph.Bicycle, graph.Car)
	g.AddPermanentEdge(graph.Edge{
		Kind: graph.StreetEdgeKind, From: a, To: b, Modes: modes,
		Geometry: geo.LineString{geo.NewCoord(7.000, 51.000), geo.NewCoord(7.005, 51.000)},
	})
	g.AddPermanentEdge(graph.Edge{
		Kind: graph.StreetEdgeKind, From: b, To: c, Modes: modes,
		Geometry: geo.LineString{geo.NewCoord(7.005, 51.000), geo.NewCoord(7.010, 51.000)},
	})

	stop1 := g.AddVertex(graph.Vertex{Kind: graph.TransitStopKind, Label: "stop-near-ab", Coord: geo.NewCoord(7.0025, 51.0003)})
	stop2 := g.AddVertex(graph.Vertex{Kind: graph.TransitStopKind, Label: "stop-far-away", Coord: geo.NewCoord(7.2, 51.2)})

	return g, []graph.VertexID{stop1, stop2}
}
