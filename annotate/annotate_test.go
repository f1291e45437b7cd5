package annotate

import (
	"bytes"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"golang.org/x/exp/slog"
)

func TestLoggingSinkStopUnlinked(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))
	sink := NewLoggingSink(log)

	sink.StopUnlinked("stop-1")

	if !strings.Contains(buf.String(), "stop-1") {
		t.Fatalf("expected log line to mention stop-1, got %q", buf.String())
	}
}

func TestLoggingSinkStopLinkedTooFar(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))
	sink := NewLoggingSink(log)

	sink.StopLinkedTooFar("stop-2", 123)

	out := buf.String()
	if !strings.Contains(out, "stop-2") || !strings.Contains(out, "123") {
		t.Fatalf("expected log line to mention stop-2 and distance, got %q", out)
	}
}

func TestMultiFansOutToEverySink(t *testing.T) {
	var buf1, buf2 bytes.Buffer
	sink1 := NewLoggingSink(slog.New(slog.NewTextHandler(&buf1, nil)))
	sink2 := NewLoggingSink(slog.New(slog.NewTextHandler(&buf2, nil)))

	multi := Multi{sink1, sink2}
	multi.BikeParkUnlinked("park-1")

	if !strings.Contains(buf1.String(), "park-1") {
		t.Fatalf("expected sink1 to receive the annotation")
	}
	if !strings.Contains(buf2.String(), "park-1") {
		t.Fatalf("expected sink2 to receive the annotation")
	}
}

func TestMetricsSinkCountsUnlinked(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink := NewMetricsSink(reg)

	sink.StopUnlinked("stop-1")
	sink.StopUnlinked("stop-2")
	sink.BikeParkUnlinked("park-1")

	metrics, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather failed: %v", err)
	}

	var stopCount, parkCount float64
	for _, mf := range metrics {
		if mf.GetName() != "streetlink_unlinked_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, l := range m.GetLabel() {
				if l.GetName() == "kind" {
					switch l.GetValue() {
					case "stop":
						stopCount = m.GetCounter().GetValue()
					case "bike_park":
						parkCount = m.GetCounter().GetValue()
					}
				}
			}
		}
	}

	if stopCount != 2 {
		t.Fatalf("expected stop count 2, got %v", stopCount)
	}
	if parkCount != 1 {
		t.Fatalf("expected bike park count 1, got %v", parkCount)
	}
}

func TestMetricsSinkTooFarHistogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink := NewMetricsSink(reg)

	sink.StopLinkedTooFar("stop-1", 55)

	metrics, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather failed: %v", err)
	}

	var found bool
	var hist *dto.Histogram
	for _, mf := range metrics {
		if mf.GetName() == "streetlink_linked_too_far_meters" {
			found = true
			hist = mf.GetMetric()[0].GetHistogram()
		}
	}
	if !found {
		t.Fatalf("expected the too-far histogram to be registered")
	}
	if hist.GetSampleCount() != 1 {
		t.Fatalf("expected one observation, got %d", hist.GetSampleCount())
	}
}
