package geo

import (
	"math"
	"testing"
)

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func TestXScaleAtEquatorIsOne(t *testing.T) {
	if !almostEqual(XScale(0), 1.0, 1e-9) {
		t.Fatalf("expected XScale(0) == 1, got %v", XScale(0))
	}
}

func TestDistancePointPoint(t *testing.T) {
	d := DistancePointPoint(NewCoord(0, 0), NewCoord(3, 4))
	if !almostEqual(d, 5.0, 1e-9) {
		t.Fatalf("expected distance 5, got %v", d)
	}
}

func TestDistancePointSegmentMidpoint(t *testing.T) {
	d, frac := DistancePointSegment(NewCoord(5, 1), NewCoord(0, 0), NewCoord(10, 0))
	if !almostEqual(d, 1.0, 1e-9) {
		t.Fatalf("expected perpendicular distance 1, got %v", d)
	}
	if !almostEqual(frac, 0.5, 1e-9) {
		t.Fatalf("expected fraction 0.5, got %v", frac)
	}
}

func TestDistancePointSegmentClampsToEndpoints(t *testing.T) {
	_, frac := DistancePointSegment(NewCoord(-5, 0), NewCoord(0, 0), NewCoord(10, 0))
	if frac != 0 {
		t.Fatalf("expected fraction clamped to 0, got %v", frac)
	}
	_, frac = DistancePointSegment(NewCoord(15, 0), NewCoord(0, 0), NewCoord(10, 0))
	if frac != 1 {
		t.Fatalf("expected fraction clamped to 1, got %v", frac)
	}
}

func TestProjectToLineStringPicksClosestSegment(t *testing.T) {
	ls := LineString{NewCoord(0, 0), NewCoord(10, 0), NewCoord(10, 10)}
	loc := ProjectToLineString(NewCoord(10, 5), ls)
	if loc.SegmentIndex != 1 {
		t.Fatalf("expected segment index 1, got %d", loc.SegmentIndex)
	}
	if !almostEqual(loc.SegmentFraction, 0.5, 1e-9) {
		t.Fatalf("expected fraction 0.5, got %v", loc.SegmentFraction)
	}
}

func TestCoordAtInterpolates(t *testing.T) {
	ls := LineString{NewCoord(0, 0), NewCoord(10, 0)}
	c := CoordAt(ls, LinearLocation{SegmentIndex: 0, SegmentFraction: 0.25})
	if !almostEqual(c[0], 2.5, 1e-9) || !almostEqual(c[1], 0, 1e-9) {
		t.Fatalf("expected (2.5, 0), got %v", c)
	}
}

func TestElevationAtInterpolates(t *testing.T) {
	elev := []float64{100, 200}
	got := ElevationAt(elev, LinearLocation{SegmentIndex: 0, SegmentFraction: 0.5})
	if !almostEqual(got, 150, 1e-9) {
		t.Fatalf("expected elevation 150, got %v", got)
	}
}

func TestElevationAtNilReturnsZero(t *testing.T) {
	if ElevationAt(nil, LinearLocation{}) != 0 {
		t.Fatalf("expected 0 for nil elevation profile")
	}
}

func TestMetersDegreesRoundTrip(t *testing.T) {
	meters := 1234.5
	deg := MetersToDegrees(meters)
	back := DegreesLatitudeToMeters(deg)
	if !almostEqual(back, meters, 1e-6) {
		t.Fatalf("round trip mismatch: %v != %v", back, meters)
	}
}

func TestEnvelopeIntersects(t *testing.T) {
	a := NewEnvelope(NewCoord(0, 0)).ExpandBy(1, 1)
	b := NewEnvelope(NewCoord(1.5, 1.5)).ExpandBy(1, 1)
	c := NewEnvelope(NewCoord(10, 10)).ExpandBy(1, 1)
	if !a.Intersects(b) {
		t.Fatalf("expected overlapping envelopes to intersect")
	}
	if a.Intersects(c) {
		t.Fatalf("expected far envelopes to not intersect")
	}
}
