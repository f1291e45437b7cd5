// Package geo is the small geometry facility the linker is built against:
// coordinates, line strings, envelopes, equirectangular projection and
// linear referencing, built on top of github.com/paulmach/orb's coordinate
// types rather than reinventing them.
package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// Coord is a (longitude, latitude) pair in WGS84 degrees.
type Coord = orb.Point

// LineString is an ordered polyline, aliased directly to orb's type since
// orb is the wired dependency for this concern.
type LineString = orb.LineString

func NewCoord(lon, lat float64) Coord {
	return orb.Point{lon, lat}
}

func Lon(c Coord) float64 { return c[0] }
func Lat(c Coord) float64 { return c[1] }

// Envelope is an axis-aligned bounding box in the same frame as the
// coordinates it was built from (WGS84 degrees, or a projected frame).
type Envelope struct {
	MinX, MinY, MaxX, MaxY float64
}

// NewEnvelope returns the degenerate envelope containing exactly one point.
func NewEnvelope(c Coord) Envelope {
	return Envelope{MinX: c[0], MaxX: c[0], MinY: c[1], MaxY: c[1]}
}

// ExpandBy grows the envelope by dx in the X direction and dy in the Y
// direction, matching JTS's Envelope.expandBy(double, double) used by
// original_source/SimpleStreetSplitter.java.
func (e Envelope) ExpandBy(dx, dy float64) Envelope {
	return Envelope{
		MinX: e.MinX - dx,
		MaxX: e.MaxX + dx,
		MinY: e.MinY - dy,
		MaxY: e.MaxY + dy,
	}
}

func (e Envelope) Intersects(o Envelope) bool {
	if e.MaxX < o.MinX || o.MaxX < e.MinX {
		return false
	}
	if e.MaxY < o.MinY || o.MaxY < e.MinY {
		return false
	}
	return true
}

func LineStringEnvelope(ls LineString) Envelope {
	env := NewEnvelope(Coord(ls[0]))
	for _, c := range ls[1:] {
		if c[0] < env.MinX {
			env.MinX = c[0]
		}
		if c[0] > env.MaxX {
			env.MaxX = c[0]
		}
		if c[1] < env.MinY {
			env.MinY = c[1]
		}
		if c[1] > env.MaxY {
			env.MaxY = c[1]
		}
	}
	return env
}

//*******************************************
// equirectangular projection (C1)
//*******************************************

// XScale returns the local Equirectangular scale factor for a query
// latitude: cos(lat * pi/180). Multiplying a longitude by this value turns
// planar Euclidean distance in the projected frame into an approximation of
// true distance in degrees of latitude, valid for search radii of a few
// kilometers. This is deliberately not a great-circle distance: it is fast
// and monotonic, which the candidate ranker (C4) depends on for
// deterministic ordering.
func XScale(lat float64) float64 {
	return math.Cos(lat * math.Pi / 180)
}

// Project maps a coordinate into the local Equirectangular frame around the
// query latitude implied by xscale.
func Project(c Coord, xscale float64) Coord {
	return orb.Point{c[0] * xscale, c[1]}
}

// ProjectLineString projects every vertex of ls into the local frame.
func ProjectLineString(ls LineString, xscale float64) LineString {
	out := make(LineString, len(ls))
	for i, c := range ls {
		out[i] = Project(Coord(c), xscale)
	}
	return out
}

//*******************************************
// distance oracle (C2)
//*******************************************

// DistancePointPoint returns the Euclidean distance between two already
// projected points, in degrees of latitude.
func DistancePointPoint(a, b Coord) float64 {
	dx := a[0] - b[0]
	dy := a[1] - b[1]
	return math.Sqrt(dx*dx + dy*dy)
}

// DistancePointSegment returns the distance from point p to the segment
// [a,b], plus the fraction along [a,b] (in [0,1]) of the closest point.
func DistancePointSegment(p, a, b Coord) (dist float64, fraction float64) {
	vx, vy := b[0]-a[0], b[1]-a[1]
	segLenSq := vx*vx + vy*vy
	if segLenSq == 0 {
		return DistancePointPoint(p, a), 0
	}
	wx, wy := p[0]-a[0], p[1]-a[1]
	t := (wx*vx + wy*vy) / segLenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	proj := orb.Point{a[0] + t*vx, a[1] + t*vy}
	return DistancePointPoint(p, proj), t
}

// DistancePointLineString returns the minimum distance from p to any
// segment of ls. ls must already be in the same (projected) frame as p.
func DistancePointLineString(p Coord, ls LineString) float64 {
	best := math.Inf(1)
	for i := 0; i+1 < len(ls); i++ {
		d, _ := DistancePointSegment(p, Coord(ls[i]), Coord(ls[i+1]))
		if d < best {
			best = d
		}
	}
	return best
}

//*******************************************
// spherical <-> degree conversions
//*******************************************

// metersPerDegreeLatitude is the standard spherical-earth approximation
// used by OTP's SphericalDistanceLibrary (radius 6371000m).
const metersPerDegreeLatitude = 6371000.0 * math.Pi / 180.0

func MetersToDegrees(meters float64) float64 {
	return meters / metersPerDegreeLatitude
}

func DegreesLatitudeToMeters(degrees float64) float64 {
	return degrees * metersPerDegreeLatitude
}

//*******************************************
// linear referencing (C5)
//*******************************************

// LinearLocation identifies a point along a polyline as a segment index
// plus the fraction of the way along that segment, matching JTS's
// LinearLocation as used by original_source/SimpleStreetSplitter.java.
type LinearLocation struct {
	SegmentIndex    int
	SegmentFraction float64
}

// ProjectToLineString finds the LinearLocation on ls (in the same
// projected frame as p) closest to p. ls must have at least two points.
func ProjectToLineString(p Coord, ls LineString) LinearLocation {
	best := LinearLocation{SegmentIndex: 0, SegmentFraction: 0}
	bestDist := math.Inf(1)
	for i := 0; i+1 < len(ls); i++ {
		d, frac := DistancePointSegment(p, Coord(ls[i]), Coord(ls[i+1]))
		if d < bestDist {
			bestDist = d
			best = LinearLocation{SegmentIndex: i, SegmentFraction: frac}
		}
	}
	return best
}

// CoordAt resolves a LinearLocation against the *unprojected* geometry
// (the original, un-scaled coordinates) to find the actual split point.
func CoordAt(ls LineString, loc LinearLocation) Coord {
	i := loc.SegmentIndex
	a, b := Coord(ls[i]), Coord(ls[i+1])
	t := loc.SegmentFraction
	return orb.Point{
		a[0] + t*(b[0]-a[0]),
		a[1] + t*(b[1]-a[1]),
	}
}

// ElevationAt linearly interpolates an elevation profile (one sample per
// geometry vertex) at loc. The original's split primitive discards
// elevation outright; this module's edge splitter (linker's split) uses
// this helper to compute the elevation at the split point and hands it to
// graph.Graph.SplitEdge, so elevation is preserved across a split.
func ElevationAt(elevations []float64, loc LinearLocation) float64 {
	if elevations == nil {
		return 0
	}
	i := loc.SegmentIndex
	a, b := elevations[i], elevations[i+1]
	return a + loc.SegmentFraction*(b-a)
}
