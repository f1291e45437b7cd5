package linker

import "github.com/ttpr0/streetlink/geo"

// These mirror the constants in the original SimpleStreetSplitter
// exactly, kept as hardcoded values rather than configuration surface.
const (
	MaxSearchRadiusMeters     = 1000
	WarningDistanceMeters     = 20
	DuplicateWayEpsilonMeters = 0.001
)

// Destructive and NonDestructive name the two mutation regimes, in place
// of the original's bare boolean parameter.
type SplitMode bool

const (
	Destructive    SplitMode = true
	NonDestructive SplitMode = false
)

func (self SplitMode) String() string {
	if self {
		return "destructive"
	}
	return "non_destructive"
}

var maxSearchRadiusDegrees = geo.MetersToDegrees(MaxSearchRadiusMeters)
var duplicateWayEpsilonDegrees = geo.MetersToDegrees(DuplicateWayEpsilonMeters)

// endpointSnapEpsilon is the segment-fraction threshold under which a
// projected point is treated as landing exactly on an existing endpoint
// rather than warranting a new split vertex: a really tiny epsilon, so
// that the order entities are loaded in doesn't affect where they snap.
const endpointSnapEpsilon = 1e-8
