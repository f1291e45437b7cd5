package graph

// RoutingOptions is the small collaborator the linker consults while
// entering an origin/destination into the graph. It plays the role of
// OTP's RoutingRequest in SimpleStreetSplitter#linkOriginDestination.
type RoutingOptions struct {
	Modes TraverseModeSet

	// ParkAndRide and KissAndRide demote a CAR-capable end vertex back to
	// WALK, matching the original's
	//   if (endVertex && (options.parkAndRide || options.kissAndRide)) { link WALK }
	// branch.
	ParkAndRide bool
	KissAndRide bool

	// CanSplitEdge is consulted once per candidate edge, immediately
	// before a destructive or non-destructive split is actually
	// performed (never before an endpoint snap, which needs no split at
	// all). Returning false causes the linker to panic with
	// TrivialPathError, matching the original's
	// `options.canSplitEdge(edge)` guard, which OTP uses to reject
	// routing requests whose origin and destination would collapse onto
	// the same edge. A nil hook is treated as "always splittable".
	CanSplitEdge func(e EdgeID) bool
}

func (self RoutingOptions) canSplit(e EdgeID) bool {
	if self.CanSplitEdge == nil {
		return true
	}
	return self.CanSplitEdge(e)
}

// TrivialPathError signals that linking an origin/destination would
// require a split the caller's RoutingOptions.CanSplitEdge rejected.
// The original's canSplitEdge throws a (checked) TrivialPathException for
// exactly this condition; since the linker's entry points return only a
// vertex, with no error channel, this is surfaced as a panic the caller is
// expected to recover, the same way graph.Graph's ownership-invariant
// panics are never expected to be handled inline.
type TrivialPathError struct {
	Edge EdgeID
}

func (self TrivialPathError) Error() string {
	return "trivial path: origin and destination split the same edge"
}

// CheckSplit panics with TrivialPathError if opts forbids splitting e.
func CheckSplit(opts RoutingOptions, e EdgeID) {
	if !opts.canSplit(e) {
		panic(TrivialPathError{Edge: e})
	}
}
