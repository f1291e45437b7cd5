package linker

import "sort"

// bestByEpsilon implements the deterministic epsilon-clustering ranker:
// sort candidates by distance, then keep the longest prefix where each
// consecutive gap stays under epsilon. This is the direct translation of
// the original's
//
//	int i = 0;
//	do {
//	    bestEdges.add(candidateEdges.get(i++));
//	} while (i < candidateEdges.size() &&
//	    distances.get(i) - distances.get(i - 1) < EPSILON);
//
// sort.SliceStable matches the original's reliance on a stable sort
// (Collections.sort is guaranteed stable) so that candidates tied on
// distance keep whatever order the spatial index query produced them in.
// That order does not change the result: every tied candidate within
// epsilon of the first is kept regardless of order, and the
// StopLinkedTooFar check reads only the first candidate's distance, which
// exactly tied candidates share.
func bestByEpsilon[T any](candidates []T, distance func(T) float64, epsilonDeg float64) []T {
	if len(candidates) == 0 {
		return nil
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return distance(candidates[i]) < distance(candidates[j])
	})

	best := make([]T, 0, len(candidates))
	best = append(best, candidates[0])
	for i := 1; i < len(candidates); i++ {
		if distance(candidates[i])-distance(candidates[i-1]) < epsilonDeg {
			best = append(best, candidates[i])
		} else {
			break
		}
	}
	return best
}
