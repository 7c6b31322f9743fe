package generator

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/simplify"
)

// visvalingamIndices returns the indices of points retained by the
// Visvalingam-Whyatt algorithm at the given tolerance, treating the
// sequence as a planar polyline in (longitude, latitude). The first and
// last index are always retained and the result is ascending, so callers
// can rebuild a reduced segment while preserving per-point attributes and
// order. Sequences of two or fewer points are returned whole.
func visvalingamIndices(points []orb.Point, tolerance float64) []int {
	if len(points) <= 2 {
		return identityIndices(len(points))
	}

	line := make(orb.LineString, len(points))
	copy(line, points)
	reduced := simplify.VisvalingamThreshold(tolerance).LineString(line)

	// The reduced line is a subsequence of the input, so a greedy pass
	// recovers the original index of every surviving interior point. The
	// final point is anchored to the last input index explicitly: with
	// repeated coordinates (a track revisiting a spot) the greedy scan
	// could otherwise bind it to an earlier duplicate and drop the true
	// endpoint.
	last := len(points) - 1
	kept := make([]int, 0, len(reduced))
	next := 0
	for _, pt := range reduced[:len(reduced)-1] {
		for next < last && points[next] != pt {
			next++
		}
		if next == last {
			break
		}
		kept = append(kept, next)
		next++
	}
	kept = append(kept, last)
	return kept
}

func identityIndices(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}
