package jps3d

import "math"

// manhattan is the admissible lower bound used as h in f = g + h for
// 6-connected movement, matching original_source/Searcher.h's Manhattan.
func manhattan(a, b Position) int32 {
	return abs32(a.X-b.X) + abs32(a.Y-b.Y) + abs32(a.Z-b.Z)
}

// euclidean is the incremental step cost between a jump-point parent and
// child, matching original_source/Searcher.h's Euclidean (rounded, not
// truncated, unlike the original's unsigned(sqrtf(...)) truncation — spec.md
// §4.3 requires "round(sqrt(...))").
func euclidean(a, b Position) int32 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	dz := float64(a.Z - b.Z)
	return int32(math.Round(math.Sqrt(dx*dx + dy*dy + dz*dz)))
}
