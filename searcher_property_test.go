package jps3d

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// walkSegment steps from a to b one unit cube at a time along a straight
// line, adapted from the 3-D Bresenham stepper in
// udisondev-la2go/internal/game/geo/bresenham.go. Every JPS segment's
// deltas are, by construction, each either zero or the same magnitude (an
// axis, face-diagonal, or volume-diagonal direction), so a constant
// per-axis sign step suffices — no error-term accumulation is needed the
// way a general-slope line requires it.
func walkSegment(a, b Position) []Position {
	dx, dy, dz := sign(b.X-a.X), sign(b.Y-a.Y), sign(b.Z-a.Z)
	steps := int32(0)
	for _, d := range []int32{abs32(b.X - a.X), abs32(b.Y - a.Y), abs32(b.Z - a.Z)} {
		if d > steps {
			steps = d
		}
	}

	out := make([]Position, 0, steps+1)
	cur := a
	out = append(out, cur)
	for cur != b {
		cur = Position{X: cur.X + dx, Y: cur.Y + dy, Z: cur.Z + dz}
		out = append(out, cur)
	}
	return out
}

// assertSegmentCollisionFree verifies Property 1 (spec.md §8): the cells
// between two consecutive jump points are all passable.
func assertSegmentCollisionFree(t *testing.T, g Grid, a, b Position) {
	t.Helper()
	for _, p := range walkSegment(a, b) {
		assert.True(t, g.Passable(p.X, p.Y, p.Z), "blocked cell %v on segment %v -> %v", p, a, b)
	}
}

func TestPathSegmentsAreCollisionFree(t *testing.T) {
	g := NewArrayGrid(6, 6, 6)
	g.SetPassable(3, 3, 3, false)
	s := newTestSearcher(g, Always)

	path := s.FindPath(context.Background(), Position{0, 0, 0}, Position{5, 5, 5})
	require.NotEmpty(t, path)

	for i := 0; i+1 < len(path); i++ {
		assertSegmentCollisionFree(t, g, path[i], path[i+1])
	}
}

func TestPathSegmentsCollisionFreeWithMultipleObstacles(t *testing.T) {
	g := NewArrayGrid(8, 8, 1)
	for x := int32(0); x < 8; x++ {
		if x != 4 {
			g.SetPassable(x, 4, 0, false)
		}
	}
	s := newTestSearcher(g, AtLeastOnePassable)

	path := s.FindPath(context.Background(), Position{0, 0, 0}, Position{7, 7, 0})
	require.NotEmpty(t, path)

	for i := 0; i+1 < len(path); i++ {
		assertSegmentCollisionFree(t, g, path[i], path[i+1])
	}
}

// Property 7 (partial, observable form): for every jump point on the
// returned path, the summed segment costs from the start are no less than
// the straight-line lower bound from the start.
func TestHeuristicAdmissibleLowerBound(t *testing.T) {
	g := NewArrayGrid(6, 6, 6)
	s := newTestSearcher(g, Always)

	path := s.FindPath(context.Background(), Position{0, 0, 0}, Position{5, 5, 5})
	require.NotEmpty(t, path)

	g0 := int32(0)
	for i := 0; i+1 < len(path); i++ {
		g0 += euclidean(path[i], path[i+1])
		assert.GreaterOrEqual(t, g0, euclidean(path[0], path[i+1]))
	}
}
