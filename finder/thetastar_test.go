package finder_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxpath/voxpath/finder"
	"github.com/voxpath/voxpath/grid"
)

// assertSightPath checks a Theta* result: correct endpoints and an
// unobstructed straight segment between every consecutive waypoint pair.
func assertSightPath(t *testing.T, g *grid.Grid, p finder.Path, start, end *grid.Node) {
	t.Helper()
	require.NotEmpty(t, p)
	assert.Same(t, start, p[0])
	assert.Same(t, end, p[len(p)-1])
	for i := 1; i < len(p); i++ {
		assert.Truef(t, g.LineOfSight(p[i-1], p[i]),
			"segment %v -> %v is obstructed", p[i-1].Coords(), p[i].Coords())
	}
}

// TestThetaStar_OpenGridIsOneSegment verifies an unobstructed goal is
// reached in a single straight segment.
func TestThetaStar_OpenGridIsOneSegment(t *testing.T) {
	g := mustGrid(t, openMatrix(10, 10, 1))
	start := nodeAt(t, g, 0, 0, 0)
	end := nodeAt(t, g, 9, 9, 0)

	path, _, err := finder.NewThetaStar().FindPath(start, end, g)
	require.NoError(t, err)

	assert.Len(t, path, 2)
	assert.InDelta(t, 9*math.Sqrt2, path.Cost(g, false), 1e-9)
}

// TestThetaStar_CutsLatticeCorners verifies the any-angle route around a
// wall uses fewer waypoints than lattice A* and never costs more.
func TestThetaStar_CutsLatticeCorners(t *testing.T) {
	// A wall at x=3 with a gap at the top forces both searches around.
	g := mustGrid(t, block(openMatrix(7, 7, 1),
		[3]int{3, 0, 0}, [3]int{3, 1, 0}, [3]int{3, 2, 0}, [3]int{3, 3, 0}, [3]int{3, 4, 0}, [3]int{3, 5, 0}))
	start := nodeAt(t, g, 0, 0, 0)
	end := nodeAt(t, g, 6, 0, 0)

	ref, _, err := finder.NewAStar(finder.WithDiagonalMovement(grid.DiagonalAlways)).FindPath(start, end, g)
	require.NoError(t, err)
	require.NotEmpty(t, ref)

	g.Cleanup()
	got, _, err := finder.NewThetaStar().FindPath(start, end, g)
	require.NoError(t, err)

	assert.Less(t, len(got), len(ref))
	assert.LessOrEqual(t, got.Cost(g, false), ref.Cost(g, false)+1e-9)
	assertSightPath(t, g, got, start, end)

	// The densified route is a legal lattice path again.
	dense := grid.ExpandPath(got.Coordinates())
	assert.GreaterOrEqual(t, len(dense), len(got))
	assert.Equal(t, got.Coordinates()[0], dense[0])
	assert.Equal(t, got.Coordinates()[len(got)-1], dense[len(dense)-1])
}

// TestThetaStar_NoPath verifies an unreachable goal yields an empty path
// and no error.
func TestThetaStar_NoPath(t *testing.T) {
	g := mustGrid(t, block(openMatrix(3, 1, 1), [3]int{1, 0, 0}))
	start := nodeAt(t, g, 0, 0, 0)
	end := nodeAt(t, g, 2, 0, 0)

	path, _, err := finder.NewThetaStar().FindPath(start, end, g)
	assert.NoError(t, err)
	assert.Empty(t, path)
}
