package finder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxpath/voxpath/finder"
	"github.com/voxpath/voxpath/grid"
)

// TestIDAStar_OptimalOnOpenGrid verifies the deepening search finds a
// fewest-moves route without any open list.
func TestIDAStar_OptimalOnOpenGrid(t *testing.T) {
	g := mustGrid(t, openMatrix(4, 4, 1))
	start := nodeAt(t, g, 0, 0, 0)
	end := nodeAt(t, g, 3, 3, 0)

	path, runs, err := finder.NewIDAStar().FindPath(start, end, g)
	require.NoError(t, err)

	assert.Len(t, path, 7) // Manhattan distance 6
	assert.Positive(t, runs)
	assertValidPath(t, g, path, grid.DiagonalNever, start, end)
}

// TestIDAStar_MatchesAStarCost verifies optimality against A* on a fixed
// obstacle layout that forces a detour.
func TestIDAStar_MatchesAStarCost(t *testing.T) {
	g := mustGrid(t, block(openMatrix(5, 5, 1),
		[3]int{2, 0, 0}, [3]int{2, 1, 0}, [3]int{2, 2, 0}, [3]int{2, 3, 0}))
	start := nodeAt(t, g, 0, 0, 0)
	end := nodeAt(t, g, 4, 0, 0)

	ref, _, err := finder.NewAStar().FindPath(start, end, g)
	require.NoError(t, err)
	require.NotEmpty(t, ref)

	g.Cleanup()
	got, _, err := finder.NewIDAStar().FindPath(start, end, g)
	require.NoError(t, err)
	require.NotEmpty(t, got)

	assert.InDelta(t, ref.Cost(g, false), got.Cost(g, false), 1e-9)
	assertValidPath(t, g, got, grid.DiagonalNever, start, end)
}

// TestIDAStar_NoPathTerminates verifies the deepening loop detects an
// unreachable goal instead of raising the cutoff forever through cycles.
func TestIDAStar_NoPathTerminates(t *testing.T) {
	// The goal sits in a sealed-off corner of an otherwise open grid full
	// of cycles.
	g := mustGrid(t, block(openMatrix(4, 4, 1),
		[3]int{2, 3, 0}, [3]int{3, 2, 0}, [3]int{2, 2, 0}))
	start := nodeAt(t, g, 0, 0, 0)
	end := nodeAt(t, g, 3, 3, 0)

	path, runs, err := finder.NewIDAStar().FindPath(start, end, g)

	assert.NoError(t, err)
	assert.Empty(t, path)
	assert.Positive(t, runs)

	// Every recursion mark must be released on the way out.
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			n := nodeAt(t, g, x, y, 0)
			assert.Zerof(t, n.RetainCount, "node %v still retained", n.Coords())
			assert.Falsef(t, n.Tested, "node %v still marked", n.Coords())
		}
	}
}

// TestIDAStar_HonorsMaxRuns verifies the per-visit counter trips the
// iteration bound inside the recursion.
func TestIDAStar_HonorsMaxRuns(t *testing.T) {
	g := mustGrid(t, openMatrix(6, 6, 6))
	start := nodeAt(t, g, 0, 0, 0)
	end := nodeAt(t, g, 5, 5, 5)

	f := finder.NewIDAStar(finder.WithMaxRuns(10))
	path, runs, err := f.FindPath(start, end, g)

	assert.ErrorIs(t, err, finder.ErrRunsExceeded)
	assert.Empty(t, path)
	assert.Equal(t, 10, runs)
}
