package finder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxpath/voxpath/finder"
	"github.com/voxpath/voxpath/grid"
)

// TestBreadthFirst_FewestMoves verifies the level-order search returns a
// fewest-moves path on unit grids, with and without obstacles.
func TestBreadthFirst_FewestMoves(t *testing.T) {
	g := mustGrid(t, openMatrix(4, 4, 4))
	start := nodeAt(t, g, 0, 0, 0)
	end := nodeAt(t, g, 3, 3, 3)

	path, _, err := finder.NewBreadthFirst().FindPath(start, end, g)
	require.NoError(t, err)
	// Manhattan distance 9 means 9 face moves, 10 nodes.
	assert.Len(t, path, 10)
	assertValidPath(t, g, path, grid.DiagonalNever, start, end)

	g.Cleanup()
	// A wall with one gap forces a detour; the detour is still minimal.
	walled := mustGrid(t, block(openMatrix(5, 3, 1),
		[3]int{2, 0, 0}, [3]int{2, 1, 0}))
	wStart := nodeAt(t, walled, 0, 0, 0)
	wEnd := nodeAt(t, walled, 4, 0, 0)

	path, _, err = finder.NewBreadthFirst().FindPath(wStart, wEnd, walled)
	require.NoError(t, err)
	assert.Len(t, path, 9) // up to y=2, across, back down
	assertValidPath(t, walled, path, grid.DiagonalNever, wStart, wEnd)
}

// TestBreadthFirst_MatchesAStarLength cross-checks move counts against A*
// with the Manhattan heuristic on a fixed obstacle layout.
func TestBreadthFirst_MatchesAStarLength(t *testing.T) {
	g := mustGrid(t, block(openMatrix(6, 6, 2),
		[3]int{2, 2, 0}, [3]int{2, 3, 0}, [3]int{3, 2, 0}, [3]int{3, 3, 0},
		[3]int{2, 2, 1}, [3]int{2, 3, 1}, [3]int{3, 2, 1}, [3]int{3, 3, 1}))
	start := nodeAt(t, g, 0, 0, 0)
	end := nodeAt(t, g, 5, 5, 1)

	bfs, _, err := finder.NewBreadthFirst().FindPath(start, end, g)
	require.NoError(t, err)
	require.NotEmpty(t, bfs)

	g.Cleanup()
	ref, _, err := finder.NewAStar().FindPath(start, end, g)
	require.NoError(t, err)

	assert.Len(t, bfs, len(ref))
}

// TestBreadthFirst_NoPath verifies frontier exhaustion is not an error.
func TestBreadthFirst_NoPath(t *testing.T) {
	g := mustGrid(t, block(openMatrix(3, 1, 1), [3]int{1, 0, 0}))
	start := nodeAt(t, g, 0, 0, 0)
	end := nodeAt(t, g, 2, 0, 0)

	path, runs, err := finder.NewBreadthFirst().FindPath(start, end, g)
	assert.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, 1, runs) // only the start node ever surfaced
}
