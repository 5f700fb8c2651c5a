package finder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxpath/voxpath/finder"
	"github.com/voxpath/voxpath/grid"
)

// TestBiAStar_TrivialEndpoints covers the degenerate searches.
func TestBiAStar_TrivialEndpoints(t *testing.T) {
	g := mustGrid(t, openMatrix(3, 3, 1))
	start := nodeAt(t, g, 0, 0, 0)

	path, runs, err := finder.NewBiAStar().FindPath(start, start, g)
	require.NoError(t, err)
	assert.Equal(t, finder.Path{start}, path)
	assert.Zero(t, runs)

	g.Cleanup()
	next := nodeAt(t, g, 1, 0, 0)
	path, _, err = finder.NewBiAStar().FindPath(start, next, g)
	require.NoError(t, err)
	assert.Equal(t, [][3]int{{0, 0, 0}, {1, 0, 0}}, path.Coordinates())
}

// TestBiAStar_OptimalMeeting verifies the search does not stop at the
// first frontier contact: on seeded random grids the combined route must
// cost exactly what Dijkstra pays.
func TestBiAStar_OptimalMeeting(t *testing.T) {
	const side = 5

	for seed := int64(1); seed <= 8; seed++ {
		rng := rand.New(rand.NewSource(seed))
		m := openMatrix(side, side, side)
		for x := 0; x < side; x++ {
			for y := 0; y < side; y++ {
				for z := 0; z < side; z++ {
					if rng.Float64() < 0.25 {
						m[x][y][z] = 0
					}
				}
			}
		}
		m[0][0][0] = 1
		m[side-1][side-1][side-1] = 1

		g := mustGrid(t, m)
		start := nodeAt(t, g, 0, 0, 0)
		end := nodeAt(t, g, side-1, side-1, side-1)
		dm := grid.DiagonalIfAtMostOneObstacle

		ref, _, err := finder.NewDijkstra(finder.WithDiagonalMovement(dm)).FindPath(start, end, g)
		require.NoError(t, err)

		g.Cleanup()
		got, _, err := finder.NewBiAStar(finder.WithDiagonalMovement(dm)).FindPath(start, end, g)
		require.NoError(t, err)

		if len(ref) == 0 {
			assert.Emptyf(t, got, "seed %d: Bi-A* found a path where Dijkstra found none", seed)
			continue
		}
		require.NotEmptyf(t, got, "seed %d: Bi-A* missed a path Dijkstra found", seed)
		assert.InDeltaf(t, ref.Cost(g, true), got.Cost(g, true), 1e-9, "seed %d: meeting point is suboptimal", seed)
		assertValidPath(t, g, got, dm, start, end)
	}
}

// TestBiAStar_NoPath verifies both frontiers exhausting yields an empty
// path and no error.
func TestBiAStar_NoPath(t *testing.T) {
	g := mustGrid(t, block(openMatrix(3, 1, 1), [3]int{1, 0, 0}))
	start := nodeAt(t, g, 0, 0, 0)
	end := nodeAt(t, g, 2, 0, 0)

	path, _, err := finder.NewBiAStar().FindPath(start, end, g)
	assert.NoError(t, err)
	assert.Empty(t, path)
}
