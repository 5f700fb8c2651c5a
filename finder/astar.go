package finder

import (
	"github.com/voxpath/voxpath/grid"
	"github.com/voxpath/voxpath/heuristic"
)

// AStar finds shortest paths by expanding nodes in order of
// f = g + h, where g is the accumulated cost from the start and h an
// admissible estimate of the remaining cost. With such an estimate the
// returned path is optimal.
//
// Complexity:
//
//   - Time:  O((V + E) log V) — every cell is closed at most once, every
//     relaxation costs one heap operation.
//   - Space: O(V) for the open list and per-node bookkeeping.
type AStar struct {
	common
}

// NewAStar constructs an A* finder. Without an explicit heuristic it
// picks Manhattan when diagonal movement is disabled and Octile
// otherwise — Manhattan overestimates diagonal shortcuts and would break
// admissibility once diagonals are allowed.
func NewAStar(opts ...Option) *AStar {
	c := newCommon(true, opts)
	if c.opts.Heuristic == nil {
		if c.opts.DiagonalMovement == grid.DiagonalNever {
			c.opts.Heuristic = heuristic.Manhattan
		} else {
			c.opts.Heuristic = heuristic.Octile
		}
	}

	return &AStar{common: c}
}

// FindPath searches from start to end on m. It returns the path (start
// and end inclusive) and the number of iterations spent. An empty path
// with a nil error means no path exists.
func (f *AStar) FindPath(start, end *grid.Node, m Map) (Path, int, error) {
	return f.findPath(start, end, m)
}
