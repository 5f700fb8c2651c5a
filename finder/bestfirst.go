package finder

import (
	"github.com/voxpath/voxpath/grid"
	"github.com/voxpath/voxpath/heuristic"
)

// bestFirstScale blows the heuristic up until it dominates g in the
// f = g + h ordering, turning the shared skeleton into a greedy
// best-first search.
const bestFirstScale = 1e6

// BestFirst expands whichever open node looks closest to the goal,
// ignoring the cost already paid. Fast and memory-friendly, but the
// result is not guaranteed optimal; node weights are ignored.
type BestFirst struct {
	common
}

// NewBestFirst constructs a greedy best-first finder. The estimator
// defaults follow A* (Manhattan or Octile depending on the diagonal
// policy) before scaling.
func NewBestFirst(opts ...Option) *BestFirst {
	c := newCommon(false, opts)
	base := c.opts.Heuristic
	if base == nil {
		if c.opts.DiagonalMovement == grid.DiagonalNever {
			base = heuristic.Manhattan
		} else {
			base = heuristic.Octile
		}
	}
	c.opts.Heuristic = func(dx, dy, dz float64) float64 {
		return base(dx, dy, dz) * bestFirstScale
	}

	return &BestFirst{common: c}
}

// FindPath searches from start to end on m. It returns the path (start
// and end inclusive) and the number of iterations spent. An empty path
// with a nil error means no path exists.
func (f *BestFirst) FindPath(start, end *grid.Node, m Map) (Path, int, error) {
	return f.findPath(start, end, m)
}
