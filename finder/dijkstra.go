package finder

import (
	"github.com/voxpath/voxpath/grid"
	"github.com/voxpath/voxpath/heuristic"
)

// Dijkstra finds shortest paths by expanding nodes in order of
// accumulated cost g alone: A* with the Null heuristic. Useful when no
// meaningful estimate to the goal exists, and as the optimality reference
// for the informed finders.
type Dijkstra struct {
	common
}

// NewDijkstra constructs a Dijkstra finder. Any heuristic passed via
// WithHeuristic is ignored — the algorithm is defined by h ≡ 0.
func NewDijkstra(opts ...Option) *Dijkstra {
	c := newCommon(true, opts)
	c.opts.Heuristic = heuristic.Null

	return &Dijkstra{common: c}
}

// FindPath searches from start to end on m. It returns the path (start
// and end inclusive) and the number of iterations spent. An empty path
// with a nil error means no path exists.
func (f *Dijkstra) FindPath(start, end *grid.Node, m Map) (Path, int, error) {
	return f.findPath(start, end, m)
}
