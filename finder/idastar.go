package finder

import (
	"math"

	"github.com/voxpath/voxpath/grid"
	"github.com/voxpath/voxpath/heuristic"
)

// IDAStar is iterative-deepening A*: a depth-first search bounded by an
// f-cost cutoff, restarted from the start node with the cutoff raised to
// the smallest f value that exceeded it in the previous round. It keeps
// no open list — memory stays O(path length) — at the price of
// re-exploring earlier work, so operation counts run much higher than
// A*'s on the same input. The bounded search does no transposition
// pruning — a node left behind by one branch is re-expanded by the
// next — but it never steps back onto the path currently being
// extended: cycles cost extra without reaching anything new, and with
// them the deepening would never terminate on unreachable targets.
type IDAStar struct {
	common
}

// NewIDAStar constructs an IDA* finder. Heuristic defaults match A*
// (Manhattan without diagonals, Octile otherwise); node weights are
// ignored. While a search runs, Node.RetainCount/Tested mark the cells
// held by the active recursion branch.
func NewIDAStar(opts ...Option) *IDAStar {
	c := newCommon(false, opts)
	if c.opts.Heuristic == nil {
		if c.opts.DiagonalMovement == grid.DiagonalNever {
			c.opts.Heuristic = heuristic.Manhattan
		} else {
			c.opts.Heuristic = heuristic.Octile
		}
	}

	return &IDAStar{common: c}
}

// FindPath searches from start to end on m. It returns the path (start
// and end inclusive) and the number of recursive visits spent. An empty
// path with a nil error means no path exists.
func (f *IDAStar) FindPath(start, end *grid.Node, m Map) (Path, int, error) {
	if err := validateEndpoints(start, end, m); err != nil {
		return nil, 0, err
	}

	r := f.newRun(m)

	// The heuristic estimate is a lower bound on any path cost, so no
	// cheaper route can exist below this initial cutoff.
	cutoff := r.applyHeuristic(start, end)

	for {
		path := make(Path, 0, 16)

		t, found, err := r.searchBounded(start, 0, cutoff, &path, 0, end)
		if err != nil {
			return nil, r.runs, err
		}
		if found {
			return path, r.runs, nil
		}
		if math.IsInf(t, 1) {
			// No f value exceeded the cutoff: the reachable space is
			// exhausted and no path exists.
			return nil, r.runs, nil
		}

		// Deepen: t is the closest f that overshot the previous bound.
		cutoff = t
	}
}

// searchBounded is the recursive bounded DFS. It returns the minimum f
// value that exceeded the cutoff (the next iteration's bound), or
// found=true once the end node was reached — in which case path holds
// the route, filled in from the leaf upward during unwinding.
func (r *run) searchBounded(node *grid.Node, g, cutoff float64, path *Path, depth int, end *grid.Node) (float64, bool, error) {
	r.runs++
	if err := r.keepRunning(); err != nil {
		return 0, false, err
	}

	f := g + r.applyHeuristic(node, end)*r.opts.Weight
	if f > cutoff {
		// Searched too deep for this iteration.
		return f, false, nil
	}

	if node == end {
		setPathAt(path, depth, node)
		return 0, true, nil
	}

	// Hold the node while its branch is alive. Descendants skip held
	// nodes: stepping back onto the current path only closes a cycle, and
	// with strictly positive step costs a cycle is never cheaper.
	node.RetainCount++
	node.Tested = true

	minT := math.Inf(1)
	for _, nb := range r.m.Neighbors(node, r.opts.DiagonalMovement) {
		if nb.RetainCount > 0 {
			continue
		}

		t, found, err := r.searchBounded(nb, g+r.m.CalcCost(node, nb, r.weighted), cutoff, path, depth+1, end)
		if err != nil {
			return 0, false, err
		}
		if found {
			setPathAt(path, depth, node)
			return 0, true, nil
		}

		if t < minT {
			minT = t
		}
	}

	node.RetainCount--
	if node.RetainCount == 0 {
		node.Tested = false
	}

	return minT, false, nil
}

// setPathAt stores node at the given recursion depth, growing the path
// slice as the unwinding proceeds from the leaf toward the root.
func setPathAt(path *Path, depth int, node *grid.Node) {
	for len(*path) <= depth {
		*path = append(*path, nil)
	}
	(*path)[depth] = node
}
