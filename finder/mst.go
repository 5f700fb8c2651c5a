package finder

import (
	"fmt"

	"github.com/voxpath/voxpath/grid"
	"github.com/voxpath/voxpath/heuristic"
)

// MinimumSpanningTree grows a spanning structure over every cell
// reachable from a root, attaching the cheapest open node first (h ≡ 0,
// so the open list orders by accumulated cost g). The output is a tree,
// not a point-to-point route: each spanned node's Parent pointer is its
// tree edge, giving exactly len(tree)-1 edges with no cycles — useful for
// coverage and connectivity analysis.
type MinimumSpanningTree struct {
	common
}

// NewMinimumSpanningTree constructs an MST finder. Any heuristic passed
// via WithHeuristic is ignored; growth is ordered by cost alone.
func NewMinimumSpanningTree(opts ...Option) *MinimumSpanningTree {
	c := newCommon(true, opts)
	c.opts.Heuristic = heuristic.Null

	return &MinimumSpanningTree{common: c}
}

// Tree returns every node reachable from start in attachment order,
// along with the number of iterations spent. The root comes first and is
// the only node with a nil Parent.
func (f *MinimumSpanningTree) Tree(start *grid.Node, m Map) ([]*grid.Node, int, error) {
	if err := validateRoot(start, m); err != nil {
		return nil, 0, err
	}

	var tree []*grid.Node
	runs, err := f.grow(start, m, func(n *grid.Node) bool {
		tree = append(tree, n)
		return false
	})
	if err != nil {
		return nil, runs, err
	}

	return tree, runs, nil
}

// FindPath grows the tree from start until end is attached, then follows
// the parent chain — the original point-to-point use of the spanning
// iteration. An empty path with a nil error means end is unreachable.
func (f *MinimumSpanningTree) FindPath(start, end *grid.Node, m Map) (Path, int, error) {
	if err := validateEndpoints(start, end, m); err != nil {
		return nil, 0, err
	}

	reached := false
	runs, err := f.grow(start, m, func(n *grid.Node) bool {
		reached = n == end
		return reached
	})
	if err != nil {
		return nil, runs, err
	}
	if !reached {
		return nil, runs, nil
	}

	return backtrace(end), runs, nil
}

// grow runs the spanning loop, invoking visit for every node as it is
// attached; visit returning true stops the growth early.
func (f *MinimumSpanningTree) grow(start *grid.Node, m Map, visit func(*grid.Node) bool) (int, error) {
	r := f.newRun(m)

	start.G = 0
	start.F = 0
	start.Opened = openedByStart

	open := newOpenList()
	open.push(start)

	for open.Len() > 0 {
		r.runs++
		if err := r.keepRunning(); err != nil {
			return r.runs, err
		}

		node := open.popNode()
		node.Closed = true
		if visit(node) {
			return r.runs, nil
		}

		for _, nb := range r.m.Neighbors(node, f.opts.DiagonalMovement) {
			if nb.Closed {
				continue
			}
			// start doubles as the heuristic target; h ≡ 0 never reads it.
			r.processNode(nb, node, start, open, openedByStart)
		}
	}

	return r.runs, nil
}

// validateRoot checks the inputs Tree can be called with.
func validateRoot(start *grid.Node, m Map) error {
	if m == nil {
		return ErrNilMap
	}
	if start == nil {
		return ErrNilNode
	}
	if !start.Walkable {
		return fmt.Errorf("%w: root (%d,%d,%d)", ErrUnwalkableEndpoint, start.X, start.Y, start.Z)
	}

	return nil
}
