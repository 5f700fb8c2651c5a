package finder

import (
	"github.com/voxpath/voxpath/grid"
)

// BreadthFirst explores the grid level by level through a FIFO frontier.
// No costs, no heuristic: on unit-cost grids without diagonals the result
// is a shortest path by move count; with weights it is merely a path.
//
// Complexity: O(V + E) time, O(V) memory.
type BreadthFirst struct {
	common
}

// NewBreadthFirst constructs a breadth-first finder.
func NewBreadthFirst(opts ...Option) *BreadthFirst {
	return &BreadthFirst{common: newCommon(false, opts)}
}

// FindPath searches from start to end on m. It returns the path (start
// and end inclusive) and the number of iterations spent. An empty path
// with a nil error means no path exists.
func (f *BreadthFirst) FindPath(start, end *grid.Node, m Map) (Path, int, error) {
	if err := validateEndpoints(start, end, m); err != nil {
		return nil, 0, err
	}

	r := f.newRun(m)

	start.Opened = openedByStart
	queue := []*grid.Node{start}

	for len(queue) > 0 {
		r.runs++
		if err := r.keepRunning(); err != nil {
			return nil, r.runs, err
		}

		// 1) Dequeue in insertion order and close.
		node := queue[0]
		queue = queue[1:]
		node.Closed = true

		// 2) Done once the end node surfaces.
		if node == end {
			return backtrace(end), r.runs, nil
		}

		// 3) Enqueue every neighbor not seen before.
		for _, nb := range r.m.Neighbors(node, f.opts.DiagonalMovement) {
			if nb.Closed || nb.Opened != 0 {
				continue
			}
			nb.Opened = openedByStart
			nb.Parent = node
			queue = append(queue, nb)
		}
	}

	return nil, r.runs, nil
}
