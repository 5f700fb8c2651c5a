package finder

import (
	"math"

	"github.com/voxpath/voxpath/grid"
	"github.com/voxpath/voxpath/heuristic"
)

// BiAStar runs two A* searches simultaneously — forward from the start
// and backward from the end — alternating one expansion per side. When
// the frontiers touch, the touching pair is a meeting candidate whose
// total cost is forwardG + step + backwardG.
//
// The first candidate found is not necessarily on an optimal path, so the
// search keeps going and records the cheapest candidate until neither
// frontier's best f value can beat it anymore; only then is the combined
// path reconstructed. With an admissible heuristic the result is optimal.
type BiAStar struct {
	common
}

// meeting is the best frontier contact seen so far: fwd was reached from
// the start, bwd from the end, and the two are one legal move apart.
type meeting struct {
	fwd, bwd *grid.Node
	cost     float64
}

// NewBiAStar constructs a bidirectional A* finder. Heuristic defaults
// match A* (Manhattan without diagonals, Octile otherwise).
func NewBiAStar(opts ...Option) *BiAStar {
	c := newCommon(true, opts)
	if c.opts.Heuristic == nil {
		if c.opts.DiagonalMovement == grid.DiagonalNever {
			c.opts.Heuristic = heuristic.Manhattan
		} else {
			c.opts.Heuristic = heuristic.Octile
		}
	}

	return &BiAStar{common: c}
}

// FindPath searches from start to end on m. It returns the path (start
// and end inclusive) and the number of iterations spent. An empty path
// with a nil error means no path exists.
func (f *BiAStar) FindPath(start, end *grid.Node, m Map) (Path, int, error) {
	if err := validateEndpoints(start, end, m); err != nil {
		return nil, 0, err
	}
	if start == end {
		return Path{start}, 0, nil
	}

	r := f.newRun(m)

	// Seed both frontiers; Opened records which side touched a node.
	start.G = 0
	start.F = 0
	start.Opened = openedByStart
	startOpen := newOpenList()
	startOpen.push(start)

	end.G = 0
	end.F = 0
	end.Opened = openedByEnd
	endOpen := newOpenList()
	endOpen.push(end)

	best := meeting{cost: math.Inf(1)}

	for startOpen.Len() > 0 && endOpen.Len() > 0 {
		// Terminate once no remaining open node on either side can lead
		// to a cheaper meeting than the best one recorded.
		if best.fwd != nil && startOpen.minKey() >= best.cost && endOpen.minKey() >= best.cost {
			break
		}

		r.runs++
		if err := r.keepRunning(); err != nil {
			return nil, r.runs, err
		}
		r.expandFrontier(startOpen, end, openedByStart, openedByEnd, &best)

		r.runs++
		if err := r.keepRunning(); err != nil {
			return nil, r.runs, err
		}
		r.expandFrontier(endOpen, start, openedByEnd, openedByStart, &best)
	}

	if best.fwd != nil {
		return biBacktrace(best.fwd, best.bwd), r.runs, nil
	}

	return nil, r.runs, nil
}

// expandFrontier closes the best open node of one side, records meeting
// candidates against the opposite side, and relaxes the remaining
// neighbors toward target (this side's goal).
func (r *run) expandFrontier(open *openList, target *grid.Node, side, otherSide uint8, best *meeting) {
	node := open.popNode()
	node.Closed = true

	for _, nb := range r.m.Neighbors(node, r.opts.DiagonalMovement) {
		if nb.Opened == otherSide {
			// Frontier contact. Both g values are valid on their own
			// sides, so the candidate's total cost is exact.
			total := node.G + r.m.CalcCost(node, nb, r.weighted) + nb.G
			if total < best.cost {
				if side == openedByStart {
					best.fwd, best.bwd = node, nb
				} else {
					best.fwd, best.bwd = nb, node
				}
				best.cost = total
			}

			continue
		}
		if nb.Closed {
			continue
		}
		r.processNode(nb, node, target, open, side)
	}
}
