package finder

import (
	"fmt"
	"time"

	"github.com/voxpath/voxpath/grid"
)

// Frontier markers stored in Node.Opened. Single-frontier finders use
// openedByStart only; bidirectional search needs to know which side
// touched a node last.
const (
	openedByStart uint8 = 1
	openedByEnd   uint8 = 2
)

// common carries the configuration shared by every finder plus the two
// behavior switches that distinguish the variants: whether step costs
// honor node weights, and whether relaxation may reach through to the
// grandparent on clear line of sight (Theta*).
type common struct {
	opts     Options
	weighted bool
	anyAngle bool
}

// newCommon applies the functional options over the defaults.
func newCommon(weighted bool, opts []Option) common {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return common{opts: cfg, weighted: weighted}
}

// run holds the mutable state of a single FindPath execution, so finders
// themselves stay reusable across calls.
type run struct {
	*common
	m        Map
	runs     int
	deadline time.Time
}

func (c *common) newRun(m Map) *run {
	r := &run{common: c, m: m}
	if c.opts.TimeLimit > 0 {
		r.deadline = time.Now().Add(c.opts.TimeLimit)
	}

	return r
}

// keepRunning checks the configured iteration and time bounds. Called
// once per outer loop iteration, after the runs counter was advanced.
func (r *run) keepRunning() error {
	if r.opts.MaxRuns > 0 && r.runs >= r.opts.MaxRuns {
		return fmt.Errorf("%w: ran %d iterations without finding the destination", ErrRunsExceeded, r.opts.MaxRuns)
	}
	if !r.deadline.IsZero() && time.Now().After(r.deadline) {
		return fmt.Errorf("%w: took longer than %s", ErrTimeExceeded, r.opts.TimeLimit)
	}

	return nil
}

// applyHeuristic evaluates the configured estimator on the absolute
// per-axis deltas between two nodes.
func (r *run) applyHeuristic(a, b *grid.Node) float64 {
	return r.opts.Heuristic(
		float64(abs(a.X-b.X)),
		float64(abs(a.Y-b.Y)),
		float64(abs(a.Z-b.Z)),
	)
}

// processNode relaxes the edge from parent to nb: if nb is unopened or
// reachable at lower cost through parent, its g/h/f and parent link are
// updated and it is (re)inserted into the open list. Theta* additionally
// tries to reach through to parent's own parent when an unobstructed
// straight line connects it to nb, which is what produces any-angle paths.
func (r *run) processNode(nb, parent, end *grid.Node, open *openList, openValue uint8) {
	if r.anyAngle && parent.Parent != nil && parent.Parent.GridID == nb.GridID && r.m.LineOfSight(parent.Parent, nb) {
		r.relax(nb, parent.Parent, end, open, openValue)
		return
	}
	r.relax(nb, parent, end, open, openValue)
}

// relax is the shared "update on improvement" core behind every weighted
// variant.
func (r *run) relax(nb, parent, end *grid.Node, open *openList, openValue uint8) {
	ng := parent.G + r.m.CalcCost(parent, nb, r.weighted)
	if nb.Opened != 0 && ng >= nb.G {
		return
	}

	nb.G = ng
	if nb.H == 0 {
		// The heuristic is computed once per node and cached.
		nb.H = r.applyHeuristic(nb, end) * r.opts.Weight
	}
	nb.F = nb.G + nb.H
	nb.Parent = parent

	if nb.Opened == 0 {
		open.push(nb)
		nb.Opened = openValue
	} else {
		// Reached at smaller cost: f changed, fix its heap position.
		open.update(nb)
	}
}

// checkNeighbors performs one expansion step of the single-frontier heap
// finders: close the best open node, stop if it is the end, otherwise
// relax every unclosed neighbor. Returns the reconstructed path on
// success and nil while the search must keep going.
func (r *run) checkNeighbors(end *grid.Node, open *openList) Path {
	node := open.popNode()
	node.Closed = true

	if node == end {
		return backtrace(end)
	}

	for _, nb := range r.m.Neighbors(node, r.opts.DiagonalMovement) {
		if nb.Closed {
			continue
		}
		r.processNode(nb, node, end, open, openedByStart)
	}

	return nil
}

// findPath drives the shared open-list loop used by A*, Dijkstra,
// Best-First and Theta*.
func (c *common) findPath(start, end *grid.Node, m Map) (Path, int, error) {
	if err := validateEndpoints(start, end, m); err != nil {
		return nil, 0, err
	}

	r := c.newRun(m)

	// Seed the start node.
	start.G = 0
	start.F = 0
	start.Opened = openedByStart

	open := newOpenList()
	open.push(start)

	for open.Len() > 0 {
		r.runs++
		if err := r.keepRunning(); err != nil {
			return nil, r.runs, err
		}

		if path := r.checkNeighbors(end, open); path != nil {
			return path, r.runs, nil
		}
	}

	// Open list exhausted: no path exists. Not an error.
	return nil, r.runs, nil
}

// backtrace follows parent back-references from n to the search root and
// returns the path in root-to-n order.
func backtrace(n *grid.Node) Path {
	path := Path{n}
	for n.Parent != nil {
		n = n.Parent
		path = append(path, n)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// biBacktrace joins the two parent chains of a bidirectional meeting:
// fwd's chain leads back to the start, bwd's chain leads back to the end.
func biBacktrace(fwd, bwd *grid.Node) Path {
	path := backtrace(fwd)
	tail := backtrace(bwd) // end ... bwd
	for i := len(tail) - 1; i >= 0; i-- {
		path = append(path, tail[i])
	}

	return path
}

// validateEndpoints fails fast on inputs no search can satisfy.
func validateEndpoints(start, end *grid.Node, m Map) error {
	if m == nil {
		return ErrNilMap
	}
	if start == nil || end == nil {
		return ErrNilNode
	}
	if !start.Walkable {
		return fmt.Errorf("%w: start (%d,%d,%d)", ErrUnwalkableEndpoint, start.X, start.Y, start.Z)
	}
	if !end.Walkable {
		return fmt.Errorf("%w: end (%d,%d,%d)", ErrUnwalkableEndpoint, end.X, end.Y, end.Z)
	}

	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
