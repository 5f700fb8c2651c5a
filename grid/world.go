package grid

// World is a registry of independently-addressed Grids keyed by their
// identifier. It owns no search state: it only routes node operations to
// the correct grid, which lets a single search cross grid boundaries
// through portal connections.
type World struct {
	Grids map[int]*Grid
}

// NewWorld wraps the given grids. The map keys must match each grid's ID,
// since nodes are routed by their GridID.
func NewWorld(grids map[int]*Grid) *World {
	return &World{Grids: grids}
}

// Neighbors routes the lookup to the node's owning grid. Portal
// connections are already surfaced by Grid.Neighbors, so the result is
// the union of grid-local geometric neighbors and cross-grid portals.
func (w *World) Neighbors(n *Node, dm DiagonalMovement) []*Node {
	return w.Grids[n.GridID].Neighbors(n, dm)
}

// CalcCost returns the step cost between two nodes. For portal edges the
// Euclidean formula is applied across the two coordinate spaces: callers
// pick coordinate schemes where that distance is meaningful, or place
// portal endpoints at matching coordinates for a fixed unit cost.
func (w *World) CalcCost(a, b *Node, weighted bool) float64 {
	return w.Grids[a.GridID].CalcCost(a, b, weighted)
}

// LineOfSight reports whether a straight segment between two nodes of the
// same grid is unobstructed. Nodes of different grids never have line of
// sight — there is no shared geometry to trace through.
func (w *World) LineOfSight(a, b *Node) bool {
	if a.GridID != b.GridID {
		return false
	}

	return w.Grids[a.GridID].LineOfSight(a, b)
}

// Cleanup resets the transient search state of every grid in the world.
func (w *World) Cleanup() {
	for _, g := range w.Grids {
		g.Cleanup()
	}
}
