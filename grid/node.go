package grid

// Node is a single addressable cell of a Grid. Identity (X, Y, Z, GridID)
// and terrain data (Walkable, Weight, Connections) persist for the life
// of the grid; everything else is transient search bookkeeping that
// Cleanup resets between independent runs.
//
// Nodes are owned exclusively by their Grid. Parent back-references and
// portal Connections never extend a node's lifetime beyond its grid.
type Node struct {
	// Coordinates inside the owning grid.
	X, Y, Z int

	// GridID identifies the owning grid when several grids form a World.
	GridID int

	// Walkable reports whether this cell can be entered at all.
	Walkable bool

	// Weight is the positive cost multiplier for entering this cell,
	// used by weighted finders. Default 1.
	Weight float64

	// Connections holds explicit directed portal edges to nodes in other
	// grids, surfaced as extra neighbors regardless of adjacency.
	Connections []*Node

	// Transient search state, reset by Cleanup.

	// G is the cost of the best known path from the start to this node.
	G float64
	// H is the cached heuristic estimate from this node to the goal.
	H float64
	// F is the priority key G + H, recomputed whenever either changes.
	F float64
	// Opened is non-zero once the node entered an open list; bidirectional
	// search stores which frontier touched the node (see finder package).
	Opened uint8
	// Closed marks nodes that were fully expanded.
	Closed bool
	// Parent is the back-reference used for path reconstruction.
	Parent *Node
	// RetainCount is non-zero while the node sits on the active recursion
	// path of an IDA* search.
	RetainCount int
	// Tested mirrors RetainCount as a plain flag.
	Tested bool
}

// Cleanup resets all transient search fields to their defaults, giving
// the node a fresh start for the next pathfinding run.
func (n *Node) Cleanup() {
	n.G = 0
	n.H = 0
	n.F = 0
	n.Opened = 0
	n.Closed = false
	n.Parent = nil
	n.RetainCount = 0
	n.Tested = false
}

// Connect registers a one-directional portal edge from n to other.
// Symmetry is the caller's responsibility: a bidirectional portal needs
// a second call in the opposite direction.
func (n *Node) Connect(other *Node) {
	n.Connections = append(n.Connections, other)
}

// Coords returns the node's coordinate triple within its grid.
func (n *Node) Coords() [3]int {
	return [3]int{n.X, n.Y, n.Z}
}
