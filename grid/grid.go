package grid

import (
	"fmt"
	"math"
)

// Direction tables. The enumeration order is part of the public contract:
// finders inherit it, and with the open list's tie-breaking it makes path
// shapes and operation counts reproducible across runs.
var (
	// faceDirs lists the 6 face-adjacent moves: +x, -x, +y, -y, +z, -z.
	faceDirs = [6][3]int{
		{1, 0, 0}, {-1, 0, 0},
		{0, 1, 0}, {0, -1, 0},
		{0, 0, 1}, {0, 0, -1},
	}

	// edgeDirs lists the 12 edge-diagonal moves (two axes change),
	// xy-plane first, then xz, then yz.
	edgeDirs = [12][3]int{
		{1, 1, 0}, {1, -1, 0}, {-1, 1, 0}, {-1, -1, 0},
		{1, 0, 1}, {1, 0, -1}, {-1, 0, 1}, {-1, 0, -1},
		{0, 1, 1}, {0, 1, -1}, {0, -1, 1}, {0, -1, -1},
	}

	// cornerDirs lists the 8 corner-diagonal moves (all three axes change).
	cornerDirs = [8][3]int{
		{1, 1, 1}, {1, 1, -1}, {1, -1, 1}, {1, -1, -1},
		{-1, 1, 1}, {-1, 1, -1}, {-1, -1, 1}, {-1, -1, -1},
	}

	// Bracketing cells per diagonal: every axis-aligned cell that lies
	// strictly between the source and the diagonal target. Edge diagonals
	// have 2 (their face cells), corner diagonals have 6 (3 faces + 3
	// edge cells). Precomputed once at init.
	edgeBrackets   [12][][3]int
	cornerBrackets [8][][3]int
)

func init() {
	for i, d := range edgeDirs {
		edgeBrackets[i] = betweenCells(d)
	}
	for i, d := range cornerDirs {
		cornerBrackets[i] = betweenCells(d)
	}
}

// betweenCells returns all proper non-zero sub-offsets of direction d:
// the axis-aligned cells a diagonal move passes between.
func betweenCells(d [3]int) [][3]int {
	var cells [][3]int
	// Iterate over every subset of the non-zero axes except the empty set
	// and the full direction itself.
	for mask := 1; mask < 1<<3-1; mask++ {
		var c [3]int
		ok := true
		for axis := 0; axis < 3; axis++ {
			if mask&(1<<axis) == 0 {
				continue
			}
			if d[axis] == 0 {
				ok = false
				break
			}
			c[axis] = d[axis]
		}
		if ok && c != d {
			cells = append(cells, c)
		}
	}
	return cells
}

// Grid is a dense 3D container owning all Nodes of one coordinate space.
// It is built once from raw weight data and reused across searches via
// Cleanup. Nodes are stored row-major and addressed by (x, y, z).
type Grid struct {
	Width, Height, Depth int

	// ID identifies this grid inside a World.
	ID int

	nodes []Node
}

// NewGrid constructs a Grid from a dense 3D matrix of numeric weights.
// matrix[x][y][z] ≤ 0 marks an obstacle; any positive value marks a
// walkable cell entered at that cost multiplier (WithInverse flips the
// rule). Fails fast with ErrEmptyGrid or ErrNonRectangular on malformed
// input. Complexity: O(W×H×D) time and memory.
func NewGrid(matrix [][][]float64, opts ...Option) (*Grid, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(matrix) == 0 || len(matrix[0]) == 0 || len(matrix[0][0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w, h, d := len(matrix), len(matrix[0]), len(matrix[0][0])
	for x, plane := range matrix {
		if len(plane) != h {
			return nil, fmt.Errorf("%w: matrix[%d] has %d rows, want %d", ErrNonRectangular, x, len(plane), h)
		}
		for y, row := range plane {
			if len(row) != d {
				return nil, fmt.Errorf("%w: matrix[%d][%d] has %d cells, want %d", ErrNonRectangular, x, y, len(row), d)
			}
		}
	}

	g := newEmptyGrid(w, h, d, cfg.ID)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			for z := 0; z < d; z++ {
				n := &g.nodes[g.index(x, y, z)]
				v := matrix[x][y][z]
				if cfg.Inverse {
					// Values carry obstacle information only in this mode.
					n.Walkable = v <= 0
					n.Weight = 1
				} else {
					n.Walkable = v > 0
					n.Weight = v
				}
			}
		}
	}

	return g, nil
}

// NewOpenGrid constructs a fully walkable Grid of the given dimensions
// with unit weights, for callers that only need geometry.
func NewOpenGrid(width, height, depth int, opts ...Option) (*Grid, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if width <= 0 || height <= 0 || depth <= 0 {
		return nil, ErrEmptyGrid
	}

	return newEmptyGrid(width, height, depth, cfg.ID), nil
}

// newEmptyGrid allocates the node storage and stamps identity onto every
// node; walkability and weight default to true/1.
func newEmptyGrid(w, h, d, id int) *Grid {
	g := &Grid{
		Width:  w,
		Height: h,
		Depth:  d,
		ID:     id,
		nodes:  make([]Node, w*h*d),
	}
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			for z := 0; z < d; z++ {
				n := &g.nodes[g.index(x, y, z)]
				n.X, n.Y, n.Z = x, y, z
				n.GridID = id
				n.Walkable = true
				n.Weight = 1
			}
		}
	}

	return g
}

// index maps (x,y,z) to the row-major node index. Complexity: O(1).
func (g *Grid) index(x, y, z int) int {
	return (x*g.Height+y)*g.Depth + z
}

// Inside reports whether (x,y,z) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) Inside(x, y, z int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height && z >= 0 && z < g.Depth
}

// Node returns the node at (x,y,z), or ErrOutOfBounds if the coordinates
// lie outside the grid. Coordinates are never clamped.
func (g *Grid) Node(x, y, z int) (*Node, error) {
	if !g.Inside(x, y, z) {
		return nil, fmt.Errorf("%w: (%d,%d,%d) outside %dx%dx%d", ErrOutOfBounds, x, y, z, g.Width, g.Height, g.Depth)
	}

	return &g.nodes[g.index(x, y, z)], nil
}

// WalkableAt reports whether (x,y,z) is inside the grid and walkable.
// Out-of-bounds cells count as blocked. Complexity: O(1).
func (g *Grid) WalkableAt(x, y, z int) bool {
	return g.Inside(x, y, z) && g.nodes[g.index(x, y, z)].Walkable
}

// CalcCost returns the cost of the single step from a to b: the true 3D
// Euclidean distance between the two cells, scaled by the destination's
// weight when weighted is set. Face, edge-diagonal and corner-diagonal
// steps therefore cost 1, √2 and √3 on unit-weight grids.
func (g *Grid) CalcCost(a, b *Node, weighted bool) float64 {
	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)
	dz := float64(b.Z - a.Z)

	cost := math.Sqrt(dx*dx + dy*dy + dz*dz)
	if weighted {
		cost *= b.Weight
	}

	return cost
}

// Neighbors returns every walkable node reachable from n in one legal
// move under the given diagonal policy, plus n's walkable portal
// connections. Order is deterministic: the 6 faces (+x, -x, +y, -y, +z,
// -z), then connections in registration order, then the 12 edge
// diagonals, then the 8 corner diagonals (see the direction tables).
// Complexity: O(1) — at most 26 cells plus connections are probed.
func (g *Grid) Neighbors(n *Node, dm DiagonalMovement) []*Node {
	neighbors := make([]*Node, 0, 26+len(n.Connections))

	// 1) Face-adjacent moves.
	for _, d := range faceDirs {
		if g.WalkableAt(n.X+d[0], n.Y+d[1], n.Z+d[2]) {
			neighbors = append(neighbors, &g.nodes[g.index(n.X+d[0], n.Y+d[1], n.Z+d[2])])
		}
	}

	// 2) Portal connections to other grids (walkable targets only).
	for _, c := range n.Connections {
		if c.Walkable {
			neighbors = append(neighbors, c)
		}
	}

	if dm == DiagonalNever {
		return neighbors
	}

	// 3) Edge diagonals, gated by their two bracketing face cells.
	for i, d := range edgeDirs {
		if !g.diagonalAllowed(n, edgeBrackets[i], dm) {
			continue
		}
		if g.WalkableAt(n.X+d[0], n.Y+d[1], n.Z+d[2]) {
			neighbors = append(neighbors, &g.nodes[g.index(n.X+d[0], n.Y+d[1], n.Z+d[2])])
		}
	}

	// 4) Corner diagonals, gated by all six in-between cells.
	for i, d := range cornerDirs {
		if !g.diagonalAllowed(n, cornerBrackets[i], dm) {
			continue
		}
		if g.WalkableAt(n.X+d[0], n.Y+d[1], n.Z+d[2]) {
			neighbors = append(neighbors, &g.nodes[g.index(n.X+d[0], n.Y+d[1], n.Z+d[2])])
		}
	}

	return neighbors
}

// diagonalAllowed applies the corner-cutting policy to the in-between
// cells of one diagonal move originating at n.
func (g *Grid) diagonalAllowed(n *Node, brackets [][3]int, dm DiagonalMovement) bool {
	switch dm {
	case DiagonalAlways:
		return true
	case DiagonalOnlyWhenNoObstacle:
		return g.blockedBetween(n, brackets) == 0
	case DiagonalIfAtMostOneObstacle:
		return g.blockedBetween(n, brackets) <= 1
	default:
		return false
	}
}

// blockedBetween counts the in-between cells that cannot be walked.
func (g *Grid) blockedBetween(n *Node, brackets [][3]int) int {
	blocked := 0
	for _, c := range brackets {
		if !g.WalkableAt(n.X+c[0], n.Y+c[1], n.Z+c[2]) {
			blocked++
		}
	}

	return blocked
}

// Cleanup resets the transient search fields of every node, preparing
// the grid for the next independent search. Complexity: O(W×H×D).
func (g *Grid) Cleanup() {
	for i := range g.nodes {
		g.nodes[i].Cleanup()
	}
}
