// Package grid implements the data model for 3D voxel pathfinding:
// nodes, grids, multi-grid worlds, diagonal-movement policies and
// straight-line tracing utilities.
//
// A Grid is a dense width×height×depth container that owns every Node of
// one coordinate space. Walkability and traversal weight derive from the
// numeric construction matrix: values ≤ 0 are obstacles, values > 0 are
// walkable cells whose value is the cost multiplier for entering them.
//
// Movement between cells is governed by a DiagonalMovement policy. Besides
// the 6 face-adjacent moves, 3D grids have 12 edge-diagonal moves (two
// axes change) and 8 corner-diagonal moves (three axes change). Whether a
// diagonal move may "cut" past blocked cells is decided by inspecting the
// axis-aligned cells that lie strictly between source and target:
//
//   - DiagonalNever:               no diagonal moves at all
//   - DiagonalOnlyWhenNoObstacle:  every in-between cell must be walkable
//   - DiagonalIfAtMostOneObstacle: at most one in-between cell may be blocked
//   - DiagonalAlways:              diagonals regardless of in-between cells
//
// Neighbor enumeration order is fixed (faces, portal connections, edge
// diagonals, corner diagonals, each in a documented direction order) so
// that searches built on top of it are fully reproducible.
//
// Nodes carry their transient search bookkeeping (g/h/f, opened/closed,
// parent). A Grid is therefore not safe for concurrent or interleaved
// searches: run one search to completion, call Cleanup, then reuse.
//
// A World stitches independently-addressed Grids together. Explicit
// portal edges registered via Node.Connect surface as extra neighbors and
// let paths cross grid boundaries.
package grid
