// Package voxpath is an in-memory toolkit for shortest-path search over
// 3D voxel grids — weighted cells, four diagonal-movement policies, and
// multiple grids stitched together through portal connections.
//
// 🚀 What is voxpath?
//
//	A small, dependency-light library that brings together:
//		• Grid model: dense voxel storage with walkability and per-cell weights
//		• Movement rules: face, edge-diagonal and corner-diagonal moves with
//		  corner-cutting policies
//		• Heuristics: Manhattan, Euclidean, Chebyshev, Octile (3D)
//		• Finders: A*, Dijkstra, Best-First, Bi-directional A*, Breadth-First,
//		  IDA*, Minimum Spanning Tree, Theta* (any-angle)
//		• Worlds: independent grids joined by explicit point-to-point portals
//
// ✨ Why choose voxpath?
//
//   - Deterministic – fixed neighbor enumeration and documented tie-breaking,
//     so paths and operation counts are reproducible
//   - Honest contracts – sentinel errors for bad input, distinct signals for
//     "no path" versus "resource bound exceeded"
//   - Pure Go – no cgo, no runtime dependencies in the library core
//
// Everything is organized under three subpackages:
//
//	grid/      — Node, Grid, World, diagonal policies, line tracing
//	heuristic/ — pure distance estimators
//	finder/    — the shared open-list skeleton and the eight finders
//
// Quick ASCII example (one z-slice):
//
//	S . . #
//	. # . #
//	. # . E
//
//	A* walks around the wall of '#' cells from S to E.
//
// Each search runs synchronously to completion; call Grid.Cleanup between
// independent searches that reuse the same grid.
//
//	go get github.com/voxpath/voxpath
package voxpath
