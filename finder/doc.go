// Package finder implements shortest-path search over voxel grids and
// worlds: a shared open-list skeleton plus eight finders built on it.
//
// Every finder exposes
//
//	FindPath(start, end, m) (Path, operations, error)
//
// where m is a *grid.Grid or a *grid.World (anything satisfying Map).
// The returned Path runs from start to end inclusive; an empty path with
// a nil error means no path exists. The operation count is the number of
// outer search iterations actually spent, reported for both outcomes.
// Exceeding a configured iteration or time bound returns ErrRunsExceeded
// or ErrTimeExceeded — deliberately distinct from the no-path result so
// callers can retry with relaxed bounds instead of accepting
// unreachability.
//
// The finders differ in open-list key, termination and relaxation:
//
//	A*           f = g+h      weighted    classic informed search
//	Dijkstra     g (h ≡ 0)    weighted    A* with the Null heuristic
//	Best-First   h (scaled)   unweighted  greedy, fast, not optimal
//	Breadth-Fst  FIFO         unweighted  explores by depth
//	Bi-A*        f, 2 fronts  weighted    frontiers meet; best meeting wins
//	IDA*         f-bound DFS  unweighted  no open list, re-explores
//	MST          g            weighted    spanning structure, not a route
//	Theta*       f = g+h      unweighted  any-angle via line of sight
//
// Determinism: neighbor enumeration order is fixed by the grid package,
// and the open list breaks ties by most-recently-updated-first, so paths
// and operation counts are reproducible for identical inputs.
//
// Search state lives on the nodes themselves. Finders may be reused, but
// call Cleanup on the grid or world between independent searches; two
// searches interleaved on one grid without cleanup corrupt each other.
//
// Complexity (V = walkable cells, E ≤ 26·V moves):
//
//   - Heap-based finders: O((V + E) log V) time, O(V) memory.
//   - Breadth-first: O(V + E) time, O(V) memory.
//   - IDA*: O(V) memory, exponential re-exploration in the worst case.
package finder
