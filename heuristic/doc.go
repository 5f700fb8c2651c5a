// Package heuristic provides the pure distance estimators used by the
// informed finders in github.com/voxpath/voxpath/finder.
//
// Every heuristic is a Func mapping the absolute per-axis deltas between
// two cells to a non-negative estimate of the remaining cost. For A* and
// Theta* to stay optimal the estimate must never exceed the true cost
// under the active movement policy:
//
//   - Manhattan is admissible when diagonal movement is disabled
//     (every move changes exactly one axis by one unit cost).
//   - Octile is admissible under any diagonal policy with unit weights:
//     it is the exact cost of the best unobstructed move sequence using
//     face (1), edge-diagonal (√2) and corner-diagonal (√3) steps.
//   - Euclidean and Chebyshev are admissible everywhere (both lower-bound
//     the octile distance) but steer less precisely.
//   - Null turns an informed finder into Dijkstra: h ≡ 0.
package heuristic
