package heuristic

import "math"

// Step-cost constants for 3D lattice moves.
var (
	// Sqrt2 is the cost of an edge-diagonal step (two axes change).
	Sqrt2 = math.Sqrt(2)
	// Sqrt3 is the cost of a corner-diagonal step (three axes change).
	Sqrt3 = math.Sqrt(3)
	// Sqrt2Minus1 is the marginal cost of upgrading a face step to an
	// edge-diagonal step.
	Sqrt2Minus1 = math.Sqrt(2) - 1
	// Sqrt3MinusSqrt2 is the marginal cost of upgrading an edge-diagonal
	// step to a corner-diagonal step.
	Sqrt3MinusSqrt2 = math.Sqrt(3) - math.Sqrt(2)
)

// Func estimates the remaining cost between two cells from the absolute
// per-axis coordinate deltas. Implementations must be non-negative and,
// when used with A*/Theta*, admissible under the active movement policy.
type Func func(dx, dy, dz float64) float64

// Null always estimates 0, reducing an informed search to Dijkstra:
// node ordering then depends on the accumulated cost g alone.
func Null(dx, dy, dz float64) float64 {
	return 0
}

// Manhattan is the sum of the axis deltas — the exact remaining cost when
// only face-adjacent moves are allowed.
func Manhattan(dx, dy, dz float64) float64 {
	return dx + dy + dz
}

// Euclidean is the straight-line distance between the two cells.
func Euclidean(dx, dy, dz float64) float64 {
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Chebyshev is the largest axis delta — the move count when every step
// may change all three axes at once and steps cost 1.
func Chebyshev(dx, dy, dz float64) float64 {
	return max3(dx, dy, dz)
}

// Octile is the 3D octile distance: the cost of the cheapest unobstructed
// move sequence mixing face, edge-diagonal and corner-diagonal steps at
// costs 1, √2 and √3. The largest delta bounds the step count; the middle
// and smallest deltas tell how many steps upgrade to edge and corner
// diagonals respectively.
func Octile(dx, dy, dz float64) float64 {
	dmax := max3(dx, dy, dz)
	dmin := min3(dx, dy, dz)
	dmid := dx + dy + dz - dmax - dmin

	return dmax + Sqrt2Minus1*dmid + Sqrt3MinusSqrt2*dmin
}

func max3(a, b, c float64) float64 {
	return math.Max(a, math.Max(b, c))
}

func min3(a, b, c float64) float64 {
	return math.Min(a, math.Min(b, c))
}
