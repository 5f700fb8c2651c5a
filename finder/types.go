// Package finder defines shared types, configuration options, and
// sentinel errors for the pathfinding algorithms.
package finder

import (
	"errors"
	"time"

	"github.com/voxpath/voxpath/grid"
	"github.com/voxpath/voxpath/heuristic"
)

// Sentinel errors returned by the finders.
var (
	// ErrNilMap indicates that a nil grid/world was passed to a finder.
	ErrNilMap = errors.New("finder: map is nil")

	// ErrNilNode indicates a nil start or end node.
	ErrNilNode = errors.New("finder: start or end node is nil")

	// ErrUnwalkableEndpoint indicates the start or end node is an
	// obstacle; searching from or to it can never succeed.
	ErrUnwalkableEndpoint = errors.New("finder: start or end node is not walkable")

	// ErrRunsExceeded indicates the search hit its MaxRuns bound before
	// reaching the end node. Distinct from "no path exists".
	ErrRunsExceeded = errors.New("finder: maximum iteration count exceeded")

	// ErrTimeExceeded indicates the search hit its TimeLimit bound before
	// reaching the end node. Distinct from "no path exists".
	ErrTimeExceeded = errors.New("finder: time limit exceeded")
)

// Map is the search surface a finder operates on. Both *grid.Grid and
// *grid.World satisfy it.
type Map interface {
	// Neighbors returns the legal moves from n under the given policy.
	Neighbors(n *grid.Node, dm grid.DiagonalMovement) []*grid.Node
	// CalcCost returns the cost of the single step from a to b.
	CalcCost(a, b *grid.Node, weighted bool) float64
	// LineOfSight reports whether the straight segment between two nodes
	// is unobstructed (used by Theta*).
	LineOfSight(a, b *grid.Node) bool
}

// Path is an ordered sequence of nodes from start to end inclusive,
// produced as a finder's output. It references grid-owned nodes and must
// not outlive the grid.
type Path []*grid.Node

// Coordinates converts the path into plain coordinate triples.
func (p Path) Coordinates() [][3]int {
	coords := make([][3]int, len(p))
	for i, n := range p {
		coords[i] = n.Coords()
	}

	return coords
}

// Cost sums the step costs along the path on the given map.
func (p Path) Cost(m Map, weighted bool) float64 {
	var total float64
	for i := 1; i < len(p); i++ {
		total += m.CalcCost(p[i-1], p[i], weighted)
	}

	return total
}

// Options configures a finder.
//
// Heuristic        — distance estimator; nil picks the finder's default
//
//	(Manhattan without diagonals, Octile otherwise).
//
// Weight           — multiplier applied to heuristic estimates (> 0).
// DiagonalMovement — corner-cutting policy passed to the grid.
// TimeLimit        — wall-clock bound per FindPath call; 0 means none.
// MaxRuns          — outer-iteration bound per FindPath call; 0 means none.
type Options struct {
	Heuristic        heuristic.Func
	Weight           float64
	DiagonalMovement grid.DiagonalMovement
	TimeLimit        time.Duration
	MaxRuns          int
}

// Option is a functional option for finder construction.
type Option func(*Options)

// WithHeuristic sets the distance estimator. For A*, Bi-A*, IDA* and
// Theta* it must not overestimate the true cost under the configured
// movement policy, or optimality guarantees are void.
func WithHeuristic(h heuristic.Func) Option {
	return func(o *Options) {
		o.Heuristic = h
	}
}

// WithWeight scales the heuristic. Values above 1 trade optimality for
// speed. Must be positive; invalid values panic at construction.
func WithWeight(w float64) Option {
	return func(o *Options) {
		if w <= 0 {
			panic("finder: Weight must be positive")
		}
		o.Weight = w
	}
}

// WithDiagonalMovement sets the corner-cutting policy for the search.
func WithDiagonalMovement(dm grid.DiagonalMovement) Option {
	return func(o *Options) {
		o.DiagonalMovement = dm
	}
}

// WithTimeLimit bounds the wall-clock time of one FindPath call.
// Must be non-negative; invalid values panic at construction.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			panic("finder: TimeLimit must be non-negative")
		}
		o.TimeLimit = d
	}
}

// WithMaxRuns bounds the number of outer iterations of one FindPath call.
// Must be non-negative; invalid values panic at construction.
func WithMaxRuns(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic("finder: MaxRuns must be non-negative")
		}
		o.MaxRuns = n
	}
}

// DefaultOptions returns finder Options with default settings: no
// heuristic override, Weight=1, DiagonalNever, and no resource bounds.
func DefaultOptions() Options {
	return Options{
		Heuristic:        nil,
		Weight:           1,
		DiagonalMovement: grid.DiagonalNever,
		TimeLimit:        0,
		MaxRuns:          0,
	}
}
