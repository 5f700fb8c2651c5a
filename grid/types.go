// Package grid defines core types, options, and sentinel errors for the
// grid subpackage of github.com/voxpath/voxpath.
package grid

import (
	"errors"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates the input matrix has no cells along some axis.
	ErrEmptyGrid = errors.New("grid: matrix must have at least one cell along every axis")
	// ErrNonRectangular indicates the input matrix has ragged dimensions.
	ErrNonRectangular = errors.New("grid: all matrix slices must have the same length")
	// ErrOutOfBounds indicates a coordinate lies outside the grid dimensions.
	ErrOutOfBounds = errors.New("grid: coordinates out of bounds")
)

// DiagonalMovement selects which non-axis-aligned moves are legal and
// under what obstacle conditions (corner-cutting policy).
type DiagonalMovement int

const (
	// DiagonalNever allows only the 6 face-adjacent moves.
	DiagonalNever DiagonalMovement = iota
	// DiagonalOnlyWhenNoObstacle allows a diagonal move only if every
	// axis-aligned cell strictly between source and target is walkable.
	DiagonalOnlyWhenNoObstacle
	// DiagonalIfAtMostOneObstacle allows a diagonal move if at most one
	// of the in-between cells is blocked.
	DiagonalIfAtMostOneObstacle
	// DiagonalAlways allows every diagonal move whose target is walkable.
	DiagonalAlways
)

// String returns the policy name, mainly for error messages and logs.
func (dm DiagonalMovement) String() string {
	switch dm {
	case DiagonalNever:
		return "never"
	case DiagonalOnlyWhenNoObstacle:
		return "only_when_no_obstacle"
	case DiagonalIfAtMostOneObstacle:
		return "if_at_most_one_obstacle"
	case DiagonalAlways:
		return "always"
	default:
		return "unknown"
	}
}

// Options contains tunable parameters for grid construction.
//
// ID      — identifier of the grid inside a World (default 0).
// Inverse — invert walkability: values ≤ 0 become walkable, values > 0
//
//	become obstacles. Walkable cells get weight 1 in this mode, since
//	the matrix values carry obstacle information only.
type Options struct {
	ID      int
	Inverse bool
}

// Option is a functional option for grid construction.
type Option func(*Options)

// WithGridID sets the grid identifier used to address nodes in a World.
func WithGridID(id int) Option {
	return func(o *Options) {
		o.ID = id
	}
}

// WithInverse inverts the walkability rule of the construction matrix.
func WithInverse() Option {
	return func(o *Options) {
		o.Inverse = true
	}
}

// DefaultOptions returns grid Options with default settings:
// ID=0, Inverse=false (values > 0 are walkable).
func DefaultOptions() Options {
	return Options{ID: 0, Inverse: false}
}
