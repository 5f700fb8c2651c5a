package finder

import (
	"github.com/voxpath/voxpath/grid"
	"github.com/voxpath/voxpath/heuristic"
)

// ThetaStar is any-angle A*: after the normal relaxation computes a
// candidate parent, the finder additionally tries to attach the neighbor
// directly to the current node's own parent whenever an unobstructed
// straight line connects the two, skipping the intermediate hop. The
// resulting paths have far fewer waypoints and never cost more than the
// lattice-constrained A* route on the same grid.
//
// Diagonal movement is forced to DiagonalAlways — line-of-sight shortcuts
// presume straight segments may pass anywhere the cells are walkable, so
// a stricter corner-cutting policy would be inconsistent with the paths
// produced. Node weights are ignored.
type ThetaStar struct {
	common
}

// NewThetaStar constructs a Theta* finder. A WithDiagonalMovement option
// is overridden to DiagonalAlways; the heuristic defaults to Octile.
func NewThetaStar(opts ...Option) *ThetaStar {
	c := newCommon(false, opts)
	c.opts.DiagonalMovement = grid.DiagonalAlways
	if c.opts.Heuristic == nil {
		c.opts.Heuristic = heuristic.Octile
	}
	c.anyAngle = true

	return &ThetaStar{common: c}
}

// FindPath searches from start to end on m. It returns the path (start
// and end inclusive) and the number of iterations spent. An empty path
// with a nil error means no path exists. Consecutive path nodes may be
// arbitrarily far apart; use grid.ExpandPath to densify the route.
func (f *ThetaStar) FindPath(start, end *grid.Node, m Map) (Path, int, error) {
	return f.findPath(start, end, m)
}
