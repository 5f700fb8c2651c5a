package grid

// Straight-line tracing over the voxel lattice: Bresenham and amanatides-
// style ray traversal, line-of-sight tests, and path post-processing.
// Coordinates are [3]int triples in grid space.

// Bresenham returns every cell on the discrete line segment from a to b
// (both inclusive), generalizing Bresenham's algorithm to 3D by stepping
// along the dominant axis. Complexity: O(max axis delta).
func Bresenham(a, b [3]int) [][3]int {
	var line [][3]int

	x0, y0, z0 := a[0], a[1], a[2]
	x1, y1, z1 := b[0], b[1], b[2]

	dx, dy, dz := abs(x1-x0), abs(y1-y0), abs(z1-z0)
	sx, sy, sz := sign(x0, x1), sign(y0, y1), sign(z0, z1)

	switch {
	case dx >= dy && dx >= dz: // driving axis is X
		e1, e2 := 2*dy-dx, 2*dz-dx
		for x0 != x1 {
			line = append(line, [3]int{x0, y0, z0})
			if e1 > 0 {
				y0 += sy
				e1 -= 2 * dx
			}
			if e2 > 0 {
				z0 += sz
				e2 -= 2 * dx
			}
			e1 += 2 * dy
			e2 += 2 * dz
			x0 += sx
		}
	case dy >= dx && dy >= dz: // driving axis is Y
		e1, e2 := 2*dx-dy, 2*dz-dy
		for y0 != y1 {
			line = append(line, [3]int{x0, y0, z0})
			if e1 > 0 {
				x0 += sx
				e1 -= 2 * dy
			}
			if e2 > 0 {
				z0 += sz
				e2 -= 2 * dy
			}
			e1 += 2 * dx
			e2 += 2 * dz
			y0 += sy
		}
	default: // driving axis is Z
		e1, e2 := 2*dy-dz, 2*dx-dz
		for z0 != z1 {
			line = append(line, [3]int{x0, y0, z0})
			if e1 > 0 {
				y0 += sy
				e1 -= 2 * dz
			}
			if e2 > 0 {
				x0 += sx
				e2 -= 2 * dz
			}
			e1 += 2 * dy
			e2 += 2 * dx
			z0 += sz
		}
	}

	return append(line, [3]int{x0, y0, z0})
}

// Raytrace returns every cell a continuous ray from the center of a to
// the center of b passes through, in traversal order. Unlike Bresenham it
// visits all crossed cells, not one per driving-axis step.
func Raytrace(a, b [3]int) [][3]int {
	var line [][3]int

	d := [3]float64{
		float64(b[0] - a[0]),
		float64(b[1] - a[1]),
		float64(b[2] - a[2]),
	}

	var tForOne, tNext [3]float64
	var step [3]int
	for i := 0; i < 3; i++ {
		if d[i] != 0 {
			tForOne[i] = 1 / absf(d[i])
		} else {
			tForOne[i] = 1e10 // never the closest border
		}
		// The ray starts at the cell center, half a cell from every border.
		tNext[i] = 0.5 * tForOne[i]
		if d[i] >= 0 {
			step[i] = 1
		} else {
			step[i] = -1
		}
	}

	pos := a
	for t := 0.0; t <= 1.0; {
		line = append(line, pos)

		// Advance across the nearest cell border.
		idx := 2
		if tNext[0] <= tNext[1] && tNext[0] <= tNext[2] {
			idx = 0
		} else if tNext[1] <= tNext[2] && tNext[1] <= tNext[0] {
			idx = 1
		}
		t = tNext[idx]
		tNext[idx] += tForOne[idx]
		pos[idx] += step[idx]
	}

	return line
}

// LineOfSight reports whether the straight segment between two nodes
// traverses walkable cells only. Used by Theta* to bypass intermediate
// hops; the trace includes both endpoints.
func (g *Grid) LineOfSight(a, b *Node) bool {
	for _, c := range Bresenham(a.Coords(), b.Coords()) {
		if !g.WalkableAt(c[0], c[1], c[2]) {
			return false
		}
	}

	return true
}

// ExpandPath interpolates a compressed path (waypoints only) into a dense
// one by connecting consecutive waypoints with Bresenham segments. Shared
// joints are emitted once.
func ExpandPath(path [][3]int) [][3]int {
	if len(path) < 2 {
		return nil
	}

	var expanded [][3]int
	for i := 0; i < len(path)-1; i++ {
		seg := Bresenham(path[i], path[i+1])
		expanded = append(expanded, seg[:len(seg)-1]...)
	}

	return append(expanded, path[len(path)-1])
}

// SmoothenPath rewrites a dense path with fewer turns: consecutive
// waypoints are skipped as long as a straight unobstructed line keeps
// connecting the remainder. Bresenham tracing is the default; raytracing
// visits strictly more cells and is the conservative choice.
func (g *Grid) SmoothenPath(path [][3]int, useRaytrace bool) [][3]int {
	if len(path) < 3 {
		return path
	}

	interpolate := Bresenham
	if useRaytrace {
		interpolate = Raytrace
	}

	anchor := path[0]
	newPath := [][3]int{anchor}
	lastValid := path[1]
	for _, coord := range path[2 : len(path)-1] {
		blocked := false
		for _, c := range interpolate(anchor, coord)[1:] {
			if !g.WalkableAt(c[0], c[1], c[2]) {
				blocked = true
				break
			}
		}
		if !blocked {
			newPath = append(newPath, lastValid)
			anchor = lastValid
		}
		lastValid = coord
	}

	return append(newPath, path[len(path)-1])
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}

	return v
}

func sign(from, to int) int {
	if from < to {
		return 1
	}

	return -1
}
