package grid_test

import (
	"testing"

	"github.com/voxpath/voxpath/grid"
)

// TestBresenham_AxisAligned verifies straight segments visit every cell.
func TestBresenham_AxisAligned(t *testing.T) {
	line := grid.Bresenham([3]int{0, 0, 0}, [3]int{3, 0, 0})
	want := [][3]int{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {3, 0, 0}}
	if len(line) != len(want) {
		t.Fatalf("line length = %d; want %d", len(line), len(want))
	}
	for i := range want {
		if line[i] != want[i] {
			t.Errorf("line[%d] = %v; want %v", i, line[i], want[i])
		}
	}
}

// TestBresenham_Diagonal verifies the main 3D diagonal steps once per cell.
func TestBresenham_Diagonal(t *testing.T) {
	line := grid.Bresenham([3]int{0, 0, 0}, [3]int{2, 2, 2})
	want := [][3]int{{0, 0, 0}, {1, 1, 1}, {2, 2, 2}}
	if len(line) != len(want) {
		t.Fatalf("line = %v; want %v", line, want)
	}
	for i := range want {
		if line[i] != want[i] {
			t.Errorf("line[%d] = %v; want %v", i, line[i], want[i])
		}
	}
}

// TestBresenham_Endpoints checks both endpoints are always included, in
// either direction.
func TestBresenham_Endpoints(t *testing.T) {
	a, b := [3]int{0, 1, 2}, [3]int{4, 0, 1}
	for _, pair := range [][2][3]int{{a, b}, {b, a}} {
		line := grid.Bresenham(pair[0], pair[1])
		if line[0] != pair[0] || line[len(line)-1] != pair[1] {
			t.Errorf("Bresenham(%v,%v) endpoints = %v..%v", pair[0], pair[1], line[0], line[len(line)-1])
		}
	}
}

// TestRaytrace_VisitsAllCrossedCells verifies the ray trace includes both
// endpoints and moves one axis-step at a time (it crosses one cell border
// per step, unlike Bresenham).
func TestRaytrace_VisitsAllCrossedCells(t *testing.T) {
	line := grid.Raytrace([3]int{0, 0, 0}, [3]int{2, 1, 0})
	if line[0] != [3]int{0, 0, 0} {
		t.Errorf("first cell = %v; want origin", line[0])
	}
	if line[len(line)-1] != [3]int{2, 1, 0} {
		t.Errorf("last cell = %v; want target", line[len(line)-1])
	}
	for i := 1; i < len(line); i++ {
		diff := 0
		for axis := 0; axis < 3; axis++ {
			if line[i][axis] != line[i-1][axis] {
				diff++
			}
		}
		if diff != 1 {
			t.Errorf("step %d changes %d axes; want 1", i, diff)
		}
	}
}

// TestLineOfSight verifies obstacles on the traced segment break sight.
func TestLineOfSight(t *testing.T) {
	g, _ := grid.NewGrid(block(openMatrix(5, 5, 1), [3]int{2, 2, 0}))

	a, _ := g.Node(0, 0, 0)
	b, _ := g.Node(4, 4, 0)
	c, _ := g.Node(4, 0, 0)

	if g.LineOfSight(a, b) {
		t.Error("sight through the blocked center must fail")
	}
	if !g.LineOfSight(a, c) {
		t.Error("unobstructed segment must have line of sight")
	}
	if !g.LineOfSight(a, a) {
		t.Error("a node always sees itself")
	}
}

// TestExpandPath interpolates waypoints into a dense path without
// duplicated joints.
func TestExpandPath(t *testing.T) {
	dense := grid.ExpandPath([][3]int{{0, 0, 0}, {2, 0, 0}, {2, 2, 0}})
	want := [][3]int{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {2, 1, 0}, {2, 2, 0}}
	if len(dense) != len(want) {
		t.Fatalf("expanded = %v; want %v", dense, want)
	}
	for i := range want {
		if dense[i] != want[i] {
			t.Errorf("expanded[%d] = %v; want %v", i, dense[i], want[i])
		}
	}

	if got := grid.ExpandPath([][3]int{{1, 1, 1}}); got != nil {
		t.Errorf("single-point path expands to %v; want nil", got)
	}
}

// TestSmoothenPath drops staircase waypoints when the straight line is
// unobstructed and keeps endpoints intact.
func TestSmoothenPath(t *testing.T) {
	g, _ := grid.NewGrid(openMatrix(5, 5, 1))

	staircase := [][3]int{
		{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {2, 1, 0}, {2, 2, 0}, {3, 2, 0}, {3, 3, 0}, {4, 4, 0},
	}
	smooth := g.SmoothenPath(staircase, false)

	if len(smooth) >= len(staircase) {
		t.Errorf("smoothing kept %d of %d waypoints", len(smooth), len(staircase))
	}
	if smooth[0] != staircase[0] || smooth[len(smooth)-1] != staircase[len(staircase)-1] {
		t.Error("smoothing must preserve both endpoints")
	}

	short := [][3]int{{0, 0, 0}, {1, 1, 0}}
	if got := g.SmoothenPath(short, false); len(got) != 2 {
		t.Errorf("two-point path must pass through unchanged, got %v", got)
	}
}
