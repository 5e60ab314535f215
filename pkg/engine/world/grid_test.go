package world

import "testing"

func TestFromLayout_FloorAndConnections(t *testing.T) {
	g, err := FromLayout([]string{
		"#####",
		"#..#",
		"#####",
	}, ".")
	if err != nil {
		t.Fatalf("FromLayout error = %v", err)
	}
	if g.Rows() != 3 || g.Cols() != 5 {
		t.Fatalf("size = %dx%d, want 3x5", g.Rows(), g.Cols())
	}
	if !g.IsFloor(1, 1) || !g.IsFloor(1, 2) {
		t.Error("(1,1) and (1,2) should be floor")
	}
	if g.IsFloor(1, 3) || g.IsFloor(1, 4) {
		t.Error("(1,3) is wall and (1,4) is padding; want not floor")
	}
	c := g.GetCell(1, 1)
	if c.East != g.GetCell(1, 2) || g.GetCell(1, 2).West != c {
		t.Error("cells (1,1) and (1,2) are not linked")
	}
}

func TestFromLayout_Empty(t *testing.T) {
	if _, err := FromLayout(nil, "."); err == nil {
		t.Error("FromLayout(nil) error = nil, want error")
	}
	if _, err := FromLayout([]string{"", ""}, "."); err == nil {
		t.Error("FromLayout(blank rows) error = nil, want error")
	}
}

func TestGetCell_OutOfBounds(t *testing.T) {
	g := NewGrid(2, 2)
	for _, pos := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		if c := g.GetCell(pos[0], pos[1]); c != nil {
			t.Errorf("GetCell(%d,%d) = %v, want nil", pos[0], pos[1], c)
		}
	}
	var nilGrid *Grid
	if nilGrid.GetCell(0, 0) != nil {
		t.Error("nil grid GetCell should be nil")
	}
}

func TestGetCellRelative(t *testing.T) {
	g := NewGrid(3, 3)
	center := g.GetCell(1, 1)
	for _, dir := range AllDirections() {
		dr, dc := dir.Delta()
		want := g.GetCell(1+dr, 1+dc)
		if got := g.GetCellRelative(center, dir); got != want {
			t.Errorf("GetCellRelative(center, %v) = %v, want %v", dir, got, want)
		}
	}
	if g.GetCellRelative(center, Direction(42)) != nil {
		t.Error("invalid direction should give nil")
	}
}

func TestManhattan(t *testing.T) {
	cases := []struct {
		r1, c1, r2, c2, want int
	}{
		{0, 0, 0, 0, 0},
		{0, 0, 1, 1, 2},
		{5, 2, 3, 7, 7},
	}
	for _, tc := range cases {
		if got := Manhattan(tc.r1, tc.c1, tc.r2, tc.c2); got != tc.want {
			t.Errorf("Manhattan(%d,%d,%d,%d) = %d, want %d", tc.r1, tc.c1, tc.r2, tc.c2, got, tc.want)
		}
	}
}

func TestParseDirection(t *testing.T) {
	cases := map[string]Direction{"up": North, "east": East, "w": West, "down": South, "": South}
	for in, want := range cases {
		if got := ParseDirection(in); got != want {
			t.Errorf("ParseDirection(%q) = %v, want %v", in, got, want)
		}
	}
}
