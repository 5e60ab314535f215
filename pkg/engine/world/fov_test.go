package world

import "testing"

func TestReveal_WallsBlockSight(t *testing.T) {
	// The player at (1,1) cannot see past the wall column at col 3
	g, err := FromLayout([]string{
		"#######",
		"#..#..#",
		"#..#..#",
		"#######",
	}, ".")
	if err != nil {
		t.Fatal(err)
	}
	Reveal(g, g.GetCell(1, 1), SightRadius)

	if !g.GetCell(1, 2).Discovered {
		t.Error("(1,2) next to the player should be discovered")
	}
	if !g.GetCell(1, 3).Discovered {
		t.Error("the wall itself should be discovered")
	}
	if g.GetCell(1, 4).Discovered || g.GetCell(2, 5).Discovered {
		t.Error("cells behind the wall should stay hidden")
	}
}

func TestReveal_Radius(t *testing.T) {
	g, err := FromLayout([]string{"........"}, ".")
	if err != nil {
		t.Fatal(err)
	}
	Reveal(g, g.GetCell(0, 0), 3)
	if !g.GetCell(0, 3).Discovered {
		t.Error("(0,3) is within radius 3")
	}
	if g.GetCell(0, 4).Discovered {
		t.Error("(0,4) is outside radius 3")
	}
}

func TestVisible_NilCenter(t *testing.T) {
	if got := Visible(NewGrid(1, 1), nil, 3); got != nil {
		t.Errorf("Visible(nil) = %v, want nil", got)
	}
}
