package gameplay

import (
	"testing"

	engineinput "activemessage/pkg/engine/input"
	"activemessage/pkg/engine/world"
	"activemessage/pkg/game/state"
)

// makeGame builds a game on a small walled map with the player at (1,1)
//
//	#####
//	#...#
//	#...#
//	#####
func makeGame(t *testing.T, events ...*world.Event) *state.Game {
	t.Helper()
	grid, err := world.FromLayout([]string{
		"#####",
		"#...#",
		"#...#",
		"#####",
	}, ".")
	if err != nil {
		t.Fatalf("FromLayout: %v", err)
	}
	g := state.NewGame("test", grid, events)
	g.PlayerRow, g.PlayerCol = 1, 1
	for _, e := range events {
		e.Refresh(g.SwitchOn)
	}
	return g
}

func TestCanEnter_NilCell(t *testing.T) {
	g := makeGame(t)
	if CanEnter(g, nil, false) {
		t.Error("CanEnter(g, nil, false) = true, want false")
	}
}

func TestCanEnter_Wall(t *testing.T) {
	g := makeGame(t)
	if CanEnter(g, g.Grid.GetCell(0, 0), false) {
		t.Error("CanEnter(wall) = true, want false")
	}
}

func TestCanEnter_EventBlocks(t *testing.T) {
	npc := world.NewEvent(1, "Guard", 1, 2, []*world.Page{{}})
	g := makeGame(t, npc)
	if CanEnter(g, g.Grid.GetCell(1, 2), true) {
		t.Error("CanEnter(event cell) = true, want false")
	}
	if len(g.Log) != 1 {
		t.Errorf("Log = %v, want one blocked notice", g.Log)
	}
}

func TestCanEnter_HiddenEventDoesNotBlock(t *testing.T) {
	ghost := world.NewEvent(1, "Ghost", 1, 2, []*world.Page{{Condition: world.Condition{Switch: "night"}}})
	g := makeGame(t, ghost)
	if !CanEnter(g, g.Grid.GetCell(1, 2), false) {
		t.Error("CanEnter(hidden event cell) = false, want true")
	}
}

func TestProcessIntent_AllFourDirections(t *testing.T) {
	dirs := []struct {
		name    string
		action  engineinput.Action
		row     int
		col     int
		startAt [2]int
	}{
		{"North", engineinput.ActionMoveNorth, 1, 2, [2]int{2, 2}},
		{"South", engineinput.ActionMoveSouth, 2, 2, [2]int{1, 2}},
		{"East", engineinput.ActionMoveEast, 1, 3, [2]int{1, 2}},
		{"West", engineinput.ActionMoveWest, 1, 1, [2]int{1, 2}},
	}
	for _, d := range dirs {
		t.Run(d.name, func(t *testing.T) {
			g := makeGame(t)
			g.PlayerRow, g.PlayerCol = d.startAt[0], d.startAt[1]
			if err := ProcessIntent(g, engineinput.Intent{Action: d.action}); err != nil {
				t.Fatalf("ProcessIntent: %v", err)
			}
			if g.PlayerRow != d.row || g.PlayerCol != d.col {
				t.Errorf("after Move%s: player at (%d,%d), want (%d,%d)", d.name, g.PlayerRow, g.PlayerCol, d.row, d.col)
			}
		})
	}
}

func TestProcessIntent_BlockedMoveTurnsOnly(t *testing.T) {
	g := makeGame(t)
	g.Facing = world.South
	ProcessIntent(g, engineinput.Intent{Action: engineinput.ActionMoveWest})
	if g.PlayerRow != 1 || g.PlayerCol != 1 {
		t.Errorf("blocked move changed position to (%d,%d)", g.PlayerRow, g.PlayerCol)
	}
	if g.Facing != world.West {
		t.Errorf("Facing = %v, want West", g.Facing)
	}
}

func TestProcessIntent_Quit(t *testing.T) {
	g := makeGame(t)
	if err := ProcessIntent(g, engineinput.Intent{Action: engineinput.ActionQuit}); err != ErrQuit {
		t.Errorf("ProcessIntent(Quit) = %v, want ErrQuit", err)
	}
}

func TestProcessIntent_MessageBoxFreezesMovement(t *testing.T) {
	g := makeGame(t)
	g.ShowText([]string{"hello"})
	ProcessIntent(g, engineinput.Intent{Action: engineinput.ActionMoveEast})
	if g.PlayerCol != 1 {
		t.Errorf("moved while message box open: col = %d", g.PlayerCol)
	}
	ProcessIntent(g, engineinput.Intent{Action: engineinput.ActionInteract})
	if g.MessageBusy() {
		t.Error("Interact should close the last message page")
	}
}
