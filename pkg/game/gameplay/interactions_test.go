package gameplay

import (
	"testing"

	"activemessage/pkg/engine/world"
)

func cmd(code int, params ...any) world.Command {
	return world.Command{Code: code, Parameters: params}
}

func TestInteract_ShowTextPages(t *testing.T) {
	npc := world.NewEvent(1, "Guard", 1, 2, []*world.Page{{List: []world.Command{
		cmd(world.CmdComment, "<AutoMessage:Halt!>"),
		cmd(world.CmdShowText),
		cmd(world.CmdShowTextLine, "Who goes there?"),
		cmd(world.CmdShowTextLine, "Name yourself."),
		cmd(world.CmdShowText),
		cmd(world.CmdShowTextLine, "Pass, friend."),
		cmd(world.CmdEnd),
	}}})
	g := makeGame(t, npc)
	g.Facing = world.East

	if !Interact(g) {
		t.Fatal("Interact() = false, want true")
	}
	first := g.CurrentMessage()
	if len(first) != 2 || first[0] != "Who goes there?" {
		t.Fatalf("first page = %v", first)
	}
	g.AdvanceMessage()
	if second := g.CurrentMessage(); len(second) != 1 || second[0] != "Pass, friend." {
		t.Fatalf("second page = %v", second)
	}
}

func TestInteract_NothingInFront(t *testing.T) {
	g := makeGame(t)
	g.Facing = world.North
	if Interact(g) {
		t.Error("Interact() facing a wall = true, want false")
	}
}

func TestRunPage_ControlSwitch(t *testing.T) {
	lever := world.NewEvent(1, "Lever", 1, 2, []*world.Page{{List: []world.Command{
		cmd(world.CmdControlSwitch, "gate", true),
		cmd(world.CmdControlSwitch, "alarm", "off"),
	}}})
	g := makeGame(t, lever)
	g.SetSwitch("alarm", true)

	RunPage(g, lever)
	if !g.SwitchOn("gate") {
		t.Error("gate should be on")
	}
	if g.SwitchOn("alarm") {
		t.Error("alarm should be off")
	}
	if len(g.Log) != 2 {
		t.Errorf("Log = %v, want two switch notices", g.Log)
	}
}

func TestRunPage_StrayLineOpensPage(t *testing.T) {
	sign := world.NewEvent(1, "Sign", 1, 2, []*world.Page{{List: []world.Command{
		cmd(world.CmdShowTextLine, "Keep out"),
	}}})
	g := makeGame(t, sign)
	RunPage(g, sign)
	if m := g.CurrentMessage(); len(m) != 1 || m[0] != "Keep out" {
		t.Errorf("CurrentMessage = %v, want [Keep out]", m)
	}
}
