package state

import (
	"testing"

	"activemessage/pkg/engine/world"
)

func TestAddLog_KeepsNewest(t *testing.T) {
	g := NewGame("test", world.NewGrid(1, 1), nil)
	for _, s := range []string{"1", "2", "3", "4", "5", "6", "7"} {
		g.AddLog(s)
	}
	if len(g.Log) != maxLog {
		t.Fatalf("len(Log) = %d, want %d", len(g.Log), maxLog)
	}
	if g.Log[0] != "3" || g.Log[maxLog-1] != "7" {
		t.Errorf("Log = %v, want [3..7]", g.Log)
	}
}

func TestMessageBox(t *testing.T) {
	g := NewGame("test", world.NewGrid(1, 1), nil)
	if g.MessageBusy() {
		t.Fatal("new game should not be busy")
	}
	g.ShowText(nil)
	if g.MessageBusy() {
		t.Fatal("empty page should not open the box")
	}
	g.ShowText([]string{"a"})
	g.ShowText([]string{"b", "c"})
	if !g.MessageBusy() || g.CurrentMessage()[0] != "a" {
		t.Fatalf("CurrentMessage = %v, want [a]", g.CurrentMessage())
	}
	g.AdvanceMessage()
	if len(g.CurrentMessage()) != 2 {
		t.Fatalf("CurrentMessage = %v, want [b c]", g.CurrentMessage())
	}
	g.AdvanceMessage()
	if g.MessageBusy() || g.CurrentMessage() != nil {
		t.Error("box should be closed after the last page")
	}
	g.AdvanceMessage()
}

func TestSwitches(t *testing.T) {
	g := NewGame("test", world.NewGrid(1, 1), nil)
	g.SetSwitch("gate", true)
	if !g.SwitchOn("gate") {
		t.Error("gate should be on")
	}
	g.SetSwitch("gate", false)
	if g.SwitchOn("gate") {
		t.Error("gate should be off")
	}
}

func TestEventAt_IgnoresHidden(t *testing.T) {
	shown := world.NewEvent(1, "A", 0, 0, []*world.Page{{}})
	hidden := world.NewEvent(2, "B", 0, 1, []*world.Page{{Condition: world.Condition{Switch: "x"}}})
	g := NewGame("test", world.NewGrid(1, 2), []*world.Event{shown, hidden})
	for _, e := range g.Events {
		e.Refresh(g.SwitchOn)
	}
	if g.EventAt(0, 0) != shown {
		t.Error("EventAt(0,0) should be the visible event")
	}
	if g.EventAt(0, 1) != nil {
		t.Error("EventAt(0,1) should ignore the hidden event")
	}
	if g.EventByID(2) != hidden {
		t.Error("EventByID(2) should find hidden events too")
	}
}
