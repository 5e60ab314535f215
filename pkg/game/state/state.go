package state

import (
	"github.com/zyedidia/generic/mapset"

	"activemessage/pkg/engine/world"
)

// maxLog is how many log lines are kept
const maxLog = 5

// Game represents the state of the running map
type Game struct {
	MapName string

	Grid *world.Grid

	PlayerRow int
	PlayerCol int
	Facing    world.Direction

	Events []*world.Event

	Switches mapset.Set[string]

	// Log holds recent notices (switch changes, blocked moves)
	Log []string

	// Frame counts update ticks since the map was loaded
	Frame int

	// message box pages waiting to be read; the first one is on screen
	messages [][]string
}

// NewGame creates a new game on the given grid
func NewGame(name string, grid *world.Grid, events []*world.Event) *Game {
	return &Game{
		MapName:  name,
		Grid:     grid,
		Facing:   world.South,
		Events:   events,
		Switches: mapset.New[string](),
		Log:      make([]string, 0),
	}
}

// AddLog adds a line to the notice log, keeping only the newest ones
func (g *Game) AddLog(msg string) {
	g.Log = append(g.Log, msg)
	if len(g.Log) > maxLog {
		g.Log = g.Log[len(g.Log)-maxLog:]
	}
}

// PlayerCell returns the cell under the player
func (g *Game) PlayerCell() *world.Cell {
	return g.Grid.GetCell(g.PlayerRow, g.PlayerCol)
}

// SetSwitch turns a named switch on or off
func (g *Game) SetSwitch(name string, on bool) {
	if on {
		g.Switches.Put(name)
	} else {
		g.Switches.Remove(name)
	}
}

// SwitchOn reports whether a named switch is on
func (g *Game) SwitchOn(name string) bool {
	return g.Switches.Has(name)
}

// EventAt returns the visible event at a position, or nil
func (g *Game) EventAt(row, col int) *world.Event {
	for _, e := range g.Events {
		if e.Row == row && e.Col == col && e.Visible() {
			return e
		}
	}
	return nil
}

// EventByID returns the event with the given ID, or nil
func (g *Game) EventByID(id int) *world.Event {
	for _, e := range g.Events {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// ShowText queues a page for the message box
func (g *Game) ShowText(lines []string) {
	if len(lines) == 0 {
		return
	}
	g.messages = append(g.messages, lines)
}

// MessageBusy reports whether the message box is open
func (g *Game) MessageBusy() bool {
	return len(g.messages) > 0
}

// CurrentMessage returns the lines of the page on screen, or nil
func (g *Game) CurrentMessage() []string {
	if len(g.messages) == 0 {
		return nil
	}
	return g.messages[0]
}

// AdvanceMessage closes the page on screen and shows the next one
func (g *Game) AdvanceMessage() {
	if len(g.messages) > 0 {
		g.messages = g.messages[1:]
	}
}
