// Package gameplay provides core game logic for player movement and interactions.
package gameplay

import (
	"fmt"

	"activemessage/pkg/engine/world"
	"activemessage/pkg/game/state"
)

// CanEnter checks if the player can enter a cell
func CanEnter(g *state.Game, r *world.Cell, logReason bool) bool {
	if r == nil || !r.Floor {
		return false
	}

	// Visible events are solid, like furniture in a room
	if e := g.EventAt(r.Row, r.Col); e != nil {
		if logReason {
			logMessage(g, "%s is in the way", e.Name)
		}
		return false
	}

	return true
}

// MoveCell moves the player one step in dir. The player turns to face dir
// even when the move is blocked.
func MoveCell(g *state.Game, dir world.Direction) bool {
	g.Facing = dir

	current := g.PlayerCell()
	if current == nil {
		return false
	}

	requestedCell := current.GetNeighbor(dir)
	if !CanEnter(g, requestedCell, true) {
		return false
	}

	requestedCell.Visited = true
	g.PlayerRow = requestedCell.Row
	g.PlayerCol = requestedCell.Col
	world.Reveal(g.Grid, requestedCell, world.SightRadius)
	return true
}

// FacingCell returns the cell in front of the player, or nil at the map edge
func FacingCell(g *state.Game) *world.Cell {
	return g.Grid.GetCellRelative(g.PlayerCell(), g.Facing)
}

// logMessage adds a formatted message to the game's notice log
func logMessage(g *state.Game, msg string, a ...any) {
	g.AddLog(fmt.Sprintf(msg, a...))
}
