package gameplay

import (
	"errors"

	engineinput "activemessage/pkg/engine/input"
	"activemessage/pkg/engine/world"
	"activemessage/pkg/game/state"
)

// ErrQuit is returned by ProcessIntent and Loop.Step when the player quits
var ErrQuit = errors.New("quit")

// ProcessIntent handles a high-level input intent from the tiered input system.
// While the message box is open, movement is frozen and Interact advances the box.
func ProcessIntent(g *state.Game, intent engineinput.Intent) error {
	switch intent.Action {
	case engineinput.ActionNone:
		return nil

	case engineinput.ActionQuit:
		return ErrQuit
	}

	if g.MessageBusy() {
		if intent.Action == engineinput.ActionInteract {
			g.AdvanceMessage()
		}
		return nil
	}

	switch intent.Action {
	case engineinput.ActionMoveNorth:
		MoveCell(g, world.North)
	case engineinput.ActionMoveSouth:
		MoveCell(g, world.South)
	case engineinput.ActionMoveWest:
		MoveCell(g, world.West)
	case engineinput.ActionMoveEast:
		MoveCell(g, world.East)
	case engineinput.ActionInteract:
		Interact(g)
	}
	// Zoom is handled by the renderer
	return nil
}
