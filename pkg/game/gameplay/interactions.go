package gameplay

import (
	"log"
	"strings"

	"activemessage/pkg/engine/world"
	"activemessage/pkg/game/state"
)

// Interact runs the page of the event the player is facing. It returns false
// when there is nothing to talk to.
func Interact(g *state.Game) bool {
	front := FacingCell(g)
	if front == nil {
		return false
	}
	e := g.EventAt(front.Row, front.Col)
	if e == nil {
		return false
	}
	RunPage(g, e)
	return true
}

// RunPage interprets the command list of the event's active page.
// Show Text (101) opens a message page that collects the following 401
// lines; Control Switch (121) sets a named switch. Other codes are skipped.
func RunPage(g *state.Game, e *world.Event) {
	page := e.ActivePage()
	if page == nil {
		return
	}

	var text []string
	open := false
	flush := func() {
		if open {
			g.ShowText(text)
		}
		text = nil
		open = false
	}

	for _, cmd := range page.List {
		switch cmd.Code {
		case world.CmdShowText:
			flush()
			open = true
		case world.CmdShowTextLine:
			if !open {
				// A stray 401 starts its own page
				open = true
			}
			text = append(text, cmd.ParamString(0))
		case world.CmdControlSwitch:
			flush()
			name := strings.TrimSpace(cmd.ParamString(0))
			if name == "" {
				log.Printf("gameplay: event %d: switch command without a name", e.ID)
				continue
			}
			on := cmd.ParamBool(1)
			g.SetSwitch(name, on)
			if on {
				logMessage(g, "Switch %s is now ON", name)
			} else {
				logMessage(g, "Switch %s is now OFF", name)
			}
		case world.CmdComment, world.CmdCommentLine:
			// annotations only
		default:
			flush()
		}
	}
	flush()
}
