package gameplay

import (
	"log"

	engineinput "activemessage/pkg/engine/input"
	"activemessage/pkg/engine/world"
	"activemessage/pkg/game/activemessage"
	"activemessage/pkg/game/state"
)

// EventHooks is notified by the loop about map events.
// PageLoaded runs whenever an event's active page is (re)selected, including
// the first refresh after the map loads. EventUpdated runs once per event per frame.
type EventHooks interface {
	PageLoaded(g *state.Game, e *world.Event)
	EventUpdated(g *state.Game, e *world.Event)
}

type messageHooks struct {
	c *activemessage.Controller
}

// MessageHooks connects an active message controller to the loop
func MessageHooks(c *activemessage.Controller) EventHooks {
	return messageHooks{c: c}
}

func (h messageHooks) PageLoaded(_ *state.Game, e *world.Event) {
	h.c.PageLoaded(e.ID, e.ActivePage().Comments())
}

func (h messageHooks) EventUpdated(g *state.Game, e *world.Event) {
	h.c.EventUpdated(e.ID, e.Distance(g.PlayerRow, g.PlayerCol), g.MessageBusy())
}

// Loop advances the game one frame at a time
type Loop struct {
	Game  *state.Game
	hooks []EventHooks

	// OnDebugDump, when set, runs for ActionDebugDump
	OnDebugDump func(g *state.Game) error
}

// NewLoop creates a loop over g notifying the given hooks
func NewLoop(g *state.Game, hooks ...EventHooks) *Loop {
	return &Loop{Game: g, hooks: hooks}
}

// Step handles one intent and then runs a frame. It returns ErrQuit when the
// player asked to leave; the frame is not run in that case.
func (l *Loop) Step(intent engineinput.Intent) error {
	if intent.Action == engineinput.ActionDebugDump {
		if l.OnDebugDump != nil {
			if err := l.OnDebugDump(l.Game); err != nil {
				log.Printf("debug dump failed: %v", err)
			}
		}
		intent = engineinput.Intent{Action: engineinput.ActionNone}
	}
	if err := ProcessIntent(l.Game, intent); err != nil {
		return err
	}
	l.Tick()
	return nil
}

// Tick refreshes event pages and then updates every event
func (l *Loop) Tick() {
	g := l.Game
	g.Frame++

	for _, e := range g.Events {
		if e.Refresh(g.SwitchOn) {
			for _, h := range l.hooks {
				h.PageLoaded(g, e)
			}
		}
	}

	for _, e := range g.Events {
		for _, h := range l.hooks {
			h.EventUpdated(g, e)
		}
	}
}
