// Package renderer defines what the display back-ends share.
package renderer

import (
	engineinput "activemessage/pkg/engine/input"
	"activemessage/pkg/game/activemessage"
)

// Step advances the game by one frame with the given intent. A non-nil error
// stops the renderer, which then returns it from Run.
type Step func(intent engineinput.Intent) error

// Renderer defines the interface for game rendering backends.
// Every backend is also the display the active message popups live on.
type Renderer interface {
	activemessage.Display

	// Run drives the frame loop, calling step once per frame, until step
	// fails or the window is closed
	Run(step Step) error
}

// Viewport is the part of the map visible on screen, in tiles
type Viewport struct {
	StartRow int
	StartCol int
	Rows     int
	Cols     int
}

// CenterOn returns a rows x cols viewport centered on (row, col).
// Even sizes are reduced by one so the player sits on the middle tile.
func CenterOn(row, col, rows, cols int) Viewport {
	if rows%2 == 0 {
		rows--
	}
	if cols%2 == 0 {
		cols--
	}
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	return Viewport{
		StartRow: row - rows/2,
		StartCol: col - cols/2,
		Rows:     rows,
		Cols:     cols,
	}
}

// Contains reports whether a map position is on screen
func (v Viewport) Contains(row, col int) bool {
	return row >= v.StartRow && row < v.StartRow+v.Rows &&
		col >= v.StartCol && col < v.StartCol+v.Cols
}

// ToScreen converts a map position to viewport coordinates
func (v Viewport) ToScreen(row, col int) (vRow, vCol int) {
	return row - v.StartRow, col - v.StartCol
}
