// Package ebiten provides an Ebiten-based 2D graphical renderer.
package ebiten

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"activemessage/pkg/game/activemessage"
	"activemessage/pkg/game/renderer"
	"activemessage/pkg/game/state"
)

// Options configures the window
type Options struct {
	Title      string
	TileSize   int
	ScreenCols int // initial window width in tiles
	ScreenRows int // initial window height in tiles
}

// New creates a new Ebiten renderer for g
func New(g *state.Game, opts Options) (*EbitenRenderer, error) {
	tileSize := opts.TileSize
	if tileSize < minTileSize || tileSize > maxTileSize {
		tileSize = defaultTileSize
	}
	e := &EbitenRenderer{
		Layer:          activemessage.NewLayer(),
		game:           g,
		title:          opts.Title,
		tileSize:       tileSize,
		windowWidth:    opts.ScreenCols * tileSize,
		windowHeight:   opts.ScreenRows * tileSize,
		keyRepeatState: make(map[string]keyRepeatInfo),
	}
	if err := e.loadFonts(); err != nil {
		return nil, err
	}
	e.recalculateViewport()
	e.updateCamera()
	return e, nil
}

// Run opens the window and runs the game loop until step fails or the window closes
func (e *EbitenRenderer) Run(step renderer.Step) error {
	e.step = step

	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle(e.title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(ebiten.DefaultTPS)

	log.Printf("Opening main window (%dx%d)", e.windowWidth, e.windowHeight)
	if err := ebiten.RunGame(e); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return e.err
}

// TextWidth measures a popup line in pixels
func (e *EbitenRenderer) TextWidth(line string) float64 {
	w, _ := text.Measure(line, e.popupFace, 0)
	return w
}

// Anchor returns the on-screen anchor of a map event
func (e *EbitenRenderer) Anchor(eventID int) activemessage.Anchor {
	return eventAnchor{r: e, id: eventID}
}

// ScreenPosition is the bottom center of the event's tile. It is not ok when
// the event is gone or has no active page.
func (a eventAnchor) ScreenPosition() (x, y float64, ok bool) {
	ev := a.r.game.EventByID(a.id)
	if ev == nil || !ev.Visible() {
		return 0, 0, false
	}
	tx, ty := a.r.tileOrigin(ev.Row, ev.Col)
	size := float64(a.r.tileSize)
	return tx + size/2, ty + size, true
}

// tileOrigin returns the screen position of a tile's top-left corner
func (e *EbitenRenderer) tileOrigin(row, col int) (x, y float64) {
	vRow, vCol := e.cam.view.ToScreen(row, col)
	return float64(e.cam.mapX + vCol*e.tileSize), float64(e.cam.mapY + vRow*e.tileSize)
}

// updateCamera centers the viewport on the player
func (e *EbitenRenderer) updateCamera() {
	view := renderer.CenterOn(e.game.PlayerRow, e.game.PlayerCol, e.viewportRows, e.viewportCols)
	e.cam = camera{
		view: view,
		mapX: (e.windowWidth - view.Cols*e.tileSize) / 2,
		mapY: (e.windowHeight - view.Rows*e.tileSize) / 2,
	}
}
