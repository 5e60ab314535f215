package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"activemessage/pkg/game/i18n"
)

// Draw renders the game to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	if e.game == nil || e.monoFontSource == nil {
		return
	}

	view := e.cam.view
	vector.DrawFilledRect(screen, float32(e.cam.mapX), float32(e.cam.mapY),
		float32(view.Cols*e.tileSize), float32(view.Rows*e.tileSize), colorMapBackground, false)

	e.drawMap(screen)
	e.drawEvents(screen)
	e.drawPlayer(screen)
	e.drawPopups(screen)
	e.drawLog(screen)
	e.drawMessageBox(screen)
}

// drawMap draws the floor and wall tiles inside the viewport
func (e *EbitenRenderer) drawMap(screen *ebiten.Image) {
	g := e.game
	view := e.cam.view
	for vRow := 0; vRow < view.Rows; vRow++ {
		for vCol := 0; vCol < view.Cols; vCol++ {
			row, col := view.StartRow+vRow, view.StartCol+vCol
			cell := g.Grid.GetCell(row, col)
			x, y := e.tileOrigin(row, col)

			switch {
			case cell == nil || !cell.Discovered:
				continue
			case !cell.Floor:
				e.drawTileWithBg(screen, IconWall, x, y, colorWall, colorWallBg)
			case cell.Visited:
				e.drawColoredChar(screen, IconVisited, x, y, colorFloorVisited)
			default:
				e.drawColoredChar(screen, IconUnvisited, x, y, colorFloor)
			}
		}
	}
}

// drawTileWithBg draws a tile icon over a filled background
func (e *EbitenRenderer) drawTileWithBg(screen *ebiten.Image, icon string, x, y float64, col, bg color.Color) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(e.tileSize), float32(e.tileSize), bg, false)
	e.drawColoredChar(screen, icon, x, y, col)
}

// drawEvents draws every visible event inside the viewport
func (e *EbitenRenderer) drawEvents(screen *ebiten.Image) {
	for _, ev := range e.game.Events {
		if !ev.Visible() || !e.cam.view.Contains(ev.Row, ev.Col) || !e.discovered(ev.Row, ev.Col) {
			continue
		}
		icon := ev.DisplayIcon()
		if icon == "" {
			icon = IconEvent
		}
		col := colorEvent
		if e.eventHasPopup(ev.ID) {
			col = colorEventTalking
		}
		x, y := e.tileOrigin(ev.Row, ev.Col)
		e.drawColoredChar(screen, icon, x, y, col)
	}
}

// drawPlayer draws the player and a small mark on the side it faces
func (e *EbitenRenderer) drawPlayer(screen *ebiten.Image) {
	g := e.game
	x, y := e.tileOrigin(g.PlayerRow, g.PlayerCol)
	e.drawColoredChar(screen, PlayerIcon, x, y, colorPlayer)

	mark, ok := facingMarks[g.Facing.String()]
	if !ok {
		return
	}
	dr, dc := g.Facing.Delta()
	half := float64(e.tileSize) / 2
	face := e.getSansFontFace()
	mw := getTextWidthWithFace(mark, face)
	mx := x + half + float64(dc)*half*0.8 - mw/2
	my := y + half + float64(dr)*half*0.8 - face.Size/2
	drawTextWithFace(screen, mark, mx, my, colorAction, face)
}

// drawLog draws recent notices in the top left corner
func (e *EbitenRenderer) drawLog(screen *ebiten.Image) {
	face := e.getSansFontFace()
	lineHeight := face.Size + 4
	y := 10.0
	drawTextWithFace(screen, e.game.MapName, 10, y, colorAction, e.getSansBoldFontFace())
	for i, msg := range e.game.Log {
		// Older notices fade out
		alpha := float64(i+1) / float64(len(e.game.Log))
		drawTextWithFace(screen, i18n.T(msg), 10, y+lineHeight*float64(i+1), applyAlpha(colorSubtle, 0.4+0.6*alpha), face)
	}
}

// drawMessageBox draws the open message page along the bottom of the window
func (e *EbitenRenderer) drawMessageBox(screen *ebiten.Image) {
	lines := e.game.CurrentMessage()
	if lines == nil {
		return
	}
	lines = i18n.Lines(lines)

	face := e.getSansFontFace()
	lineHeight := face.Size + 8
	padding := 16.0
	margin := 20.0
	w := float64(e.windowWidth) - margin*2
	h := lineHeight*4 + padding*2
	if need := lineHeight*float64(len(lines)) + padding*2; need > h {
		h = need
	}
	x := margin
	y := float64(e.windowHeight) - h - margin

	drawRoundedRectWithShadow(screen, float32(x), float32(y), float32(w), float32(h), popupCornerRadius, popupBorderWidth,
		colorPanelBackground, colorAction, 1)
	for i, line := range lines {
		drawTextWithFace(screen, line, x+padding, y+padding+lineHeight*float64(i), colorText, face)
	}

	// Continue marker in the bottom right corner
	marker := "▾"
	drawTextWithFace(screen, marker, x+w-padding-getTextWidthWithFace(marker, face), y+h-padding-face.Size, colorAction, face)
}

// discovered reports whether the player has seen a map position
func (e *EbitenRenderer) discovered(row, col int) bool {
	c := e.game.Grid.GetCell(row, col)
	return c != nil && c.Discovered
}
