package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// drawColoredChar draws a character centered in the tile at (x, y) (uses mono font)
func (e *EbitenRenderer) drawColoredChar(screen *ebiten.Image, char string, x, y float64, col color.Color) {
	face := e.getMonoFontFace()

	// text.Measure returns the bounding box width and height
	w, h := text.Measure(char, face, 0)

	// text/v2 Draw uses top-left as the origin point
	offsetX := (float64(e.tileSize) - w) / 2
	offsetY := (float64(e.tileSize) - h) / 2

	op := &text.DrawOptions{}
	op.GeoM.Translate(x+offsetX, y+offsetY)
	op.ColorScale.ScaleWithColor(col)

	text.Draw(screen, char, face, op)
}

// drawTextWithFace draws already-translated text with its top-left at (x, y)
func drawTextWithFace(screen *ebiten.Image, str string, x, y float64, col color.Color, face *text.GoTextFace) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, str, face, op)
}

// applyAlpha applies an alpha value to a color, fading towards transparent black
func applyAlpha(c color.Color, alpha float64) color.Color {
	if alpha <= 0 {
		alpha = 0
	}
	if alpha > 1.0 {
		alpha = 1.0
	}

	r, g, b, a := c.RGBA()
	// RGBA returns values in 0-65535 range, convert to 0-255
	return color.RGBA{
		uint8(float64(r>>8) * alpha),
		uint8(float64(g>>8) * alpha),
		uint8(float64(b>>8) * alpha),
		uint8(float64(a>>8) * alpha),
	}
}

// getTextWidthWithFace returns the width of a string in pixels using the given font face.
func getTextWidthWithFace(str string, face *text.GoTextFace) float64 {
	w, _ := text.Measure(str, face, 0)
	return w
}
