package ebiten

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// loadFonts parses the embedded Go fonts
func (e *EbitenRenderer) loadFonts() error {
	var err error
	if e.monoFontSource, err = text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF)); err != nil {
		return fmt.Errorf("load mono font: %w", err)
	}
	if e.sansFontSource, err = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF)); err != nil {
		return fmt.Errorf("load sans font: %w", err)
	}
	if e.sansBoldFontSource, err = text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF)); err != nil {
		return fmt.Errorf("load bold font: %w", err)
	}
	e.popupFace = &text.GoTextFace{Source: e.sansFontSource, Size: popupFontSize}
	return nil
}

// getTileFontSize returns the font size for map tiles, scaled to the current tile size
func (e *EbitenRenderer) getTileFontSize() float64 {
	// Scale font size based on tile size (default tile size is 24)
	return baseFontSize * float64(e.tileSize) / 24.0
}

// getUIFontSize returns the font size for UI text (50% of tile size)
func (e *EbitenRenderer) getUIFontSize() float64 {
	size := e.getTileFontSize() * 0.5
	if size < 12 {
		size = 12
	}
	return size
}

// getMonoFontFace returns a cached monospace font face for map tiles
func (e *EbitenRenderer) getMonoFontFace() *text.GoTextFace {
	size := e.getTileFontSize()
	if e.cachedMonoFace == nil || e.cachedTileFontSize != size {
		e.cachedTileFontSize = size
		e.cachedMonoFace = &text.GoTextFace{
			Source: e.monoFontSource,
			Size:   size,
		}
	}
	return e.cachedMonoFace
}

// getSansFontFace returns a cached sans-serif font face for UI text
func (e *EbitenRenderer) getSansFontFace() *text.GoTextFace {
	size := e.getUIFontSize()
	if e.cachedSansFace == nil || e.cachedUIFontSize != size {
		e.cachedUIFontSize = size
		e.cachedSansFace = &text.GoTextFace{
			Source: e.sansFontSource,
			Size:   size,
		}
		e.cachedSansBoldFace = &text.GoTextFace{
			Source: e.sansBoldFontSource,
			Size:   size,
		}
	}
	return e.cachedSansFace
}

// getSansBoldFontFace returns a cached sans-serif bold font face (same size as UI)
func (e *EbitenRenderer) getSansBoldFontFace() *text.GoTextFace {
	e.getSansFontFace()
	return e.cachedSansBoldFace
}

// invalidateFontCache clears cached font faces (call when tile size changes)
func (e *EbitenRenderer) invalidateFontCache() {
	e.cachedMonoFace = nil
	e.cachedSansFace = nil
	e.cachedSansBoldFace = nil
}
