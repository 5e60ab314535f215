package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"

	"activemessage/pkg/game/activemessage"
)

// popupAlpha fades a popup in over its first frames and out over its last ones
func popupAlpha(p *activemessage.Popup) float64 {
	age := p.Duration() - p.Remaining()
	alpha := 1.0
	if age < popupFadeFrames {
		alpha = float64(age+1) / popupFadeFrames
	}
	if p.Remaining() < popupFadeFrames {
		if out := float64(p.Remaining()) / popupFadeFrames; out < alpha {
			alpha = out
		}
	}
	return alpha
}

// drawPopups renders the active message popups on top of the map
func (e *EbitenRenderer) drawPopups(screen *ebiten.Image) {
	l := e.Layer.Popups()
	if len(l) == 0 {
		return
	}
	for _, p := range l {
		layout := p.Layout()
		alpha := popupAlpha(p)
		// Skip drawing if alpha is too low (avoid rendering artifacts)
		if alpha < 0.01 {
			continue
		}

		x, y := float32(p.X()), float32(p.Y())
		w, h := float32(p.Width()), float32(p.Height())
		drawRoundedRectWithShadow(screen, x, y, w, h, popupCornerRadius, popupBorderWidth,
			applyAlpha(colorPopupBackground, alpha), applyAlpha(colorPopupBorder, alpha), float32(alpha))

		// Lines are centered horizontally; the header is split above and below the text
		top := p.Y() + float64(layout.Header)/2
		for i, line := range p.Lines() {
			lw := e.TextWidth(line)
			lx := p.X() + (float64(p.Width())-lw)/2
			ly := top + float64(i*layout.LineHeight) + (float64(layout.LineHeight)-popupFontSize)/2
			drawTextWithFace(screen, line, lx, ly, applyAlpha(colorPopupText, alpha), e.popupFace)
		}
	}
}

// eventHasPopup reports whether any popup is anchored to the event
func (e *EbitenRenderer) eventHasPopup(eventID int) bool {
	for _, p := range e.Layer.Popups() {
		if a, ok := p.Anchor().(eventAnchor); ok && a.id == eventID {
			return true
		}
	}
	return false
}
