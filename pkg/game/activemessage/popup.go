package activemessage

import (
	"math"
	"strings"
)

// DefaultDuration is how many frames a popup stays on screen unless configured otherwise
const DefaultDuration = 100

// Measurer reports the pixel width of a line in the active font
type Measurer interface {
	TextWidth(line string) float64
}

// Anchor gives the screen position of the thing a popup belongs to.
// ok is false once the owner is gone; the popup then stays where it was.
type Anchor interface {
	ScreenPosition() (x, y float64, ok bool)
}

// Scene is the display tree popups are attached to
type Scene interface {
	Attach(p *Popup)
	Detach(p *Popup)
}

// Layout holds the popup box metrics in pixels
type Layout struct {
	MinWidth   int `yaml:"minWidth"`
	Padding    int `yaml:"padding"`
	Header     int `yaml:"header"`
	LineHeight int `yaml:"lineHeight"`
	Margin     int `yaml:"margin"` // gap between the popup and its event
}

// DefaultLayout returns the standard popup metrics
func DefaultLayout() Layout {
	return Layout{
		MinWidth:   160,
		Padding:    40,
		Header:     36,
		LineHeight: 36,
		Margin:     40,
	}
}

// Popup is a floating text box anchored to an event that removes itself
// from its scene after a number of frames.
type Popup struct {
	anchor Anchor
	layout Layout
	parent Scene

	lines    []string
	width    int
	height   int
	x, y     float64
	duration int
	left     int
}

// NewPopup builds a popup for text, sized with m and positioned at the anchor.
// A non-positive duration means DefaultDuration.
func NewPopup(anchor Anchor, text string, duration int, m Measurer, l Layout) *Popup {
	if duration <= 0 {
		duration = DefaultDuration
	}
	p := &Popup{
		anchor:   anchor,
		layout:   l,
		lines:    SplitLines(text),
		duration: duration,
		left:     duration,
	}

	widest := 0.0
	for _, line := range p.lines {
		if w := m.TextWidth(line); w > widest {
			widest = w
		}
	}
	p.width = int(math.Ceil(widest)) + l.Padding
	if p.width < l.MinWidth {
		p.width = l.MinWidth
	}
	p.height = l.Header + l.LineHeight*len(p.lines)

	p.UpdatePosition()
	return p
}

// AttachTo adds the popup to a scene
func (p *Popup) AttachTo(s Scene) {
	if s == nil || p.parent == s {
		return
	}
	p.Detach()
	p.parent = s
	s.Attach(p)
}

// Detach removes the popup from its scene. Calling it again does nothing.
func (p *Popup) Detach() {
	if p.parent == nil {
		return
	}
	parent := p.parent
	p.parent = nil
	parent.Detach(p)
}

// Update runs one frame: follow the anchor, count down, detach when done
func (p *Popup) Update() {
	p.UpdatePosition()
	if p.left > 0 {
		p.left--
		if p.left <= 0 {
			p.Detach()
		}
	}
}

// UpdatePosition centers the popup above its anchor, or below it when there
// is no room above the top of the screen.
func (p *Popup) UpdatePosition() {
	if p.anchor == nil {
		return
	}
	ax, ay, ok := p.anchor.ScreenPosition()
	if !ok {
		return
	}
	p.x, p.y = PlacePopup(ax, ay, p.width, p.height, p.layout.Margin)
}

// PlacePopup returns the top-left corner for a popup of the given size anchored at (ax, ay)
func PlacePopup(ax, ay float64, width, height, margin int) (x, y float64) {
	x = ax - float64(width)/2
	top := ay - float64(height) - float64(margin)
	if top < 0 {
		return x, ay + float64(margin)
	}
	return x, top
}

// X returns the left edge in screen pixels
func (p *Popup) X() float64 { return p.x }

// Y returns the top edge in screen pixels
func (p *Popup) Y() float64 { return p.y }

// Width returns the box width in pixels
func (p *Popup) Width() int { return p.width }

// Height returns the box height in pixels
func (p *Popup) Height() int { return p.height }

// Lines returns the display lines
func (p *Popup) Lines() []string { return p.lines }

// Duration returns the total lifetime in frames
func (p *Popup) Duration() int { return p.duration }

// Remaining returns the frames left before the popup removes itself
func (p *Popup) Remaining() int { return p.left }

// Attached reports whether the popup is currently in a scene
func (p *Popup) Attached() bool { return p.parent != nil }

// Anchor returns what the popup follows
func (p *Popup) Anchor() Anchor { return p.anchor }

// Layout returns the geometry the popup was sized with
func (p *Popup) Layout() Layout { return p.layout }

// Text returns the lines joined with line breaks
func (p *Popup) Text() string {
	return strings.Join(p.lines, "\n")
}
