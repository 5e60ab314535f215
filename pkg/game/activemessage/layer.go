package activemessage

import (
	"github.com/zyedidia/generic/mapset"
)

// Layer is a Scene that keeps popups in attach order and updates them once per frame.
// Renderers embed it to become the display tree of their popups.
type Layer struct {
	popups  []*Popup
	members mapset.Set[*Popup]
}

// NewLayer creates an empty popup layer
func NewLayer() *Layer {
	return &Layer{members: mapset.New[*Popup]()}
}

// Attach adds p on top of the existing popups
func (l *Layer) Attach(p *Popup) {
	if p == nil || l.members.Has(p) {
		return
	}
	l.members.Put(p)
	l.popups = append(l.popups, p)
	if p.parent == nil {
		p.parent = l
	}
}

// Detach removes p from the layer
func (l *Layer) Detach(p *Popup) {
	if p == nil || !l.members.Has(p) {
		return
	}
	l.members.Remove(p)
	for i, q := range l.popups {
		if q == p {
			l.popups = append(l.popups[:i], l.popups[i+1:]...)
			break
		}
	}
	p.parent = nil
}

// Update advances every attached popup by one frame.
// Popups may detach themselves while this runs.
func (l *Layer) Update() {
	snapshot := make([]*Popup, len(l.popups))
	copy(snapshot, l.popups)
	for _, p := range snapshot {
		if l.members.Has(p) {
			p.Update()
		}
	}
}

// Popups returns the attached popups, bottom first
func (l *Layer) Popups() []*Popup {
	out := make([]*Popup, len(l.popups))
	copy(out, l.popups)
	return out
}

// Len returns the number of attached popups
func (l *Layer) Len() int {
	return len(l.popups)
}

// Clear detaches every popup, e.g. when the map changes
func (l *Layer) Clear() {
	for _, p := range l.Popups() {
		l.Detach(p)
	}
}
