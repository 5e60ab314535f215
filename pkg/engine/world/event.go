package world

import (
	"fmt"
	"strings"
)

// Event command codes (RPG Maker numbering)
const (
	CmdEnd           = 0
	CmdShowText      = 101
	CmdComment       = 108
	CmdControlSwitch = 121
	CmdShowTextLine  = 401
	CmdCommentLine   = 408
)

// Command is one entry of an event page's command list
type Command struct {
	Code       int   `yaml:"code"`
	Parameters []any `yaml:"parameters"`
}

// ParamString returns parameter idx as a string, or "" if absent
func (c Command) ParamString(idx int) string {
	if idx < 0 || idx >= len(c.Parameters) {
		return ""
	}
	switch v := c.Parameters[idx].(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// ParamBool returns parameter idx as a bool. Strings "on"/"true" count as true.
func (c Command) ParamBool(idx int) bool {
	if idx < 0 || idx >= len(c.Parameters) {
		return false
	}
	switch v := c.Parameters[idx].(type) {
	case bool:
		return v
	case string:
		s := strings.ToLower(v)
		return s == "on" || s == "true"
	case int:
		return v != 0
	default:
		return false
	}
}

// Condition decides whether a page may become active
type Condition struct {
	Switch    string `yaml:"switch"`    // must be ON when set
	SwitchOff string `yaml:"switchOff"` // must be OFF when set
}

// Met reports whether the condition holds for the given switch state
func (c Condition) Met(isOn func(name string) bool) bool {
	if c.Switch != "" && !isOn(c.Switch) {
		return false
	}
	if c.SwitchOff != "" && isOn(c.SwitchOff) {
		return false
	}
	return true
}

// Page is one set of behavior for an event
type Page struct {
	Condition Condition `yaml:"condition"`
	Icon      string    `yaml:"icon"`
	List      []Command `yaml:"list"`
}

// Comments returns the text of the page's comment commands in list order
func (p *Page) Comments() []string {
	if p == nil {
		return nil
	}
	var out []string
	for _, cmd := range p.List {
		if cmd.Code == CmdComment || cmd.Code == CmdCommentLine {
			out = append(out, cmd.ParamString(0))
		}
	}
	return out
}

const (
	pageUnset = -2
	pageNone  = -1
)

// Event is a map-placed object whose behavior comes from its active page
type Event struct {
	ID   int
	Name string
	Row  int
	Col  int
	Icon string

	Pages []*Page

	pageIndex int
}

// NewEvent creates an event at a position; its page is chosen on the first Refresh
func NewEvent(id int, name string, row, col int, pages []*Page) *Event {
	return &Event{
		ID:        id,
		Name:      name,
		Row:       row,
		Col:       col,
		Pages:     pages,
		pageIndex: pageUnset,
	}
}

// Refresh selects the last page whose condition is met. It returns true when
// the active page changed, and always on the first call.
func (e *Event) Refresh(isOn func(name string) bool) bool {
	next := pageNone
	for i := len(e.Pages) - 1; i >= 0; i-- {
		if e.Pages[i] != nil && e.Pages[i].Condition.Met(isOn) {
			next = i
			break
		}
	}
	if next == e.pageIndex {
		return false
	}
	e.pageIndex = next
	return true
}

// ActivePage returns the current page, or nil when no page applies
func (e *Event) ActivePage() *Page {
	if e.pageIndex < 0 || e.pageIndex >= len(e.Pages) {
		return nil
	}
	return e.Pages[e.pageIndex]
}

// PageIndex returns the index of the active page, -1 if none
func (e *Event) PageIndex() int {
	if e.pageIndex < 0 {
		return pageNone
	}
	return e.pageIndex
}

// Visible reports whether the event has an active page
func (e *Event) Visible() bool {
	return e.ActivePage() != nil
}

// DisplayIcon returns the page icon, falling back to the event icon
func (e *Event) DisplayIcon() string {
	if p := e.ActivePage(); p != nil && p.Icon != "" {
		return p.Icon
	}
	return e.Icon
}

// Distance returns the grid distance from the event to a position
func (e *Event) Distance(row, col int) int {
	return Manhattan(e.Row, e.Col, row, col)
}
