package activemessage

// Display is what the host renderer provides to show popups
type Display interface {
	Scene
	Measurer
	// Anchor returns the screen anchor of the event with the given ID
	Anchor(eventID int) Anchor
}

// Settings configures the controller
type Settings struct {
	Threshold      int    `yaml:"threshold"`
	DurationFrames int    `yaml:"durationFrames"`
	Layout         Layout `yaml:"layout"`
}

// DefaultSettings returns the standard message settings
func DefaultSettings() Settings {
	return Settings{
		Threshold:      DefaultThreshold,
		DurationFrames: DefaultDuration,
		Layout:         DefaultLayout(),
	}
}

// Option customizes a Controller
type Option func(*Controller)

// WithPicker sets the random source used for <rand:[...]> selectors
func WithPicker(p Picker) Option {
	return func(c *Controller) {
		c.picker = p
	}
}

// WithTranslator sets the function applied to resolved text before display
func WithTranslator(fn func(string) string) Option {
	return func(c *Controller) {
		c.translate = fn
	}
}

// Controller owns the message state of every event on the current map and
// turns triggers into popups.
type Controller struct {
	display   Display
	settings  Settings
	picker    Picker
	translate func(string) string

	states map[int]*EventState
}

// NewController creates a controller showing popups on d
func NewController(d Display, s Settings, opts ...Option) *Controller {
	c := &Controller{
		display:  d,
		settings: s,
		states:   make(map[int]*EventState),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// PageLoaded rebuilds the state of an event after its active page changed.
// Pass nil comments when the event has no active page.
func (c *Controller) PageLoaded(eventID int, comments []string) {
	d := ParseComments(comments)
	if d.Empty() {
		delete(c.states, eventID)
		return
	}
	s, ok := c.states[eventID]
	if !ok {
		s = NewEventState(c.settings.Threshold)
		c.states[eventID] = s
	}
	s.Load(d)
}

// EventUpdated runs one frame for an event and shows any popups it triggers.
// It returns the number of popups shown.
func (c *Controller) EventUpdated(eventID, distance int, busy bool) int {
	s, ok := c.states[eventID]
	if !ok {
		return 0
	}
	triggers := s.Tick(distance, busy)
	for _, t := range triggers {
		c.show(eventID, t)
	}
	return len(triggers)
}

func (c *Controller) show(eventID int, t Trigger) {
	text := Resolve(t.Text, c.picker)
	if c.translate != nil {
		text = c.translate(text)
	}
	p := NewPopup(c.display.Anchor(eventID), text, c.settings.DurationFrames, c.display, c.settings.Layout)
	p.AttachTo(c.display)
}

// State returns the message state of an event
func (c *Controller) State(eventID int) (*EventState, bool) {
	s, ok := c.states[eventID]
	return s, ok
}

// Forget drops the state of an event that left the map
func (c *Controller) Forget(eventID int) {
	delete(c.states, eventID)
}

// Reset drops all event state, e.g. on map transfer
func (c *Controller) Reset() {
	c.states = make(map[int]*EventState)
}

// Len returns the number of events with message directives
func (c *Controller) Len() int {
	return len(c.states)
}
