package activemessage

// DefaultThreshold is the grid distance within which the player counts as near an event
const DefaultThreshold = 2

// TriggerKind tells which directive produced a trigger
type TriggerKind int

const (
	TriggerAuto TriggerKind = iota
	TriggerLoop
)

// String returns the directive name of the trigger kind
func (k TriggerKind) String() string {
	switch k {
	case TriggerAuto:
		return "AutoMessage"
	case TriggerLoop:
		return "LoopMessage"
	default:
		return "Unknown"
	}
}

// Trigger asks the caller to show a popup with the given raw text.
// Text is still unresolved: random selectors are rolled at display time.
type Trigger struct {
	Kind TriggerKind
	Text string
}

// EventState is the message state of a single map event for its active page
type EventState struct {
	threshold int

	autoText  string
	hasAuto   bool
	autoShown bool

	loopText     string
	hasLoop      bool
	loopInterval int
	loopCounter  int
}

// NewEventState creates an empty state using the given proximity threshold
func NewEventState(threshold int) *EventState {
	if threshold < 0 {
		threshold = DefaultThreshold
	}
	return &EventState{threshold: threshold}
}

// Load replaces the state with the directives of a newly activated page.
// Nothing carries over from the previous page.
func (s *EventState) Load(d Directives) {
	s.autoText = d.AutoText
	s.hasAuto = d.HasAuto
	s.autoShown = false

	s.loopText = d.LoopText
	s.hasLoop = d.HasLoop
	s.loopInterval = d.LoopInterval
	if s.loopInterval < 0 {
		s.loopInterval = 0
	}
	s.loopCounter = s.loopInterval
}

// Tick advances the state by one frame.
// While the host message box is busy the whole frame is skipped: no trigger
// fires, the loop counter keeps its value and the shown flag is left alone.
func (s *EventState) Tick(distance int, busy bool) []Trigger {
	if busy || (!s.hasAuto && !s.hasLoop) {
		return nil
	}

	var triggers []Trigger

	if s.hasAuto {
		if distance > s.threshold {
			s.autoShown = false
		} else if !s.autoShown {
			triggers = append(triggers, Trigger{Kind: TriggerAuto, Text: s.autoText})
			s.autoShown = true
		}
	}

	if s.hasLoop && s.loopInterval > 0 {
		s.loopCounter--
		if s.loopCounter <= 0 {
			triggers = append(triggers, Trigger{Kind: TriggerLoop, Text: s.loopText})
			s.loopCounter = s.loopInterval
		}
	}

	return triggers
}

// AutoText returns the auto message text of the active page, if any
func (s *EventState) AutoText() (string, bool) {
	return s.autoText, s.hasAuto
}

// AutoShown reports whether the auto message already fired in the current proximity session
func (s *EventState) AutoShown() bool {
	return s.autoShown
}

// LoopText returns the loop message text of the active page, if any
func (s *EventState) LoopText() (string, bool) {
	return s.loopText, s.hasLoop
}

// LoopInterval returns the loop interval in frames
func (s *EventState) LoopInterval() int {
	return s.loopInterval
}

// LoopCounter returns the frames left until the next loop message
func (s *EventState) LoopCounter() int {
	return s.loopCounter
}
