package activemessage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDisplay is a Layer with fixed-width text and one anchor per event ID
type fakeDisplay struct {
	*Layer
	anchors map[int]*pointAnchor
}

func newFakeDisplay() *fakeDisplay {
	return &fakeDisplay{Layer: NewLayer(), anchors: map[int]*pointAnchor{}}
}

func (d *fakeDisplay) TextWidth(line string) float64 {
	return float64(len(line) * 10)
}

func (d *fakeDisplay) Anchor(eventID int) Anchor {
	a, ok := d.anchors[eventID]
	if !ok {
		a = &pointAnchor{x: 320, y: 480}
		d.anchors[eventID] = a
	}
	return a
}

func TestController_AutoMessageShowsPopup(t *testing.T) {
	d := newFakeDisplay()
	c := NewController(d, DefaultSettings())
	c.PageLoaded(7, []string{"<AutoMessage:Welcome!>"})

	assert.Equal(t, 0, c.EventUpdated(7, 5, false))
	assert.Equal(t, 1, c.EventUpdated(7, 1, false))
	require.Equal(t, 1, d.Len())

	p := d.Popups()[0]
	assert.Equal(t, []string{"Welcome!"}, p.Lines())
	assert.Equal(t, DefaultDuration, p.Remaining())
	assert.Equal(t, 320.0-80, p.X())

	assert.Equal(t, 0, c.EventUpdated(7, 1, false))
}

func TestController_RandomRerolledPerTrigger(t *testing.T) {
	d := newFakeDisplay()
	picks := &sequencePicker{seq: []int{1, 0, 2}}
	c := NewController(d, DefaultSettings(), WithPicker(picks))
	c.PageLoaded(1, []string{`<LoopMessage:<rand:["a","b","c"]>, 1>`})

	for i := 0; i < 3; i++ {
		c.EventUpdated(1, 10, false)
	}
	var got []string
	for _, p := range d.Popups() {
		got = append(got, p.Text())
	}
	assert.Equal(t, []string{"b", "a", "c"}, got)
}

type sequencePicker struct {
	seq []int
	i   int
}

func (s *sequencePicker) Intn(n int) int {
	v := s.seq[s.i%len(s.seq)] % n
	s.i++
	return v
}

func TestController_TranslatesAndSplitsLines(t *testing.T) {
	d := newFakeDisplay()
	c := NewController(d, DefaultSettings(), WithTranslator(strings.ToUpper))
	c.PageLoaded(2, []string{`<AutoMessage:hi\nthere>`})
	c.EventUpdated(2, 0, false)

	require.Equal(t, 1, d.Len())
	p := d.Popups()[0]
	assert.Equal(t, []string{"HI", "THERE"}, p.Lines())
	assert.Equal(t, 36+2*36, p.Height())
}

func TestController_BusySuppresses(t *testing.T) {
	d := newFakeDisplay()
	c := NewController(d, DefaultSettings())
	c.PageLoaded(3, []string{"<AutoMessage:x>", "<LoopMessage:y, 2>"})
	for i := 0; i < 10; i++ {
		assert.Equal(t, 0, c.EventUpdated(3, 0, true))
	}
	assert.Equal(t, 0, d.Len())
	s, ok := c.State(3)
	require.True(t, ok)
	assert.Equal(t, 2, s.LoopCounter())
}

func TestController_PageChangeReplacesState(t *testing.T) {
	d := newFakeDisplay()
	c := NewController(d, DefaultSettings())
	c.PageLoaded(4, []string{"<AutoMessage:first page>"})
	c.EventUpdated(4, 0, false)

	c.PageLoaded(4, []string{"<AutoMessage:second page>"})
	assert.Equal(t, 1, c.EventUpdated(4, 0, false), "shown flag resets on page load")
	assert.Equal(t, "second page", d.Popups()[1].Text())

	c.PageLoaded(4, nil)
	_, ok := c.State(4)
	assert.False(t, ok)
	assert.Equal(t, 0, c.EventUpdated(4, 0, false))
}

func TestController_ConfiguredDurationAndThreshold(t *testing.T) {
	d := newFakeDisplay()
	s := DefaultSettings()
	s.DurationFrames = 5
	s.Threshold = 0
	c := NewController(d, s)
	c.PageLoaded(5, []string{"<AutoMessage:close>"})

	assert.Equal(t, 0, c.EventUpdated(5, 1, false))
	assert.Equal(t, 1, c.EventUpdated(5, 0, false))
	assert.Equal(t, 5, d.Popups()[0].Duration())
}

func TestController_PopupsNotDeduplicated(t *testing.T) {
	d := newFakeDisplay()
	c := NewController(d, DefaultSettings())
	c.PageLoaded(1, []string{"<LoopMessage:again, 1>"})
	c.PageLoaded(2, []string{"<LoopMessage:again, 1>"})
	c.EventUpdated(1, 9, false)
	c.EventUpdated(2, 9, false)
	c.EventUpdated(1, 9, false)
	assert.Equal(t, 3, d.Len())
}

func TestController_ForgetAndReset(t *testing.T) {
	d := newFakeDisplay()
	c := NewController(d, DefaultSettings())
	c.PageLoaded(1, []string{"<AutoMessage:a>"})
	c.PageLoaded(2, []string{"<AutoMessage:b>"})
	require.Equal(t, 2, c.Len())

	c.Forget(1)
	assert.Equal(t, 1, c.Len())
	c.Reset()
	assert.Equal(t, 0, c.Len())
}

func TestController_PopupFollowsEvent(t *testing.T) {
	d := newFakeDisplay()
	c := NewController(d, DefaultSettings())
	c.PageLoaded(9, []string{"<AutoMessage:hey>"})
	c.EventUpdated(9, 0, false)
	d.anchors[9].x = 1000
	d.Update()
	assert.Equal(t, 1000.0-80, d.Popups()[0].X())
}
