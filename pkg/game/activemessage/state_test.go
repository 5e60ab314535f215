package activemessage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func autoState(text string) *EventState {
	s := NewEventState(DefaultThreshold)
	s.Load(Directives{AutoText: text, HasAuto: true})
	return s
}

func loopState(text string, interval int) *EventState {
	s := NewEventState(DefaultThreshold)
	s.Load(Directives{LoopText: text, LoopInterval: interval, HasLoop: true})
	return s
}

func TestEventState_AutoFiresOncePerSession(t *testing.T) {
	s := autoState("hello")
	distances := []int{3, 1, 1, 1, 3, 1}
	want := []bool{false, true, false, false, false, true}

	for i, d := range distances {
		got := s.Tick(d, false)
		if want[i] {
			require.Len(t, got, 1, "tick %d", i+1)
			assert.Equal(t, Trigger{Kind: TriggerAuto, Text: "hello"}, got[0])
		} else {
			assert.Empty(t, got, "tick %d", i+1)
		}
	}
}

func TestEventState_AutoBoundary(t *testing.T) {
	s := autoState("x")
	assert.Len(t, s.Tick(2, false), 1, "distance equal to threshold is in range")
	assert.True(t, s.AutoShown())
	assert.Empty(t, s.Tick(0, false))
	s.Tick(3, false)
	assert.False(t, s.AutoShown())
}

func TestEventState_LoopFiresEveryInterval(t *testing.T) {
	s := loopState("tick", 3)
	var fired []int
	for tick := 1; tick <= 10; tick++ {
		if got := s.Tick(50, false); len(got) > 0 {
			assert.Equal(t, TriggerLoop, got[0].Kind)
			fired = append(fired, tick)
		}
	}
	assert.Equal(t, []int{3, 6, 9}, fired)
}

func TestEventState_LoopIntervalOne(t *testing.T) {
	s := loopState("every", 1)
	for i := 0; i < 5; i++ {
		assert.Len(t, s.Tick(0, false), 1)
		assert.Equal(t, 1, s.LoopCounter())
	}
}

func TestEventState_LoopZeroIntervalNeverFires(t *testing.T) {
	s := loopState("never", 0)
	for i := 0; i < 10; i++ {
		assert.Empty(t, s.Tick(0, false))
	}
	assert.Equal(t, 0, s.LoopCounter())
}

func TestEventState_BothTriggersSameTick(t *testing.T) {
	s := NewEventState(DefaultThreshold)
	s.Load(Directives{AutoText: "near", HasAuto: true, LoopText: "loop", LoopInterval: 1, HasLoop: true})
	got := s.Tick(1, false)
	require.Len(t, got, 2)
	assert.Equal(t, TriggerAuto, got[0].Kind)
	assert.Equal(t, TriggerLoop, got[1].Kind)
}

func TestEventState_BusySuspendsTick(t *testing.T) {
	s := NewEventState(DefaultThreshold)
	s.Load(Directives{AutoText: "near", HasAuto: true, LoopText: "loop", LoopInterval: 3, HasLoop: true})

	assert.Len(t, s.Tick(1, false), 1) // auto fires, counter 2
	require.Equal(t, 2, s.LoopCounter())

	for i := 0; i < 5; i++ {
		assert.Empty(t, s.Tick(5, true))
	}
	assert.Equal(t, 2, s.LoopCounter(), "counter must not move while busy")
	assert.True(t, s.AutoShown(), "out-of-range reset must not happen while busy")

	assert.Empty(t, s.Tick(1, false)) // counter 1, still shown
	got := s.Tick(1, false)           // counter 0 -> fires
	require.Len(t, got, 1)
	assert.Equal(t, TriggerLoop, got[0].Kind)
}

func TestEventState_BusyDoesNotFireAuto(t *testing.T) {
	s := autoState("hi")
	assert.Empty(t, s.Tick(0, true))
	assert.False(t, s.AutoShown())
	assert.Len(t, s.Tick(0, false), 1)
}

func TestEventState_LoadResets(t *testing.T) {
	s := NewEventState(DefaultThreshold)
	d := Directives{AutoText: "a", HasAuto: true, LoopText: "b", LoopInterval: 4, HasLoop: true}
	s.Load(d)
	s.Tick(0, false)
	s.Tick(0, false)
	require.True(t, s.AutoShown())
	require.Equal(t, 2, s.LoopCounter())

	s.Load(d)
	assert.False(t, s.AutoShown())
	assert.Equal(t, 4, s.LoopCounter())
}

func TestEventState_LoadDropsPreviousPage(t *testing.T) {
	s := autoState("old")
	s.Load(Directives{LoopText: "new", LoopInterval: 2, HasLoop: true})
	_, hasAuto := s.AutoText()
	assert.False(t, hasAuto)
	assert.Empty(t, s.Tick(0, false))
	got := s.Tick(0, false)
	require.Len(t, got, 1)
	assert.Equal(t, "new", got[0].Text)
}

func TestEventState_EmptyNeverFires(t *testing.T) {
	s := NewEventState(DefaultThreshold)
	for i := 0; i < 3; i++ {
		assert.Nil(t, s.Tick(0, false))
	}
}

func TestTriggerKind_String(t *testing.T) {
	assert.Equal(t, "AutoMessage", TriggerAuto.String())
	assert.Equal(t, "LoopMessage", TriggerLoop.String())
	assert.Equal(t, "Unknown", TriggerKind(9).String())
}
