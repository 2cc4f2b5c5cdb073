package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimStateTransitions(t *testing.T) {
	var seen []string
	s := NewSimState(func(_, to string) { seen = append(seen, to) })

	assert.False(t, s.Paused())
	assert.False(t, s.Resume(), "cannot resume while running")

	assert.True(t, s.Pause())
	assert.True(t, s.Paused())
	assert.False(t, s.Pause(), "already paused")

	assert.True(t, s.Resume())
	assert.False(t, s.Paused())

	assert.True(t, s.End())
	assert.True(t, s.Over())
	assert.True(t, s.Paused())
	assert.False(t, s.Pause())
	assert.False(t, s.End())

	assert.Equal(t, []string{SimLevelPause, SimRunning, SimGameOver}, seen)
}

func TestSimStateAdvance(t *testing.T) {
	s := NewSimState(nil)
	s.Advance(0.5)
	s.Advance(0.25)
	assert.Equal(t, uint64(2), s.Tick)
	assert.InDelta(t, 0.75, s.Elapsed, 1e-9)
}
