package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"arena-survivors/internal/event"
)

func TestGrowthStepEveryInterval(t *testing.T) {
	w := newWorld(t)

	for i := 0; i < 4; i++ {
		w.difficulty.Update(1)
	}
	assert.Zero(t, w.difficulty.State().Steps)

	w.difficulty.Update(1)
	assert.Equal(t, 1, w.difficulty.State().Steps)
	assert.Equal(t, 2, w.ecs.Archetype.Level)
	assert.Equal(t, 11.0, w.ecs.Archetype.MaxHP)
	assert.InDelta(t, 1.9, w.spawn.Cooldown(), 1e-9)
	assert.Equal(t, 1, w.count(event.GrowthStepApplied))
}

func TestGrowthStepCatchUp(t *testing.T) {
	w := newWorld(t)
	w.difficulty.Update(12)

	s := w.difficulty.State()
	assert.Equal(t, 2, s.Steps)
	assert.InDelta(t, 2.0, s.SinceStep, 1e-9)
	assert.Equal(t, 3, w.ecs.Archetype.Level)
}

func TestSpawnCooldownFloor(t *testing.T) {
	w := newWorld(t)
	w.spawn.SetCooldown(0.6)

	for i := 0; i < 10; i++ {
		w.difficulty.Update(w.cfg.GrowthStepInterval)
		assert.GreaterOrEqual(t, w.spawn.Cooldown(), 0.5)
	}
	assert.Equal(t, 0.5, w.spawn.Cooldown())
}

func TestDifficultyIgnoresPausedTime(t *testing.T) {
	w := newWorld(t)
	w.clock.Pause()
	w.difficulty.Update(60)
	assert.Zero(t, w.difficulty.State().Steps)
	assert.Zero(t, w.difficulty.State().Elapsed)
}

func TestGrowthNotRetroactive(t *testing.T) {
	w := newWorld(t)
	old := w.hostileAt(5, 0)
	w.difficulty.Update(5)
	fresh := w.hostileAt(6, 0)

	assert.Equal(t, 10.0, w.ecs.Stats[old].MaxHP)
	assert.Equal(t, 11.0, w.ecs.Stats[fresh].MaxHP)
	assert.Equal(t, 11.0, w.ecs.Stats[fresh].HP)
}
