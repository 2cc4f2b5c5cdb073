// internal/system/difficulty.go
package system

import (
	"math"

	"arena-survivors/internal/component"
	"arena-survivors/internal/entity"
	"arena-survivors/internal/event"
	"arena-survivors/internal/logger"
)

// DifficultySystem escalates the encounter on a fixed schedule of
// un-paused time. It never looks at the hostile count or at the player.
type DifficultySystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	clock           *component.SimState
	spawner         *SpawnSystem
	state           *component.Difficulty
}

func NewDifficultySystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, clock *component.SimState, spawner *SpawnSystem, interval float64) *DifficultySystem {
	return &DifficultySystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		clock:           clock,
		spawner:         spawner,
		state:           &component.Difficulty{GrowthStepInterval: interval},
	}
}

func (s *DifficultySystem) State() component.Difficulty {
	return *s.state
}

func (s *DifficultySystem) Update(deltaTime float64) {
	if s.clock.Paused() {
		return
	}
	d := s.state
	d.Elapsed += deltaTime
	d.SinceStep += deltaTime
	for d.SinceStep >= d.GrowthStepInterval {
		d.SinceStep -= d.GrowthStepInterval
		s.step()
	}
}

func (s *DifficultySystem) step() {
	d := s.state
	d.Steps++
	if s.ecs.Archetype != nil {
		s.ecs.Archetype.GrowthStep(1)
	}
	sp := s.spawner.State()
	cooldown := math.Max(sp.Floor, sp.Cooldown-sp.Decrement)
	s.spawner.SetCooldown(cooldown)

	logger.Debug("growth step", "step", d.Steps, "elapsed", d.Elapsed, "spawn_cooldown", cooldown)
	s.eventDispatcher.Emit(event.GrowthStepApplied, event.GrowthStepData{
		Step:          d.Steps,
		Elapsed:       d.Elapsed,
		SpawnCooldown: cooldown,
	})
}
