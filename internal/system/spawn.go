// internal/system/spawn.go
package system

import (
	"arena-survivors/internal/component"
	"arena-survivors/internal/config"
	"arena-survivors/internal/entity"
	"arena-survivors/internal/event"
	"arena-survivors/internal/utils"
)

// SpawnSystem creates hostiles from the current archetype around the
// player on a cooldown.
type SpawnSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	clock           *component.SimState
	rng             *utils.PRNGService
	cfg             *config.GameConfig
	spawner         *component.Spawner
}

func NewSpawnSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, clock *component.SimState, rng *utils.PRNGService, cfg *config.GameConfig) *SpawnSystem {
	return &SpawnSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		clock:           clock,
		rng:             rng,
		cfg:             cfg,
		spawner: &component.Spawner{
			Cooldown:    cfg.SpawnCooldown,
			CanSpawn:    true,
			Floor:       cfg.SpawnCooldownFloor,
			Decrement:   cfg.SpawnDecrement,
			MaxHostiles: cfg.MaxHostiles,
		},
	}
}

func (s *SpawnSystem) Cooldown() float64 { return s.spawner.Cooldown }

// SetCooldown changes the period used from the next spawn on.
func (s *SpawnSystem) SetCooldown(cooldown float64) {
	s.spawner.Cooldown = cooldown
}

func (s *SpawnSystem) State() component.Spawner { return *s.spawner }

func (s *SpawnSystem) Update(deltaTime float64) {
	if s.clock.Paused() || s.ecs.Archetype == nil {
		return
	}
	sp := s.spawner
	if !sp.CanSpawn {
		sp.Remaining -= deltaTime
		if sp.Remaining > 0 {
			return
		}
		sp.CanSpawn = true
	}
	if sp.MaxHostiles > 0 && len(s.ecs.Hostiles()) >= sp.MaxHostiles {
		return
	}
	s.spawn()
	sp.CanSpawn = false
	sp.Remaining = sp.Cooldown
}

func (s *SpawnSystem) spawn() {
	center, ok := s.ecs.PositionOf(s.ecs.Player)
	if !ok {
		return
	}
	pt := s.cfg.SpawnPoints[s.rng.Intn(len(s.cfg.SpawnPoints))]
	x, y := center.X+pt.X, center.Y+pt.Y
	id := s.ecs.SpawnHostile(x, y, s.cfg.HostileRadius)
	s.eventDispatcher.Emit(event.HostileSpawned, event.HostileSpawnedData{Enemy: id, X: x, Y: y})
}
