// internal/system/visual_effect.go
package system

import (
	"arena-survivors/internal/component"
	"arena-survivors/internal/entity"
)

// VisualEffectSystem ages flashes, popups and explosions.
type VisualEffectSystem struct {
	ecs   *entity.ECS
	clock *component.SimState
}

func NewVisualEffectSystem(ecs *entity.ECS, clock *component.SimState) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs, clock: clock}
}

func (s *VisualEffectSystem) Update(deltaTime float64) {
	if s.clock.Paused() {
		return
	}
	for id, flash := range s.ecs.DamageFlashes {
		flash.Timer += deltaTime
		if flash.Timer >= flash.Duration {
			delete(s.ecs.DamageFlashes, id)
		}
	}

	for id, popup := range s.ecs.Popups {
		popup.Timer += deltaTime
		popup.Y -= deltaTime
		if popup.Timer >= popup.Duration {
			s.ecs.MarkForRemoval(id)
		}
	}

	for id, blast := range s.ecs.Explosions {
		blast.Remaining -= deltaTime
		if blast.Remaining <= 0 {
			s.ecs.MarkForRemoval(id)
		}
	}
}
