// internal/system/area_effect.go
package system

import (
	"arena-survivors/internal/component"
	"arena-survivors/internal/config"
	"arena-survivors/internal/entity"
	"arena-survivors/internal/types"
	"arena-survivors/internal/utils"
)

// AreaEffectSystem drives the death-field and resolves explosions.
type AreaEffectSystem struct {
	ecs    *entity.ECS
	clock  *component.SimState
	damage *DamageSystem
	cfg    *config.GameConfig
}

func NewAreaEffectSystem(ecs *entity.ECS, clock *component.SimState, damage *DamageSystem, cfg *config.GameConfig) *AreaEffectSystem {
	return &AreaEffectSystem{
		ecs:    ecs,
		clock:  clock,
		damage: damage,
		cfg:    cfg,
	}
}

// Update runs the death-field cycle: tick, cool down, tick again.
func (s *AreaEffectSystem) Update(deltaTime float64) {
	if s.clock.Paused() {
		return
	}
	zone, ok := s.ecs.Zones[s.ecs.Zone]
	if !ok {
		return
	}

	if zone.CanTick {
		amount := s.ecs.Stats[zone.Owner].AreaDamage
		for _, id := range zone.Occupants() {
			if !s.ecs.Alive(id) {
				continue
			}
			s.damage.ApplyDamage(id, amount)
		}
		zone.CanTick = false
		zone.CooldownRemaining = zone.CooldownPeriod
		return
	}

	zone.CooldownRemaining -= deltaTime
	if zone.CooldownRemaining <= 0 {
		zone.CooldownRemaining = 0
		zone.CanTick = true
	}
}

// Detonate spawns a one-shot explosion at point and damages every hostile
// it overlaps right now. Damage is read from the player at this moment.
func (s *AreaEffectSystem) Detonate(at utils.Vec2) types.EntityID {
	stats := s.ecs.Stats[s.ecs.Player]
	if stats == nil {
		return types.NoEntity
	}
	id := s.ecs.SpawnExplosion(at.X, at.Y, stats.ExplosionDamage, s.cfg.ExplosionRadius, config.ExplosionDuration)
	blast := s.ecs.Explosions[id]

	var victims []types.EntityID
	for _, h := range s.ecs.Hostiles() {
		pos, _ := s.ecs.PositionOf(h)
		r := 0.0
		if c := s.ecs.Colliders[h]; c != nil {
			r = c.Radius
		}
		if utils.CirclesOverlap(at, blast.Radius, pos, r) {
			victims = append(victims, h)
		}
	}
	for _, h := range victims {
		s.damage.ApplyDamage(h, blast.Damage)
	}
	return id
}
