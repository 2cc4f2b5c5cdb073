// internal/system/hostile_attack.go
package system

import (
	"sort"

	"arena-survivors/internal/component"
	"arena-survivors/internal/config"
	"arena-survivors/internal/entity"
	"arena-survivors/internal/types"
	"arena-survivors/internal/utils"
)

// HostileAttackSystem lets ranged hostiles shoot at the player.
type HostileAttackSystem struct {
	ecs   *entity.ECS
	clock *component.SimState
}

func NewHostileAttackSystem(ecs *entity.ECS, clock *component.SimState) *HostileAttackSystem {
	return &HostileAttackSystem{ecs: ecs, clock: clock}
}

func (s *HostileAttackSystem) Update(deltaTime float64) {
	if s.clock.Paused() || len(s.ecs.HostileShots) == 0 {
		return
	}
	playerPos, ok := s.ecs.PositionOf(s.ecs.Player)
	if !ok || !s.ecs.Alive(s.ecs.Player) {
		return
	}

	ids := make([]types.EntityID, 0, len(s.ecs.HostileShots))
	for id := range s.ecs.HostileShots {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		if !s.ecs.Alive(id) {
			continue
		}
		shot := s.ecs.HostileShots[id]
		stats := s.ecs.Stats[id]
		shot.CooldownElapsed += deltaTime
		if shot.CooldownElapsed < stats.AttackSpeed {
			continue
		}
		shot.CooldownElapsed = 0

		origin, _ := s.ecs.PositionOf(id)
		dir := playerPos.Sub(origin).Norm()
		if dir == (utils.Vec2{}) {
			continue
		}
		s.ecs.SpawnProjectile(&component.Projectile{
			Damage:            stats.AttackDamage,
			PierceBudget:      1,
			LifespanRemaining: stats.ProjectileLifespan,
			Direction:         dir,
			Speed:             stats.AttackRange,
		}, origin.X, origin.Y, config.ProjectileRadius)
	}
}
