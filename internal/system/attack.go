// internal/system/attack.go
package system

import (
	"arena-survivors/internal/component"
	"arena-survivors/internal/config"
	"arena-survivors/internal/entity"
	"arena-survivors/internal/utils"
)

// AttackSystem fires the player's volley at the nearest hostile.
type AttackSystem struct {
	ecs       *entity.ECS
	clock     *component.SimState
	targeting *TargetingSystem
	rng       *utils.PRNGService
}

func NewAttackSystem(ecs *entity.ECS, clock *component.SimState, targeting *TargetingSystem, rng *utils.PRNGService) *AttackSystem {
	return &AttackSystem{
		ecs:       ecs,
		clock:     clock,
		targeting: targeting,
		rng:       rng,
	}
}

func (s *AttackSystem) Update(deltaTime float64) {
	if s.clock.Paused() {
		return
	}
	player := s.ecs.Player
	attack := s.ecs.Attack
	if attack == nil || !s.ecs.Alive(player) {
		return
	}
	attack.ConsumeGrants()

	origin, _ := s.ecs.PositionOf(player)
	target, ok := s.targeting.Nearest(origin)
	if !ok {
		return
	}

	stats := s.ecs.Stats[player]
	if attack.CanFire {
		targetPos, _ := s.ecs.PositionOf(target)
		s.fire(stats, origin, targetPos)
		s.targeting.Mark(target)
		attack.CanFire = false
	}

	attack.CooldownElapsed += deltaTime
	if attack.CooldownElapsed >= stats.AttackSpeed {
		attack.CanFire = true
		attack.CooldownElapsed = 0
	}
}

func (s *AttackSystem) fire(stats *component.StatBlock, origin, target utils.Vec2) {
	dir := target.Sub(origin).Norm()
	if dir == (utils.Vec2{}) {
		dir = utils.Vec2{X: 1}
	}
	for range s.ecs.Attack.Templates {
		p := &component.Projectile{
			Damage:            stats.AttackDamage,
			PierceBudget:      stats.Pierce,
			LifespanRemaining: stats.ProjectileLifespan,
			OwnerIsPlayer:     true,
			Direction:         dir,
			Speed:             stats.AttackRange,
		}
		if s.rng.Float64()*100 <= stats.CritChance {
			p.Damage += stats.AttackDamage
		}
		s.ecs.SpawnProjectile(p, origin.X, origin.Y, config.ProjectileRadius)
	}
}
