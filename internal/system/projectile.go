// internal/system/projectile.go
package system

import (
	"sort"

	"arena-survivors/internal/component"
	"arena-survivors/internal/entity"
	"arena-survivors/internal/types"
	"arena-survivors/internal/utils"
)

// ProjectileSystem moves projectiles and resolves their hits.
type ProjectileSystem struct {
	ecs       *entity.ECS
	clock     *component.SimState
	damage    *DamageSystem
	explosion *AreaEffectSystem
}

func NewProjectileSystem(ecs *entity.ECS, clock *component.SimState, damage *DamageSystem, explosion *AreaEffectSystem) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:       ecs,
		clock:     clock,
		damage:    damage,
		explosion: explosion,
	}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	if s.clock.Paused() {
		return
	}
	ids := make([]types.EntityID, 0, len(s.ecs.Projectiles))
	for id := range s.ecs.Projectiles {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		if s.ecs.MarkedForRemoval(id) {
			continue
		}
		proj := s.ecs.Projectiles[id]
		pos := s.ecs.Positions[id]
		if proj == nil || pos == nil || proj.Exhausted() {
			s.ecs.MarkForRemoval(id)
			continue
		}

		pos.X += proj.Direction.X * proj.Speed * deltaTime
		pos.Y += proj.Direction.Y * proj.Speed * deltaTime

		if proj.OwnerIsPlayer {
			s.hitHostiles(id, proj)
		} else {
			s.hitPlayer(id, proj)
		}

		proj.LifespanRemaining -= deltaTime
		if proj.Exhausted() {
			s.ecs.MarkForRemoval(id)
		}
	}
}

func (s *ProjectileSystem) hitHostiles(id types.EntityID, proj *component.Projectile) {
	at, _ := s.ecs.PositionOf(id)
	radius := s.ecs.Colliders[id].Radius
	for _, h := range s.ecs.Hostiles() {
		if proj.PiercedCount >= proj.PierceBudget {
			return
		}
		if proj.AlreadyHit(h) || !s.overlaps(at, radius, h) {
			continue
		}
		proj.MarkHit(h)
		s.damage.ApplyDamage(h, proj.Damage)
		proj.PiercedCount++
		if s.ecs.PlayerState != nil && s.ecs.PlayerState.ExplosionEnabled {
			s.explosion.Detonate(at)
		}
	}
}

func (s *ProjectileSystem) hitPlayer(id types.EntityID, proj *component.Projectile) {
	player := s.ecs.Player
	if !s.ecs.Alive(player) || proj.AlreadyHit(player) {
		return
	}
	at, _ := s.ecs.PositionOf(id)
	if !s.overlaps(at, s.ecs.Colliders[id].Radius, player) {
		return
	}
	proj.MarkHit(player)
	s.damage.ApplyDamage(player, proj.Damage)
	proj.PiercedCount = proj.PierceBudget
	s.ecs.MarkForRemoval(id)
}

func (s *ProjectileSystem) overlaps(at utils.Vec2, radius float64, target types.EntityID) bool {
	pos, ok := s.ecs.PositionOf(target)
	if !ok {
		return false
	}
	c := s.ecs.Colliders[target]
	if c == nil {
		return false
	}
	return utils.CirclesOverlap(at, radius, pos, c.Radius)
}
