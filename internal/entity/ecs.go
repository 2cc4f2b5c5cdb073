// internal/entity/ecs.go
package entity

import (
	"arena-survivors/internal/component"
	"arena-survivors/internal/config"
	"arena-survivors/internal/types"
	"arena-survivors/internal/utils"
)

type ECS struct {
	NextID types.EntityID

	Positions     map[types.EntityID]*component.Position
	Velocities    map[types.EntityID]*component.Velocity
	Colliders     map[types.EntityID]*component.Collider
	Renderables   map[types.EntityID]*component.Renderable
	Stats         map[types.EntityID]*component.StatBlock
	Lifecycles    map[types.EntityID]*component.Lifecycle
	Enemies       map[types.EntityID]*component.Enemy
	Projectiles   map[types.EntityID]*component.Projectile
	Explosions    map[types.EntityID]*component.Explosion
	Zones         map[types.EntityID]*component.AreaZone
	HostileShots  map[types.EntityID]*component.HostileAttack
	DamageFlashes map[types.EntityID]*component.DamageFlash
	Popups        map[types.EntityID]*component.DamagePopup

	Player      types.EntityID
	PlayerState *component.PlayerState
	Attack      *component.Attack
	Zone        types.EntityID

	// Archetype is the template every new hostile is cloned from.
	Archetype *component.StatBlock

	hostiles     []types.EntityID
	removals     []types.EntityID
	marked       map[types.EntityID]struct{}
}

func NewECS() *ECS {
	return &ECS{
		NextID:        1,
		Positions:     make(map[types.EntityID]*component.Position),
		Velocities:    make(map[types.EntityID]*component.Velocity),
		Colliders:     make(map[types.EntityID]*component.Collider),
		Renderables:   make(map[types.EntityID]*component.Renderable),
		Stats:         make(map[types.EntityID]*component.StatBlock),
		Lifecycles:    make(map[types.EntityID]*component.Lifecycle),
		Enemies:       make(map[types.EntityID]*component.Enemy),
		Projectiles:   make(map[types.EntityID]*component.Projectile),
		Explosions:    make(map[types.EntityID]*component.Explosion),
		Zones:         make(map[types.EntityID]*component.AreaZone),
		HostileShots:  make(map[types.EntityID]*component.HostileAttack),
		DamageFlashes: make(map[types.EntityID]*component.DamageFlash),
		Popups:        make(map[types.EntityID]*component.DamagePopup),
		marked:        make(map[types.EntityID]struct{}),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// SpawnPlayer creates the controlled actor from its archetype.
func (ecs *ECS) SpawnPlayer(archetype *component.StatBlock, x, y, radius float64) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Velocities[id] = &component.Velocity{}
	ecs.Colliders[id] = &component.Collider{Radius: radius}
	ecs.Stats[id] = archetype.Spawn()
	ecs.Lifecycles[id] = component.NewLifecycle()
	ecs.Renderables[id] = &component.Renderable{Color: config.PlayerColor, HasStroke: true}
	ecs.Player = id
	ecs.PlayerState = &component.PlayerState{}
	ecs.Attack = component.NewAttack()
	return id
}

// SpawnHostile clones the current archetype at (x, y).
func (ecs *ECS) SpawnHostile(x, y, radius float64) types.EntityID {
	id := ecs.NewEntity()
	stats := ecs.Archetype.Spawn()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Velocities[id] = &component.Velocity{}
	ecs.Colliders[id] = &component.Collider{Radius: radius}
	ecs.Stats[id] = stats
	ecs.Lifecycles[id] = component.NewLifecycle()
	ecs.Enemies[id] = &component.Enemy{}
	ecs.Renderables[id] = &component.Renderable{Color: config.HostileColor}
	if stats.Ranged {
		ecs.HostileShots[id] = &component.HostileAttack{}
	}
	ecs.hostiles = append(ecs.hostiles, id)
	return id
}

// SpawnProjectile places p at (x, y).
func (ecs *ECS) SpawnProjectile(p *component.Projectile, x, y, radius float64) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Colliders[id] = &component.Collider{Radius: radius}
	ecs.Projectiles[id] = p
	if p.OwnerIsPlayer {
		ecs.Renderables[id] = &component.Renderable{Color: config.PlayerShotColor}
	} else {
		ecs.Renderables[id] = &component.Renderable{Color: config.HostileShot}
	}
	return id
}

// SpawnExplosion places a one-shot blast at (x, y). The caller resolves its
// damage.
func (ecs *ECS) SpawnExplosion(x, y, damage, radius, duration float64) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Explosions[id] = &component.Explosion{Damage: damage, Radius: radius, Remaining: duration}
	return id
}

// AttachZone creates the death-field on the player.
func (ecs *ECS) AttachZone(width, cooldown float64) types.EntityID {
	id := ecs.NewEntity()
	p := ecs.Positions[ecs.Player]
	ecs.Positions[id] = &component.Position{X: p.X, Y: p.Y}
	ecs.Zones[id] = component.NewAreaZone(ecs.Player, width, cooldown)
	ecs.Zone = id
	return id
}

// Hostiles returns hostile ids in spawn order, skipping removed and dead ones.
func (ecs *ECS) Hostiles() []types.EntityID {
	out := make([]types.EntityID, 0, len(ecs.hostiles))
	for _, id := range ecs.hostiles {
		if ecs.Alive(id) {
			out = append(out, id)
		}
	}
	return out
}

// Alive is true for an existing entity whose lifecycle is not dead.
func (ecs *ECS) Alive(id types.EntityID) bool {
	l, ok := ecs.Lifecycles[id]
	if !ok {
		return false
	}
	_, marked := ecs.marked[id]
	return l.Alive() && !marked
}

// PositionOf returns the entity centre as a vector.
func (ecs *ECS) PositionOf(id types.EntityID) (utils.Vec2, bool) {
	p, ok := ecs.Positions[id]
	if !ok {
		return utils.Vec2{}, false
	}
	return utils.Vec2{X: p.X, Y: p.Y}, true
}

// MarkForRemoval queues id for Flush. Marking twice is harmless.
func (ecs *ECS) MarkForRemoval(id types.EntityID) {
	if _, ok := ecs.marked[id]; ok {
		return
	}
	ecs.marked[id] = struct{}{}
	ecs.removals = append(ecs.removals, id)
}

func (ecs *ECS) MarkedForRemoval(id types.EntityID) bool {
	_, ok := ecs.marked[id]
	return ok
}

// Flush removes every queued entity and prunes it from zone occupancy.
// The player is never removed; its death ends the run instead.
func (ecs *ECS) Flush() int {
	n := 0
	for _, id := range ecs.removals {
		if id == ecs.Player {
			continue
		}
		for _, z := range ecs.Zones {
			z.Exit(id)
		}
		ecs.remove(id)
		n++
	}
	ecs.removals = ecs.removals[:0]
	for id := range ecs.marked {
		delete(ecs.marked, id)
	}
	if n > 0 {
		kept := ecs.hostiles[:0]
		for _, id := range ecs.hostiles {
			if _, ok := ecs.Enemies[id]; ok {
				kept = append(kept, id)
			}
		}
		ecs.hostiles = kept
	}
	return n
}

func (ecs *ECS) remove(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Colliders, id)
	delete(ecs.Renderables, id)
	delete(ecs.Stats, id)
	delete(ecs.Lifecycles, id)
	delete(ecs.Enemies, id)
	delete(ecs.Projectiles, id)
	delete(ecs.Explosions, id)
	delete(ecs.Zones, id)
	delete(ecs.HostileShots, id)
	delete(ecs.DamageFlashes, id)
	delete(ecs.Popups, id)
}
