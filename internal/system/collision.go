// internal/system/collision.go
package system

import (
	"arena-survivors/internal/component"
	"arena-survivors/internal/config"
	"arena-survivors/internal/entity"
	"arena-survivors/internal/event"
	"arena-survivors/internal/types"
	"arena-survivors/internal/utils"
)

// CollisionSystem keeps death-field occupancy current and resolves
// hostile contact with the player.
type CollisionSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	clock           *component.SimState
	damage          *DamageSystem
	cfg             *config.GameConfig

	// hostiles currently overlapping the player
	touching map[types.EntityID]bool
}

func NewCollisionSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, clock *component.SimState, damage *DamageSystem, cfg *config.GameConfig) *CollisionSystem {
	return &CollisionSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		clock:           clock,
		damage:          damage,
		cfg:             cfg,
		touching:        make(map[types.EntityID]bool),
	}
}

func (s *CollisionSystem) Update(deltaTime float64) {
	if s.clock.Paused() {
		return
	}
	s.updateZone()
	s.resolveContacts()
}

func (s *CollisionSystem) updateZone() {
	zone, ok := s.ecs.Zones[s.ecs.Zone]
	if !ok {
		return
	}
	ownerPos, ok := s.ecs.PositionOf(zone.Owner)
	if !ok {
		return
	}
	zonePos := s.ecs.Positions[s.ecs.Zone]
	zonePos.X, zonePos.Y = ownerPos.X, ownerPos.Y

	for _, id := range zone.Occupants() {
		if !s.ecs.Alive(id) && zone.Exit(id) {
			s.eventDispatcher.Emit(event.ZoneExited, event.ZoneData{Zone: s.ecs.Zone, Entity: id})
		}
	}
	for _, id := range s.ecs.Hostiles() {
		pos, _ := s.ecs.PositionOf(id)
		inside := utils.CircleOverlapsRect(pos, s.ecs.Colliders[id].Radius, ownerPos, zone.Width, zone.Height)
		switch {
		case inside && zone.Enter(id):
			s.eventDispatcher.Emit(event.ZoneEntered, event.ZoneData{Zone: s.ecs.Zone, Entity: id})
		case !inside && zone.Exit(id):
			s.eventDispatcher.Emit(event.ZoneExited, event.ZoneData{Zone: s.ecs.Zone, Entity: id})
		}
	}
}

// Touching reports whether the hostile is in contact with the player.
func (s *CollisionSystem) Touching(id types.EntityID) bool {
	return s.touching[id]
}

// resolveContacts hits the player once when a hostile starts touching it.
// A hostile has to separate before it can hit again. With self-destruct on,
// the hostile then dies through the normal damage path.
func (s *CollisionSystem) resolveContacts() {
	for id := range s.touching {
		if !s.ecs.Alive(id) {
			delete(s.touching, id)
		}
	}

	player := s.ecs.Player
	playerPos, ok := s.ecs.PositionOf(player)
	if !ok {
		return
	}
	playerRadius := s.ecs.Colliders[player].Radius

	for _, id := range s.ecs.Hostiles() {
		if !s.ecs.Alive(player) {
			return
		}
		pos, _ := s.ecs.PositionOf(id)
		if !utils.CirclesOverlap(playerPos, playerRadius, pos, s.ecs.Colliders[id].Radius) {
			delete(s.touching, id)
			continue
		}
		if s.touching[id] {
			continue
		}
		s.touching[id] = true
		stats := s.ecs.Stats[id]
		s.damage.ApplyDamage(player, stats.AttackDamage)
		if s.cfg.ContactSelfDestruct {
			s.damage.ApplyDamage(id, stats.MaxHP+2)
		}
	}
}
