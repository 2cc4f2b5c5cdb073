// internal/system/movement.go
package system

import (
	"arena-survivors/internal/component"
	"arena-survivors/internal/entity"
	"arena-survivors/internal/utils"
)

// MovementSystem moves the player from input and pulls hostiles straight
// toward the player.
type MovementSystem struct {
	ecs   *entity.ECS
	clock *component.SimState
	input utils.Vec2
}

func NewMovementSystem(ecs *entity.ECS, clock *component.SimState) *MovementSystem {
	return &MovementSystem{ecs: ecs, clock: clock}
}

// SetInput stores the desired player direction. Components are clamped
// so diagonal input is not faster.
func (s *MovementSystem) SetInput(dx, dy float64) {
	v := utils.Vec2{X: dx, Y: dy}
	if v.Len() > 1 {
		v = v.Norm()
	}
	s.input = v
}

func (s *MovementSystem) Update(deltaTime float64) {
	if s.clock.Paused() {
		return
	}
	player := s.ecs.Player
	if !s.ecs.Alive(player) {
		return
	}

	stats := s.ecs.Stats[player]
	vel := s.ecs.Velocities[player]
	pos := s.ecs.Positions[player]
	vel.X, vel.Y = s.input.X*stats.BaseSpeed, s.input.Y*stats.BaseSpeed
	pos.X += vel.X * deltaTime
	pos.Y += vel.Y * deltaTime

	target := utils.Vec2{X: pos.X, Y: pos.Y}
	for _, id := range s.ecs.Hostiles() {
		hp := s.ecs.Positions[id]
		speed := s.ecs.Stats[id].BaseSpeed
		from := utils.Vec2{X: hp.X, Y: hp.Y}
		next := utils.MoveTowards(from, target, speed*deltaTime)
		if v := s.ecs.Velocities[id]; v != nil && deltaTime > 0 {
			v.X, v.Y = (next.X-from.X)/deltaTime, (next.Y-from.Y)/deltaTime
		}
		hp.X, hp.Y = next.X, next.Y
	}
}
