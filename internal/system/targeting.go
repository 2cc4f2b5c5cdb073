// internal/system/targeting.go
package system

import (
	"arena-survivors/internal/entity"
	"arena-survivors/internal/types"
	"arena-survivors/internal/utils"
)

// TargetingSystem picks what the player shoots at.
type TargetingSystem struct {
	ecs *entity.ECS
}

func NewTargetingSystem(ecs *entity.ECS) *TargetingSystem {
	return &TargetingSystem{ecs: ecs}
}

// Nearest returns the live hostile closest to origin. On equal distances
// the earliest spawned wins.
func (s *TargetingSystem) Nearest(origin utils.Vec2) (types.EntityID, bool) {
	best := types.NoEntity
	bestDist := 0.0
	for _, id := range s.ecs.Hostiles() {
		pos, ok := s.ecs.PositionOf(id)
		if !ok {
			continue
		}
		d := utils.Dist(origin, pos)
		if best == types.NoEntity || d < bestDist {
			best, bestDist = id, d
		}
	}
	return best, best != types.NoEntity
}

// Mark flags id as targeted. The flag is informational only.
func (s *TargetingSystem) Mark(id types.EntityID) {
	if stats, ok := s.ecs.Stats[id]; ok {
		stats.Targeted = true
	}
}
