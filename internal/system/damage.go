// internal/system/damage.go
package system

import (
	"arena-survivors/internal/component"
	"arena-survivors/internal/config"
	"arena-survivors/internal/entity"
	"arena-survivors/internal/event"
	"arena-survivors/internal/logger"
	"arena-survivors/internal/types"
)

// DamageSystem is the single place where HP goes down. Every hit, whatever
// its source, goes through ApplyDamage.
type DamageSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	clock           *component.SimState
	progression     *ProgressionSystem
}

func NewDamageSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, clock *component.SimState, progression *ProgressionSystem) *DamageSystem {
	return &DamageSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		clock:           clock,
		progression:     progression,
	}
}

// ApplyDamage subtracts amount from the target and resolves its death.
// Hits on dead or removed entities are ignored. It reports whether this hit
// killed the target.
func (s *DamageSystem) ApplyDamage(target types.EntityID, amount float64) bool {
	if !s.ecs.Alive(target) {
		return false
	}
	stats := s.ecs.Stats[target]
	if stats == nil {
		return false
	}

	lethal := stats.TakeDamage(amount)

	var x, y float64
	if pos, ok := s.ecs.Positions[target]; ok {
		x, y = pos.X, pos.Y
	}
	s.eventDispatcher.Emit(event.DamageTaken, event.DamageTakenData{Target: target, Amount: amount, X: x, Y: y})
	s.ecs.DamageFlashes[target] = &component.DamageFlash{Duration: config.DamageFlashSeconds}
	popup := s.ecs.NewEntity()
	s.ecs.Positions[popup] = &component.Position{X: x, Y: y}
	s.ecs.Popups[popup] = &component.DamagePopup{X: x, Y: y, Amount: amount, Duration: config.DamagePopupSeconds}

	isPlayer := target == s.ecs.Player
	if isPlayer {
		if stats.HP < 0 {
			stats.HP = 0
		}
		s.eventDispatcher.Emit(event.HPChanged, event.HPChangedData{Current: stats.HP, Max: stats.MaxHP})
	}

	if !lethal {
		return false
	}
	if !s.ecs.Lifecycles[target].Kill() {
		return false
	}

	if isPlayer {
		logger.Info("player died", "elapsed", s.clock.Elapsed, "level", stats.Level)
		s.eventDispatcher.Emit(event.PlayerDied, event.PlayerDiedData{Elapsed: s.clock.Elapsed, Level: stats.Level})
		s.clock.End()
		return true
	}

	s.ecs.MarkForRemoval(target)
	if s.ecs.PlayerState != nil {
		s.ecs.PlayerState.Kills++
	}
	logger.Debug("hostile died", "id", target, "xp", stats.ExperienceValue)
	s.eventDispatcher.Emit(event.EnemyKilled, event.EnemyKilledData{Enemy: target, Experience: stats.ExperienceValue})
	if s.progression != nil {
		s.progression.AwardExperience(stats.ExperienceValue)
	}
	return true
}

// Heal restores the player's HP up to MaxHP.
func (s *DamageSystem) Heal(target types.EntityID, amount float64) {
	if !s.ecs.Alive(target) {
		return
	}
	stats := s.ecs.Stats[target]
	stats.ApplyHeal(amount)
	if target == s.ecs.Player {
		s.eventDispatcher.Emit(event.HPChanged, event.HPChangedData{Current: stats.HP, Max: stats.MaxHP})
	}
}
