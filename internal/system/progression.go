// internal/system/progression.go
package system

import (
	"arena-survivors/internal/component"
	"arena-survivors/internal/config"
	"arena-survivors/internal/defs"
	"arena-survivors/internal/entity"
	"arena-survivors/internal/event"
	"arena-survivors/internal/logger"
)

// ProgressionSystem owns player experience, the level-up queue and the
// choice table applied on resume.
type ProgressionSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	clock           *component.SimState
	cfg             *config.GameConfig
}

func NewProgressionSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, clock *component.SimState, cfg *config.GameConfig) *ProgressionSystem {
	return &ProgressionSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		clock:           clock,
		cfg:             cfg,
	}
}

// AwardExperience credits the player and queues the level it reaches, if any. The
// first queued level pauses the simulation until a choice is made.
func (s *ProgressionSystem) AwardExperience(xp float64) {
	stats := s.ecs.Stats[s.ecs.Player]
	if stats == nil || !s.ecs.Alive(s.ecs.Player) {
		return
	}
	level, leveled := stats.AddExperience(xp)
	s.eventDispatcher.Emit(event.XPChanged, event.XPChangedData{
		Current:   stats.Experience,
		Threshold: stats.LevelThreshold(),
		Level:     stats.Level,
	})
	if !leveled {
		return
	}

	// Kills that resolve after the pause in the same tick queue behind it.
	waiting := len(s.ecs.PlayerState.PendingLevelUps) > 0
	logger.Info("level up", "level", level, "upgrade_screen", component.IsUpgradeLevel(level))
	s.ecs.PlayerState.QueueLevelUp(level)
	if waiting {
		return
	}
	if s.clock.Pause() {
		s.eventDispatcher.Emit(event.SimulationPaused, nil)
	}
	s.announce()
}

// Pending reports the level-up currently on offer.
func (s *ProgressionSystem) Pending() (event.LevelUpData, bool) {
	level, ok := s.ecs.PlayerState.CurrentLevelUp()
	if !ok {
		return event.LevelUpData{}, false
	}
	return event.LevelUpData{Level: level, IsUpgradeScreen: component.IsUpgradeLevel(level)}, true
}

func (s *ProgressionSystem) announce() {
	if data, ok := s.Pending(); ok {
		s.eventDispatcher.Emit(event.LevelUpReady, data)
	}
}

// Resume answers the level-up on offer with sel. A selection that does not
// belong to the offered screen changes nothing, but the choice is still
// consumed. The clock restarts once the queue is empty.
func (s *ProgressionSystem) Resume(sel defs.Selection) {
	if s.clock.Over() {
		return
	}
	data, ok := s.Pending()
	if !ok {
		if s.clock.Resume() {
			s.eventDispatcher.Emit(event.SimulationResumed, nil)
		}
		return
	}

	if !s.apply(data.IsUpgradeScreen, sel) {
		logger.Warning("level-up selection ignored", "level", data.Level, "upgrade_screen", data.IsUpgradeScreen, "selection", sel.String())
	}
	s.ecs.PlayerState.PopLevelUp()

	if _, more := s.Pending(); more {
		s.announce()
		return
	}
	if s.clock.Resume() {
		logger.Debug("simulation resumed", "elapsed", s.clock.Elapsed)
		s.eventDispatcher.Emit(event.SimulationResumed, nil)
	}
}

func (s *ProgressionSystem) apply(upgradeScreen bool, sel defs.Selection) bool {
	if upgradeScreen {
		if sel.Stat != defs.StatNone {
			return false
		}
		return s.applyUpgrade(sel.Upgrade)
	}
	if sel.Upgrade != defs.UpgradeNone {
		return false
	}
	return s.applyStat(sel.Stat)
}

var statMutations = map[defs.StatChoice]func(*component.StatBlock){
	defs.StatAttackDamage: func(s *component.StatBlock) { s.AttackDamage += config.StatAttackDamageStep },
	defs.StatAttackSpeed: func(s *component.StatBlock) {
		s.AttackSpeed -= config.StatAttackSpeedStep
		if s.AttackSpeed < config.MinAttackSpeed {
			s.AttackSpeed = config.MinAttackSpeed
		}
	},
	defs.StatAttackRange: func(s *component.StatBlock) { s.AttackRange += config.StatAttackRangeStep },
	defs.StatMaxHP: func(s *component.StatBlock) {
		s.MaxHP += config.StatMaxHPStep
		s.ApplyHeal(config.StatMaxHPStep)
	},
	defs.StatCritChance:    func(s *component.StatBlock) { s.CritChance += config.StatCritChanceStep },
	defs.StatPierce:        func(s *component.StatBlock) { s.Pierce += config.StatPierceStep },
	defs.StatExpMultiplier: func(s *component.StatBlock) { s.ExpMultiplier += config.StatExpMultiplierStep },
}

func (s *ProgressionSystem) applyStat(choice defs.StatChoice) bool {
	mutate, ok := statMutations[choice]
	if !ok {
		return false
	}
	stats := s.ecs.Stats[s.ecs.Player]
	mutate(stats)
	if choice == defs.StatMaxHP {
		s.eventDispatcher.Emit(event.HPChanged, event.HPChangedData{Current: stats.HP, Max: stats.MaxHP})
	}
	return true
}

func (s *ProgressionSystem) applyUpgrade(choice defs.UpgradeChoice) bool {
	ps := s.ecs.PlayerState
	stats := s.ecs.Stats[s.ecs.Player]
	switch choice {
	case defs.UpgradeExplosion:
		if ps.ExplosionEnabled {
			stats.ExplosionDamage += config.ExplosionDamageStep
		} else {
			ps.ExplosionEnabled = true
		}
	case defs.UpgradeMultiProjectile:
		s.ecs.Attack.PendingGrants++
	case defs.UpgradeDeathField:
		if ps.DeathFieldEnabled {
			stats.AreaDamage += config.DeathFieldDamageStep
			if z, ok := s.ecs.Zones[s.ecs.Zone]; ok {
				z.SetWidth(z.Width + config.DeathFieldWidthStep)
			}
		} else {
			ps.DeathFieldEnabled = true
			s.ecs.AttachZone(s.cfg.DeathFieldWidth, s.cfg.DeathFieldCooldown)
		}
	default:
		return false
	}
	return true
}
