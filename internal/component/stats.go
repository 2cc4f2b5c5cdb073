// internal/component/stats.go
package component

import (
	"math"

	"arena-survivors/internal/config"
)

// StatBlock is the attribute container shared by the player and hostiles.
// Only the player accumulates Experience; hostiles use Level as a
// growth-step counter.
type StatBlock struct {
	MaxHP              float64 `yaml:"max_hp"`
	HP                 float64 `yaml:"-"`
	BaseSpeed          float64 `yaml:"base_speed"`
	AttackDamage       float64 `yaml:"attack_damage"`
	AttackSpeed        float64 `yaml:"attack_speed"` // cooldown threshold in seconds, lower is faster
	AttackRange        float64 `yaml:"attack_range"` // projectile speed
	ProjectileLifespan float64 `yaml:"projectile_lifespan"`
	CritChance         float64 `yaml:"crit_chance"` // percent
	Pierce             int     `yaml:"pierce"`
	ExpMultiplier      float64 `yaml:"exp_multiplier"` // percent bonus on awarded xp
	Level              int     `yaml:"level"`
	Experience         float64 `yaml:"-"`
	ExperienceValue    float64 `yaml:"experience_value"` // xp granted to the player on death
	ExplosionDamage    float64 `yaml:"explosion_damage"`
	AreaDamage         float64 `yaml:"area_damage"`
	Ranged             bool    `yaml:"ranged"`

	Targeted bool `yaml:"-"`
}

// Spawn returns a fresh copy for a new entity with full health.
func (s StatBlock) Spawn() *StatBlock {
	s.HP = s.MaxHP
	s.Experience = 0
	s.Targeted = false
	if s.Level < 1 {
		s.Level = 1
	}
	return &s
}

// LevelThreshold is the experience needed to leave the current level.
func (s *StatBlock) LevelThreshold() float64 {
	return float64(s.Level) * config.ExperiencePerLevel
}

// TakeDamage subtracts amount and reports whether the hit was lethal.
func (s *StatBlock) TakeDamage(amount float64) bool {
	s.HP -= amount
	return s.HP <= 0
}

// ApplyHeal restores HP without exceeding MaxHP.
func (s *StatBlock) ApplyHeal(amount float64) {
	if amount <= 0 {
		return
	}
	s.HP = math.Min(s.HP+amount, s.MaxHP)
}

// AddExperience credits xp scaled by ExpMultiplier. Reaching the threshold
// raises Level by one and drops the surplus, so one award is worth at most
// one level. It returns the new level and whether it changed.
func (s *StatBlock) AddExperience(xp float64) (int, bool) {
	if xp <= 0 {
		return s.Level, false
	}
	s.Experience += xp + xp*(s.ExpMultiplier/100)
	if s.Experience < s.LevelThreshold() {
		return s.Level, false
	}
	s.Level++
	s.Experience = 0
	return s.Level, true
}

// GrowthStep applies n difficulty steps to a hostile archetype.
func (s *StatBlock) GrowthStep(n int) {
	if n <= 0 {
		return
	}
	f := float64(n)
	s.Level += n
	s.MaxHP += config.GrowthMaxHP * f
	s.AttackDamage += config.GrowthAttackDamage * f
	s.AttackSpeed = math.Max(config.MinAttackSpeed, s.AttackSpeed-config.GrowthAttackSpeed*f)
	s.ExperienceValue += config.GrowthExperienceValue * f
}

// IsUpgradeLevel reports which screen a freshly reached level opens:
// even levels offer a power-up, odd levels a stat.
func IsUpgradeLevel(level int) bool {
	return level%2 == 0
}
