// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	ScreenWidth  = 1200
	ScreenHeight = 900

	TickRate       = 60
	FixedDeltaTime = 1.0 / TickRate

	// PixelsPerUnit maps arena units to screen pixels.
	PixelsPerUnit = 32.0

	// Level thresholds: level * ExperiencePerLevel.
	ExperiencePerLevel = 100.0

	// MinAttackSpeed is the lowest usable cooldown threshold in seconds.
	MinAttackSpeed = 0.1

	// Hostile growth per step.
	GrowthMaxHP           = 1.0
	GrowthAttackDamage    = 1.5
	GrowthAttackSpeed     = 0.3
	GrowthExperienceValue = 20.0

	// Level-up stat rewards.
	StatAttackDamageStep  = 1.0
	StatAttackSpeedStep   = 0.01
	StatAttackRangeStep   = 0.02
	StatMaxHPStep         = 5.0
	StatCritChanceStep    = 1.5
	StatPierceStep        = 1
	StatExpMultiplierStep = 8.0

	// Power-up increments for repeated picks.
	ExplosionDamageStep  = 0.2
	DeathFieldDamageStep = 0.2
	DeathFieldWidthStep  = 0.2

	ProjectileRadius   = 0.2
	ExplosionDuration  = 0.25
	DamageFlashSeconds = 0.15
	DamagePopupSeconds = 0.6
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	PlayerColor     = color.RGBA{70, 130, 180, 255}
	HostileColor    = color.RGBA{220, 60, 60, 255}
	TargetedColor   = color.RGBA{255, 140, 60, 255}
	FlashColor      = color.RGBA{255, 255, 255, 255}
	PlayerShotColor = color.RGBA{255, 215, 0, 255}
	HostileShot     = color.RGBA{180, 50, 230, 255}
	ExplosionColor  = color.RGBA{255, 120, 0, 160}
	DeathFieldColor = color.RGBA{120, 0, 160, 80}
	HPBarColor      = color.RGBA{200, 40, 40, 230}
	XPBarColor      = color.RGBA{70, 100, 220, 230}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
)

// SpawnPoint is an offset from the player where hostiles may appear.
type SpawnPoint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// GameConfig holds the tunables of one encounter.
type GameConfig struct {
	Seed int64 `yaml:"seed"`

	// Difficulty scheduler
	GrowthStepInterval float64 `yaml:"growth_step_interval"`

	// Spawner
	SpawnCooldown      float64      `yaml:"spawn_cooldown"`
	SpawnCooldownFloor float64      `yaml:"spawn_cooldown_floor"`
	SpawnDecrement     float64      `yaml:"spawn_decrement"`
	MaxHostiles        int          `yaml:"max_hostiles"`
	SpawnPoints        []SpawnPoint `yaml:"spawn_points"`

	// Death field
	DeathFieldCooldown float64 `yaml:"death_field_cooldown"`
	DeathFieldWidth    float64 `yaml:"death_field_width"`

	// Explosion on hit
	ExplosionRadius float64 `yaml:"explosion_radius"`

	// Collision radii
	PlayerRadius  float64 `yaml:"player_radius"`
	HostileRadius float64 `yaml:"hostile_radius"`

	// ContactSelfDestruct makes melee hostiles die on touching the player.
	ContactSelfDestruct bool `yaml:"contact_self_destruct"`
}

// DefaultConfig returns the stock encounter tuning.
func DefaultConfig() *GameConfig {
	return &GameConfig{
		GrowthStepInterval:  5.0,
		SpawnCooldown:       2.0,
		SpawnCooldownFloor:  0.5,
		SpawnDecrement:      0.1,
		MaxHostiles:         0,
		SpawnPoints:         defaultSpawnRing(12, 8),
		DeathFieldCooldown:  1.0,
		DeathFieldWidth:     4.0,
		ExplosionRadius:     1.5,
		PlayerRadius:        0.5,
		HostileRadius:       0.45,
		ContactSelfDestruct: true,
	}
}

// LoadConfig reads a YAML encounter config on top of the defaults.
// A missing file yields the defaults.
func LoadConfig(path string) (*GameConfig, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return DefaultConfig(), fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects tunings the simulation cannot run with.
func (c *GameConfig) Validate() error {
	switch {
	case c.GrowthStepInterval <= 0:
		return errors.New("growth_step_interval must be > 0")
	case c.SpawnCooldownFloor <= 0:
		return errors.New("spawn_cooldown_floor must be > 0")
	case c.SpawnCooldown < c.SpawnCooldownFloor:
		return fmt.Errorf("spawn_cooldown %.2f below floor %.2f", c.SpawnCooldown, c.SpawnCooldownFloor)
	case c.SpawnDecrement < 0:
		return errors.New("spawn_decrement must be >= 0")
	case len(c.SpawnPoints) == 0:
		return errors.New("at least one spawn point is required")
	case c.DeathFieldCooldown <= 0:
		return errors.New("death_field_cooldown must be > 0")
	}
	return nil
}

// DeathFieldHeight keeps the zone at half its width.
func DeathFieldHeight(width float64) float64 {
	return width / 2
}

func defaultSpawnRing(radius float64, n int) []SpawnPoint {
	// unit-circle directions, precomputed for 8 points
	dirs := [][2]float64{
		{1, 0}, {0.7071, 0.7071}, {0, 1}, {-0.7071, 0.7071},
		{-1, 0}, {-0.7071, -0.7071}, {0, -1}, {0.7071, -0.7071},
	}
	points := make([]SpawnPoint, 0, n)
	for i := 0; i < n && i < len(dirs); i++ {
		points = append(points, SpawnPoint{X: dirs[i][0] * radius, Y: dirs[i][1] * radius})
	}
	return points
}
