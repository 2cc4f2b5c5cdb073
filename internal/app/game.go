// internal/app/game.go
package app

import (
	"fmt"

	"arena-survivors/internal/component"
	"arena-survivors/internal/config"
	"arena-survivors/internal/defs"
	"arena-survivors/internal/entity"
	"arena-survivors/internal/event"
	"arena-survivors/internal/logger"
	"arena-survivors/internal/system"
	"arena-survivors/internal/utils"
)

// Game holds one run: the registry, the systems and the clock that gates
// them.
type Game struct {
	Config          *config.GameConfig
	ECS             *entity.ECS
	EventDispatcher *event.Dispatcher
	Clock           *component.SimState
	Rng             *utils.PRNGService
	Recorder        *Recorder

	MovementSystem      *system.MovementSystem
	DifficultySystem    *system.DifficultySystem
	SpawnSystem         *system.SpawnSystem
	CollisionSystem     *system.CollisionSystem
	TargetingSystem     *system.TargetingSystem
	AttackSystem        *system.AttackSystem
	HostileAttackSystem *system.HostileAttackSystem
	ProjectileSystem    *system.ProjectileSystem
	AreaEffectSystem    *system.AreaEffectSystem
	DamageSystem        *system.DamageSystem
	ProgressionSystem   *system.ProgressionSystem
	VisualEffectSystem  *system.VisualEffectSystem
}

// NewGame builds a run from the encounter config and the two archetypes.
// Archetypes are copied, so the caller may reuse them for the next run.
func NewGame(cfg *config.GameConfig, archetypes *defs.Archetypes) (*Game, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}
	if archetypes == nil {
		return nil, fmt.Errorf("new game: %w", defs.ErrArchetypeMissing)
	}
	if err := archetypes.Validate(); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(cfg.Seed)

	g := &Game{
		Config:          cfg,
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		Rng:             rng,
	}
	g.Clock = component.NewSimState(func(from, to string) {
		logger.Debug("simulation state", "from", from, "to", to)
	})
	g.Recorder = NewRecorder(g.Clock)
	eventDispatcher.SubscribeAll(g.Recorder)

	hostile := *archetypes.Hostile
	ecs.Archetype = &hostile
	ecs.SpawnPlayer(archetypes.Player, 0, 0, cfg.PlayerRadius)

	g.ProgressionSystem = system.NewProgressionSystem(ecs, eventDispatcher, g.Clock, cfg)
	g.DamageSystem = system.NewDamageSystem(ecs, eventDispatcher, g.Clock, g.ProgressionSystem)
	g.MovementSystem = system.NewMovementSystem(ecs, g.Clock)
	g.SpawnSystem = system.NewSpawnSystem(ecs, eventDispatcher, g.Clock, rng, cfg)
	g.DifficultySystem = system.NewDifficultySystem(ecs, eventDispatcher, g.Clock, g.SpawnSystem, cfg.GrowthStepInterval)
	g.CollisionSystem = system.NewCollisionSystem(ecs, eventDispatcher, g.Clock, g.DamageSystem, cfg)
	g.TargetingSystem = system.NewTargetingSystem(ecs)
	g.AttackSystem = system.NewAttackSystem(ecs, g.Clock, g.TargetingSystem, rng)
	g.HostileAttackSystem = system.NewHostileAttackSystem(ecs, g.Clock)
	g.AreaEffectSystem = system.NewAreaEffectSystem(ecs, g.Clock, g.DamageSystem, cfg)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, g.Clock, g.DamageSystem, g.AreaEffectSystem)
	g.VisualEffectSystem = system.NewVisualEffectSystem(ecs, g.Clock)

	logger.Info("run created", "seed", rng.Seed(), "spawn_cooldown", cfg.SpawnCooldown, "ranged", hostile.Ranged)
	return g, nil
}

// Update advances the simulation by one fixed tick. While paused only the
// removal queue is drained.
func (g *Game) Update(deltaTime float64) {
	if !g.Clock.Paused() {
		g.Clock.Advance(deltaTime)
	}

	g.MovementSystem.Update(deltaTime)
	g.DifficultySystem.Update(deltaTime)
	g.SpawnSystem.Update(deltaTime)
	g.CollisionSystem.Update(deltaTime)
	g.AttackSystem.Update(deltaTime)
	g.HostileAttackSystem.Update(deltaTime)
	g.ProjectileSystem.Update(deltaTime)
	g.AreaEffectSystem.Update(deltaTime)
	g.VisualEffectSystem.Update(deltaTime)

	g.ECS.Flush()
}

// SetPlayerInput sets the movement direction for the next ticks.
func (g *Game) SetPlayerInput(dx, dy float64) {
	g.MovementSystem.SetInput(dx, dy)
}

// ResumeSimulation answers the level-up on offer.
func (g *Game) ResumeSimulation(sel defs.Selection) {
	g.ProgressionSystem.Resume(sel)
}

// PendingLevelUp is the choice screen currently waiting, if any.
func (g *Game) PendingLevelUp() (event.LevelUpData, bool) {
	return g.ProgressionSystem.Pending()
}

func (g *Game) IsPaused() bool { return g.Clock.Paused() }

func (g *Game) IsOver() bool { return g.Clock.Over() }

// PlayerStats exposes the player's stat block for the HUD.
func (g *Game) PlayerStats() *component.StatBlock {
	return g.ECS.Stats[g.ECS.Player]
}

// Summary describes the run so far.
type Summary struct {
	Seed          int64   `json:"seed"`
	Ticks         uint64  `json:"ticks"`
	Survived      float64 `json:"survived_seconds"`
	Alive         bool    `json:"alive"`
	Level         int     `json:"level"`
	Kills         int     `json:"kills"`
	GrowthSteps   int     `json:"growth_steps"`
	SpawnCooldown float64 `json:"spawn_cooldown"`
	HostileLevel  int     `json:"hostile_level"`
	Projectiles   int     `json:"projectiles_per_volley"`
}

func (g *Game) Summary() Summary {
	stats := g.PlayerStats()
	return Summary{
		Seed:          g.Rng.Seed(),
		Ticks:         g.Clock.Tick,
		Survived:      g.Clock.Elapsed,
		Alive:         g.ECS.Alive(g.ECS.Player),
		Level:         stats.Level,
		Kills:         g.ECS.PlayerState.Kills,
		GrowthSteps:   g.DifficultySystem.State().Steps,
		SpawnCooldown: g.SpawnSystem.Cooldown(),
		HostileLevel:  g.ECS.Archetype.Level,
		Projectiles:   len(g.ECS.Attack.Templates),
	}
}

// FormatElapsed renders seconds as mm:ss.
func FormatElapsed(seconds float64) string {
	total := int(seconds)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
