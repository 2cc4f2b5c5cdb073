package system

import (
	"testing"

	"arena-survivors/internal/component"
	"arena-survivors/internal/config"
	"arena-survivors/internal/entity"
	"arena-survivors/internal/event"
	"arena-survivors/internal/types"
	"arena-survivors/internal/utils"
)

// world wires the systems the way app.Game does, without the tick loop.
type world struct {
	ecs    *entity.ECS
	events *event.Dispatcher
	clock  *component.SimState
	cfg    *config.GameConfig
	rng    *utils.PRNGService

	progression *ProgressionSystem
	damage      *DamageSystem
	targeting   *TargetingSystem
	attack      *AttackSystem
	area        *AreaEffectSystem
	projectiles *ProjectileSystem
	collision   *CollisionSystem
	spawn       *SpawnSystem
	difficulty  *DifficultySystem
	movement    *MovementSystem

	got []event.Event
}

func testPlayer() *component.StatBlock {
	return &component.StatBlock{
		MaxHP:              20,
		BaseSpeed:          5,
		AttackDamage:       2,
		AttackSpeed:        1,
		AttackRange:        10,
		ProjectileLifespan: 2,
		Pierce:             1,
		Level:              1,
		ExplosionDamage:    2,
		AreaDamage:         1,
	}
}

func testHostile() *component.StatBlock {
	return &component.StatBlock{
		MaxHP:              10,
		BaseSpeed:          1,
		AttackDamage:       1,
		AttackSpeed:        2,
		AttackRange:        5,
		ProjectileLifespan: 3,
		Pierce:             1,
		Level:              1,
		ExperienceValue:    20,
	}
}

func newWorld(t *testing.T) *world {
	t.Helper()
	w := &world{
		ecs:    entity.NewECS(),
		events: event.NewDispatcher(),
		clock:  component.NewSimState(nil),
		cfg:    config.DefaultConfig(),
		rng:    utils.NewPRNGService(42),
	}
	w.events.SubscribeAll(event.ListenerFunc(func(e event.Event) { w.got = append(w.got, e) }))

	w.ecs.Archetype = testHostile()
	w.ecs.SpawnPlayer(testPlayer(), 0, 0, w.cfg.PlayerRadius)

	w.progression = NewProgressionSystem(w.ecs, w.events, w.clock, w.cfg)
	w.damage = NewDamageSystem(w.ecs, w.events, w.clock, w.progression)
	w.targeting = NewTargetingSystem(w.ecs)
	w.attack = NewAttackSystem(w.ecs, w.clock, w.targeting, w.rng)
	w.area = NewAreaEffectSystem(w.ecs, w.clock, w.damage, w.cfg)
	w.projectiles = NewProjectileSystem(w.ecs, w.clock, w.damage, w.area)
	w.collision = NewCollisionSystem(w.ecs, w.events, w.clock, w.damage, w.cfg)
	w.spawn = NewSpawnSystem(w.ecs, w.events, w.clock, w.rng, w.cfg)
	w.difficulty = NewDifficultySystem(w.ecs, w.events, w.clock, w.spawn, w.cfg.GrowthStepInterval)
	w.movement = NewMovementSystem(w.ecs, w.clock)
	return w
}

func (w *world) player() *component.StatBlock {
	return w.ecs.Stats[w.ecs.Player]
}

func (w *world) hostileAt(x, y float64) types.EntityID {
	return w.ecs.SpawnHostile(x, y, w.cfg.HostileRadius)
}

func (w *world) count(t event.EventType) int {
	n := 0
	for _, e := range w.got {
		if e.Type == t {
			n++
		}
	}
	return n
}

func (w *world) last(t event.EventType) (event.Event, bool) {
	for i := len(w.got) - 1; i >= 0; i-- {
		if w.got[i].Type == t {
			return w.got[i], true
		}
	}
	return event.Event{}, false
}
