package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arena-survivors/internal/component"
	"arena-survivors/internal/utils"
)

func projectilesOf(w *world) []*component.Projectile {
	var out []*component.Projectile
	for _, p := range w.ecs.Projectiles {
		out = append(out, p)
	}
	return out
}

func TestAttackFiresAtNearest(t *testing.T) {
	w := newWorld(t)
	h := w.hostileAt(3, 0)

	w.attack.Update(0.1)

	shots := projectilesOf(w)
	require.Len(t, shots, 1)
	p := shots[0]
	assert.Equal(t, 2.0, p.Damage)
	assert.Equal(t, 1, p.PierceBudget)
	assert.Equal(t, 2.0, p.LifespanRemaining)
	assert.Equal(t, 10.0, p.Speed)
	assert.True(t, p.OwnerIsPlayer)
	assert.InDelta(t, 1.0, p.Direction.X, 1e-9)
	assert.InDelta(t, 0.0, p.Direction.Y, 1e-9)
	assert.True(t, w.ecs.Stats[h].Targeted)
	assert.False(t, w.ecs.Attack.CanFire)
}

func TestAttackCritAddsDamage(t *testing.T) {
	w := newWorld(t)
	w.player().CritChance = 100
	w.hostileAt(3, 0)

	w.attack.Update(0.1)

	shots := projectilesOf(w)
	require.Len(t, shots, 1)
	assert.Equal(t, 4.0, shots[0].Damage)
}

func TestAttackCooldown(t *testing.T) {
	w := newWorld(t)
	w.hostileAt(3, 0)

	w.attack.Update(0.5) // fires
	w.attack.Update(0.5) // elapsed reaches 1.0, re-arms
	assert.True(t, w.ecs.Attack.CanFire)
	w.attack.Update(0.5) // fires again

	assert.Len(t, w.ecs.Projectiles, 2)
}

func TestAttackWithoutHostilesIsNoop(t *testing.T) {
	w := newWorld(t)
	w.attack.Update(5)
	assert.Empty(t, w.ecs.Projectiles)
	assert.True(t, w.ecs.Attack.CanFire)
	assert.Zero(t, w.ecs.Attack.CooldownElapsed)
}

func TestAttackMultiProjectileGrant(t *testing.T) {
	w := newWorld(t)
	w.hostileAt(0, -3)
	w.ecs.Attack.PendingGrants = 2

	w.attack.Update(0.1)

	assert.Len(t, w.ecs.Attack.Templates, 3)
	assert.Zero(t, w.ecs.Attack.PendingGrants)
	shots := projectilesOf(w)
	require.Len(t, shots, 3)
	for _, p := range shots {
		assert.Equal(t, utils.Vec2{X: 0, Y: -1}, p.Direction)
	}
}

func TestAttackPaused(t *testing.T) {
	w := newWorld(t)
	w.hostileAt(3, 0)
	w.clock.Pause()

	w.attack.Update(0.1)
	assert.Empty(t, w.ecs.Projectiles)
}
