package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arena-survivors/internal/event"
	"arena-survivors/internal/types"
)

func TestDeathFieldTicksOccupants(t *testing.T) {
	w := newWorld(t)
	zoneID := w.ecs.AttachZone(4, 1)
	zone := w.ecs.Zones[zoneID]
	inside := w.hostileAt(1, 0)
	outside := w.hostileAt(1, 3)

	w.collision.Update(0.5)
	assert.Equal(t, []types.EntityID{inside}, zone.Occupants())
	assert.Equal(t, 1, w.count(event.ZoneEntered))

	w.area.Update(0.5)
	assert.Equal(t, 9.0, w.ecs.Stats[inside].HP)
	assert.Equal(t, 10.0, w.ecs.Stats[outside].HP)
	assert.False(t, zone.CanTick)
	assert.Equal(t, 1.0, zone.CooldownRemaining)

	w.area.Update(0.5)
	assert.False(t, zone.CanTick)
	w.area.Update(0.5)
	assert.True(t, zone.CanTick)
	assert.Equal(t, 9.0, w.ecs.Stats[inside].HP)

	w.area.Update(0.5)
	assert.Equal(t, 8.0, w.ecs.Stats[inside].HP)
}

func TestDeathFieldExitAndFollow(t *testing.T) {
	w := newWorld(t)
	zoneID := w.ecs.AttachZone(4, 1)
	zone := w.ecs.Zones[zoneID]
	h := w.hostileAt(1, 0)
	w.collision.Update(0.1)
	require.True(t, zone.Contains(h))

	w.ecs.Positions[w.ecs.Player].X = 10
	w.collision.Update(0.1)

	assert.False(t, zone.Contains(h))
	assert.Equal(t, 1, w.count(event.ZoneExited))
	assert.Equal(t, 10.0, w.ecs.Positions[zoneID].X)
}

func TestDeathFieldSkipsDeadOccupants(t *testing.T) {
	w := newWorld(t)
	zoneID := w.ecs.AttachZone(4, 1)
	a := w.hostileAt(1, 0)
	b := w.hostileAt(-1, 0)
	w.collision.Update(0.1)
	require.Len(t, w.ecs.Zones[zoneID].Occupants(), 2)

	w.damage.ApplyDamage(a, 100)
	w.area.Update(0.1)

	assert.Equal(t, 9.0, w.ecs.Stats[b].HP)
	assert.Equal(t, 1, w.count(event.EnemyKilled))

	w.ecs.Flush()
	assert.Equal(t, []types.EntityID{b}, w.ecs.Zones[zoneID].Occupants())
}

func TestDeathFieldKillsAwardExperience(t *testing.T) {
	w := newWorld(t)
	w.ecs.AttachZone(4, 1)
	w.player().AreaDamage = 50
	w.hostileAt(1, 0)

	w.collision.Update(0.1)
	w.area.Update(0.1)

	assert.Equal(t, 20.0, w.player().Experience)
}

func TestContactHitsPlayerAndSelfDestructs(t *testing.T) {
	w := newWorld(t)
	h := w.hostileAt(0.5, 0)

	w.collision.Update(0.1)

	assert.Equal(t, 19.0, w.player().HP)
	assert.False(t, w.ecs.Alive(h))
	assert.Equal(t, 20.0, w.player().Experience)
}

func TestContactWithoutSelfDestruct(t *testing.T) {
	w := newWorld(t)
	w.cfg.ContactSelfDestruct = false
	h := w.hostileAt(0.5, 0)

	for i := 0; i < 60; i++ {
		w.collision.Update(1.0 / 60)
	}
	assert.Equal(t, 19.0, w.player().HP, "sustained overlap hits once")
	assert.True(t, w.ecs.Alive(h))
	assert.True(t, w.collision.Touching(h))

	w.ecs.Positions[h].X = 5
	w.collision.Update(0.1)
	assert.False(t, w.collision.Touching(h))

	w.ecs.Positions[h].X = 0.5
	w.collision.Update(0.1)
	w.collision.Update(0.1)
	assert.Equal(t, 18.0, w.player().HP, "re-entering hits again")
}

func TestContactForgetsRemovedHostiles(t *testing.T) {
	w := newWorld(t)
	w.cfg.ContactSelfDestruct = false
	h := w.hostileAt(0.5, 0)

	w.collision.Update(0.1)
	require.True(t, w.collision.Touching(h))

	w.damage.ApplyDamage(h, 100)
	w.ecs.Flush()
	w.collision.Update(0.1)

	assert.False(t, w.collision.Touching(h))
	assert.Equal(t, 19.0, w.player().HP)
}
