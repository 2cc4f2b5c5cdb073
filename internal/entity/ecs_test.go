package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arena-survivors/internal/component"
	"arena-survivors/internal/types"
)

func newTestECS() *ECS {
	ecs := NewECS()
	ecs.SpawnPlayer(&component.StatBlock{MaxHP: 10, Level: 1}, 0, 0, 0.5)
	ecs.Archetype = &component.StatBlock{MaxHP: 3, Level: 1}
	return ecs
}

func TestSpawnHostileClonesArchetype(t *testing.T) {
	ecs := newTestECS()
	id := ecs.SpawnHostile(1, 2, 0.4)

	s := ecs.Stats[id]
	require.NotNil(t, s)
	assert.Equal(t, 3.0, s.HP)

	ecs.Archetype.GrowthStep(1)
	assert.Equal(t, 3.0, s.MaxHP, "existing hostiles are not retro-buffed")
}

func TestHostilesKeepSpawnOrder(t *testing.T) {
	ecs := newTestECS()
	a := ecs.SpawnHostile(0, 0, 0.4)
	b := ecs.SpawnHostile(0, 0, 0.4)
	c := ecs.SpawnHostile(0, 0, 0.4)

	ecs.MarkForRemoval(b)
	assert.Equal(t, []types.EntityID{a, c}, ecs.Hostiles())

	assert.Equal(t, 1, ecs.Flush())
	assert.NotContains(t, ecs.Positions, b)
	assert.Equal(t, []types.EntityID{a, c}, ecs.Hostiles())
}

func TestFlushPrunesZoneOccupants(t *testing.T) {
	ecs := newTestECS()
	zoneID := ecs.AttachZone(4, 1)
	h := ecs.SpawnHostile(0, 0, 0.4)
	ecs.Zones[zoneID].Enter(h)

	ecs.MarkForRemoval(h)
	ecs.MarkForRemoval(h)
	ecs.Flush()

	assert.Empty(t, ecs.Zones[zoneID].Occupants())
}

func TestFlushKeepsPlayer(t *testing.T) {
	ecs := newTestECS()
	ecs.MarkForRemoval(ecs.Player)
	assert.Zero(t, ecs.Flush())
	assert.Contains(t, ecs.Positions, ecs.Player)
}

func TestDeadEntityIsNotAlive(t *testing.T) {
	ecs := newTestECS()
	h := ecs.SpawnHostile(0, 0, 0.4)
	ecs.Lifecycles[h].Kill()
	assert.False(t, ecs.Alive(h))
	assert.Empty(t, ecs.Hostiles())
	assert.False(t, ecs.Alive(999))
}
