package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"arena-survivors/internal/utils"
)

func TestNearestPicksClosest(t *testing.T) {
	w := newWorld(t)
	w.hostileAt(5, 0)
	closest := w.hostileAt(0, 2)
	w.hostileAt(-8, 0)

	id, ok := w.targeting.Nearest(utils.Vec2{})
	assert.True(t, ok)
	assert.Equal(t, closest, id)
}

func TestNearestTieGoesToFirstSpawned(t *testing.T) {
	w := newWorld(t)
	first := w.hostileAt(3, 0)
	w.hostileAt(-3, 0)
	w.hostileAt(0, 3)

	id, _ := w.targeting.Nearest(utils.Vec2{})
	assert.Equal(t, first, id)
}

func TestNearestSkipsDeadAndEmpty(t *testing.T) {
	w := newWorld(t)
	_, ok := w.targeting.Nearest(utils.Vec2{})
	assert.False(t, ok)

	near := w.hostileAt(1, 0)
	far := w.hostileAt(4, 0)
	w.damage.ApplyDamage(near, 100)

	id, ok := w.targeting.Nearest(utils.Vec2{})
	assert.True(t, ok)
	assert.Equal(t, far, id)
}

func TestMarkSetsTargeted(t *testing.T) {
	w := newWorld(t)
	h := w.hostileAt(1, 0)
	w.targeting.Mark(h)
	assert.True(t, w.ecs.Stats[h].Targeted)

	id, _ := w.targeting.Nearest(utils.Vec2{})
	assert.Equal(t, h, id, "targeted hostiles stay eligible")
}
