package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHostilesPursuePlayer(t *testing.T) {
	w := newWorld(t)
	h := w.hostileAt(4, 0)

	w.movement.Update(1)

	assert.InDelta(t, 3.0, w.ecs.Positions[h].X, 1e-9)
	assert.InDelta(t, -1.0, w.ecs.Velocities[h].X, 1e-9)
}

func TestPlayerMovesFromInput(t *testing.T) {
	w := newWorld(t)
	w.movement.SetInput(1, 1)

	w.movement.Update(1)

	p := w.ecs.Positions[w.ecs.Player]
	assert.InDelta(t, 5/1.4142135623730951, p.X, 1e-9)
	assert.InDelta(t, p.X, p.Y, 1e-9)
}

func TestMovementPaused(t *testing.T) {
	w := newWorld(t)
	h := w.hostileAt(4, 0)
	w.clock.Pause()
	w.movement.Update(1)
	assert.Equal(t, 4.0, w.ecs.Positions[h].X)
}
