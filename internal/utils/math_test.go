package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoveTowardsDoesNotOvershoot(t *testing.T) {
	got := MoveTowards(Vec2{}, Vec2{X: 1}, 5)
	assert.Equal(t, Vec2{X: 1}, got)

	got = MoveTowards(Vec2{}, Vec2{X: 10}, 2)
	assert.Equal(t, Vec2{X: 2}, got)
}

func TestNormZero(t *testing.T) {
	assert.Equal(t, Vec2{}, Vec2{}.Norm())
	assert.InDelta(t, 1.0, Vec2{X: 3, Y: 4}.Norm().Len(), 1e-12)
}

func TestOverlaps(t *testing.T) {
	assert.True(t, CirclesOverlap(Vec2{}, 1, Vec2{X: 1.5}, 0.5))
	assert.False(t, CirclesOverlap(Vec2{}, 1, Vec2{X: 1.6}, 0.5))

	assert.True(t, CircleOverlapsRect(Vec2{X: 2.2}, 0.3, Vec2{}, 4, 2))
	assert.False(t, CircleOverlapsRect(Vec2{Y: 1.5}, 0.3, Vec2{}, 4, 2))
}

func TestPRNGDeterministic(t *testing.T) {
	a := NewPRNGService(7)
	b := NewPRNGService(7)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Intn(100), b.Intn(100))
	}
	assert.Equal(t, int64(7), a.Seed())
	assert.NotZero(t, NewPRNGService(0).Seed())
}
