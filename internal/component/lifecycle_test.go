package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLifecycleKillOnce(t *testing.T) {
	l := NewLifecycle()
	assert.True(t, l.Alive())

	assert.True(t, l.Kill())
	assert.False(t, l.Alive())

	assert.False(t, l.Kill(), "dead is terminal")
}
