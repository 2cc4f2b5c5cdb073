package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 5.0, cfg.GrowthStepInterval)
	assert.Equal(t, 0.5, cfg.SpawnCooldownFloor)
	assert.Len(t, cfg.SpawnPoints, 8)
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().SpawnCooldown, cfg.SpawnCooldown)
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arena.yaml")
	body := "seed: 7\nspawn_cooldown: 3\nspawn_points:\n  - {x: 5, y: 0}\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 3.0, cfg.SpawnCooldown)
	require.Len(t, cfg.SpawnPoints, 1)
	assert.Equal(t, 5.0, cfg.SpawnPoints[0].X)
	assert.Equal(t, 0.5, cfg.SpawnCooldownFloor)
}

func TestLoadConfigRejectsCooldownBelowFloor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("spawn_cooldown: 0.1\n"), 0o644))

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "below floor")
}

func TestDeathFieldHeightIsHalfWidth(t *testing.T) {
	assert.Equal(t, 2.1, DeathFieldHeight(4.2))
}
