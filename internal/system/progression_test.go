package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arena-survivors/internal/config"
	"arena-survivors/internal/defs"
	"arena-survivors/internal/event"
)

func TestAwardExperienceLevelUpPauses(t *testing.T) {
	w := newWorld(t)
	w.player().Experience = 95

	w.progression.AwardExperience(10)

	assert.Equal(t, 2, w.player().Level)
	assert.Zero(t, w.player().Experience)
	assert.True(t, w.clock.Paused())

	e, ok := w.last(event.LevelUpReady)
	require.True(t, ok)
	assert.Equal(t, event.LevelUpData{Level: 2, IsUpgradeScreen: true}, e.Data)
	assert.Equal(t, 1, w.count(event.SimulationPaused))
}

func TestLevelUpScreenParity(t *testing.T) {
	w := newWorld(t)
	for level := 2; level <= 6; level++ {
		w.progression.AwardExperience(w.player().LevelThreshold())
		pending, ok := w.progression.Pending()
		require.True(t, ok)
		assert.Equal(t, level, pending.Level)
		assert.Equal(t, level%2 == 0, pending.IsUpgradeScreen, "level %d", level)
		w.progression.Resume(defs.Selection{})
	}
	assert.False(t, w.clock.Paused())
}

func TestResumeAppliesStat(t *testing.T) {
	cases := []struct {
		choice defs.StatChoice
		check  func(t *testing.T, w *world)
	}{
		{defs.StatAttackDamage, func(t *testing.T, w *world) { assert.Equal(t, 3.0, w.player().AttackDamage) }},
		{defs.StatAttackSpeed, func(t *testing.T, w *world) { assert.InDelta(t, 0.99, w.player().AttackSpeed, 1e-9) }},
		{defs.StatAttackRange, func(t *testing.T, w *world) { assert.InDelta(t, 10.02, w.player().AttackRange, 1e-9) }},
		{defs.StatMaxHP, func(t *testing.T, w *world) {
			assert.Equal(t, 25.0, w.player().MaxHP)
			assert.Equal(t, 25.0, w.player().HP)
		}},
		{defs.StatCritChance, func(t *testing.T, w *world) { assert.Equal(t, 1.5, w.player().CritChance) }},
		{defs.StatPierce, func(t *testing.T, w *world) { assert.Equal(t, 2, w.player().Pierce) }},
		{defs.StatExpMultiplier, func(t *testing.T, w *world) { assert.Equal(t, 8.0, w.player().ExpMultiplier) }},
	}
	for _, tc := range cases {
		t.Run(tc.choice.String(), func(t *testing.T) {
			w := newWorld(t)
			w.player().Level = 2
			w.progression.AwardExperience(200) // reaches level 3, a stat screen

			pending, ok := w.progression.Pending()
			require.True(t, ok)
			require.False(t, pending.IsUpgradeScreen)

			w.progression.Resume(defs.PickStat(tc.choice))
			tc.check(t, w)
			assert.False(t, w.clock.Paused())
			assert.Equal(t, 1, w.count(event.SimulationResumed))
		})
	}
}

func TestResumeWrongScreenIsIgnoredButResumes(t *testing.T) {
	w := newWorld(t)
	w.progression.AwardExperience(100) // level 2, upgrade screen

	w.progression.Resume(defs.PickStat(defs.StatAttackDamage))

	assert.Equal(t, 2.0, w.player().AttackDamage)
	assert.False(t, w.clock.Paused())
	_, pending := w.progression.Pending()
	assert.False(t, pending)
}

func TestResumeUnknownKeyResumes(t *testing.T) {
	w := newWorld(t)
	w.progression.AwardExperience(100)
	w.progression.Resume(defs.ParseSelection("teleport"))
	assert.False(t, w.clock.Paused())
}

func TestQueuedLevelUpsStayPaused(t *testing.T) {
	w := newWorld(t)
	w.progression.AwardExperience(100) // level 2
	w.progression.AwardExperience(200) // level 3, queued while paused

	assert.Equal(t, 1, w.count(event.LevelUpReady))

	w.progression.Resume(defs.PickUpgrade(defs.UpgradeExplosion))
	assert.True(t, w.clock.Paused())
	assert.Equal(t, 2, w.count(event.LevelUpReady))
	pending, ok := w.progression.Pending()
	require.True(t, ok)
	assert.Equal(t, 3, pending.Level)

	w.progression.Resume(defs.PickStat(defs.StatPierce))
	assert.False(t, w.clock.Paused())
	assert.True(t, w.ecs.PlayerState.ExplosionEnabled)
	assert.Equal(t, 2, w.player().Pierce)
}

func TestLargeAwardGrantsOneLevel(t *testing.T) {
	w := newWorld(t)
	w.progression.AwardExperience(1000)

	assert.Equal(t, 2, w.player().Level)
	assert.Zero(t, w.player().Experience)
	assert.Len(t, w.ecs.PlayerState.PendingLevelUps, 1)
	assert.Equal(t, 1, w.count(event.LevelUpReady))
}

func TestUpgradeRepeats(t *testing.T) {
	w := newWorld(t)
	pick := func(c defs.UpgradeChoice) {
		w.player().Level = 1
		w.player().Experience = 0
		w.progression.AwardExperience(100)
		w.progression.Resume(defs.PickUpgrade(c))
	}

	pick(defs.UpgradeExplosion)
	assert.True(t, w.ecs.PlayerState.ExplosionEnabled)
	assert.Equal(t, 2.0, w.player().ExplosionDamage)
	pick(defs.UpgradeExplosion)
	assert.InDelta(t, 2.2, w.player().ExplosionDamage, 1e-9)

	pick(defs.UpgradeDeathField)
	zone := w.ecs.Zones[w.ecs.Zone]
	require.NotNil(t, zone)
	assert.Equal(t, w.cfg.DeathFieldWidth, zone.Width)
	pick(defs.UpgradeDeathField)
	assert.InDelta(t, w.cfg.DeathFieldWidth+config.DeathFieldWidthStep, zone.Width, 1e-9)
	assert.InDelta(t, zone.Width/2, zone.Height, 1e-9)
	assert.InDelta(t, 1.2, w.player().AreaDamage, 1e-9)

	pick(defs.UpgradeMultiProjectile)
	pick(defs.UpgradeMultiProjectile)
	assert.Equal(t, 2, w.ecs.Attack.PendingGrants)
}

func TestResumeAfterGameOverDoesNothing(t *testing.T) {
	w := newWorld(t)
	w.progression.AwardExperience(100)
	w.damage.ApplyDamage(w.ecs.Player, 100)

	w.progression.Resume(defs.PickUpgrade(defs.UpgradeExplosion))
	assert.True(t, w.clock.Over())
	assert.False(t, w.ecs.PlayerState.ExplosionEnabled)
}
