// internal/event/types.go
package event

import "arena-survivors/internal/types"

const (
	LevelUpReady      EventType = "LevelUpReady"
	HPChanged         EventType = "HPChanged"
	XPChanged         EventType = "XPChanged"
	DamageTaken       EventType = "DamageTaken"
	EnemyKilled       EventType = "EnemyKilled"
	PlayerDied        EventType = "PlayerDied"
	SimulationPaused  EventType = "SimulationPaused"
	SimulationResumed EventType = "SimulationResumed"
	GrowthStepApplied EventType = "GrowthStepApplied"
	HostileSpawned    EventType = "HostileSpawned"
	ZoneEntered       EventType = "ZoneEntered"
	ZoneExited        EventType = "ZoneExited"
)

// LevelUpData asks the presentation layer to show a choice screen.
type LevelUpData struct {
	Level           int
	IsUpgradeScreen bool
}

type HPChangedData struct {
	Current float64
	Max     float64
}

type XPChangedData struct {
	Current   float64
	Threshold float64
	Level     int
}

// DamageTakenData is emitted for every applied hit, X/Y is the victim's
// position at the time.
type DamageTakenData struct {
	Target types.EntityID
	Amount float64
	X, Y   float64
}

type EnemyKilledData struct {
	Enemy      types.EntityID
	Experience float64
}

type PlayerDiedData struct {
	Elapsed float64
	Level   int
}

type GrowthStepData struct {
	Step          int
	Elapsed       float64
	SpawnCooldown float64
}

type HostileSpawnedData struct {
	Enemy types.EntityID
	X, Y  float64
}

// ZoneData is emitted when a hostile crosses the death-field boundary.
type ZoneData struct {
	Zone   types.EntityID
	Entity types.EntityID
}
