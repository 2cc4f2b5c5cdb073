// internal/component/difficulty.go
package component

// Difficulty is the time-based escalation state.
type Difficulty struct {
	Elapsed            float64
	SinceStep          float64
	GrowthStepInterval float64
	Steps              int
}

// Spawner gates hostile creation. CanSpawn starts true so the first hostile
// appears immediately.
type Spawner struct {
	Cooldown    float64
	Remaining   float64
	CanSpawn    bool
	Floor       float64
	Decrement   float64
	MaxHostiles int
}
