// internal/app/recorder.go
package app

import (
	"arena-survivors/internal/component"
	"arena-survivors/internal/event"
)

// Record is one entry of the run's event log.
type Record struct {
	Tick  uint64  `msgpack:"t" json:"tick"`
	Type  string  `msgpack:"e" json:"type"`
	Value float64 `msgpack:"v" json:"value"`
}

// Recorder keeps the gameplay events of a run. Per-hit noise (damage,
// hp, xp, zone crossings) is counted, not stored.
type Recorder struct {
	clock   *component.SimState
	Records []Record
	Counts  map[event.EventType]int
}

func NewRecorder(clock *component.SimState) *Recorder {
	return &Recorder{clock: clock, Counts: make(map[event.EventType]int)}
}

func (r *Recorder) OnEvent(e event.Event) {
	r.Counts[e.Type]++

	var value float64
	switch d := e.Data.(type) {
	case event.LevelUpData:
		value = float64(d.Level)
	case event.EnemyKilledData:
		value = d.Experience
	case event.PlayerDiedData:
		value = d.Elapsed
	case event.GrowthStepData:
		value = d.SpawnCooldown
	case nil:
	default:
		return
	}
	r.Records = append(r.Records, Record{Tick: r.clock.Tick, Type: string(e.Type), Value: value})
}
