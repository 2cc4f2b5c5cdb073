// internal/component/game_state.go
package component

import (
	"context"

	"github.com/looplab/fsm"
)

const (
	SimRunning    = "running"
	SimLevelPause = "level_pause"
	SimGameOver   = "game_over"

	eventPause  = "pause"
	eventResume = "resume"
	eventEnd    = "end"
)

// SimState is the simulation clock gate. Every tick-driven system checks
// Paused before doing any work.
type SimState struct {
	machine *fsm.FSM

	Tick    uint64
	Elapsed float64
}

// NewSimState starts in the running state. onEnter, if non-nil, is called
// with the destination of every transition.
func NewSimState(onEnter func(from, to string)) *SimState {
	callbacks := fsm.Callbacks{}
	if onEnter != nil {
		callbacks["enter_state"] = func(_ context.Context, e *fsm.Event) {
			onEnter(e.Src, e.Dst)
		}
	}
	return &SimState{
		machine: fsm.NewFSM(
			SimRunning,
			fsm.Events{
				{Name: eventPause, Src: []string{SimRunning}, Dst: SimLevelPause},
				{Name: eventResume, Src: []string{SimLevelPause}, Dst: SimRunning},
				{Name: eventEnd, Src: []string{SimRunning, SimLevelPause}, Dst: SimGameOver},
			},
			callbacks,
		),
	}
}

// Paused is true while a level-up choice is pending or the run has ended.
func (s *SimState) Paused() bool {
	return !s.machine.Is(SimRunning)
}

func (s *SimState) Current() string {
	return s.machine.Current()
}

func (s *SimState) Over() bool {
	return s.machine.Is(SimGameOver)
}

// Pause suspends the clock for a level-up choice. Returns false if the
// simulation was not running.
func (s *SimState) Pause() bool {
	return s.machine.Event(context.Background(), eventPause) == nil
}

// Resume restarts the clock after a level-up choice.
func (s *SimState) Resume() bool {
	return s.machine.Event(context.Background(), eventResume) == nil
}

// End stops the run for good.
func (s *SimState) End() bool {
	return s.machine.Event(context.Background(), eventEnd) == nil
}

// Advance moves the clock forward by one tick.
func (s *SimState) Advance(dt float64) {
	s.Tick++
	s.Elapsed += dt
}
