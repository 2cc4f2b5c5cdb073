package component

import (
	"context"

	"github.com/looplab/fsm"
)

const (
	StateAlive = "alive"
	StateDead  = "dead"

	eventDie = "die"
)

// Lifecycle tracks Alive -> Dead. Dead is terminal and the transition is
// accepted once, so a second lethal hit in the same tick is ignored.
type Lifecycle struct {
	machine *fsm.FSM
}

func NewLifecycle() *Lifecycle {
	return &Lifecycle{
		machine: fsm.NewFSM(
			StateAlive,
			fsm.Events{
				{Name: eventDie, Src: []string{StateAlive}, Dst: StateDead},
			},
			fsm.Callbacks{},
		),
	}
}

// Kill moves the entity to Dead and reports whether this call did it.
func (l *Lifecycle) Kill() bool {
	return l.machine.Event(context.Background(), eventDie) == nil
}

func (l *Lifecycle) Alive() bool {
	return l.machine.Is(StateAlive)
}
