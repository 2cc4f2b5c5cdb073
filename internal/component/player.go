// internal/component/player.go
package component

// PlayerState holds everything the level-up screens can unlock, plus the
// queue of level-ups still waiting for a choice.
type PlayerState struct {
	ExplosionEnabled  bool
	DeathFieldEnabled bool
	Kills             int

	PendingLevelUps []int
}

// QueueLevelUp records a reached level that still needs a choice.
func (p *PlayerState) QueueLevelUp(level int) {
	p.PendingLevelUps = append(p.PendingLevelUps, level)
}

// CurrentLevelUp is the level-up being offered right now.
func (p *PlayerState) CurrentLevelUp() (int, bool) {
	if len(p.PendingLevelUps) == 0 {
		return 0, false
	}
	return p.PendingLevelUps[0], true
}

// PopLevelUp removes the level-up being offered.
func (p *PlayerState) PopLevelUp() {
	if len(p.PendingLevelUps) > 0 {
		p.PendingLevelUps = p.PendingLevelUps[1:]
	}
}
