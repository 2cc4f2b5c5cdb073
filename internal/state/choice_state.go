// internal/state/choice_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"arena-survivors/internal/defs"
	"arena-survivors/internal/ui"
)

var _ State = (*ChoiceState)(nil)

var choiceKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4,
	ebiten.Key5, ebiten.Key6, ebiten.Key7,
}

// ChoiceState shows the level-up overlay on top of the frozen arena.
type ChoiceState struct {
	sm   *StateMachine
	play *PlayState
	menu *ui.ChoiceMenu
}

func NewChoiceState(sm *StateMachine, play *PlayState) *ChoiceState {
	return &ChoiceState{sm: sm, play: play, menu: ui.NewChoiceMenu(play.face)}
}

func (s *ChoiceState) Enter() {}

func (s *ChoiceState) Update(deltaTime float64) {
	pending, ok := s.play.game.PendingLevelUp()
	if !ok {
		s.sm.SetState(s.play)
		return
	}

	sel, picked := defs.Selection{}, false
	for i, key := range choiceKeys {
		if inpututil.IsKeyJustPressed(key) {
			sel, picked = defs.SelectionAt(pending.IsUpgradeScreen, i), true
			break
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		picked = true
	}
	if !picked {
		return
	}

	s.play.game.ResumeSimulation(sel)
	if !s.play.game.IsPaused() {
		s.sm.SetState(s.play)
	}
}

func (s *ChoiceState) Draw(screen *ebiten.Image) {
	s.play.Draw(screen)
	if pending, ok := s.play.game.PendingLevelUp(); ok {
		s.menu.Draw(screen, pending.Level, pending.IsUpgradeScreen)
	}
}

func (s *ChoiceState) Exit() {}
