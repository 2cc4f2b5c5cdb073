// internal/state/gameover_state.go
package state

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"arena-survivors/internal/app"
	"arena-survivors/internal/config"
	"arena-survivors/internal/logger"
)

// GameOverState freezes the last frame and offers a restart.
type GameOverState struct {
	sm      *StateMachine
	play    *PlayState
	newGame GameFactory
	summary app.Summary
}

func NewGameOverState(sm *StateMachine, play *PlayState, newGame GameFactory) *GameOverState {
	return &GameOverState{sm: sm, play: play, newGame: newGame, summary: play.game.Summary()}
}

func (s *GameOverState) Enter() {
	logger.Info("run over",
		"survived", app.FormatElapsed(s.summary.Survived),
		"level", s.summary.Level,
		"kills", s.summary.Kills)
}

func (s *GameOverState) Update(deltaTime float64) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		StartGame(s.sm, s.newGame)
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		s.sm.SetState(NewMenuState(s.sm, s.newGame))
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.play.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 160}, false)

	face := s.play.face
	cx, cy := config.ScreenWidth/2, config.ScreenHeight/2
	text.Draw(screen, "GAME OVER", face, cx-32, cy-30, config.HostileColor)
	stats := fmt.Sprintf("survived %s   level %d   kills %d",
		app.FormatElapsed(s.summary.Survived), s.summary.Level, s.summary.Kills)
	text.Draw(screen, stats, face, cx-len(stats)*7/2, cy, config.TextLightColor)
	text.Draw(screen, "[R] restart   [Esc] menu", face, cx-84, cy+30, config.TextLightColor)
}

func (s *GameOverState) Exit() {}
