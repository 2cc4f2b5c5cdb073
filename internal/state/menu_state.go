// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"arena-survivors/internal/app"
	"arena-survivors/internal/config"
	"arena-survivors/internal/logger"
)

// GameFactory builds a fresh run. Each call must return an independent game.
type GameFactory func() (*app.Game, error)

// MenuState is the title screen.
type MenuState struct {
	sm      *StateMachine
	newGame GameFactory
	err     error
}

func NewMenuState(sm *StateMachine, newGame GameFactory) *MenuState {
	return &MenuState{sm: sm, newGame: newGame}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		StartGame(m.sm, m.newGame)
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	face := basicfont.Face7x13
	text.Draw(screen, "ARENA SURVIVORS", face, config.ScreenWidth/2-52, config.ScreenHeight/2-20, config.TextLightColor)
	text.Draw(screen, "press space to start", face, config.ScreenWidth/2-70, config.ScreenHeight/2+10, config.TextLightColor)
	if m.err != nil {
		text.Draw(screen, m.err.Error(), face, 20, config.ScreenHeight-30, config.HostileColor)
	}
}

func (m *MenuState) Exit() {}

// StartGame creates a run and switches to it. On failure the menu shows the
// error.
func StartGame(sm *StateMachine, newGame GameFactory) {
	g, err := newGame()
	if err != nil {
		logger.Error("failed to start run", "error", err)
		menu := NewMenuState(sm, newGame)
		menu.err = err
		sm.SetState(menu)
		return
	}
	sm.SetState(NewPlayState(sm, g, newGame))
}
