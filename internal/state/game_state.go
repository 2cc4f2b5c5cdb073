// internal/state/game_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"arena-survivors/internal/app"
	"arena-survivors/internal/event"
	"arena-survivors/internal/system"
	"arena-survivors/internal/ui"
)

// PlayState runs the simulation and draws the arena.
type PlayState struct {
	sm       *StateMachine
	game     *app.Game
	newGame  GameFactory
	renderer *system.RenderSystem
	face     font.Face
	hud      *ui.HUD
	threat   *ui.DifficultyIndicator
	debug    bool
}

func NewPlayState(sm *StateMachine, g *app.Game, newGame GameFactory) *PlayState {
	face := basicfont.Face7x13
	ps := &PlayState{
		sm:       sm,
		game:     g,
		newGame:  newGame,
		renderer: system.NewRenderSystem(g.ECS),
		face:     face,
		hud:      ui.NewHUD(face, g.PlayerStats().MaxHP),
		threat:   ui.NewDifficultyIndicator(face, g.SpawnSystem.Cooldown()),
	}
	g.EventDispatcher.Subscribe(event.HPChanged, ps.hud)
	g.EventDispatcher.Subscribe(event.XPChanged, ps.hud)
	g.EventDispatcher.Subscribe(event.GrowthStepApplied, ps.threat)
	return ps
}

func (s *PlayState) Enter() {}

func (s *PlayState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		s.debug = !s.debug
	}

	var dx, dy float64
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dx--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dx++
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dy--
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dy++
	}
	s.game.SetPlayerInput(dx, dy)
	s.game.Update(deltaTime)

	switch {
	case s.game.IsOver():
		s.sm.SetState(NewGameOverState(s.sm, s, s.newGame))
	case s.game.IsPaused():
		if _, ok := s.game.PendingLevelUp(); ok {
			s.sm.SetState(NewChoiceState(s.sm, s))
		}
	}
}

func (s *PlayState) Draw(screen *ebiten.Image) {
	s.renderer.Draw(screen)
	ui.DrawDamagePopups(screen, s.game.ECS, s.face, s.renderer.ToScreen)
	s.hud.Draw(screen, app.FormatElapsed(s.game.Clock.Elapsed))
	s.threat.Draw(screen)
	if s.debug {
		ebitenutil.DebugPrintAt(screen, debugLine(s.game), 20, 70)
	}
}

func (s *PlayState) Exit() {}

func debugLine(g *app.Game) string {
	return fmt.Sprintf("tps %.1f  hostiles %d  projectiles %d  kills %d",
		ebiten.ActualTPS(), len(g.ECS.Hostiles()), len(g.ECS.Projectiles), g.ECS.PlayerState.Kills)
}
