// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"

	"github.com/hajimehoshi/ebiten/v2"

	"arena-survivors/internal/app"
	"arena-survivors/internal/config"
	"arena-survivors/internal/defs"
	"arena-survivors/internal/logger"
	"arena-survivors/internal/state"
)

type AppGame struct {
	stateMachine *state.StateMachine
}

// Update runs at the fixed TPS, so every call is exactly one simulation tick.
func (a *AppGame) Update() error {
	a.stateMachine.Update(config.FixedDeltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	configPath := flag.String("config", "assets/config.yaml", "encounter and logging config")
	archetypesPath := flag.String("archetypes", "assets/archetypes.yaml", "player and hostile definitions")
	skipMenu := flag.Bool("play", false, "start a run immediately")
	pprofAddr := flag.String("pprof", "", "serve pprof on this address, e.g. localhost:6060")
	flag.Parse()

	logCfg, err := logger.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("logging config: %v", err)
	}
	logger.Initialize(logCfg)

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("game config: %v", err)
	}
	archetypes := defs.DefaultArchetypes()
	if *archetypesPath != "" {
		if archetypes, err = defs.LoadArchetypes(*archetypesPath); err != nil {
			log.Fatalf("archetypes: %v", err)
		}
	}
	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	newGame := func() (*app.Game, error) {
		return app.NewGame(cfg, archetypes)
	}

	sm := state.NewStateMachine()
	if *skipMenu {
		state.StartGame(sm, newGame)
	} else {
		sm.SetState(state.NewMenuState(sm, newGame))
	}

	ebiten.SetTPS(config.TickRate)
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Arena Survivors")
	if err := ebiten.RunGame(&AppGame{stateMachine: sm}); err != nil {
		log.Fatal(err)
	}
}
