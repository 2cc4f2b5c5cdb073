// internal/ui/wave_indicator.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"arena-survivors/internal/config"
	"arena-survivors/internal/event"
)

// DifficultyIndicator shows the growth step and the spawn period in the
// top-right corner.
type DifficultyIndicator struct {
	face     font.Face
	Step     int
	Cooldown float64
}

func NewDifficultyIndicator(face font.Face, cooldown float64) *DifficultyIndicator {
	return &DifficultyIndicator{face: face, Cooldown: cooldown}
}

func (d *DifficultyIndicator) OnEvent(e event.Event) {
	if data, ok := e.Data.(event.GrowthStepData); ok {
		d.Step = data.Step
		d.Cooldown = data.SpawnCooldown
	}
}

func (d *DifficultyIndicator) Draw(screen *ebiten.Image) {
	msg := fmt.Sprintf("threat %d  spawn %.1fs", d.Step, d.Cooldown)
	text.Draw(screen, msg, d.face, config.ScreenWidth-200, 30, config.TextLightColor)
}
