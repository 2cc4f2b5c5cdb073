// internal/ui/player_level_indicator.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"arena-survivors/internal/config"
	"arena-survivors/internal/event"
)

// HUD shows HP, experience, level and the run timer. It is fed by events
// and never reads the simulation directly.
type HUD struct {
	face font.Face
	hp   *Bar
	xp   *Bar

	HP, MaxHP     float64
	XP, Threshold float64
	Level         int
}

func NewHUD(face font.Face, maxHP float64) *HUD {
	return &HUD{
		face:      face,
		hp:        NewBar(20, 20, 300, 18, config.HPBarColor, face),
		xp:        NewBar(20, 44, 300, 14, config.XPBarColor, face),
		HP:        maxHP,
		MaxHP:     maxHP,
		Threshold: config.ExperiencePerLevel,
		Level:     1,
	}
}

func (h *HUD) OnEvent(e event.Event) {
	switch d := e.Data.(type) {
	case event.HPChangedData:
		h.HP, h.MaxHP = d.Current, d.Max
	case event.XPChangedData:
		h.XP, h.Threshold, h.Level = d.Current, d.Threshold, d.Level
	}
}

// Draw renders the bars and the mm:ss timer.
func (h *HUD) Draw(screen *ebiten.Image, elapsed string) {
	h.hp.Draw(screen, "HP", h.HP, h.MaxHP)
	h.xp.Draw(screen, "XP", h.XP, h.Threshold)
	text.Draw(screen, fmt.Sprintf("LV %d", h.Level), h.face, 330, 34, config.TextLightColor)
	text.Draw(screen, elapsed, h.face, config.ScreenWidth/2-16, 30, config.TextLightColor)
}
