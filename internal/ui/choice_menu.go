// internal/ui/choice_menu.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"arena-survivors/internal/config"
	"arena-survivors/internal/defs"
)

const (
	menuWidth      = 360
	menuRowHeight  = 26
	menuPaddingTop = 48
)

// ChoiceMenu is the level-up overlay.
type ChoiceMenu struct {
	face font.Face
}

func NewChoiceMenu(face font.Face) *ChoiceMenu {
	return &ChoiceMenu{face: face}
}

func (m *ChoiceMenu) Draw(screen *ebiten.Image, level int, upgradeScreen bool) {
	opts := defs.MenuOptions(upgradeScreen)
	height := float32(menuPaddingTop + menuRowHeight*len(opts) + 30)
	x := float32(config.ScreenWidth-menuWidth) / 2
	y := (float32(config.ScreenHeight) - height) / 2

	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 120}, false)
	vector.DrawFilledRect(screen, x, y, menuWidth, height, color.RGBA{35, 35, 50, 240}, false)
	vector.StrokeRect(screen, x, y, menuWidth, height, 2, config.TextLightColor, false)

	title := fmt.Sprintf("Level %d: pick a stat", level)
	if upgradeScreen {
		title = fmt.Sprintf("Level %d: pick a power-up", level)
	}
	text.Draw(screen, title, m.face, int(x)+16, int(y)+28, config.TextLightColor)

	for i, opt := range opts {
		row := fmt.Sprintf("[%d] %s", i+1, opt.String())
		text.Draw(screen, row, m.face, int(x)+24, int(y)+menuPaddingTop+menuRowHeight*i+14, config.TextLightColor)
	}
	text.Draw(screen, "[Esc] skip", m.face, int(x)+24, int(y+height)-10, color.RGBA{160, 160, 160, 255})
}
