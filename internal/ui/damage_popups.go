// internal/ui/damage_popups.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"arena-survivors/internal/entity"
	"arena-survivors/internal/utils"
)

// DrawDamagePopups writes the floating damage numbers. toScreen maps arena
// coordinates to pixels.
func DrawDamagePopups(screen *ebiten.Image, ecs *entity.ECS, face font.Face, toScreen func(utils.Vec2) (float32, float32)) {
	for _, p := range ecs.Popups {
		x, y := toScreen(utils.Vec2{X: p.X, Y: p.Y})
		alpha := uint8(255)
		if p.Duration > 0 {
			alpha = uint8(255 * (1 - utils.Clamp(p.Timer/p.Duration, 0, 1)))
		}
		text.Draw(screen, fmt.Sprintf("%.1f", p.Amount), face, int(x)-8, int(y)-12, color.RGBA{255, 230, 120, alpha})
	}
}
