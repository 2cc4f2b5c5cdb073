// internal/ui/player_health_indicator.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Bar is a horizontal fill gauge with a caption.
type Bar struct {
	X, Y, Width, Height float32
	Fill                color.RGBA
	face                font.Face
}

func NewBar(x, y, width, height float32, fill color.RGBA, face font.Face) *Bar {
	return &Bar{X: x, Y: y, Width: width, Height: height, Fill: fill, face: face}
}

// Draw fills the bar to value/max and writes "label value/max" inside.
func (b *Bar) Draw(screen *ebiten.Image, label string, value, max float64) {
	ratio := float32(0)
	if max > 0 {
		ratio = float32(value / max)
	}
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	vector.DrawFilledRect(screen, b.X, b.Y, b.Width, b.Height, color.RGBA{30, 30, 30, 200}, false)
	vector.DrawFilledRect(screen, b.X, b.Y, b.Width*ratio, b.Height, b.Fill, false)
	vector.StrokeRect(screen, b.X, b.Y, b.Width, b.Height, 1, color.White, false)

	caption := fmt.Sprintf("%s %.0f/%.0f", label, value, max)
	text.Draw(screen, caption, b.face, int(b.X)+6, int(b.Y+b.Height)-4, color.White)
}
