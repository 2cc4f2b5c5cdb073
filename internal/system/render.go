// internal/system/render.go
package system

import (
	"arena-survivors/internal/config"
	"arena-survivors/internal/entity"
	"arena-survivors/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem draws the arena with the camera centred on the player.
type RenderSystem struct {
	ecs *entity.ECS
}

func NewRenderSystem(ecs *entity.ECS) *RenderSystem {
	return &RenderSystem{ecs: ecs}
}

// ToScreen converts arena units to screen pixels around the camera.
func (s *RenderSystem) ToScreen(p utils.Vec2) (float32, float32) {
	cam, _ := s.ecs.PositionOf(s.ecs.Player)
	x := (p.X-cam.X)*config.PixelsPerUnit + config.ScreenWidth/2
	y := (p.Y-cam.Y)*config.PixelsPerUnit + config.ScreenHeight/2
	return float32(x), float32(y)
}

func (s *RenderSystem) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	if zone, ok := s.ecs.Zones[s.ecs.Zone]; ok {
		c, _ := s.ecs.PositionOf(s.ecs.Zone)
		x, y := s.ToScreen(utils.Vec2{X: c.X - zone.Width/2, Y: c.Y - zone.Height/2})
		w := float32(zone.Width * config.PixelsPerUnit)
		h := float32(zone.Height * config.PixelsPerUnit)
		vector.DrawFilledRect(screen, x, y, w, h, config.DeathFieldColor, true)
	}

	for id, blast := range s.ecs.Explosions {
		p, _ := s.ecs.PositionOf(id)
		x, y := s.ToScreen(p)
		vector.DrawFilledCircle(screen, x, y, float32(blast.Radius*config.PixelsPerUnit), config.ExplosionColor, true)
	}

	for id, render := range s.ecs.Renderables {
		p, ok := s.ecs.PositionOf(id)
		if !ok {
			continue
		}
		radius := float32(config.ProjectileRadius * config.PixelsPerUnit)
		if c := s.ecs.Colliders[id]; c != nil {
			radius = float32(c.Radius * config.PixelsPerUnit)
		}
		x, y := s.ToScreen(p)

		clr := render.Color
		if stats, ok := s.ecs.Stats[id]; ok && stats.Targeted {
			clr = config.TargetedColor
		}
		if _, flashing := s.ecs.DamageFlashes[id]; flashing {
			clr = config.FlashColor
		}
		if render.HasStroke {
			vector.StrokeCircle(screen, x, y, radius+2, 2, config.TextLightColor, true)
		}
		vector.DrawFilledCircle(screen, x, y, radius, clr, true)
	}
}
