// internal/component/projectile.go
package component

import (
	"arena-survivors/internal/types"
	"arena-survivors/internal/utils"
)

// Projectile carries a value copy of the shooter's attack payload.
type Projectile struct {
	Damage            float64
	PierceBudget      int
	PiercedCount      int
	LifespanRemaining float64
	OwnerIsPlayer     bool
	Direction         utils.Vec2
	Speed             float64

	Hit map[types.EntityID]struct{}
}

// AlreadyHit reports whether id was struck by this projectile before.
func (p *Projectile) AlreadyHit(id types.EntityID) bool {
	_, ok := p.Hit[id]
	return ok
}

func (p *Projectile) MarkHit(id types.EntityID) {
	if p.Hit == nil {
		p.Hit = make(map[types.EntityID]struct{})
	}
	p.Hit[id] = struct{}{}
}

// Exhausted is true once the projectile used up its pierce budget or its
// lifespan.
func (p *Projectile) Exhausted() bool {
	return p.PiercedCount >= p.PierceBudget || p.LifespanRemaining <= 0
}
