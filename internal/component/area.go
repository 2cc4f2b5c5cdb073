// internal/component/area.go
package component

import (
	"arena-survivors/internal/config"
	"arena-survivors/internal/types"
)

// AreaZone is the death-field: a rectangle following its owner that damages
// everything inside on a fixed cooldown.
type AreaZone struct {
	Owner             types.EntityID
	CooldownPeriod    float64
	CooldownRemaining float64
	CanTick           bool
	Width             float64
	Height            float64

	occupants []types.EntityID
	inside    map[types.EntityID]struct{}
}

func NewAreaZone(owner types.EntityID, width, cooldown float64) *AreaZone {
	z := &AreaZone{
		Owner:          owner,
		CooldownPeriod: cooldown,
		CanTick:        true,
		inside:         make(map[types.EntityID]struct{}),
	}
	z.SetWidth(width)
	return z
}

// SetWidth resizes the zone, height is always half the width.
func (z *AreaZone) SetWidth(width float64) {
	z.Width = width
	z.Height = config.DeathFieldHeight(width)
}

// Enter adds id to the occupant set. Returns false if it was already inside.
func (z *AreaZone) Enter(id types.EntityID) bool {
	if _, ok := z.inside[id]; ok {
		return false
	}
	z.inside[id] = struct{}{}
	z.occupants = append(z.occupants, id)
	return true
}

// Exit removes id from the occupant set. Returns false if it was not inside.
func (z *AreaZone) Exit(id types.EntityID) bool {
	if _, ok := z.inside[id]; !ok {
		return false
	}
	delete(z.inside, id)
	for i, o := range z.occupants {
		if o == id {
			z.occupants = append(z.occupants[:i], z.occupants[i+1:]...)
			break
		}
	}
	return true
}

func (z *AreaZone) Contains(id types.EntityID) bool {
	_, ok := z.inside[id]
	return ok
}

// Occupants returns a snapshot in enter order.
func (z *AreaZone) Occupants() []types.EntityID {
	out := make([]types.EntityID, len(z.occupants))
	copy(out, z.occupants)
	return out
}

// Explosion is a one-shot blast. Damage is resolved on spawn, Remaining only
// keeps it on screen.
type Explosion struct {
	Damage    float64
	Radius    float64
	Remaining float64
}
