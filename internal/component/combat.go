package component

// ProjectileTemplate is one shot of a volley. Every shot is aimed at the
// current target.
type ProjectileTemplate struct{}

// Attack is the player's firing controller state.
type Attack struct {
	CooldownElapsed float64
	CanFire         bool
	Templates       []ProjectileTemplate
	// PendingGrants are multi-projectile picks not yet turned into templates.
	PendingGrants int
}

func NewAttack() *Attack {
	return &Attack{
		CanFire:   true,
		Templates: []ProjectileTemplate{{}},
	}
}

// ConsumeGrants turns every pending grant into exactly one extra template.
func (a *Attack) ConsumeGrants() int {
	n := a.PendingGrants
	for i := 0; i < n; i++ {
		a.Templates = append(a.Templates, ProjectileTemplate{})
	}
	a.PendingGrants = 0
	return n
}

// HostileAttack is the cooldown of a ranged hostile.
type HostileAttack struct {
	CooldownElapsed float64
}
