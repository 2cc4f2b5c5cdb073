// internal/component/visual.go
package component

// DamageFlash tints an entity after it was hit.
type DamageFlash struct {
	Timer    float64
	Duration float64
}

// DamagePopup is a floating number above a hit position.
type DamagePopup struct {
	X, Y     float64
	Amount   float64
	Timer    float64
	Duration float64
}
