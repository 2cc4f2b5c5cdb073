// component/movement.go
package component

// Position is the centre of an entity in arena units.
type Position struct {
	X, Y float64
}

// Velocity is the per-second displacement applied by MovementSystem.
type Velocity struct {
	X, Y float64
}

// Collider is a circle used for every overlap test.
type Collider struct {
	Radius float64
}
