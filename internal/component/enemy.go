package component

// Enemy marks a hostile.
type Enemy struct{}
