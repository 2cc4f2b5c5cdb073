// internal/types/types.go
package types

// EntityID is an opaque entity handle. Zero means "no entity".
type EntityID uint64

// NoEntity is returned where an entity lookup finds nothing.
const NoEntity EntityID = 0
