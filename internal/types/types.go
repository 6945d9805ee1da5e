// internal/types/types.go
package types

// EntityID identifies a tower, enemy or projectile within one simulation.
type EntityID uint32
