package entity

import "github.com/google/uuid"

// ContainerType is a reusable drinking-vessel preset (a glass, a bottle).
// Hydration events reference it by ID only; the reference is weak and a
// deleted container type leaves historical events untouched.
type ContainerType struct {
	ID     uuid.UUID
	Name   string
	Volume int32 // milliliters, always > 0
}
