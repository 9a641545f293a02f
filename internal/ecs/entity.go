package ecs

// EntityID identifies an entity as a slot index paired with the generation
// the slot had when the entity was created. Destroying an entity bumps its
// slot's generation, so a held EntityID becomes detectably stale instead of
// aliasing whatever gets spawned into the slot next.
type EntityID struct {
	Index      uint32
	Generation uint32
}

// NilEntity is the zero value — generations start at 1, so no valid entity
// ever compares equal to it.
var NilEntity = EntityID{}

// ComponentType is a small integer key used to store/retrieve components.
type ComponentType uint8

// Component is implemented by every data struct stored in the world.
type Component interface {
	Type() ComponentType
}
