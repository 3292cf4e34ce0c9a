package ecs

// EntityID is an opaque handle to an entity in a World. Valid ids lie in
// [0, MaxEntities) of the World that created them and are reused after the
// entity is deleted.
type EntityID uint32

// DefaultMaxEntities is the entity capacity of a World created without
// WithMaxEntities.
const DefaultMaxEntities = 10000

// EntityBuilder attaches components to a freshly created entity.
// It is bound to a single id, so several builders may be in use at once.
type EntityBuilder struct {
	world *World
	id    EntityID
}

// ID returns the id of the entity being built.
func (b *EntityBuilder) ID() EntityID {
	return b.id
}

// With attaches component to the entity. The component may be passed by
// value or by pointer; its type must be registered with the World.
func (b *EntityBuilder) With(component any) *EntityBuilder {
	b.world.addAny(b.id, component)
	return b
}

// WithComponent is the statically typed form of With.
func WithComponent[T any](b *EntityBuilder, component T) *EntityBuilder {
	Add(b.world, b.id, component)
	return b
}
