package ecs

import (
	"fmt"
	"reflect"

	"go.uber.org/zap"
)

// World owns the entities of one simulation: the id allocator, the
// per-entity component masks, one SparseSet per registered component type and
// the global resources. Component type slots are scoped to the World, so
// independent Worlds never share or exhaust each other's MaxComponents budget.
//
// A World is not safe for concurrent use.
type World struct {
	log         *zap.Logger
	maxEntities int

	types    map[reflect.Type]ComponentType
	storages []iComponentStorage

	masks       []ComponentMask
	alive       []bool
	ids         idPool
	living      int
	lastCreated EntityID

	resources map[reflect.Type]any
}

// Option configures a World.
type Option func(*World)

// WithLogger sets the logger that receives the World's diagnostics.
func WithLogger(log *zap.Logger) Option {
	return func(w *World) {
		if log != nil {
			w.log = log
		}
	}
}

// WithMaxEntities sets the number of entities that may be alive at once.
func WithMaxEntities(n int) Option {
	return func(w *World) {
		if n > 0 {
			w.maxEntities = n
		}
	}
}

// NewWorld creates an empty World.
func NewWorld(opts ...Option) *World {
	w := &World{
		log:         zap.NewNop(),
		maxEntities: DefaultMaxEntities,
		types:       make(map[reflect.Type]ComponentType),
		resources:   make(map[reflect.Type]any),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// MaxEntities returns the entity capacity of the World.
func (w *World) MaxEntities() int {
	return w.maxEntities
}

// Living returns the number of live entities.
func (w *World) Living() int {
	return w.living
}

// LastCreated returns the id of the most recently created entity.
func (w *World) LastCreated() EntityID {
	return w.lastCreated
}

// CreateEntity allocates the smallest free id and returns a builder bound to
// it. It panics when MaxEntities entities are already alive.
func (w *World) CreateEntity() *EntityBuilder {
	if w.living >= w.maxEntities {
		w.fatalf("cannot create more entities than the maximum allowed: %d", w.maxEntities)
	}

	id := w.ids.acquire()
	if int(id) >= len(w.alive) {
		w.alive = append(w.alive, make([]bool, int(id)+1-len(w.alive))...)
		w.masks = append(w.masks, make([]ComponentMask, int(id)+1-len(w.masks))...)
	}
	w.alive[id] = true
	w.masks[id] = 0
	w.living++
	w.lastCreated = id

	w.log.Debug("entity created", zap.Uint32("entity", uint32(id)))
	return &EntityBuilder{world: w, id: id}
}

// Spawn creates an entity holding the given components and returns its id.
func (w *World) Spawn(components ...any) EntityID {
	b := w.CreateEntity()
	for _, c := range components {
		b.With(c)
	}
	return b.ID()
}

// DeleteEntity removes id and every component it holds and returns the id to
// the free pool. It panics if id is out of range or not alive.
func (w *World) DeleteEntity(id EntityID) {
	w.mustBeAlive(id)

	for _, storage := range w.storages {
		storage.RemoveNoPanic(id)
	}
	w.masks[id] = 0
	w.alive[id] = false
	w.ids.release(id)
	w.living--

	w.log.Debug("entity deleted", zap.Uint32("entity", uint32(id)))
}

// Alive reports whether id denotes a live entity.
func (w *World) Alive(id EntityID) bool {
	return int(id) < len(w.alive) && w.alive[id]
}

// Entities returns the ids of all live entities in ascending order.
func (w *World) Entities() []EntityID {
	ids := make([]EntityID, 0, w.living)
	for i, alive := range w.alive {
		if alive {
			ids = append(ids, EntityID(i))
		}
	}
	return ids
}

// Mask returns the component mask of id. Dead and out-of-range ids have an
// empty mask.
func (w *World) Mask(id EntityID) ComponentMask {
	if !w.Alive(id) {
		return 0
	}
	return w.masks[id]
}

// HasAll reports whether id is alive and holds every given component type.
func (w *World) HasAll(id EntityID, types ...ComponentType) bool {
	if !w.Alive(id) {
		return false
	}
	return w.masks[id].ContainsAll(MaskOf(types...))
}

// HasAny reports whether id is alive and holds at least one of the given
// component types.
func (w *World) HasAny(id EntityID, types ...ComponentType) bool {
	if !w.Alive(id) {
		return false
	}
	return w.masks[id].ContainsAny(MaskOf(types...))
}

// Components returns pointers to every component held by id, ordered by
// component type slot. It returns nil for dead ids.
func (w *World) Components(id EntityID) []any {
	if !w.Alive(id) {
		return nil
	}
	types := w.masks[id].Types()
	components := make([]any, 0, len(types))
	for _, t := range types {
		components = append(components, w.storages[t].value(id))
	}
	return components
}

// ComponentTypes returns the registered component types indexed by slot.
func (w *World) ComponentTypes() []reflect.Type {
	types := make([]reflect.Type, len(w.storages))
	for i, s := range w.storages {
		types[i] = s.Type()
	}
	return types
}

// SlotOf returns the slot of a registered component type.
func (w *World) SlotOf(t reflect.Type) (ComponentType, bool) {
	ct, ok := w.types[t]
	return ct, ok
}

// Clear deletes every live entity. Registered component types and resources
// are kept.
func (w *World) Clear() {
	for _, id := range w.Entities() {
		w.DeleteEntity(id)
	}
}

// checkEntity reports why id cannot be used, or nil.
func (w *World) checkEntity(id EntityID) error {
	if int(id) >= w.maxEntities {
		return &EntityOutOfRangeError{ID: id, Max: w.maxEntities}
	}
	if !w.Alive(id) {
		return &EntityNotAliveError{ID: id}
	}
	return nil
}

func (w *World) mustBeAlive(id EntityID) {
	if err := w.checkEntity(id); err != nil {
		w.fatalf("%s", err)
	}
}

// fatalf logs a programmer error and panics with the same message.
func (w *World) fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	w.log.Error(msg)
	panic(msg)
}
