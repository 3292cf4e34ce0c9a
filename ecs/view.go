package ecs

import (
	"iter"
	"reflect"
	"unsafe"
)

// View represents a query for entities with a specific combination of components
// The type T should be a struct with embedded pointer fields for each component type
// Named fields can be marked as optional using the `ecs:"optional"` struct tag
// A field of type EntityID receives the id of the matched entity
//
// A View does not hold a live cursor: each pass captures the entity list of its
// smallest required storage when it starts, so entities gaining the components
// during the pass are not visited until the next one.
type View[T any] struct {
	world       *World
	types       []ComponentType
	storages    []iComponentStorage
	optional    []bool
	fieldOffset []uintptr
	idOffsets   []uintptr
	required    ComponentMask
}

// NewView creates a new view for the given struct type
// Every component type named by T must already be registered with w
func NewView[T any](w *World) *View[T] {
	structType := reflect.TypeFor[T]()

	if structType.Kind() != reflect.Struct {
		w.fatalf("View type parameter must be a struct, got %s", structType)
	}

	v := &View[T]{
		world:       w,
		types:       make([]ComponentType, 0, structType.NumField()),
		storages:    make([]iComponentStorage, 0, structType.NumField()),
		optional:    make([]bool, 0, structType.NumField()),
		fieldOffset: make([]uintptr, 0, structType.NumField()),
	}

	entityIDType := reflect.TypeFor[EntityID]()

	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)

		if field.Type == entityIDType {
			v.idOffsets = append(v.idOffsets, field.Offset)
			continue
		}

		if field.Type.Kind() != reflect.Pointer {
			w.fatalf("View struct fields must be pointer types, %s is %s", field.Name, field.Type)
		}

		componentType := field.Type.Elem()
		ct, ok := w.types[componentType]
		if !ok {
			w.fatalf("component %s has not been registered", componentType)
		}

		// Embedded fields are always required
		isOptional := false
		if !field.Anonymous {
			if tag := field.Tag.Get("ecs"); tag != "" {
				if tag != "optional" {
					w.fatalf("invalid ecs tag value: %q (only \"optional\" is supported)", tag)
				}
				isOptional = true
			}
		}

		v.types = append(v.types, ct)
		v.storages = append(v.storages, w.storages[ct])
		v.optional = append(v.optional, isOptional)
		v.fieldOffset = append(v.fieldOffset, field.Offset)
		if !isOptional {
			v.required.Set(ct)
		}
	}

	return v
}

// Mask returns the component types an entity must hold to match the view.
func (v *View[T]) Mask() ComponentMask {
	return v.required
}

// source returns the required storage with the fewest occupants, or nil when
// the view has no required component.
func (v *View[T]) source() iComponentStorage {
	var smallest iComponentStorage
	for i, s := range v.storages {
		if v.optional[i] {
			continue
		}
		if smallest == nil || s.Size() < smallest.Size() {
			smallest = s
		}
	}
	return smallest
}

// Entities returns the candidate entities of the view: the entity list of its
// smallest required storage. Not every candidate holds all required
// components; Iter and its helpers filter them.
func (v *View[T]) Entities() []EntityID {
	src := v.source()
	if src == nil {
		return nil
	}
	return src.Entities()
}

// Fill populates the provided struct pointer with component data for the given entity
// Returns false if the entity is dead or missing any required components
// Optional components are set to nil if not present
func (v *View[T]) Fill(id EntityID, ptr *T) bool {
	if !v.world.Alive(id) || !v.world.masks[id].ContainsAll(v.required) {
		return false
	}

	// Use unsafe.Pointer to directly access the struct's memory
	// This avoids reflection overhead in the hot path
	structPtr := unsafe.Pointer(ptr)

	for i, s := range v.storages {
		fieldPtr := unsafe.Add(structPtr, v.fieldOffset[i])
		componentPtr := s.pointer(id)

		if componentPtr == nil && !v.optional[i] {
			return false
		}
		*(*unsafe.Pointer)(fieldPtr) = componentPtr
	}

	for _, offset := range v.idOffsets {
		*(*EntityID)(unsafe.Add(structPtr, offset)) = id
	}

	return true
}

// Get returns a populated view struct for the given entity, or nil if the entity
// doesn't have all the required components
func (v *View[T]) Get(id EntityID) *T {
	var result T
	if !v.Fill(id, &result) {
		return nil
	}
	return &result
}

// Iter returns an iterator over all entities that have all the required components for this view
// The iterator yields (EntityID, T) pairs where T is the populated view struct
func (v *View[T]) Iter() iter.Seq2[EntityID, T] {
	return func(yield func(EntityID, T) bool) {
		var result T
		for _, id := range v.Entities() {
			if !v.Fill(id, &result) {
				continue
			}
			if !yield(id, result) {
				return
			}
		}
	}
}

// Values returns an iterator over just the view structs (without entity IDs)
func (v *View[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, value := range v.Iter() {
			if !yield(value) {
				return
			}
		}
	}
}

// All returns the matching entities and their components as parallel slices.
func (v *View[T]) All() ([]EntityID, []T) {
	var ids []EntityID
	var items []T
	for id, item := range v.Iter() {
		ids = append(ids, id)
		items = append(items, item)
	}
	return ids, items
}

// Components returns the component structs of every matching entity.
func (v *View[T]) Components() []T {
	_, items := v.All()
	return items
}

// ForEach calls fn with the components of every matching entity.
func (v *View[T]) ForEach(fn func(T)) {
	for _, item := range v.Iter() {
		fn(item)
	}
}

// ForEachWithID calls fn with the id and components of every matching entity.
func (v *View[T]) ForEachWithID(fn func(EntityID, T)) {
	for id, item := range v.Iter() {
		fn(id, item)
	}
}

// Count returns the number of matching entities.
func (v *View[T]) Count() int {
	n := 0
	for range v.Iter() {
		n++
	}
	return n
}
