package ecs

import (
	"reflect"

	"go.uber.org/zap"
)

// RegisterComponent assigns the next free slot of w to T and creates its
// storage. Registering T again logs a warning and returns the existing slot.
// It panics when MaxComponents types are already registered.
func RegisterComponent[T any](w *World) ComponentType {
	t := reflect.TypeFor[T]()

	if ct, ok := w.types[t]; ok {
		w.log.Warn("component already registered", zap.Stringer("component", t))
		return ct
	}

	switch t.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface:
		w.fatalf("component %s cannot be a pointer, map, channel, function or interface", t)
	}

	if len(w.storages) >= MaxComponents {
		w.fatalf("cannot register component %s: the maximum of %d component types is reached", t, MaxComponents)
	}

	ct := ComponentType(len(w.storages))
	w.types[t] = ct
	w.storages = append(w.storages, NewSparseSet[T]())

	w.log.Debug("component registered", zap.Stringer("component", t), zap.Uint8("slot", uint8(ct)))
	return ct
}

// IsRegistered reports whether T has been registered with w.
func IsRegistered[T any](w *World) bool {
	_, ok := w.types[reflect.TypeFor[T]()]
	return ok
}

// TypeOf returns the slot of T. It panics if T is not registered.
func TypeOf[T any](w *World) ComponentType {
	_, ct := storageOf[T](w)
	return ct
}

// Storage returns the SparseSet backing T. It panics if T is not registered.
func Storage[T any](w *World) *SparseSet[T] {
	s, _ := storageOf[T](w)
	return s
}

// Add attaches value to id. It panics if T is not registered, id is not a
// live entity or id already holds a T; use Set to replace a component.
func Add[T any](w *World, id EntityID, value T) {
	s, ct := storageOf[T](w)
	w.mustBeAlive(id)
	if s.Has(id) {
		w.fatalf("entity %d already has a component of type %s", id, s.Type())
	}

	s.Add(id, value)
	w.masks[id].Set(ct)

	w.log.Debug("component added", zap.Stringer("component", s.Type()), zap.Uint32("entity", uint32(id)))
}

// Set attaches value to id, replacing any T it already holds.
func Set[T any](w *World, id EntityID, value T) {
	s, ct := storageOf[T](w)
	w.mustBeAlive(id)

	s.Set(id, value)
	w.masks[id].Set(ct)
}

// Remove detaches the T held by id. Removing a component the entity does
// not hold is logged and ignored.
func Remove[T any](w *World, id EntityID) {
	s, ct := storageOf[T](w)
	w.mustBeAlive(id)
	w.removeFrom(s, ct, id)
}

// Get returns the T held by id. Out-of-range ids, dead ids and missing
// components are reported as *EntityOutOfRangeError, *EntityNotAliveError
// and *ComponentNotFoundError. It panics if T is not registered.
func Get[T any](w *World, id EntityID) (*T, error) {
	s, _ := storageOf[T](w)
	if err := w.checkEntity(id); err != nil {
		return nil, err
	}
	if !s.Has(id) {
		return nil, &ComponentNotFoundError{ID: id, Type: s.Type()}
	}
	return s.Get(id), nil
}

// Has reports whether id is alive and holds a T. It panics if T is not
// registered.
func Has[T any](w *World, id EntityID) bool {
	_, ct := storageOf[T](w)
	return w.Mask(id).Has(ct)
}

// AddComponent attaches a component whose type is only known at run time.
// The component may be passed by value or by pointer.
func (w *World) AddComponent(id EntityID, component any) {
	w.addAny(id, component)
}

// RemoveComponent detaches the component of type t held by id.
func (w *World) RemoveComponent(id EntityID, t reflect.Type) {
	ct, ok := w.types[t]
	if !ok {
		w.fatalf("component %s has not been registered", t)
	}
	w.mustBeAlive(id)
	w.removeFrom(w.storages[ct], ct, id)
}

func (w *World) addAny(id EntityID, component any) {
	if component == nil {
		w.fatalf("cannot add a nil component to entity %d", id)
	}

	v := reflect.ValueOf(component)
	t := v.Type()
	if t.Kind() == reflect.Pointer {
		if v.IsNil() {
			w.fatalf("cannot add a nil %s to entity %d", t, id)
		}
		t = t.Elem()
	}

	ct, ok := w.types[t]
	if !ok {
		w.fatalf("component %s has not been registered", t)
	}
	w.mustBeAlive(id)

	s := w.storages[ct]
	if s.Has(id) {
		w.fatalf("entity %d already has a component of type %s", id, t)
	}
	s.addAny(id, component, false)
	w.masks[id].Set(ct)

	w.log.Debug("component added", zap.Stringer("component", t), zap.Uint32("entity", uint32(id)))
}

func (w *World) removeFrom(s iComponentStorage, ct ComponentType, id EntityID) {
	if !s.RemoveNoPanic(id) {
		w.log.Warn("tried to remove a component the entity does not have",
			zap.Stringer("component", s.Type()), zap.Uint32("entity", uint32(id)))
		return
	}
	w.masks[id].Unset(ct)
	w.log.Debug("component removed", zap.Stringer("component", s.Type()), zap.Uint32("entity", uint32(id)))
}

func storageOf[T any](w *World) (*SparseSet[T], ComponentType) {
	t := reflect.TypeFor[T]()
	ct, ok := w.types[t]
	if !ok {
		w.fatalf("component %s has not been registered", t)
	}
	return w.storages[ct].(*SparseSet[T]), ct
}
