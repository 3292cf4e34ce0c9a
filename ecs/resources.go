package ecs

import (
	"reflect"

	"go.uber.org/zap"
)

// Resources are values of which a World holds at most one per type and that
// belong to no entity: configuration, clocks, input state and the like.

// AddResource stores value as the World's T resource. An existing T is
// overwritten in place, so pointers obtained earlier stay valid.
func AddResource[T any](w *World, value T) *T {
	t := reflect.TypeFor[T]()
	if existing, ok := w.resources[t]; ok {
		w.log.Warn("overwriting resource", zap.Stringer("resource", t))
		ptr := existing.(*T)
		*ptr = value
		return ptr
	}

	ptr := new(T)
	*ptr = value
	w.resources[t] = ptr
	return ptr
}

// GetResource returns the World's T resource.
func GetResource[T any](w *World) (*T, bool) {
	existing, ok := w.resources[reflect.TypeFor[T]()]
	if !ok {
		return nil, false
	}
	return existing.(*T), true
}

// HasResource reports whether the World holds a T resource.
func HasResource[T any](w *World) bool {
	_, ok := w.resources[reflect.TypeFor[T]()]
	return ok
}

// RemoveResource deletes the World's T resource. Resource accessors that
// already resolved it keep pointing at the removed value until re-initialised.
func RemoveResource[T any](w *World) {
	delete(w.resources, reflect.TypeFor[T]())
}

// Resource is a cached accessor for a World resource. As a field of a
// System it is bound automatically when the system is registered.
type Resource[T any] struct {
	world *World
	ptr   *T
}

// NewResource creates an accessor for the T resource of w. If w holds no T
// yet it is created from initializer, or from the zero value.
func NewResource[T any](w *World, initializer ...T) *Resource[T] {
	if !HasResource[T](w) {
		var value T
		if len(initializer) > 0 {
			value = initializer[0]
		}
		AddResource(w, value)
	}
	r := &Resource[T]{}
	r.Init(w)
	return r
}

// Init binds the accessor to w.
func (r *Resource[T]) Init(w *World) {
	r.world = w
	r.ptr = nil
	r.refresh()
}

// Get returns the resource, or nil if the World does not hold one.
func (r *Resource[T]) Get() *T {
	if r.ptr == nil {
		r.refresh()
	}
	return r.ptr
}

// Exists reports whether the World holds the resource.
func (r *Resource[T]) Exists() bool {
	return r.Get() != nil
}

func (r *Resource[T]) refresh() {
	if r.world == nil {
		return
	}
	r.ptr, _ = GetResource[T](r.world)
}
