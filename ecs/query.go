package ecs

import "iter"

// Query wraps a View and caches its matches for one frame.
// As a field of a System it is bound to the World and executed by Systems
// right before the system runs, so it reflects changes made by the systems
// registered before it in the same tick.
type Query[T any] struct {
	view *View[T]

	cachedEntities   []EntityID
	cachedComponents []T
	cacheValid       bool
}

// NewQuery creates a new Query bound to w.
func NewQuery[T any](w *World) *Query[T] {
	q := &Query[T]{}
	q.Init(w)
	return q
}

// Init initializes or re-initializes the Query with a World.
// Called by Systems when the owning system is first run against a World.
func (q *Query[T]) Init(w *World) {
	q.view = NewView[T](w)
	q.cacheValid = false
}

// Execute builds the entity and component caches for this frame.
func (q *Query[T]) Execute() {
	q.cachedEntities = q.cachedEntities[:0]
	q.cachedComponents = q.cachedComponents[:0]

	for id, item := range q.view.Iter() {
		q.cachedEntities = append(q.cachedEntities, id)
		q.cachedComponents = append(q.cachedComponents, item)
	}

	q.cacheValid = true
}

// Len returns the number of cached matches.
func (q *Query[T]) Len() int {
	return len(q.cachedEntities)
}

// Iter returns an iterator over entity IDs and component data.
// Panics if Execute() has not been called.
func (q *Query[T]) Iter() iter.Seq2[EntityID, T] {
	if !q.cacheValid {
		panic("Query.Iter() called before Query.Execute()")
	}

	return func(yield func(EntityID, T) bool) {
		for i := range q.cachedEntities {
			if !yield(q.cachedEntities[i], q.cachedComponents[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over component data only.
// Panics if Execute() has not been called.
func (q *Query[T]) Values() iter.Seq[T] {
	if !q.cacheValid {
		panic("Query.Values() called before Query.Execute()")
	}

	return func(yield func(T) bool) {
		for i := range q.cachedComponents {
			if !yield(q.cachedComponents[i]) {
				return
			}
		}
	}
}
