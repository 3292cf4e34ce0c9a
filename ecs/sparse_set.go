package ecs

import (
	"fmt"
	"iter"
	"reflect"
	"unsafe"
)

// InvalidIndex marks an entity slot of the sparse index that holds no component.
const InvalidIndex = ^uint32(0)

var _ iComponentStorage = (*SparseSet[struct{}])(nil)

// SparseSet stores the components of a single type.
//
// Values live contiguously in a dense array. Two index arrays map a dense slot
// to its owning entity and an entity to its dense slot, which gives O(1) Add,
// Remove, Has and Get. Remove moves the last dense element into the freed slot,
// so the order of Entities and All is not stable across removals, and a
// pointer returned by Get must not be held across Add or Remove.
type SparseSet[T any] struct {
	dense    []T
	entities []EntityID
	sparse   []uint32
}

// NewSparseSet creates an empty set.
func NewSparseSet[T any]() *SparseSet[T] {
	return &SparseSet[T]{}
}

// Add stores value for id. It panics if id already has a value.
func (s *SparseSet[T]) Add(id EntityID, value T) {
	if s.Has(id) {
		panic(fmt.Sprintf("entity %d already has a component of type %s", id, s.Type()))
	}
	s.grow(id)
	s.sparse[id] = uint32(len(s.dense))
	s.dense = append(s.dense, value)
	s.entities = append(s.entities, id)
}

// Set stores value for id, overwriting any existing value.
func (s *SparseSet[T]) Set(id EntityID, value T) {
	if s.Has(id) {
		s.dense[s.sparse[id]] = value
		return
	}
	s.Add(id, value)
}

// Remove deletes the value of id. It panics if id has no value.
func (s *SparseSet[T]) Remove(id EntityID) {
	if !s.Has(id) {
		panic(fmt.Sprintf("entity %d has no component of type %s to remove", id, s.Type()))
	}

	removed := s.sparse[id]
	last := uint32(len(s.dense) - 1)

	if removed != last {
		moved := s.entities[last]
		s.dense[removed] = s.dense[last]
		s.entities[removed] = moved
		s.sparse[moved] = removed
	}

	var zero T
	s.dense[last] = zero
	s.dense = s.dense[:last]
	s.entities = s.entities[:last]
	s.sparse[id] = InvalidIndex
}

// RemoveNoPanic behaves like Remove but does nothing when id has no value.
// It reports whether a value was removed.
func (s *SparseSet[T]) RemoveNoPanic(id EntityID) bool {
	if !s.Has(id) {
		return false
	}
	s.Remove(id)
	return true
}

// Has reports whether id has a value in the set.
func (s *SparseSet[T]) Has(id EntityID) bool {
	if int(id) >= len(s.sparse) {
		return false
	}
	idx := s.sparse[id]
	return idx != InvalidIndex && int(idx) < len(s.dense) && s.entities[idx] == id
}

// Get returns a pointer to the value of id. It panics if id has no value.
func (s *SparseSet[T]) Get(id EntityID) *T {
	if !s.Has(id) {
		panic(fmt.Sprintf("entity %d has no component of type %s", id, s.Type()))
	}
	return &s.dense[s.sparse[id]]
}

// Size returns the number of stored values.
func (s *SparseSet[T]) Size() int {
	return len(s.dense)
}

// Entities returns a snapshot of the ids holding a value, in dense order.
func (s *SparseSet[T]) Entities() []EntityID {
	list := make([]EntityID, len(s.entities))
	copy(list, s.entities)
	return list
}

// All iterates over the stored values in dense order.
// The set must not be modified during iteration.
func (s *SparseSet[T]) All() iter.Seq2[EntityID, *T] {
	return func(yield func(EntityID, *T) bool) {
		for i := range s.dense {
			if !yield(s.entities[i], &s.dense[i]) {
				return
			}
		}
	}
}

// Clear removes every value while keeping the allocated capacity.
func (s *SparseSet[T]) Clear() {
	clear(s.dense)
	s.dense = s.dense[:0]
	s.entities = s.entities[:0]
	for i := range s.sparse {
		s.sparse[i] = InvalidIndex
	}
}

// Type returns the component type stored in the set.
func (s *SparseSet[T]) Type() reflect.Type {
	return reflect.TypeFor[T]()
}

// grow makes the sparse index large enough to hold id.
func (s *SparseSet[T]) grow(id EntityID) {
	if int(id) < len(s.sparse) {
		return
	}
	oldLen := len(s.sparse)
	newLen := max(oldLen*2, int(id)+1)

	sparse := make([]uint32, newLen)
	copy(sparse, s.sparse)
	for i := oldLen; i < newLen; i++ {
		sparse[i] = InvalidIndex
	}
	s.sparse = sparse
}

func (s *SparseSet[T]) addAny(id EntityID, component any, overwrite bool) bool {
	var value T
	if ptr, ok := component.(*T); ok {
		value = *ptr
	} else if val, ok := component.(T); ok {
		value = val
	} else {
		return false
	}

	if overwrite {
		s.Set(id, value)
	} else {
		s.Add(id, value)
	}
	return true
}

func (s *SparseSet[T]) pointer(id EntityID) unsafe.Pointer {
	if !s.Has(id) {
		return nil
	}
	return unsafe.Pointer(&s.dense[s.sparse[id]])
}

func (s *SparseSet[T]) value(id EntityID) any {
	if !s.Has(id) {
		return nil
	}
	return &s.dense[s.sparse[id]]
}
