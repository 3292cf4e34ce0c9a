package ecs

import (
	"reflect"
	"unsafe"
)

// iComponentStorage is the type-erased view of a SparseSet that the World
// keeps for every registered component type.
type iComponentStorage interface {
	RemoveNoPanic(id EntityID) bool
	Size() int
	Entities() []EntityID
	Has(id EntityID) bool
	Clear()
	Type() reflect.Type

	// addAny stores a component given as T or *T. It returns false if the
	// value is of another type.
	addAny(id EntityID, component any, overwrite bool) bool
	// pointer returns the address of the stored component or nil.
	pointer(id EntityID) unsafe.Pointer
	// value returns the stored component as *T boxed in an interface, or nil.
	value(id EntityID) any
}
