package ecs

import "math/bits"

// MaxComponents is the number of distinct component types a single World can
// register. It is bounded by the width of ComponentMask.
const MaxComponents = 64

// ComponentType is the slot a World assigns to a component type when it is
// registered. Slots are handed out in registration order starting at zero.
type ComponentType uint8

// ComponentMask records which component types an entity owns; bit i is set
// when the entity holds a component of the type registered in slot i.
type ComponentMask uint64

// MaskOf builds a mask with the bit of every given type set.
func MaskOf(types ...ComponentType) ComponentMask {
	var m ComponentMask
	for _, t := range types {
		m.Set(t)
	}
	return m
}

func (m *ComponentMask) Set(t ComponentType) {
	*m |= ComponentMask(1) << t
}

func (m *ComponentMask) Unset(t ComponentType) {
	*m &^= ComponentMask(1) << t
}

func (m ComponentMask) Has(t ComponentType) bool {
	return m&(ComponentMask(1)<<t) != 0
}

// ContainsAll reports whether every bit of other is also set in m.
func (m ComponentMask) ContainsAll(other ComponentMask) bool {
	return m&other == other
}

// ContainsAny reports whether m and other share at least one bit.
func (m ComponentMask) ContainsAny(other ComponentMask) bool {
	return m&other != 0
}

func (m ComponentMask) IsZero() bool {
	return m == 0
}

// Count returns the number of component types in the mask.
func (m ComponentMask) Count() int {
	return bits.OnesCount64(uint64(m))
}

// Types returns the slots set in the mask in ascending order.
func (m ComponentMask) Types() []ComponentType {
	types := make([]ComponentType, 0, m.Count())
	for rest := uint64(m); rest != 0; rest &= rest - 1 {
		types = append(types, ComponentType(bits.TrailingZeros64(rest)))
	}
	return types
}
