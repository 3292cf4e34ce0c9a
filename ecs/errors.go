package ecs

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrEntityOutOfRange matches EntityOutOfRangeError with errors.Is.
	ErrEntityOutOfRange = errors.New("entity id out of range")
	// ErrEntityNotAlive matches EntityNotAliveError with errors.Is.
	ErrEntityNotAlive = errors.New("entity is not alive")
	// ErrComponentNotFound matches ComponentNotFoundError with errors.Is.
	ErrComponentNotFound = errors.New("component not found")
)

// EntityOutOfRangeError is returned when an id lies outside [0, Max).
type EntityOutOfRangeError struct {
	ID  EntityID
	Max int
}

func (e *EntityOutOfRangeError) Error() string {
	return fmt.Sprintf("entity %d is out of range, the maximum id allowed is %d", e.ID, e.Max-1)
}

func (e *EntityOutOfRangeError) Unwrap() error {
	return ErrEntityOutOfRange
}

// EntityNotAliveError is returned when an id does not denote a live entity,
// typically because it was held across DeleteEntity.
type EntityNotAliveError struct {
	ID EntityID
}

func (e *EntityNotAliveError) Error() string {
	return fmt.Sprintf("entity %d is not alive", e.ID)
}

func (e *EntityNotAliveError) Unwrap() error {
	return ErrEntityNotAlive
}

// ComponentNotFoundError is returned when a live entity does not hold the
// requested component.
type ComponentNotFoundError struct {
	ID   EntityID
	Type reflect.Type
}

func (e *ComponentNotFoundError) Error() string {
	return fmt.Sprintf("entity %d has no component of type %s", e.ID, e.Type)
}

func (e *ComponentNotFoundError) Unwrap() error {
	return ErrComponentNotFound
}
