package ecs

import (
	"reflect"

	"github.com/kamstrup/intmap"
	"go.uber.org/zap"
)

// Commands provides a buffer for deferred ECS operations that are executed at the end of a frame.
// Systems use it instead of changing the World while a View over it is being iterated.
type Commands struct {
	creates []createCommand
	deletes []EntityID
	adds    []addComponentCommand
	removes []removeComponentCommand
	defers  []func()

	deleted *intmap.Map[EntityID, struct{}]
}

func newCommands() *Commands {
	return &Commands{
		deleted: intmap.New[EntityID, struct{}](64),
	}
}

type createCommand struct {
	components []any
}

type addComponentCommand struct {
	entity    EntityID
	component any
}

type removeComponentCommand struct {
	entity   EntityID
	compType reflect.Type
}

// Defer queues a function execution operation.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Create queues the creation of an entity with the given components.
func (c *Commands) Create(components ...any) {
	c.creates = append(c.creates, createCommand{components: components})
}

// Delete queues an entity deletion operation.
func (c *Commands) Delete(entity EntityID) {
	c.deletes = append(c.deletes, entity)
}

// AddComponent queues a component addition operation.
func (c *Commands) AddComponent(entity EntityID, component any) {
	c.adds = append(c.adds, addComponentCommand{
		entity:    entity,
		component: component,
	})
}

// RemoveComponent queues a component removal operation.
func (c *Commands) RemoveComponent(entity EntityID, compType reflect.Type) {
	c.removes = append(c.removes, removeComponentCommand{
		entity:   entity,
		compType: compType,
	})
}

// QueueRemove queues the removal of the T held by entity.
func QueueRemove[T any](c *Commands, entity EntityID) {
	c.RemoveComponent(entity, reflect.TypeFor[T]())
}

// Len returns the number of queued operations.
func (c *Commands) Len() int {
	return len(c.creates) + len(c.deletes) + len(c.adds) + len(c.removes) + len(c.defers)
}

// Flush applies all queued operations to w in the order deletes, removes,
// adds, creates, defers, and resets the buffer. Operations on an entity that
// is deleted in the same flush are dropped, and an entity deleted twice is
// deleted once. Deleting an entity that is already dead is logged and
// skipped, along with the other operations queued for it.
func (c *Commands) Flush(w *World) {
	for _, id := range c.deletes {
		if _, seen := c.deleted.Get(id); seen {
			continue
		}
		c.deleted.Put(id, struct{}{})
		if !w.Alive(id) {
			w.log.Warn("skipping deletion of an entity that is not alive", zap.Uint32("entity", uint32(id)))
			continue
		}
		w.DeleteEntity(id)
	}

	for _, cmd := range c.removes {
		if _, seen := c.deleted.Get(cmd.entity); !seen {
			w.RemoveComponent(cmd.entity, cmd.compType)
		}
	}

	for _, cmd := range c.adds {
		if _, seen := c.deleted.Get(cmd.entity); !seen {
			w.AddComponent(cmd.entity, cmd.component)
		}
	}

	for _, cmd := range c.creates {
		w.Spawn(cmd.components...)
	}

	for _, fn := range c.defers {
		fn()
	}

	c.creates = c.creates[:0]
	c.deletes = c.deletes[:0]
	c.adds = c.adds[:0]
	c.removes = c.removes[:0]
	c.defers = c.defers[:0]
	c.deleted.Clear()
}
