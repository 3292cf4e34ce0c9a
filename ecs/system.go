package ecs

// System represents a behavior that operates on entities with specific components.
// User-defined systems should implement this interface and can include Query and
// Resource fields, as well as custom state fields that persist between frames.
type System interface {
	Execute(frame *UpdateFrame)
}

// SystemFunc adapts a plain function to the System interface.
type SystemFunc func(frame *UpdateFrame)

func (f SystemFunc) Execute(frame *UpdateFrame) {
	f(frame)
}

// viewSystem runs fn once per entity matching the view T.
type viewSystem[T any] struct {
	world *World
	view  *View[T]
	fn    func(EntityID, T)
}

func (s *viewSystem[T]) Execute(frame *UpdateFrame) {
	if s.world != frame.World {
		s.view = NewView[T](frame.World)
		s.world = frame.World
	}
	for id, item := range s.view.Iter() {
		s.fn(id, item)
	}
}
