// Package ecs is an entity-component storage engine built on sparse sets.
//
// A World hands out EntityIDs and stores the components attached to them, one
// SparseSet per registered component type, plus a bit mask per entity recording
// which types it holds:
//
//	w := ecs.NewWorld()
//	ecs.RegisterComponent[Position](w)
//	ecs.RegisterComponent[Velocity](w)
//
//	id := w.CreateEntity().
//		With(Position{X: 0, Y: 0}).
//		With(Velocity{DX: 1, DY: 1}).
//		ID()
//
// A View iterates the entities holding a set of components, described by a
// struct of pointer fields. It starts from the smallest of the requested
// storages:
//
//	view := ecs.NewView[struct {
//		*Position
//		*Velocity
//	}](w)
//	for id, e := range view.Iter() {
//		e.Position.X += e.Velocity.DX
//	}
//
// Systems runs behavior functions once per tick in registration order:
//
//	systems := ecs.NewSystems()
//	ecs.AddSystem[struct{ *Position; *Velocity }](systems, func(e struct{ *Position; *Velocity }) {
//		e.Position.X += e.Velocity.DX
//	})
//	systems.Update(w)
//
// Misuse such as unregistered component types, exceeding MaxEntities or
// MaxComponents, or adding a component twice panics after logging. Looking up
// a component through a stale id is an ordinary condition and is reported as
// an error by Get.
package ecs
