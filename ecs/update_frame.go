package ecs

// UpdateFrame is passed to every system of a tick.
type UpdateFrame struct {
	// Tick counts the ticks run by the Systems, starting at 1.
	Tick      uint64
	DeltaTime float64
	Commands  *Commands
	World     *World
}

func newUpdateFrame(tick uint64, dt float64, w *World, commands *Commands) *UpdateFrame {
	return &UpdateFrame{
		Tick:      tick,
		DeltaTime: dt,
		Commands:  commands,
		World:     w,
	}
}
