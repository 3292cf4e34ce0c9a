package debugui

import "github.com/plus3/sparsecs/ecs"

// RegisterDebugUIComponents registers the component types used by the
// inspector windows and ImguiSystem.
func RegisterDebugUIComponents(w *ecs.World) {
	ecs.RegisterComponent[ImguiItem](w)
	ecs.RegisterComponent[EntityBrowserComponent](w)
	ecs.RegisterComponent[ComponentInspectorComponent](w)
	ecs.RegisterComponent[StorageViewerComponent](w)
	ecs.RegisterComponent[PerformanceStatsComponent](w)
	ecs.RegisterComponent[QueryDebuggerComponent](w)
}

// SpawnDebugUI creates one entity per inspector window.
func SpawnDebugUI(w *ecs.World) {
	ecs.NewResource(w, NewFrameTimer())
	w.Spawn(NewEntityBrowserComponent(100))
	w.Spawn(NewComponentInspectorComponent())
	w.Spawn(NewStorageViewerComponent())
	w.Spawn(NewPerformanceStatsComponent(120))
	w.Spawn(NewQueryDebuggerComponent())
}

// DebugUISystem renders the inspector windows spawned by SpawnDebugUI.
// Rendering is deferred to the end of the tick, after structural changes of
// the other systems have been applied.
type DebugUISystem struct {
	Browsers   ecs.Query[struct{ *EntityBrowserComponent }]
	Inspectors ecs.Query[struct{ *ComponentInspectorComponent }]
	Storages   ecs.Query[struct{ *StorageViewerComponent }]
	Stats      ecs.Query[struct{ *PerformanceStatsComponent }]
	Queries    ecs.Query[struct{ *QueryDebuggerComponent }]
	Timer      ecs.Resource[FrameTimer]

	systems *ecs.Systems
}

// NewDebugUISystem creates the system. systems may be nil; when set its
// timings are shown in the performance window.
func NewDebugUISystem(systems *ecs.Systems) *DebugUISystem {
	return &DebugUISystem{systems: systems}
}

func (s *DebugUISystem) Execute(frame *ecs.UpdateFrame) {
	w := frame.World

	var dt float32
	if timer := s.Timer.Get(); timer != nil {
		dt = timer.GetDeltaTime()
	}

	var (
		selected    ecs.EntityID
		hasSelected bool
		browsers    []*EntityBrowserComponent
	)
	for item := range s.Browsers.Values() {
		browsers = append(browsers, item.EntityBrowserComponent)
	}

	frame.Commands.Defer(func() {
		for item := range s.Storages.Values() {
			if slot := item.StorageViewerComponent.Render(w); slot != nil {
				for _, b := range browsers {
					b.FilterBySlot(slot)
				}
			}
		}

		for _, b := range browsers {
			b.Render(w)
			if id, ok := b.SelectedEntity(); ok {
				selected, hasSelected = id, true
			}
		}

		for item := range s.Inspectors.Values() {
			item.ComponentInspectorComponent.Render(w, selected, hasSelected)
		}

		for item := range s.Stats.Values() {
			item.PerformanceStatsComponent.Render(w, s.systems, dt)
		}

		for item := range s.Queries.Values() {
			item.QueryDebuggerComponent.Render(w)
		}
	})
}
