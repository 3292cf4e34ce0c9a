package ecs

// WorldStats is a snapshot of the occupancy of a World.
type WorldStats struct {
	LivingEntities int
	MaxEntities    int
	ComponentTypes int
	ResourceCount  int
	Components     []ComponentStats
}

// ComponentStats describes the storage of one registered component type.
type ComponentStats struct {
	Slot  ComponentType
	Name  string
	Count int
}

// CollectStats gathers a WorldStats snapshot.
func (w *World) CollectStats() *WorldStats {
	stats := &WorldStats{
		LivingEntities: w.living,
		MaxEntities:    w.maxEntities,
		ComponentTypes: len(w.storages),
		ResourceCount:  len(w.resources),
		Components:     make([]ComponentStats, len(w.storages)),
	}

	for i, s := range w.storages {
		stats.Components[i] = ComponentStats{
			Slot:  ComponentType(i),
			Name:  s.Type().String(),
			Count: s.Size(),
		}
	}

	return stats
}
