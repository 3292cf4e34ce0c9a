package debugui

import (
	"github.com/plus3/sparsecs/ecs"
)

type EntityBrowserComponent struct {
	cache              *EntityBrowserCache
	selectedEntityID   ecs.EntityID
	hasSelection       bool
	filterText         string
	filterSlot         *ecs.ComponentType
	maxEntitiesPerPage int
	currentPage        int
}

type ComponentInspectorComponent struct {
	selectedEntityID ecs.EntityID
	hasSelection     bool
}

type StorageViewerComponent struct {
	cache         *StorageViewerCache
	selectedSlot  *ecs.ComponentType
	sortColumn    int
	sortAscending bool
}

type PerformanceStatsComponent struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

type QueryDebuggerComponent struct {
	selectedSlots map[ecs.ComponentType]bool
	maxListed     int
}
