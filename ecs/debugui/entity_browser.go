package debugui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/sparsecs/ecs"
)

type EntityInfo struct {
	ID             ecs.EntityID
	Mask           ecs.ComponentMask
	ComponentTypes []string
	ComponentCount int
}

// EntityBrowserCache holds the entity table between frames. It is rebuilt
// whenever the World's occupancy fingerprint changes.
type EntityBrowserCache struct {
	entities        []EntityInfo
	lastFingerprint worldFingerprint
	sortColumn      int
	sortAscending   bool
}

// worldFingerprint changes whenever an entity or a component is added or removed.
type worldFingerprint struct {
	living     int
	components int
	types      int
}

func fingerprintOf(w *ecs.World) worldFingerprint {
	stats := w.CollectStats()
	fp := worldFingerprint{living: stats.LivingEntities, types: stats.ComponentTypes}
	for _, c := range stats.Components {
		fp.components += c.Count
	}
	return fp
}

func NewEntityBrowserComponent(maxEntitiesPerPage int) EntityBrowserComponent {
	return EntityBrowserComponent{
		cache: &EntityBrowserCache{
			sortColumn:    0,
			sortAscending: true,
		},
		maxEntitiesPerPage: maxEntitiesPerPage,
	}
}

func (eb *EntityBrowserComponent) Render(w *ecs.World) {
	if !imgui.BeginV("Entity Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	eb.rebuildCacheIfNeeded(w)

	imgui.InputTextWithHint("##search", "Search...", &eb.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		eb.filterText = ""
		eb.filterSlot = nil
	}
	if eb.filterSlot != nil {
		imgui.Text(fmt.Sprintf("Holding: %s", w.ComponentTypes()[*eb.filterSlot]))
	}

	filteredEntities := filterEntities(eb.cache.entities, eb.filterText, eb.filterSlot)

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EntityTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Entity ID")
		imgui.TableSetupColumn("Mask")
		imgui.TableSetupColumn("Components")
		imgui.TableSetupColumn("Count")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			eb.cache.sortColumn = int(spec.ColumnIndex())
			eb.cache.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			sortEntities(eb.cache.entities, eb.cache.sortColumn, eb.cache.sortAscending)
			filteredEntities = filterEntities(eb.cache.entities, eb.filterText, eb.filterSlot)
			sortSpecs.SetSpecsDirty(false)
		}

		startIdx := min(eb.currentPage*eb.maxEntitiesPerPage, len(filteredEntities))
		endIdx := min(startIdx+eb.maxEntitiesPerPage, len(filteredEntities))

		for _, entity := range filteredEntities[startIdx:endIdx] {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := eb.hasSelection && eb.selectedEntityID == entity.ID
			if imgui.SelectableBoolV(fmt.Sprintf("%d", entity.ID), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				eb.selectedEntityID = entity.ID
				eb.hasSelection = true
			}

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("0x%X", uint64(entity.Mask)))

			imgui.TableNextColumn()
			imgui.Text(strings.Join(entity.ComponentTypes, ", "))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", entity.ComponentCount))
		}

		imgui.EndTable()
	}

	if len(filteredEntities) > eb.maxEntitiesPerPage {
		totalPages := (len(filteredEntities) + eb.maxEntitiesPerPage - 1) / eb.maxEntitiesPerPage
		imgui.Text(fmt.Sprintf("Page %d / %d (%d entities)", eb.currentPage+1, totalPages, len(filteredEntities)))
		imgui.SameLine()
		if imgui.Button("Prev") && eb.currentPage > 0 {
			eb.currentPage--
		}
		imgui.SameLine()
		if imgui.Button("Next") && eb.currentPage < totalPages-1 {
			eb.currentPage++
		}
	} else {
		eb.currentPage = 0
		imgui.Text(fmt.Sprintf("Total: %d / %d entities", len(filteredEntities), w.MaxEntities()))
	}

	imgui.End()
}

// FilterBySlot restricts the browser to entities holding the component in slot.
func (eb *EntityBrowserComponent) FilterBySlot(slot *ecs.ComponentType) {
	eb.filterSlot = slot
	eb.currentPage = 0
}

func (eb *EntityBrowserComponent) rebuildCacheIfNeeded(w *ecs.World) {
	fp := fingerprintOf(w)
	if eb.cache.entities == nil || eb.cache.lastFingerprint != fp {
		eb.cache.entities = collectEntities(w)
		eb.cache.lastFingerprint = fp
		sortEntities(eb.cache.entities, eb.cache.sortColumn, eb.cache.sortAscending)
	}
	if eb.hasSelection && !w.Alive(eb.selectedEntityID) {
		eb.hasSelection = false
	}
}

func collectEntities(w *ecs.World) []EntityInfo {
	names := componentNames(w)
	ids := w.Entities()
	entities := make([]EntityInfo, 0, len(ids))

	for _, id := range ids {
		mask := w.Mask(id)
		slots := mask.Types()
		types := make([]string, len(slots))
		for i, slot := range slots {
			types[i] = names[slot]
		}
		entities = append(entities, EntityInfo{
			ID:             id,
			Mask:           mask,
			ComponentTypes: types,
			ComponentCount: len(types),
		})
	}
	return entities
}

func componentNames(w *ecs.World) []string {
	types := w.ComponentTypes()
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.String()
	}
	return names
}

func sortEntities(entities []EntityInfo, column int, ascending bool) {
	sort.SliceStable(entities, func(i, j int) bool {
		a, b := entities[i], entities[j]
		if !ascending {
			a, b = b, a
		}

		switch column {
		case 1:
			return a.Mask < b.Mask
		case 2:
			return strings.Join(a.ComponentTypes, ",") < strings.Join(b.ComponentTypes, ",")
		case 3:
			return a.ComponentCount < b.ComponentCount
		default:
			return a.ID < b.ID
		}
	})
}

func filterEntities(entities []EntityInfo, text string, slot *ecs.ComponentType) []EntityInfo {
	if text == "" && slot == nil {
		return entities
	}

	filtered := make([]EntityInfo, 0, len(entities))
	filterLower := strings.ToLower(text)

	for _, entity := range entities {
		if slot != nil && !entity.Mask.Has(*slot) {
			continue
		}

		if text != "" {
			idStr := fmt.Sprintf("%d", entity.ID)
			componentsStr := strings.ToLower(strings.Join(entity.ComponentTypes, " "))

			if !strings.Contains(idStr, filterLower) &&
				!strings.Contains(componentsStr, filterLower) {
				continue
			}
		}

		filtered = append(filtered, entity)
	}

	return filtered
}

// SelectedEntity returns the entity picked in the browser, if any.
func (eb *EntityBrowserComponent) SelectedEntity() (ecs.EntityID, bool) {
	return eb.selectedEntityID, eb.hasSelection
}
