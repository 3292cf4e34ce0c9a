package debugui

import (
	"fmt"
	"sort"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/sparsecs/ecs"
)

// StorageInfo describes the SparseSet of one component type.
type StorageInfo struct {
	Slot  ecs.ComponentType
	Name  string
	Count int
}

type StorageViewerCache struct {
	storages      []StorageInfo
	sortColumn    int
	sortAscending bool
}

func NewStorageViewerComponent() StorageViewerComponent {
	return StorageViewerComponent{
		cache: &StorageViewerCache{
			sortColumn:    2,
			sortAscending: false,
		},
		sortColumn:    2,
		sortAscending: false,
	}
}

// Render draws one row per component storage. It returns the slot the user
// clicked this frame, or nil.
func (sv *StorageViewerComponent) Render(w *ecs.World) *ecs.ComponentType {
	if !imgui.BeginV("Component Storages", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return nil
	}

	sv.cache.storages = collectStorages(w)
	sortStorages(sv.cache.storages, sv.cache.sortColumn, sv.cache.sortAscending)

	maxCount := 0
	for _, s := range sv.cache.storages {
		maxCount = max(maxCount, s.Count)
	}

	imgui.Text(fmt.Sprintf("Registered: %d / %d", len(sv.cache.storages), ecs.MaxComponents))

	var clickedSlot *ecs.ComponentType

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("StorageTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Slot")
		imgui.TableSetupColumn("Component")
		imgui.TableSetupColumn("Entity Count")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			sv.cache.sortColumn = int(spec.ColumnIndex())
			sv.cache.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			sv.sortColumn = sv.cache.sortColumn
			sv.sortAscending = sv.cache.sortAscending
			sortStorages(sv.cache.storages, sv.cache.sortColumn, sv.cache.sortAscending)
			sortSpecs.SetSpecsDirty(false)
		}

		for _, s := range sv.cache.storages {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := sv.selectedSlot != nil && *sv.selectedSlot == s.Slot
			if imgui.SelectableBoolV(fmt.Sprintf("%d", s.Slot), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				slot := s.Slot
				clickedSlot = &slot
				sv.selectedSlot = &slot
			}

			imgui.TableNextColumn()
			imgui.Text(s.Name)

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", s.Count))

			if maxCount > 0 {
				barWidth := float32(s.Count) / float32(maxCount) * 80.0
				imgui.SameLine()
				drawList := imgui.WindowDrawList()
				pos := imgui.CursorScreenPos()
				color := imgui.ColorU32Vec4(imgui.NewVec4(0.2, 0.6, 0.8, 0.6))
				drawList.AddRectFilled(pos, imgui.NewVec2(pos.X+barWidth, pos.Y+10), color)
			}
		}

		imgui.EndTable()
	}

	imgui.End()
	return clickedSlot
}

func collectStorages(w *ecs.World) []StorageInfo {
	stats := w.CollectStats()
	storages := make([]StorageInfo, len(stats.Components))
	for i, c := range stats.Components {
		storages[i] = StorageInfo{Slot: c.Slot, Name: c.Name, Count: c.Count}
	}
	return storages
}

func sortStorages(storages []StorageInfo, column int, ascending bool) {
	sort.SliceStable(storages, func(i, j int) bool {
		a, b := storages[i], storages[j]
		if !ascending {
			a, b = b, a
		}

		switch column {
		case 0:
			return a.Slot < b.Slot
		case 1:
			return a.Name < b.Name
		default:
			return a.Count < b.Count
		}
	})
}
