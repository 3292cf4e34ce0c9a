package debugui

import (
	"fmt"
	"slices"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/sparsecs/ecs"
)

// QueryPlan is what a View over a set of component types would do: walk the
// smallest of their storages and keep the entities whose mask holds them all.
type QueryPlan struct {
	Mask       ecs.ComponentMask
	Source     ecs.ComponentType
	Candidates int
	Matches    []ecs.EntityID
}

func NewQueryDebuggerComponent() QueryDebuggerComponent {
	return QueryDebuggerComponent{
		selectedSlots: make(map[ecs.ComponentType]bool),
		maxListed:     50,
	}
}

func (qd *QueryDebuggerComponent) Render(w *ecs.World) {
	if !imgui.BeginV("Query Debugger", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text("Select Component Types:")
	imgui.Separator()

	if imgui.Button("Clear All") {
		clear(qd.selectedSlots)
	}

	for slot, name := range componentNames(w) {
		ct := ecs.ComponentType(slot)
		selected := qd.selectedSlots[ct]
		if imgui.Checkbox(name, &selected) {
			if selected {
				qd.selectedSlots[ct] = true
			} else {
				delete(qd.selectedSlots, ct)
			}
		}
	}

	imgui.Separator()

	slots := make([]ecs.ComponentType, 0, len(qd.selectedSlots))
	for slot := range qd.selectedSlots {
		slots = append(slots, slot)
	}
	slices.Sort(slots)

	if len(slots) == 0 {
		imgui.Text("No component types selected")
		imgui.End()
		return
	}

	plan := planQuery(w, slots)

	imgui.Text(fmt.Sprintf("Mask: 0x%X", uint64(plan.Mask)))
	imgui.Text(fmt.Sprintf("Source storage: %s (%d candidates)", w.ComponentTypes()[plan.Source], plan.Candidates))
	imgui.Text(fmt.Sprintf("Matching Entities: %d", len(plan.Matches)))

	if imgui.TreeNodeStr("Matching Entity IDs") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("QueryMatchTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Entity ID")
			imgui.TableSetupColumn("Components")
			imgui.TableHeadersRow()

			for _, id := range plan.Matches[:min(len(plan.Matches), qd.maxListed)] {
				imgui.TableNextRow()

				imgui.TableSetColumnIndex(0)
				imgui.Text(fmt.Sprintf("%d", id))

				imgui.TableSetColumnIndex(1)
				imgui.Text(fmt.Sprintf("%d", w.Mask(id).Count()))
			}

			imgui.EndTable()
		}
		if len(plan.Matches) > qd.maxListed {
			imgui.Text(fmt.Sprintf("... and %d more", len(plan.Matches)-qd.maxListed))
		}
		imgui.TreePop()
	}

	imgui.End()
}

// planQuery evaluates the intersection of the given non-empty slot list.
func planQuery(w *ecs.World, slots []ecs.ComponentType) QueryPlan {
	plan := QueryPlan{Mask: ecs.MaskOf(slots...)}

	stats := w.CollectStats()
	plan.Source = slots[0]
	plan.Candidates = stats.Components[slots[0]].Count
	for _, slot := range slots[1:] {
		if n := stats.Components[slot].Count; n < plan.Candidates {
			plan.Source = slot
			plan.Candidates = n
		}
	}

	for _, id := range w.Entities() {
		if w.HasAll(id, slots...) {
			plan.Matches = append(plan.Matches, id)
		}
	}
	return plan
}
