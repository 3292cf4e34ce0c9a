package ecs_test

import (
	"slices"
	"testing"

	"github.com/plus3/sparsecs/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestView(t *testing.T) {
	w := newTestWorld()
	entityID := w.Spawn(&Position{X: 1, Y: 2}, Temperature(32))

	view := ecs.NewView[struct {
		*Position
		*Temperature
	}](w)

	item := view.Get(entityID)
	require.NotNil(t, item)
	assert.Equal(t, Temperature(32), *item.Temperature)
	assert.Equal(t, float32(1), item.Position.X)
	assert.Equal(t, float32(2), item.Position.Y)
}

func TestViewMissingComponent(t *testing.T) {
	w := newTestWorld()
	// Entity only has Position, not Velocity
	entityID := w.Spawn(&Position{X: 5, Y: 10})

	view := ecs.NewView[struct {
		*Position
		*Velocity
	}](w)

	assert.Nil(t, view.Get(entityID))
}

func TestViewFill(t *testing.T) {
	w := newTestWorld()
	entityID := w.Spawn(Position{X: 100, Y: 200}, Velocity{DX: 5, DY: 10})

	view := ecs.NewView[struct {
		*Position
		*Velocity
	}](w)

	var item struct {
		*Position
		*Velocity
	}
	require.True(t, view.Fill(entityID, &item))
	assert.Equal(t, float32(100), item.Position.X)
	assert.Equal(t, float32(10), item.Velocity.DY)

	w.DeleteEntity(entityID)
	assert.False(t, view.Fill(entityID, &item), "dead entities never fill")
	assert.False(t, view.Fill(ecs.EntityID(w.MaxEntities()+1), &item))
}

func TestViewComponentMutation(t *testing.T) {
	w := newTestWorld()
	entityID := w.Spawn(Position{X: 1, Y: 1}, Velocity{DX: 2, DY: 3})

	view := ecs.NewView[struct {
		*Position
		*Velocity
	}](w)

	item := view.Get(entityID)
	require.NotNil(t, item)
	item.Position.X += item.Velocity.DX
	item.Position.Y += item.Velocity.DY

	pos, err := ecs.Get[Position](w, entityID)
	require.NoError(t, err)
	assert.Equal(t, Position{X: 3, Y: 4}, *pos)
}

func TestViewIter(t *testing.T) {
	w := newTestWorld()
	moving1 := w.Spawn(Position{X: 1}, Velocity{DX: 1})
	w.Spawn(Position{X: 2})
	moving2 := w.Spawn(Position{X: 3}, Velocity{DX: 3}, Health{Current: 1})
	w.Spawn(Velocity{DX: 4})

	view := ecs.NewView[struct {
		*Position
		*Velocity
	}](w)

	var ids []ecs.EntityID
	for id, item := range view.Iter() {
		ids = append(ids, id)
		assert.Equal(t, item.Position.X, item.Velocity.DX)
	}
	slices.Sort(ids)
	assert.Equal(t, []ecs.EntityID{moving1, moving2}, ids)
	assert.Equal(t, 2, view.Count())
}

func TestViewIterEmpty(t *testing.T) {
	w := newTestWorld()
	w.Spawn(Position{})

	view := ecs.NewView[struct {
		*Position
		*Velocity
	}](w)

	for range view.Iter() {
		t.Fatal("no entity holds both components")
	}
	assert.Empty(t, view.Components())
}

func TestViewIterEarlyBreak(t *testing.T) {
	w := newTestWorld()
	for i := range 10 {
		w.Spawn(Position{X: float32(i)})
	}

	view := ecs.NewView[struct{ *Position }](w)

	count := 0
	for range view.Values() {
		count++
		if count == 3 {
			break
		}
	}
	assert.Equal(t, 3, count)
}

func TestViewUsesSmallestStorage(t *testing.T) {
	w := newTestWorld()
	for i := range 100 {
		w.Spawn(Position{X: float32(i)})
	}
	rare := w.Spawn(Position{}, Health{Current: 1})

	view := ecs.NewView[struct {
		*Position
		*Health
	}](w)

	assert.Equal(t, []ecs.EntityID{rare}, view.Entities())
}

func TestViewCandidatesAreFiltered(t *testing.T) {
	w := newTestWorld()
	a := w.Spawn(Health{Current: 1})
	b := w.Spawn(Health{Current: 2}, Position{})
	w.Spawn(Position{})
	w.Spawn(Position{})

	view := ecs.NewView[struct {
		*Position
		*Health
	}](w)

	assert.ElementsMatch(t, []ecs.EntityID{a, b}, view.Entities())
	ids, items := view.All()
	assert.Equal(t, []ecs.EntityID{b}, ids)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Health.Current)
}

func TestViewIsSnapshot(t *testing.T) {
	w := newTestWorld()
	for i := range 3 {
		w.Spawn(Position{X: float32(i)})
	}

	view := ecs.NewView[struct{ *Position }](w)

	visited := 0
	for range view.Iter() {
		visited++
		w.Spawn(Position{X: 100})
	}

	assert.Equal(t, 3, visited, "entities created during a pass are not visited")
	assert.Equal(t, 6, view.Count())
}

func TestViewIterWithDeletedEntities(t *testing.T) {
	w := newTestWorld()
	var ids []ecs.EntityID
	for i := range 5 {
		ids = append(ids, w.Spawn(Position{X: float32(i)}))
	}

	view := ecs.NewView[struct{ *Position }](w)

	visited := 0
	for id := range view.Iter() {
		visited++
		if id == ids[0] {
			w.DeleteEntity(ids[4])
		}
	}

	assert.Equal(t, 4, visited, "entities deleted during a pass are skipped")
}

func TestViewWithPrimitiveComponents(t *testing.T) {
	w := newTestWorld()
	id := w.Spawn(Score(100), Tag("boss"))

	view := ecs.NewView[struct {
		*Score
		*Tag
	}](w)

	item := view.Get(id)
	require.NotNil(t, item)
	assert.Equal(t, Score(100), *item.Score)
	assert.Equal(t, Tag("boss"), *item.Tag)
}

func TestViewWithSliceComponent(t *testing.T) {
	w := newTestWorld()
	id := w.Spawn(Inventory{Items: []string{"sword"}})

	view := ecs.NewView[struct{ *Inventory }](w)
	view.Get(id).Inventory.Items = append(view.Get(id).Inventory.Items, "shield")

	inv, err := ecs.Get[Inventory](w, id)
	require.NoError(t, err)
	assert.Equal(t, []string{"sword", "shield"}, inv.Items)
}

func TestViewEntityIDField(t *testing.T) {
	w := newTestWorld()
	w.Spawn(Velocity{})
	id := w.Spawn(Position{X: 7})

	view := ecs.NewView[struct {
		ID ecs.EntityID
		*Position
	}](w)

	item := view.Get(id)
	require.NotNil(t, item)
	assert.Equal(t, id, item.ID)

	for id, item := range view.Iter() {
		assert.Equal(t, id, item.ID)
	}
}

func TestViewOptionalComponent(t *testing.T) {
	w := newTestWorld()
	withName := w.Spawn(Position{X: 1}, Name{Value: "named"})
	withoutName := w.Spawn(Position{X: 2})
	w.Spawn(Name{Value: "no position"})

	view := ecs.NewView[struct {
		*Position
		Name *Name `ecs:"optional"`
	}](w)

	item := view.Get(withName)
	require.NotNil(t, item)
	require.NotNil(t, item.Name)
	assert.Equal(t, "named", item.Name.Value)

	item = view.Get(withoutName)
	require.NotNil(t, item)
	assert.Nil(t, item.Name)

	assert.Equal(t, 2, view.Count(), "optional fields do not widen the match")
	assert.Equal(t, ecs.MaskOf(ecs.TypeOf[Position](w)), view.Mask())
}

func TestViewOptionalResetBetweenEntities(t *testing.T) {
	w := newTestWorld()
	w.Spawn(Position{X: 1}, Health{Current: 5})
	w.Spawn(Position{X: 2})

	view := ecs.NewView[struct {
		*Position
		Health *Health `ecs:"optional"`
	}](w)

	healthy := 0
	for item := range view.Values() {
		if item.Health != nil {
			healthy++
			assert.Equal(t, float32(1), item.Position.X)
		}
	}
	assert.Equal(t, 1, healthy)
}

func TestViewOnlyOptional(t *testing.T) {
	w := newTestWorld()
	w.Spawn(Position{})

	view := ecs.NewView[struct {
		Position *Position `ecs:"optional"`
	}](w)

	assert.Empty(t, view.Entities())
	assert.Equal(t, 0, view.Count())
	assert.True(t, view.Mask().IsZero())
}

func TestViewEmptyStruct(t *testing.T) {
	w := newTestWorld()
	w.Spawn(Position{})

	view := ecs.NewView[struct{}](w)
	assert.Equal(t, 0, view.Count())
}

func TestViewInvalidDefinitions(t *testing.T) {
	w := newTestWorld()

	assert.Panics(t, func() {
		ecs.NewView[struct {
			Position *Position `ecs:"required"`
		}](w)
	}, "unknown tag")

	assert.Panics(t, func() {
		ecs.NewView[struct{ Position Position }](w)
	}, "non-pointer field")

	assert.Panics(t, func() {
		ecs.NewView[struct{ *float32 }](w)
	}, "unregistered component")

	assert.Panics(t, func() {
		ecs.NewView[int](w)
	}, "not a struct")
}

func TestViewForEach(t *testing.T) {
	w := newTestWorld()
	w.Spawn(Health{Current: 10, Max: 10})
	w.Spawn(Health{Current: 3, Max: 10})

	view := ecs.NewView[struct{ *Health }](w)

	view.ForEach(func(item struct{ *Health }) {
		item.Health.Current--
	})

	total := 0
	view.ForEachWithID(func(id ecs.EntityID, item struct{ *Health }) {
		assert.True(t, w.Alive(id))
		total += item.Health.Current
	})
	assert.Equal(t, 11, total)
}

func TestViewLargeDataset(t *testing.T) {
	w := newTestWorld()
	for i := range 1000 {
		if i%2 == 0 {
			w.Spawn(Position{X: float32(i)}, Velocity{DX: 1})
		} else {
			w.Spawn(Position{X: float32(i)})
		}
	}

	view := ecs.NewView[struct {
		*Position
		*Velocity
	}](w)

	assert.Equal(t, 500, view.Count())
	for _, item := range view.Components() {
		assert.Zero(t, int(item.Position.X)%2)
	}
}
