package ecs

import (
	"testing"
	"time"
)

func TestWorldStats(t *testing.T) {
	w := NewWorld(WithMaxEntities(100))
	RegisterComponent[int](w)
	RegisterComponent[string](w)
	RegisterComponent[float64](w)

	stats := w.CollectStats()
	if stats.LivingEntities != 0 {
		t.Errorf("expected 0 entities, got %d", stats.LivingEntities)
	}
	if stats.MaxEntities != 100 {
		t.Errorf("expected capacity 100, got %d", stats.MaxEntities)
	}
	if stats.ComponentTypes != 3 {
		t.Errorf("expected 3 component types, got %d", stats.ComponentTypes)
	}

	w.Spawn(42, "hello")
	w.Spawn(100, "world")
	w.Spawn(200.0, "test")
	AddResource(w, time.Duration(0))

	stats = w.CollectStats()

	if stats.LivingEntities != 3 {
		t.Errorf("expected 3 entities, got %d", stats.LivingEntities)
	}
	if stats.ResourceCount != 1 {
		t.Errorf("expected 1 resource, got %d", stats.ResourceCount)
	}

	want := []ComponentStats{
		{Slot: 0, Name: "int", Count: 2},
		{Slot: 1, Name: "string", Count: 3},
		{Slot: 2, Name: "float64", Count: 1},
	}
	if len(stats.Components) != len(want) {
		t.Fatalf("expected %d component entries, got %d", len(want), len(stats.Components))
	}
	for i, c := range stats.Components {
		if c != want[i] {
			t.Errorf("component %d: expected %+v, got %+v", i, want[i], c)
		}
	}
}

type TestSystem struct {
	executeCount int
	sleepDur     time.Duration
}

func (s *TestSystem) Execute(frame *UpdateFrame) {
	s.executeCount++
	if s.sleepDur > 0 {
		time.Sleep(s.sleepDur)
	}
}

func TestSystemsStatsDurations(t *testing.T) {
	w := NewWorld()
	systems := NewSystems()

	stats := systems.Stats()
	if stats.SystemCount != 0 {
		t.Errorf("expected 0 systems, got %d", stats.SystemCount)
	}
	if stats.TotalExecutions != 0 {
		t.Errorf("expected 0 total executions, got %d", stats.TotalExecutions)
	}

	sys1 := &TestSystem{sleepDur: 1 * time.Millisecond}
	sys2 := &TestSystem{sleepDur: 2 * time.Millisecond}
	systems.Register(sys1)
	systems.Register(sys2)

	systems.Step(w, 0.016)
	systems.Step(w, 0.016)
	systems.Step(w, 0.016)

	stats = systems.Stats()

	if stats.TotalExecutions != 6 {
		t.Errorf("expected 6 total executions (2 systems * 3 runs), got %d", stats.TotalExecutions)
	}

	for _, sysStats := range stats.Systems {
		if sysStats.Name != "TestSystem" {
			t.Errorf("expected system name 'TestSystem', got '%s'", sysStats.Name)
		}
		if sysStats.ExecutionCount != 3 {
			t.Errorf("expected 3 executions, got %d", sysStats.ExecutionCount)
		}
		if sysStats.MinDuration == 0 || sysStats.LastDuration == 0 {
			t.Errorf("expected non-zero durations, got %+v", sysStats)
		}
		if sysStats.MinDuration > sysStats.AvgDuration {
			t.Errorf("min duration (%v) should be <= avg duration (%v)", sysStats.MinDuration, sysStats.AvgDuration)
		}
		if sysStats.AvgDuration > sysStats.MaxDuration {
			t.Errorf("avg duration (%v) should be <= max duration (%v)", sysStats.AvgDuration, sysStats.MaxDuration)
		}
	}

	if sys1.executeCount != 3 || sys2.executeCount != 3 {
		t.Errorf("expected both systems to execute 3 times, got %d and %d", sys1.executeCount, sys2.executeCount)
	}
}

func TestIDPool(t *testing.T) {
	var p idPool

	for want := EntityID(0); want < 5; want++ {
		if got := p.acquire(); got != want {
			t.Fatalf("expected fresh id %d, got %d", want, got)
		}
	}

	p.release(4)
	p.release(1)
	p.release(3)

	if p.peek() != 1 {
		t.Errorf("expected 1 at the head of the pool, got %d", p.peek())
	}
	for _, want := range []EntityID{1, 3, 4, 5} {
		if got := p.acquire(); got != want {
			t.Errorf("expected id %d, got %d", want, got)
		}
	}
}

func TestSparseSetHasRejectsStaleMapping(t *testing.T) {
	s := NewSparseSet[int]()
	s.Add(1, 10)
	s.Add(2, 20)

	// A sparse slot pointing at a dense slot owned by another entity is not a hit.
	s.grow(5)
	s.sparse[5] = 0
	if s.Has(5) {
		t.Error("expected back-pointer check to reject entity 5")
	}
}
