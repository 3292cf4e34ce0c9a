package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/sparsecs/ecs"
)

func TestStatsFinalize(t *testing.T) {
	var empty Stats
	empty.Finalize()
	assert.Zero(t, empty.Avg)

	s := Stats{Samples: []time.Duration{3 * time.Millisecond, time.Millisecond, 5 * time.Millisecond}}
	s.Finalize()
	assert.Equal(t, time.Millisecond, s.Min)
	assert.Equal(t, 5*time.Millisecond, s.Max)
	assert.Equal(t, 3*time.Millisecond, s.Avg)
}

func TestReportSlowestSystems(t *testing.T) {
	r := &Report{}
	assert.Nil(t, r.SlowestSystems(3))

	r.SystemStats = &ecs.SystemsStats{Systems: []ecs.SystemStats{
		{Name: "a", AvgDuration: time.Microsecond},
		{Name: "b", AvgDuration: time.Millisecond},
		{Name: "c", AvgDuration: 10 * time.Microsecond},
	}}
	slowest := r.SlowestSystems(2)
	require.Len(t, slowest, 2)
	assert.Equal(t, "b", slowest[0].Name)
	assert.Equal(t, "c", slowest[1].Name)
	assert.Equal(t, "a", r.SystemStats.Systems[0].Name, "the stats are not reordered in place")
}

func TestReportGenerate(t *testing.T) {
	w := ecs.NewWorld(ecs.WithMaxEntities(64))
	RegisterAllGeneratedComponents(w)

	systems := ecs.NewSystems()
	RegisterAllGeneratedSystems(systems)

	r := &Report{
		Duration:   time.Second,
		Entities:   10,
		Components: componentCount,
		Systems:    systemCount,
	}
	for range 10 {
		SpawnRandomEntity(w, rngForTest(), 3)
	}
	systems.Step(w, 0.1)
	r.World = w.CollectStats()
	r.SystemStats = systems.Stats()

	var buf bytes.Buffer
	require.NoError(t, r.Generate(&buf))

	out := buf.String()
	assert.Contains(t, out, "**Initial Entities:** 10")
	assert.Contains(t, out, "**Living Entities:** 10 / 64")
	assert.Contains(t, out, "## Slowest Systems (avg)")
	assert.NotContains(t, out, "GC Pause Durations")
}
