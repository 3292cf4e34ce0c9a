package ecs_test

import (
	"testing"

	"github.com/plus3/sparsecs/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestResources(t *testing.T) {
	w := ecs.NewWorld()

	_, ok := ecs.GetResource[GameTime](w)
	assert.False(t, ok)

	ptr := ecs.AddResource(w, GameTime{Elapsed: 3})
	got, ok := ecs.GetResource[GameTime](w)
	require.True(t, ok)
	assert.Same(t, ptr, got)
	assert.Equal(t, 3.0, got.Elapsed)

	ecs.RemoveResource[GameTime](w)
	assert.False(t, ecs.HasResource[GameTime](w))
	assert.NotPanics(t, func() { ecs.RemoveResource[GameTime](w) })
}

func TestResourceOverwriteWarns(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	w := ecs.NewWorld(ecs.WithLogger(zap.New(core)))

	first := ecs.AddResource(w, GameTime{Elapsed: 1})
	second := ecs.AddResource(w, GameTime{Elapsed: 2})

	assert.Same(t, first, second, "the value is overwritten in place")
	assert.Equal(t, 2.0, first.Elapsed)
	assert.Equal(t, 1, logs.FilterMessage("overwriting resource").Len())
}

func TestResourcesArePerWorld(t *testing.T) {
	a := ecs.NewWorld()
	b := ecs.NewWorld()

	ecs.AddResource(a, Score(1))

	assert.True(t, ecs.HasResource[Score](a))
	assert.False(t, ecs.HasResource[Score](b))
}

func TestResourceAccessor(t *testing.T) {
	w := ecs.NewWorld()

	var r ecs.Resource[GameTime]
	assert.Nil(t, r.Get(), "an unbound accessor resolves nothing")

	r.Init(w)
	assert.False(t, r.Exists())

	ecs.AddResource(w, GameTime{Elapsed: 4})
	require.True(t, r.Exists(), "a missing resource is looked up again on Get")
	assert.Equal(t, 4.0, r.Get().Elapsed)

	existing := ecs.NewResource(w, GameTime{Elapsed: 99})
	assert.Equal(t, 4.0, existing.Get().Elapsed, "the initializer is ignored when the resource exists")

	zero := ecs.NewResource[Score](w)
	require.NotNil(t, zero.Get())
	assert.Equal(t, Score(0), *zero.Get())
}
