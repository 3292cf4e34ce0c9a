package ecs

import (
	"context"
	"fmt"
	"reflect"
	"runtime"
	"time"

	"go.uber.org/zap"
)

// DefaultFixedStep is the delta time Update passes to systems unless
// WithFixedStep is given.
const DefaultFixedStep = time.Second / 60

// SystemsStats provides statistics about system execution.
type SystemsStats struct {
	SystemCount     int
	Ticks           uint64
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

func (s *systemStatsInternal) record(d time.Duration) {
	s.executionCount++
	s.lastDuration = d
	s.totalDuration += d

	if d < s.minDuration {
		s.minDuration = d
	}
	if d > s.maxDuration {
		s.maxDuration = d
	}
}

// worldBinder is implemented by system fields that need the World, such as
// Query and Resource.
type worldBinder interface {
	Init(w *World)
}

// executable is implemented by system fields refreshed before every run.
type executable interface {
	Execute()
}

type systemEntry struct {
	name    string
	system  System
	world   *World
	queries []executable
	stats   systemStatsInternal
}

// Systems runs registered systems over a World once per tick, in the order
// they were registered.
//
// There is no isolation between systems: a system that panics aborts the
// rest of the tick and the panic propagates out of Update. Commands queued
// during an aborted tick stay buffered and are applied after the next tick.
type Systems struct {
	log      *zap.Logger
	step     time.Duration
	entries  []*systemEntry
	commands *Commands
	ticks    uint64
}

// SystemsOption configures Systems.
type SystemsOption func(*Systems)

// WithSystemsLogger sets the logger that receives scheduling diagnostics.
func WithSystemsLogger(log *zap.Logger) SystemsOption {
	return func(s *Systems) {
		if log != nil {
			s.log = log
		}
	}
}

// WithFixedStep sets the delta time Update passes to systems.
func WithFixedStep(step time.Duration) SystemsOption {
	return func(s *Systems) {
		if step > 0 {
			s.step = step
		}
	}
}

// NewSystems creates an empty system list.
func NewSystems(opts ...SystemsOption) *Systems {
	s := &Systems{
		log:      zap.NewNop(),
		step:     DefaultFixedStep,
		commands: newCommands(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register appends a system. Its exported Query and Resource fields are bound
// to the World the first time the system runs against it.
func (s *Systems) Register(system System) {
	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Pointer {
		systemType = systemType.Elem()
	}

	name := systemType.Name()
	if fn, ok := system.(SystemFunc); ok {
		name = funcName(fn)
	}
	s.register(name, system)
}

// AddSystem registers fn as a system run once per entity matching the view T.
// fn must be a func(T) or a func(EntityID, T); any other value panics.
//
//	ecs.AddSystem[struct{ *Position; *Velocity }](systems, func(e struct{ *Position; *Velocity }) {
//		e.Position.X += e.Velocity.DX
//	})
func AddSystem[T any](s *Systems, fn any) {
	var each func(EntityID, T)

	switch f := fn.(type) {
	case func(T):
		each = func(_ EntityID, item T) { f(item) }
	case func(EntityID, T):
		each = f
	default:
		s.fatalf("system %T must be a func(%[2]s) or a func(ecs.EntityID, %[2]s)", fn, reflect.TypeFor[T]())
	}

	s.register(funcName(fn), &viewSystem[T]{fn: each})
}

func (s *Systems) register(name string, system System) {
	s.entries = append(s.entries, &systemEntry{
		name:   name,
		system: system,
		stats: systemStatsInternal{
			minDuration: time.Duration(1<<63 - 1),
		},
	})
	s.log.Debug("system registered", zap.String("system", name), zap.Int("order", len(s.entries)-1))
}

// Len returns the number of registered systems.
func (s *Systems) Len() int {
	return len(s.entries)
}

// Update runs one tick with the fixed step as delta time.
func (s *Systems) Update(w *World) {
	s.Step(w, s.step.Seconds())
}

// Step runs every registered system exactly once against w with the given
// delta time, then flushes the commands they queued.
func (s *Systems) Step(w *World, dt float64) {
	s.ticks++
	frame := newUpdateFrame(s.ticks, dt, w, s.commands)

	for _, entry := range s.entries {
		if entry.world != w {
			entry.queries = bindFields(entry.system, w)
			entry.world = w
		}
		for _, q := range entry.queries {
			q.Execute()
		}

		start := time.Now()
		entry.system.Execute(frame)
		entry.stats.record(time.Since(start))
	}

	s.commands.Flush(w)
}

// Run calls Update every interval until ctx is cancelled.
func (s *Systems) Run(ctx context.Context, w *World, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Update(w)
		}
	}
}

// Stats returns statistics about system execution.
func (s *Systems) Stats() *SystemsStats {
	stats := &SystemsStats{
		SystemCount: len(s.entries),
		Ticks:       s.ticks,
		Systems:     make([]SystemStats, len(s.entries)),
	}

	var totalExecs int64
	for i, entry := range s.entries {
		internal := entry.stats
		avgDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		}

		stats.Systems[i] = SystemStats{
			Name:           entry.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    internal.minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}

func (s *Systems) fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	s.log.Error(msg)
	panic(msg)
}

// bindFields initialises the Query and Resource fields of a struct system and
// returns the fields that must be executed before each run.
func bindFields(system System, w *World) []executable {
	systemValue := reflect.ValueOf(system)
	if systemValue.Kind() != reflect.Pointer || systemValue.IsNil() {
		return nil
	}
	systemValue = systemValue.Elem()
	if systemValue.Kind() != reflect.Struct {
		return nil
	}

	var queries []executable
	for i := 0; i < systemValue.NumField(); i++ {
		field := systemValue.Field(i)
		if !field.CanSet() || field.Kind() != reflect.Struct {
			continue
		}

		binder, ok := field.Addr().Interface().(worldBinder)
		if !ok {
			continue
		}
		binder.Init(w)

		if q, ok := binder.(executable); ok {
			queries = append(queries, q)
		}
	}
	return queries
}

func funcName(fn any) string {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		return fmt.Sprintf("%T", fn)
	}
	if f := runtime.FuncForPC(v.Pointer()); f != nil {
		return f.Name()
	}
	return v.Type().String()
}
