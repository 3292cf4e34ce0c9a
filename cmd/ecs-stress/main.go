package main

//go:generate go run ./gen -components 48 -systems 24 -out generated.go

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/plus3/sparsecs/ecs"
	"github.com/plus3/sparsecs/internal/config"
	"github.com/plus3/sparsecs/internal/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "ecs-stress: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "Optional TOML or YAML config file.")
	duration := flag.Duration("duration", 0, "The total duration the test should run for.")
	entityCount := flag.Int("entities", 0, "The initial number of entities to create.")
	churn := flag.Float64("churn", 0.01, "Fraction of entities deleted and respawned every tick.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	profileMode := flag.String("profile", "", "Write a pprof profile: cpu, mem or trace.")
	flag.Parse()

	cfg := config.Defaults()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if *duration > 0 {
		cfg.Stress.Duration = *duration
	}
	if *entityCount > 0 {
		cfg.Stress.Entities = *entityCount
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := validateChurn(*churn); err != nil {
		return err
	}

	log, err := logging.New(cfg.Logging)
	if err != nil {
		return eris.Wrap(err, "build logger")
	}
	defer func() { _ = log.Sync() }()

	stopProfile, err := startProfile(*profileMode)
	if err != nil {
		return err
	}
	if stopProfile != nil {
		defer stopProfile()
	}

	log.Info("starting ECS stress test",
		zap.Int("entities", cfg.Stress.Entities),
		zap.Duration("duration", cfg.Stress.Duration),
		zap.Int("components", componentCount),
		zap.Int("systems", systemCount),
	)

	// 1. Setup World and Systems
	w := ecs.NewWorld(ecs.WithLogger(log.Named("world")), ecs.WithMaxEntities(cfg.World.MaxEntities))
	RegisterAllGeneratedComponents(w)

	rng := rand.New(rand.NewPCG(uint64(cfg.Stress.Seed), 0))

	systems := ecs.NewSystems(ecs.WithSystemsLogger(log.Named("systems")), ecs.WithFixedStep(cfg.Scheduler.TickRate))
	RegisterAllGeneratedSystems(systems)
	systems.Register(&churnSystem{rng: rng, rate: *churn})

	// 2. Populate the World with initial entities
	for range cfg.Stress.Entities {
		SpawnRandomEntity(w, rng, rng.IntN(5)+1)
	}
	log.Info("population complete", zap.Int("living", w.Living()))

	// 3. Run the simulation loop
	report := &Report{
		Duration:       cfg.Stress.Duration,
		Entities:       cfg.Stress.Entities,
		Components:     componentCount,
		Systems:        systemCount,
		GCPauseMetrics: *gcPauseMetrics,
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Stress.Duration)
	defer cancel()

	startTime := time.Now()
	lastFrameTime := startTime

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			deltaTime := time.Since(lastFrameTime)
			lastFrameTime = time.Now()

			updateStart := time.Now()
			systems.Step(w, deltaTime.Seconds())
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
			report.TotalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.UpdateTime.Finalize()
	report.World = w.CollectStats()
	report.SystemStats = systems.Stats()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Info("simulation finished", zap.Int64("updates", report.TotalUpdates), zap.Int("living", w.Living()))

	// 4. Generate Report to Console
	if err := report.Generate(os.Stdout); err != nil {
		return eris.Wrap(err, "generate report")
	}
	return nil
}

func startProfile(mode string) (func(), error) {
	var opt func(*profile.Profile)
	switch mode {
	case "":
		return nil, nil
	case "cpu":
		opt = profile.CPUProfile
	case "mem":
		opt = profile.MemProfileAllocs
	case "trace":
		opt = profile.TraceProfile
	default:
		return nil, eris.Errorf("unknown profile mode %q", mode)
	}
	p := profile.Start(opt, profile.ProfilePath("."), profile.NoShutdownHook)
	return p.Stop, nil
}

func validateChurn(rate float64) error {
	if rate < 0 || rate > 1 {
		return eris.Errorf("churn must be in [0, 1], got %g", rate)
	}
	return nil
}

// SpawnRandomEntity creates an entity holding n distinct random components.
func SpawnRandomEntity(w *ecs.World, rng *rand.Rand, n int) ecs.EntityID {
	b := w.CreateEntity()
	for _, idx := range rng.Perm(componentCount)[:n] {
		b.With(componentFactories[idx](rng))
	}
	return b.ID()
}

// churnSystem deletes a fraction of the living entities each tick and queues
// as many replacements, keeping the population steady while exercising the
// free id pool and every storage's swap-and-pop path.
type churnSystem struct {
	rng  *rand.Rand
	rate float64
}

func (s *churnSystem) Execute(frame *ecs.UpdateFrame) {
	entities := frame.World.Entities()
	n := int(float64(len(entities)) * s.rate)

	for _, i := range s.rng.Perm(len(entities))[:n] {
		frame.Commands.Delete(entities[i])

		components := make([]any, 0, 5)
		for _, idx := range s.rng.Perm(componentCount)[:s.rng.IntN(5)+1] {
			components = append(components, componentFactories[idx](s.rng))
		}
		frame.Commands.Create(components...)
	}
}
