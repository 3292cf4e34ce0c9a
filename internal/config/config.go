// Package config loads the settings of the ecs-stress tool.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

type Config struct {
	World     WorldConfig     `toml:"world" yaml:"world"`
	Scheduler SchedulerConfig `toml:"scheduler" yaml:"scheduler"`
	Logging   LoggingConfig   `toml:"logging" yaml:"logging"`
	Stress    StressConfig    `toml:"stress" yaml:"stress"`
}

type WorldConfig struct {
	MaxEntities int `toml:"max_entities" yaml:"max_entities"`
}

type SchedulerConfig struct {
	TickRate time.Duration `toml:"tick_rate" yaml:"tick_rate"`
}

type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"` // "json" or "console"
}

type StressConfig struct {
	Entities int           `toml:"entities" yaml:"entities"`
	Duration time.Duration `toml:"duration" yaml:"duration"`
	Seed     int64         `toml:"seed" yaml:"seed"`
}

// Load reads a TOML or YAML file, chosen by extension, over the defaults.
// The result is not validated, so callers can apply overrides first.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "read config %s", path)
	}

	cfg := Defaults()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		return nil, eris.Errorf("config %s: unsupported extension %q", path, ext)
	}
	if err != nil {
		return nil, eris.Wrapf(err, "parse config %s", path)
	}

	return cfg, nil
}

// Validate rejects values the World or the scheduler cannot run with.
func (c *Config) Validate() error {
	if c.World.MaxEntities <= 0 {
		return eris.Errorf("world.max_entities must be positive, got %d", c.World.MaxEntities)
	}
	if c.Scheduler.TickRate <= 0 {
		return eris.Errorf("scheduler.tick_rate must be positive, got %s", c.Scheduler.TickRate)
	}
	if c.Stress.Entities < 0 || c.Stress.Entities > c.World.MaxEntities {
		return eris.Errorf("stress.entities must be in [0, %d], got %d", c.World.MaxEntities, c.Stress.Entities)
	}
	return nil
}

func Defaults() *Config {
	return &Config{
		World: WorldConfig{
			MaxEntities: 100_000,
		},
		Scheduler: SchedulerConfig{
			TickRate: time.Second / 60,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Stress: StressConfig{
			Entities: 10_000,
			Duration: 10 * time.Second,
			Seed:     1,
		},
	}
}
