package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Logging LoggingConfig `toml:"logging"`
	World   WorldConfig   `toml:"world"`
	Bench   BenchConfig   `toml:"bench"`
	Ray     RayConfig     `toml:"ray"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`  // debug, info, warn or error
	Format string `toml:"format"` // "json" or "console"
}

type WorldConfig struct {
	ViewDistance int    `toml:"view_distance"` // cells from the player to the view edge
	LevelPath    string `toml:"level_path"`    // empty builds the default room
	SavePath     string `toml:"save_path"`
}

type BenchConfig struct {
	Size       int `toml:"size"`        // fills [-size, size) on both axes
	UpdateSize int `toml:"update_size"` // mutates [-update_size, update_size)
}

type RayConfig struct {
	StartX   float64 `toml:"start_x"`
	StartY   float64 `toml:"start_y"`
	EndX     float64 `toml:"end_x"`
	EndY     float64 `toml:"end_y"`
	FillSize int     `toml:"fill_size"` // fills [0, fill_size) on both axes
}

// Load reads the TOML file at path over Defaults. An empty path yields the
// defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := Parse(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML data into cfg, leaving fields absent from data as they
// were, then validates the result.
func Parse(data []byte, cfg *Config) error {
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown key %q", undecoded[0].String())
	}
	return cfg.Validate()
}

// Validate checks value ranges.
func (cfg *Config) Validate() error {
	switch cfg.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", cfg.Logging.Format)
	}
	if cfg.World.ViewDistance < 1 {
		return fmt.Errorf("world.view_distance must be positive, got %d", cfg.World.ViewDistance)
	}
	if cfg.Bench.Size < 0 || cfg.Bench.UpdateSize < 0 {
		return fmt.Errorf("bench sizes must not be negative")
	}
	if cfg.Ray.FillSize < 0 {
		return fmt.Errorf("ray.fill_size must not be negative, got %d", cfg.Ray.FillSize)
	}
	return nil
}

func Defaults() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		World: WorldConfig{
			ViewDistance: 12,
			SavePath:     "world.egrd",
		},
		Bench: BenchConfig{
			Size:       1000,
			UpdateSize: 500,
		},
		Ray: RayConfig{
			StartX:   0.5,
			StartY:   0.5,
			EndX:     7.5,
			EndY:     7.5,
			FillSize: 8,
		},
	}
}
