package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"pixelga/internal/grid"
)

// ErrInvalid is wrapped by every configuration error
var ErrInvalid = errors.New("invalid configuration")

// Config is the root configuration structure
type Config struct {
	Seed    int64      `yaml:"seed"`
	Grid    GridConfig `yaml:"grid"`
	Target  []string   `yaml:"target"` // rows of palette digits, empty means all background
	GA      GAConfig   `yaml:"ga"`
	Eval    EvalConfig `yaml:"eval"`
	Run     RunConfig  `yaml:"run"`
	Logging LogConfig  `yaml:"logging"`
}

// GridConfig defines the canvas
type GridConfig struct {
	Width      int `yaml:"width"`
	Height     int `yaml:"height"`
	Colors     int `yaml:"colors"`
	Background int `yaml:"background"`
}

// GAConfig defines genetic algorithm parameters
type GAConfig struct {
	Population          int     `yaml:"population"`
	MutationRate        float64 `yaml:"mutation_rate"` // base per-cell probability
	ElitismRate         float64 `yaml:"elitism_rate"`
	StagnationThreshold int     `yaml:"stagnation_threshold"`
	MutationFactor      float64 `yaml:"mutation_factor"`
	MaxMutationRate     float64 `yaml:"max_mutation_rate"`
}

// EvalConfig defines evaluation parameters
type EvalConfig struct {
	Workers int `yaml:"workers"`
}

// RunConfig defines how the host drives the generation loop
type RunConfig struct {
	MaxGenerations int `yaml:"max_generations"`
	TickMS         int `yaml:"tick_ms"` // 0 runs generations back to back
}

// LogConfig defines logging parameters
type LogConfig struct {
	EveryGenSummary bool   `yaml:"every_gen_summary"`
	Dir             string `yaml:"dir"`
	Level           string `yaml:"level"`  // debug|info|warn|error
	Format          string `yaml:"format"` // text|json
}

// Load reads a YAML config file and returns a validated Config
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	applyDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns a Config with every default applied
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// DefaultGA returns the default genetic algorithm parameters
func DefaultGA() GAConfig {
	return Default().GA
}

func applyDefaults(cfg *Config) {
	if cfg.Seed == 0 {
		cfg.Seed = 1337
	}
	if cfg.Grid.Width == 0 {
		cfg.Grid.Width = 5
	}
	if cfg.Grid.Height == 0 {
		cfg.Grid.Height = 5
	}
	if cfg.Grid.Colors == 0 {
		cfg.Grid.Colors = grid.DefaultPalette.Size()
	}
	if cfg.Grid.Background == 0 {
		cfg.Grid.Background = grid.Background
	}
	if cfg.GA.Population == 0 {
		cfg.GA.Population = 50
	}
	if cfg.GA.MutationRate == 0 {
		cfg.GA.MutationRate = 0.01
	}
	if cfg.GA.ElitismRate == 0 {
		cfg.GA.ElitismRate = 0.1
	}
	if cfg.GA.StagnationThreshold == 0 {
		cfg.GA.StagnationThreshold = 50
	}
	if cfg.GA.MutationFactor == 0 {
		cfg.GA.MutationFactor = 1.5
	}
	if cfg.GA.MaxMutationRate == 0 {
		cfg.GA.MaxMutationRate = 0.2
	}
	if cfg.Eval.Workers == 0 {
		cfg.Eval.Workers = 1
	}
	if cfg.Run.MaxGenerations == 0 {
		cfg.Run.MaxGenerations = 1000
	}
	if cfg.Logging.Dir == "" {
		cfg.Logging.Dir = "runs"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
}

// Validate checks the whole configuration
func (c *Config) Validate() error {
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		return fmt.Errorf("%w: grid %dx%d must be positive", ErrInvalid, c.Grid.Width, c.Grid.Height)
	}
	if c.Grid.Colors < 1 {
		return fmt.Errorf("%w: palette needs at least one color, got %d", ErrInvalid, c.Grid.Colors)
	}
	if c.Grid.Background < 0 || c.Grid.Background >= c.Grid.Colors {
		return fmt.Errorf("%w: background %d outside palette [0,%d)", ErrInvalid, c.Grid.Background, c.Grid.Colors)
	}
	if c.Eval.Workers < 0 {
		return fmt.Errorf("%w: eval workers %d is negative", ErrInvalid, c.Eval.Workers)
	}
	if c.Run.MaxGenerations < 0 || c.Run.TickMS < 0 {
		return fmt.Errorf("%w: run limits must not be negative", ErrInvalid)
	}
	return c.GA.Validate()
}

// Validate checks the genetic algorithm parameters
func (g GAConfig) Validate() error {
	if g.Population <= 0 {
		return fmt.Errorf("%w: population %d must be positive", ErrInvalid, g.Population)
	}
	if err := checkRate("mutation_rate", g.MutationRate); err != nil {
		return err
	}
	if err := checkRate("elitism_rate", g.ElitismRate); err != nil {
		return err
	}
	if err := checkRate("max_mutation_rate", g.MaxMutationRate); err != nil {
		return err
	}
	if g.MaxMutationRate < g.MutationRate {
		return fmt.Errorf("%w: max_mutation_rate %.3f below mutation_rate %.3f", ErrInvalid, g.MaxMutationRate, g.MutationRate)
	}
	if g.StagnationThreshold < 0 {
		return fmt.Errorf("%w: stagnation_threshold %d is negative", ErrInvalid, g.StagnationThreshold)
	}
	if g.MutationFactor < 1 {
		return fmt.Errorf("%w: mutation_factor %.3f must be at least 1", ErrInvalid, g.MutationFactor)
	}
	return nil
}

func checkRate(name string, v float64) error {
	if v < 0 || v > 1 {
		return fmt.Errorf("%w: %s %.3f outside [0,1]", ErrInvalid, name, v)
	}
	return nil
}

// TargetGrid returns the configured target, or an all-background canvas when none is set
func (c *Config) TargetGrid() (grid.Grid, error) {
	if len(c.Target) == 0 {
		return grid.Fill(c.Grid.Width, c.Grid.Height, c.Grid.Background), nil
	}
	g, err := grid.ParseRows(c.Target)
	if err != nil {
		return grid.Grid{}, fmt.Errorf("%w: target: %v", ErrInvalid, err)
	}
	if err := g.Check(c.Grid.Colors); err != nil {
		return grid.Grid{}, fmt.Errorf("%w: target: %v", ErrInvalid, err)
	}
	return g, nil
}
