package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultRows       = 1000
	DefaultCols       = 1000
	DefaultIterations = 2000
	DefaultTolerance  = 0.1
	DefaultOutDir     = ".isowave"
)

// Config describes one benchmark run: grid shape, time steps, validation
// tolerance and output location. Workers selects the parallel driver's
// goroutine count; 0 means one per CPU.
type Config struct {
	Rows       int     `yaml:"rows"`
	Cols       int     `yaml:"cols"`
	Iterations int     `yaml:"iterations"`
	Tolerance  float64 `yaml:"tolerance"`
	Workers    int     `yaml:"workers"`
	OutDir     string  `yaml:"out_dir"`
}

func DefaultConfig() *Config {
	return &Config{
		Rows:       DefaultRows,
		Cols:       DefaultCols,
		Iterations: DefaultIterations,
		Tolerance:  DefaultTolerance,
		OutDir:     DefaultOutDir,
	}
}

// Validate checks the parts of the config the solver depends on.
func (c *Config) Validate() error {
	if c.Rows < 3 || c.Cols < 3 {
		return fmt.Errorf("grid must be at least 3x3, got %dx%d", c.Rows, c.Cols)
	}
	if c.Iterations < 0 {
		return fmt.Errorf("iterations must be non-negative, got %d", c.Iterations)
	}
	if c.Tolerance <= 0 {
		return fmt.Errorf("tolerance must be positive, got %f", c.Tolerance)
	}
	return nil
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
