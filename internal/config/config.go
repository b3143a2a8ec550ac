package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/povarna/generative-ai-agents/aoc-rope/internal/solver"
	"gopkg.in/yaml.v3"
)

const (
	configPathEnv     = "ROPE_CONFIG_PATH"
	defaultConfigPath = "configs/rope.yaml"
)

// LoadConfig reads the YAML file named by ROPE_CONFIG_PATH. Without the variable it
// falls back to configs/rope.yaml, and to the built-in parts when that file is absent.
func LoadConfig() (*Config, error) {
	path := os.Getenv(configPathEnv)
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func Default() *Config {
	cfg := &Config{}
	for _, part := range solver.DefaultParts() {
		cfg.Parts = append(cfg.Parts, PartConfig{Name: part.Name, Knots: part.Knots})
	}
	return cfg
}

func applyDefaults(cfg *Config) {
	for i := range cfg.Parts {
		if cfg.Parts[i].Name == "" {
			cfg.Parts[i].Name = fmt.Sprintf("part%d", i+1)
		}
	}
}

func (c *Config) Validate() error {
	if len(c.Parts) == 0 {
		return errors.New("no parts configured")
	}

	seen := make(map[string]bool)
	for _, part := range c.Parts {
		if part.Knots < 2 {
			return fmt.Errorf("part %q: invalid knots %d, a rope needs at least 2", part.Name, part.Knots)
		}
		if seen[part.Name] {
			return fmt.Errorf("duplicate part name %q", part.Name)
		}
		seen[part.Name] = true
	}

	return nil
}

// SolverParts converts the configured parts into solver input
func (c *Config) SolverParts() []solver.Part {
	parts := make([]solver.Part, 0, len(c.Parts))
	for _, part := range c.Parts {
		parts = append(parts, solver.Part{Name: part.Name, Knots: part.Knots})
	}
	return parts
}
