package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/algoviz/internal/input"
	"github.com/san-kum/algoviz/internal/step"
)

const (
	DefaultAlgorithm = "bubble"
	DefaultSpeedMs   = 500
	DefaultTheme     = "default"
	DefaultLogLevel  = "info"
)

type Config struct {
	Algorithm string      `yaml:"algorithm"`
	SpeedMs   int         `yaml:"speed_ms"`
	Seed      int64       `yaml:"seed"`
	Values    []int       `yaml:"values,omitempty"`
	Sorted    bool        `yaml:"sorted,omitempty"`
	Target    *int        `yaml:"target,omitempty"`
	Source    int         `yaml:"source"`
	Swap      []int       `yaml:"swap,omitempty"`
	Graph     *step.Graph `yaml:"graph,omitempty"`
	Theme     string      `yaml:"theme"`
	LogLevel  string      `yaml:"log_level"`
}

func DefaultConfig() *Config {
	return &Config{
		Algorithm: DefaultAlgorithm,
		SpeedMs:   DefaultSpeedMs,
		Theme:     DefaultTheme,
		LogLevel:  DefaultLogLevel,
	}
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
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
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

func (c *Config) Validate() error {
	if c.SpeedMs < 0 {
		return fmt.Errorf("speed_ms must not be negative, got %d", c.SpeedMs)
	}
	if len(c.Swap) != 0 && len(c.Swap) != 2 {
		return fmt.Errorf("swap needs two indices, got %d", len(c.Swap))
	}
	if c.Graph != nil {
		if err := c.Graph.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Speed is the configured delay clamped to the range the speed control offers.
func (c *Config) Speed() time.Duration {
	return input.ClampSpeed(time.Duration(c.SpeedMs) * time.Millisecond)
}

func (c *Config) Params(defaults step.Params) step.Params {
	p := defaults
	if c.Target != nil {
		p = p.WithTarget(*c.Target)
	}
	if c.Source != 0 {
		p.Source = c.Source
	}
	if len(c.Swap) == 2 {
		p.Swap = [2]int{c.Swap[0], c.Swap[1]}
	}
	return p
}

// InputSource returns a source for the configured values or graph, falling
// back to def when the config supplies neither. Values that are set but
// empty stay empty, so the run is refused instead of drawing random data.
func (c *Config) InputSource(kind step.Kind, def input.Source) input.Source {
	switch {
	case kind == step.KindGraph && c.Graph != nil:
		return input.GraphSource{Graph: c.Graph}
	case kind == step.KindList && c.Values != nil:
		return input.NewListSource(c.Values)
	case kind == step.KindArray && c.Values != nil:
		return input.Fixed{Values: c.Values, Sorted: c.Sorted}
	}
	return def
}
