package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EngineConfig holds the tunables a deployment wants to fix without
// recompiling; the safezone engine itself never reads this file or any
// other disk state.
type EngineConfig struct {
	Arena struct {
		Kind      string  `yaml:"kind"` // "circle" or "rect"
		CenterX   float64 `yaml:"center_x"`
		CenterZ   float64 `yaml:"center_z"`
		Radius    float64 `yaml:"radius"`
		DirX      float64 `yaml:"dir_x"`
		DirZ      float64 `yaml:"dir_z"`
		HalfWidth float64 `yaml:"half_width"`
		HalfLen   float64 `yaml:"half_len"`
	} `yaml:"arena"`

	Query struct {
		DefaultSampleCount   int     `yaml:"default_sample_count"`
		PoissonRejectLimit   int     `yaml:"poisson_reject_limit"`
		DefaultMinDistance   float64 `yaml:"default_min_distance"`
	} `yaml:"query"`

	Contour struct {
		DefaultStep   float64 `yaml:"default_step"`
		DefaultRadius float64 `yaml:"default_radius"`
	} `yaml:"contour"`

	DutyReset struct {
		Broker string `yaml:"broker"`
		Topic  string `yaml:"topic"`
	} `yaml:"duty_reset"`
}

// LoadEngineConfig reads and validates a YAML engine config from path.
func LoadEngineConfig(path string) (*EngineConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg EngineConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	if cfg.Arena.Kind != "" && cfg.Arena.Kind != "circle" && cfg.Arena.Kind != "rect" {
		return nil, fmt.Errorf("arena.kind must be \"circle\" or \"rect\", got %q", cfg.Arena.Kind)
	}

	return &cfg, nil
}

// DefaultEngineConfig returns reasonable defaults for running against an
// unset config file.
func DefaultEngineConfig() *EngineConfig {
	cfg := &EngineConfig{}
	cfg.Arena.Kind = "circle"
	cfg.Arena.Radius = 50
	cfg.Query.DefaultSampleCount = 8
	cfg.Query.PoissonRejectLimit = 30
	cfg.Query.DefaultMinDistance = 2
	cfg.Contour.DefaultStep = 1
	cfg.Contour.DefaultRadius = 50
	return cfg
}
