// Package roadmap: YAML plan scenarios.
package roadmap

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrBadPlanConfig indicates a plan scenario that is syntactically valid
// YAML but semantically incomplete (missing source or destination).
var ErrBadPlanConfig = errors.New("roadmap: invalid plan config")

// PlanConfig is a declarative trip scenario, typically loaded from a YAML
// file:
//
//	source: N0
//	destination: N4
//	avoid: [toll, hill]
//	traffic: true
type PlanConfig struct {
	Source      string   `yaml:"source"`
	Destination string   `yaml:"destination"`
	Avoid       []string `yaml:"avoid"`
	Traffic     bool     `yaml:"traffic"`
}

// ParsePlanConfig decodes a YAML scenario and validates that both endpoints
// are set.
func ParsePlanConfig(data []byte) (*PlanConfig, error) {
	var cfg PlanConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("roadmap: decode plan config: %w", err)
	}
	if cfg.Source == "" {
		return nil, fmt.Errorf("%w: source is required", ErrBadPlanConfig)
	}
	if cfg.Destination == "" {
		return nil, fmt.Errorf("%w: destination is required", ErrBadPlanConfig)
	}

	return &cfg, nil
}

// LoadPlanConfig reads path and delegates to ParsePlanConfig.
func LoadPlanConfig(path string) (*PlanConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("roadmap: open plan config: %w", err)
	}

	return ParsePlanConfig(data)
}

// Options converts the scenario into PlanOption values for Plan.
func (cfg *PlanConfig) Options() []PlanOption {
	opts := []PlanOption{}
	if len(cfg.Avoid) > 0 {
		opts = append(opts, Avoid(cfg.Avoid...))
	}
	if cfg.Traffic {
		opts = append(opts, WithTraffic())
	}

	return opts
}

// PlanScenario executes a declarative scenario against the road map.
func (rm *RoadMap) PlanScenario(cfg *PlanConfig) (*Route, error) {
	return rm.Plan(cfg.Source, cfg.Destination, cfg.Options()...)
}
