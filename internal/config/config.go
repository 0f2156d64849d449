// Package config loads the simulator configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/djdv/go-arc/internal/workload"
)

const (
	DefaultCapacity = 512
	DefaultLength   = 1 << 16
	DefaultSeed     = 1
	DefaultHotRatio = 0.9
	DefaultSkew     = 1.2
	DefaultLevel    = "info"

	// Universe defaults to a multiple of the capacity,
	// so every policy is forced to replace.
	universeFactor = 4
)

// DefaultPolicies are compared when none are configured.
var DefaultPolicies = []string{"arc", "lru", "lfu", "hashicorp-arc"}

// Default returns a configuration comparing every policy
// over every workload pattern.
func Default() *Simulation {
	cfg := &Simulation{
		Workloads: []workload.Params{
			{Pattern: workload.Sequential},
			{Pattern: workload.Looping},
			{Pattern: workload.Zipf},
			{Pattern: workload.Uniform},
			{Pattern: workload.Locality},
			{Pattern: workload.Periodic},
		},
	}
	cfg.AdjustConfig()
	return cfg
}

// AdjustConfig fills unset fields with their defaults.
// A zero capacity is treated as unset.
func (cfg *Simulation) AdjustConfig() {
	if cfg.Capacity == 0 {
		cfg.Capacity = DefaultCapacity
	}
	if cfg.Length == 0 {
		cfg.Length = DefaultLength
	}
	if cfg.Seed == 0 {
		cfg.Seed = DefaultSeed
	}
	if len(cfg.Policies) == 0 {
		cfg.Policies = append([]string(nil), DefaultPolicies...)
	}
	if !cfg.Log.Enabled() {
		cfg.Log = &LogCfg{}
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLevel
	}

	for i := range cfg.Workloads {
		params := &cfg.Workloads[i]
		if params.Length == 0 {
			params.Length = cfg.Length
		}
		if params.Seed == 0 {
			params.Seed = cfg.Seed
		}
		switch params.Pattern {
		case workload.Looping, workload.Locality:
			if params.HotRatio == 0 {
				params.HotRatio = DefaultHotRatio
			}
		case workload.Zipf:
			if params.Skew == 0 {
				params.Skew = DefaultSkew
			}
		}
	}
}

// Validate reports configuration that cannot be simulated.
// Workload parameters are checked when their traces are generated.
func (cfg *Simulation) Validate() error {
	if cfg.Capacity < 0 {
		return fmt.Errorf("capacity must be >=0 but %d was configured", cfg.Capacity)
	}
	if len(cfg.Workloads) == 0 {
		return errors.New("no workloads configured")
	}
	return nil
}

// Traces returns the workload parameters with capacity relative
// fields resolved against the current capacity.
func (cfg *Simulation) Traces() []workload.Params {
	traces := make([]workload.Params, len(cfg.Workloads))
	for i, params := range cfg.Workloads {
		if params.Universe == 0 {
			params.Universe = max(1, cfg.Capacity*universeFactor)
		}
		if params.HotSet == 0 {
			params.HotSet = max(1, cfg.Capacity)
		}
		traces[i] = params
	}
	return traces
}

func LoadConfig(path string) (*Simulation, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("stat config path: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config yaml file %s: %w", path, err)
	}

	var cfg *Simulation
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal yaml from %s: %w", path, err)
	}
	if cfg == nil {
		return nil, fmt.Errorf("config file %s is empty", path)
	}
	cfg.AdjustConfig()
	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config %s: %w", path, err)
	}

	return cfg, nil
}
