package config

import "github.com/djdv/go-arc/internal/workload"

// Simulation groups configuration of a policy comparison run.
// Workload fields left at zero inherit the top-level defaults.
type Simulation struct {
	// Capacity is the number of resident entries every policy may hold.
	Capacity int `yaml:"capacity"`

	// Seed is the default seed of every workload.
	Seed int64 `yaml:"seed"`

	// Length is the default number of accesses of every workload.
	Length int `yaml:"length"`

	// Policies lists the replacement policies to compare.
	// Supported values: "arc", "lru", "lfu", "hashicorp-arc".
	// If empty, every supported policy runs.
	Policies []string `yaml:"policies"`

	// Workloads lists the traces replayed against each policy.
	Workloads []workload.Params `yaml:"workloads"`

	// Log configures the simulator's output.
	// If nil, informational JSON logs are written to stderr.
	Log *LogCfg `yaml:"log"`
}

type LogCfg struct {
	// Level is a zerolog level name ("debug", "info", "warn", ...).
	Level string `yaml:"level"`

	// Pretty selects human readable console output instead of JSON.
	Pretty bool `yaml:"pretty"`
}

func (cfg *LogCfg) Enabled() bool {
	return cfg != nil
}
