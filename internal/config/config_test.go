package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/djdv/go-arc/internal/workload"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "arcsim.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
capacity: 64
seed: 9
policies: [arc, lru]
log:
  level: debug
  pretty: true
workloads:
  - pattern: zipf
  - pattern: looping
    hot_ratio: 0.5
    length: 100
  - pattern: uniform
    universe: 10
    seed: 3
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 64, cfg.Capacity)
	require.Equal(t, []string{"arc", "lru"}, cfg.Policies)
	require.Equal(t, &LogCfg{Level: "debug", Pretty: true}, cfg.Log)

	require.Equal(t, []workload.Params{
		{
			Pattern:  workload.Zipf,
			Length:   DefaultLength,
			Universe: 64 * universeFactor,
			Seed:     9,
			HotSet:   64,
			Skew:     DefaultSkew,
		},
		{
			Pattern:  workload.Looping,
			Length:   100,
			Universe: 64 * universeFactor,
			Seed:     9,
			HotSet:   64,
			HotRatio: 0.5,
		},
		{
			Pattern:  workload.Uniform,
			Length:   DefaultLength,
			Universe: 10,
			Seed:     3,
			HotSet:   64,
		},
	}, cfg.Traces())
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "workloads:\n  - pattern: sequential\n"))
	require.NoError(t, err)
	require.Equal(t, DefaultCapacity, cfg.Capacity)
	require.Equal(t, DefaultPolicies, cfg.Policies)
	require.True(t, cfg.Log.Enabled())
	require.Equal(t, DefaultLevel, cfg.Log.Level)
	require.False(t, cfg.Log.Pretty)
}

func TestLoadConfig_CapacityOverride(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "capacity: 8\nworkloads:\n  - pattern: periodic\n"))
	require.NoError(t, err)
	cfg.Capacity = 32
	traces := cfg.Traces()
	require.Len(t, traces, 1)
	require.Equal(t, 32*universeFactor, traces[0].Universe)
	require.Equal(t, 32, traces[0].HotSet)
}

func TestLoadConfig_Errors(t *testing.T) {
	for _, test := range []struct {
		name, body string
	}{
		{"empty", ""},
		{"malformed", "capacity: [1, 2"},
		{"negative capacity", "capacity: -1\nworkloads:\n  - pattern: zipf\n"},
		{"no workloads", "capacity: 16\n"},
	} {
		t.Run(test.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, test.body))
			require.Error(t, err)
		})
	}
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	for _, params := range cfg.Traces() {
		_, err := workload.Generate(params)
		require.NoError(t, err, params.Pattern)
	}
}
