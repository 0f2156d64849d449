// Command arcsim replays synthetic access traces against
// ARC and its sibling policies and logs how their hit rates compare.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/djdv/go-arc/internal/config"
	"github.com/djdv/go-arc/internal/sim"
)

func main() {
	cfgPath := flag.String("config", "", "YAML config file (defaults compare every policy over every pattern)")
	capacity := flag.Int("capacity", 0, "override the configured cache capacity")
	pretty := flag.Bool("pretty", false, "human readable console output")
	flag.Parse()

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ERROR:", err)
		os.Exit(2)
	}
	if *capacity > 0 {
		cfg.Capacity = *capacity
	}
	if *pretty {
		cfg.Log.Pretty = true
	}
	if err = setupLogger(cfg.Log); err != nil {
		fmt.Fprintln(os.Stderr, "ERROR:", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, cfg); err != nil {
		log.Error().Err(err).Msg("simulation failed")
		stop()
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Simulation, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.LoadConfig(path)
}

func setupLogger(cfg *config.LogCfg) error {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	zerolog.SetGlobalLevel(level)
	if cfg.Pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	}
	return nil
}

func run(ctx context.Context, cfg *config.Simulation) error {
	start := time.Now()
	results, err := sim.Run(ctx, cfg)
	if err != nil {
		return err
	}
	for _, result := range results {
		event := log.Info().
			Str("pattern", string(result.Pattern)).
			Str("policy", result.Policy).
			Int("hits", result.Hits).
			Int("misses", result.Misses).
			Float64("hit_rate", result.HitRate()).
			Str("elapsed", result.Elapsed.String())
		if baseline, ok := sim.Baseline(results, result, sim.ARC); ok && result.Policy != sim.ARC {
			event = event.Float64("delta_vs_arc", result.HitRate()-baseline.HitRate())
		}
		event.Msg("replay finished")
	}
	summary := sim.Summarize(results, sim.ARC)
	log.Info().
		Int("capacity", cfg.Capacity).
		Int("patterns", summary.Patterns).
		Int("arc_wins", summary.Wins).
		Str("elapsed", time.Since(start).String()).
		Msg("simulation finished")
	return nil
}
