// Package sim replays access traces against replacement
// policies and compares their hit rates.
package sim

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/djdv/go-arc/internal/config"
	"github.com/djdv/go-arc/internal/workload"
)

type (
	// Result is the outcome of replaying one trace against one policy.
	Result struct {
		Policy  string
		Pattern workload.Pattern
		// Digest identifies the trace that was replayed.
		Digest       uint64
		Hits, Misses int
		Elapsed      time.Duration
	}
	// Summary counts the patterns on which the
	// baseline policy had the highest hit rate.
	Summary struct {
		Baseline string
		Patterns int
		// Wins includes ties.
		Wins int
	}
)

// HitRate returns the fraction of accesses that hit, in [0, 1].
func (r Result) HitRate() float64 {
	total := r.Hits + r.Misses
	if total == 0 {
		return 0
	}
	return float64(r.Hits) / float64(total)
}

// Replay performs a get for every key of trace, putting the key
// on a miss, and reports the hits and misses observed.
func Replay(policy Policy, trace []int) Result {
	var (
		result Result
		start  = time.Now()
	)
	for _, key := range trace {
		if _, ok := policy.Get(key); ok {
			result.Hits++
			continue
		}
		result.Misses++
		policy.Put(key, key)
	}
	result.Elapsed = time.Since(start)
	return result
}

// Run replays every configured workload against every configured policy.
// Results are ordered by workload, then by policy.
// Cancellation is observed between replays.
func Run(ctx context.Context, cfg *config.Simulation) ([]Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	// Reject unknown names before spending time on any trace.
	for _, name := range cfg.Policies {
		if _, err := NewPolicy(name, cfg.Capacity); err != nil {
			return nil, err
		}
	}
	traces := cfg.Traces()
	results := make([]Result, 0, len(traces)*len(cfg.Policies))
	for _, params := range traces {
		trace, err := workload.Generate(params)
		if err != nil {
			return results, fmt.Errorf("generate %s trace: %w", params.Pattern, err)
		}
		digest := workload.Digest(trace)
		log.Debug().
			Str("pattern", string(params.Pattern)).
			Int("length", len(trace)).
			Int("universe", params.Universe).
			Str("digest", fmt.Sprintf("%016x", digest)).
			Msg("trace generated")
		for _, name := range cfg.Policies {
			if err := ctx.Err(); err != nil {
				return results, err
			}
			policy, err := NewPolicy(name, cfg.Capacity)
			if err != nil {
				return results, err
			}
			result := Replay(policy, trace)
			result.Policy = name
			result.Pattern = params.Pattern
			result.Digest = digest
			results = append(results, result)
		}
	}
	return results, nil
}

// Baseline returns the result of the named policy
// for the same trace as result.
func Baseline(results []Result, result Result, policy string) (Result, bool) {
	for _, candidate := range results {
		if candidate.Policy == policy &&
			candidate.Pattern == result.Pattern &&
			candidate.Digest == result.Digest {
			return candidate, true
		}
	}
	return Result{}, false
}

// Summarize compares the baseline policy against
// every other policy replayed over the same trace.
func Summarize(results []Result, baseline string) Summary {
	summary := Summary{Baseline: baseline}
	for _, result := range results {
		if result.Policy != baseline {
			continue
		}
		summary.Patterns++
		won := true
		for _, rival := range results {
			if rival.Digest == result.Digest &&
				rival.Pattern == result.Pattern &&
				rival.HitRate() > result.HitRate() {
				won = false
				break
			}
		}
		if won {
			summary.Wins++
		}
	}
	return summary
}
