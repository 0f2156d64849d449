// Package workload generates reproducible key access traces
// for replaying against cache policies.
package workload

import (
	"encoding/binary"
	"fmt"
	"math/rand"

	"github.com/zeebo/xxh3"
)

// Pattern names an access distribution.
type Pattern string

const (
	// Sequential scans the key space in order, wrapping around.
	Sequential Pattern = "sequential"
	// Looping draws from a hot set with probability HotRatio,
	// otherwise from the remaining (cold) keys.
	Looping Pattern = "looping"
	// Zipf draws keys with a Zipfian skew; low keys dominate.
	Zipf Pattern = "zipf"
	// Uniform draws every key with equal probability.
	Uniform Pattern = "uniform"
	// Locality draws from a random window of HotSet keys
	// with probability HotRatio, otherwise from the whole key space.
	Locality Pattern = "locality"
	// Periodic repeats a random sequence of HotSet keys.
	Periodic Pattern = "periodic"
)

type constError string

func (errStr constError) Error() string { return string(errStr) }

const (
	// ErrUnknownPattern is returned by [Generate] for unsupported patterns.
	ErrUnknownPattern = constError("unknown pattern")
	// ErrInvalidParams is returned by [Generate] for out of range parameters.
	ErrInvalidParams = constError("invalid workload parameters")
)

// Params describes one trace.
type Params struct {
	Pattern Pattern `yaml:"pattern"`
	// Length is the number of accesses.
	Length int `yaml:"length"`
	// Universe is the number of distinct keys, [0, Universe).
	Universe int `yaml:"universe"`
	// Seed makes the trace reproducible.
	Seed int64 `yaml:"seed"`
	// HotSet is the hot set size (looping), window size (locality)
	// or period (periodic).
	HotSet int `yaml:"hot_set"`
	// HotRatio is the probability of drawing from the hot set or window.
	HotRatio float64 `yaml:"hot_ratio"`
	// Skew is the Zipf exponent, must be > 1.
	Skew float64 `yaml:"skew"`
}

// Generate returns the trace described by params.
func Generate(params Params) ([]int, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}
	var (
		trace = make([]int, params.Length)
		rng   = rand.New(rand.NewSource(params.Seed))
	)
	switch params.Pattern {
	case Sequential:
		for i := range trace {
			trace[i] = i % params.Universe
		}
	case Looping:
		var (
			hotSize  = max(1, min(params.HotSet, params.Universe))
			coldSize = max(1, params.Universe-hotSize)
		)
		for i := range trace {
			if rng.Float64() < params.HotRatio {
				trace[i] = rng.Intn(hotSize)
			} else {
				trace[i] = hotSize + rng.Intn(coldSize)
			}
		}
	case Zipf:
		const bias = 1.0
		var (
			imax = uint64(max(params.Universe, 2) - 1)
			zipf = rand.NewZipf(rng, params.Skew, bias, imax)
		)
		for i := range trace {
			trace[i] = int(zipf.Uint64())
		}
	case Uniform:
		for i := range trace {
			trace[i] = rng.Intn(params.Universe)
		}
	case Locality:
		window := max(1, min(params.HotSet, params.Universe))
		for i := range trace {
			if rng.Float64() < params.HotRatio {
				base := rng.Intn(params.Universe - window + 1)
				trace[i] = base + rng.Intn(window)
			} else {
				trace[i] = rng.Intn(params.Universe)
			}
		}
	case Periodic:
		period := make([]int, max(1, params.HotSet))
		for i := range period {
			period[i] = rng.Intn(params.Universe)
		}
		for i := range trace {
			trace[i] = period[i%len(period)]
		}
	}
	return trace, nil
}

func (params Params) validate() error {
	switch params.Pattern {
	case Sequential, Looping, Zipf, Uniform, Locality, Periodic:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownPattern, params.Pattern)
	}
	switch {
	case params.Length < 0:
		return fmt.Errorf("%w: length %d is negative", ErrInvalidParams, params.Length)
	case params.Universe < 1:
		return fmt.Errorf("%w: universe must be >=1 but %d was requested",
			ErrInvalidParams, params.Universe)
	case params.HotRatio < 0 || params.HotRatio > 1:
		return fmt.Errorf("%w: hot ratio %g is outside of [0, 1]",
			ErrInvalidParams, params.HotRatio)
	case params.Pattern == Zipf && params.Skew <= 1:
		return fmt.Errorf("%w: zipf skew must be >1 but %g was requested",
			ErrInvalidParams, params.Skew)
	}
	return nil
}

// Digest fingerprints a trace so runs over
// the same accesses can be matched up.
func Digest(trace []int) uint64 {
	var (
		hasher = xxh3.New()
		buf    [8]byte
	)
	for _, key := range trace {
		binary.LittleEndian.PutUint64(buf[:], uint64(key))
		_, _ = hasher.Write(buf[:])
	}
	return hasher.Sum64()
}
