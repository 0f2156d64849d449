package sim

import (
	"fmt"

	"github.com/djdv/go-arc"
	"github.com/djdv/go-arc/lfu"
	"github.com/djdv/go-arc/lru"
	hcarc "github.com/hashicorp/golang-lru/arc/v2"
)

// Policy names accepted by [NewPolicy].
const (
	ARC          = "arc"
	LRU          = "lru"
	LFU          = "lfu"
	HashicorpARC = "hashicorp-arc"
)

type constError string

func (errStr constError) Error() string { return string(errStr) }

// ErrUnknownPolicy may be returned from [NewPolicy] and [Run].
const ErrUnknownPolicy = constError("unknown policy")

type (
	// Policy is the cache shape replayed by the simulator.
	Policy = arc.Policy[int, int]

	// hashicorpARC adapts the reference ARC implementation
	// to [arc.Policy], so both can be replayed side by side.
	hashicorpARC struct {
		*hcarc.ARCCache[int, int]
	}
)

func (hc hashicorpARC) Put(key, value int) { hc.Add(key, value) }
func (hc hashicorpARC) Clear()             { hc.Purge() }

// NewPolicy constructs the named policy with the given capacity.
func NewPolicy(name string, capacity int) (Policy, error) {
	var (
		policy Policy
		err    error
	)
	switch name {
	case ARC:
		policy, err = arc.New[int, int](capacity)
	case LRU:
		policy, err = lru.New[int, int](capacity)
	case LFU:
		policy, err = lfu.New[int, int](capacity)
	case HashicorpARC:
		var cache *hcarc.ARCCache[int, int]
		if cache, err = hcarc.NewARC[int, int](capacity); err == nil {
			policy = hashicorpARC{ARCCache: cache}
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
	}
	if err != nil {
		return nil, fmt.Errorf("construct %s: %w", name, err)
	}
	return policy, nil
}
