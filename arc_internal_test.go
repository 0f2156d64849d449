package arc

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

// directory lists every key by owner, front to back.
type directory[Key comparable] struct {
	T1, T2, B1, B2 []Key
	P              int
}

func (c *Cache[Key, Value]) snapshot() directory[Key] {
	keys := func(s *set[Key, Value]) []Key {
		var keys []Key
		for page := range s.All() {
			keys = append(keys, page.Name)
		}
		return keys
	}
	return directory[Key]{
		T1: keys(&c.t1),
		T2: keys(&c.t2),
		B1: keys(&c.b1),
		B2: keys(&c.b2),
		P:  c.p,
	}
}

func requireDirectory[Key comparable, Value any](t *testing.T, c *Cache[Key, Value], want directory[Key], msg string) {
	t.Helper()
	require.Equal(t, want, c.snapshot(), msg)
	requireInvariants(t, c)
}

func requireInvariants[Key comparable, Value any](t *testing.T, c *Cache[Key, Value]) {
	t.Helper()
	require.LessOrEqual(t, c.Len(), c.capacity, "resident pages exceed capacity")
	require.LessOrEqual(t, c.b1.Len(), c.capacity, "B1 exceeds capacity")
	require.LessOrEqual(t, c.b2.Len(), c.capacity, "B2 exceeds capacity")
	require.LessOrEqual(t, c.directoryLen(), 2*c.capacity, "directory exceeds twice the capacity")
	require.GreaterOrEqual(t, c.p, 0, "target below zero")
	require.LessOrEqual(t, c.p, c.capacity, "target above capacity")
	require.Len(t, c.index, c.directoryLen(), "index out of sync with lists")
	seen := make(map[Key]int, len(c.index))
	for owner := recent; owner <= frequentGhost; owner++ {
		for page := range c.list(owner).All() {
			require.Equal(t, owner, page.Owner, "page owner tag is stale")
			require.Same(t, page, c.index[page.Name], "index points elsewhere")
			require.NotContains(t, seen, page.Name, "key is in more than one list")
			seen[page.Name] = owner
			if owner == recentGhost || owner == frequentGhost {
				require.Zero(t, page.Value, "ghost page carries a value")
			}
		}
	}
}

func TestPromotion(t *testing.T) {
	c, err := New[int, string](3)
	require.NoError(t, err)
	c.Put(1, "one")
	requireDirectory(t, c, directory[int]{T1: []int{1}}, "fresh key is recent")
	_, ok := c.Get(1)
	require.True(t, ok)
	requireDirectory(t, c, directory[int]{T2: []int{1}}, "second touch promotes")
	c.Put(2, "two")
	c.Get(2)
	requireDirectory(t, c, directory[int]{T2: []int{2, 1}}, "promoted to the front")
	c.Get(1)
	requireDirectory(t, c, directory[int]{T2: []int{1, 2}}, "third touch keeps it frequent at the front")
	c.Put(3, "three")
	c.Put(3, "THREE")
	requireDirectory(t, c, directory[int]{T2: []int{3, 1, 2}}, "resident update promotes")
	got, _ := c.Peek(3)
	require.Equal(t, "THREE", got)
}

func TestFrequentEviction(t *testing.T) {
	c, err := New[int, string](3)
	require.NoError(t, err)
	for key, value := range []string{"zero", "one", "two", "three"} {
		if key == 0 {
			continue
		}
		c.Put(key, value)
	}
	for key := 1; key <= 3; key++ {
		c.Get(key)
	}
	requireDirectory(t, c, directory[int]{T2: []int{3, 2, 1}}, "all pages promoted")
	c.Put(4, "four")
	requireDirectory(t, c, directory[int]{
		T1: []int{4},
		T2: []int{3, 2},
		B2: []int{1},
	}, "frequent tail demoted to B2")
	_, ok := c.Get(1)
	require.False(t, ok)
}

func TestRecentGhostHit(t *testing.T) {
	c, err := New[int, string](2)
	require.NoError(t, err)
	c.Put(1, "v")
	c.Put(2, "v")
	c.Put(3, "v")
	requireDirectory(t, c, directory[int]{
		T1: []int{3, 2},
		B1: []int{1},
	}, "recent tail demoted to B1")
	c.Put(1, "v2")
	requireDirectory(t, c, directory[int]{
		T1: []int{3},
		T2: []int{1},
		B1: []int{2},
		P:  1,
	}, "B1 hit grows p and readmits into T2")
	got, ok := c.Get(1)
	require.True(t, ok)
	require.Equal(t, "v2", got)
}

func TestFrequentGhostHit(t *testing.T) {
	c, err := New[int, int](2)
	require.NoError(t, err)
	c.Put(1, 1)
	c.Get(1)
	c.Put(2, 2)
	c.Get(2)
	c.Put(3, 3)
	c.Put(4, 4)
	c.Put(3, 3)
	requireDirectory(t, c, directory[int]{
		T1: []int{4},
		T2: []int{3},
		B2: []int{2, 1},
		P:  1,
	}, "setup")
	c.Put(1, 1)
	requireDirectory(t, c, directory[int]{
		T2: []int{1, 3},
		B1: []int{4},
		B2: []int{2},
	}, "B2 hit shrinks p and readmits into T2")
}

func TestFrequentGhostTieBreak(t *testing.T) {
	c, err := New[int, int](3)
	require.NoError(t, err)
	c.Put(1, 1)
	c.Get(1)
	c.Put(2, 2)
	c.Get(2)
	c.Put(3, 3)
	c.Put(4, 4)
	c.p = 1
	c.Put(5, 5)
	c.p = 3
	requireDirectory(t, c, directory[int]{
		T1: []int{5, 4},
		T2: []int{2},
		B1: []int{3},
		B2: []int{1},
		P:  3,
	}, "setup")
	// The B2 hit lowers p to |T1|, so T1 yields instead of T2.
	c.Put(1, 1)
	requireDirectory(t, c, directory[int]{
		T1: []int{5},
		T2: []int{1, 2},
		B1: []int{4, 3},
		P:  2,
	}, "T1 evicted at the boundary")
}

func TestCapacityOne(t *testing.T) {
	c, err := New[int, int](1)
	require.NoError(t, err)
	c.Put(1, 1)
	c.Put(2, 2)
	requireDirectory(t, c, directory[int]{T1: []int{2}, B1: []int{1}}, "recent replaced")
	c.Put(1, 1)
	requireDirectory(t, c, directory[int]{T2: []int{1}, B1: []int{2}, P: 1}, "ghost readmitted")
}

func TestInvariantsUnderRandomLoad(t *testing.T) {
	for _, capacity := range []int{1, 2, 3, 8, 32} {
		var (
			rng      = rand.New(rand.NewSource(int64(capacity)))
			universe = capacity * 4
		)
		c, err := New[int, int](capacity)
		require.NoError(t, err)
		for range 20_000 {
			key := rng.Intn(universe)
			if rng.Intn(3) == 0 {
				c.Get(key)
				requireInvariants(t, c)
				continue
			}
			var (
				before   = c.p
				owner    int
				page, ok = c.index[key]
			)
			if ok {
				owner = page.Owner
			}
			c.Put(key, key+1)
			switch owner {
			case recentGhost:
				require.GreaterOrEqual(t, c.p, before, "B1 hit decreased p")
			case frequentGhost:
				require.LessOrEqual(t, c.p, before, "B2 hit increased p")
			}
			got, hit := c.Peek(key)
			require.True(t, hit, "put key must be resident")
			require.Equal(t, key+1, got)
			requireInvariants(t, c)
		}
		if capacity > 4 {
			stats := c.Stats()
			require.Equal(t, capacity, stats.T1+stats.T2)
		}
		c.Clear()
		require.Equal(t, directory[int]{}, c.snapshot())
		require.Empty(t, c.index)
		require.Empty(t, slices.Collect(c.Keys()))
	}
}
