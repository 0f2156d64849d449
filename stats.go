package arc

// Stats is a point-in-time view of a [Cache].
type Stats struct {
	// Hits and Misses count [Cache.Get] results since construction or [Cache.Clear].
	Hits, Misses uint64
	// T1 and T2 are the resident recent and frequent page counts.
	// B1 and B2 are the ghost counts remembered for each.
	T1, T2, B1, B2 int
	// P is the adaptive target size of T1.
	P        int
	Capacity int
}

// Stats returns the current counters and list sizes.
func (c *Cache[_, _]) Stats() Stats {
	return Stats{
		Hits:     c.hits,
		Misses:   c.misses,
		T1:       c.t1.Len(),
		T2:       c.t2.Len(),
		B1:       c.b1.Len(),
		B2:       c.b2.Len(),
		P:        c.p,
		Capacity: c.capacity,
	}
}

// HitRatio returns Hits / (Hits + Misses), or 0 before any lookup.
func (s Stats) HitRatio() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}
