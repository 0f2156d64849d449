//go:build arc_debug

package arc

const debugging = true

func assert(cond bool, message string) {
	if !cond {
		panic(message)
	}
}

// checkInvariants walks the whole directory.
func (c *Cache[_, _]) checkInvariants() {
	assert(c.Len() <= c.capacity,
		"resident pages exceed capacity")
	assert(c.b1.Len() <= c.capacity && c.b2.Len() <= c.capacity,
		"ghost list exceeds capacity")
	assert(c.directoryLen() <= 2*c.capacity,
		"directory exceeds twice the capacity")
	assert(0 <= c.p && c.p <= c.capacity,
		"target outside of [0, capacity]")
	assert(c.directoryLen() == len(c.index),
		"index out of sync with lists")
	for owner := recent; owner <= frequentGhost; owner++ {
		for page := range c.list(owner).All() {
			assert(page.Owner == owner && c.index[page.Name] == page,
				"page not indexed under its owner")
		}
	}
}
