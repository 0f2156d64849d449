package arc

// increaseTarget grows the recent target after a hit in B1.
// The step is larger when B2 outweighs B1.
func (c *Cache[_, _]) increaseTarget() {
	delta := max(
		c.b2.Len()/c.b1.Len(),
		1,
	)
	c.adjustTarget(delta)
}

// decreaseTarget shrinks the recent target after a hit in B2.
// The step is larger when B1 outweighs B2.
func (c *Cache[_, _]) decreaseTarget() {
	delta := -max(
		c.b1.Len()/c.b2.Len(),
		1,
	)
	c.adjustTarget(delta)
}

func (c *Cache[_, _]) adjustTarget(delta int) {
	c.p = min(max(c.p+delta, 0), c.capacity)
}

// replace demotes one resident page to its ghost list.
// fromB2 reports whether the access that triggered
// the replacement hit in B2.
func (c *Cache[_, _]) replace(fromB2 bool) {
	if debugging {
		assert(c.Len() > 0, "replacing in an empty cache")
	}
	t1Len := c.t1.Len()
	if t1Len > 0 &&
		(t1Len > c.p ||
			(fromB2 && t1Len == c.p) ||
			c.t2.Len() == 0) {
		c.demote(c.t1.Back(), recentGhost)
	} else {
		c.demote(c.t2.Back(), frequentGhost)
	}
}

// demote evicts a resident page's value and keeps its key
// at the front of a ghost list.
// The oldest ghost is forgotten if the list outgrows the capacity.
func (c *Cache[Key, Value]) demote(page *page[Key, Value], ghost int) {
	var (
		zero  Value
		key   = page.Name
		value = page.Value
	)
	page.Value = zero
	c.move(page, ghost)
	if ghosts := c.list(ghost); ghosts.Len() > c.capacity {
		c.unlink(ghosts.Back())
	}
	if c.onEvict != nil {
		c.onEvict(key, value)
	}
}

// pruneGhosts forgets the oldest ghost of the list that is not in favor.
// B1 yields while the recent side of the directory is full,
// otherwise B2 yields.
func (c *Cache[_, _]) pruneGhosts() {
	ghosts := &c.b2
	if c.b1.Len() > 0 &&
		(c.t1.Len()+c.b1.Len() >= c.capacity || c.b2.Len() == 0) {
		ghosts = &c.b1
	}
	if page := ghosts.Back(); page != nil {
		c.unlink(page)
	}
}
