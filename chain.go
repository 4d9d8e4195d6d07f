package chash

// entry is a single key/value pair stored in a chain
type entry struct {
	key   int
	value int
}

// chain holds the entries of one bucket in insertion order
type chain []entry

// find returns the position of the first entry with the given key, or -1
func (c chain) find(key int) int {
	for i := range c {
		if c[i].key == key {
			return i
		}
	}
	return -1
}

// remove splices out the entry at position i, keeping the order of the rest
func (c chain) remove(i int) chain {
	copy(c[i:], c[i+1:])
	c[len(c)-1] = entry{}
	return c[:len(c)-1]
}

// release zeroes every entry so the backing array holds nothing live
func (c chain) release() {
	for i := range c {
		c[i] = entry{}
	}
}
