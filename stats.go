package chash

// Stats is a snapshot of the table's shape
type Stats struct {
	Count        int
	Capacity     int
	LoadFactor   float64
	LongestChain int
	EmptyBuckets int
	Rehashes     int
}

// Stats walks every bucket and reports occupancy figures
func (t *Table) Stats() Stats {
	t.mu.RLock()
	defer t.mu.RUnlock()

	s := Stats{
		Count:      t.count,
		Capacity:   len(t.buckets),
		LoadFactor: t.currentLoad(),
		Rehashes:   t.rehashes,
	}
	for _, c := range t.buckets {
		if len(c) == 0 {
			s.EmptyBuckets++
		}
		if len(c) > s.LongestChain {
			s.LongestChain = len(c)
		}
	}
	return s
}
