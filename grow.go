package chash

import "github.com/sirupsen/logrus"

// overloaded reports whether count entries over capacity buckets is past
// the growth threshold
func (t *Table) overloaded(count, capacity int) bool {
	return float64(count)/float64(capacity) > t.loadFactor
}

func (t *Table) canGrow() bool {
	return len(t.buckets) <= t.maxCapacity-len(t.buckets)
}

// rehash doubles the bucket array and moves every entry into it.
// Entries are placed directly, so the growth check never runs mid-rehash
// and one call grows the table exactly once.
func (t *Table) rehash() {
	oldBuckets := t.buckets
	oldCapacity := len(oldBuckets)
	newCapacity := oldCapacity * 2

	t.log.WithFields(logrus.Fields{
		"old_capacity": oldCapacity,
		"new_capacity": newCapacity,
		"count":        t.count,
		"load_factor":  t.currentLoad(),
	}).Debug("rehash triggered")

	buckets := make([]chain, newCapacity)
	moved := 0
	for i := range oldBuckets {
		for _, e := range oldBuckets[i] {
			t.place(buckets, e.key, e.value)
			moved++
		}
		oldBuckets[i].release()
		oldBuckets[i] = nil
	}

	t.buckets = buckets
	t.count = moved
	t.rehashes++

	t.log.WithFields(logrus.Fields{
		"capacity": newCapacity,
		"count":    t.count,
		"rehashes": t.rehashes,
	}).Debug("rehash complete")
}
