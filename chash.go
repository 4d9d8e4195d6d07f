package chash

import (
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	// ErrInvalidCapacity is returned when a table is created with fewer than one bucket
	ErrInvalidCapacity = errors.New("capacity must be at least 1")

	// ErrCapacityExceeded is returned when the bucket array would outgrow its maximum
	ErrCapacityExceeded = errors.New("capacity limit exceeded")

	// ErrInvalidOption is returned by New when an Option is rejected
	ErrInvalidOption = errors.New("invalid option")

	// ErrClosed is returned by operations on a closed table
	ErrClosed = errors.New("table is closed")
)

// Table is a hash table of int keys to int values using separate chaining.
// It doubles its bucket array whenever the load factor passes the configured
// threshold. A single RWMutex guards the whole table.
type Table struct {
	mu          sync.RWMutex
	buckets     []chain
	count       int
	hasher      Hasher
	log         logrus.FieldLogger
	loadFactor  float64
	maxCapacity int
	rehashes    int
	closed      bool
}

// New creates a table with initialCapacity empty buckets
func New(initialCapacity int, opts ...Option) (*Table, error) {
	if initialCapacity < 1 {
		return nil, fmt.Errorf("new table with capacity %d: %w", initialCapacity, ErrInvalidCapacity)
	}

	t := &Table{
		hasher:      ModuloHasher{},
		log:         logrus.StandardLogger(),
		loadFactor:  DefaultLoadFactor,
		maxCapacity: DefaultMaxCapacity,
	}
	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if initialCapacity > t.maxCapacity {
		return nil, fmt.Errorf("new table with capacity %d above max %d: %w",
			initialCapacity, t.maxCapacity, ErrCapacityExceeded)
	}

	t.buckets = make([]chain, initialCapacity)
	return t, nil
}

// Close releases every entry and the bucket array
func (t *Table) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return ErrClosed
	}

	for i := range t.buckets {
		t.buckets[i].release()
		t.buckets[i] = nil
	}
	t.log.WithFields(logrus.Fields{
		"capacity": len(t.buckets),
		"count":    t.count,
	}).Debug("table closed")

	t.buckets = nil
	t.count = 0
	t.closed = true
	return nil
}

// Insert appends key/value to the tail of the key's chain. Existing entries
// with the same key are left alone, so Search keeps returning the older one.
// The table may grow before Insert returns.
func (t *Table) Insert(key, value int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return ErrClosed
	}
	return t.insert(key, value)
}

// Put updates the first entry with key in place, or inserts it when absent
func (t *Table) Put(key, value int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return ErrClosed
	}

	idx := t.hasher.Index(key, len(t.buckets))
	if i := t.buckets[idx].find(key); i >= 0 {
		t.buckets[idx][i].value = value
		return nil
	}
	return t.insert(key, value)
}

// insert must be called with the write lock held
func (t *Table) insert(key, value int) error {
	capacity := len(t.buckets)
	if t.overloaded(t.count+1, capacity) && !t.canGrow() {
		return fmt.Errorf("insert key %d at capacity %d: %w", key, capacity, ErrCapacityExceeded)
	}

	t.place(t.buckets, key, value)
	t.count++

	if t.overloaded(t.count, capacity) {
		t.rehash()
	}
	return nil
}

// place appends an entry to its chain in buckets without any growth check
func (t *Table) place(buckets []chain, key, value int) {
	idx := t.hasher.Index(key, len(buckets))
	buckets[idx] = append(buckets[idx], entry{key: key, value: value})
}

// Search returns the value of the first entry with key
func (t *Table) Search(key int) (int, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.closed {
		return 0, false
	}

	c := t.buckets[t.hasher.Index(key, len(t.buckets))]
	if i := c.find(key); i >= 0 {
		return c[i].value, true
	}
	return 0, false
}

// Delete removes the first entry with key. It reports whether anything was
// removed; later duplicates of key stay in the table.
func (t *Table) Delete(key int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return false
	}

	idx := t.hasher.Index(key, len(t.buckets))
	i := t.buckets[idx].find(key)
	if i < 0 {
		return false
	}
	t.buckets[idx] = t.buckets[idx].remove(i)
	t.count--
	return true
}

// Len returns the number of live entries
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.count
}

// Capacity returns the current number of buckets
func (t *Table) Capacity() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.buckets)
}

// LoadFactor returns entries per bucket
func (t *Table) LoadFactor() float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.currentLoad()
}

func (t *Table) currentLoad() float64 {
	if len(t.buckets) == 0 {
		return 0
	}
	return float64(t.count) / float64(len(t.buckets))
}
