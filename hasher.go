package chash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Hasher maps a key to a bucket index in [0, capacity).
// capacity is always at least 1.
type Hasher interface {
	Index(key, capacity int) int
}

// ModuloHasher places keys by key mod capacity. Negative keys are
// normalized so the index is never negative.
type ModuloHasher struct{}

// Index implements Hasher
func (ModuloHasher) Index(key, capacity int) int {
	idx := key % capacity
	if idx < 0 {
		idx += capacity
	}
	return idx
}

// XXHasher spreads keys with xxhash before reducing them modulo capacity.
// Useful when keys share a stride with the capacity and plain modulo
// piles them into a few chains.
type XXHasher struct{}

// Index implements Hasher
func (XXHasher) Index(key, capacity int) int {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(key))
	return int(xxhash.Sum64(buf[:]) % uint64(capacity))
}
