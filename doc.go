/*
Package chash provides an in-memory hash table of int keys to int values
using separate chaining.

Each bucket holds a chain of entries in insertion order. When the number of
entries divided by the number of buckets passes the load factor (0.7 by
default) the table doubles its bucket array and moves every entry into it
before the triggering call returns.

Basic usage:

	import "github.com/theflywheel/chash"

	t, err := chash.New(10)
	if err != nil {
		log.Fatal(err)
	}
	defer t.Close()

	if err := t.Insert(3, 30); err != nil {
		log.Fatal(err)
	}

	if v, ok := t.Search(3); ok {
		fmt.Println("Value:", v)
	}

	t.Delete(3)

Features:

  - Separate chaining with tail insertion
  - Automatic doubling when the load factor exceeds 0.7
  - Pluggable placement: ModuloHasher (default) or XXHasher
  - Thread-safe with a single read/write mutex
  - Rehash and close events logged through logrus at debug level

Duplicate keys:

Insert never looks for an existing key. Inserting the same key twice stores
two entries; Search returns the older one and Delete removes only the older
one. Use Put for update-in-place semantics.

Implementation Details:

Keys are placed with key mod capacity, normalized so negative keys land in
a valid bucket. The same Hasher is used for every operation during the
table's lifetime, including rehash. A rehash visits the old buckets in index
order and each chain in order, appending entries to the new array without
re-checking the load factor, so one insert grows the table at most once.
*/
package chash
