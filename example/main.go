package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/xyproto/env/v2"

	"github.com/theflywheel/chash"
)

func main() {
	if env.Bool("CHASH_DEBUG") {
		logrus.SetLevel(logrus.DebugLevel)
	}

	opts := []chash.Option{}
	switch name := env.Str("CHASH_HASHER", "modulo"); name {
	case "modulo":
	case "xxhash":
		opts = append(opts, chash.WithHasher(chash.XXHasher{}))
	default:
		logrus.Fatalf("Unknown hasher %q", name)
	}

	table, err := chash.New(env.Int("CHASH_CAPACITY", 10), opts...)
	if err != nil {
		logrus.Fatalf("Failed to create table: %v", err)
	}
	defer table.Close()

	for i := 1; i <= 5; i++ {
		if err := table.Insert(i, i*10); err != nil {
			logrus.Fatalf("Failed to insert key %d: %v", i, err)
		}
	}

	printLookup(table, 3, "Value for key 3")

	table.Delete(3)

	printLookup(table, 3, "Value for key 3 after deletion")

	s := table.Stats()
	logrus.WithFields(logrus.Fields{
		"count":         s.Count,
		"capacity":      s.Capacity,
		"load_factor":   s.LoadFactor,
		"longest_chain": s.LongestChain,
		"rehashes":      s.Rehashes,
	}).Debug("final table stats")
}

func printLookup(table *chash.Table, key int, label string) {
	if v, ok := table.Search(key); ok {
		fmt.Printf("%s: %d\n", label, v)
	} else {
		fmt.Printf("%s: not found\n", label)
	}
}
