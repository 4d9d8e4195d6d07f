package chash

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

const (
	// DefaultLoadFactor is the occupancy above which the table doubles
	DefaultLoadFactor = 0.7

	// DefaultMaxCapacity bounds the bucket array
	DefaultMaxCapacity = 1 << 30
)

// Option configures a Table at creation time
type Option func(*Table) error

// WithHasher sets the bucket placement function. The hasher is fixed for
// the lifetime of the table.
func WithHasher(h Hasher) Option {
	return func(t *Table) error {
		if h == nil {
			return fmt.Errorf("nil hasher: %w", ErrInvalidOption)
		}
		t.hasher = h
		return nil
	}
}

// WithLogger sets the logger used for rehash and close events
func WithLogger(l logrus.FieldLogger) Option {
	return func(t *Table) error {
		if l == nil {
			return fmt.Errorf("nil logger: %w", ErrInvalidOption)
		}
		t.log = l
		return nil
	}
}

// WithLoadFactor overrides the growth threshold
func WithLoadFactor(f float64) Option {
	return func(t *Table) error {
		if !(f > 0) {
			return fmt.Errorf("load factor %v must be positive: %w", f, ErrInvalidOption)
		}
		t.loadFactor = f
		return nil
	}
}

// WithMaxCapacity caps how far the bucket array may grow
func WithMaxCapacity(n int) Option {
	return func(t *Table) error {
		if n < 1 {
			return fmt.Errorf("max capacity %d: %w", n, ErrInvalidOption)
		}
		t.maxCapacity = n
		return nil
	}
}
