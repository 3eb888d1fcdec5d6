// Package idgen produces opaque unique IDs for new records.
package idgen

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator returns a new unique ID on every call.
type Generator interface {
	NewID() string
}

// UUIDv7 generates time-ordered UUIDs: a millisecond timestamp followed by
// random bits, so IDs sort by creation time.
type UUIDv7 struct{}

// NewID returns a new UUIDv7 string. It falls back to a random UUIDv4 if
// the clock-based generator fails.
func (UUIDv7) NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Sequence yields prefix-1, prefix-2, ... and is meant for tests.
type Sequence struct {
	Prefix string
	n      atomic.Int64
}

// NewID returns the next ID in the sequence.
func (s *Sequence) NewID() string {
	return fmt.Sprintf("%s-%d", s.Prefix, s.n.Add(1))
}
