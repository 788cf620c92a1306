package lapwatch

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Registry keeps named stopwatches for callers that time many tasks
// over the lifetime of a process. Entries live in an LRU cache, so a
// long-running caller cannot grow the registry without bound; when the
// capacity is reached, the least recently used stopwatch is dropped.
//
// Like Stopwatch, a Registry is meant to be used from a single
// goroutine.
type Registry struct {
	clock   Clock
	watches *lru.Cache[string, *Stopwatch]
}

// NewRegistry returns a Registry holding at most size stopwatches,
// each created with the given clock (nil means the system wall clock).
// Returns an error when size is not positive.
func NewRegistry(size int, clock Clock) (*Registry, error) {
	watches, err := lru.New[string, *Stopwatch](size)
	if err != nil {
		return nil, err
	}
	if clock == nil {
		clock = time.Now
	}
	return &Registry{clock: clock, watches: watches}, nil
}

// Watch returns the stopwatch stored under name, creating and storing
// a fresh one if none exists. The insertion may evict the least
// recently used entry.
func (r *Registry) Watch(name string) *Stopwatch {
	if sw, ok := r.watches.Get(name); ok {
		return sw
	}
	sw := NewWithClock(r.clock)
	r.watches.Add(name, sw)
	return sw
}

// Remove drops the stopwatch stored under name, if any.
func (r *Registry) Remove(name string) {
	r.watches.Remove(name)
}

// Len returns the number of stored stopwatches.
func (r *Registry) Len() int {
	return r.watches.Len()
}
