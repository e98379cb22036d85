// Package counters holds the per-process request counters.
package counters

import "sync/atomic"

// Counters tracks requests served by this process. The zero value is ready
// to use; counts live for the lifetime of the process and are never
// persisted.
type Counters struct {
	db    atomic.Int64
	cache atomic.Int64
	total atomic.Int64
}

// Snapshot is a consistent-enough copy of the counters for reporting.
type Snapshot struct {
	DB    int64 `json:"db"`
	Cache int64 `json:"cache"`
	Total int64 `json:"total"`
}

// New returns zeroed counters.
func New() *Counters {
	return &Counters{}
}

// IncDB records a database route request and returns the new db count.
func (c *Counters) IncDB() int64 {
	c.total.Add(1)
	return c.db.Add(1)
}

// IncCache records a cache route request and returns the new cache count.
func (c *Counters) IncCache() int64 {
	c.total.Add(1)
	return c.cache.Add(1)
}

// IncTotal records a request to any other counted route.
func (c *Counters) IncTotal() int64 {
	return c.total.Add(1)
}

// Snapshot reads all three counters. Each value is read atomically; the
// three reads are not taken under a single lock.
func (c *Counters) Snapshot() Snapshot {
	return Snapshot{
		DB:    c.db.Load(),
		Cache: c.cache.Load(),
		Total: c.total.Load(),
	}
}
