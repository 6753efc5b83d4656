// File: alloc/counting.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Counting wraps any allocator with allocation/release accounting.

package alloc

import (
	"sync/atomic"

	"github.com/momentics/ringio/api"
)

// Counting decorates an allocator with atomic accounting counters.
type Counting struct {
	inner      api.Allocator
	totalAlloc atomic.Int64
	totalFree  atomic.Int64
	inUse      atomic.Int64
}

var _ api.Allocator = (*Counting)(nil)

// NewCounting wraps inner with accounting. A nil inner defaults to the heap.
func NewCounting(inner api.Allocator) *Counting {
	if inner == nil {
		inner = Heap{}
	}
	return &Counting{inner: inner}
}

// Alloc delegates to the wrapped allocator and records the allocation.
func (c *Counting) Alloc(size int) []byte {
	c.totalAlloc.Add(1)
	c.inUse.Add(1)
	return c.inner.Alloc(size)
}

// Release delegates to the wrapped allocator and records the release.
func (c *Counting) Release(p []byte) {
	c.totalFree.Add(1)
	c.inUse.Add(-1)
	c.inner.Release(p)
}

// Stats exposes allocation accounting for observability.
func (c *Counting) Stats() api.AllocStats {
	return api.AllocStats{
		TotalAlloc: c.totalAlloc.Load(),
		TotalFree:  c.totalFree.Load(),
		InUse:      c.inUse.Load(),
	}
}
