// Package fake
// Author: momentics <momentics@gmail.com>
//
// Fake allocator and overwrite hook implementations for testing.

package fake

import (
	"sync"

	"github.com/momentics/ringio/api"
)

// Allocator is a fake api.Allocator that records every Alloc and Release.
type Allocator struct {
	mu       sync.Mutex
	allocs   []int // sizes requested, in order
	releases int
	live     map[*byte]int // first byte -> region size
	doubles  int           // releases of unknown or already-released regions
}

var _ api.Allocator = (*Allocator)(nil)

// NewAllocator creates an empty recording allocator.
func NewAllocator() *Allocator {
	return &Allocator{live: make(map[*byte]int)}
}

// Alloc returns a heap region and records the request.
func (a *Allocator) Alloc(size int) []byte {
	a.mu.Lock()
	defer a.mu.Unlock()
	p := make([]byte, size)
	a.allocs = append(a.allocs, size)
	if size > 0 {
		a.live[&p[0]] = size
	}
	return p
}

// Release records the release and flags unknown regions.
func (a *Allocator) Release(p []byte) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.releases++
	if len(p) == 0 {
		return
	}
	if _, ok := a.live[&p[0]]; !ok {
		a.doubles++
		return
	}
	delete(a.live, &p[0])
}

// Allocs returns the recorded allocation sizes in order.
func (a *Allocator) Allocs() []int {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]int, len(a.allocs))
	copy(out, a.allocs)
	return out
}

// Releases returns the number of Release calls.
func (a *Allocator) Releases() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.releases
}

// Live returns the number of regions allocated but not yet released.
func (a *Allocator) Live() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.live)
}

// Doubles returns the number of bogus releases observed.
func (a *Allocator) Doubles() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.doubles
}
