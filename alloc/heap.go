// File: alloc/heap.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package alloc

import "github.com/momentics/ringio/api"

// Heap allocates regions from the Go heap; release is left to the GC.
type Heap struct{}

var _ api.Allocator = Heap{}

// Alloc returns a zeroed region of exactly size bytes.
func (Heap) Alloc(size int) []byte { return make([]byte, size) }

// Release is a no-op; the GC reclaims heap regions.
func (Heap) Release(p []byte) {}

// Default returns the allocator used when a ring is built without one.
func Default() api.Allocator { return Heap{} }
