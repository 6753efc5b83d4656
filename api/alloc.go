// File: api/alloc.go
// Author: momentics <momentics@gmail.com>
//
// Defines the abstract storage allocator API for ring buffer regions.

package api

// Allocator provides raw contiguous storage regions for ring buffers.
// Zero-fill is not required. A region obtained from Alloc must be returned
// to the same allocator via Release exactly once.
type Allocator interface {
	// Alloc returns a region of exactly size bytes.
	Alloc(size int) []byte

	// Release returns a region to the allocator. The region must not be
	// used afterwards.
	Release(p []byte)
}

// AllocStats aggregates region allocation/release accounting.
type AllocStats struct {
	TotalAlloc int64
	TotalFree  int64
	InUse      int64
}
