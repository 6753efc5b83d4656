// File: alloc/hugepage_linux.go
//go:build linux
// +build linux

//
// Package alloc: Linux-specific region allocator using hugepages.
//
// Regions are allocated via mmap with MAP_HUGETLB for 2 MiB pages.
// Fallback to Go heap if hugepage allocation fails.
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package alloc

import (
	"sync"

	"golang.org/x/sys/unix"

	"github.com/momentics/ringio/api"
)

const hugeSize = 2 << 20

// Hugepage allocates ring storage from anonymous hugepage mappings.
// Mappings are rounded up to the hugepage boundary; the full mapping is
// remembered so Release can unmap it from the caller's trimmed slice.
type Hugepage struct {
	mu      sync.Mutex
	regions map[*byte][]byte // first byte of region -> full mapping
}

var _ api.Allocator = (*Hugepage)(nil)

// NewHugepage creates a hugepage-backed allocator.
func NewHugepage() *Hugepage {
	return &Hugepage{regions: make(map[*byte][]byte)}
}

// Alloc maps a region of exactly size bytes on hugepages, falling back to the
// Go heap when the mapping fails (no hugetlb pool configured, EPERM, ...).
func (h *Hugepage) Alloc(size int) []byte {
	length := ((size + hugeSize - 1) / hugeSize) * hugeSize
	data, err := unix.Mmap(-1, 0, length,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANONYMOUS|unix.MAP_PRIVATE|unix.MAP_HUGETLB)
	if err != nil {
		return make([]byte, size)
	}
	region := data[:size]
	h.mu.Lock()
	h.regions[&region[0]] = data
	h.mu.Unlock()
	return region
}

// Release unmaps a hugepage region. Heap-fallback regions are left to the GC.
func (h *Hugepage) Release(p []byte) {
	if len(p) == 0 {
		return
	}
	h.mu.Lock()
	full, ok := h.regions[&p[0]]
	if ok {
		delete(h.regions, &p[0])
	}
	h.mu.Unlock()
	if ok {
		unix.Munmap(full)
	}
}
