// Package alloc
// Author: momentics <momentics@gmail.com>
//
// Storage allocators for ring buffer regions. Implements api.Allocator over
// the Go heap and, on Linux, over anonymous hugepage mappings with heap
// fallback. All allocators are cross-platform via build-tag splits.
// See heap.go, hugepage_linux.go, counting.go.
package alloc
