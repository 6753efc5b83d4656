// File: alloc/hugepage_stub.go
//go:build !linux
// +build !linux

//
// Package alloc: heap fallback for platforms without hugepage mappings.
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package alloc

import "github.com/momentics/ringio/api"

// Hugepage degrades to plain heap allocation on non-Linux platforms.
type Hugepage struct{}

var _ api.Allocator = (*Hugepage)(nil)

// NewHugepage creates the fallback allocator.
func NewHugepage() *Hugepage { return &Hugepage{} }

// Alloc returns a heap region of exactly size bytes.
func (*Hugepage) Alloc(size int) []byte { return make([]byte, size) }

// Release is a no-op; the GC reclaims heap regions.
func (*Hugepage) Release(p []byte) {}
