// File: core/ringbuf/options.go
// Package ringbuf defines functional options for ring construction.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ringbuf

import "github.com/momentics/ringio/api"

// Option customizes ring buffer initialization.
type Option func(*Buffer)

// WithAllocator selects the storage allocator. Defaults to the Go heap.
func WithAllocator(a api.Allocator) Option {
	return func(b *Buffer) {
		b.alloc = a
	}
}

// WithPolicy sets the initial overwrite policy.
func WithPolicy(p api.OverwritePolicy) Option {
	return func(b *Buffer) {
		b.policy = p
	}
}

// WithOverwriteHook registers the byte-level overwrite observer.
func WithOverwriteHook(h api.OverwriteHook) Option {
	return func(b *Buffer) {
		b.hook = h
	}
}
