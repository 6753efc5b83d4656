// File: ringio.go
// Unified facade for the ringio library.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Re-exports the common construction paths so typical callers need only this
// package: byte rings, element views, and typed rings, with the policy and
// option types aliased from their home packages.

package ringio

import (
	"github.com/momentics/ringio/api"
	"github.com/momentics/ringio/core/ringbuf"
	"github.com/momentics/ringio/typed"
)

// Policy aliases the overwrite policy type.
type Policy = api.OverwritePolicy

// Overwrite policies.
const (
	Overwrite = api.PolicyOverwrite
	Drop      = api.PolicyDrop
	Error     = api.PolicyError
)

// Option aliases the ring construction option type.
type Option = ringbuf.Option

// Construction options, re-exported.
var (
	WithAllocator     = ringbuf.WithAllocator
	WithPolicy        = ringbuf.WithPolicy
	WithOverwriteHook = ringbuf.WithOverwriteHook
)

// New allocates a byte ring of the given capacity.
func New(capacity int, opts ...Option) (*ringbuf.Buffer, error) {
	return ringbuf.New(capacity, opts...)
}

// NewView allocates a byte ring sized for elements * elemSize bytes and
// returns its element view.
func NewView(elements, elemSize int, opts ...Option) (*ringbuf.ElementView, error) {
	return ringbuf.NewSized(elements, elemSize, opts...)
}

// NewTyped allocates a typed ring holding elements values of T.
func NewTyped[T typed.Element](elements int, opts ...Option) (*typed.Ring[T], error) {
	return typed.New[T](elements, opts...)
}
