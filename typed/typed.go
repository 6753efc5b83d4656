// File: typed/typed.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Generic element-typed ring buffer over the byte-level core. The element
// size is the in-memory size of T; values move through the ring by direct
// memory reinterpretation, never by per-element encoding.

package typed

import (
	"unsafe"

	"github.com/momentics/ringio/api"
	"github.com/momentics/ringio/core/ringbuf"
)

// Element constrains T to fixed-size scalar types whose byte image is their
// in-memory representation.
type Element interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr |
		~float32 | ~float64
}

// Ring is a fixed-capacity FIFO of T, configured by element size rather than
// derived by specialization. Overwrite policy and hooks come from the
// underlying byte ring.
type Ring[T Element] struct {
	view *ringbuf.ElementView
	size int
}

// Compile-time contract compliance.
var _ api.Ring[int32] = (*Ring[int32])(nil)

// New allocates a ring holding exactly elements values of type T.
// Fails with api.ErrInvalidElementCount when elements <= 0.
func New[T Element](elements int, opts ...ringbuf.Option) (*Ring[T], error) {
	var zero T
	size := int(unsafe.Sizeof(zero))
	view, err := ringbuf.NewSized(elements, size, opts...)
	if err != nil {
		return nil, err
	}
	return &Ring[T]{view: view, size: size}, nil
}

// bytes reinterprets v's storage as a byte slice of the element size.
func (t *Ring[T]) bytes(v *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), t.size)
}

// Push appends one element. Under the default policy it always succeeds,
// overwriting the oldest element when full; under PolicyDrop or PolicyError
// the underlying write decision applies.
func (t *Ring[T]) Push(v T) error {
	n, err := t.view.Write(t.bytes(&v))
	if err != nil {
		return err
	}
	if n != 1 {
		return api.NewError(api.ErrCodeWrite, "typed: element not accepted")
	}
	return nil
}

// Pop removes and returns the oldest element.
// Fails with api.ErrRead when the ring is empty.
func (t *Ring[T]) Pop() (T, error) {
	var v T
	n, err := t.view.Read(t.bytes(&v))
	if err != nil {
		return v, err
	}
	if n == 0 {
		return v, api.NewError(api.ErrCodeRead, "typed: ring is empty")
	}
	return v, nil
}

// TryPop removes and returns the oldest element; ok is false when empty.
func (t *Ring[T]) TryPop() (T, bool) {
	var v T
	n, err := t.view.Read(t.bytes(&v))
	if err != nil || n == 0 {
		var zero T
		return zero, false
	}
	return v, true
}

// At returns the element at logical index i without removing it.
// Index 0 is the oldest pending element; valid indices are [0, Len()).
func (t *Ring[T]) At(i int) (T, error) {
	var v T
	if err := t.view.PeekAt(i, t.bytes(&v)); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// Set overwrites the element at logical index i in place.
func (t *Ring[T]) Set(i int, v T) error {
	return t.view.PokeAt(i, t.bytes(&v))
}

// Len returns the number of pending elements.
func (t *Ring[T]) Len() int { return t.view.UsedCount() }

// Cap returns the fixed capacity in elements.
func (t *Ring[T]) Cap() int { return t.view.Count() }

// Free returns the number of elements that fit without an overwrite.
func (t *Ring[T]) Free() int { return t.view.FreeCount() }

// SetPolicy changes the overwrite policy of the underlying ring.
func (t *Ring[T]) SetPolicy(p api.OverwritePolicy) { t.view.Ring().SetPolicy(p) }

// OnOverwrite registers the element-granularity overwrite observer.
func (t *Ring[T]) OnOverwrite(h api.OverwriteHook) { t.view.OnOverwrite(h) }

// State returns the underlying byte ring diagnostics snapshot.
func (t *Ring[T]) State() ringbuf.State { return t.view.Ring().State() }

// Close releases the underlying storage.
func (t *Ring[T]) Close() error { return t.view.Close() }
