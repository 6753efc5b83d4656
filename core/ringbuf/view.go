// File: core/ringbuf/view.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// ElementView reinterprets a byte ring as a sequence of fixed-size elements.
// All arithmetic is the byte layer's, scaled by the element size.

package ringbuf

import "github.com/momentics/ringio/api"

// ElementView presents a Buffer in units of a fixed element size. It carries
// no cursor state of its own: element indices are derived from the byte
// cursors, which only ever move by whole elements when the ring is driven
// exclusively through the view.
//
// A Buffer supports one attached view at a time.
type ElementView struct {
	b        *Buffer
	elemSize int
	hook     api.OverwriteHook // element-granularity observer
}

// NewView attaches an element view of the given element size to b.
// Fails with api.ErrInvalidElementCount when the size is not positive or the
// buffer cannot hold a single element.
func NewView(b *Buffer, elemSize int) (*ElementView, error) {
	if elemSize <= 0 || b.Capacity()/elemSize == 0 {
		return nil, api.NewError(api.ErrCodeInvalidElementCount,
			"ringbuf: capacity must hold at least one element").
			WithContext("capacity", b.Capacity()).
			WithContext("elem_size", elemSize)
	}
	v := &ElementView{b: b, elemSize: elemSize}
	b.viewHook = v.onByteOverwrite
	return v, nil
}

// NewSized allocates a fresh byte ring holding exactly elements * elemSize
// bytes and attaches a view. Fails with api.ErrInvalidElementCount when
// elements <= 0.
func NewSized(elements, elemSize int, opts ...Option) (*ElementView, error) {
	if elements <= 0 || elemSize <= 0 {
		return nil, api.NewError(api.ErrCodeInvalidElementCount,
			"ringbuf: element count must be positive").
			WithContext("elements", elements).
			WithContext("elem_size", elemSize)
	}
	b, err := New(elements*elemSize, opts...)
	if err != nil {
		return nil, err
	}
	return NewView(b, elemSize)
}

// onByteOverwrite fans the byte-level discard count out to the element hook.
// Fires before the byte-level hook by construction (see Buffer.decide).
func (v *ElementView) onByteOverwrite(bytes int) {
	if v.hook != nil {
		v.hook(bytes / v.elemSize)
	}
}

// OnOverwrite registers the element-granularity observer. It receives the
// count of whole elements about to be discarded and fires before the byte
// layer's own hook.
func (v *ElementView) OnOverwrite(h api.OverwriteHook) { v.hook = h }

// Write moves whole elements from p into the ring and returns the number of
// elements retained. Trailing bytes beyond the last whole element in p are
// ignored.
func (v *ElementView) Write(p []byte) (int, error) {
	n := (len(p) / v.elemSize) * v.elemSize
	accepted, err := v.b.Write(p[:n])
	return accepted / v.elemSize, err
}

// Read moves up to len(p)/elemSize whole elements into p in FIFO order and
// returns the number of elements delivered.
func (v *ElementView) Read(p []byte) (int, error) {
	n := (len(p) / v.elemSize) * v.elemSize
	delivered, err := v.b.Read(p[:n])
	return delivered / v.elemSize, err
}

// PeekAt copies the element at logical index i (0 = oldest pending) into dst
// without consuming it. dst must hold one element.
func (v *ElementView) PeekAt(i int, dst []byte) error {
	if i < 0 || i >= v.UsedCount() {
		return api.NewError(api.ErrCodeIndexOutOfBounds,
			"ringbuf: element index outside pending range").
			WithContext("index", i).
			WithContext("pending", v.UsedCount())
	}
	v.b.peek(i*v.elemSize, dst[:v.elemSize])
	return nil
}

// PokeAt overwrites the element at logical index i in place.
func (v *ElementView) PokeAt(i int, src []byte) error {
	if i < 0 || i >= v.UsedCount() {
		return api.NewError(api.ErrCodeIndexOutOfBounds,
			"ringbuf: element index outside pending range").
			WithContext("index", i).
			WithContext("pending", v.UsedCount())
	}
	v.b.poke(i*v.elemSize, src[:v.elemSize])
	return nil
}

// ElemSize returns the fixed element size in bytes.
func (v *ElementView) ElemSize() int { return v.elemSize }

// Count returns the total capacity in elements.
func (v *ElementView) Count() int { return v.b.Capacity() / v.elemSize }

// UsedCount returns the number of pending elements.
func (v *ElementView) UsedCount() int { return v.b.used() / v.elemSize }

// FreeCount returns the number of elements that fit without an overwrite.
func (v *ElementView) FreeCount() int { return v.b.free() / v.elemSize }

// WriteIndex returns the write cursor in element units, for diagnostics.
func (v *ElementView) WriteIndex() int { return v.b.w / v.elemSize }

// ReadIndex returns the read cursor in element units, for diagnostics.
func (v *ElementView) ReadIndex() int { return v.b.r / v.elemSize }

// Ring exposes the underlying byte ring for policy and state access.
func (v *ElementView) Ring() *Buffer { return v.b }

// Close releases the underlying byte ring.
func (v *ElementView) Close() error { return v.b.Close() }
