// File: core/ringbuf/ringbuf.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Byte-level fixed-capacity ring buffer with wraparound split-copy and a
// pluggable overwrite policy. Single-writer/single-reader, externally
// synchronized; no internal locking.

package ringbuf

import (
	"github.com/momentics/ringio/api"
)

// Buffer is a fixed-capacity circular byte buffer.
//
// Storage is a contiguous region of exactly Capacity() bytes obtained from an
// api.Allocator at construction and released once by Close. The write and
// read cursors advance modulo capacity; the empty flag disambiguates the two
// cursor-equal states (no reserved slot is kept).
type Buffer struct {
	store []byte
	alloc api.Allocator

	w     int  // next write offset in [0, len(store))
	r     int  // next read offset in [0, len(store))
	empty bool // true iff no pending bytes; w == r means empty or full

	policy api.OverwritePolicy
	hook   api.OverwriteHook
	// viewHook is installed by an ElementView so element observers fire
	// before the byte-level hook.
	viewHook func(bytes int)

	closed bool

	// Accounting for State() and the control layer. Plain counters: the
	// buffer is single-threaded by contract.
	bytesIn    uint64
	bytesOut   uint64
	overwrites uint64
	drops      uint64
	rejects    uint64
}

// Compile-time contract compliance.
var _ api.ByteRing = (*Buffer)(nil)

// New allocates a ring buffer of the given byte capacity.
// Fails with api.ErrInvalidCapacity when capacity <= 0.
// The default policy is PolicyOverwrite; default storage comes from the heap.
func New(capacity int, opts ...Option) (*Buffer, error) {
	if capacity <= 0 {
		return nil, api.NewError(api.ErrCodeInvalidCapacity,
			"ringbuf: capacity must be positive").WithContext("capacity", capacity)
	}
	b := &Buffer{
		empty:  true,
		policy: api.PolicyOverwrite,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.alloc == nil {
		b.alloc = heapAllocator{}
	}
	b.store = b.alloc.Alloc(capacity)
	return b, nil
}

// heapAllocator is the zero-dependency default when no allocator is supplied.
type heapAllocator struct{}

func (heapAllocator) Alloc(size int) []byte { return make([]byte, size) }
func (heapAllocator) Release(p []byte)      {}

// Write copies p into the ring and returns the number of bytes retained.
//
// When p alone fits within capacity and exceeds current free space, the
// overwrite decision runs for the surplus; a suppressing policy leaves the
// ring untouched. When len(p) >= capacity, only the last Capacity() bytes of
// p are retained and any pending data is discarded under the same decision.
func (b *Buffer) Write(p []byte) (int, error) {
	if b.closed {
		return 0, api.NewError(api.ErrCodeClosed, "ringbuf: write on closed ring")
	}
	n := len(p)
	if n == 0 {
		return 0, nil
	}
	c := len(b.store)

	if n >= c {
		// Incoming data alone fills the whole ring: everything pending
		// is lost, and only the newest capacity-sized suffix survives.
		if used := b.used(); used > 0 {
			suppress, err := b.decide(used)
			if suppress || err != nil {
				return 0, err
			}
			b.overwrites++
		}
		copy(b.store, p[n-c:])
		b.w, b.r = 0, 0
		b.empty = false
		b.bytesIn += uint64(c)
		return c, nil
	}

	free := b.free()
	overwriting := n > free
	if overwriting {
		suppress, err := b.decide(n - free)
		if suppress || err != nil {
			return 0, err
		}
		b.overwrites++
	}

	high := c - b.w // contiguous room up to the end of storage
	if n <= high {
		copy(b.store[b.w:], p)
		b.w += n
		if b.w == c {
			b.w = 0
		}
	} else {
		copy(b.store[b.w:], p[:high])
		copy(b.store, p[high:])
		b.w = n - high
	}
	b.empty = false
	if overwriting {
		// The oldest bytes were just clobbered; the ring now holds
		// exactly the newest capacity bytes.
		b.r = b.w
	}
	b.bytesIn += uint64(n)
	return n, nil
}

// Read copies up to len(p) pending bytes into p in FIFO order and returns the
// number delivered. Draining the ring resets both cursors to the start of
// storage.
func (b *Buffer) Read(p []byte) (int, error) {
	if b.closed {
		return 0, api.NewError(api.ErrCodeClosed, "ringbuf: read on closed ring")
	}
	n := len(p)
	if n == 0 || b.empty {
		return 0, nil
	}
	c := len(b.store)
	used := b.used()

	if n < used {
		high := c - b.r
		if n <= high {
			copy(p, b.store[b.r:b.r+n])
			b.r += n
			if b.r == c {
				b.r = 0
			}
		} else {
			copy(p, b.store[b.r:])
			copy(p[high:n], b.store[:n-high])
			b.r = n - high
		}
		b.bytesOut += uint64(n)
		return n, nil
	}

	// Full drain: deliver everything pending and rewind to the start.
	high := c - b.r
	if used <= high {
		copy(p, b.store[b.r:b.r+used])
	} else {
		copy(p, b.store[b.r:])
		copy(p[high:used], b.store[:used-high])
	}
	b.w, b.r = 0, 0
	b.empty = true
	b.bytesOut += uint64(used)
	return used, nil
}

// decide runs the overwrite decision when discard pending bytes are about to
// be lost. Hooks fire first and are purely observational; the policy alone
// determines suppression, and no memory is touched before it allows.
func (b *Buffer) decide(discard int) (suppress bool, err error) {
	if b.viewHook != nil {
		b.viewHook(discard)
	}
	if b.hook != nil {
		b.hook(discard)
	}
	switch b.policy {
	case api.PolicyOverwrite:
		return false, nil
	case api.PolicyDrop:
		b.drops++
		return true, nil
	default:
		b.rejects++
		return true, api.NewError(api.ErrCodeOverwriteRejected,
			"ringbuf: write would discard pending data").WithContext("discarded", discard)
	}
}

// used derives pending byte count from the cursors and the empty flag.
func (b *Buffer) used() int {
	switch {
	case b.w > b.r:
		return b.w - b.r
	case b.w < b.r:
		return len(b.store) - b.r + b.w
	case b.empty:
		return 0
	default:
		return len(b.store)
	}
}

func (b *Buffer) free() int { return len(b.store) - b.used() }

// Used returns the number of written-but-unread bytes.
func (b *Buffer) Used() int { return b.used() }

// Free returns the number of bytes that fit without an overwrite.
func (b *Buffer) Free() int { return b.free() }

// Capacity returns the fixed byte capacity.
func (b *Buffer) Capacity() int { return len(b.store) }

// Empty reports whether no bytes are pending.
func (b *Buffer) Empty() bool { return b.used() == 0 }

// Full reports whether the ring holds exactly Capacity() pending bytes.
func (b *Buffer) Full() bool { return b.used() == len(b.store) }

// Policy returns the current overwrite policy.
func (b *Buffer) Policy() api.OverwritePolicy { return b.policy }

// SetPolicy changes the overwrite policy, effective for the next write.
func (b *Buffer) SetPolicy(p api.OverwritePolicy) { b.policy = p }

// OnOverwrite registers the byte-level observer hook. Passing nil clears it.
func (b *Buffer) OnOverwrite(h api.OverwriteHook) { b.hook = h }

// Reset discards all pending bytes and rewinds both cursors.
func (b *Buffer) Reset() {
	b.w, b.r = 0, 0
	b.empty = true
}

// Close releases the storage region to its allocator. Idempotent.
func (b *Buffer) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	b.alloc.Release(b.store)
	b.store = nil
	return nil
}

// peek copies one pending run of len(dst) bytes starting off bytes past the
// read cursor, without consuming. Caller guarantees off+len(dst) <= used.
func (b *Buffer) peek(off int, dst []byte) {
	c := len(b.store)
	pos := b.r + off
	if pos >= c {
		pos -= c
	}
	high := c - pos
	if len(dst) <= high {
		copy(dst, b.store[pos:pos+len(dst)])
		return
	}
	copy(dst, b.store[pos:])
	copy(dst[high:], b.store[:len(dst)-high])
}

// poke overwrites len(src) pending bytes in place, off bytes past the read
// cursor. Caller guarantees off+len(src) <= used.
func (b *Buffer) poke(off int, src []byte) {
	c := len(b.store)
	pos := b.r + off
	if pos >= c {
		pos -= c
	}
	high := c - pos
	if len(src) <= high {
		copy(b.store[pos:], src)
		return
	}
	copy(b.store[pos:], src[:high])
	copy(b.store, src[high:])
}
