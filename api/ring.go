// Package api
// Author: momentics@gmail.com
//
// Fixed-capacity ring buffer contracts for single-process producer/consumer exchange.

package api

// ByteRing is the byte-level ring buffer contract.
//
// A ByteRing owns a fixed contiguous storage region and two cursors that
// advance modulo capacity. It is single-threaded: one logical writer and one
// logical reader, externally synchronized.
type ByteRing interface {
	// Write copies p into the ring, applying the overwrite policy when
	// p exceeds free space. Returns the number of bytes retained.
	Write(p []byte) (int, error)

	// Read copies up to len(p) pending bytes into p in FIFO order.
	// Returns the number of bytes delivered.
	Read(p []byte) (int, error)

	// Used returns the number of written-but-unread bytes.
	Used() int
	// Free returns Capacity() - Used().
	Free() int
	// Capacity returns the fixed byte capacity.
	Capacity() int
	// Empty reports Used() == 0.
	Empty() bool
	// Full reports Used() == Capacity().
	Full() bool

	// SetPolicy changes the overwrite policy. Effective immediately.
	SetPolicy(OverwritePolicy)
	// OnOverwrite registers the single observer hook. The hook is
	// observational only; it cannot veto the write.
	OnOverwrite(OverwriteHook)

	// Close releases the storage region back to its allocator.
	Close() error
}

// Ring is the element-level ring buffer contract over fixed-size elements.
type Ring[T any] interface {
	// Push appends one element, possibly overwriting the oldest.
	Push(T) error
	// Pop removes and returns the oldest element; fails when empty.
	Pop() (T, error)
	// TryPop removes and returns the oldest element, ok=false when empty.
	TryPop() (T, bool)
	// At returns the element at logical index i without removal;
	// index 0 is the oldest unread element.
	At(i int) (T, error)
	// Set overwrites the element at logical index i in place.
	Set(i int, v T) error
	// Len returns current number of pending elements.
	Len() int
	// Cap returns buffer capacity in elements.
	Cap() int
}

// OverwritePolicy governs what happens when a write would discard unread data.
type OverwritePolicy int

const (
	// PolicyOverwrite discards the oldest pending bytes to make room.
	PolicyOverwrite OverwritePolicy = iota
	// PolicyDrop rejects the incoming write silently; the call returns 0.
	PolicyDrop
	// PolicyError rejects the incoming write with ErrOverwriteRejected.
	PolicyError
)

// String returns the policy name for diagnostics.
func (p OverwritePolicy) String() string {
	switch p {
	case PolicyOverwrite:
		return "overwrite"
	case PolicyDrop:
		return "drop"
	case PolicyError:
		return "error"
	default:
		return "unknown"
	}
}
