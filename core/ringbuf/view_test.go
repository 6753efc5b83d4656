// Package ringbuf_test tests the element view layer.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ringbuf_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/momentics/ringio/api"
	"github.com/momentics/ringio/core/ringbuf"
)

func TestNewSized_InvalidElementCount(t *testing.T) {
	if _, err := ringbuf.NewSized(0, 4); !errors.Is(err, api.ErrInvalidElementCount) {
		t.Errorf("NewSized(0, 4): expected ErrInvalidElementCount, got %v", err)
	}
	if _, err := ringbuf.NewSized(-1, 4); !errors.Is(err, api.ErrInvalidElementCount) {
		t.Errorf("NewSized(-1, 4): expected ErrInvalidElementCount, got %v", err)
	}
	if _, err := ringbuf.NewSized(3, 0); !errors.Is(err, api.ErrInvalidElementCount) {
		t.Errorf("NewSized(3, 0): expected ErrInvalidElementCount, got %v", err)
	}
}

func TestNewView_TooSmallBuffer(t *testing.T) {
	b, _ := ringbuf.New(3)
	if _, err := ringbuf.NewView(b, 4); !errors.Is(err, api.ErrInvalidElementCount) {
		t.Errorf("view over 3-byte ring with 4-byte elements must fail, got %v", err)
	}
}

func TestView_Counts(t *testing.T) {
	v, err := ringbuf.NewSized(3, 4)
	if err != nil {
		t.Fatalf("NewSized failed: %v", err)
	}
	if v.Count() != 3 || v.ElemSize() != 4 {
		t.Fatalf("count=%d elemSize=%d, want 3/4", v.Count(), v.ElemSize())
	}
	n, err := v.Write([]byte{1, 1, 1, 1, 2, 2, 2, 2})
	if err != nil || n != 2 {
		t.Fatalf("Write = (%d, %v), want 2 elements", n, err)
	}
	if v.UsedCount() != 2 || v.FreeCount() != 1 {
		t.Errorf("used=%d free=%d, want 2/1", v.UsedCount(), v.FreeCount())
	}
	if v.WriteIndex() != 2 || v.ReadIndex() != 0 {
		t.Errorf("indices = (%d, %d), want (2, 0)", v.WriteIndex(), v.ReadIndex())
	}
}

func TestView_WholeElementsOnly(t *testing.T) {
	v, _ := ringbuf.NewSized(4, 4)
	// 6 bytes is one whole element plus a ragged tail; only the element moves.
	n, err := v.Write([]byte{1, 2, 3, 4, 5, 6})
	if err != nil || n != 1 {
		t.Fatalf("ragged write = (%d, %v), want 1 element", n, err)
	}
	out := make([]byte, 7)
	n, err = v.Read(out)
	if err != nil || n != 1 {
		t.Fatalf("ragged read = (%d, %v), want 1 element", n, err)
	}
	if !bytes.Equal(out[:4], []byte{1, 2, 3, 4}) {
		t.Errorf("element = %v, want [1 2 3 4]", out[:4])
	}
}

func TestView_PeekPokeAt(t *testing.T) {
	v, _ := ringbuf.NewSized(3, 2)
	v.Write([]byte{10, 0, 20, 0, 30, 0})
	// Consume the oldest so logical index 0 shifts to the second element.
	v.Read(make([]byte, 2))

	el := make([]byte, 2)
	if err := v.PeekAt(0, el); err != nil || el[0] != 20 {
		t.Errorf("PeekAt(0) = %v, %v; want element 20", el, err)
	}
	if err := v.PeekAt(1, el); err != nil || el[0] != 30 {
		t.Errorf("PeekAt(1) = %v, %v; want element 30", el, err)
	}
	if err := v.PeekAt(2, el); !errors.Is(err, api.ErrIndexOutOfBounds) {
		t.Errorf("PeekAt(2): expected ErrIndexOutOfBounds, got %v", err)
	}
	if err := v.PeekAt(-1, el); !errors.Is(err, api.ErrIndexOutOfBounds) {
		t.Errorf("PeekAt(-1): expected ErrIndexOutOfBounds, got %v", err)
	}

	if err := v.PokeAt(1, []byte{99, 0}); err != nil {
		t.Fatalf("PokeAt failed: %v", err)
	}
	if err := v.PeekAt(1, el); err != nil || el[0] != 99 {
		t.Errorf("after poke, PeekAt(1) = %v, %v; want element 99", el, err)
	}
}

// Peek must cross the wrap boundary when the pending run straddles it.
func TestView_PeekAcrossWrap(t *testing.T) {
	v, _ := ringbuf.NewSized(4, 2)
	v.Write([]byte{1, 1, 2, 2, 3, 3})
	v.Read(make([]byte, 4)) // cursor at element 2
	v.Write([]byte{4, 4, 5, 5})

	el := make([]byte, 2)
	for i, want := range []byte{3, 4, 5} {
		if err := v.PeekAt(i, el); err != nil || el[0] != want {
			t.Errorf("PeekAt(%d) = %v, %v; want element %d", i, el, err, want)
		}
	}
}

// The element hook fires first, in element units, before the byte hook.
func TestView_HookOrdering(t *testing.T) {
	var order []string
	v, _ := ringbuf.NewSized(2, 4)
	v.OnOverwrite(func(elements int) {
		order = append(order, "elem")
		if elements != 1 {
			t.Errorf("element hook got %d, want 1", elements)
		}
	})
	v.Ring().OnOverwrite(func(bytes int) {
		order = append(order, "byte")
		if bytes != 4 {
			t.Errorf("byte hook got %d, want 4", bytes)
		}
	})

	v.Write([]byte{1, 1, 1, 1, 2, 2, 2, 2})
	v.Write([]byte{3, 3, 3, 3}) // overwrites one element
	if len(order) != 2 || order[0] != "elem" || order[1] != "byte" {
		t.Errorf("hook order = %v, want [elem byte]", order)
	}
}
