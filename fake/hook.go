// Package fake
// Author: momentics <momentics@gmail.com>
//
// Recording overwrite hook for test assertions.

package fake

import (
	"sync"

	"github.com/momentics/ringio/api"
)

// Hook records every overwrite notification it receives.
type Hook struct {
	mu    sync.Mutex
	calls []int
}

// NewHook creates an empty recording hook.
func NewHook() *Hook { return &Hook{} }

// Fn returns the api.OverwriteHook to install on a ring or view.
func (h *Hook) Fn() api.OverwriteHook {
	return func(discarded int) {
		h.mu.Lock()
		h.calls = append(h.calls, discarded)
		h.mu.Unlock()
	}
}

// Calls returns the recorded discard counts in notification order.
func (h *Hook) Calls() []int {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]int, len(h.calls))
	copy(out, h.calls)
	return out
}

// Count returns how many notifications fired.
func (h *Hook) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.calls)
}
