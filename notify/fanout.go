// File: notify/fanout.go
// Package notify composes overwrite-event observers outside the ring.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// A ring holds exactly one hook per layer; callers that need several
// independent listeners own a Fanout and install its Hook() on the ring.

package notify

import (
	"sync"

	"github.com/eapache/queue"

	"github.com/momentics/ringio/api"
)

// Fanout dispatches overwrite notifications to any number of subscribers.
//
// In immediate mode every notification reaches all subscribers from inside
// the ring's write call. In deferred mode notifications are parked in a FIFO
// and delivered on Flush, keeping subscriber work out of the write path.
type Fanout struct {
	mu       sync.Mutex
	subs     []api.OverwriteHook
	pending  *queue.Queue
	deferred bool
}

// Option customizes fan-out construction.
type Option func(*Fanout)

// WithDeferred parks notifications until Flush instead of dispatching inline.
func WithDeferred() Option {
	return func(f *Fanout) {
		f.deferred = true
	}
}

// NewFanout creates an empty dispatcher.
func NewFanout(opts ...Option) *Fanout {
	f := &Fanout{pending: queue.New()}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Subscribe adds a listener. Listeners are invoked in subscription order.
func (f *Fanout) Subscribe(h api.OverwriteHook) {
	f.mu.Lock()
	f.subs = append(f.subs, h)
	f.mu.Unlock()
}

// Hook returns the single hook to install on a ring or view.
func (f *Fanout) Hook() api.OverwriteHook {
	return func(discarded int) {
		f.mu.Lock()
		if f.deferred {
			f.pending.Add(discarded)
			f.mu.Unlock()
			return
		}
		subs := make([]api.OverwriteHook, len(f.subs))
		copy(subs, f.subs)
		f.mu.Unlock()
		for _, h := range subs {
			h(discarded)
		}
	}
}

// Flush delivers all parked notifications in FIFO order and returns how many
// were dispatched. No-op in immediate mode.
func (f *Fanout) Flush() int {
	f.mu.Lock()
	counts := make([]int, 0, f.pending.Length())
	for f.pending.Length() > 0 {
		counts = append(counts, f.pending.Remove().(int))
	}
	subs := make([]api.OverwriteHook, len(f.subs))
	copy(subs, f.subs)
	f.mu.Unlock()

	for _, n := range counts {
		for _, h := range subs {
			h(n)
		}
	}
	return len(counts)
}

// Pending returns the number of parked notifications.
func (f *Fanout) Pending() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pending.Length()
}
