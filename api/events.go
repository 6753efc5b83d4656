// File: api/events.go
// Package api defines the overwrite notification contract.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// OverwriteHook observes data loss on a ring buffer. It receives the number
// of units about to be discarded: bytes at the byte layer, elements at an
// element view. The hook fires before any memory is touched and cannot veto
// the write; suppression is the policy's decision alone.
//
// A ring holds at most one hook per layer. Multi-listener composition is the
// caller's concern; see package notify.
type OverwriteHook func(discarded int)
