// File: core/ringbuf/state.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Diagnostics snapshot of ring buffer state.

package ringbuf

import "github.com/momentics/ringio/api"

// State is a snapshot of ring buffer state for debugging and diagnostics.
type State struct {
	Capacity   int                 // total ring capacity in bytes
	WriteOff   int                 // current write cursor offset
	ReadOff    int                 // current read cursor offset
	Used       int                 // bytes currently pending
	Empty      bool                // empty flag (disambiguates WriteOff == ReadOff)
	Policy     api.OverwritePolicy // active overwrite policy
	BytesIn    uint64              // total bytes accepted by Write
	BytesOut   uint64              // total bytes delivered by Read
	Overwrites uint64              // writes that discarded pending data
	Drops      uint64              // writes suppressed by PolicyDrop
	Rejects    uint64              // writes rejected by PolicyError
}

// State returns a snapshot of the current ring state.
func (b *Buffer) State() State {
	return State{
		Capacity:   len(b.store),
		WriteOff:   b.w,
		ReadOff:    b.r,
		Used:       b.used(),
		Empty:      b.empty,
		Policy:     b.policy,
		BytesIn:    b.bytesIn,
		BytesOut:   b.bytesOut,
		Overwrites: b.overwrites,
		Drops:      b.drops,
		Rejects:    b.rejects,
	}
}
