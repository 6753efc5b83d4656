// control/dump.go
// Author: momentics <momentics@gmail.com>
//
// Structured state dumps for log-based diagnostics.

package control

import (
	"github.com/rs/zerolog"

	"github.com/momentics/ringio/core/ringbuf"
)

// LogState emits one structured log event describing a ring snapshot.
func LogState(logger zerolog.Logger, name string, s ringbuf.State) {
	logger.Info().
		Str("ring", name).
		Str("policy", s.Policy.String()).
		Int("capacity", s.Capacity).
		Int("used", s.Used).
		Int("write_off", s.WriteOff).
		Int("read_off", s.ReadOff).
		Uint64("bytes_in", s.BytesIn).
		Uint64("bytes_out", s.BytesOut).
		Uint64("overwrites", s.Overwrites).
		Uint64("drops", s.Drops).
		Uint64("rejects", s.Rejects).
		Msg("ring state")
}

// LogDump emits every registered probe's output as one event per probe.
func LogDump(logger zerolog.Logger, dp *DebugProbes) {
	for name, v := range dp.DumpState() {
		if s, ok := v.(ringbuf.State); ok {
			LogState(logger, name, s)
			continue
		}
		logger.Info().Str("probe", name).Interface("value", v).Msg("probe state")
	}
}
