// Package control
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics and debug introspection layer for ring buffers.
//
// Provides concurrent-safe observation primitives:
//   - Metrics registry fed from ring state snapshots
//   - Debug probe registration and state export
//   - Structured state dumps via zerolog
//
// The rings themselves stay single-threaded; only this observation layer
// carries locks.
package control
