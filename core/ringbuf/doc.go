// Package ringbuf
// Author: momentics <momentics@gmail.com>
//
// Core fixed-capacity circular buffer for byte-oriented producer/consumer
// data exchange within a single process, plus the element-size view layer.
// Single-writer/single-reader; synchronization is the caller's concern.
// See ringbuf.go for the wraparound algorithm and view.go for the typed layer.
package ringbuf
