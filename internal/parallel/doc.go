// Package parallel provides the concurrency building blocks of the
// quadraster engine.
//
// Key pieces:
//
//   - Pool and Lane: one dedicated goroutine per bounded queue, so that work
//     for a partition cell is always processed by the same goroutine in FIFO
//     order
//   - Counter: an outstanding-work counter with a blocking wait for zero,
//     used as the end-of-frame barrier
//   - DirtySet: a lock-free bitmap of cells that received work in a frame
//
// Thread safety is documented per type.
package parallel
