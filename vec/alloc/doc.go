// Package alloc provides the allocator capability used by vec.Vector.
//
// # Overview
//
// An Allocator hands out raw blocks of element slots, takes them back, and
// builds or destroys single elements inside those slots. Vectors never touch
// memory any other way, so swapping the allocator swaps where and how their
// storage lives.
//
// # Allocator Interface
//
//   - Allocate(n): a block of exactly n raw slots, or ErrNoSpace
//   - Deallocate(block): return a block; never fails
//   - Construct(slot, ctor): build one element in a raw slot
//   - Destroy(slot): destroy one element; never fails
//   - MaxSize(): the largest block this allocator can describe
//   - Equal(other): whether blocks from one may be released through the other
//
// Optional interfaces refine how vectors treat allocators during assignment:
//
//   - Propagator: whether the allocator follows the elements on copy
//     assignment, move assignment and swap
//   - CopySelector: which allocator a copy-constructed vector should use
//
// # Implementations
//
// Heap: stateless allocator backed by the Go heap
//
//   - All instances compare equal
//   - Deallocate leaves the block to the garbage collector
//
// Pool: allocator with power-of-two size classes
//
//   - Released blocks are cleared and kept on per-class free lists
//   - Optional slot limit (WithLimit) turns exhaustion into ErrNoSpace
//   - Instances compare equal only to themselves
//
// Mmap: off-heap allocator for pointer-free element types
//
//   - Each block is a private anonymous mapping (golang.org/x/sys/unix)
//   - Falls back to heap bytes on platforms without mmap
//   - Instances compare equal only to themselves; Close releases everything
//
// # Thread Safety
//
// Allocator instances are not thread-safe. Callers must synchronize access
// externally.
package alloc
