// Package vec provides Vector, a generic growable sequence whose storage is
// obtained from a pluggable allocator.
//
// # Overview
//
// A Vector owns one contiguous block of slots. The first Len slots hold live
// elements; the rest, up to Cap, are raw. All memory comes from an
// alloc.Allocator and every element is built and destroyed through it, so
// the allocator decides where storage lives and how long it stays around.
// The zero Vector is empty and uses alloc.Heap.
//
// Element types may customize their lifecycle with the hooks in package
// elem (Init, CopyFrom, MoveFrom, Destroy). Types without hooks are moved as
// whole blocks with copy; types with hooks are moved one element at a time.
//
// # Growth
//
// Capacity starts at 2 and doubles whenever an insertion would exceed it.
// Reserve and Resize allocate exactly what they are asked for. When growth
// relocates elements the vector picks, in order:
//
//  1. bulk copy, for types registered or detected as relocatable
//  2. element moves, when moves cannot fail or the type cannot be copied
//  3. element copies, rolled back on failure so the vector is untouched
//
// # Failure Guarantees
//
// A failed allocation or relocation leaves the vector exactly as it was.
// A failed element construction during insertion leaves the previous
// elements in place and the size unchanged; values of elements that were
// being shifted are then unspecified. Unchecked accessors (Index, Ref,
// Front, Back, PopBack) panic on misuse instead of returning errors.
//
// # Cursors
//
// Cursor is a random-access position: a block plus an offset. Cursors are
// plain values and are invalidated by any reallocation; comparing cursors
// from different blocks panics, except Equal which reports false.
// ConstCursor gives read-only access, ReverseCursor and ConstReverseCursor
// walk backwards through an underlying forward cursor (Base). Checked
// cursors carry the vector's generation and report ErrStaleCursor after a
// structural modification.
//
// # Thread Safety
//
// Vector is not thread-safe. Callers must synchronize access externally.
package vec
