package alloc

import (
	"github.com/joshuapare/veckit/vec/elem"
)

// Allocator defines the allocation contract consumed by vectors.
//
// Implementations:
//   - Heap: Go heap, stateless
//   - Pool: size-class free lists, identity-carrying
//   - Mmap: anonymous mappings, identity-carrying
type Allocator[T any] interface {
	// Allocate returns a block of exactly n raw slots (len == n). n == 0
	// returns a nil block. Exhaustion is reported as ErrNoSpace.
	Allocate(n int) ([]T, error)

	// Deallocate returns a block obtained from Allocate. The block's slots
	// must already be destroyed or relocated. Never fails.
	Deallocate(block []T)

	// Construct builds a value in the raw slot. A nil ctor default-constructs.
	Construct(slot *T, ctor elem.Ctor[T]) error

	// Destroy destroys the value in slot, leaving it raw. Never fails.
	Destroy(slot *T)

	// MaxSize is the largest n Allocate can accept.
	MaxSize() int

	// Equal reports whether blocks allocated by one can be released by the other.
	Equal(other Allocator[T]) bool
}

// Propagation selects when an allocator travels with the elements of a vector.
type Propagation struct {
	OnCopyAssign bool
	OnMoveAssign bool
	OnSwap       bool
}

// PropagateAll propagates on copy assignment, move assignment and swap.
var PropagateAll = Propagation{OnCopyAssign: true, OnMoveAssign: true, OnSwap: true}

// Propagator is implemented by allocators with a non-default propagation policy.
// Allocators that do not implement it never propagate.
type Propagator interface {
	Propagation() Propagation
}

// CopySelector is implemented by allocators that choose a different
// allocator for copy-constructed vectors.
type CopySelector[T any] interface {
	SelectOnCopy() Allocator[T]
}

// PolicyOf returns the propagation policy of a.
func PolicyOf[T any](a Allocator[T]) Propagation {
	if p, ok := a.(Propagator); ok {
		return p.Propagation()
	}
	return Propagation{}
}

// SelectOnCopy returns the allocator a copy of a vector using a should use.
func SelectOnCopy[T any](a Allocator[T]) Allocator[T] {
	if cs, ok := a.(CopySelector[T]); ok {
		return cs.SelectOnCopy()
	}
	return a
}

// Option configures identity-carrying allocators.
type Option func(*config)

type config struct {
	limit int
	prop  Propagation
}

// WithLimit caps the number of slots outstanding at once. Allocations past the
// cap fail with ErrNoSpace. Zero means unlimited.
func WithLimit(slots int) Option {
	return func(c *config) { c.limit = slots }
}

// WithPropagation sets the propagation policy reported by the allocator.
func WithPropagation(p Propagation) Option {
	return func(c *config) { c.prop = p }
}

func newConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Stats holds allocator counters for tests and instrumentation.
type Stats struct {
	AllocCalls  int // Allocate calls that returned a block
	FreeCalls   int // Deallocate calls with a non-empty block
	Failed      int // Allocate calls that returned ErrNoSpace
	Reused      int // blocks served from a free list
	LiveSlots   int // slots currently handed out
	PooledSlots int // slots parked on free lists
	MappedBytes int // bytes currently mapped
}
