package testutil

import (
	"github.com/joshuapare/veckit/vec/alloc"
	"github.com/joshuapare/veckit/vec/elem"
)

// Tracking is a heap-backed allocator that counts its calls. Two Tracking
// allocators compare equal when they are the same instance or share a
// non-empty Group.
type Tracking[T any] struct {
	Group string
	Prop  alloc.Propagation
	// OnCopy, when set, is the allocator selected for copy-constructed vectors.
	OnCopy alloc.Allocator[T]

	Allocs      int
	Frees       int
	Constructs  int
	Destroys    int
	Outstanding int // slots allocated and not yet released

	heap alloc.Heap[T]
}

// NewTracking returns a tracking allocator with the given propagation policy.
func NewTracking[T any](prop alloc.Propagation) *Tracking[T] {
	return &Tracking[T]{Prop: prop}
}

func (t *Tracking[T]) Allocate(n int) ([]T, error) {
	blk, err := t.heap.Allocate(n)
	if err != nil {
		return nil, err
	}
	if n > 0 {
		t.Allocs++
		t.Outstanding += n
	}
	return blk, nil
}

func (t *Tracking[T]) Deallocate(block []T) {
	if len(block) == 0 {
		return
	}
	t.Frees++
	t.Outstanding -= len(block)
}

func (t *Tracking[T]) Construct(slot *T, ctor elem.Ctor[T]) error {
	t.Constructs++
	return elem.Construct(slot, ctor)
}

func (t *Tracking[T]) Destroy(slot *T) {
	t.Destroys++
	elem.Destroy(slot)
}

func (t *Tracking[T]) MaxSize() int { return t.heap.MaxSize() }

func (t *Tracking[T]) Equal(other alloc.Allocator[T]) bool {
	o, ok := other.(*Tracking[T])
	return ok && (o == t || (t.Group != "" && o.Group == t.Group))
}

func (t *Tracking[T]) Propagation() alloc.Propagation { return t.Prop }

func (t *Tracking[T]) SelectOnCopy() alloc.Allocator[T] {
	if t.OnCopy != nil {
		return t.OnCopy
	}
	return t
}
