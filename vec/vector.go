package vec

import (
	"fmt"
	"iter"

	"github.com/joshuapare/veckit/vec/alloc"
	"github.com/joshuapare/veckit/vec/elem"
)

// Vector is a growable sequence of T backed by an allocator.
//
// Invariants:
//   - 0 <= size <= len(block); len(block) is the capacity
//   - block is nil iff the capacity is 0
//   - block[:size] holds live elements, block[size:] raw slots
type Vector[T any] struct {
	alloc alloc.Allocator[T] // nil means alloc.Heap
	block []T
	size  int
	gen   uint64 // bumped on every structural modification
}

// Option configures a vector at construction.
type Option[T any] func(*Vector[T])

// WithAllocator sets the allocator of a new vector.
func WithAllocator[T any](a alloc.Allocator[T]) Option[T] {
	return func(v *Vector[T]) { v.alloc = a }
}

// New returns an empty vector.
func New[T any](opts ...Option[T]) *Vector[T] {
	v := &Vector[T]{}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// NewFilled returns a vector holding n copies of value.
func NewFilled[T any](n int, value T, opts ...Option[T]) (*Vector[T], error) {
	v := New(opts...)
	ctor := elem.Value(value)
	if err := v.build(n, func(_ int, slot *T) error { return ctor(slot) }); err != nil {
		return nil, err
	}
	return v, nil
}

// NewSized returns a vector holding n default-constructed elements.
func NewSized[T any](n int, opts ...Option[T]) (*Vector[T], error) {
	v := New(opts...)
	if err := v.build(n, func(_ int, slot *T) error { return elem.Init(slot) }); err != nil {
		return nil, err
	}
	return v, nil
}

// FromSlice returns a vector holding copies of vals, in order.
func FromSlice[T any](vals []T, opts ...Option[T]) (*Vector[T], error) {
	v := New(opts...)
	if err := v.build(len(vals), func(i int, slot *T) error { return elem.Copy(slot, &vals[i]) }); err != nil {
		return nil, err
	}
	return v, nil
}

// FromRange returns a vector holding copies of the elements in [first, last).
func FromRange[T any](first, last ConstCursor[T], opts ...Option[T]) (*Vector[T], error) {
	n := last.Diff(first)
	v := New(opts...)
	if err := v.build(n, func(i int, slot *T) error { return elem.Copy(slot, first.ptr(i)) }); err != nil {
		return nil, err
	}
	return v, nil
}

// FromSeq returns a vector holding the values produced by seq, growing as it goes.
func FromSeq[T any](seq iter.Seq[T], opts ...Option[T]) (*Vector[T], error) {
	v := New(opts...)
	for x := range seq {
		if err := v.PushBack(x); err != nil {
			v.Release()
			return nil, err
		}
	}
	return v, nil
}

// Clone returns an element-wise copy of v. Its allocator is the one v's
// allocator selects for copies.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	return v.CloneWith(alloc.SelectOnCopy(v.allocator()))
}

// CloneWith returns an element-wise copy of v that allocates from a.
// The copy's capacity equals v's size.
func (v *Vector[T]) CloneWith(a alloc.Allocator[T]) (*Vector[T], error) {
	c := New(WithAllocator(a))
	if err := c.build(v.size, func(i int, slot *T) error { return elem.Copy(slot, &v.block[i]) }); err != nil {
		return nil, err
	}
	return c, nil
}

// Take returns a vector that owns src's storage and allocator. src is left
// empty with no capacity. It never allocates.
func Take[T any](src *Vector[T]) *Vector[T] {
	v := &Vector[T]{alloc: src.alloc, block: src.block, size: src.size}
	src.block, src.size = nil, 0
	src.gen++
	return v
}

// TakeWith returns a vector using allocator a that holds src's elements.
// With an allocator equal to src's the storage is taken over; otherwise
// the elements are moved one by one into a fresh block from a and src is
// cleared but keeps its capacity. A nil a means alloc.Heap.
func TakeWith[T any](src *Vector[T], a alloc.Allocator[T]) (*Vector[T], error) {
	if a == nil {
		a = alloc.Heap[T]{}
	}
	if a.Equal(src.allocator()) {
		v := Take(src)
		v.alloc = a
		return v, nil
	}
	v := New(WithAllocator(a))
	if err := v.build(src.size, func(i int, slot *T) error { return elem.Move(slot, &src.block[i]) }); err != nil {
		return nil, err
	}
	src.Clear()
	return v, nil
}

// Release destroys every element and returns the block to the allocator.
// The vector stays usable and keeps its allocator.
func (v *Vector[T]) Release() {
	v.discard(v.allocator())
}

// String formats the live elements like a slice.
func (v *Vector[T]) String() string {
	return fmt.Sprint(v.Data())
}

func (v *Vector[T]) allocator() alloc.Allocator[T] {
	if v.alloc == nil {
		return alloc.Heap[T]{}
	}
	return v.alloc
}

func (v *Vector[T]) checkLength(n int) error {
	if m := v.allocator().MaxSize(); n < 0 || n > m {
		return fmt.Errorf("%w: %d > %d", ErrLength, n, m)
	}
	return nil
}

// build fills an empty vector with no storage with n elements, the i-th
// built by ctor. Capacity becomes exactly n. On failure the vector is left
// empty with no storage.
func (v *Vector[T]) build(n int, ctor func(i int, slot *T) error) error {
	if err := v.checkLength(n); err != nil {
		return err
	}
	a := v.allocator()
	blk, err := a.Allocate(n)
	if err != nil {
		return err
	}
	v.block = blk
	v.gen++

	var i int
	at := elem.Ctor[T](func(slot *T) error { return ctor(i, slot) })
	for i = 0; i < n; i++ {
		if err := a.Construct(&blk[i], at); err != nil {
			v.discard(a)
			return fmt.Errorf("vec: construct element %d: %w", i, err)
		}
		v.size = i + 1
	}
	return nil
}

// destroy destroys the live elements in [from, to) through a.
func (v *Vector[T]) destroy(a alloc.Allocator[T], from, to int) {
	for i := from; i < to; i++ {
		a.Destroy(&v.block[i])
	}
}

// discard destroys every element and releases the block through a.
func (v *Vector[T]) discard(a alloc.Allocator[T]) {
	v.destroy(a, 0, v.size)
	v.size = 0
	if v.block != nil {
		a.Deallocate(v.block)
		v.block = nil
	}
	v.gen++
}
