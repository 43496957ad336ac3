package vec

import (
	"fmt"

	"github.com/joshuapare/veckit/vec/alloc"
	"github.com/joshuapare/veckit/vec/elem"
)

// CopyAssign replaces v's contents with copies of src's elements.
//
// If src's allocator propagates on copy assignment it replaces v's. When
// the resulting allocator differs from the old one, or the capacity is too
// small, a block of exactly src.Len() slots is built first and the old
// storage is released only once it is complete. Otherwise existing elements
// are copy-assigned in place. A failed length check, allocation or element
// copy leaves v as it was.
func (v *Vector[T]) CopyAssign(src *Vector[T]) error {
	if v == src {
		return nil
	}
	a := v.allocator()
	if alloc.PolicyOf(src.allocator()).OnCopyAssign {
		a = src.allocator()
	}
	return v.assignCopies(a, src.block[:src.size])
}

// AssignValues replaces v's contents with copies of vals, keeping the
// allocator and reusing capacity when it suffices.
func (v *Vector[T]) AssignValues(vals ...T) error {
	return v.assignCopies(v.allocator(), vals)
}

// assignCopies makes v hold copies of src in storage owned by a.
func (v *Vector[T]) assignCopies(a alloc.Allocator[T], src []T) error {
	if !a.Equal(v.allocator()) || len(src) > len(v.block) {
		return v.rebuild(a, len(src), func(i int, slot *T) error { return elem.Copy(slot, &src[i]) })
	}
	v.alloc = a
	return v.assignInPlace(src, elem.CopyAssign[T], elem.Copy[T])
}

// MoveAssign transfers src's elements into v and leaves src empty.
//
// When v's allocator (after propagation) equals src's, v takes src's storage
// and src ends with no capacity. Otherwise the elements are moved one by one,
// into v's existing storage if it is large enough and into a fresh block
// from v's allocator if not; src keeps its capacity. When the fresh block
// cannot be obtained, v and src are left as they were.
func (v *Vector[T]) MoveAssign(src *Vector[T]) error {
	if v == src {
		return nil
	}
	a := v.allocator()
	if alloc.PolicyOf(src.allocator()).OnMoveAssign {
		a = src.allocator()
	}
	if a.Equal(src.allocator()) {
		v.discard(v.allocator())
		v.alloc = a
		v.block, v.size = src.block, src.size
		v.gen++
		src.block, src.size = nil, 0
		src.gen++
		return nil
	}

	from := src.block[:src.size]
	var err error
	if !a.Equal(v.allocator()) || len(from) > len(v.block) {
		err = v.rebuild(a, len(from), func(i int, slot *T) error { return elem.Move(slot, &from[i]) })
	} else {
		v.alloc = a
		err = v.assignInPlace(from, elem.MoveAssign[T], elem.Move[T])
	}
	if err != nil {
		return err
	}
	src.Clear()
	return nil
}

// rebuild replaces v's storage with a block of n elements from a, the i-th
// built by ctor. The old elements are destroyed and their block released
// through the old allocator only after the new block is complete; on
// failure v keeps its allocator, storage and elements.
func (v *Vector[T]) rebuild(a alloc.Allocator[T], n int, ctor func(i int, slot *T) error) error {
	next := Vector[T]{alloc: a}
	if err := next.build(n, ctor); err != nil {
		return err
	}
	v.discard(v.allocator())
	v.alloc, v.block, v.size = a, next.block, next.size
	v.gen++
	return nil
}

// assignInPlace makes v hold the values of src without reallocating.
// Capacity must cover len(src). Live elements are assigned with assign,
// raw slots are built with construct, and surplus elements are destroyed.
func (v *Vector[T]) assignInPlace(src []T, assign, construct func(dst, src *T) error) error {
	a := v.allocator()
	n := min(v.size, len(src))
	defer func() { v.gen++ }()
	for i := range n {
		if err := assign(&v.block[i], &src[i]); err != nil {
			return fmt.Errorf("vec: assign element %d: %w", i, err)
		}
	}
	if len(src) <= v.size {
		v.destroy(a, len(src), v.size)
		v.size = len(src)
		return nil
	}

	var i int
	ctor := elem.Ctor[T](func(slot *T) error { return construct(slot, &src[i]) })
	for i = v.size; i < len(src); i++ {
		if err := a.Construct(&v.block[i], ctor); err != nil {
			clear(v.block[i : i+1])
			return fmt.Errorf("vec: construct element %d: %w", i, err)
		}
		v.size = i + 1
	}
	return nil
}

// Swap exchanges the contents of v and other. Allocators are exchanged when
// either one propagates on swap; otherwise they must compare equal, or Swap
// returns ErrAllocatorMismatch and changes nothing.
func (v *Vector[T]) Swap(other *Vector[T]) error {
	if v == other {
		return nil
	}
	a, b := v.allocator(), other.allocator()
	switch {
	case alloc.PolicyOf(a).OnSwap || alloc.PolicyOf(b).OnSwap:
		v.alloc, other.alloc = other.alloc, v.alloc
	case !a.Equal(b):
		return ErrAllocatorMismatch
	}
	v.block, other.block = other.block, v.block
	v.size, other.size = other.size, v.size
	v.gen++
	other.gen++
	return nil
}
