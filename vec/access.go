package vec

import (
	"fmt"

	"github.com/joshuapare/veckit/vec/alloc"
	"github.com/joshuapare/veckit/vec/elem"
)

// Len returns the number of live elements.
func (v *Vector[T]) Len() int { return v.size }

// Cap returns the number of slots in the current block.
func (v *Vector[T]) Cap() int { return len(v.block) }

// Empty reports whether the vector holds no elements.
func (v *Vector[T]) Empty() bool { return v.size == 0 }

// MaxSize returns the largest size the allocator can describe.
func (v *Vector[T]) MaxSize() int { return v.allocator().MaxSize() }

// Allocator returns the allocator in use.
func (v *Vector[T]) Allocator() alloc.Allocator[T] { return v.allocator() }

// Data returns the live elements. The slice aliases the vector's storage
// and is invalidated by any reallocation; its capacity is clipped to Len.
func (v *Vector[T]) Data() []T {
	return v.block[:v.size:v.size]
}

// At returns the element at i, or ErrOutOfRange.
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.size {
		var zero T
		return zero, fmt.Errorf("%w: index %d, len %d", ErrOutOfRange, i, v.size)
	}
	return v.block[i], nil
}

// Set copy-assigns x to the element at i.
func (v *Vector[T]) Set(i int, x T) error {
	if i < 0 || i >= v.size {
		return fmt.Errorf("%w: index %d, len %d", ErrOutOfRange, i, v.size)
	}
	if err := elem.CopyAssign(&v.block[i], &x); err != nil {
		return fmt.Errorf("vec: assign element %d: %w", i, err)
	}
	return nil
}

// Index returns the element at i. It panics if i is not in [0, Len).
func (v *Vector[T]) Index(i int) T {
	return v.block[:v.size][i]
}

// Ref returns a pointer to the element at i. It panics if i is not in [0, Len).
func (v *Vector[T]) Ref(i int) *T {
	return &v.block[:v.size][i]
}

// Front returns a pointer to the first element. It panics on an empty vector.
func (v *Vector[T]) Front() *T {
	return v.Ref(0)
}

// Back returns a pointer to the last element. It panics on an empty vector.
func (v *Vector[T]) Back() *T {
	return v.Ref(v.size - 1)
}
