package alloc

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/joshuapare/veckit/vec/elem"
)

// maxHeapBytes bounds a single heap block: 2^46 bytes on 64-bit platforms,
// math.MaxInt elsewhere. The runtime refuses larger slices.
const maxHeapBytes = math.MaxInt >> (17 * (math.MaxInt >> 62))

// Heap allocates blocks on the Go heap. It is stateless: every Heap[T]
// compares equal to every other.
type Heap[T any] struct{}

// Allocate returns make([]T, n).
func (h Heap[T]) Allocate(n int) ([]T, error) {
	if n < 0 || n > h.MaxSize() {
		return nil, fmt.Errorf("%w: %d slots", ErrNoSpace, n)
	}
	if n == 0 {
		return nil, nil
	}
	return make([]T, n), nil
}

// Deallocate leaves the block to the garbage collector.
func (Heap[T]) Deallocate([]T) {}

// Construct builds a value in slot.
func (Heap[T]) Construct(slot *T, ctor elem.Ctor[T]) error {
	return elem.Construct(slot, ctor)
}

// Destroy destroys the value in slot.
func (Heap[T]) Destroy(slot *T) {
	elem.Destroy(slot)
}

// MaxSize is the largest slot count the runtime can back with one slice.
func (Heap[T]) MaxSize() int {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		return math.MaxInt
	}
	return maxHeapBytes / size
}

// Equal reports whether other is a Heap.
func (Heap[T]) Equal(other Allocator[T]) bool {
	switch other.(type) {
	case Heap[T], *Heap[T]:
		return true
	}
	return false
}
