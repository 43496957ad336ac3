package vec

import (
	"fmt"

	"github.com/joshuapare/veckit/internal/buf"
	"github.com/joshuapare/veckit/internal/logger"
	"github.com/joshuapare/veckit/vec/alloc"
	"github.com/joshuapare/veckit/vec/elem"
)

// minCapacity is the capacity of the first block a growing vector allocates.
const minCapacity = 2

// Relocation strategies, in order of preference.
const (
	relocateBulk = "bulk"
	relocateMove = "move"
	relocateCopy = "copy"
)

// Reserve ensures Cap() >= n, reallocating to exactly n slots if needed.
// It never shrinks. On failure the vector is unchanged.
func (v *Vector[T]) Reserve(n int) error {
	if err := v.checkLength(n); err != nil {
		return err
	}
	if n <= len(v.block) {
		return nil
	}
	return v.reallocate(n)
}

// ShrinkToFit reallocates so that Cap() == Len(). An empty vector releases
// its block. On failure the vector is unchanged.
func (v *Vector[T]) ShrinkToFit() error {
	if v.size == len(v.block) {
		return nil
	}
	if v.size == 0 {
		v.discard(v.allocator())
		return nil
	}
	return v.reallocate(v.size)
}

// grow makes room for required elements using the doubling policy.
func (v *Vector[T]) grow(required int) error {
	if required <= len(v.block) {
		return nil
	}
	n, err := v.nextCapacity(required)
	if err != nil {
		return err
	}
	return v.reallocate(n)
}

// nextCapacity returns the capacity to grow to for required elements: the
// minimum capacity from empty, the doubled capacity otherwise, and never
// less than required nor more than MaxSize.
func (v *Vector[T]) nextCapacity(required int) (int, error) {
	if err := v.checkLength(required); err != nil {
		return 0, err
	}
	limit := v.allocator().MaxSize()
	next := buf.Double(len(v.block), limit)
	if len(v.block) == 0 {
		next = min(minCapacity, limit)
	}
	return max(next, required), nil
}

// reallocate moves the live elements into a new block of exactly n slots.
// n must be >= size. On failure the vector is unchanged.
func (v *Vector[T]) reallocate(n int) error {
	a := v.allocator()
	blk, err := a.Allocate(n)
	if err != nil {
		return err
	}

	strategy, err := v.relocate(a, blk)
	if err != nil {
		a.Deallocate(blk)
		return err
	}
	if logger.Growth {
		logger.Debug("relocate", "strategy", strategy, "size", v.size, "from", len(v.block), "to", n)
	}

	if v.block != nil {
		a.Deallocate(v.block)
	}
	v.block = blk
	v.gen++
	return nil
}

// relocate transfers the live elements into dst and leaves the old slots
// ready for deallocation. If it fails, dst holds nothing and the old block
// is intact, except on the move path for types whose moves can fail and
// which cannot be copied.
func (v *Vector[T]) relocate(a alloc.Allocator[T], dst []T) (string, error) {
	caps := elem.CapsOf[T]()
	src := v.block[:v.size]

	if caps.Bulk {
		copy(dst, src)
		return relocateBulk, nil
	}

	strategy := relocateCopy
	if caps.NothrowMove || !caps.Copyable {
		strategy = relocateMove
	}

	var i int
	ctor := elem.Ctor[T](func(slot *T) error { return elem.Copy(slot, &src[i]) })
	if strategy == relocateMove {
		ctor = func(slot *T) error { return elem.Move(slot, &src[i]) }
	}
	for i = range src {
		if err := a.Construct(&dst[i], ctor); err != nil {
			for j := range i {
				a.Destroy(&dst[j])
			}
			clear(dst[i : i+1])
			return strategy, fmt.Errorf("vec: relocate element %d: %w", i, err)
		}
	}
	for i := range src {
		a.Destroy(&src[i])
	}
	return strategy, nil
}
