package vec

import (
	"fmt"

	"github.com/joshuapare/veckit/internal/buf"
	"github.com/joshuapare/veckit/internal/logger"
	"github.com/joshuapare/veckit/vec/alloc"
	"github.com/joshuapare/veckit/vec/elem"
)

// Clear destroys every element. Capacity is kept.
func (v *Vector[T]) Clear() {
	v.destroy(v.allocator(), 0, v.size)
	v.size = 0
	v.gen++
}

// PushBack appends a copy of x.
func (v *Vector[T]) PushBack(x T) error {
	_, err := v.insert(v.size, 1, elem.Value(x))
	return err
}

// EmplaceBack appends an element built in place by ctor and returns it.
// A nil ctor default-constructs. ctor must not read elements of v: growth
// may relocate them before it runs.
func (v *Vector[T]) EmplaceBack(ctor elem.Ctor[T]) (*T, error) {
	c, err := v.insert(v.size, 1, ctor)
	if err != nil {
		return nil, err
	}
	return c.Ptr(), nil
}

// PopBack destroys the last element. It panics on an empty vector.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		panic("vec: PopBack on empty vector")
	}
	v.size--
	v.allocator().Destroy(&v.block[v.size])
	v.gen++
}

// Insert inserts a copy of x before pos and returns a cursor to it.
func (v *Vector[T]) Insert(pos Cursor[T], x T) (Cursor[T], error) {
	return v.insert(v.offsetOf(pos), 1, elem.Value(x))
}

// InsertN inserts count copies of x before pos and returns a cursor to the
// first of them, or to pos's position when count is 0.
func (v *Vector[T]) InsertN(pos Cursor[T], count int, x T) (Cursor[T], error) {
	return v.insert(v.offsetOf(pos), count, elem.Value(x))
}

// Emplace inserts an element built in place by ctor before pos and returns
// a cursor to it.
func (v *Vector[T]) Emplace(pos Cursor[T], ctor elem.Ctor[T]) (Cursor[T], error) {
	return v.insert(v.offsetOf(pos), 1, ctor)
}

// InsertAt inserts a copy of x at index i, 0 <= i <= Len.
func (v *Vector[T]) InsertAt(i int, x T) error {
	if i < 0 || i > v.size {
		return fmt.Errorf("%w: insert at %d, len %d", ErrOutOfRange, i, v.size)
	}
	_, err := v.insert(i, 1, elem.Value(x))
	return err
}

// Erase removes the element at pos and returns a cursor to the element that
// followed it.
func (v *Vector[T]) Erase(pos Cursor[T]) (Cursor[T], error) {
	off := v.offsetOf(pos)
	if off == v.size {
		panic("vec: Erase at end")
	}
	return v.erase(off, 1)
}

// EraseRange removes [first, last) and returns a cursor to the element that
// followed the range.
func (v *Vector[T]) EraseRange(first, last Cursor[T]) (Cursor[T], error) {
	from, to := v.offsetOf(first), v.offsetOf(last)
	if from > to {
		panic("vec: EraseRange with first after last")
	}
	return v.erase(from, to-from)
}

// EraseAt removes the element at index i, 0 <= i < Len.
func (v *Vector[T]) EraseAt(i int) error {
	if i < 0 || i >= v.size {
		return fmt.Errorf("%w: erase at %d, len %d", ErrOutOfRange, i, v.size)
	}
	_, err := v.erase(i, 1)
	return err
}

// Resize sets the size to n, destroying surplus elements or appending
// default-constructed ones. Growth reserves exactly n.
func (v *Vector[T]) Resize(n int) error {
	return v.resize(n, nil)
}

// ResizeWith is Resize, appending copies of x.
func (v *Vector[T]) ResizeWith(n int, x T) error {
	return v.resize(n, elem.Value(x))
}

func (v *Vector[T]) resize(n int, ctor elem.Ctor[T]) error {
	if err := v.checkLength(n); err != nil {
		return err
	}
	a := v.allocator()
	if n <= v.size {
		v.destroy(a, n, v.size)
		v.size = n
		v.gen++
		return nil
	}
	if err := v.Reserve(n); err != nil {
		return err
	}
	old := v.size
	for i := old; i < n; i++ {
		if err := a.Construct(&v.block[i], ctor); err != nil {
			clear(v.block[i : i+1])
			v.destroy(a, old, v.size)
			v.size = old
			v.gen++
			return fmt.Errorf("vec: construct element %d: %w", i, err)
		}
		v.size = i + 1
	}
	v.gen++
	return nil
}

// insert builds count elements with ctor at offset off, shifting the tail
// right. Growth happens first, so a growth failure leaves the vector
// unchanged. If a construction fails the tail is moved back, size keeps its
// previous value and the tail values are unspecified.
func (v *Vector[T]) insert(off, count int, ctor elem.Ctor[T]) (Cursor[T], error) {
	if count < 0 {
		return Cursor[T]{}, fmt.Errorf("%w: negative count %d", ErrLength, count)
	}
	if count == 0 {
		return v.cursor(off), nil
	}
	need, ok := buf.AddOverflowSafe(v.size, count)
	if !ok {
		return Cursor[T]{}, fmt.Errorf("%w: %d + %d overflows", ErrLength, v.size, count)
	}
	if err := v.grow(need); err != nil {
		return Cursor[T]{}, err
	}

	a := v.allocator()
	if err := v.openGap(a, off, count); err != nil {
		v.gen++
		return Cursor[T]{}, err
	}
	for k := range count {
		if err := a.Construct(&v.block[off+k], ctor); err != nil {
			clear(v.block[off+k : off+k+1])
			v.destroy(a, off, off+k)
			v.unshift(off, count, v.size)
			v.gen++
			return Cursor[T]{}, fmt.Errorf("vec: construct element %d: %w", off+k, err)
		}
	}
	v.size += count
	v.gen++
	return v.cursor(off), nil
}

// openGap shifts [off, size) right by count slots, leaving [off, off+count)
// raw. Capacity must already cover size+count.
func (v *Vector[T]) openGap(a alloc.Allocator[T], off, count int) error {
	end := v.size
	if off == end {
		return nil
	}
	b := v.block
	if elem.BulkRelocatable[T]() {
		if logger.Growth {
			logger.Debug("shift", "strategy", relocateBulk, "offset", off, "count", count, "size", end)
		}
		copy(b[off+count:end+count], b[off:end])
		clear(b[off:min(off+count, end)])
		return nil
	}
	if logger.Growth {
		logger.Debug("shift", "strategy", relocateMove, "offset", off, "count", count, "size", end)
	}

	var src *T
	moveInto := elem.Ctor[T](func(slot *T) error { return elem.Move(slot, src) })
	for i := end - 1; i >= off; i-- {
		src = &b[i]
		var err error
		if i+count >= end {
			err = a.Construct(&b[i+count], moveInto)
		} else {
			err = elem.MoveAssign(&b[i+count], src)
		}
		if err != nil {
			// [i+1, end) already sits at [i+1+count, end+count)
			if i+count >= end {
				clear(b[i+count : i+count+1])
			}
			v.destroy(a, i+1, min(i+1+count, end))
			v.unshift(i+1, count, end)
			return fmt.Errorf("vec: shift element %d: %w", i, err)
		}
	}
	v.destroy(a, off, min(off+count, end))
	return nil
}

// unshift copies the elements parked at [from+count, end+count) back to
// [from, end) and zeroes the slots left behind. No hooks run.
func (v *Vector[T]) unshift(from, count, end int) {
	b := v.block
	copy(b[from:end], b[from+count:end+count])
	clear(b[max(end, from+count) : end+count])
}

// erase removes count elements at off by shifting the tail left. If a move
// fails the size is unchanged and the values in the shifted range are
// unspecified.
func (v *Vector[T]) erase(off, count int) (Cursor[T], error) {
	if count == 0 {
		return v.cursor(off), nil
	}
	a := v.allocator()
	b := v.block
	end := v.size
	if elem.BulkRelocatable[T]() {
		v.destroy(a, off, off+count)
		copy(b[off:], b[off+count:end])
		clear(b[end-count : end])
	} else {
		for i := off; i+count < end; i++ {
			if err := elem.MoveAssign(&b[i], &b[i+count]); err != nil {
				v.gen++
				return Cursor[T]{}, fmt.Errorf("vec: shift element %d: %w", i+count, err)
			}
		}
		v.destroy(a, end-count, end)
	}
	v.size -= count
	v.gen++
	return v.cursor(off), nil
}
