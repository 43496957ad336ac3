package vec

// ReverseCursor walks a block backwards. It addresses the element just
// before its base cursor, so RBegin's base is End.
type ReverseCursor[T any] struct {
	base Cursor[T]
}

// ConstReverseCursor is a ReverseCursor that only reads.
type ConstReverseCursor[T any] struct {
	base ConstCursor[T]
}

// Base returns the underlying forward cursor, one position after the
// element r addresses.
func (r ReverseCursor[T]) Base() Cursor[T] { return r.base }

// Ptr returns a pointer to the element at r.
func (r ReverseCursor[T]) Ptr() *T { return r.base.At(-1) }

// Get returns the element at r.
func (r ReverseCursor[T]) Get() T { return *r.base.At(-1) }

// Set overwrites the element at r without running hooks.
func (r ReverseCursor[T]) Set(x T) { *r.base.At(-1) = x }

// At returns a pointer to the element n positions after r, walking backwards.
func (r ReverseCursor[T]) At(n int) *T { return r.base.At(-1 - n) }

// Inc steps r one element toward the front and returns the new position.
func (r *ReverseCursor[T]) Inc() ReverseCursor[T] {
	r.base.off--
	return *r
}

// PostInc steps r one element toward the front and returns the old position.
func (r *ReverseCursor[T]) PostInc() ReverseCursor[T] {
	old := *r
	r.base.off--
	return old
}

// Dec steps r one element toward the back and returns the new position.
func (r *ReverseCursor[T]) Dec() ReverseCursor[T] {
	r.base.off++
	return *r
}

// PostDec steps r one element toward the back and returns the old position.
func (r *ReverseCursor[T]) PostDec() ReverseCursor[T] {
	old := *r
	r.base.off++
	return old
}

// Advance steps r n elements toward the front and returns the new position.
func (r *ReverseCursor[T]) Advance(n int) ReverseCursor[T] {
	r.base.off -= n
	return *r
}

// Retreat steps r n elements toward the back and returns the new position.
func (r *ReverseCursor[T]) Retreat(n int) ReverseCursor[T] {
	r.base.off += n
	return *r
}

// Add returns the reverse cursor n steps past r.
func (r ReverseCursor[T]) Add(n int) ReverseCursor[T] {
	r.base.off -= n
	return r
}

// Sub returns the reverse cursor n steps before r.
func (r ReverseCursor[T]) Sub(n int) ReverseCursor[T] {
	r.base.off += n
	return r
}

// Diff returns the signed distance r - o in reverse order.
func (r ReverseCursor[T]) Diff(o ReverseCursor[T]) int { return o.base.Diff(r.base) }

// Equal reports whether r and o address the same position of the same block.
func (r ReverseCursor[T]) Equal(o ReverseCursor[T]) bool { return r.base.Equal(o.base) }

// Compare orders r and o in reverse order.
func (r ReverseCursor[T]) Compare(o ReverseCursor[T]) int { return o.base.Compare(r.base) }

// Less reports whether r comes before o in reverse order.
func (r ReverseCursor[T]) Less(o ReverseCursor[T]) bool { return r.Compare(o) < 0 }
// LessEqual reports whether r does not come after o in reverse order.
func (r ReverseCursor[T]) LessEqual(o ReverseCursor[T]) bool { return r.Compare(o) <= 0 }
// Greater reports whether r comes after o in reverse order.
func (r ReverseCursor[T]) Greater(o ReverseCursor[T]) bool { return r.Compare(o) > 0 }
// GreaterEqual reports whether r does not come before o in reverse order.
func (r ReverseCursor[T]) GreaterEqual(o ReverseCursor[T]) bool { return r.Compare(o) >= 0 }

// Const converts r to a read-only reverse cursor.
func (r ReverseCursor[T]) Const() ConstReverseCursor[T] {
	return ConstReverseCursor[T]{base: r.base.Const()}
}

// Base returns the underlying forward cursor.
func (r ConstReverseCursor[T]) Base() ConstCursor[T] { return r.base }

// Get returns the element at r.
func (r ConstReverseCursor[T]) Get() T { return r.base.At(-1) }

// At returns the element n positions after r, walking backwards.
func (r ConstReverseCursor[T]) At(n int) T { return r.base.At(-1 - n) }

// Inc steps r one element toward the front and returns the new position.
func (r *ConstReverseCursor[T]) Inc() ConstReverseCursor[T] {
	r.base.off--
	return *r
}

// PostInc steps r one element toward the front and returns the old position.
func (r *ConstReverseCursor[T]) PostInc() ConstReverseCursor[T] {
	old := *r
	r.base.off--
	return old
}

// Dec steps r one element toward the back and returns the new position.
func (r *ConstReverseCursor[T]) Dec() ConstReverseCursor[T] {
	r.base.off++
	return *r
}

// PostDec steps r one element toward the back and returns the old position.
func (r *ConstReverseCursor[T]) PostDec() ConstReverseCursor[T] {
	old := *r
	r.base.off++
	return old
}

// Advance steps r n elements toward the front and returns the new position.
func (r *ConstReverseCursor[T]) Advance(n int) ConstReverseCursor[T] {
	r.base.off -= n
	return *r
}

// Retreat steps r n elements toward the back and returns the new position.
func (r *ConstReverseCursor[T]) Retreat(n int) ConstReverseCursor[T] {
	r.base.off += n
	return *r
}

// Add returns the reverse cursor n steps past r.
func (r ConstReverseCursor[T]) Add(n int) ConstReverseCursor[T] {
	r.base.off -= n
	return r
}

// Sub returns the reverse cursor n steps before r.
func (r ConstReverseCursor[T]) Sub(n int) ConstReverseCursor[T] {
	r.base.off += n
	return r
}

// Diff returns the signed distance r - o in reverse order.
func (r ConstReverseCursor[T]) Diff(o ConstReverseCursor[T]) int { return o.base.Diff(r.base) }

// Equal reports whether r and o address the same position of the same block.
func (r ConstReverseCursor[T]) Equal(o ConstReverseCursor[T]) bool { return r.base.Equal(o.base) }

// Compare orders r and o in reverse order.
func (r ConstReverseCursor[T]) Compare(o ConstReverseCursor[T]) int { return o.base.Compare(r.base) }

// Less reports whether r comes before o in reverse order.
func (r ConstReverseCursor[T]) Less(o ConstReverseCursor[T]) bool { return r.Compare(o) < 0 }
// LessEqual reports whether r does not come after o in reverse order.
func (r ConstReverseCursor[T]) LessEqual(o ConstReverseCursor[T]) bool { return r.Compare(o) <= 0 }
// Greater reports whether r comes after o in reverse order.
func (r ConstReverseCursor[T]) Greater(o ConstReverseCursor[T]) bool { return r.Compare(o) > 0 }
// GreaterEqual reports whether r does not come before o in reverse order.
func (r ConstReverseCursor[T]) GreaterEqual(o ConstReverseCursor[T]) bool {
	return r.Compare(o) >= 0
}
