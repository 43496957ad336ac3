package vec

import "cmp"

// Cursor is a random-access position within a vector's block. It is a plain
// value: copying it is cheap, and it is invalidated by any reallocation of
// the vector it came from. Dereferencing is valid for offsets in [0, Len).
type Cursor[T any] struct {
	block []T
	off   int
}

// ConstCursor is a Cursor that only reads.
type ConstCursor[T any] struct {
	block []T
	off   int
}

// sameBlock reports whether a and b share their first slot. Blocks with no
// capacity are equal to each other only.
func sameBlock[T any](a, b []T) bool {
	if cap(a) == 0 || cap(b) == 0 {
		return cap(a) == cap(b)
	}
	return &a[:1][0] == &b[:1][0]
}

func mustSameBlock[T any](a, b []T) {
	if !sameBlock(a, b) {
		panic("vec: cursors from different blocks")
	}
}

// Begin returns a cursor to the first element.
func (v *Vector[T]) Begin() Cursor[T] { return v.cursor(0) }

// End returns a cursor one past the last element.
func (v *Vector[T]) End() Cursor[T] { return v.cursor(v.size) }

// CBegin returns a read-only cursor to the first element.
func (v *Vector[T]) CBegin() ConstCursor[T] { return v.Begin().Const() }

// CEnd returns a read-only cursor one past the last element.
func (v *Vector[T]) CEnd() ConstCursor[T] { return v.End().Const() }

// RBegin returns a reverse cursor to the last element.
func (v *Vector[T]) RBegin() ReverseCursor[T] { return ReverseCursor[T]{base: v.End()} }

// REnd returns a reverse cursor one before the first element.
func (v *Vector[T]) REnd() ReverseCursor[T] { return ReverseCursor[T]{base: v.Begin()} }

// CRBegin returns a read-only reverse cursor to the last element.
func (v *Vector[T]) CRBegin() ConstReverseCursor[T] { return ConstReverseCursor[T]{base: v.CEnd()} }

// CREnd returns a read-only reverse cursor one before the first element.
func (v *Vector[T]) CREnd() ConstReverseCursor[T] { return ConstReverseCursor[T]{base: v.CBegin()} }

func (v *Vector[T]) cursor(off int) Cursor[T] {
	return Cursor[T]{block: v.block, off: off}
}

// offsetOf returns pos's offset, panicking if pos does not address a
// position in [0, Len] of v's current block.
func (v *Vector[T]) offsetOf(pos Cursor[T]) int {
	if !sameBlock(pos.block, v.block) || pos.off < 0 || pos.off > v.size {
		panic("vec: cursor does not address this vector")
	}
	return pos.off
}

// Ptr returns a pointer to the element at c.
func (c Cursor[T]) Ptr() *T { return &c.block[c.off] }

// Get returns the element at c.
func (c Cursor[T]) Get() T { return c.block[c.off] }

// Set overwrites the element at c without running hooks.
func (c Cursor[T]) Set(x T) { c.block[c.off] = x }

// At returns a pointer to the element n positions after c.
func (c Cursor[T]) At(n int) *T { return &c.block[c.off+n] }

// Inc advances c by one and returns the new position.
func (c *Cursor[T]) Inc() Cursor[T] {
	c.off++
	return *c
}

// PostInc advances c by one and returns the old position.
func (c *Cursor[T]) PostInc() Cursor[T] {
	old := *c
	c.off++
	return old
}

// Dec moves c back by one and returns the new position.
func (c *Cursor[T]) Dec() Cursor[T] {
	c.off--
	return *c
}

// PostDec moves c back by one and returns the old position.
func (c *Cursor[T]) PostDec() Cursor[T] {
	old := *c
	c.off--
	return old
}

// Advance moves c forward by n and returns the new position.
func (c *Cursor[T]) Advance(n int) Cursor[T] {
	c.off += n
	return *c
}

// Retreat moves c back by n and returns the new position.
func (c *Cursor[T]) Retreat(n int) Cursor[T] {
	c.off -= n
	return *c
}

// Add returns the cursor n positions after c.
func (c Cursor[T]) Add(n int) Cursor[T] {
	c.off += n
	return c
}

// Sub returns the cursor n positions before c.
func (c Cursor[T]) Sub(n int) Cursor[T] {
	c.off -= n
	return c
}

// Diff returns the signed distance c - o.
func (c Cursor[T]) Diff(o Cursor[T]) int {
	mustSameBlock(c.block, o.block)
	return c.off - o.off
}

// Equal reports whether c and o address the same position of the same block.
func (c Cursor[T]) Equal(o Cursor[T]) bool {
	return c.off == o.off && sameBlock(c.block, o.block)
}

// Compare returns -1, 0 or +1 as c is before, at or after o.
func (c Cursor[T]) Compare(o Cursor[T]) int {
	mustSameBlock(c.block, o.block)
	return cmp.Compare(c.off, o.off)
}

// Less reports whether c is before o.
func (c Cursor[T]) Less(o Cursor[T]) bool { return c.Compare(o) < 0 }
// LessEqual reports whether c is not after o.
func (c Cursor[T]) LessEqual(o Cursor[T]) bool { return c.Compare(o) <= 0 }
// Greater reports whether c is after o.
func (c Cursor[T]) Greater(o Cursor[T]) bool { return c.Compare(o) > 0 }
// GreaterEqual reports whether c is not before o.
func (c Cursor[T]) GreaterEqual(o Cursor[T]) bool { return c.Compare(o) >= 0 }

// Offset returns the index c addresses.
func (c Cursor[T]) Offset() int { return c.off }

// Const converts c to a read-only cursor.
func (c Cursor[T]) Const() ConstCursor[T] { return ConstCursor[T]{block: c.block, off: c.off} }

// Get returns the element at c.
func (c ConstCursor[T]) Get() T { return c.block[c.off] }

// At returns the element n positions after c.
func (c ConstCursor[T]) At(n int) T { return c.block[c.off+n] }

func (c ConstCursor[T]) ptr(n int) *T { return &c.block[c.off+n] }

// Inc advances c by one and returns the new position.
func (c *ConstCursor[T]) Inc() ConstCursor[T] {
	c.off++
	return *c
}

// PostInc advances c by one and returns the old position.
func (c *ConstCursor[T]) PostInc() ConstCursor[T] {
	old := *c
	c.off++
	return old
}

// Dec moves c back by one and returns the new position.
func (c *ConstCursor[T]) Dec() ConstCursor[T] {
	c.off--
	return *c
}

// PostDec moves c back by one and returns the old position.
func (c *ConstCursor[T]) PostDec() ConstCursor[T] {
	old := *c
	c.off--
	return old
}

// Advance moves c forward by n and returns the new position.
func (c *ConstCursor[T]) Advance(n int) ConstCursor[T] {
	c.off += n
	return *c
}

// Retreat moves c back by n and returns the new position.
func (c *ConstCursor[T]) Retreat(n int) ConstCursor[T] {
	c.off -= n
	return *c
}

// Add returns the cursor n positions after c.
func (c ConstCursor[T]) Add(n int) ConstCursor[T] {
	c.off += n
	return c
}

// Sub returns the cursor n positions before c.
func (c ConstCursor[T]) Sub(n int) ConstCursor[T] {
	c.off -= n
	return c
}

// Diff returns the signed distance c - o.
func (c ConstCursor[T]) Diff(o ConstCursor[T]) int {
	mustSameBlock(c.block, o.block)
	return c.off - o.off
}

// Equal reports whether c and o address the same position of the same block.
func (c ConstCursor[T]) Equal(o ConstCursor[T]) bool {
	return c.off == o.off && sameBlock(c.block, o.block)
}

// Compare returns -1, 0 or +1 as c is before, at or after o.
func (c ConstCursor[T]) Compare(o ConstCursor[T]) int {
	mustSameBlock(c.block, o.block)
	return cmp.Compare(c.off, o.off)
}

// Less reports whether c is before o.
func (c ConstCursor[T]) Less(o ConstCursor[T]) bool { return c.Compare(o) < 0 }
// LessEqual reports whether c is not after o.
func (c ConstCursor[T]) LessEqual(o ConstCursor[T]) bool { return c.Compare(o) <= 0 }
// Greater reports whether c is after o.
func (c ConstCursor[T]) Greater(o ConstCursor[T]) bool { return c.Compare(o) > 0 }
// GreaterEqual reports whether c is not before o.
func (c ConstCursor[T]) GreaterEqual(o ConstCursor[T]) bool { return c.Compare(o) >= 0 }

// Offset returns the index c addresses.
func (c ConstCursor[T]) Offset() int { return c.off }
