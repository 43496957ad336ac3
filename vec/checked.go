package vec

import "fmt"

// Checked is a cursor that detects use after a structural modification of
// its vector. Every operation that may move or drop elements (growth,
// insertion, erasure, assignment, Clear, Swap) invalidates it.
type Checked[T any] struct {
	v   *Vector[T]
	off int
	gen uint64
}

// CheckedBegin returns a checked cursor to the first element.
func (v *Vector[T]) CheckedBegin() Checked[T] {
	return Checked[T]{v: v, gen: v.gen}
}

// CheckedAt returns a checked cursor to index i, 0 <= i <= Len.
func (v *Vector[T]) CheckedAt(i int) (Checked[T], error) {
	if i < 0 || i > v.size {
		return Checked[T]{}, fmt.Errorf("%w: cursor at %d, len %d", ErrOutOfRange, i, v.size)
	}
	return Checked[T]{v: v, off: i, gen: v.gen}, nil
}

// Valid reports whether the vector has not been modified since c was made.
func (c Checked[T]) Valid() bool {
	return c.v != nil && c.v.gen == c.gen
}

func (c Checked[T]) check() error {
	if !c.Valid() {
		return ErrStaleCursor
	}
	if c.off < 0 || c.off >= c.v.size {
		return fmt.Errorf("%w: cursor at %d, len %d", ErrOutOfRange, c.off, c.v.size)
	}
	return nil
}

// Get returns the element at c.
func (c Checked[T]) Get() (T, error) {
	if err := c.check(); err != nil {
		var zero T
		return zero, err
	}
	return c.v.block[c.off], nil
}

// Ptr returns a pointer to the element at c.
func (c Checked[T]) Ptr() (*T, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	return &c.v.block[c.off], nil
}

// Set overwrites the element at c without running hooks.
func (c Checked[T]) Set(x T) error {
	if err := c.check(); err != nil {
		return err
	}
	c.v.block[c.off] = x
	return nil
}

// Next returns the cursor one position after c.
func (c Checked[T]) Next() Checked[T] { return c.Add(1) }

// Prev returns the cursor one position before c.
func (c Checked[T]) Prev() Checked[T] { return c.Add(-1) }

// Add returns the cursor n positions after c. Range is checked on access.
func (c Checked[T]) Add(n int) Checked[T] {
	c.off += n
	return c
}

// Offset returns the index c addresses.
func (c Checked[T]) Offset() int { return c.off }

// AtEnd reports whether c is at or past the last element.
func (c Checked[T]) AtEnd() bool {
	return c.v == nil || c.off >= c.v.size
}

// Unchecked converts c to a plain cursor if it is still valid.
func (c Checked[T]) Unchecked() (Cursor[T], error) {
	if !c.Valid() {
		return Cursor[T]{}, ErrStaleCursor
	}
	return c.v.cursor(c.off), nil
}
