package vec

import (
	"cmp"
	"slices"
)

// Sort sorts [first, last) in ascending order.
func Sort[T cmp.Ordered](first, last Cursor[T]) {
	SortFunc(first, last, cmp.Compare[T])
}

// SortFunc sorts [first, last) by cmp. Elements are swapped directly,
// without hooks.
func SortFunc[T any](first, last Cursor[T], cmp func(a, b T) int) {
	mustSameBlock(first.block, last.block)
	slices.SortFunc(first.block[first.off:last.off], cmp)
}

// Copy appends copies of the elements in [first, last) to dst. dst must
// not be the vector the range belongs to.
func Copy[T any](first, last ConstCursor[T], dst *Vector[T]) error {
	return CopyIf(first, last, dst, nil)
}

// CopyIf appends copies of the elements in [first, last) that satisfy pred
// to dst. A nil pred accepts every element.
func CopyIf[T any](first, last ConstCursor[T], dst *Vector[T], pred func(T) bool) error {
	n := last.Diff(first)
	for i := range n {
		x := first.At(i)
		if pred != nil && !pred(x) {
			continue
		}
		if err := dst.PushBack(x); err != nil {
			return err
		}
	}
	return nil
}

// Equal reports whether a and b hold equal elements in the same order.
func Equal[T comparable](a, b *Vector[T]) bool {
	return slices.Equal(a.Data(), b.Data())
}

// EqualFunc is Equal with a custom comparison.
func EqualFunc[T, U any](a *Vector[T], b *Vector[U], eq func(T, U) bool) bool {
	return slices.EqualFunc(a.Data(), b.Data(), eq)
}
