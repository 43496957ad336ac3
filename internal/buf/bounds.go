// Package buf holds the size arithmetic shared by the vector engine and its
// allocators. Every helper reports overflow instead of wrapping.
package buf

import (
	"fmt"
	"math"
)

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// MulOverflowSafe multiplies two non-negative counts, returning ok = false when
// the product would overflow int or either operand is negative.
func MulOverflowSafe(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}

// BlockBytes returns count*elemSize, the byte length of a block of count
// elements. It fails on negative input or overflow.
//
//	n, err := buf.BlockBytes(cap, int(unsafe.Sizeof(zero)))
//	if err != nil {
//	    return nil, fmt.Errorf("alloc: %w", err)
//	}
func BlockBytes(count, elemSize int) (int, error) {
	if count < 0 {
		return 0, fmt.Errorf("negative count: %d", count)
	}
	if elemSize < 0 {
		return 0, fmt.Errorf("negative element size: %d", elemSize)
	}
	total, ok := MulOverflowSafe(count, elemSize)
	if !ok {
		return 0, fmt.Errorf("overflow: count=%d * elemSize=%d", count, elemSize)
	}
	return total, nil
}

// MaxCount is the largest element count whose byte size still fits in an int.
// Zero-sized elements are bounded by math.MaxInt.
func MaxCount(elemSize int) int {
	if elemSize <= 0 {
		return math.MaxInt
	}
	return math.MaxInt / elemSize
}

// Double returns 2*n clamped to limit. Doubling never wraps: a result that
// would overflow int is clamped as well.
func Double(n, limit int) int {
	d, ok := AddOverflowSafe(n, n)
	if !ok || d > limit {
		return limit
	}
	return d
}

// AlignUp rounds n up to a multiple of align (a power of two).
func AlignUp(n, align int) (int, bool) {
	sum, ok := AddOverflowSafe(n, align-1)
	if !ok {
		return 0, false
	}
	return sum &^ (align - 1), true
}
