package vec

import "errors"

var (
	// ErrOutOfRange indicates a checked access past the live elements.
	ErrOutOfRange = errors.New("vec: index out of range")

	// ErrLength indicates a requested size beyond MaxSize, or a negative size.
	ErrLength = errors.New("vec: length exceeds max size")

	// ErrAllocatorMismatch indicates a swap between vectors whose allocators
	// neither compare equal nor propagate on swap.
	ErrAllocatorMismatch = errors.New("vec: allocators are not interchangeable")

	// ErrStaleCursor indicates a checked cursor used after its vector was
	// structurally modified.
	ErrStaleCursor = errors.New("vec: cursor invalidated by modification")
)
