package alloc

import "errors"

var (
	// ErrNoSpace indicates that the allocator could not source a block.
	ErrNoSpace = errors.New("alloc: no space for block")

	// ErrPointerElem indicates an element type that holds Go pointers was
	// given to an allocator whose memory the garbage collector does not scan.
	ErrPointerElem = errors.New("alloc: element type contains pointers")

	// ErrBadBlock indicates a block that was not handed out by this allocator.
	// Deallocate never returns it; it is only logged.
	ErrBadBlock = errors.New("alloc: block not owned by allocator")
)
