package elem

// Initializer is implemented by element pointers that need default construction.
type Initializer interface {
	Init() error
}

// Copier is implemented by element pointers with a custom copy.
type Copier[T any] interface {
	CopyFrom(src *T) error
}

// Mover is implemented by element pointers whose move cannot fail.
type Mover[T any] interface {
	MoveFrom(src *T)
}

// FallibleMover is implemented by element pointers whose move may fail.
type FallibleMover[T any] interface {
	MoveFrom(src *T) error
}

// Destroyer is implemented by element pointers that release resources.
type Destroyer interface {
	Destroy()
}

// Init default-constructs the value in slot.
func Init[T any](slot *T) error {
	if in, ok := any(slot).(Initializer); ok {
		return in.Init()
	}
	var zero T
	*slot = zero
	return nil
}

// Copy copies *src into the raw slot dst.
func Copy[T any](dst, src *T) error {
	if c, ok := any(dst).(Copier[T]); ok {
		return c.CopyFrom(src)
	}
	*dst = *src
	return nil
}

// Move moves *src into the raw slot dst. With a move hook src stays live but
// unspecified; without one the value is transplanted and src is reset to the
// zero value.
func Move[T any](dst, src *T) error {
	switch m := any(dst).(type) {
	case Mover[T]:
		m.MoveFrom(src)
		return nil
	case FallibleMover[T]:
		return m.MoveFrom(src)
	}
	*dst = *src
	var zero T
	*src = zero
	return nil
}

// CopyAssign copies *src over the live value in dst.
func CopyAssign[T any](dst, src *T) error {
	if c, ok := any(dst).(Copier[T]); ok {
		return c.CopyFrom(src)
	}
	if d, ok := any(dst).(Destroyer); ok && dst != src {
		d.Destroy()
	}
	*dst = *src
	return nil
}

// MoveAssign moves *src over the live value in dst.
func MoveAssign[T any](dst, src *T) error {
	switch any(dst).(type) {
	case Mover[T], FallibleMover[T]:
		return Move(dst, src)
	}
	if dst == src {
		return nil
	}
	if d, ok := any(dst).(Destroyer); ok {
		d.Destroy()
	}
	return Move(dst, src)
}

// Destroy runs the destroy hook of slot, if any, and resets it to the zero value.
func Destroy[T any](slot *T) {
	if d, ok := any(slot).(Destroyer); ok {
		d.Destroy()
	}
	var zero T
	*slot = zero
}

// Construct builds a value in the raw slot using ctor, or default-constructs
// it when ctor is nil.
func Construct[T any](slot *T, ctor Ctor[T]) error {
	if ctor == nil {
		return Init(slot)
	}
	return ctor(slot)
}
