package elem

// Ctor builds a value in place. The slot it receives is raw: it holds the
// zero value of T and no hook has run on it yet.
type Ctor[T any] func(slot *T) error

// Value returns a constructor that copies v into the slot.
func Value[T any](v T) Ctor[T] {
	return func(slot *T) error {
		return Copy(slot, &v)
	}
}

// Default returns a constructor that default-constructs the slot.
func Default[T any]() Ctor[T] {
	return Init[T]
}

// CopyOf returns a constructor that copies *src into the slot.
func CopyOf[T any](src *T) Ctor[T] {
	return func(slot *T) error {
		return Copy(slot, src)
	}
}

// MoveOf returns a constructor that moves *src into the slot.
func MoveOf[T any](src *T) Ctor[T] {
	return func(slot *T) error {
		return Move(slot, src)
	}
}

// Func adapts an infallible builder.
func Func[T any](fn func(slot *T)) Ctor[T] {
	return func(slot *T) error {
		fn(slot)
		return nil
	}
}
