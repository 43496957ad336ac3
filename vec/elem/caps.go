package elem

import (
	"reflect"
	"sync"
)

// Caps summarizes what the vector engine may assume about an element type.
type Caps struct {
	// Bulk means blocks of T may be relocated with a single memory copy and
	// the old copies dropped without running any hook.
	Bulk bool
	// NothrowMove means moving a T cannot fail.
	NothrowMove bool
	// Copyable means T can be copied without consuming the source.
	Copyable bool
	// Destroy means *T implements Destroyer.
	Destroy bool
}

// relocatable is the static registration table for bulk relocation,
// keyed by reflect.Type.
var relocatable sync.Map

// RegisterRelocatable overrides the bulk-relocation default for T.
// Register a type with hooks as relocatable only if none of its hooks
// observe the element's address.
func RegisterRelocatable[T any](ok bool) {
	relocatable.Store(reflect.TypeFor[T](), ok)
}

// UnregisterRelocatable restores the default capability for T.
func UnregisterRelocatable[T any]() {
	relocatable.Delete(reflect.TypeFor[T]())
}

// CapsOf reports the capabilities of T.
func CapsOf[T any]() Caps {
	var p *T
	_, copier := any(p).(Copier[T])
	_, mover := any(p).(Mover[T])
	_, fallible := any(p).(FallibleMover[T])
	_, destroyer := any(p).(Destroyer)

	c := Caps{
		Bulk:        !(copier || mover || fallible || destroyer),
		NothrowMove: !fallible,
		Copyable:    copier || !fallible,
		Destroy:     destroyer,
	}
	if v, ok := relocatable.Load(reflect.TypeFor[T]()); ok {
		c.Bulk = v.(bool)
	}
	return c
}

// BulkRelocatable reports whether T may be relocated by memory copy.
func BulkRelocatable[T any]() bool {
	return CapsOf[T]().Bulk
}

// PointerFree reports whether T holds no Go pointers, so blocks of T may live
// in memory the garbage collector does not scan.
func PointerFree[T any]() bool {
	return pointerFree(reflect.TypeFor[T]())
}

func pointerFree(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return t.Len() == 0 || pointerFree(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if !pointerFree(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
