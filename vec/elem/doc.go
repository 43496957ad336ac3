// Package elem describes how vector elements are built, copied, moved and
// destroyed.
//
// # Lifecycle Hooks
//
// Go values have no constructors or destructors, so an element type opts into
// lifecycle management by implementing hook interfaces on its pointer type:
//
//   - Initializer: default construction (Init() error)
//   - Copier[T]: copy construction and copy assignment (CopyFrom(src *T) error)
//   - Mover[T]: move that cannot fail (MoveFrom(src *T))
//   - FallibleMover[T]: move that may fail (MoveFrom(src *T) error)
//   - Destroyer: destruction (Destroy())
//
// A type without hooks is copied and moved by plain assignment, and
// destroying it resets the slot to the zero value.
//
// Hooks receive slots that are either raw (holding the zero value) or live.
// CopyFrom and MoveFrom on a live slot are assignments and must release
// whatever the slot held. Destroy runs on every slot that stops being live,
// including moved-from ones: a type moved without a move hook is transplanted
// and leaves the zero value behind, so Destroy must accept the zero value.
// Types that own resources through a Destroyer should also implement Copier,
// otherwise copies share those resources.
//
// # Capabilities
//
// CapsOf reports what the vector engine may assume about T. The important one
// is Bulk: a bulk-relocatable type can be transplanted to a new block by a
// single memory copy without running any hook. Types without copy, move or
// destroy hooks are bulk-relocatable; RegisterRelocatable overrides the
// default for a type.
//
// # Forwarding
//
// A Ctor[T] builds a value directly inside its destination slot, so emplace
// style operations never materialize a temporary:
//
//	v.EmplaceBack(func(p *Point) error {
//	    p.X, p.Y = 1, 2
//	    return nil
//	})
package elem
