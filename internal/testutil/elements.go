// Package testutil provides instrumented element types and allocators shared
// by the vec test suites.
package testutil

import "errors"

// ErrInjected is returned by hooks configured to fail.
var ErrInjected = errors.New("testutil: injected failure")

// Counter records lifecycle events of Tracked elements.
type Counter struct {
	Copies   int
	Moves    int
	Destroys int
	Live     int // elements built by a hook and not yet destroyed
}

// Tracked is an element that counts its lifecycle events and records its own
// address, so a relocation that bypasses the hooks is detectable.
type Tracked struct {
	ID    int
	C     *Counter
	self  *Tracked
	alive bool
}

// NewTracked returns a prototype value. It is not live itself; copies of it
// built by a vector are.
func NewTracked(c *Counter, id int) Tracked {
	return Tracked{ID: id, C: c}
}

// Init default-constructs t. Default-constructed elements are not counted.
func (t *Tracked) Init() error {
	t.self = t
	t.alive = true
	return nil
}

// CopyFrom copies src into t.
func (t *Tracked) CopyFrom(src *Tracked) error {
	t.adopt(src)
	if t.C != nil {
		t.C.Copies++
	}
	return nil
}

// MoveFrom moves src into t. src stays live with ID -1.
func (t *Tracked) MoveFrom(src *Tracked) {
	t.adopt(src)
	src.ID = -1
	if t.C != nil {
		t.C.Moves++
	}
}

func (t *Tracked) adopt(src *Tracked) {
	if !t.alive && src.C != nil {
		src.C.Live++
	}
	t.ID, t.C = src.ID, src.C
	t.self = t
	t.alive = true
}

// Destroy ends t's lifetime.
func (t *Tracked) Destroy() {
	if t.alive && t.C != nil {
		t.C.Live--
		t.C.Destroys++
	}
	t.alive = false
}

// InPlace reports whether t still lives at the address its last hook saw.
func (t *Tracked) InPlace() bool {
	return t.self == t
}

// Flaky is an element whose copies and moves draw from a shared budget and
// fail with ErrInjected once it is spent. A nil budget never fails.
type Flaky struct {
	V      int
	Budget *int
}

func (f *Flaky) spend(src *Flaky) error {
	if src.Budget == nil {
		return nil
	}
	if *src.Budget <= 0 {
		return ErrInjected
	}
	*src.Budget--
	return nil
}

// CopyFrom copies src into f.
func (f *Flaky) CopyFrom(src *Flaky) error {
	if err := f.spend(src); err != nil {
		return err
	}
	f.V, f.Budget = src.V, src.Budget
	return nil
}

// MoveFrom moves src into f. A move that may fail steers vectors to copy
// on growth.
func (f *Flaky) MoveFrom(src *Flaky) error {
	if err := f.spend(src); err != nil {
		return err
	}
	f.V, f.Budget = src.V, src.Budget
	return nil
}

// Budget returns a budget allowing n more copies or moves.
func Budget(n int) *int {
	return &n
}
