package alloc

import (
	"errors"
	"fmt"
	"reflect"
	"unsafe"

	"github.com/joshuapare/veckit/internal/buf"
	"github.com/joshuapare/veckit/internal/logger"
	"github.com/joshuapare/veckit/internal/mmfile"
	"github.com/joshuapare/veckit/vec/elem"
)

// Mmap allocates every block as its own anonymous memory mapping, outside the
// Go heap. Only pointer-free element types are accepted: the garbage
// collector does not scan mapped memory.
//
// Deallocate unmaps the block immediately. Cursors or slices still referring
// to a released block fault when dereferenced.
type Mmap[T any] struct {
	cfg      config
	elemSize int
	regions  map[*T]region
	stats    Stats
}

type region struct {
	bytes int
	unmap func() error
}

// NewMmap creates a mapping allocator for T.
func NewMmap[T any](opts ...Option) (*Mmap[T], error) {
	if !elem.PointerFree[T]() {
		return nil, fmt.Errorf("%w: %s", ErrPointerElem, reflect.TypeFor[T]())
	}
	var zero T
	return &Mmap[T]{
		cfg:      newConfig(opts),
		elemSize: int(unsafe.Sizeof(zero)),
		regions:  make(map[*T]region),
	}, nil
}

// Allocate maps a page-aligned region large enough for n slots.
func (m *Mmap[T]) Allocate(n int) ([]T, error) {
	if n < 0 || n > m.MaxSize() {
		m.stats.Failed++
		return nil, fmt.Errorf("%w: %d slots", ErrNoSpace, n)
	}
	if n == 0 {
		return nil, nil
	}
	if m.cfg.limit > 0 && m.stats.LiveSlots+n > m.cfg.limit {
		m.stats.Failed++
		return nil, fmt.Errorf("%w: %d slots requested, %d of %d in use",
			ErrNoSpace, n, m.stats.LiveSlots, m.cfg.limit)
	}
	if m.elemSize == 0 {
		m.stats.AllocCalls++
		m.stats.LiveSlots += n
		return make([]T, n), nil
	}

	size, err := buf.BlockBytes(n, m.elemSize)
	if err != nil {
		m.stats.Failed++
		return nil, fmt.Errorf("%w: %w", ErrNoSpace, err)
	}
	size, ok := buf.AlignUp(size, mmfile.PageSize())
	if !ok {
		m.stats.Failed++
		return nil, fmt.Errorf("%w: %d slots overflow page rounding", ErrNoSpace, n)
	}
	data, unmap, err := mmfile.MapAnon(size)
	if err != nil {
		m.stats.Failed++
		return nil, fmt.Errorf("%w: %w", ErrNoSpace, err)
	}

	block := unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(data))), n)
	m.regions[&block[0]] = region{bytes: size, unmap: unmap}
	m.stats.AllocCalls++
	m.stats.LiveSlots += n
	m.stats.MappedBytes += size
	if logger.Alloc {
		logger.Debug("mmap map", "slots", n, "bytes", size, "mapped", mmfile.Mapped)
	}
	return block, nil
}

// Deallocate unmaps the block. Blocks this allocator did not hand out are
// logged and ignored.
func (m *Mmap[T]) Deallocate(block []T) {
	if len(block) == 0 {
		return
	}
	if m.elemSize == 0 {
		m.stats.FreeCalls++
		m.stats.LiveSlots -= len(block)
		return
	}
	key := &block[0]
	r, ok := m.regions[key]
	if !ok {
		logger.Warn("mmap release", "error", ErrBadBlock, "slots", len(block))
		return
	}
	delete(m.regions, key)
	m.stats.FreeCalls++
	m.stats.LiveSlots -= len(block)
	m.stats.MappedBytes -= r.bytes
	if err := r.unmap(); err != nil {
		logger.Warn("mmap unmap", "error", err, "bytes", r.bytes)
		return
	}
	if logger.Alloc {
		logger.Debug("mmap unmap", "slots", len(block), "bytes", r.bytes)
	}
}

// Close unmaps every outstanding block. Vectors still using this allocator
// must not be touched afterwards.
func (m *Mmap[T]) Close() error {
	var errs []error
	for key, r := range m.regions {
		if err := r.unmap(); err != nil {
			errs = append(errs, err)
		}
		delete(m.regions, key)
	}
	m.stats.LiveSlots = 0
	m.stats.MappedBytes = 0
	return errors.Join(errs...)
}

// Construct builds a value in slot.
func (m *Mmap[T]) Construct(slot *T, ctor elem.Ctor[T]) error {
	return elem.Construct(slot, ctor)
}

// Destroy destroys the value in slot.
func (m *Mmap[T]) Destroy(slot *T) {
	elem.Destroy(slot)
}

// MaxSize is the largest slot count whose byte size fits in an int.
func (m *Mmap[T]) MaxSize() int {
	n := buf.MaxCount(m.elemSize)
	if m.cfg.limit > 0 && m.cfg.limit < n {
		return m.cfg.limit
	}
	return n
}

// Equal reports whether other is this allocator.
func (m *Mmap[T]) Equal(other Allocator[T]) bool {
	o, ok := other.(*Mmap[T])
	return ok && o == m
}

// Propagation returns the policy configured with WithPropagation.
func (m *Mmap[T]) Propagation() Propagation {
	return m.cfg.prop
}

// Stats returns a snapshot of the allocator counters.
func (m *Mmap[T]) Stats() Stats {
	return m.stats
}
