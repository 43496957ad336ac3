package alloc

import (
	"fmt"
	"math/bits"

	"github.com/joshuapare/veckit/internal/logger"
	"github.com/joshuapare/veckit/vec/elem"
)

// maxPooledClass is the largest size class kept on a free list (2^20 slots).
// Larger blocks are sized exactly and dropped on release.
const maxPooledClass = 20

// Pool is an identity-carrying allocator that recycles blocks through
// segregated free lists, one per power-of-two size class.
//
//	Class 0:        1 slot
//	Class 1:        2 slots
//	Class 2:        4 slots
//	...
//	Class 20: 1048576 slots (largest pooled class)
//
// A request for n slots is served from class ceil(log2(n)); the block handed
// out has len n and the class size as capacity. Released blocks are cleared
// before they are parked, so pooled memory never keeps old values reachable.
type Pool[T any] struct {
	heap     Heap[T]
	cfg      config
	freeList [maxPooledClass + 1][][]T
	stats    Stats
}

// NewPool creates an empty pool.
func NewPool[T any](opts ...Option) *Pool[T] {
	return &Pool[T]{cfg: newConfig(opts)}
}

// classOf returns the size class serving n slots, n >= 1.
func classOf(n int) int {
	return bits.Len(uint(n - 1))
}

// Allocate returns a block of n slots, reusing a pooled block when one is available.
func (p *Pool[T]) Allocate(n int) ([]T, error) {
	if n < 0 || n > p.MaxSize() {
		p.stats.Failed++
		return nil, fmt.Errorf("%w: %d slots", ErrNoSpace, n)
	}
	if n == 0 {
		return nil, nil
	}

	size := n
	sc := classOf(n)
	if sc <= maxPooledClass {
		size = 1 << sc
	}
	if p.cfg.limit > 0 && p.stats.LiveSlots+size > p.cfg.limit && p.stats.LiveSlots+n <= p.cfg.limit {
		// the rounded class would overshoot the limit; hand out an exact block
		size, sc = n, maxPooledClass+1
	}
	if p.cfg.limit > 0 && p.stats.LiveSlots+size > p.cfg.limit {
		p.stats.Failed++
		return nil, fmt.Errorf("%w: %d slots requested, %d of %d in use",
			ErrNoSpace, n, p.stats.LiveSlots, p.cfg.limit)
	}

	var blk []T
	if sc <= maxPooledClass {
		if list := p.freeList[sc]; len(list) > 0 {
			blk = list[len(list)-1]
			list[len(list)-1] = nil
			p.freeList[sc] = list[:len(list)-1]
			p.stats.Reused++
			p.stats.PooledSlots -= size
			if logger.Alloc {
				logger.Debug("pool reuse", "class", sc, "slots", n)
			}
		}
	}
	if blk == nil {
		blk = make([]T, size)
		if logger.Alloc {
			logger.Debug("pool fresh", "class", sc, "slots", n, "capacity", size)
		}
	}

	p.stats.AllocCalls++
	p.stats.LiveSlots += size
	return blk[:n], nil
}

// Deallocate clears the block and parks it on its class free list.
func (p *Pool[T]) Deallocate(block []T) {
	if cap(block) == 0 {
		return
	}
	full := block[:cap(block)]
	size := len(full)
	if size > p.stats.LiveSlots {
		logger.Warn("pool release", "error", ErrBadBlock, "slots", size, "live", p.stats.LiveSlots)
		return
	}
	clear(full)

	p.stats.FreeCalls++
	p.stats.LiveSlots -= size

	sc := classOf(size)
	if sc > maxPooledClass || 1<<sc != size {
		return
	}
	p.freeList[sc] = append(p.freeList[sc], full)
	p.stats.PooledSlots += size
}

// Drain drops every pooled block.
func (p *Pool[T]) Drain() {
	for sc := range p.freeList {
		clear(p.freeList[sc])
		p.freeList[sc] = nil
	}
	p.stats.PooledSlots = 0
}

// Construct builds a value in slot.
func (p *Pool[T]) Construct(slot *T, ctor elem.Ctor[T]) error {
	return elem.Construct(slot, ctor)
}

// Destroy destroys the value in slot.
func (p *Pool[T]) Destroy(slot *T) {
	elem.Destroy(slot)
}

// MaxSize is the largest slot count a single block can hold.
func (p *Pool[T]) MaxSize() int {
	m := p.heap.MaxSize()
	if p.cfg.limit > 0 && p.cfg.limit < m {
		return p.cfg.limit
	}
	return m
}

// Equal reports whether other is this pool.
func (p *Pool[T]) Equal(other Allocator[T]) bool {
	o, ok := other.(*Pool[T])
	return ok && o == p
}

// Propagation returns the policy configured with WithPropagation.
func (p *Pool[T]) Propagation() Propagation {
	return p.cfg.prop
}

// Stats returns a snapshot of the pool counters.
func (p *Pool[T]) Stats() Stats {
	return p.stats
}
