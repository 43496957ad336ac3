package vec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/veckit/internal/testutil"
	"github.com/joshuapare/veckit/vec/alloc"
)

func tracked(t *testing.T, a *testutil.Tracking[int], vals ...int) *Vector[int] {
	t.Helper()
	v, err := FromSlice(vals, WithAllocator[int](a))
	require.NoError(t, err)
	return v
}

func TestAssignValues(t *testing.T) {
	var v Vector[int]
	require.NoError(t, v.AssignValues(1, 2, 3, 4))
	assert.Equal(t, 4, v.Cap())

	require.NoError(t, v.AssignValues(7, 8, 9))
	assert.Equal(t, []int{7, 8, 9}, v.Data())
	assert.Equal(t, 4, v.Cap(), "capacity is reused")

	require.NoError(t, v.AssignValues(v.Data()[1:]...))
	assert.Equal(t, []int{8, 9}, v.Data())

	require.NoError(t, v.AssignValues())
	assert.True(t, v.Empty())
	requireInvariants(t, &v)
}

func TestCopyAssign_ReusesCapacity(t *testing.T) {
	v := ints(t, 1, 2)
	require.NoError(t, v.Reserve(10))
	src := ints(t, 5, 6, 7, 8, 9)

	require.NoError(t, v.CopyAssign(src))
	assert.Equal(t, []int{5, 6, 7, 8, 9}, v.Data())
	assert.Equal(t, 10, v.Cap())

	big := ints(t, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11)
	require.NoError(t, v.CopyAssign(big))
	assert.Equal(t, big.Data(), v.Data())
	assert.Equal(t, 11, v.Cap(), "reallocation is exact")

	require.NoError(t, v.CopyAssign(v))
	assert.Equal(t, 11, v.Len())
}

func TestCopyAssign_Propagates(t *testing.T) {
	own := testutil.NewTracking[int](alloc.Propagation{})
	theirs := testutil.NewTracking[int](alloc.PropagateAll)
	v := tracked(t, own, 1, 2, 3)
	src := tracked(t, theirs, 4, 5)

	require.NoError(t, v.CopyAssign(src))
	assert.Same(t, theirs, v.Allocator())
	assert.Equal(t, []int{4, 5}, v.Data())
	assert.Equal(t, 0, own.Outstanding, "old storage is released through the old allocator")
	assert.Equal(t, own.Constructs, own.Destroys)
	assert.Equal(t, 4, theirs.Outstanding)
}

func TestCopyAssign_NoPropagation(t *testing.T) {
	own := testutil.NewTracking[int](alloc.Propagation{})
	theirs := testutil.NewTracking[int](alloc.Propagation{})
	v := tracked(t, own, 1, 2, 3)
	src := tracked(t, theirs, 4, 5)

	require.NoError(t, v.CopyAssign(src))
	assert.Same(t, own, v.Allocator())
	assert.Equal(t, 3, v.Cap())
	assert.Equal(t, []int{4, 5}, v.Data())
}

func TestMoveAssign_EqualAllocatorsSteal(t *testing.T) {
	v := ints(t, 1)
	src := ints(t, 4, 5, 6)
	data := src.Data()

	require.NoError(t, v.MoveAssign(src))
	assert.Equal(t, []int{4, 5, 6}, v.Data())
	assert.Same(t, &data[0], &v.Data()[0])
	assert.Equal(t, 0, src.Len())
	assert.Equal(t, 0, src.Cap())
}

func TestMoveAssign_UnequalReallocates(t *testing.T) {
	own := testutil.NewTracking[int](alloc.Propagation{})
	theirs := testutil.NewTracking[int](alloc.Propagation{})
	v := tracked(t, own, 1)
	src := tracked(t, theirs, 4, 5, 6)

	require.NoError(t, v.MoveAssign(src))
	assert.Equal(t, []int{4, 5, 6}, v.Data())
	assert.Same(t, own, v.Allocator())
	assert.Equal(t, 3, v.Cap())
	assert.Equal(t, 3, own.Outstanding)

	assert.Equal(t, 0, src.Len(), "source is always emptied")
	assert.Equal(t, 3, src.Cap())
}

func TestMoveAssign_UnequalInPlace(t *testing.T) {
	own := testutil.NewTracking[int](alloc.Propagation{})
	theirs := testutil.NewTracking[int](alloc.Propagation{})
	v := tracked(t, own, 1, 2, 3, 4)
	src := tracked(t, theirs, 8, 9)
	allocs := own.Allocs

	require.NoError(t, v.MoveAssign(src))
	assert.Equal(t, []int{8, 9}, v.Data())
	assert.Equal(t, 4, v.Cap())
	assert.Equal(t, allocs, own.Allocs, "no reallocation")
	assert.True(t, src.Empty())
}

func TestMoveAssign_Propagates(t *testing.T) {
	own := testutil.NewTracking[int](alloc.Propagation{})
	theirs := testutil.NewTracking[int](alloc.Propagation{OnMoveAssign: true})
	v := tracked(t, own, 1, 2)
	src := tracked(t, theirs, 3)

	require.NoError(t, v.MoveAssign(src))
	assert.Same(t, theirs, v.Allocator())
	assert.Equal(t, []int{3}, v.Data())
	assert.Equal(t, 0, own.Outstanding)
	assert.Equal(t, 0, src.Cap())
}

func TestMoveAssign_TrackedBalance(t *testing.T) {
	c := &testutil.Counter{}
	own := testutil.NewTracking[testutil.Tracked](alloc.Propagation{})
	theirs := testutil.NewTracking[testutil.Tracked](alloc.Propagation{})
	v := New(WithAllocator[testutil.Tracked](own))
	src := New(WithAllocator[testutil.Tracked](theirs))
	for i := range 5 {
		require.NoError(t, v.PushBack(testutil.NewTracked(c, i)))
		require.NoError(t, src.PushBack(testutil.NewTracked(c, 10+i)))
	}
	require.NoError(t, src.PushBack(testutil.NewTracked(c, 15)))
	require.Equal(t, 11, c.Live)

	require.NoError(t, v.MoveAssign(src))
	assert.Equal(t, 6, c.Live)
	assert.Equal(t, 10, v.Ref(0).ID)
	assert.Equal(t, 15, v.Back().ID)

	v.Release()
	src.Release()
	assert.Equal(t, 0, c.Live)
}

func TestSwap(t *testing.T) {
	a := ints(t, 1, 2)
	b := ints(t, 3)
	require.NoError(t, a.Swap(b))
	assert.Equal(t, []int{3}, a.Data())
	assert.Equal(t, []int{1, 2}, b.Data())
	require.NoError(t, a.Swap(a))
}

func TestSwap_AllocatorMismatch(t *testing.T) {
	x := testutil.NewTracking[int](alloc.Propagation{})
	y := testutil.NewTracking[int](alloc.Propagation{})
	a := tracked(t, x, 1)
	b := tracked(t, y, 2)

	require.ErrorIs(t, a.Swap(b), ErrAllocatorMismatch)
	assert.Equal(t, []int{1}, a.Data())
	assert.Same(t, x, a.Allocator())

	y.Prop = alloc.Propagation{OnSwap: true}
	require.NoError(t, a.Swap(b))
	assert.Equal(t, []int{2}, a.Data())
	assert.Same(t, y, a.Allocator())
	assert.Same(t, x, b.Allocator())
}

func TestAssign_LengthFailureKeepsDestination(t *testing.T) {
	pool := alloc.NewPool[int](alloc.WithLimit(4))
	v, err := FromSlice([]int{1, 2, 3}, WithAllocator[int](pool))
	require.NoError(t, err)

	require.ErrorIs(t, v.CopyAssign(ints(t, 1, 2, 3, 4, 5, 6)), ErrLength)
	assert.Equal(t, []int{1, 2, 3}, v.Data())
	assert.Equal(t, 3, v.Cap())
	assert.Same(t, pool, v.Allocator())

	require.ErrorIs(t, v.AssignValues(1, 2, 3, 4, 5, 6), ErrLength)
	assert.Equal(t, []int{1, 2, 3}, v.Data())
	requireInvariants(t, v)
}

func TestAssign_AllocationFailureKeepsDestination(t *testing.T) {
	pool := alloc.NewPool[int](alloc.WithLimit(6))
	v, err := FromSlice([]int{1, 2, 3}, WithAllocator[int](pool))
	require.NoError(t, err)

	require.ErrorIs(t, v.AssignValues(5, 6, 7, 8, 9), alloc.ErrNoSpace)
	assert.Equal(t, []int{1, 2, 3}, v.Data())

	src := ints(t, 5, 6, 7, 8, 9)
	require.ErrorIs(t, v.CopyAssign(src), alloc.ErrNoSpace)
	assert.Equal(t, []int{1, 2, 3}, v.Data())

	require.ErrorIs(t, v.MoveAssign(src), alloc.ErrNoSpace)
	assert.Equal(t, []int{1, 2, 3}, v.Data())
	assert.Equal(t, []int{5, 6, 7, 8, 9}, src.Data(), "source is untouched")
	requireInvariants(t, v)
}

func TestCopyAssign_PropagationFailureKeepsAllocator(t *testing.T) {
	own := testutil.NewTracking[int](alloc.Propagation{})
	theirs := alloc.NewPool[int](alloc.WithLimit(4), alloc.WithPropagation(alloc.PropagateAll))
	v := tracked(t, own, 1, 2, 3)
	src, err := FromSlice([]int{7, 8, 9}, WithAllocator[int](theirs))
	require.NoError(t, err)

	require.ErrorIs(t, v.CopyAssign(src), alloc.ErrNoSpace)
	assert.Same(t, own, v.Allocator())
	assert.Equal(t, []int{1, 2, 3}, v.Data())
	assert.Equal(t, 3, own.Outstanding)
}

func TestScenario_AssignShorterListReusesStorage(t *testing.T) {
	var v Vector[float64]
	require.NoError(t, v.AssignValues(2.3, 2112, 1.32, -0.22))
	require.Equal(t, 4, v.Len())
	require.Equal(t, 4, v.Cap())
	first := &v.Data()[0]

	require.NoError(t, v.AssignValues(1, 2, 0.03333))
	assert.Equal(t, []float64{1, 2, 0.03333}, v.Data())
	assert.Equal(t, 4, v.Cap(), "no reallocation")
	assert.Same(t, first, &v.Data()[0])
	assert.Zero(t, v.block[3], "surplus slot is destroyed")

	c := &testutil.Counter{}
	tv := New[testutil.Tracked]()
	for i := range 4 {
		require.NoError(t, tv.PushBack(testutil.NewTracked(c, i)))
	}
	short := []testutil.Tracked{testutil.NewTracked(c, 10), testutil.NewTracked(c, 11), testutil.NewTracked(c, 12)}
	require.NoError(t, tv.AssignValues(short...))
	assert.Equal(t, 3, tv.Len())
	assert.Equal(t, 4, tv.Cap())
	assert.Equal(t, 3, c.Live, "surplus element is destroyed")
}
