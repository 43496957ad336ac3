package elem_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/veckit/internal/testutil"
	"github.com/joshuapare/veckit/vec/elem"
)

type point struct{ X, Y int }

type handle struct {
	ptr *int
}

func (h *handle) Destroy() {
	if h.ptr != nil {
		*h.ptr = 0
	}
}

func TestCapsOf(t *testing.T) {
	c := elem.CapsOf[point]()
	assert.Equal(t, elem.Caps{Bulk: true, NothrowMove: true, Copyable: true}, c)

	c = elem.CapsOf[testutil.Tracked]()
	assert.False(t, c.Bulk)
	assert.True(t, c.NothrowMove)
	assert.True(t, c.Copyable)
	assert.True(t, c.Destroy)

	c = elem.CapsOf[testutil.Flaky]()
	assert.False(t, c.Bulk)
	assert.False(t, c.NothrowMove)
	assert.True(t, c.Copyable)

	c = elem.CapsOf[handle]()
	assert.False(t, c.Bulk, "a destroy hook disables bulk relocation")
}

func TestRegisterRelocatable(t *testing.T) {
	require.False(t, elem.BulkRelocatable[handle]())
	elem.RegisterRelocatable[handle](true)
	assert.True(t, elem.BulkRelocatable[handle]())
	elem.UnregisterRelocatable[handle]()
	assert.False(t, elem.BulkRelocatable[handle]())

	elem.RegisterRelocatable[point](false)
	t.Cleanup(elem.UnregisterRelocatable[point])
	assert.False(t, elem.BulkRelocatable[point]())
}

func TestPointerFree(t *testing.T) {
	assert.True(t, elem.PointerFree[int64]())
	assert.True(t, elem.PointerFree[point]())
	assert.True(t, elem.PointerFree[[4]float32]())
	assert.False(t, elem.PointerFree[string]())
	assert.False(t, elem.PointerFree[handle]())
	assert.False(t, elem.PointerFree[[]int]())
}

func TestMove_TransplantsWithoutHook(t *testing.T) {
	n := 7
	src := handle{ptr: &n}
	var dst handle
	require.NoError(t, elem.Move(&dst, &src))
	assert.Same(t, &n, dst.ptr)
	assert.Nil(t, src.ptr, "source is reset to the zero value")

	elem.Destroy(&src)
	assert.Equal(t, 7, n, "destroying the moved-from value releases nothing")
}

func TestAssign_DestroysPreviousValue(t *testing.T) {
	a, b := 1, 2
	dst := handle{ptr: &a}
	src := handle{ptr: &b}

	require.NoError(t, elem.CopyAssign(&dst, &src))
	assert.Equal(t, 0, a, "old value destroyed")
	assert.Same(t, &b, dst.ptr)

	c := 3
	dst = handle{ptr: &c}
	require.NoError(t, elem.MoveAssign(&dst, &src))
	assert.Equal(t, 0, c)
	assert.Same(t, &b, dst.ptr)
	assert.Nil(t, src.ptr)

	require.NoError(t, elem.MoveAssign(&dst, &dst))
	assert.Same(t, &b, dst.ptr, "self move keeps the value")
}

func TestHooks_Tracked(t *testing.T) {
	c := &testutil.Counter{}
	proto := testutil.NewTracked(c, 5)

	var a, b testutil.Tracked
	require.NoError(t, elem.Copy(&a, &proto))
	require.NoError(t, elem.Move(&b, &a))
	assert.Equal(t, 5, b.ID)
	assert.Equal(t, -1, a.ID)
	assert.Equal(t, 1, c.Copies)
	assert.Equal(t, 1, c.Moves)
	assert.Equal(t, 2, c.Live)

	elem.Destroy(&a)
	elem.Destroy(&b)
	assert.Equal(t, 0, c.Live)
	assert.Equal(t, testutil.Tracked{}, b, "destroyed slot is raw")
}

func TestHooks_FallibleMove(t *testing.T) {
	src := testutil.Flaky{V: 1, Budget: testutil.Budget(0)}
	var dst testutil.Flaky
	require.ErrorIs(t, elem.Move(&dst, &src), testutil.ErrInjected)
	require.ErrorIs(t, elem.Copy(&dst, &src), testutil.ErrInjected)
}

func TestConstructors(t *testing.T) {
	var x point
	require.NoError(t, elem.Construct(&x, elem.Value(point{1, 2})))
	assert.Equal(t, point{1, 2}, x)

	require.NoError(t, elem.Construct(&x, nil))
	assert.Equal(t, point{}, x)

	src := point{3, 4}
	require.NoError(t, elem.CopyOf(&src)(&x))
	assert.Equal(t, src, x)

	require.NoError(t, elem.MoveOf(&src)(&x))
	assert.Equal(t, point{3, 4}, x)
	assert.Equal(t, point{}, src)

	require.NoError(t, elem.Func(func(p *point) { p.X = 9 })(&x))
	assert.Equal(t, 9, x.X)

	var tr testutil.Tracked
	require.NoError(t, elem.Default[testutil.Tracked]()(&tr))
	assert.True(t, tr.InPlace())
}
