package vec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecked_Stale(t *testing.T) {
	v := ints(t, 1, 2, 3)
	c := v.CheckedBegin()

	x, err := c.Next().Get()
	require.NoError(t, err)
	assert.Equal(t, 2, x)

	require.NoError(t, v.Set(0, 9), "element assignment is not structural")
	assert.True(t, c.Valid())

	require.NoError(t, v.PushBack(4))
	assert.False(t, c.Valid())
	_, err = c.Get()
	require.ErrorIs(t, err, ErrStaleCursor)
	require.ErrorIs(t, c.Set(0), ErrStaleCursor)
	_, err = c.Unchecked()
	require.ErrorIs(t, err, ErrStaleCursor)
}

func TestChecked_InvalidatedByEachMutation(t *testing.T) {
	mutations := map[string]func(v *Vector[int]){
		"pop":     func(v *Vector[int]) { v.PopBack() },
		"clear":   func(v *Vector[int]) { v.Clear() },
		"erase":   func(v *Vector[int]) { _ = v.EraseAt(0) },
		"insert":  func(v *Vector[int]) { _ = v.InsertAt(0, 1) },
		"resize":  func(v *Vector[int]) { _ = v.Resize(1) },
		"reserve": func(v *Vector[int]) { _ = v.Reserve(64) },
		"assign":  func(v *Vector[int]) { _ = v.AssignValues(1) },
		"swap":    func(v *Vector[int]) { _ = v.Swap(New[int]()) },
	}
	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			v := ints(t, 1, 2, 3)
			c := v.CheckedBegin()
			mutate(v)
			assert.False(t, c.Valid())
		})
	}
}

func TestChecked_Range(t *testing.T) {
	v := ints(t, 1, 2)
	_, err := v.CheckedAt(3)
	require.ErrorIs(t, err, ErrOutOfRange)

	end, err := v.CheckedAt(2)
	require.NoError(t, err)
	assert.True(t, end.AtEnd())
	_, err = end.Get()
	require.ErrorIs(t, err, ErrOutOfRange)

	c, err := end.Prev().Unchecked()
	require.NoError(t, err)
	assert.Equal(t, 2, c.Get())

	var sum int
	for c := v.CheckedBegin(); !c.AtEnd(); c = c.Next() {
		p, err := c.Ptr()
		require.NoError(t, err)
		sum += *p
	}
	assert.Equal(t, 3, sum)
}
