package vec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// requireInvariants checks the size/capacity/block relationship.
func requireInvariants[T any](t *testing.T, v *Vector[T]) {
	t.Helper()
	require.GreaterOrEqual(t, v.size, 0)
	require.LessOrEqual(t, v.size, len(v.block))
	require.Equal(t, v.block == nil, len(v.block) == 0, "block is nil iff capacity is 0")
	require.Equal(t, len(v.block), v.Cap())
}

func ints(t *testing.T, vals ...int) *Vector[int] {
	t.Helper()
	v, err := FromSlice(vals)
	require.NoError(t, err)
	return v
}

func pushAll(t *testing.T, v *Vector[int], vals ...int) {
	t.Helper()
	for _, x := range vals {
		require.NoError(t, v.PushBack(x))
	}
}
