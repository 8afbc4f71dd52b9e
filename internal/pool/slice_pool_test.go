package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetUint64Slice(t *testing.T) {
	t.Run("returns slice with correct size", func(t *testing.T) {
		slice, cleanup := GetUint64Slice(100)
		defer cleanup()

		require.Len(t, slice, 100)
		require.GreaterOrEqual(t, cap(slice), 100)
	})

	t.Run("zero size", func(t *testing.T) {
		slice, cleanup := GetUint64Slice(0)
		defer cleanup()

		require.Empty(t, slice)
	})

	t.Run("grows when capacity is insufficient", func(t *testing.T) {
		_, cleanup1 := GetUint64Slice(10)
		cleanup1()

		slice, cleanup2 := GetUint64Slice(1000)
		defer cleanup2()

		require.Len(t, slice, 1000)
	})
}
