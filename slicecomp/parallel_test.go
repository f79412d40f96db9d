package slicecomp_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"comprehend/slicecomp"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestTryParallelMap(t *testing.T) {
	t.Run("MatchesSerialOnLargeInput", func(t *testing.T) {
		// Well above the serial-fallback threshold.
		input := make([]int, 10_000)
		for i := range input {
			input[i] = i
		}
		f := func(x int) (int, error) { return x*x - x, nil }

		want, err := slicecomp.TryMap(input, f)
		require.NoError(t, err)
		got, err := slicecomp.TryParallelMap(input, f)
		require.NoError(t, err)
		assert.Equal(t, want, got, "parallel evaluation must preserve order")
	})

	t.Run("SerialFallbackOnSmallInput", func(t *testing.T) {
		got, err := slicecomp.TryParallelMap([]int{1, 2, 3}, func(x int) (int, error) {
			return x + 1, nil
		})
		require.NoError(t, err)
		assert.Equal(t, []int{2, 3, 4}, got)
	})

	t.Run("ErrorStopsWorkers", func(t *testing.T) {
		input := make([]int, 10_000)
		for i := range input {
			input[i] = i
		}
		got, err := slicecomp.TryParallelMap(input, func(x int) (int, error) {
			if x == 7_777 {
				return 0, errBoom
			}
			return x, nil
		})
		require.ErrorIs(t, err, errBoom)
		assert.Nil(t, got)
	})

	t.Run("CanceledContext", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		got, err := slicecomp.TryParallelMapWithContext(ctx, []int{1, 2, 3}, func(x int) (int, error) {
			return x, nil
		})
		require.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, got)
	})

	t.Run("EmptyInput", func(t *testing.T) {
		got, err := slicecomp.TryParallelMap([]int{}, func(x int) (int, error) { return x, nil })
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Empty(t, got)
	})
}
