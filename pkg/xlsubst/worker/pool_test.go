package worker

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolExecuteKeepsInputOrder(t *testing.T) {
	pool := NewPool(3, func(ctx context.Context, n int) (int, error) {
		if n == 2 {
			return 0, errors.New("two")
		}
		return n * n, nil
	})

	results := pool.Execute(context.Background(), []int{1, 2, 3, 4})

	require.Len(t, results, 4)
	assert.Equal(t, 1, results[0].Result)
	assert.EqualError(t, results[1].Err, "two")
	assert.Equal(t, 9, results[2].Result)
	assert.Equal(t, 16, results[3].Result)
	assert.Equal(t, 4, results[3].Input)
}

func TestPoolExecuteCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pool := NewPool(0, func(ctx context.Context, n int) (int, error) {
		return n, nil
	})

	results := pool.Execute(ctx, []int{1, 2, 3})

	require.Len(t, results, 3)
	for i, r := range results {
		assert.Equal(t, i+1, r.Input)
		if r.Err != nil {
			assert.ErrorIs(t, r.Err, context.Canceled)
			continue
		}
		assert.Equal(t, r.Input, r.Result)
	}
}
