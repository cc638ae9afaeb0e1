package promise

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellResolveThenAwait(t *testing.T) {
	c := New[int]()
	c.Resolve(7, nil)

	v, err := c.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestCellAwaitBeforeResolve(t *testing.T) {
	c := New[string]()

	var wg sync.WaitGroup
	results := make([]string, 4)
	wg.Add(len(results))
	for i := range results {
		go func(i int) {
			defer wg.Done()
			v, err := c.Await(context.Background())
			require.NoError(t, err)
			results[i] = v
		}(i)
	}

	time.Sleep(10 * time.Millisecond)
	c.Resolve("done", nil)
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, "done", r)
	}
}

func TestCellResolveTwicePanics(t *testing.T) {
	c := New[int]()
	c.Resolve(1, nil)
	assert.Panics(t, func() { c.Resolve(2, nil) })
}

func TestCellAwaitRespectsContext(t *testing.T) {
	c := New[int]()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()

	_, err := c.Await(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
