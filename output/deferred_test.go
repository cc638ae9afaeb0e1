package output

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeferredResolveThenReadFields(t *testing.T) {
	ctx := context.Background()

	d := NewDeferred()
	o := DeferredOutput(d)

	src, err := Secret(ctx, map[string]any{"ready": true})
	require.NoError(t, err)
	srcImpl := src.(*impl)
	srcImpl.core.deps = NewResourceSet("res-a")

	require.NoError(t, d.Resolve(src))

	v, err := o.Value(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"ready": true}, v)

	known, err := o.IsKnown(ctx)
	require.NoError(t, err)
	assert.True(t, known)

	secret, err := o.IsSecret(ctx)
	require.NoError(t, err)
	assert.True(t, secret)

	allDeps, err := o.AllDeps(ctx)
	require.NoError(t, err)
	assert.True(t, allDeps.Contains("res-a"))
}

func TestDeferredSuspendsUntilResolved(t *testing.T) {
	ctx := context.Background()

	d := NewDeferred()
	o := DeferredOutput(d)

	var wg sync.WaitGroup
	var value any
	var valueErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		value, valueErr = o.Value(ctx)
	}()

	// Give the reader goroutine a chance to start suspending before Resolve,
	// so this test would hang (and time out) rather than pass trivially if
	// DeferredOutput ever stopped suspending.
	time.Sleep(10 * time.Millisecond)

	src, err := Lift(ctx, "arrived")
	require.NoError(t, err)
	require.NoError(t, d.Resolve(src))

	wg.Wait()
	require.NoError(t, valueErr)
	assert.Equal(t, "arrived", value)
}

func TestDeferredChainsToSourceViaApply(t *testing.T) {
	ctx := context.Background()
	SetDryRun(false)

	d := NewDeferred()
	o := DeferredOutput(d)

	doubled := o.Apply(ctx, func(ctx context.Context, v any) (any, error) {
		return v.(int) * 2, nil
	})

	src, err := Lift(ctx, 21)
	require.NoError(t, err)
	require.NoError(t, d.Resolve(src))

	v, err := doubled.Value(ctx)
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestDeferredDoubleResolveReturnsError(t *testing.T) {
	ctx := context.Background()

	d := NewDeferred()

	first, err := Lift(ctx, 1)
	require.NoError(t, err)
	require.NoError(t, d.Resolve(first))

	second, err := Lift(ctx, 2)
	require.NoError(t, err)
	err = d.Resolve(second)
	require.Error(t, err)
	assert.IsType(t, &DeferredAlreadyResolvedError{}, err)

	// The first Resolve wins; the rejected second one has no effect.
	o := DeferredOutput(d)
	v, err := o.Value(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestDeferredContextCancellationDuringSuspend(t *testing.T) {
	d := NewDeferred()
	o := DeferredOutput(d)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()

	_, err := o.Value(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
