package output

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiftScalar(t *testing.T) {
	ctx := context.Background()

	o, err := Lift(ctx, 42)
	require.NoError(t, err)

	v, err := o.Value(ctx)
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	known, err := o.IsKnown(ctx)
	require.NoError(t, err)
	assert.True(t, known)

	secret, err := o.IsSecret(ctx)
	require.NoError(t, err)
	assert.False(t, secret)
}

func TestLiftUnknown(t *testing.T) {
	ctx := context.Background()

	o, err := Lift(ctx, Unknown)
	require.NoError(t, err)

	known, err := o.IsKnown(ctx)
	require.NoError(t, err)
	assert.False(t, known)

	v, err := o.Value(ctx)
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestLiftAlreadyOutputIsReturnedAsIs(t *testing.T) {
	ctx := context.Background()

	o, err := Lift(ctx, 7)
	require.NoError(t, err)

	wrapped, err := Lift(ctx, o)
	require.NoError(t, err)
	assert.Same(t, o, wrapped)
}

func TestLiftArrayJoinsMetadata(t *testing.T) {
	ctx := context.Background()

	o, err := Lift(ctx, []any{1, Unknown, 3})
	require.NoError(t, err)

	known, err := o.IsKnown(ctx)
	require.NoError(t, err)
	assert.False(t, known, "array containing Unknown must itself be unknown")
}

func TestLiftSharedReferenceIsNotACycle(t *testing.T) {
	ctx := context.Background()

	a := []any{1, 2}
	b := []any{a, a}

	o, err := Lift(ctx, b)
	require.NoError(t, err)

	v, err := o.Value(ctx)
	require.NoError(t, err)
	assert.Equal(t, []any{[]any{1, 2}, []any{1, 2}}, v)
}

func TestLiftSelfReferenceIsASyncCycle(t *testing.T) {
	ctx := context.Background()

	a := make(map[string]any)
	a["self"] = a

	_, err := Lift(ctx, a)
	require.Error(t, err)
	require.IsType(t, &CircularStructureError{}, err)
	assert.Equal(t, []string{"self"}, err.(*CircularStructureError).Path)
}

func TestLiftPendingCycleIsSurfacedLazily(t *testing.T) {
	ctx := context.Background()

	a := make(map[string]any)
	ch := make(chan Settled, 1)
	a["self"] = FromChannel(ch)
	ch <- Settled{Value: a}

	o, err := Lift(ctx, a)
	require.NoError(t, err, "an async cycle must not be a synchronous error")

	_, err = o.Value(ctx)
	require.Error(t, err)
	var circErr *CircularStructureError
	assert.ErrorAs(t, err, &circErr)
}

func TestStringPanics(t *testing.T) {
	ctx := context.Background()
	o, err := Lift(ctx, "hi")
	require.NoError(t, err)

	assert.Panics(t, func() {
		_ = o.String()
	})
}

func TestLiftDeeplyNestedStructureMatchesExpectedShape(t *testing.T) {
	ctx := context.Background()

	input := map[string]any{
		"region": "us-east-1",
		"tags":   []any{"a", "b", map[string]any{"nested": true}},
	}

	o, err := Lift(ctx, input)
	require.NoError(t, err)

	v, err := o.Value(ctx)
	require.NoError(t, err)

	want := map[string]any{
		"region": "us-east-1",
		"tags":   []any{"a", "b", map[string]any{"nested": true}},
	}
	if diff := cmp.Diff(want, v); diff != "" {
		t.Errorf("lifted value mismatch (-want +got):\n%s", diff)
	}
}

func TestAsOutputRejectsUnrelatedValues(t *testing.T) {
	_, ok := AsOutput(42)
	assert.False(t, ok)

	_, ok = AsOutput(struct{ outputBrand string }{})
	assert.False(t, ok)
}
