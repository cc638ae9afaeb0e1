package output

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllJoinsValuesAndSecrecy(t *testing.T) {
	ctx := context.Background()

	secretOne, err := Secret(ctx, 1)
	require.NoError(t, err)

	all, err := All(ctx, []any{secretOne, 2, 3})
	require.NoError(t, err)

	v, err := all.Value(ctx)
	require.NoError(t, err)
	assert.Equal(t, []any{1, 2, 3}, v)

	secret, err := all.IsSecret(ctx)
	require.NoError(t, err)
	assert.True(t, secret)
}

func TestAllMap(t *testing.T) {
	ctx := context.Background()

	m, err := AllMap(ctx, map[string]any{"a": 1, "b": 2})
	require.NoError(t, err)

	v, err := m.Value(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": 1, "b": 2}, v)
}

func TestConcat(t *testing.T) {
	ctx := context.Background()

	c, err := Concat(ctx, []any{"hello-", "world", "-", 42})
	require.NoError(t, err)

	v, err := c.Value(ctx)
	require.NoError(t, err)
	assert.Equal(t, "hello-world-42", v)
}

func TestJSONStringifyAndParse(t *testing.T) {
	ctx := context.Background()

	j, err := JSONStringify(ctx, map[string]any{"a": 1.0})
	require.NoError(t, err)

	s, err := j.Value(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, s.(string))

	parsed, err := JSONParse(ctx, s)
	require.NoError(t, err)
	v, err := parsed.Value(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": 1.0}, v)
}

func TestSecretUnsecretRoundTrip(t *testing.T) {
	ctx := context.Background()

	s, err := Secret(ctx, "top secret")
	require.NoError(t, err)
	secret, err := s.IsSecret(ctx)
	require.NoError(t, err)
	assert.True(t, secret)

	u, err := Unsecret(ctx, s)
	require.NoError(t, err)
	secret, err = u.IsSecret(ctx)
	require.NoError(t, err)
	assert.False(t, secret)

	v, err := u.Value(ctx)
	require.NoError(t, err)
	assert.Equal(t, "top secret", v)
}

func TestIsSecretCombinator(t *testing.T) {
	ctx := context.Background()

	s, err := Secret(ctx, "shh")
	require.NoError(t, err)
	secret, err := IsSecret(ctx, s)
	require.NoError(t, err)
	assert.True(t, secret)

	secret, err = IsSecret(ctx, "plain")
	require.NoError(t, err)
	assert.False(t, secret)
}
