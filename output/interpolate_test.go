package output

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpolate(t *testing.T) {
	ctx := context.Background()

	out, err := Interpolate(ctx, "https://${host}:${port}/", map[string]any{
		"host": "example.com",
		"port": 8080,
	})
	require.NoError(t, err)

	v, err := out.Value(ctx)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com:8080/", v)
}

func TestInterpolateWithSecretArgIsSecret(t *testing.T) {
	ctx := context.Background()

	secretHost, err := Secret(ctx, "internal.example.com")
	require.NoError(t, err)

	out, err := Interpolate(ctx, "${host}", map[string]any{"host": secretHost})
	require.NoError(t, err)

	secret, err := out.IsSecret(ctx)
	require.NoError(t, err)
	assert.True(t, secret)
}

func TestInterpolateWithUnknownArgIsUnknown(t *testing.T) {
	ctx := context.Background()

	out, err := Interpolate(ctx, "${host}", map[string]any{"host": Unknown})
	require.NoError(t, err)

	known, err := out.IsKnown(ctx)
	require.NoError(t, err)
	assert.False(t, known)
}

func TestInterpolateParseError(t *testing.T) {
	ctx := context.Background()

	_, err := Interpolate(ctx, "${", nil)
	require.Error(t, err)
}
