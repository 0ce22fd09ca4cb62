package kv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	_, err := m.Get(ctx, "user")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, m.Set(ctx, "user", `{"_id":"u1"}`))
	val, err := m.Get(ctx, "user")
	require.NoError(t, err)
	assert.Equal(t, `{"_id":"u1"}`, val)

	// Overwrites are atomic replacements.
	require.NoError(t, m.Set(ctx, "user", `{"_id":"u2"}`))
	val, err = m.Get(ctx, "user")
	require.NoError(t, err)
	assert.Equal(t, `{"_id":"u2"}`, val)

	require.NoError(t, m.Remove(ctx, "user"))
	_, err = m.Get(ctx, "user")
	assert.ErrorIs(t, err, ErrNotFound)

	// Removing an absent key is not an error.
	require.NoError(t, m.Remove(ctx, "user"))
}
