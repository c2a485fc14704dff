package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_Expiry(t *testing.T) {
	m := NewMemory()
	now := time.Unix(1000, 0)
	m.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "player", []byte("body"), time.Minute))

	v, err := m.Get(ctx, "player")
	require.NoError(t, err)
	assert.Equal(t, []byte("body"), v)

	now = now.Add(2 * time.Minute)
	_, err = m.Get(ctx, "player")
	assert.ErrorIs(t, err, ErrMiss)
	assert.Equal(t, 0, m.Len())
}

func TestMemory_ZeroTTLSkips(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "player", []byte("body"), 0))
	_, err := m.Get(ctx, "player")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestMemory_DeleteAndClose(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "a", []byte("1"), time.Minute))
	require.NoError(t, m.Set(ctx, "b", []byte("2"), time.Minute))

	require.NoError(t, m.Delete(ctx, "a"))
	_, err := m.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrMiss)

	require.NoError(t, m.Close())
	assert.Equal(t, 0, m.Len())
}
