package cache_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"gamestats/core/cache"
	"gamestats/core/metrics"

	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	logger := zap.NewNop()

	tests := []struct {
		driver string
		want   string
	}{
		{"", cache.DriverMemory},
		{"memory", cache.DriverMemory},
		{"none", cache.DriverNone},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			c, err := cache.New(cache.Config{Driver: tt.driver}, logger)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Name())
		})
	}

	t.Run("Unsupported", func(t *testing.T) {
		_, err := cache.New(cache.Config{Driver: "memcached"}, logger)
		assert.Error(t, err)
	})
}

func TestRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()

	c, err := cache.New(cache.Config{
		Driver:    cache.DriverRedis,
		RedisURL:  "redis://" + mr.Addr(),
		KeyPrefix: "test:",
	}, zap.NewNop())
	require.NoError(t, err)
	defer c.Close()

	assert.Equal(t, cache.DriverRedis, c.Name())

	_, err = c.Get(ctx, "pc/ninja")
	assert.ErrorIs(t, err, cache.ErrMiss)

	require.NoError(t, c.Set(ctx, "pc/ninja", []byte(`{"ok":true}`), time.Minute))
	assert.True(t, mr.Exists("test:pc/ninja"))

	v, err := c.Get(ctx, "pc/ninja")
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, string(v))

	mr.FastForward(2 * time.Minute)
	_, err = c.Get(ctx, "pc/ninja")
	assert.ErrorIs(t, err, cache.ErrMiss)

	require.NoError(t, c.Set(ctx, "pc/ninja", []byte("x"), time.Minute))
	require.NoError(t, c.Delete(ctx, "pc/ninja"))
	assert.False(t, mr.Exists("test:pc/ninja"))
}

func TestRedis_ConnectionFailure(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := cache.New(cache.Config{Driver: cache.DriverRedis, RedisURL: "redis://" + addr}, zap.NewNop())
	assert.Error(t, err)

	_, err = cache.New(cache.Config{Driver: cache.DriverRedis, RedisURL: "::bad"}, zap.NewNop())
	assert.Error(t, err)
}

func TestLoader_GetOrLoad(t *testing.T) {
	m := metrics.New()
	loader := cache.NewLoader(cache.NewMemory(), time.Minute, zap.NewNop(), m)
	ctx := context.Background()

	var calls int32
	load := func(context.Context) ([]byte, error) {
		atomic.AddInt32(&calls, 1)
		return []byte("body"), nil
	}

	v, hit, err := loader.GetOrLoad(ctx, "key", load)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, "body", string(v))

	v, hit, err = loader.GetOrLoad(ctx, "key", load)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, "body", string(v))
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	count, err := testutil.GatherAndCount(m.Registry(), "gamestats_cache_lookups_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	require.NoError(t, loader.Invalidate(ctx, "key"))
	_, hit, err = loader.GetOrLoad(ctx, "key", load)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestLoader_ErrorsNotCached(t *testing.T) {
	loader := cache.NewLoader(cache.NewMemory(), time.Minute, zap.NewNop(), nil)
	ctx := context.Background()
	boom := errors.New("boom")

	_, _, err := loader.GetOrLoad(ctx, "key", func(context.Context) ([]byte, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)

	v, hit, err := loader.GetOrLoad(ctx, "key", func(context.Context) ([]byte, error) {
		return []byte("ok"), nil
	})
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, "ok", string(v))
}

func TestLoader_LoadSurvivesCallerCancel(t *testing.T) {
	loader := cache.NewLoader(cache.NewMemory(), time.Minute, zap.NewNop(), nil)
	ctx, cancel := context.WithCancel(context.Background())

	started := make(chan struct{})
	release := make(chan struct{})
	load := func(ctx context.Context) ([]byte, error) {
		close(started)
		<-release
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return []byte("body"), nil
	}

	type result struct {
		value []byte
		err   error
	}
	done := make(chan result, 1)
	go func() {
		v, _, err := loader.GetOrLoad(ctx, "key", load)
		done <- result{v, err}
	}()

	<-started
	cancel()
	close(release)

	res := <-done
	require.NoError(t, res.err)
	assert.Equal(t, "body", string(res.value))

	v, hit, err := loader.GetOrLoad(context.Background(), "key", func(context.Context) ([]byte, error) {
		return nil, errors.New("unexpected load")
	})
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, "body", string(v))
}

func TestLoader_CollapsesConcurrentMisses(t *testing.T) {
	loader := cache.NewLoader(cache.Noop{}, time.Minute, zap.NewNop(), nil)
	ctx := context.Background()

	var calls int32
	release := make(chan struct{})
	load := func(context.Context) ([]byte, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return []byte("body"), nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, _, err := loader.GetOrLoad(ctx, "key", load)
			assert.NoError(t, err)
			assert.Equal(t, "body", string(v))
		}()
	}

	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}
