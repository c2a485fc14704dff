package checks_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gamestats/core/cache"
	"gamestats/core/database"
	"gamestats/core/provider"
	"gamestats/core/provider/mocks"
	storagemocks "gamestats/core/storage/mocks"
	"gamestats/feature/health/checks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCheckStorage(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, checks.StatusDisabled, checks.CheckStorage(ctx, nil, "gamestats").Status)

	tests := []struct {
		name   string
		exists bool
		err    error
		want   string
	}{
		{"Exists", true, nil, checks.StatusOK},
		{"Missing", false, nil, checks.StatusError},
		{"Unreachable", false, errors.New("dial tcp"), checks.StatusError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := new(storagemocks.Client)
			client.On("BucketExists", mock.Anything, "gamestats").Return(tt.exists, tt.err)

			r := checks.CheckStorage(ctx, client, "gamestats")
			assert.Equal(t, tt.want, r.Status)
			assert.Equal(t, "gamestats", r.Details["bucket"])
		})
	}
}

func TestCheckDatabase(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, checks.StatusDisabled, checks.CheckDatabase(ctx, nil).Status)

	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	t.Run("TablesMissing", func(t *testing.T) {
		r := checks.CheckDatabase(ctx, db)
		assert.Equal(t, checks.StatusError, r.Status)
		assert.Contains(t, r.Details["missing_columns"], "stat_aliases.label")
	})

	t.Run("Migrated", func(t *testing.T) {
		require.NoError(t, database.Migrate(db))
		r := checks.CheckDatabase(ctx, db)
		assert.Equal(t, checks.StatusOK, r.Status)
		assert.Equal(t, "sqlite", r.Details["driver"])
	})
}

type brokenCache struct{ cache.Noop }

func (brokenCache) Name() string { return "broken" }

func (brokenCache) Set(context.Context, string, []byte, time.Duration) error {
	return errors.New("read-only")
}

func TestCheckCache(t *testing.T) {
	ctx := context.Background()

	assert.Equal(t, checks.StatusDisabled, checks.CheckCache(ctx, nil).Status)
	assert.Equal(t, checks.StatusDisabled, checks.CheckCache(ctx, cache.Noop{}).Status)
	assert.Equal(t, checks.StatusOK, checks.CheckCache(ctx, cache.NewMemory()).Status)

	r := checks.CheckCache(ctx, brokenCache{})
	assert.Equal(t, checks.StatusError, r.Status)
	assert.Equal(t, "read-only", r.Error)
}

func TestCheckProviders(t *testing.T) {
	assert.Equal(t, checks.StatusDisabled, checks.CheckProviders(nil).Status)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	tracker := provider.NewTracker(provider.Config{BaseURL: srv.URL, BreakerThreshold: 1})
	other := new(mocks.Client)
	other.On("Name").Return("apex")

	reg, err := provider.NewRegistry(tracker, other)
	require.NoError(t, err)

	r := checks.CheckProviders(reg)
	assert.Equal(t, checks.StatusOK, r.Status)
	assert.Equal(t, map[string]any{"apex": "unknown", "fortnite": "closed"}, r.Details["breakers"])

	_, err = tracker.Profile(context.Background(), "pc", "ninja")
	require.Error(t, err)

	r = checks.CheckProviders(reg)
	assert.Equal(t, checks.StatusError, r.Status)
	assert.Contains(t, r.Error, "fortnite")
}
