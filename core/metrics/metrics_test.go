package metrics_test

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"gamestats/core/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Observe(t *testing.T) {
	m := metrics.New()

	m.ObserveRequest("stats", "all", "ok")
	m.ObserveRequest("stats", "all", "ok")
	m.ObserveCache("memory", "hit")
	m.ObserveTransform("array", time.Millisecond, 12)

	count, err := testutil.GatherAndCount(m.Registry(), "gamestats_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = testutil.GatherAndCount(m.Registry(), "gamestats_cache_lookups_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *metrics.Metrics
	assert.NotPanics(t, func() {
		m.ObserveRequest("stats", "all", "ok")
		m.ObserveCache("redis", "miss")
		m.ObserveProvider("fortnite", "error")
		m.ObserveBreaker("fortnite", "closed", "open")
		m.ObserveTransform("object", time.Millisecond, 3)
	})
}

func TestMetrics_Handler(t *testing.T) {
	m := metrics.New()
	m.ObserveProvider("fortnite", "ok")

	app := fiber.New()
	app.Get("/metrics", m.Handler())

	resp, err := app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `gamestats_provider_requests_total{outcome="ok",provider="fortnite"} 1`)
}
