package health_test

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"gamestats/core/cache"
	"gamestats/core/storage/mocks"
	"gamestats/feature/health"
	"gamestats/feature/health/checks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHandleHealth(t *testing.T) {
	tests := []struct {
		name       string
		bucketErr  error
		wantStatus int
		wantReport string
	}{
		{"Healthy", nil, fiber.StatusOK, checks.StatusOK},
		{"StorageDown", errors.New("connection refused"), fiber.StatusServiceUnavailable, checks.StatusError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := new(mocks.Client)
			client.On("BucketExists", mock.Anything, "gamestats").Return(tt.bucketErr == nil, tt.bucketErr)

			feature := health.NewFeature(health.NewService(client, "gamestats", nil, cache.NewMemory(), nil, zap.NewNop()))
			assert.Equal(t, "health", feature.Name())

			app := fiber.New()
			require.NoError(t, feature.Load(app))

			resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			var report health.Report
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
			assert.Equal(t, tt.wantReport, report.Status)
			assert.Equal(t, checks.StatusDisabled, report.Checks["database"].Status)
			assert.Equal(t, checks.StatusOK, report.Checks["cache"].Status)
		})
	}
}
