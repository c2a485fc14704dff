package snapshots_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"gamestats/core/storage/mocks"
	"gamestats/feature/snapshots"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHandlers(t *testing.T) {
	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, "gamestats", mock.Anything).Return(listing(
		"snapshots/fortnite/pc/ninja/1000.json",
	))
	client.On("GetObject", mock.Anything, "gamestats", "snapshots/fortnite/pc/ninja/1000.json", mock.Anything).
		Return(io.NopCloser(bytes.NewReader([]byte(`{"epicUserHandle":"ninja"}`))), nil)
	client.On("GetObject", mock.Anything, "gamestats", "snapshots/fortnite/pc/ninja/9.json", mock.Anything).
		Return(nil, minio.ErrorResponse{Code: "NoSuchKey"})

	feature := snapshots.NewFeature(newService(client, 0), true)
	require.True(t, feature.IsEnabled())

	app := fiber.New()
	require.NoError(t, feature.Load(app))

	t.Run("List", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/snapshots/fortnite/pc/ninja", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var list []snapshots.Snapshot
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
		require.Len(t, list, 1)
		assert.Equal(t, "1000", list[0].ID)
	})

	t.Run("Get", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/snapshots/fortnite/pc/ninja/1000", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body, _ := io.ReadAll(resp.Body)
		assert.JSONEq(t, `{"epicUserHandle":"ninja"}`, string(body))
	})

	t.Run("Missing", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/snapshots/fortnite/pc/ninja/9", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}

func TestFeature_Disabled(t *testing.T) {
	assert.False(t, snapshots.NewFeature(nil, true).IsEnabled())
	assert.False(t, snapshots.NewFeature(newService(new(mocks.Client), 0), false).IsEnabled())
}
