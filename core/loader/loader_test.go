package loader_test

import (
	"errors"
	"net/http/httptest"
	"testing"

	"gamestats/core/loader"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFeature struct {
	name    string
	enabled bool
	err     error
}

func (f *fakeFeature) Name() string    { return f.name }
func (f *fakeFeature) IsEnabled() bool { return f.enabled }
func (f *fakeFeature) Load(app fiber.Router) error {
	if f.err != nil {
		return f.err
	}
	app.Get("/"+f.name, func(c *fiber.Ctx) error { return c.SendString(f.name) })
	return nil
}

func TestManager_LoadAll(t *testing.T) {
	mgr := loader.NewManager(nil)
	require.NoError(t, mgr.Register(&fakeFeature{name: "stats", enabled: true}))
	require.NoError(t, mgr.Register(&fakeFeature{name: "snapshots", enabled: false}))

	app := fiber.New()
	require.NoError(t, mgr.LoadAll(app))
	assert.Len(t, mgr.Features(), 2)

	resp, err := app.Test(httptest.NewRequest("GET", "/stats", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/snapshots", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestManager_Duplicate(t *testing.T) {
	mgr := loader.NewManager(nil)
	require.NoError(t, mgr.Register(&fakeFeature{name: "stats"}))
	assert.Error(t, mgr.Register(&fakeFeature{name: "stats"}))
}

func TestManager_LoadError(t *testing.T) {
	boom := errors.New("boom")
	mgr := loader.NewManager(nil)
	require.NoError(t, mgr.Register(&fakeFeature{name: "broken", enabled: true, err: boom}))

	assert.ErrorIs(t, mgr.LoadAll(fiber.New()), boom)
}
