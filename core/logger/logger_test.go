package logger_test

import (
	"errors"
	"net/http/httptest"
	"testing"

	"gamestats/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		cfg  logger.Config
	}{
		{"DebugConsole", logger.Config{Level: "debug", Format: "console"}},
		{"InfoJSON", logger.Config{Level: "info", Format: "json"}},
		{"WarnJSON", logger.Config{Level: "warn", Format: "json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := logger.New(&tt.cfg)
			require.NoError(t, err)
			assert.NotNil(t, l)
		})
	}
}

func TestMiddleware_LogsRayID(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := zap.New(core)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(logger.RayIDKey, "ray-123")
		return c.Next()
	})
	app.Use(logger.Middleware(l))
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/fail", func(c *fiber.Ctx) error { return errors.New("boom") })

	resp, err := app.Test(httptest.NewRequest("GET", "/ok", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	started := logs.FilterMessage("Request started").All()
	require.Len(t, started, 1)
	assert.Equal(t, "ray-123", started[0].ContextMap()[logger.RayIDKey])

	resp, err = app.Test(httptest.NewRequest("GET", "/fail", nil))
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)
	assert.Equal(t, 1, logs.FilterMessage("Request error").Len())
}
