package auth_test

import (
	"net/http/httptest"
	"testing"

	"gamestats/core/middleware/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(cfg auth.Config) *fiber.App {
	app := fiber.New()
	app.Use(auth.New(cfg))
	app.Get("/*", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestNew(t *testing.T) {
	app := newApp(auth.Config{ApiKey: "secret", Skip: []string{"/health"}})

	tests := []struct {
		name   string
		target string
		header string
		want   int
	}{
		{"Missing", "/api/fortnite/pc/ninja", "", fiber.StatusUnauthorized},
		{"Wrong", "/api/fortnite/pc/ninja", "nope", fiber.StatusUnauthorized},
		{"Header", "/api/fortnite/pc/ninja", "secret", fiber.StatusOK},
		{"Query", "/api/fortnite/pc/ninja?api_key=secret", "", fiber.StatusOK},
		{"Skipped", "/health", "", fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.target, nil)
			if tt.header != "" {
				req.Header.Set(auth.HeaderName, tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

func TestNew_Disabled(t *testing.T) {
	resp, err := newApp(auth.Config{}).Test(httptest.NewRequest("GET", "/anything", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
