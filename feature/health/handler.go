package health

import (
	"gamestats/core/logger"
	"gamestats/feature/health/checks"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for health checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the health routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/health", h.HandleHealth)
}

// HandleHealth runs all health checks.
// @Summary Health Check
// @Description Checks storage, database, cache and provider circuit breakers. Disabled components report 'disabled'.
// @Tags health
// @Produce json
// @Success 200 {object} health.Report "All checks passed"
// @Failure 503 {object} health.Report "At least one check failed"
// @Router /health [get]
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report := h.service.Run(c.Context())
	if report.Status != checks.StatusOK {
		l.Warn("Service unhealthy", zap.String("status", report.Status))
		return c.Status(fiber.StatusServiceUnavailable).JSON(report)
	}
	return c.JSON(report)
}
