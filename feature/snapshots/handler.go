package snapshots

import (
	"errors"

	"gamestats/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for snapshots.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the snapshot routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/snapshots")
	group.Get("/:game/:platform/:username", h.HandleListSnapshots)
	group.Get("/:game/:platform/:username/:id", h.HandleGetSnapshot)
}

// HandleListSnapshots lists the archived responses of a player.
// @Summary List Snapshots
// @Description List archived provider responses of a player, newest first.
// @Tags snapshots
// @Produce json
// @Param game path string true "Game (e.g. 'fortnite')"
// @Param platform path string true "Platform"
// @Param username path string true "Player name"
// @Success 200 {array} snapshots.Snapshot "Snapshots"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /snapshots/{game}/{platform}/{username} [get]
func (h *Handler) HandleListSnapshots(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	list, err := h.service.List(c.Context(), c.Params("game"), c.Params("platform"), c.Params("username"))
	if err != nil {
		l.Error("Snapshot listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(list)
}

// HandleGetSnapshot returns one archived response.
// @Summary Get Snapshot
// @Description Return an archived provider response.
// @Tags snapshots
// @Produce json
// @Param game path string true "Game (e.g. 'fortnite')"
// @Param platform path string true "Platform"
// @Param username path string true "Player name"
// @Param id path string true "Snapshot id"
// @Success 200 {object} object "Provider response"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /snapshots/{game}/{platform}/{username}/{id} [get]
func (h *Handler) HandleGetSnapshot(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	body, err := h.service.Get(c.Context(), c.Params("game"), c.Params("platform"), c.Params("username"), c.Params("id"))
	if errors.Is(err, ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if err != nil {
		l.Error("Snapshot read failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(body)
}
