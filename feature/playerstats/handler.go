package playerstats

import (
	"errors"
	"strings"

	"gamestats/core/logger"
	"gamestats/core/provider"
	"gamestats/core/stats"
	"gamestats/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for player stats.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the stats routes. The raw route is registered first so
// "raw" is never taken for a platform.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/api/:game")
	group.Get("/raw/:platform/:username/:mode?", h.HandleGetRawStats)
	group.Get("/:platform/:username/:mode?", h.HandleGetStats)
}

// HandleGetStats returns the normalized stats of a player.
// @Summary Get Player Stats
// @Description Fetch a player profile and return the normalized stats of a mode. Unknown players, unknown modes and missing sections return an empty list.
// @Tags stats
// @Produce json
// @Param game path string true "Game (e.g. 'fortnite')"
// @Param platform path string true "Platform (e.g. 'pc', 'xbl', 'psn')"
// @Param username path string true "Player name"
// @Param mode path string false "Mode (all, solo, duo, squad)"
// @Param fields query string false "Fields separated by ',', '|' or ';' (default '*')"
// @Param refresh query bool false "Bypass the cache"
// @Success 200 {array} stats.Record "Normalized stats"
// @Failure 404 {object} map[string]string "Unknown game"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/{game}/{platform}/{username}/{mode} [get]
func (h *Handler) HandleGetStats(c *fiber.Ctx) error {
	req := h.request(c)
	l := logger.WithRayID(h.service.logger, c)

	records, err := h.service.Stats(c.Context(), req)
	if err != nil {
		return h.fail(c, l, "stats", req, err)
	}

	h.service.metrics.ObserveRequest("stats", h.modeLabel(req.Mode), outcome(records))
	return c.JSON(records)
}

// HandleGetRawStats returns the unnormalized stats section of a player.
// @Summary Get Raw Player Stats
// @Description Fetch a player profile and return the raw provider section of a mode.
// @Tags stats
// @Produce json
// @Param game path string true "Game (e.g. 'fortnite')"
// @Param platform path string true "Platform (e.g. 'pc', 'xbl', 'psn')"
// @Param username path string true "Player name"
// @Param mode path string false "Mode (all, solo, duo, squad)"
// @Param refresh query bool false "Bypass the cache"
// @Success 200 {object} object "Raw provider section"
// @Failure 404 {object} map[string]string "Unknown game"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/{game}/raw/{platform}/{username}/{mode} [get]
func (h *Handler) HandleGetRawStats(c *fiber.Ctx) error {
	req := h.request(c)
	l := logger.WithRayID(h.service.logger, c)

	raw, err := h.service.Raw(c.Context(), req)
	if err != nil {
		return h.fail(c, l, "raw", req, err)
	}

	h.service.metrics.ObserveRequest("raw", h.modeLabel(req.Mode), "ok")
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(raw)
}

func (h *Handler) request(c *fiber.Ctx) Request {
	mode := c.Params("mode")
	if mode == "" {
		mode = provider.ModeAll
	}
	return Request{
		Game:     c.Params("game"),
		Platform: c.Params("platform"),
		Username: c.Params("username"),
		Mode:     mode,
		Fields:   stats.ParseFilter(c.Query("fields")),
		Refresh:  utils.ToBool(c.Query("refresh")),
	}
}

func (h *Handler) fail(c *fiber.Ctx, l *zap.Logger, route string, req Request, err error) error {
	status := fiber.StatusInternalServerError
	if errors.Is(err, provider.ErrUnknownProvider) {
		status = fiber.StatusNotFound
	} else {
		l.Error("Stats request failed",
			zap.String("game", req.Game),
			zap.String("platform", req.Platform),
			zap.String("username", req.Username),
			zap.String("mode", req.Mode),
			zap.Error(err),
		)
	}

	h.service.metrics.ObserveRequest(route, h.modeLabel(req.Mode), "error")
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}

// modeLabel bounds the metric label to configured modes.
func (h *Handler) modeLabel(mode string) string {
	if _, ok := h.service.modes.Key(mode); ok {
		return strings.ToLower(mode)
	}
	return "unknown"
}

func outcome(records []stats.Record) string {
	if len(records) == 0 {
		return "empty"
	}
	return "ok"
}
