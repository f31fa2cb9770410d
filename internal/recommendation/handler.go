package recommendation

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/PaulElielk/Data-mining-Project/internal/catalog"
)

type Handler struct {
	service  *Service
	registry *catalog.Registry
	log      zerolog.Logger
}

func NewHandler(service *Service, registry *catalog.Registry, log zerolog.Logger) *Handler {
	return &Handler{service: service, registry: registry, log: log}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/products/:category/:id/recommendations", h.getRecommendations)
}

func (h *Handler) getRecommendations(c *fiber.Ctx) error {
	category := c.Params("category")
	id := c.Params("id")

	results, err := h.service.List(category, id)
	if err != nil {
		if errors.Is(err, catalog.ErrUnknownCategory) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": h.registry.InvalidCategoryMessage()})
		}
		h.log.Error().Err(err).Str("category", category).Str("id", id).Msg("failed to fetch recommendations")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch recommendations"})
	}
	return c.JSON(results)
}
