package product

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
	app.Get("/api/products", h.getProducts)
	app.Get("/api/products/:category", h.getProductsByCategory)
	app.Get("/api/products/:category/:id", h.getProduct)
}

// getProducts serves the unfiltered listing (all categories concatenated)
// or a single category when the query param is present.
func (h *Handler) getProducts(c *fiber.Ctx) error {
	category := c.Query("category")
	if category != "" {
		return h.listCategory(c, category)
	}

	products, err := h.service.ListAll()
	if err != nil {
		h.log.Error().Err(err).Msg("failed to list all products")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch products"})
	}
	return c.JSON(products)
}

func (h *Handler) getProductsByCategory(c *fiber.Ctx) error {
	return h.listCategory(c, c.Params("category"))
}

func (h *Handler) listCategory(c *fiber.Ctx, category string) error {
	products, err := h.service.List(category)
	if err != nil {
		if errors.Is(err, catalog.ErrUnknownCategory) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": h.registry.InvalidCategoryMessage()})
		}
		h.log.Error().Err(err).Str("category", category).Msg("failed to list products")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch products"})
	}
	return c.JSON(products)
}

func (h *Handler) getProduct(c *fiber.Ctx) error {
	category := c.Params("category")
	id := c.Params("id")

	p, err := h.service.Get(category, id)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrUnknownCategory):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": h.registry.InvalidCategoryMessage()})
		case errors.Is(err, ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
		default:
			h.log.Error().Err(err).Str("category", category).Str("id", id).Msg("failed to fetch product")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch product"})
		}
	}
	return c.JSON(p)
}
