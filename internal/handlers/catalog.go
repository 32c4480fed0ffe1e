package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/vyapaar-tech/orderbot-backend/internal/models"
	"github.com/vyapaar-tech/orderbot-backend/internal/storage"
	"github.com/vyapaar-tech/orderbot-backend/internal/validation"
)

// CatalogHandler serves the product catalog REST endpoints.
type CatalogHandler struct {
	store    storage.Store
	validate *validator.Validate
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(store storage.Store) *CatalogHandler {
	return &CatalogHandler{
		store:    store,
		validate: validation.New(),
	}
}

// ListProducts returns every catalog entry.
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	products, err := h.store.ListProducts()
	if err != nil {
		log.Printf("Error listing products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list products",
		})
	}

	return c.JSON(fiber.Map{
		"count":    len(products),
		"products": products,
	})
}

// CreateProduct adds a catalog entry.
func (h *CatalogHandler) CreateProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid product payload",
		})
	}

	if err := h.validate.Struct(&product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	created, err := h.store.CreateProduct(&product)
	if err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	log.Printf("📦 Product added: %s (₹%v)", created.Name, created.Price)
	return c.Status(fiber.StatusCreated).JSON(created)
}
