package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/simbalabs/simba-checkout-api/internal/application/usecases"
	"github.com/simbalabs/simba-checkout-api/internal/domain/entities"
	"github.com/simbalabs/simba-checkout-api/internal/interfaces/http/middleware"
)

type ProductHandler struct {
	productUseCase usecases.ProductUseCase
}

func NewProductHandler(productUseCase usecases.ProductUseCase) *ProductHandler {
	return &ProductHandler{productUseCase}
}

func (h *ProductHandler) GetProducts(c *fiber.Ctx) error {
	ownerID := middleware.OwnerID(c)

	// Get query parameters
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "100"))

	// Get sort parameters
	sortBy := c.Query("sortBy", "created_at")
	sortDirection := c.Query("sortDirection", "desc")

	// Validate sort direction
	if sortDirection != "asc" && sortDirection != "desc" {
		sortDirection = "desc"
	}

	// Validate sortBy field and build orderBy
	validSortFields := map[string]string{
		"created_at": "created_at",
		"name":       "name",
		"price":      "price",
		"status":     "status",
	}

	orderBy := "created_at desc" // default ordering
	if field, ok := validSortFields[sortBy]; ok {
		orderBy = field + " " + sortDirection
	}

	products, total, err := h.productUseCase.GetProducts(c.Context(), ownerID, page, limit, orderBy)
	if err != nil {
		return respondError(c, err)
	}
	if products == nil {
		products = []entities.Product{}
	}

	return c.JSON(fiber.Map{
		"data": products,
		"meta": fiber.Map{
			"total":             total,
			"page":              page,
			"limit":             limit,
			"last_page":         (total + int64(limit) - 1) / int64(limit),
			"sort_by":           sortBy,
			"sort_direction":    sortDirection,
			"valid_sort_fields": getKeys(validSortFields),
		},
	})
}

func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	product, err := h.productUseCase.GetProduct(c.Context(), middleware.OwnerID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": product})
}

func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var product entities.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "corpo da requisição inválido",
		})
	}
	product.ID = ""

	saved, err := h.productUseCase.SaveProduct(c.Context(), middleware.OwnerID(c), &product)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": saved})
}

// UpdateProduct is a full replace of the record, not a patch.
func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	ownerID := middleware.OwnerID(c)

	// Garante que o produto existe e pertence ao dono antes de substituir
	existing, err := h.productUseCase.GetProduct(c.Context(), ownerID, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}

	var product entities.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "corpo da requisição inválido",
		})
	}
	product.ID = existing.ID
	product.CreatedAt = existing.CreatedAt
	if product.Links == nil {
		product.Links = existing.Links
	}

	saved, err := h.productUseCase.SaveProduct(c.Context(), ownerID, &product)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": saved})
}

func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	if err := h.productUseCase.DeleteProduct(c.Context(), middleware.OwnerID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
