package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/simbalabs/simba-checkout-api/internal/application/usecases"
	"github.com/simbalabs/simba-checkout-api/internal/domain/entities"
	"github.com/simbalabs/simba-checkout-api/internal/interfaces/http/middleware"
)

// CheckoutHandler exposes the checkout editor operations: component
// toggling, reordering and settings updates on a product's checkout page.
type CheckoutHandler struct {
	checkoutUseCase usecases.CheckoutUseCase
}

func NewCheckoutHandler(checkoutUseCase usecases.CheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{checkoutUseCase}
}

func (h *CheckoutHandler) ToggleComponent(c *fiber.Ctx) error {
	var body struct {
		Component string `json:"component"`
	}
	if err := c.BodyParser(&body); err != nil || body.Component == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "componente é obrigatório",
		})
	}

	product, err := h.checkoutUseCase.ToggleComponent(
		c.Context(), middleware.OwnerID(c), c.Params("id"), entities.ComponentType(body.Component))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": product.CheckoutConfig})
}

func (h *CheckoutHandler) MoveComponent(c *fiber.Ctx) error {
	var body struct {
		Index     *int   `json:"index"`
		Direction string `json:"direction"`
	}
	if err := c.BodyParser(&body); err != nil || body.Index == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "índice e direção são obrigatórios",
		})
	}

	product, err := h.checkoutUseCase.MoveComponent(
		c.Context(), middleware.OwnerID(c), c.Params("id"), *body.Index, body.Direction)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": product.CheckoutConfig})
}

func (h *CheckoutHandler) UpdateSettings(c *fiber.Ctx) error {
	var input usecases.CheckoutSettingsInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "corpo da requisição inválido",
		})
	}

	product, err := h.checkoutUseCase.UpdateSettings(
		c.Context(), middleware.OwnerID(c), c.Params("id"), input)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": product.CheckoutConfig})
}
