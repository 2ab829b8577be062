package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/simbalabs/simba-checkout-api/internal/application/usecases"
)

// FunnelHandler exposes the shopper-facing checkout session flow. None of
// these routes require authentication: checkout links are public.
type FunnelHandler struct {
	funnelUseCase usecases.FunnelUseCase
}

func NewFunnelHandler(funnelUseCase usecases.FunnelUseCase) *FunnelHandler {
	return &FunnelHandler{funnelUseCase}
}

func (h *FunnelHandler) StartSession(c *fiber.Ctx) error {
	session, err := h.funnelUseCase.StartSession(c.Context(), c.Params("productId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": session})
}

func (h *FunnelHandler) GetSession(c *fiber.Ctx) error {
	session, err := h.funnelUseCase.GetSession(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": session})
}

func (h *FunnelHandler) ToggleBump(c *fiber.Ctx) error {
	session, err := h.funnelUseCase.ToggleBump(c.Context(), c.Params("id"), c.Params("bumpId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": session})
}

func (h *FunnelHandler) ApplyCoupon(c *fiber.Ctx) error {
	var body struct {
		Code string `json:"code"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "corpo da requisição inválido",
		})
	}

	session, err := h.funnelUseCase.ApplyCoupon(c.Context(), c.Params("id"), body.Code)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": session})
}

func (h *FunnelHandler) Submit(c *fiber.Ctx) error {
	var input usecases.SubmitInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "corpo da requisição inválido",
		})
	}

	session, err := h.funnelUseCase.Submit(c.Context(), c.Params("id"), input)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": session})
}

func (h *FunnelHandler) ConfirmPayment(c *fiber.Ctx) error {
	result, err := h.funnelUseCase.ConfirmPayment(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": result})
}

func (h *FunnelHandler) DecideUpsell(c *fiber.Ctx) error {
	var body struct {
		Accept bool `json:"accept"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "corpo da requisição inválido",
		})
	}

	result, err := h.funnelUseCase.DecideUpsell(c.Context(), c.Params("id"), body.Accept)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": result})
}

func (h *FunnelHandler) CloseSession(c *fiber.Ctx) error {
	if err := h.funnelUseCase.CloseSession(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// PaySuiteCallback receives the asynchronous payment notification from the
// gateway. It always answers 200 so the gateway stops retrying; a missing
// session just means the shopper already closed the checkout.
func (h *FunnelHandler) PaySuiteCallback(c *fiber.Ctx) error {
	var body struct {
		Status string `json:"status"`
		Data   struct {
			Reference string `json:"reference"`
			Status    string `json:"status"`
		} `json:"data"`
	}
	if err := c.BodyParser(&body); err != nil || body.Data.Reference == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "payload de callback inválido",
		})
	}

	if body.Data.Status == "paid" || body.Data.Status == "completed" || body.Status == "success" {
		_ = h.funnelUseCase.MarkPaid(c.Context(), body.Data.Reference)
	}
	return c.JSON(fiber.Map{"received": true})
}
