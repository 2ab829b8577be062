package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/simbalabs/simba-checkout-api/internal/application/usecases"
	"github.com/simbalabs/simba-checkout-api/internal/domain/entities"
	"github.com/simbalabs/simba-checkout-api/internal/interfaces/http/middleware"
)

// IntegrationHandler groups the integrations screens: webhooks and API
// keys.
type IntegrationHandler struct {
	webhookUseCase usecases.WebhookUseCase
	apiKeyUseCase  usecases.ApiKeyUseCase
}

func NewIntegrationHandler(webhookUseCase usecases.WebhookUseCase, apiKeyUseCase usecases.ApiKeyUseCase) *IntegrationHandler {
	return &IntegrationHandler{webhookUseCase, apiKeyUseCase}
}

func (h *IntegrationHandler) GetWebhooks(c *fiber.Ctx) error {
	webhooks, err := h.webhookUseCase.GetWebhooks(c.Context(), middleware.OwnerID(c))
	if err != nil {
		return respondError(c, err)
	}
	if webhooks == nil {
		webhooks = []entities.Webhook{}
	}
	return c.JSON(fiber.Map{"data": webhooks})
}

func (h *IntegrationHandler) SaveWebhook(c *fiber.Ctx) error {
	var webhook entities.Webhook
	if err := c.BodyParser(&webhook); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "corpo da requisição inválido",
		})
	}

	saved, err := h.webhookUseCase.SaveWebhook(c.Context(), middleware.OwnerID(c), &webhook)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": saved})
}

func (h *IntegrationHandler) DeleteWebhook(c *fiber.Ctx) error {
	if err := h.webhookUseCase.DeleteWebhook(c.Context(), middleware.OwnerID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *IntegrationHandler) GetApiKeys(c *fiber.Ctx) error {
	keys, err := h.apiKeyUseCase.GetApiKeys(c.Context(), middleware.OwnerID(c))
	if err != nil {
		return respondError(c, err)
	}
	if keys == nil {
		keys = []entities.ApiKey{}
	}
	return c.JSON(fiber.Map{"data": keys})
}

func (h *IntegrationHandler) CreateApiKey(c *fiber.Ctx) error {
	var body struct {
		Name   string   `json:"name"`
		Scopes []string `json:"scopes"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "corpo da requisição inválido",
		})
	}

	key, err := h.apiKeyUseCase.CreateApiKey(c.Context(), middleware.OwnerID(c), body.Name, body.Scopes)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": key})
}

func (h *IntegrationHandler) DeleteApiKey(c *fiber.Ctx) error {
	if err := h.apiKeyUseCase.DeleteApiKey(c.Context(), middleware.OwnerID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
