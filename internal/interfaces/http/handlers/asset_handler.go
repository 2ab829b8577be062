package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/simbalabs/simba-checkout-api/internal/infrastructure/storage"
	"github.com/simbalabs/simba-checkout-api/internal/interfaces/http/middleware"
)

// AssetHandler uploads binary assets (covers, videos, ebook files) and
// returns the reference to store on the owning record plus the resolved
// URL for immediate preview.
type AssetHandler struct {
	assets *storage.AssetStore
}

func NewAssetHandler(assets *storage.AssetStore) *AssetHandler {
	return &AssetHandler{assets}
}

func (h *AssetHandler) Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "arquivo é obrigatório",
		})
	}

	content, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "não foi possível ler o arquivo",
		})
	}
	defer content.Close()

	ref, err := h.assets.Upload(middleware.OwnerID(c), file.Filename, file.Size, content)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{
			"ref": ref,
			"url": h.assets.ResolveURL(ref),
		},
	})
}

// Delete removes a stored asset once no record references it.
func (h *AssetHandler) Delete(c *fiber.Ctx) error {
	var body struct {
		Ref string `json:"ref"`
	}
	if err := c.BodyParser(&body); err != nil || body.Ref == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "referência é obrigatória",
		})
	}

	if err := h.assets.Remove(body.Ref); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
