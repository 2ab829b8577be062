package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/simbalabs/simba-checkout-api/internal/core/errx"
)

// respondError maps an error chain onto the status and safe message from
// its AppError, defaulting to 500.
func respondError(c *fiber.Ctx, err error) error {
	return c.Status(errx.StatusOf(err)).JSON(fiber.Map{
		"error": errx.MessageOf(err),
	})
}

func getKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}
