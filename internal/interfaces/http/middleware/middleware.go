package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/golang-jwt/jwt/v5"
)

const ownerLocal = "ownerID"

// AuthConfig is parsed by envconfig under the AUTH prefix.
type AuthConfig struct {
	JWTSecret string `split_words:"true" required:"true"`
}

func SetupMiddlewares(app *fiber.App) {
	// CORS configuration
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "https://simba.app, http://localhost:3000",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           300, // 5 minutes
	}))
}

// RequireMerchant validates the bearer token and resolves the merchant
// owner id into the request locals. Every repository call downstream is
// scoped by this value; there is no ambient current-user state.
func RequireMerchant(cfg AuthConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing bearer token",
			})
		}
		raw := strings.TrimPrefix(header, "Bearer ")

		token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid token",
			})
		}

		subject, err := token.Claims.GetSubject()
		if err != nil || subject == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "token has no subject",
			})
		}

		c.Locals(ownerLocal, subject)
		return c.Next()
	}
}

// OwnerID returns the merchant id resolved by RequireMerchant.
func OwnerID(c *fiber.Ctx) string {
	if id, ok := c.Locals(ownerLocal).(string); ok {
		return id
	}
	return ""
}

// RouteGroups define os grupos de rotas da API
type RouteGroups struct {
	// Merchant routes require a bearer token.
	Merchant fiber.Router
	// Checkout routes are shopper-facing, no auth: checkout links are public.
	Checkout fiber.Router
	// Callbacks receive gateway notifications.
	Callbacks fiber.Router
}

// SetupRouteGroups configura os grupos de rotas com seus respectivos middlewares
func SetupRouteGroups(app *fiber.App, authMiddleware fiber.Handler) RouteGroups {
	merchant := app.Group("/api/v1")
	merchant.Use(authMiddleware)

	checkout := app.Group("/checkout")
	callbacks := app.Group("/callbacks")

	return RouteGroups{
		Merchant:  merchant,
		Checkout:  checkout,
		Callbacks: callbacks,
	}
}
