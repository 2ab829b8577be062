package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"gorm.io/gorm"

	"github.com/simbalabs/simba-checkout-api/internal/application/usecases"
	"github.com/simbalabs/simba-checkout-api/internal/domain/repositories"
	"github.com/simbalabs/simba-checkout-api/internal/infrastructure/gateway"
	"github.com/simbalabs/simba-checkout-api/internal/infrastructure/storage"
	"github.com/simbalabs/simba-checkout-api/internal/interfaces/http/handlers"
	"github.com/simbalabs/simba-checkout-api/internal/interfaces/http/middleware"
)

// Dependencies carries everything the route tree needs beyond the database.
type Dependencies struct {
	Sessions repositories.SessionRepository
	Payments gateway.Client
	Assets   *storage.AssetStore
	Auth     middleware.AuthConfig
}

func SetupRoutes(app *fiber.App, db *gorm.DB, deps Dependencies) {
	// Add performance middleware
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	// Add ETag support for efficient caching
	app.Use(etag.New())

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	var resolver repositories.AssetResolver = repositories.NopResolver{}
	if deps.Assets != nil {
		resolver = deps.Assets
	}

	// Repositories
	productRepo := repositories.NewProductRepository(db, resolver)
	courseRepo := repositories.NewCourseRepository(db, resolver)
	webhookRepo := repositories.NewWebhookRepository(db)
	apiKeyRepo := repositories.NewApiKeyRepository(db)

	// Use Cases
	productUseCase := usecases.NewProductUseCase(productRepo)
	checkoutUseCase := usecases.NewCheckoutUseCase(productRepo)
	funnelUseCase := usecases.NewFunnelUseCase(productRepo, deps.Sessions, deps.Payments)
	courseUseCase := usecases.NewCourseUseCase(courseRepo)
	webhookUseCase := usecases.NewWebhookUseCase(webhookRepo)
	apiKeyUseCase := usecases.NewApiKeyUseCase(apiKeyRepo)

	// Handlers
	productHandler := handlers.NewProductHandler(productUseCase)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutUseCase)
	funnelHandler := handlers.NewFunnelHandler(funnelUseCase)
	courseHandler := handlers.NewCourseHandler(courseUseCase)
	integrationHandler := handlers.NewIntegrationHandler(webhookUseCase, apiKeyUseCase)

	// Routes
	groups := middleware.SetupRouteGroups(app, middleware.RequireMerchant(deps.Auth))

	// Products e editor de checkout
	groups.Merchant.Get("/products", productHandler.GetProducts)
	groups.Merchant.Post("/products", productHandler.CreateProduct)
	groups.Merchant.Get("/products/:id", productHandler.GetProduct)
	groups.Merchant.Put("/products/:id", productHandler.UpdateProduct)
	groups.Merchant.Delete("/products/:id", productHandler.DeleteProduct)
	groups.Merchant.Post("/products/:id/checkout-config/toggle", checkoutHandler.ToggleComponent)
	groups.Merchant.Post("/products/:id/checkout-config/move", checkoutHandler.MoveComponent)
	groups.Merchant.Patch("/products/:id/checkout-config/settings", checkoutHandler.UpdateSettings)

	// Área de membros
	groups.Merchant.Get("/courses", courseHandler.GetCourses)
	groups.Merchant.Post("/courses", courseHandler.CreateCourse)
	groups.Merchant.Get("/courses/:id", courseHandler.GetCourse)
	groups.Merchant.Put("/courses/:id", courseHandler.UpdateCourse)
	groups.Merchant.Delete("/courses/:id", courseHandler.DeleteCourse)

	// Integrações
	groups.Merchant.Get("/webhooks", integrationHandler.GetWebhooks)
	groups.Merchant.Post("/webhooks", integrationHandler.SaveWebhook)
	groups.Merchant.Delete("/webhooks/:id", integrationHandler.DeleteWebhook)
	groups.Merchant.Get("/api-keys", integrationHandler.GetApiKeys)
	groups.Merchant.Post("/api-keys", integrationHandler.CreateApiKey)
	groups.Merchant.Delete("/api-keys/:id", integrationHandler.DeleteApiKey)

	// Upload de assets
	if deps.Assets != nil {
		assetHandler := handlers.NewAssetHandler(deps.Assets)
		groups.Merchant.Post("/assets", assetHandler.Upload)
		groups.Merchant.Delete("/assets", assetHandler.Delete)
	}

	// Fluxo público de checkout (funil do comprador)
	groups.Checkout.Post("/:productId/sessions", funnelHandler.StartSession)
	groups.Checkout.Get("/sessions/:id", funnelHandler.GetSession)
	groups.Checkout.Post("/sessions/:id/bumps/:bumpId/toggle", funnelHandler.ToggleBump)
	groups.Checkout.Post("/sessions/:id/coupon", funnelHandler.ApplyCoupon)
	groups.Checkout.Post("/sessions/:id/submit", funnelHandler.Submit)
	groups.Checkout.Post("/sessions/:id/confirm", funnelHandler.ConfirmPayment)
	groups.Checkout.Post("/sessions/:id/upsell", funnelHandler.DecideUpsell)
	groups.Checkout.Delete("/sessions/:id", funnelHandler.CloseSession)

	// Callback assíncrono do gateway
	groups.Callbacks.Post("/paysuite", funnelHandler.PaySuiteCallback)
}
