package main

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/simbalabs/simba-checkout-api/internal/domain/repositories"
	"github.com/simbalabs/simba-checkout-api/internal/infrastructure/database"
	"github.com/simbalabs/simba-checkout-api/internal/infrastructure/gateway"
	"github.com/simbalabs/simba-checkout-api/internal/infrastructure/sessions"
	"github.com/simbalabs/simba-checkout-api/internal/infrastructure/storage"
	"github.com/simbalabs/simba-checkout-api/internal/interfaces/http/middleware"
	"github.com/simbalabs/simba-checkout-api/internal/interfaces/http/routes"
	"github.com/simbalabs/simba-checkout-api/internal/logging"
)

// fiberConfig returns the server configuration. O ReadTimeout cobre a
// leitura do corpo inteiro da requisição, então precisa acomodar um
// upload de asset de até 600MB em conexões lentas.
func fiberConfig() fiber.Config {
	return fiber.Config{
		Concurrency:  256 * 1024,
		BodyLimit:    650 * 1024 * 1024, // comporta uploads de assets até 600MB
		ReadTimeout:  10 * time.Minute,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
}

func main() {
	// Load environment variables
	dotenvErr := godotenv.Load()
	logging.Init(os.Getenv("ENVIRONMENT"))
	if dotenvErr != nil {
		logging.Warn().Msg("no .env file found, using system environment variables")
	}

	// Initialize database
	db, err := database.SetupDatabase()
	if err != nil {
		logging.Fatal().Err(err).Msg("error setting up database")
	}

	// Payment gateway
	var gatewayCfg gateway.Config
	if err := envconfig.Process("paysuite", &gatewayCfg); err != nil {
		logging.Fatal().Err(err).Msg("invalid PaySuite configuration")
	}
	payments := gateway.NewPaySuiteClient(gatewayCfg)

	// Auth
	var authCfg middleware.AuthConfig
	if err := envconfig.Process("auth", &authCfg); err != nil {
		logging.Fatal().Err(err).Msg("invalid auth configuration")
	}

	// Checkout session store: Redis when configured, memory otherwise
	var sessionStore repositories.SessionRepository
	var redisCfg sessions.RedisConfig
	if err := envconfig.Process("redis", &redisCfg); err != nil {
		logging.Fatal().Err(err).Msg("invalid Redis configuration")
	}
	if redisCfg.URL != "" {
		client, err := redisCfg.New()
		if err != nil {
			logging.Fatal().Err(err).Msg("error connecting to Redis")
		}
		sessionStore = sessions.NewRedisStore(client, sessions.DefaultTTL)
		logging.Info().Msg("checkout sessions stored in Redis")
	} else {
		sessionStore = sessions.NewMemoryStore(sessions.DefaultTTL)
		logging.Info().Msg("checkout sessions stored in memory")
	}

	// Asset storage (optional)
	var assets *storage.AssetStore
	var storageCfg storage.Config
	if err := envconfig.Process("supabase", &storageCfg); err != nil {
		logging.Fatal().Err(err).Msg("invalid storage configuration")
	}
	if storageCfg.URL != "" {
		assets = storage.NewAssetStore(storageCfg)
	}

	// Configure Fiber for better performance
	app := fiber.New(fiberConfig())

	// Setup middleware
	middleware.SetupMiddlewares(app)

	// Setup routes
	routes.SetupRoutes(app, db, routes.Dependencies{
		Sessions: sessionStore,
		Payments: payments,
		Assets:   assets,
		Auth:     authCfg,
	})

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logging.Info().Str("port", port).Msg("server is running")
	logging.Fatal().Err(app.Listen(":" + port)).Msg("server stopped")
}
