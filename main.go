package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"catalog/internal/handlers"
	"catalog/internal/models"
	"catalog/internal/repositories"
	"catalog/internal/services"
	logx "catalog/pkg/logger"
)

func main() {
	// --- Configuration ---
	// Optional .env for local runs, then environment variables via Viper.
	dotenvErr := godotenv.Load()

	viper.SetDefault("APP_PORT", ":3000")
	viper.SetDefault("APP_ENV", "development")
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")
	logx.Init(viper.GetString("APP_ENV"))
	if dotenvErr != nil {
		logx.Debug().Msg("no .env file loaded")
	}

	// --- Initialize Store ---
	store := repositories.NewMemoryProductStore()
	seedProducts(store)

	// --- Initialize Service and Handler ---
	productService := services.NewProductService(store)
	productHandler := handlers.NewProductHandler(productService)

	app := newApp()

	// --- API Routes ---
	api := app.Group("/api")
	productHandler.RegisterRoutes(api)

	// --- Start HTTP Server ---
	logx.Info().Str("port", appPort).Msg("starting server")

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			logx.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	<-quit
	logx.Info().Msg("shutting down server")

	if err := app.Shutdown(); err != nil {
		logx.Error().Err(err).Msg("error during shutdown")
	}
	logx.Info().Msg("server stopped")
}

// newApp builds the Fiber app with request logging, panic recovery and the
// catch-all JSON error handler shared by main and the integration tests.
func newApp() *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			logx.Error().Err(err).
				Str("method", c.Method()).
				Str("path", c.Path()).
				Msg("unhandled error")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Internal server error",
			})
		},
	})

	// Timestamp, method and path for every inbound request.
	app.Use(logger.New(logger.Config{
		Format:     "${time} ${method} ${path}\n",
		TimeFormat: time.RFC3339,
	}))
	app.Use(recover.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Welcome to the Product Catalog API")
	})

	return app
}

// seedProducts populates the store with the initial catalog.
func seedProducts(store repositories.ProductStore) {
	products := []models.Product{
		{Name: "Laptop", Description: "High-performance laptop with 16GB RAM", Price: 1200, Category: "electronics", InStock: true},
		{Name: "Smartphone", Description: "Latest model with 128GB storage", Price: 800, Category: "electronics", InStock: true},
		{Name: "Coffee Maker", Description: "Programmable coffee maker with timer", Price: 50, Category: "kitchen", InStock: false},
	}

	for _, p := range products {
		created := store.Insert(p)
		logx.Debug().Str("id", created.ID).Str("name", created.Name).Msg("seeded product")
	}
}
