package api

import (
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(app *fiber.App, handlers *Handlers, staticDir, corsOrigins string) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: corsOrigins,
		AllowMethods: strings.Join([]string{fiber.MethodGet, fiber.MethodPost, fiber.MethodOptions}, ","),
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	// Browser page
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendFile(filepath.Join(staticDir, "index.html"))
	})

	// Proxy endpoints used by the page
	app.Post("/generate", handlers.Generate)
	app.Post("/fetch_article", handlers.FetchArticle)

	// API group with versioning
	api := app.Group("/api/v1")
	{
		api.Get("/health", handlers.HealthCheck)
		api.Get("/interest", handlers.Interest)
		api.Get("/news", handlers.News)
		api.Get("/search", handlers.Search)
	}

	// 404 Handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Endpoint not found",
		})
	})
}
