package main

import (
	"log"

	"github.com/Kreissys/mi-ecommerce-pro/config"
	"github.com/Kreissys/mi-ecommerce-pro/handlers"
	"github.com/Kreissys/mi-ecommerce-pro/middleware"
	"github.com/Kreissys/mi-ecommerce-pro/models"

	"github.com/gofiber/fiber/v2"
)

func main() {
	cfg := config.LoadConfig()

	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := config.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	app := fiber.New(fiber.Config{
		AppName:      "Tienda Backend",
		ServerHeader: "Tienda Backend Server/1.0",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Default 500 statuscode
			code := fiber.StatusInternalServerError
			msg := "Internal Server Error"

			// Retrieve the custom statuscode if it's a *fiber.Error
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				msg = e.Message
			}

			return c.Status(code).JSON(models.Detail(msg))
		},
	})

	middleware.SetupMiddleware(app)

	// Product images
	app.Static("/media", cfg.MediaRoot)

	// Health Check Endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "success",
			"message": "API is healthy",
		})
	})

	handlers.SetupRoutes(app, db, cfg)

	middleware.SetupErrorHandler(app)

	log.Printf("🚀 Server starting on host %s in port %s mode", cfg.HOST, cfg.AppPort)

	if err := app.Listen(cfg.HOST + ":" + cfg.AppPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
