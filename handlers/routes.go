package handlers

import (
	"github.com/Kreissys/mi-ecommerce-pro/config"
	"github.com/Kreissys/mi-ecommerce-pro/middleware"
	"github.com/Kreissys/mi-ecommerce-pro/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes registers the API route table under /api/v1.
func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	categoryHandler := NewCategoryHandler(repository.NewCategoryRepo(db))
	productHandler := NewProductHandler(repository.NewProductRepo(db), cfg.MediaRoot)
	orderHandler := NewOrderHandler(repository.NewOrderRepo(db))

	api := app.Group("/api/v1", middleware.OptionalIdentity(cfg.JWTSecret))

	// Categorías (read-only; catalog management happens elsewhere)
	api.Get("/categorias", categoryHandler.GetCategories)
	api.Get("/categorias/:slug", categoryHandler.GetCategory)

	// Productos
	api.Get("/productos", productHandler.GetProducts)
	api.Post("/productos", productHandler.CreateProduct)
	api.Get("/productos/:slug", productHandler.GetProduct)
	api.Put("/productos/:slug", productHandler.UpdateProduct)
	api.Patch("/productos/:slug", productHandler.PatchProduct)
	api.Delete("/productos/:slug", productHandler.DeleteProduct)
	api.Post("/productos/:slug/disminuir_stock", productHandler.DecrementStock)

	// Pedidos
	api.Get("/pedidos", orderHandler.GetOrders)
	api.Post("/pedidos", orderHandler.CreateOrder)
	api.Get("/pedidos/:id", orderHandler.GetOrder)
	api.Put("/pedidos/:id", orderHandler.UpdateOrder)
	api.Patch("/pedidos/:id", orderHandler.PatchOrder)
	api.Delete("/pedidos/:id", orderHandler.DeleteOrder)
}
