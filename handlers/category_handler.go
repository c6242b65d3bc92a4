package handlers

import (
	"errors"

	"github.com/Kreissys/mi-ecommerce-pro/models"
	"github.com/Kreissys/mi-ecommerce-pro/repository"

	"github.com/gofiber/fiber/v2"
)

type CategoryHandler struct {
	Categories *repository.CategoryRepo
}

func NewCategoryHandler(categories *repository.CategoryRepo) *CategoryHandler {
	return &CategoryHandler{Categories: categories}
}

// GetCategories - GET /api/v1/categorias
func (h *CategoryHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.Categories.GetAll(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.Detail("No se pudieron obtener las categorías."))
	}

	for i := range categories {
		renderProducts(c, categories[i].Products)
	}

	return c.JSON(categories)
}

// GetCategory - GET /api/v1/categorias/:slug
func (h *CategoryHandler) GetCategory(c *fiber.Ctx) error {
	category, err := h.Categories.GetBySlug(c.Context(), c.Params("slug"))
	if errors.Is(err, repository.ErrCategoryNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(models.Detail("No encontrado."))
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.Detail("No se pudo obtener la categoría."))
	}

	renderProducts(c, category.Products)

	return c.JSON(category)
}
