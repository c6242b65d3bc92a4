package handlers

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Kreissys/mi-ecommerce-pro/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// saveProductImage stores an uploaded image under <mediaRoot>/productos and
// returns the path relative to the media root. A missing "imagen" file part
// is not an error; the caller gets an empty path.
func saveProductImage(c *fiber.Ctx, mediaRoot string) (string, error) {
	file, err := c.FormFile("imagen")
	if err != nil {
		return "", nil
	}

	// Validate file type (simple check extension)
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" && ext != ".webp" {
		return "", fmt.Errorf("solo se permiten archivos .jpg, .jpeg, .png y .webp")
	}

	// Generate unique filename
	filename := fmt.Sprintf("%s%s", uuid.New().String(), ext)

	destination := filepath.Join(mediaRoot, "productos", filename)
	if err := c.SaveFile(file, destination); err != nil {
		return "", fmt.Errorf("no se pudo guardar el archivo: %w", err)
	}

	return filepath.ToSlash(filepath.Join("productos", filename)), nil
}

// renderProduct rewrites the stored relative image path into an absolute
// URL. When no request base URL is available the relative path stays as-is.
func renderProduct(c *fiber.Ctx, product *models.Product) {
	if product.Image == "" {
		return
	}
	if strings.HasPrefix(product.Image, "http://") || strings.HasPrefix(product.Image, "https://") {
		return
	}
	if base := c.BaseURL(); base != "" {
		product.Image = base + "/media/" + product.Image
	}
}

func renderProducts(c *fiber.Ctx, products []models.Product) {
	for i := range products {
		renderProduct(c, &products[i])
	}
}
