package handlers

import (
	"errors"
	"strconv"

	"github.com/Kreissys/mi-ecommerce-pro/models"
	"github.com/Kreissys/mi-ecommerce-pro/repository"
	"github.com/Kreissys/mi-ecommerce-pro/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type ProductHandler struct {
	Products  *repository.ProductRepo
	MediaRoot string
}

func NewProductHandler(products *repository.ProductRepo, mediaRoot string) *ProductHandler {
	return &ProductHandler{Products: products, MediaRoot: mediaRoot}
}

// ProductRequest accepts JSON bodies as well as multipart form fields, so
// an image can ride along with the rest of the product.
type ProductRequest struct {
	Name               string          `json:"nombre" form:"nombre"`
	Slug               string          `json:"slug" form:"slug"`
	CategoryID         uint            `json:"categoria_id" form:"categoria_id"`
	Description        string          `json:"descripcion" form:"descripcion"`
	Price              decimal.Decimal `json:"precio" form:"precio"`
	Stock              int             `json:"stock" form:"stock"`
	Available          *bool           `json:"disponible" form:"disponible"`
	IsNew              bool            `json:"es_nuevo" form:"es_nuevo"`
	HasDiscount        bool            `json:"tiene_descuento" form:"tiene_descuento"`
	DiscountPercentage int             `json:"porcentaje_descuento" form:"porcentaje_descuento"`
}

// ProductPatchRequest only touches the fields present in the body.
type ProductPatchRequest struct {
	Name               *string          `json:"nombre" form:"nombre"`
	Slug               *string          `json:"slug" form:"slug"`
	CategoryID         *uint            `json:"categoria_id" form:"categoria_id"`
	Description        *string          `json:"descripcion" form:"descripcion"`
	Price              *decimal.Decimal `json:"precio" form:"precio"`
	Stock              *int             `json:"stock" form:"stock"`
	Available          *bool            `json:"disponible" form:"disponible"`
	IsNew              *bool            `json:"es_nuevo" form:"es_nuevo"`
	HasDiscount        *bool            `json:"tiene_descuento" form:"tiene_descuento"`
	DiscountPercentage *int             `json:"porcentaje_descuento" form:"porcentaje_descuento"`
}

// GetProducts - GET /api/v1/productos
// Only available products show up on the list.
func (h *ProductHandler) GetProducts(c *fiber.Ctx) error {
	products, err := h.Products.List(c.Context(), true)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.Detail("No se pudieron obtener los productos."))
	}

	renderProducts(c, products)

	return c.JSON(products)
}

// GetProduct - GET /api/v1/productos/:slug
// Retrieval by slug ignores the disponible flag.
func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	product, err := h.Products.GetBySlug(c.Context(), c.Params("slug"))
	if errors.Is(err, repository.ErrProductNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(models.Detail("No encontrado."))
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.Detail("No se pudo obtener el producto."))
	}

	renderProduct(c, product)

	return c.JSON(product)
}

// CreateProduct - POST /api/v1/productos
func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var req ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Detail("Datos inválidos."))
	}

	if req.Name == "" || req.CategoryID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(models.Detail("nombre y categoria_id son obligatorios."))
	}
	if req.Stock < 0 || req.DiscountPercentage < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(models.Detail("stock y porcentaje_descuento no pueden ser negativos."))
	}

	if req.Slug == "" {
		req.Slug = utils.Slugify(req.Name)
	}

	imagePath, err := saveProductImage(c, h.MediaRoot)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Detail(err.Error()))
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	product := models.Product{
		CategoryID:         req.CategoryID,
		Name:               req.Name,
		Slug:               req.Slug,
		Description:        req.Description,
		Price:              req.Price,
		Stock:              req.Stock,
		Image:              imagePath,
		Available:          available,
		IsNew:              req.IsNew,
		HasDiscount:        req.HasDiscount,
		DiscountPercentage: req.DiscountPercentage,
	}

	if err := h.Products.Create(c.Context(), &product); err != nil {
		if errors.Is(err, repository.ErrDuplicateSlug) {
			return c.Status(fiber.StatusBadRequest).JSON(models.Detail("Ya existe un producto con ese slug."))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.Detail("No se pudo crear el producto."))
	}

	created, err := h.Products.GetBySlug(c.Context(), product.Slug)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.Detail("No se pudo obtener el producto."))
	}

	renderProduct(c, created)

	return c.Status(fiber.StatusCreated).JSON(created)
}

// UpdateProduct - PUT /api/v1/productos/:slug
func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	product, err := h.Products.GetBySlug(c.Context(), c.Params("slug"))
	if errors.Is(err, repository.ErrProductNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(models.Detail("No encontrado."))
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.Detail("No se pudo obtener el producto."))
	}

	var req ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Detail("Datos inválidos."))
	}

	if req.Name == "" || req.CategoryID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(models.Detail("nombre y categoria_id son obligatorios."))
	}
	if req.Stock < 0 || req.DiscountPercentage < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(models.Detail("stock y porcentaje_descuento no pueden ser negativos."))
	}

	if req.Slug == "" {
		req.Slug = utils.Slugify(req.Name)
	}

	imagePath, err := saveProductImage(c, h.MediaRoot)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Detail(err.Error()))
	}

	// Update fields
	product.CategoryID = req.CategoryID
	product.Name = req.Name
	product.Slug = req.Slug
	product.Description = req.Description
	product.Price = req.Price
	product.Stock = req.Stock
	product.IsNew = req.IsNew
	product.HasDiscount = req.HasDiscount
	product.DiscountPercentage = req.DiscountPercentage
	if req.Available != nil {
		product.Available = *req.Available
	}
	if imagePath != "" {
		product.Image = imagePath
	}

	if err := h.Products.Update(c.Context(), product); err != nil {
		if errors.Is(err, repository.ErrDuplicateSlug) {
			return c.Status(fiber.StatusBadRequest).JSON(models.Detail("Ya existe un producto con ese slug."))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.Detail("No se pudo actualizar el producto."))
	}

	updated, err := h.Products.GetBySlug(c.Context(), product.Slug)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.Detail("No se pudo obtener el producto."))
	}

	renderProduct(c, updated)

	return c.JSON(updated)
}

// PatchProduct - PATCH /api/v1/productos/:slug
func (h *ProductHandler) PatchProduct(c *fiber.Ctx) error {
	product, err := h.Products.GetBySlug(c.Context(), c.Params("slug"))
	if errors.Is(err, repository.ErrProductNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(models.Detail("No encontrado."))
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.Detail("No se pudo obtener el producto."))
	}

	var req ProductPatchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Detail("Datos inválidos."))
	}

	if req.Stock != nil && *req.Stock < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(models.Detail("stock no puede ser negativo."))
	}
	if req.DiscountPercentage != nil && *req.DiscountPercentage < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(models.Detail("porcentaje_descuento no puede ser negativo."))
	}

	imagePath, err := saveProductImage(c, h.MediaRoot)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Detail(err.Error()))
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Slug != nil {
		product.Slug = *req.Slug
	}
	if req.CategoryID != nil {
		product.CategoryID = *req.CategoryID
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.Available != nil {
		product.Available = *req.Available
	}
	if req.IsNew != nil {
		product.IsNew = *req.IsNew
	}
	if req.HasDiscount != nil {
		product.HasDiscount = *req.HasDiscount
	}
	if req.DiscountPercentage != nil {
		product.DiscountPercentage = *req.DiscountPercentage
	}
	if imagePath != "" {
		product.Image = imagePath
	}

	if err := h.Products.Update(c.Context(), product); err != nil {
		if errors.Is(err, repository.ErrDuplicateSlug) {
			return c.Status(fiber.StatusBadRequest).JSON(models.Detail("Ya existe un producto con ese slug."))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.Detail("No se pudo actualizar el producto."))
	}

	updated, err := h.Products.GetBySlug(c.Context(), product.Slug)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.Detail("No se pudo obtener el producto."))
	}

	renderProduct(c, updated)

	return c.JSON(updated)
}

// DeleteProduct - DELETE /api/v1/productos/:slug
func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	product, err := h.Products.GetBySlug(c.Context(), c.Params("slug"))
	if errors.Is(err, repository.ErrProductNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(models.Detail("No encontrado."))
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.Detail("No se pudo obtener el producto."))
	}

	if err := h.Products.Delete(c.Context(), product); err != nil {
		if errors.Is(err, repository.ErrProductReferenced) {
			return c.Status(fiber.StatusConflict).JSON(models.Detail("El producto está referenciado por un pedido."))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.Detail("No se pudo eliminar el producto."))
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// DecrementStock - POST /api/v1/productos/:slug/disminuir_stock
// Body JSON: { "cantidad": 3 }
func (h *ProductHandler) DecrementStock(c *fiber.Ctx) error {
	var body struct {
		Quantity any `json:"cantidad"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Detail("Cantidad inválida."))
	}

	quantity, ok := parseQuantity(body.Quantity)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(models.Detail("Cantidad inválida."))
	}
	if quantity <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(models.Detail("La cantidad debe ser mayor a 0."))
	}

	product, err := h.Products.DecrementStock(c.Context(), c.Params("slug"), quantity)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrProductNotFound):
			return c.Status(fiber.StatusNotFound).JSON(models.Detail("No encontrado."))
		case errors.Is(err, repository.ErrInsufficientStock):
			return c.Status(fiber.StatusBadRequest).JSON(models.Detail("Stock insuficiente."))
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(models.Detail("No se pudo actualizar el stock."))
		}
	}

	renderProduct(c, product)

	return c.JSON(product)
}

// parseQuantity coerces the raw cantidad value into an integer. JSON
// numbers must be integral; strings must parse as base-10 integers. A
// missing value counts as zero, which the caller rejects as non-positive.
func parseQuantity(raw any) (int, bool) {
	switch v := raw.(type) {
	case nil:
		return 0, true
	case float64:
		if v != float64(int(v)) {
			return 0, false
		}
		return int(v), true
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}
