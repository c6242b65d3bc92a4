package handlers

import (
	"errors"
	"strconv"

	"github.com/Kreissys/mi-ecommerce-pro/middleware"
	"github.com/Kreissys/mi-ecommerce-pro/models"
	"github.com/Kreissys/mi-ecommerce-pro/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type OrderHandler struct {
	Orders *repository.OrderRepo
}

func NewOrderHandler(orders *repository.OrderRepo) *OrderHandler {
	return &OrderHandler{Orders: orders}
}

type OrderItemRequest struct {
	ProductID uint            `json:"producto"`
	Quantity  int             `json:"cantidad"`
	UnitPrice decimal.Decimal `json:"precio_unitario"`
}

type OrderRequest struct {
	UserUID       *string            `json:"user_uid"`
	Email         string             `json:"email"`
	CustomerName  string             `json:"nombre_cliente"`
	Address       string             `json:"direccion"`
	Total         decimal.Decimal    `json:"total"`
	PaymentMethod string             `json:"metodo_pago"`
	Items         []OrderItemRequest `json:"items"`
}

func (r *OrderRequest) validate() string {
	if r.Email == "" || r.CustomerName == "" || r.PaymentMethod == "" {
		return "email, nombre_cliente y metodo_pago son obligatorios."
	}
	for _, item := range r.Items {
		if item.ProductID == 0 {
			return "Cada item debe referenciar un producto."
		}
		if item.Quantity <= 0 {
			return "La cantidad de cada item debe ser mayor a 0."
		}
	}
	return ""
}

func (r *OrderRequest) items() []models.OrderItem {
	if r.Items == nil {
		return nil
	}
	items := make([]models.OrderItem, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, models.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	return items
}

// GetOrders - GET /api/v1/pedidos
// Newest orders first.
func (h *OrderHandler) GetOrders(c *fiber.Ctx) error {
	orders, err := h.Orders.GetAll(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.Detail("No se pudieron obtener los pedidos."))
	}
	return c.JSON(orders)
}

// GetOrder - GET /api/v1/pedidos/:id
func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(models.Detail("No encontrado."))
	}

	order, err := h.Orders.GetByID(c.Context(), uint(id))
	if errors.Is(err, repository.ErrOrderNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(models.Detail("No encontrado."))
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.Detail("No se pudo obtener el pedido."))
	}

	return c.JSON(order)
}

// CreateOrder - POST /api/v1/pedidos
// The header and every item persist atomically; a single bad item drops
// the whole order.
func (h *OrderHandler) CreateOrder(c *fiber.Ctx) error {
	var req OrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Detail("Datos inválidos."))
	}

	if msg := req.validate(); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.Detail(msg))
	}
	if len(req.Items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(models.Detail("El pedido debe incluir al menos un item."))
	}

	userUID := req.UserUID
	if userUID == nil {
		if sub, ok := c.Locals(middleware.UserUIDKey).(string); ok && sub != "" {
			userUID = &sub
		}
	}

	order := models.Order{
		UserUID:       userUID,
		Email:         req.Email,
		CustomerName:  req.CustomerName,
		Address:       req.Address,
		Total:         req.Total,
		PaymentMethod: req.PaymentMethod,
		Items:         req.items(),
	}

	if err := h.Orders.Create(c.Context(), &order); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(models.Detail("Un item referencia un producto inexistente."))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.Detail("No se pudo crear el pedido."))
	}

	return c.Status(fiber.StatusCreated).JSON(order)
}

// UpdateOrder - PUT /api/v1/pedidos/:id
// Replaces the header fields; when items is present the item set is
// replaced with it in the same transaction.
func (h *OrderHandler) UpdateOrder(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(models.Detail("No encontrado."))
	}

	order, err := h.Orders.GetByID(c.Context(), uint(id))
	if errors.Is(err, repository.ErrOrderNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(models.Detail("No encontrado."))
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.Detail("No se pudo obtener el pedido."))
	}

	var req OrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Detail("Datos inválidos."))
	}
	if msg := req.validate(); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.Detail(msg))
	}

	if req.UserUID != nil {
		order.UserUID = req.UserUID
	}
	order.Email = req.Email
	order.CustomerName = req.CustomerName
	order.Address = req.Address
	order.Total = req.Total
	order.PaymentMethod = req.PaymentMethod

	if err := h.Orders.Update(c.Context(), order, req.items()); err != nil {
		if errors.Is(err, repository.ErrEmptyOrder) {
			return c.Status(fiber.StatusBadRequest).JSON(models.Detail("El pedido debe incluir al menos un item."))
		}
		if errors.Is(err, repository.ErrProductNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(models.Detail("Un item referencia un producto inexistente."))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.Detail("No se pudo actualizar el pedido."))
	}

	return c.JSON(order)
}

// PatchOrder - PATCH /api/v1/pedidos/:id
// Header fields only; the item set never changes here.
func (h *OrderHandler) PatchOrder(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(models.Detail("No encontrado."))
	}

	order, err := h.Orders.GetByID(c.Context(), uint(id))
	if errors.Is(err, repository.ErrOrderNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(models.Detail("No encontrado."))
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.Detail("No se pudo obtener el pedido."))
	}

	var req struct {
		UserUID       *string          `json:"user_uid"`
		Email         *string          `json:"email"`
		CustomerName  *string          `json:"nombre_cliente"`
		Address       *string          `json:"direccion"`
		Total         *decimal.Decimal `json:"total"`
		PaymentMethod *string          `json:"metodo_pago"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Detail("Datos inválidos."))
	}

	if req.UserUID != nil {
		order.UserUID = req.UserUID
	}
	if req.Email != nil {
		order.Email = *req.Email
	}
	if req.CustomerName != nil {
		order.CustomerName = *req.CustomerName
	}
	if req.Address != nil {
		order.Address = *req.Address
	}
	if req.Total != nil {
		order.Total = *req.Total
	}
	if req.PaymentMethod != nil {
		order.PaymentMethod = *req.PaymentMethod
	}

	if err := h.Orders.Update(c.Context(), order, nil); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.Detail("No se pudo actualizar el pedido."))
	}

	return c.JSON(order)
}

// DeleteOrder - DELETE /api/v1/pedidos/:id
func (h *OrderHandler) DeleteOrder(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(models.Detail("No encontrado."))
	}

	order, err := h.Orders.GetByID(c.Context(), uint(id))
	if errors.Is(err, repository.ErrOrderNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(models.Detail("No encontrado."))
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.Detail("No se pudo obtener el pedido."))
	}

	if err := h.Orders.Delete(c.Context(), order); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.Detail("No se pudo eliminar el pedido."))
	}

	return c.SendStatus(fiber.StatusNoContent)
}
