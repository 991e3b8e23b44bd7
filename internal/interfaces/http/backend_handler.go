package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/estoquespy/internal/application/dto"
	"github.com/jhoicas/estoquespy/internal/application/usecase"
)

// BackendHandler expone el contrato REST de EstoqueSpy sobre el store en memoria.
// Las colecciones se devuelven como arrays JSON planos.
type BackendHandler struct {
	products  *usecase.ProductUseCase
	movements *usecase.MovementUseCase
	employees *usecase.EmployeeUseCase
}

// NewBackendHandler construye el handler.
func NewBackendHandler(
	products *usecase.ProductUseCase,
	movements *usecase.MovementUseCase,
	employees *usecase.EmployeeUseCase,
) *BackendHandler {
	return &BackendHandler{products: products, movements: movements, employees: employees}
}

// ListProducts GET /api/products
func (h *BackendHandler) ListProducts(c *fiber.Ctx) error {
	out, err := h.products.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CreateProduct POST /api/products
func (h *BackendHandler) CreateProduct(c *fiber.Ctx) error {
	var in dto.ProductPayload
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.products.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateProduct PUT /api/products/:id
func (h *BackendHandler) UpdateProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.ProductPayload
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.products.Update(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// DeleteProduct DELETE /api/products/:id
func (h *BackendHandler) DeleteProduct(c *fiber.Ctx) error {
	if err := h.products.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListMovements GET /api/movements (más antiguo primero)
func (h *BackendHandler) ListMovements(c *fiber.Ctx) error {
	out, err := h.movements.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// RegisterMovement POST /api/movements
// Simula una lectura del lector RFID: {tagCode, type, quantity, responsible}.
func (h *BackendHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.movements.Register(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListEmployees GET /api/employees
func (h *BackendHandler) ListEmployees(c *fiber.Ctx) error {
	out, err := h.employees.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
