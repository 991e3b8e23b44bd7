package rest

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jhoicas/estoquespy/internal/application/dto"
	"github.com/jhoicas/estoquespy/internal/domain/entity"
	"github.com/jhoicas/estoquespy/internal/domain/repository"
)

// Verificar en tiempo de compilación que los adaptadores implementan los puertos.
var (
	_ repository.ProductRepository  = (*ProductRepository)(nil)
	_ repository.MovementRepository = (*MovementRepository)(nil)
	_ repository.EmployeeRepository = (*EmployeeRepository)(nil)
)

// ProductRepository /api/products.
type ProductRepository struct{ c *Client }

// NewProductRepository construye el adaptador.
func NewProductRepository(c *Client) *ProductRepository { return &ProductRepository{c: c} }

// List GET /api/products.
func (r *ProductRepository) List(ctx context.Context) ([]entity.Product, error) {
	var payload []dto.ProductPayload
	if err := r.c.do(ctx, http.MethodGet, "/api/products", nil, &payload); err != nil {
		return nil, err
	}
	out := make([]entity.Product, 0, len(payload))
	for _, p := range payload {
		out = append(out, p.ToEntity())
	}
	return out, nil
}

// Create POST /api/products (sin id; el backend lo asigna).
func (r *ProductRepository) Create(ctx context.Context, product entity.Product) error {
	body := dto.NewProductPayload(product)
	body.ID = ""
	return r.c.do(ctx, http.MethodPost, "/api/products", body, nil)
}

// Update PUT /api/products/{id} con el objeto completo.
func (r *ProductRepository) Update(ctx context.Context, product entity.Product) error {
	return r.c.do(ctx, http.MethodPut, "/api/products/"+url.PathEscape(product.ID), dto.NewProductPayload(product), nil)
}

// Delete DELETE /api/products/{id}.
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	return r.c.do(ctx, http.MethodDelete, "/api/products/"+url.PathEscape(id), nil, nil)
}

// MovementRepository /api/movements (solo lectura).
type MovementRepository struct{ c *Client }

// NewMovementRepository construye el adaptador.
func NewMovementRepository(c *Client) *MovementRepository { return &MovementRepository{c: c} }

// List GET /api/movements, en el orden del backend (más antiguo primero).
func (r *MovementRepository) List(ctx context.Context) ([]entity.ProductMovement, error) {
	var payload []dto.MovementPayload
	if err := r.c.do(ctx, http.MethodGet, "/api/movements", nil, &payload); err != nil {
		return nil, err
	}
	out := make([]entity.ProductMovement, 0, len(payload))
	for i, m := range payload {
		out = append(out, m.ToEntity(i))
	}
	return out, nil
}

// EmployeeRepository /api/employees (solo lectura).
type EmployeeRepository struct{ c *Client }

// NewEmployeeRepository construye el adaptador.
func NewEmployeeRepository(c *Client) *EmployeeRepository { return &EmployeeRepository{c: c} }

// List GET /api/employees.
func (r *EmployeeRepository) List(ctx context.Context) ([]entity.Employee, error) {
	var payload []dto.EmployeePayload
	if err := r.c.do(ctx, http.MethodGet, "/api/employees", nil, &payload); err != nil {
		return nil, err
	}
	out := make([]entity.Employee, 0, len(payload))
	for _, e := range payload {
		out = append(out, e.ToEntity())
	}
	return out, nil
}
