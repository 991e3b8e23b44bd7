package usecase

import (
	"context"

	"github.com/jhoicas/estoquespy/internal/domain/entity"
)

// ProductStore persistencia de productos del backend simulado.
type ProductStore interface {
	ListProducts(ctx context.Context) ([]entity.Product, error)
	GetProduct(ctx context.Context, id string) (entity.Product, error)
	FindByTag(ctx context.Context, tag string) (entity.Product, bool, error)
	CreateProduct(ctx context.Context, p entity.Product) (entity.Product, error)
	UpdateProduct(ctx context.Context, p entity.Product) error
	DeleteProduct(ctx context.Context, id string) error
}

// MovementStore historial append-only de movimientos.
type MovementStore interface {
	ListMovements(ctx context.Context) ([]entity.ProductMovement, error)
	AppendMovement(ctx context.Context, m entity.ProductMovement) (entity.ProductMovement, error)
}

// EmployeeStore lectura de funcionarios.
type EmployeeStore interface {
	ListEmployees(ctx context.Context) ([]entity.Employee, error)
}
