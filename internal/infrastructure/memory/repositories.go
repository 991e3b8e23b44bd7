package memory

import (
	"context"

	"github.com/jhoicas/estoquespy/internal/domain/entity"
	"github.com/jhoicas/estoquespy/internal/domain/repository"
)

var (
	_ repository.ProductRepository  = (*ProductRepository)(nil)
	_ repository.MovementRepository = (*MovementRepository)(nil)
	_ repository.EmployeeRepository = (*EmployeeRepository)(nil)
)

// ProductRepository adapta Store al puerto de productos.
type ProductRepository struct{ s *Store }

// NewProductRepository construye el adaptador.
func NewProductRepository(s *Store) *ProductRepository { return &ProductRepository{s: s} }

func (r *ProductRepository) List(ctx context.Context) ([]entity.Product, error) {
	return r.s.ListProducts(ctx)
}

func (r *ProductRepository) Create(ctx context.Context, p entity.Product) error {
	_, err := r.s.CreateProduct(ctx, p)
	return err
}

func (r *ProductRepository) Update(ctx context.Context, p entity.Product) error {
	return r.s.UpdateProduct(ctx, p)
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	return r.s.DeleteProduct(ctx, id)
}

// MovementRepository adapta Store al puerto de movimientos.
type MovementRepository struct{ s *Store }

// NewMovementRepository construye el adaptador.
func NewMovementRepository(s *Store) *MovementRepository { return &MovementRepository{s: s} }

func (r *MovementRepository) List(ctx context.Context) ([]entity.ProductMovement, error) {
	return r.s.ListMovements(ctx)
}

// EmployeeRepository adapta Store al puerto de funcionarios.
type EmployeeRepository struct{ s *Store }

// NewEmployeeRepository construye el adaptador.
func NewEmployeeRepository(s *Store) *EmployeeRepository { return &EmployeeRepository{s: s} }

func (r *EmployeeRepository) List(ctx context.Context) ([]entity.Employee, error) {
	return r.s.ListEmployees(ctx)
}
