package repository

import (
	"context"

	"github.com/jhoicas/estoquespy/internal/domain/entity"
)

// ProductRepository define el puerto hacia la fuente de verdad de productos (DIP).
// La implementación remota habla con el backend REST; la de memoria sirve el modo offline.
type ProductRepository interface {
	List(ctx context.Context) ([]entity.Product, error)
	Create(ctx context.Context, product entity.Product) error
	Update(ctx context.Context, product entity.Product) error
	Delete(ctx context.Context, id string) error
}
