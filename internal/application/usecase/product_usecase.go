// Package usecase contiene los casos de uso del backend simulado de EstoqueSpy
// (/api/products, /api/movements, /api/employees).
package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/estoquespy/internal/application/dto"
	"github.com/jhoicas/estoquespy/internal/domain"
	"github.com/jhoicas/estoquespy/internal/domain/entity"
	"github.com/jhoicas/estoquespy/internal/domain/inventory"
)

// ProductUseCase CRUD de productos. El backend es la fuente de verdad de los IDs.
type ProductUseCase struct {
	store ProductStore
	newID func() string
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(store ProductStore) *ProductUseCase {
	return &ProductUseCase{store: store, newID: func() string { return uuid.New().String() }}
}

// List devuelve todos los productos.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductPayload, error) {
	list, err := uc.store.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductPayload, 0, len(list))
	for _, p := range list {
		out = append(out, dto.NewProductPayload(p))
	}
	return out, nil
}

// Create asigna un ID nuevo (se ignora el recibido) y guarda el producto.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductPayload) (*dto.ProductPayload, error) {
	product, err := toValidProduct(in)
	if err != nil {
		return nil, err
	}
	product.ID = uc.newID()
	created, err := uc.store.CreateProduct(ctx, product)
	if err != nil {
		return nil, err
	}
	out := dto.NewProductPayload(created)
	return &out, nil
}

// Update reemplazo completo del producto con el ID de la ruta.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.ProductPayload) (*dto.ProductPayload, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	product, err := toValidProduct(in)
	if err != nil {
		return nil, err
	}
	product.ID = id
	if err := uc.store.UpdateProduct(ctx, product); err != nil {
		return nil, err
	}
	out := dto.NewProductPayload(product)
	return &out, nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.store.DeleteProduct(ctx, id)
}

func toValidProduct(in dto.ProductPayload) (entity.Product, error) {
	if strings.TrimSpace(in.Name) == "" {
		return entity.Product{}, domain.ErrInvalidInput
	}
	if in.Quantity < 0 || in.Quantity > dto.MaxQuantity {
		return entity.Product{}, domain.ErrInvalidQuantity
	}
	p := in.ToEntity()
	if p.Price.IsNegative() || p.Price.GreaterThan(dto.MaxPrice) {
		return entity.Product{}, domain.ErrInvalidPrice
	}
	p.IDRFID = inventory.NormalizeTagCode(p.IDRFID)
	return p, nil
}
