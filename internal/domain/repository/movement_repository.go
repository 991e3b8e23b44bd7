package repository

import (
	"context"

	"github.com/jhoicas/estoquespy/internal/domain/entity"
)

// MovementRepository lectura de movimientos. El cliente nunca crea ni elimina movimientos.
// List devuelve la colección en orden de inserción (más antiguo primero).
type MovementRepository interface {
	List(ctx context.Context) ([]entity.ProductMovement, error)
}
