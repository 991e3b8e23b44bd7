package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/estoquespy/internal/application/dto"
	"github.com/jhoicas/estoquespy/internal/domain"
	"github.com/jhoicas/estoquespy/internal/domain/entity"
	"github.com/jhoicas/estoquespy/internal/domain/inventory"
)

// MovementUseCase historial de movimientos del backend simulado.
// Register simula la lectura del lector RFID; la cantidad del producto no se ajusta.
type MovementUseCase struct {
	movements MovementStore
	products  ProductStore
	now       func() time.Time
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(movements MovementStore, products ProductStore) *MovementUseCase {
	return &MovementUseCase{movements: movements, products: products, now: time.Now}
}

// List devuelve los movimientos del más antiguo al más reciente.
func (uc *MovementUseCase) List(ctx context.Context) ([]dto.MovementPayload, error) {
	list, err := uc.movements.ListMovements(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementPayload, 0, len(list))
	for _, m := range list {
		out = append(out, dto.NewMovementPayload(m))
	}
	return out, nil
}

// Register agrega un movimiento. Con TagCode, el nombre del producto se resuelve por
// IDRFID; una etiqueta sin producto queda como "TAG DESCONHECIDA".
func (uc *MovementUseCase) Register(ctx context.Context, in dto.RegisterMovementRequest) (*dto.MovementPayload, error) {
	switch in.Type {
	case entity.MovementTypeEntrada, entity.MovementTypeSaida:
	default:
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	name := strings.TrimSpace(in.ProductName)
	if tag := inventory.NormalizeTagCode(in.TagCode); tag != "" {
		p, ok, err := uc.products.FindByTag(ctx, tag)
		if err != nil {
			return nil, err
		}
		name = entity.UnknownTagProductName
		if ok {
			name = p.Name
		}
	}
	if name == "" {
		return nil, domain.ErrInvalidInput
	}

	now := uc.now()
	saved, err := uc.movements.AppendMovement(ctx, entity.ProductMovement{
		ProductName: name,
		Type:        in.Type,
		Quantity:    in.Quantity,
		Date:        now.Format("2006-01-02"),
		Time:        now.Format("15:04"),
		Responsible: in.Responsible,
	})
	if err != nil {
		return nil, err
	}
	out := dto.NewMovementPayload(saved)
	return &out, nil
}
