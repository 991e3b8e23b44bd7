package usecase

import (
	"context"

	"github.com/jhoicas/estoquespy/internal/application/dto"
)

// EmployeeUseCase lectura de funcionarios.
type EmployeeUseCase struct {
	store EmployeeStore
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(store EmployeeStore) *EmployeeUseCase {
	return &EmployeeUseCase{store: store}
}

// List devuelve todos los funcionarios.
func (uc *EmployeeUseCase) List(ctx context.Context) ([]dto.EmployeePayload, error) {
	list, err := uc.store.ListEmployees(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmployeePayload, 0, len(list))
	for _, e := range list {
		out = append(out, dto.NewEmployeePayload(e))
	}
	return out, nil
}
