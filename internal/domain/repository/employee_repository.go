package repository

import (
	"context"

	"github.com/jhoicas/estoquespy/internal/domain/entity"
)

// EmployeeRepository lectura de funcionarios (datos de referencia).
type EmployeeRepository interface {
	List(ctx context.Context) ([]entity.Employee, error)
}
