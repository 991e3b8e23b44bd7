package dto

import "github.com/jhoicas/estoquespy/internal/domain/entity"

// EmployeePayload representación JSON de Employee en GET /api/employees.
type EmployeePayload struct {
	ID           FlexString `json:"id"`
	Name         string     `json:"name"`
	Role         string     `json:"role"`
	Email        string     `json:"email"`
	RegisteredAt string     `json:"registeredAt"`
}

// ToEntity convierte el payload a entidad.
func (p EmployeePayload) ToEntity() entity.Employee {
	return entity.Employee{
		ID:           p.ID.String(),
		Name:         p.Name,
		Role:         p.Role,
		Email:        p.Email,
		RegisteredAt: p.RegisteredAt,
	}
}

// NewEmployeePayload convierte la entidad a payload.
func NewEmployeePayload(e entity.Employee) EmployeePayload {
	return EmployeePayload{
		ID:           FlexString(e.ID),
		Name:         e.Name,
		Role:         e.Role,
		Email:        e.Email,
		RegisteredAt: e.RegisteredAt,
	}
}

// EmployeeListResponse respuesta de GET /api/view/employees.
type EmployeeListResponse struct {
	Items []EmployeePayload `json:"items"`
	Count int               `json:"count"`
}
