package dto

import (
	"strconv"

	"github.com/jhoicas/estoquespy/internal/domain/entity"
)

// MovementPayload representación JSON de ProductMovement en GET /api/movements.
type MovementPayload struct {
	ID          FlexString `json:"id,omitempty"`
	ProductName string     `json:"productName"`
	Type        string     `json:"type"`
	Quantity    int        `json:"quantity"`
	Date        string     `json:"date"`
	Time        string     `json:"time"`
	Responsible string     `json:"responsible"`
}

// ToEntity convierte el payload; si el backend omite el ID se usa la posición en la colección.
func (p MovementPayload) ToEntity(index int) entity.ProductMovement {
	id := p.ID.String()
	if id == "" {
		id = strconv.Itoa(index)
	}
	return entity.ProductMovement{
		ID:          id,
		ProductName: p.ProductName,
		Type:        p.Type,
		Quantity:    p.Quantity,
		Date:        p.Date,
		Time:        p.Time,
		Responsible: p.Responsible,
	}
}

// NewMovementPayload convierte la entidad a payload.
func NewMovementPayload(m entity.ProductMovement) MovementPayload {
	return MovementPayload{
		ID:          FlexString(m.ID),
		ProductName: m.ProductName,
		Type:        m.Type,
		Quantity:    m.Quantity,
		Date:        m.Date,
		Time:        m.Time,
		Responsible: m.Responsible,
	}
}

// RegisterMovementRequest body para POST /api/movements en el backend simulado.
// Si TagCode está presente se resuelve el producto por IDRFID (lectura automática del lector).
type RegisterMovementRequest struct {
	TagCode     string `json:"tagCode,omitempty"`
	ProductName string `json:"productName,omitempty"`
	Type        string `json:"type"`
	Quantity    int    `json:"quantity"`
	Responsible string `json:"responsible"`
}

// MovementRowDTO fila proyectada del historial de movimientos.
type MovementRowDTO struct {
	MovementPayload
	Unregistered bool `json:"unregistered"`
}

// MovementSummaryDTO agregados de movimientos.
type MovementSummaryDTO struct {
	TotalEntradas int `json:"totalEntradas"`
	TotalSaidas   int `json:"totalSaidas"`
	Balance       int `json:"balance"`
	Unregistered  int `json:"unregistered"`
	Count         int `json:"count"`
}

// MovementListResponse respuesta de GET /api/view/movements.
type MovementListResponse struct {
	Items   []MovementRowDTO   `json:"items"`
	Summary MovementSummaryDTO `json:"summary"`
	Loaded  bool               `json:"loaded"`
}
