package inventory

import "github.com/jhoicas/estoquespy/internal/domain/entity"

// MovementTotals agregados de una colección de movimientos.
// Balance = TotalEntradas - TotalSaidas, sin recorte: un saldo negativo es válido.
type MovementTotals struct {
	TotalEntradas int
	TotalSaidas   int
	Balance       int
	Unregistered  int // movimientos con etiqueta desconocida (incluidos en los totales)
	Count         int
}

// Summarize calcula los totales. Función pura; tipos desconocidos no suman a ningún lado.
func Summarize(movements []entity.ProductMovement) MovementTotals {
	var t MovementTotals
	for _, m := range movements {
		switch m.Type {
		case entity.MovementTypeEntrada:
			t.TotalEntradas += m.Quantity
		case entity.MovementTypeSaida:
			t.TotalSaidas += m.Quantity
		}
		if m.IsUnregistered() {
			t.Unregistered++
		}
	}
	t.Count = len(movements)
	t.Balance = t.TotalEntradas - t.TotalSaidas
	return t
}
