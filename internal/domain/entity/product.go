package entity

import (
	"github.com/shopspring/decimal"
)

// Product representa una prenda registrada en el inventario.
// RegisteredBy guarda el nombre del funcionario (no su ID); la desnormalización es aceptada.
// IDRFID, si existe, ya viene normalizado (mayúsculas, sin espacios) desde el gateway.
type Product struct {
	ID           string
	Name         string
	Category     string
	Size         string
	Color        string
	Quantity     int
	Price        decimal.Decimal
	Supplier     string
	RegisteredBy string
	RegisteredAt string // fecha de calendario YYYY-MM-DD
	IDRFID       string
}

// StockValue devuelve Quantity × Price.
func (p Product) StockValue() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Quantity)))
}
