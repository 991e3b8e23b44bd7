package view

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/estoquespy/internal/domain/entity"
)

// DashboardStats indicadores del panel principal.
type DashboardStats struct {
	TotalUnits    int
	ProductCount  int
	StockValue    decimal.Decimal
	EmployeeCount int
}

// Dashboard calcula unidades totales, valor en stock (Σ quantity × price) y conteos.
func Dashboard(products []entity.Product, employees []entity.Employee) DashboardStats {
	stats := DashboardStats{
		ProductCount:  len(products),
		EmployeeCount: len(employees),
		StockValue:    decimal.Zero,
	}
	for _, p := range products {
		stats.TotalUnits = addUnits(stats.TotalUnits, p.Quantity)
		stats.StockValue = stats.StockValue.Add(p.StockValue())
	}
	return stats
}

// addUnits suma saturando en math.MaxInt; cantidades negativas no restan.
func addUnits(total, qty int) int {
	if qty <= 0 {
		return total
	}
	if total > math.MaxInt-qty {
		return math.MaxInt
	}
	return total + qty
}

// FormatBRL formatea un monto en reales con separadores pt-BR ("R$ 1.234,50").
// Trabaja sobre la representación decimal exacta, sin pasar por float.
func FormatBRL(d decimal.Decimal) string {
	fixed := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}
	intPart, frac, _ := strings.Cut(fixed, ".")
	return "R$ " + sign + groupThousands(intPart) + "," + frac
}

// groupThousands inserta puntos de miles: "1234567" → "1.234.567".
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
