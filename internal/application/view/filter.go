// Package view deriva las secuencias que se muestran a partir de la caché
// reconciliada. Todo es puro y se recalcula en cada consulta y cada snapshot.
package view

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/jhoicas/estoquespy/internal/domain/entity"
)

// MovementRow movimiento proyectado con la marca de etiqueta no registrada.
type MovementRow struct {
	entity.ProductMovement
	Unregistered bool
}

// matcher compara sin distinguir mayúsculas (case folding Unicode).
// Un cases.Caser no se comparte entre goroutines, por eso se crea por consulta.
type matcher struct {
	caser cases.Caser
	query string
}

func newMatcher(query string) matcher {
	c := cases.Fold()
	return matcher{caser: c, query: c.String(query)}
}

func (m matcher) match(field string) bool {
	return strings.Contains(m.caser.String(field), m.query)
}

// FilterProducts substring sin distinguir mayúsculas sobre name, category, color
// y supplier (OR entre campos). Consulta vacía devuelve todo.
func FilterProducts(products []entity.Product, query string) []entity.Product {
	out := make([]entity.Product, 0, len(products))
	if query == "" {
		return append(out, products...)
	}
	m := newMatcher(query)
	for _, p := range products {
		if m.match(p.Name) || m.match(p.Category) || m.match(p.Color) || m.match(p.Supplier) {
			out = append(out, p)
		}
	}
	return out
}

// FilterMovements substring sin distinguir mayúsculas sobre productName y
// responsible, y substring exacto sobre date. Conserva el orden de entrada.
func FilterMovements(movements []entity.ProductMovement, query string) []MovementRow {
	out := make([]MovementRow, 0, len(movements))
	m := newMatcher(query)
	for _, mv := range movements {
		if query != "" && !m.match(mv.ProductName) && !m.match(mv.Responsible) && !strings.Contains(mv.Date, query) {
			continue
		}
		out = append(out, MovementRow{ProductMovement: mv, Unregistered: mv.IsUnregistered()})
	}
	return out
}

// FilterEmployees substring sin distinguir mayúsculas sobre name, role y email.
func FilterEmployees(employees []entity.Employee, query string) []entity.Employee {
	out := make([]entity.Employee, 0, len(employees))
	if query == "" {
		return append(out, employees...)
	}
	m := newMatcher(query)
	for _, e := range employees {
		if m.match(e.Name) || m.match(e.Role) || m.match(e.Email) {
			out = append(out, e)
		}
	}
	return out
}
