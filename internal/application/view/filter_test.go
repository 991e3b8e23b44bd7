package view_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estoquespy/internal/application/view"
	"github.com/jhoicas/estoquespy/internal/domain/entity"
)

var catalog = []entity.Product{
	{ID: "1", Name: "Camiseta Básica", Category: "Camisetas", Color: "Branco", Supplier: "Malharia Sul"},
	{ID: "2", Name: "Calça Jeans", Category: "Calças", Color: "Azul", Supplier: "Denim Co"},
	{ID: "3", Name: "Jaqueta", Category: "Casacos", Color: "Preto", Supplier: "Azul Confecções"},
}

func ids(products []entity.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestFilterProducts_SinDistinguirMayusculas(t *testing.T) {
	assert.Equal(t, []string{"1"}, ids(view.FilterProducts(catalog, "CAMI")))
	assert.Equal(t, []string{"1"}, ids(view.FilterProducts(catalog, "básica")))
}

// Un producto coincide si CUALQUIERA de sus campos contiene la consulta.
func TestFilterProducts_ORentreCampos(t *testing.T) {
	// "azul": color del 2 y proveedor del 3.
	assert.Equal(t, []string{"2", "3"}, ids(view.FilterProducts(catalog, "azul")))
	// Categoría.
	assert.Equal(t, []string{"3"}, ids(view.FilterProducts(catalog, "casacos")))
}

func TestFilterProducts_ConsultaVaciaDevuelveTodo(t *testing.T) {
	got := view.FilterProducts(catalog, "")
	assert.Len(t, got, 3)
}

func TestFilterProducts_TallaNoEsBuscable(t *testing.T) {
	products := []entity.Product{{ID: "1", Name: "Blusa", Size: "XG"}}
	assert.Empty(t, view.FilterProducts(products, "xg"))
}

func TestFilterProducts_SinCoincidencias(t *testing.T) {
	got := view.FilterProducts(catalog, "inexistente")
	require.NotNil(t, got)
	assert.Empty(t, got)
}

var history = []entity.ProductMovement{
	{ID: "3", ProductName: entity.UnknownTagProductName, Type: entity.MovementTypeSaida, Quantity: 1, Date: "2024-02-10", Responsible: "Leitor RFID 01"},
	{ID: "2", ProductName: "Calça Jeans", Type: entity.MovementTypeSaida, Quantity: 20, Date: "2024-02-09", Responsible: "Carlos Lima"},
	{ID: "1", ProductName: "Camiseta Básica", Type: entity.MovementTypeEntrada, Quantity: 50, Date: "2024-01-15", Responsible: "Ana Souza"},
}

func TestFilterMovements_ProductoYResponsable(t *testing.T) {
	got := view.FilterMovements(history, "CARLOS")
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)

	got = view.FilterMovements(history, "camiseta")
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
}

func TestFilterMovements_FechaSubstringExacto(t *testing.T) {
	got := view.FilterMovements(history, "2024-02")
	require.Len(t, got, 2)
	assert.Equal(t, "3", got[0].ID, "se conserva el orden de presentación")
}

func TestFilterMovements_MarcaTagDesconocida(t *testing.T) {
	got := view.FilterMovements(history, "")
	require.Len(t, got, 3)
	assert.True(t, got[0].Unregistered)
	assert.False(t, got[1].Unregistered)

	got = view.FilterMovements(history, "rfid")
	require.Len(t, got, 1)
	assert.True(t, got[0].Unregistered)
}

func TestFilterEmployees(t *testing.T) {
	employees := []entity.Employee{
		{ID: "1", Name: "Ana Souza", Role: "Gerente", Email: "ana@estoquespy.com"},
		{ID: "2", Name: "Carlos Lima", Role: "Estoquista", Email: "carlos@estoquespy.com"},
	}
	assert.Len(t, view.FilterEmployees(employees, "ESTOQUISTA"), 1)
	assert.Len(t, view.FilterEmployees(employees, "estoquespy.com"), 2)
	assert.Len(t, view.FilterEmployees(employees, ""), 2)
}
