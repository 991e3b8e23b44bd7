package memory

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/estoquespy/internal/domain/entity"
)

// SeedEmployees funcionarios de ejemplo.
func SeedEmployees() []entity.Employee {
	return []entity.Employee{
		{ID: "1", Name: "Ana Souza", Role: "Gerente de Estoque", Email: "ana.souza@estoquespy.com", RegisteredAt: "2023-03-01"},
		{ID: "2", Name: "Carlos Lima", Role: "Estoquista", Email: "carlos.lima@estoquespy.com", RegisteredAt: "2023-06-12"},
		{ID: "3", Name: "Beatriz Rocha", Role: "Compradora", Email: "beatriz.rocha@estoquespy.com", RegisteredAt: "2024-01-08"},
	}
}

// SeedProducts catálogo de ejemplo (moda y vestuario).
func SeedProducts() []entity.Product {
	return []entity.Product{
		{ID: "1", Name: "Camiseta Básica", Category: "Camisetas", Size: "M", Color: "Branco", Quantity: 120,
			Price: decimal.RequireFromString("39.90"), Supplier: "Malharia Sul", RegisteredBy: "Ana Souza",
			RegisteredAt: "2024-01-15", IDRFID: "417370A2"},
		{ID: "2", Name: "Calça Jeans Slim", Category: "Calças", Size: "42", Color: "Azul", Quantity: 45,
			Price: decimal.RequireFromString("149.90"), Supplier: "Denim Brasil", RegisteredBy: "Carlos Lima",
			RegisteredAt: "2024-01-20", IDRFID: "9C1F03B7"},
		{ID: "3", Name: "Vestido Floral", Category: "Vestidos", Size: "P", Color: "Estampado", Quantity: 30,
			Price: decimal.RequireFromString("189.00"), Supplier: "Ateliê Primavera", RegisteredBy: "Beatriz Rocha",
			RegisteredAt: "2024-02-02"},
		{ID: "4", Name: "Jaqueta Corta-Vento", Category: "Casacos", Size: "G", Color: "Preto", Quantity: 18,
			Price: decimal.RequireFromString("229.90"), Supplier: "Outdoor Têxtil", RegisteredBy: "Ana Souza",
			RegisteredAt: "2024-02-10", IDRFID: "E20034A1"},
	}
}

// SeedMovements historial de ejemplo, del más antiguo al más reciente.
func SeedMovements() []entity.ProductMovement {
	return []entity.ProductMovement{
		{ProductName: "Camiseta Básica", Type: entity.MovementTypeEntrada, Quantity: 150, Date: "2024-01-15", Time: "09:12", Responsible: "Ana Souza"},
		{ProductName: "Calça Jeans Slim", Type: entity.MovementTypeEntrada, Quantity: 50, Date: "2024-01-20", Time: "10:40", Responsible: "Carlos Lima"},
		{ProductName: "Camiseta Básica", Type: entity.MovementTypeSaida, Quantity: 30, Date: "2024-02-01", Time: "16:05", Responsible: "Leitor RFID 01"},
		{ProductName: entity.UnknownTagProductName, Type: entity.MovementTypeSaida, Quantity: 1, Date: "2024-02-03", Time: "18:22", Responsible: "Leitor RFID 01"},
		{ProductName: "Calça Jeans Slim", Type: entity.MovementTypeSaida, Quantity: 5, Date: "2024-02-05", Time: "11:30", Responsible: "Leitor RFID 02"},
	}
}

// Seed carga los datos de ejemplo en el store.
func Seed(ctx context.Context, s *Store) error {
	s.SetEmployees(SeedEmployees())
	products := SeedProducts()
	// CreateProduct inserta al inicio: se recorre al revés para conservar el orden.
	for i := len(products) - 1; i >= 0; i-- {
		if _, err := s.CreateProduct(ctx, products[i]); err != nil {
			return err
		}
	}
	for _, m := range SeedMovements() {
		if _, err := s.AppendMovement(ctx, m); err != nil {
			return err
		}
	}
	return nil
}
