package entity

// Employee funcionario del almacén. Datos de referencia de solo lectura para el cliente.
type Employee struct {
	ID           string
	Name         string
	Role         string
	Email        string
	RegisteredAt string
}
