package entity

// Tipos de movimiento de inventario.
const (
	MovementTypeEntrada = "entrada"
	MovementTypeSaida   = "saida"
)

// UnknownTagProductName es el nombre que el backend asigna cuando una lectura RFID
// no corresponde a ningún producto registrado.
const UnknownTagProductName = "TAG DESCONHECIDA"

// ProductMovement movimiento de stock observado por el cliente (append-only en el backend).
// ProductName está desnormalizado; Responsible es una persona o el identificador del lector RFID.
type ProductMovement struct {
	ID          string
	ProductName string
	Type        string // entrada, saida
	Quantity    int
	Date        string
	Time        string
	Responsible string
}

// IsEntrada indica si el movimiento suma stock.
func (m ProductMovement) IsEntrada() bool { return m.Type == MovementTypeEntrada }

// IsSaida indica si el movimiento resta stock.
func (m ProductMovement) IsSaida() bool { return m.Type == MovementTypeSaida }

// IsUnregistered indica que el movimiento proviene de una etiqueta sin producto asociado.
func (m ProductMovement) IsUnregistered() bool { return m.ProductName == UnknownTagProductName }
