package entity

import "time"

// Tipos de transacción del ledger. Sensibles a mayúsculas: "in" no es válido.
const (
	TransactionTypeIN  = "IN"  // compra a proveedor
	TransactionTypeOUT = "OUT" // venta a cliente
)

// StockTransaction representa un movimiento del ledger de inventario.
// Append-only: nunca se actualiza ni se borra; una corrección se modela
// como una nueva transacción en sentido contrario.
// Invariante: SupplierID solo en IN, CustomerID solo en OUT.
type StockTransaction struct {
	ID         string
	ProductID  string
	Type       string    // "IN" | "OUT"
	Quantity   int64     // siempre > 0
	SupplierID *string   // contraparte de una entrada
	CustomerID *string   // contraparte de una salida
	Date       time.Time // UTC, asignada por el servidor
}
