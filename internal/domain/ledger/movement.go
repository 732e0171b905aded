// Package ledger contiene el núcleo del motor de inventario: el tipo
// Movement (unión etiquetada entrada|salida) y la aritmética de stock.
package ledger

import (
	"errors"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// Errores de validación de movimientos. Los mensajes son contrato del API:
// viajan textuales como detail del 400.
var (
	ErrInvalidType         = errors.New("Transaction type must be 'IN' or 'OUT'")
	ErrNonPositiveQuantity = errors.New("Transaction quantity must be greater than zero")
)

// Movement es un movimiento ya validado del ledger. Al ser una unión
// etiquetada, una entrada solo conoce a su proveedor y una salida solo a su
// cliente; la lógica de "forzar a null el otro campo" desaparece por
// construcción.
type Movement struct {
	typ          string
	quantity     int64
	counterparty *string
}

// NewInbound construye una entrada (compra a proveedor).
func NewInbound(quantity int64, supplierID *string) (Movement, error) {
	if quantity <= 0 {
		return Movement{}, ErrNonPositiveQuantity
	}
	return Movement{typ: entity.TransactionTypeIN, quantity: quantity, counterparty: supplierID}, nil
}

// NewOutbound construye una salida (venta a cliente).
func NewOutbound(quantity int64, customerID *string) (Movement, error) {
	if quantity <= 0 {
		return Movement{}, ErrNonPositiveQuantity
	}
	return Movement{typ: entity.TransactionTypeOUT, quantity: quantity, counterparty: customerID}, nil
}

// Parse valida la representación del API y construye el Movement.
// El tipo es sensible a mayúsculas. La contraparte que no corresponde al
// tipo se descarta sin importar lo que haya enviado el caller.
func Parse(typ string, quantity int64, supplierID, customerID *string) (Movement, error) {
	switch typ {
	case entity.TransactionTypeIN:
		return NewInbound(quantity, supplierID)
	case entity.TransactionTypeOUT:
		return NewOutbound(quantity, customerID)
	default:
		return Movement{}, ErrInvalidType
	}
}

// Type devuelve "IN" u "OUT".
func (m Movement) Type() string { return m.typ }

// Quantity devuelve la cantidad (> 0).
func (m Movement) Quantity() int64 { return m.quantity }

// SupplierID devuelve el proveedor; nil salvo en entradas.
func (m Movement) SupplierID() *string {
	if m.typ == entity.TransactionTypeIN {
		return m.counterparty
	}
	return nil
}

// CustomerID devuelve el cliente; nil salvo en salidas.
func (m Movement) CustomerID() *string {
	if m.typ == entity.TransactionTypeOUT {
		return m.counterparty
	}
	return nil
}

// Apply calcula el stock resultante de aplicar el movimiento.
// Una salida con cantidad mayor al stock disponible devuelve el stock sin
// cambios y *domain.InsufficientStockError con el valor vigente embebido.
func (m Movement) Apply(stock int64) (int64, error) {
	switch m.typ {
	case entity.TransactionTypeIN:
		return stock + m.quantity, nil
	case entity.TransactionTypeOUT:
		if stock < m.quantity {
			return stock, &domain.InsufficientStockError{Available: stock}
		}
		return stock - m.quantity, nil
	}
	return stock, ErrInvalidType
}
