package billing

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// ReceiptSnapshot es la foto resuelta de una transacción con todo lo que el
// renderer necesita. El renderer es función pura de este snapshot: no toca
// la base de datos.
type ReceiptSnapshot struct {
	TransactionID string
	Type          string // "IN" | "OUT"
	Quantity      int64
	Date          time.Time
	ProductName   string
	UnitPrice     decimal.Decimal
	PartyName     string // proveedor en IN, cliente en OUT
}

// Title devuelve el título del documento según el sentido del movimiento.
func (s ReceiptSnapshot) Title() string {
	if s.Type == entity.TransactionTypeOUT {
		return "SALES INVOICE"
	}
	return "PURCHASE ORDER"
}

// PartyLabel devuelve la etiqueta de la contraparte en el comprobante.
func (s ReceiptSnapshot) PartyLabel() string {
	if s.Type == entity.TransactionTypeOUT {
		return "Billed To (Customer):"
	}
	return "Ordered From (Supplier):"
}

// Total calcula cantidad x precio unitario, redondeado a 2 decimales.
func (s ReceiptSnapshot) Total() decimal.Decimal {
	return s.UnitPrice.Mul(decimal.NewFromInt(s.Quantity)).Round(2)
}

// ReceiptPDFGenerator renderiza el comprobante de una transacción.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, snap ReceiptSnapshot) ([]byte, error)
}
