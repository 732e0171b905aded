package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario con su SKU único.
// Stock solo se muta vía edición directa o por el motor del ledger.
type Product struct {
	ID          string
	SKU         string // código único
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta, nunca negativo
	Stock       int64           // unidades disponibles, nunca negativo
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
