package entity

import "time"

// Supplier representa un proveedor (contraparte de las entradas IN).
// Inmutable una vez referenciado por una transacción: no hay update/delete.
type Supplier struct {
	ID        string
	Name      string
	Email     string // único
	Phone     string
	Address   string
	CreatedAt time.Time
}
