package entity

import "time"

// Customer representa un cliente (contraparte de las salidas OUT).
// Inmutable una vez referenciado por una transacción: no hay update/delete.
type Customer struct {
	ID        string
	Name      string
	Email     string // único
	Phone     string
	Address   string
	CreatedAt time.Time
}
