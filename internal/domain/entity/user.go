package entity

import "time"

// User representa un usuario del sistema. Se crea una vez en el registro;
// no hay actualización ni borrado.
type User struct {
	ID           string
	Email        string // único
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Active       bool
	CreatedAt    time.Time
}
