package entity

import "time"

// User usuario autenticable dueño de cero o más negocios.
type User struct {
	ID            string // uuid
	Nombre        string
	Email         string
	PasswordHash  string // bcrypt hash, nunca plano en dominio después de persistir
	FechaCreacion time.Time
}
