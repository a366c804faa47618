package entity

import "time"

// User representa una identidad del sistema: email único global, hash de password
// calculado una sola vez al registrarse. Phone y Address son opcionales.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	FirstName    string
	LastName     string
	RoleID       string
	Phone        string
	Address      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
