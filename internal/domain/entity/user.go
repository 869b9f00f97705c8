package entity

import "time"

// Roles válidos dentro del flujo de registro.
const (
	RoleDoctor  = "doctor"
	RolePatient = "patient"
)

// ValidRole indica si el rol es uno de los aceptados por el flujo.
func ValidRole(role string) bool {
	return role == RoleDoctor || role == RolePatient
}

// User representa una cuenta del sistema. El email funciona como identificador
// de inicio de sesión y es único.
type User struct {
	ID           int64
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string // bcrypt hash, nunca en claro después de construir la entidad
	CreatedAt    time.Time
}
