package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleDeposito = "deposito"
	RoleVendedor = "vendedor"
)

// ValidRole indica si el rol es uno de los soportados.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleDeposito, RoleVendedor:
		return true
	}
	return false
}

// User representa un usuario del sistema (pertenece a una Organization).
type User struct {
	ID             string
	OrganizationID string
	Email          string
	PasswordHash   string // bcrypt hash, nunca plano en dominio después de persistir
	Name           string
	Role           string // admin, deposito, vendedor
	Status         string // active, inactive, suspended
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
