package entity

import "time"

// Customer representa un cliente de la distribuidora (cuentas por cobrar).
type Customer struct {
	ID             string
	OrganizationID string
	Name           string
	TaxID          string
	Email          string
	Phone          string
	Address        string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
