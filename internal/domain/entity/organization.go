package entity

import "time"

// Organization representa una distribuidora/tenant del sistema (multi-tenant).
// Todas las consultas de la aplicación se filtran por OrganizationID.
type Organization struct {
	ID        string
	Name      string
	Slug      string // identificador legible en URLs, único
	TaxID     string // CUIT/NIT según país
	Address   string
	Phone     string
	Email     string
	Status    string // active, suspended, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
