package entity

import "time"

// Category representa una categoría de productos.
type Category struct {
	ID             string
	OrganizationID string
	Name           string
	Code           string // código único por organización
	Status         string // active, inactive
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
