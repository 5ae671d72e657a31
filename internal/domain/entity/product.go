package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Unidades de medida válidas para Product.
const (
	UnitUN = "UN" // unidad
	UnitKG = "KG" // kilogramo
	UnitLT = "LT" // litro
	UnitMT = "MT" // metro
)

// ValidUnit indica si la unidad de medida es una de las soportadas.
func ValidUnit(unit string) bool {
	switch unit {
	case UnitUN, UnitKG, UnitLT, UnitMT:
		return true
	}
	return false
}

// Product representa un producto o SKU del catálogo de la distribuidora.
// El stock disponible vive en los lotes (ProductLot); nunca se borra físicamente,
// se desactiva con IsActive.
type Product struct {
	ID             string
	OrganizationID string
	SKU            string // código único por organización
	Name           string
	Brand          string
	CategoryID     string // vacío si no tiene categoría
	SupplierID     string // proveedor habitual, vacío si no aplica
	Cost           decimal.Decimal // costo de compra
	Price          decimal.Decimal // precio de venta
	Unit           string          // UN, KG, LT, MT
	UnitsPerBox    int
	BoxesPerPallet int
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
