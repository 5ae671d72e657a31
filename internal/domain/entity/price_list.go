package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados derivados de una lista de precios (no persistidos, se calculan por fecha).
const (
	PriceListStatusFuture  = "future"
	PriceListStatusActive  = "active"
	PriceListStatusExpired = "expired"
)

// PriceList representa una lista de precios de un proveedor con ventana de vigencia.
type PriceList struct {
	ID             string
	OrganizationID string
	SupplierID     string
	SupplierName   string // resuelto por JOIN en lectura, no se persiste
	Name           string
	ValidFrom      time.Time
	ValidUntil     *time.Time // nil = sin vencimiento
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Status deriva el estado de la lista según la fecha de referencia.
func (p *PriceList) Status(now time.Time) string {
	if now.Before(p.ValidFrom) {
		return PriceListStatusFuture
	}
	if p.ValidUntil != nil && now.After(*p.ValidUntil) {
		return PriceListStatusExpired
	}
	return PriceListStatusActive
}

// PriceListItem representa un precio de un producto dentro de una lista.
type PriceListItem struct {
	ID          string
	PriceListID string
	ProductID   string
	SKU         string // redundante para trazabilidad del origen del import
	Price       decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
