package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	SKU            string          `json:"sku" validate:"required,min=1,max=100"`
	Name           string          `json:"name" validate:"required,min=1,max=200"`
	Brand          string          `json:"brand"`
	CategoryID     string          `json:"category_id"`
	SupplierID     string          `json:"supplier_id"`
	Cost           decimal.Decimal `json:"cost"`
	Price          decimal.Decimal `json:"price"`
	Unit           string          `json:"unit" validate:"required,oneof=UN KG LT MT"`
	UnitsPerBox    int             `json:"units_per_box"`
	BoxesPerPallet int             `json:"boxes_per_pallet"`
}

// UpdateProductRequest entrada para actualizar un producto (el stock se maneja vía movimientos).
type UpdateProductRequest struct {
	Name           *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Brand          *string          `json:"brand"`
	CategoryID     *string          `json:"category_id"`
	SupplierID     *string          `json:"supplier_id"`
	Cost           *decimal.Decimal `json:"cost"`
	Price          *decimal.Decimal `json:"price"`
	Unit           *string          `json:"unit" validate:"omitempty,oneof=UN KG LT MT"`
	UnitsPerBox    *int             `json:"units_per_box"`
	BoxesPerPallet *int             `json:"boxes_per_pallet"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID             string          `json:"id"`
	OrganizationID string          `json:"organization_id"`
	SKU            string          `json:"sku"`
	Name           string          `json:"name"`
	Brand          string          `json:"brand"`
	CategoryID     string          `json:"category_id,omitempty"`
	SupplierID     string          `json:"supplier_id,omitempty"`
	Cost           decimal.Decimal `json:"cost"`
	Price          decimal.Decimal `json:"price"`
	Unit           string          `json:"unit"`
	UnitsPerBox    int             `json:"units_per_box"`
	BoxesPerPallet int             `json:"boxes_per_pallet"`
	IsActive       bool            `json:"is_active"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
