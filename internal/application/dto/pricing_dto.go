package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceListItemInput un par (SKU, precio) a importar.
type PriceListItemInput struct {
	SKU   string          `json:"sku"`
	Price decimal.Decimal `json:"price"`
}

// ImportPriceListRequest body para POST /api/price-lists/import.
type ImportPriceListRequest struct {
	SupplierID  string               `json:"supplier_id" validate:"required,uuid"`
	Name        string               `json:"name" validate:"required,min=1,max=200"`
	ValidFrom   *time.Time           `json:"valid_from,omitempty"`
	ValidUntil  *time.Time           `json:"valid_until,omitempty"`
	UpdateCosts bool                 `json:"update_costs"` // si true, actualiza el costo del producto con el precio importado
	Items       []PriceListItemInput `json:"items"`
}

// ImportPriceListResponse resultado del import: el éxito parcial no es error.
type ImportPriceListResponse struct {
	PriceListID   string   `json:"price_list_id"`
	ImportedCount int      `json:"imported_count"`
	MissingSKUs   []string `json:"missing_skus"`
}

// PriceListResponse salida de una lista de precios con estado derivado.
type PriceListResponse struct {
	ID           string     `json:"id"`
	SupplierID   string     `json:"supplier_id"`
	SupplierName string     `json:"supplier_name"`
	Name         string     `json:"name"`
	ValidFrom    time.Time  `json:"valid_from"`
	ValidUntil   *time.Time `json:"valid_until,omitempty"`
	Status       string     `json:"status"` // future, active, expired
	CreatedAt    time.Time  `json:"created_at"`
}

// PriceListDetailResponse lista de precios con sus items.
type PriceListDetailResponse struct {
	PriceListResponse
	Items []PriceListItemResponse `json:"items"`
}

// PriceListItemResponse un item de la lista.
type PriceListItemResponse struct {
	ProductID string          `json:"product_id"`
	SKU       string          `json:"sku"`
	Price     decimal.Decimal `json:"price"`
}

// PriceListListResponse listado de listas de precios.
type PriceListListResponse struct {
	Items []PriceListResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
