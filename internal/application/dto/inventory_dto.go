package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateLotRequest body para POST /api/inventory/lots.
type CreateLotRequest struct {
	ProductID       string          `json:"product_id" validate:"required,uuid"`
	LotNumber       string          `json:"lot_number" validate:"required,min=1,max=100"`
	ExpirationDate  *time.Time      `json:"expiration_date,omitempty"`
	InitialQuantity decimal.Decimal `json:"initial_quantity"`
}

// RegisterMovementRequest body para POST /api/inventory/movements.
// Para ADJUSTMENT, Quantity es la nueva cantidad absoluta del lote.
type RegisterMovementRequest struct {
	LotID    string          `json:"lot_id" validate:"required,uuid"`
	Type     string          `json:"type" validate:"required,oneof=INBOUND OUTBOUND ADJUSTMENT TRANSFER"`
	Quantity decimal.Decimal `json:"quantity"`
	Reason   string          `json:"reason"`
}

// LotResponse salida de un lote con su estado derivado.
type LotResponse struct {
	ID             string          `json:"id"`
	ProductID      string          `json:"product_id"`
	LotNumber      string          `json:"lot_number"`
	ExpirationDate *time.Time      `json:"expiration_date,omitempty"`
	Quantity       decimal.Decimal `json:"quantity_available"`
	Status         string          `json:"status"` // depleted, expired, expiring_soon, valid
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// LotListResponse lista paginada de lotes.
type LotListResponse struct {
	Items []LotResponse `json:"items"`
	Page  PageResponse  `json:"page"`
}

// MovementResponse salida de un movimiento con sus fotos de stock.
type MovementResponse struct {
	ID            string          `json:"id"`
	LotID         string          `json:"lot_id"`
	ProductID     string          `json:"product_id"`
	Type          string          `json:"type"`
	Quantity      decimal.Decimal `json:"quantity"`
	PreviousStock decimal.Decimal `json:"previous_stock"`
	NewStock      decimal.Decimal `json:"new_stock"`
	Reason        string          `json:"reason,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	CreatedBy     string          `json:"created_by,omitempty"`
}

// MovementListResponse lista paginada de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// StockSummaryRowResponse una fila del resumen de stock por producto.
type StockSummaryRowResponse struct {
	ProductID    string          `json:"product_id"`
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	Brand        string          `json:"brand,omitempty"`
	Unit         string          `json:"unit"`
	CategoryName string          `json:"category_name,omitempty"`
	SupplierName string          `json:"supplier_name,omitempty"`
	IsActive     bool            `json:"is_active"`
	TotalStock   decimal.Decimal `json:"total_stock"`
	LowStock     bool            `json:"low_stock"`
}

// StockSummaryResponse resumen completo del stock de la organización.
type StockSummaryResponse struct {
	Items []StockSummaryRowResponse `json:"items"`
}
